// Package client talks to the students REST API.
//
// # Overview
//
// The package provides a transport-agnostic contract (see the Client interface)
// with the four operations the directory needs: List, Create, Update and
// Delete. RESTClient implements it over HTTP/JSON with resty. Every call is a
// single request/response round trip: nothing is retried and no backoff is
// applied. Each request carries a fresh X-Request-ID header.
//
// # Error Handling
//
// Failures are reported as sentinel errors that callers match with errors.Is:
//
//   - ErrUnavailable      the request never got an HTTP response
//   - ErrUnauthorized     401/403, typically a wrong admin password
//   - ErrNotFound         404, the identifier no longer exists
//   - ErrUnexpectedStatus any other non-2xx status
//
// A 2xx answer is a success whatever its body. Only List needs the body;
// a body it cannot decode yields ErrMalformedResponse.
//
// Non-2xx responses are returned as *StatusError, which unwraps to one of the
// sentinels above and carries the server's message when it sent one.
package client
