package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/studentdir/internal/client/client"
)

var (
	ErrInvalidTransition = errors.New("action not available in the current dialog")
	ErrUnknownStudent    = errors.New("no such student in the directory")
)

// Describe turns an operation error into the inline message shown to the user.
func Describe(err error) string {
	var se *client.StatusError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, client.ErrUnauthorized):
		return "Admin authentication failed: wrong password."
	case errors.Is(err, client.ErrNotFound):
		return "The student no longer exists on the server. Reload the list."
	case errors.Is(err, client.ErrUnavailable):
		return "Could not reach the students server. Try again later."
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "The request was cancelled before the server answered."
	case errors.As(err, &se):
		if se.Message != "" {
			return fmt.Sprintf("The server rejected the request (%d): %s", se.Code, se.Message)
		}
		return fmt.Sprintf("The server rejected the request (%d).", se.Code)
	default:
		return err.Error()
	}
}
