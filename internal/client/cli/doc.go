// Package cli provides the interactive students directory client.
//
// It wires configuration, logging, the REST client and the directory state
// machine, and drives them from a line-oriented REPL. On start the full list
// is fetched and printed; afterwards the user works with commands:
//
//   - list / search  show the records, optionally filtered by name
//   - add            open the editor for a new record
//   - edit           open the editor for an existing record
//   - delete         remove a record
//
// Edits and deletes ask for the admin password before anything is sent.
// Server errors are shown inline and the dialog that caused them stays
// open, so the user can retry or cancel.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
