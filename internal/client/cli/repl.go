package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// printFn prints the prompt without a trailing newline.
var printFn = fmt.Print

const prompt = "students> "

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Search(ctx context.Context, text string) error
	Reload(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, ref string) error
	Delete(ctx context.Context, ref string) error
}

const helpText = `Available commands:
  list | l            show the students matching the current search
  search <text>       filter by name (no text clears the filter)
  reload | r          fetch the list from the server again
  add                 add a student
  edit <# | id>       edit a student (admin password required)
  delete <# | id>     delete a student (admin password required)
  exit | quit         leave the program`

// runREPL reads commands line by line from reader and dispatches them to a.
//
// The first word of a line is the command; the rest of the line, trimmed,
// is its argument. Search text is taken verbatim so that names containing
// spaces can be matched. The loop exits on end of input or on "exit"/"quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors inline.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader) {
	for {
		printFn(prompt)
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			printlnFn()
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch strings.ToLower(cmd) {
		case "help", "?":
			printlnFn(helpText)

		case "l", "list", "ls":
			_ = a.List(ctx)

		case "search", "s":
			_ = a.Search(ctx, arg)

		case "r", "reload":
			_ = a.Reload(ctx)

		case "add", "new":
			_ = a.Add(ctx)

		case "edit", "e":
			if arg == "" {
				printlnFn("Usage: edit <# | id>")
				continue
			}
			_ = a.Edit(ctx, arg)

		case "delete", "del", "rm":
			if arg == "" {
				printlnFn("Usage: delete <# | id>")
				continue
			}
			_ = a.Delete(ctx, arg)

		case "exit", "quit", "q":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
