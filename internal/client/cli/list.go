package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/studentdir/internal/client/directory"
	"github.com/dmitrijs2005/studentdir/internal/client/models"
)

var tableHeader = []string{"#", "ID", "Name", "Roll Number", "Contact Number", "Blood Group", "Email", "Address"}

// renderTable writes students as an aligned table. Rows are numbered from 1
// so they can be referenced by edit and delete.
func renderTable(w io.Writer, students []models.Student) error {
	if len(students) == 0 {
		_, err := fmt.Fprintln(w, "No students found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, h := range tableHeader {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, h)
	}
	fmt.Fprintln(tw)

	for i, s := range students {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1, s.ID, s.Name, s.RollNumber, s.ContactNumber, s.BloodGroup, s.Email, s.Address)
	}
	return tw.Flush()
}

// List prints the students matching the current search.
func (a *App) List(ctx context.Context) error {
	visible := a.dir.Visible()
	if q := a.dir.Query(); q != "" {
		fmt.Fprintf(a.out, "Search by Name: %q (%d of %d)\n", q, len(visible), len(a.dir.Students()))
	}
	return renderTable(a.out, visible)
}

// Search sets the name filter and prints the matching students.
func (a *App) Search(ctx context.Context, text string) error {
	a.dir.Search(text)
	return a.List(ctx)
}

// Reload fetches the whole list from the server and prints it. On failure
// the previous list is kept and the error is shown.
func (a *App) Reload(ctx context.Context) error {
	if err := a.dir.Load(ctx); err != nil {
		a.showErr(ctx, err)
		return err
	}
	return a.List(ctx)
}

// resolve maps a record identifier, or failing that a row number from the
// last listing, to the identifier of a loaded student. An identifier that
// exists always wins, so numeric ids are never mistaken for rows.
func (a *App) resolve(ref string) (string, error) {
	if _, ok := a.dir.Find(ref); ok {
		return ref, nil
	}
	if n, err := strconv.Atoi(ref); err == nil {
		visible := a.dir.Visible()
		if n >= 1 && n <= len(visible) {
			return visible[n-1].ID, nil
		}
	}
	return "", directory.ErrUnknownStudent
}
