package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/studentdir/internal/client/directory"
	"github.com/dmitrijs2005/studentdir/internal/client/models"
	"github.com/dmitrijs2005/studentdir/internal/common"
)

// Delete asks for the admin password and removes the student given by row
// number or identifier.
func (a *App) Delete(ctx context.Context, ref string) error {
	id, err := a.resolve(ref)
	if err != nil {
		a.showErr(ctx, err)
		return err
	}
	s, _ := a.dir.Find(id)
	fmt.Fprintf(a.out, "Delete %s (%s)\n", s.Name, s.ID)

	if err := a.dir.RequestDelete(id); err != nil {
		a.showErr(ctx, err)
		return err
	}

	_, err = a.runGate(ctx)
	return err
}

// runGate drives the open admin gate. confirmed reports whether the server
// accepted the action; it is false when the user cancelled. A rejected
// password keeps the gate open and the user is asked again.
func (a *App) runGate(ctx context.Context) (confirmed bool, err error) {
	for {
		req, ok := a.dir.Gate()
		if !ok {
			return false, nil
		}

		fmt.Fprintln(a.out, "Admin Authentication")
		fmt.Fprintf(a.out, "Enter admin password to %s student details:\n", req.Action)

		pw, err := GetPassword(a.reader, a.out)
		if err != nil {
			_ = a.dir.CancelGate()
			fmt.Fprintln(a.out, "Cancelled.")
			return false, err
		}
		setErr := a.dir.SetPassword(string(pw))
		common.WipeByteArray(pw)
		if setErr != nil {
			return false, setErr
		}

		yes, err := AskYesNo(a.reader, "Confirm?", a.out)
		if err != nil || !yes {
			_ = a.dir.CancelGate()
			fmt.Fprintln(a.out, "Cancelled.")
			return false, err
		}

		err = a.dir.Confirm(ctx)
		if a.dir.State() == directory.StateGateOpen {
			a.showErr(ctx, err)
			continue
		}

		a.log.Info(ctx, "admin action done", "action", string(req.Action), "student_id", req.StudentID)
		switch req.Action {
		case models.AdminActionUpdate:
			fmt.Fprintln(a.out, "Student updated.")
		default:
			fmt.Fprintln(a.out, "Student deleted.")
		}
		if err != nil {
			a.showErr(ctx, err)
			return true, err
		}
		return true, a.List(ctx)
	}
}
