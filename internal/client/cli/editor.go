package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/studentdir/internal/client/directory"
	"github.com/dmitrijs2005/studentdir/internal/client/models"
)

// clearValue typed in the editor empties a field.
const clearValue = "-"

// Add opens the editor for a new student.
func (a *App) Add(ctx context.Context) error {
	if err := a.dir.RequestCreate(); err != nil {
		a.showErr(ctx, err)
		return err
	}
	return a.runEditor(ctx)
}

// Edit opens the editor for the student given by row number or identifier.
func (a *App) Edit(ctx context.Context, ref string) error {
	id, err := a.resolve(ref)
	if err != nil {
		a.showErr(ctx, err)
		return err
	}
	if err := a.dir.RequestEdit(id); err != nil {
		a.showErr(ctx, err)
		return err
	}
	return a.runEditor(ctx)
}

// runEditor walks the user through the open editor until it is closed by a
// successful save or a cancel.
func (a *App) runEditor(ctx context.Context) error {
	for {
		draft, mode, ok := a.dir.Editor()
		if !ok {
			return nil
		}

		fmt.Fprintf(a.out, "%s (Enter keeps the value, %q clears it)\n", mode.Title(), clearValue)
		if err := a.fillDraft(draft); err != nil {
			_ = a.dir.CancelEditor()
			fmt.Fprintln(a.out, "Cancelled.")
			return err
		}

		yes, err := AskYesNo(a.reader, mode.SubmitLabel()+"?", a.out)
		if err != nil || !yes {
			_ = a.dir.CancelEditor()
			fmt.Fprintln(a.out, "Cancelled.")
			return err
		}

		err = a.dir.Submit(ctx)
		switch a.dir.State() {
		case directory.StateGateOpen:
			confirmed, gerr := a.runGate(ctx)
			if confirmed {
				return gerr
			}
			if gerr != nil {
				_ = a.dir.CancelEditor()
				fmt.Fprintln(a.out, "Cancelled.")
				return gerr
			}
			// The gate was cancelled: back to the same draft.
			continue

		case directory.StateEditorOpen:
			a.showErr(ctx, err)
			again, aerr := AskYesNo(a.reader, "Edit again?", a.out)
			if aerr != nil || !again {
				_ = a.dir.CancelEditor()
				fmt.Fprintln(a.out, "Cancelled.")
				return err
			}
			continue
		}

		fmt.Fprintln(a.out, "Student added.")
		if err != nil {
			a.showErr(ctx, err)
			return err
		}
		return a.List(ctx)
	}
}

// fillDraft prompts for every field, showing the current draft value.
func (a *App) fillDraft(draft models.Draft) error {
	for _, f := range models.Fields {
		current, _ := draft.Get(f.Name)
		label := f.Label
		if current != "" {
			label = fmt.Sprintf("%s [%s]", f.Label, current)
		}

		value, err := GetSimpleText(a.reader, label, a.out)
		if err != nil {
			return err
		}
		switch value {
		case "":
			continue
		case clearValue:
			value = ""
		}
		if err := a.dir.SetField(f.Name, value); err != nil {
			return err
		}
	}
	return nil
}
