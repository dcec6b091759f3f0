// Package directory is the state machine behind the students directory: the
// record list with its search filter, the record editor and the admin gate.
//
// The machine has three states (see State). Transitions are driven by the
// Request*, Submit, Confirm and Cancel* methods; any call that does not fit
// the current state returns ErrInvalidTransition and changes nothing.
//
// Create goes straight to the server. Update and Delete always pass through
// the admin gate first: nothing is sent until Confirm. Every successful
// mutation is followed by a full reload; the list is only ever replaced as a
// whole. A failed call leaves the state and the list as they were and records
// an inline error (see Err).
//
// A Directory is not safe for concurrent use. It is driven from a single
// interactive loop.
package directory

import (
	"context"

	"github.com/dmitrijs2005/studentdir/internal/client/models"
	"github.com/dmitrijs2005/studentdir/internal/client/services"
	"github.com/dmitrijs2005/studentdir/internal/logging"
)

type Directory struct {
	svc services.StudentService
	log logging.Logger

	students []models.Student
	query    string

	state   State
	mode    EditorMode
	editing string
	draft   models.Draft
	gate    models.AdminGateRequest

	lastErr error
}

func New(svc services.StudentService, log logging.Logger) *Directory {
	return &Directory{
		svc:      svc,
		log:      log.With("component", "directory"),
		students: []models.Student{},
	}
}

// State returns the current dialog state.
func (d *Directory) State() State {
	return d.state
}

// Err returns the inline error of the last failed operation, if any.
func (d *Directory) Err() error {
	return d.lastErr
}

// Students returns a copy of the full in-memory list.
func (d *Directory) Students() []models.Student {
	out := make([]models.Student, len(d.students))
	copy(out, d.students)
	return out
}

// Query returns the current search text.
func (d *Directory) Query() string {
	return d.query
}

// Search stores the name filter. No network call is made.
func (d *Directory) Search(text string) {
	d.query = text
}

// Visible returns the records matching the search filter.
func (d *Directory) Visible() []models.Student {
	return models.Filter(d.students, d.query)
}

// Find returns the record with the given identifier.
func (d *Directory) Find(id string) (models.Student, bool) {
	for _, s := range d.students {
		if s.ID == id {
			return s, true
		}
	}
	return models.Student{}, false
}

// Load replaces the list with a fresh List result. On failure the previous
// list is kept.
func (d *Directory) Load(ctx context.Context) error {
	students, err := d.svc.List(ctx)
	if err != nil {
		d.lastErr = err
		return err
	}
	if students == nil {
		students = []models.Student{}
	}
	d.students = students
	d.lastErr = nil
	d.log.Debug(ctx, "directory loaded", "count", len(students))
	return nil
}

// Editor returns the draft and mode of the open editor. ok is false when the
// editor is closed.
func (d *Directory) Editor() (draft models.Draft, mode EditorMode, ok bool) {
	if !d.editorOpen() {
		return models.Draft{}, 0, false
	}
	return d.draft, d.mode, true
}

// Gate returns the pending privileged action. ok is false when the gate is
// closed.
func (d *Directory) Gate() (req models.AdminGateRequest, ok bool) {
	if d.state != StateGateOpen {
		return models.AdminGateRequest{}, false
	}
	return d.gate, true
}

func (d *Directory) editorOpen() bool {
	switch d.state {
	case StateEditorOpen:
		return true
	case StateGateOpen:
		return d.gate.Action == models.AdminActionUpdate
	}
	return false
}

func (d *Directory) transition(to State) {
	if d.state != to {
		d.log.Debug(context.Background(), "dialog state changed", "from", d.state.String(), "to", to.String())
	}
	d.state = to
	d.lastErr = nil
}

// RequestCreate opens the editor with an empty draft.
func (d *Directory) RequestCreate() error {
	if d.state != StateIdle {
		return ErrInvalidTransition
	}
	d.mode = EditorCreate
	d.editing = ""
	d.draft = models.Draft{}
	d.transition(StateEditorOpen)
	return nil
}

// RequestEdit opens the editor seeded with the record's field values.
func (d *Directory) RequestEdit(id string) error {
	if d.state != StateIdle {
		return ErrInvalidTransition
	}
	s, ok := d.Find(id)
	if !ok {
		return ErrUnknownStudent
	}
	d.mode = EditorEdit
	d.editing = s.ID
	d.draft = models.DraftFrom(s)
	d.transition(StateEditorOpen)
	return nil
}

// RequestDelete opens the admin gate for deleting the record. Nothing is
// sent to the server yet.
func (d *Directory) RequestDelete(id string) error {
	if d.state != StateIdle {
		return ErrInvalidTransition
	}
	if _, ok := d.Find(id); !ok {
		return ErrUnknownStudent
	}
	d.gate = models.AdminGateRequest{Action: models.AdminActionDelete, StudentID: id}
	d.transition(StateGateOpen)
	return nil
}

// SetField writes one draft field verbatim.
func (d *Directory) SetField(name, value string) error {
	if d.state != StateEditorOpen {
		return ErrInvalidTransition
	}
	return d.draft.Set(name, value)
}

// Submit finishes the editor. A new record is created right away and the
// list reloaded. An edited record is handed to the admin gate instead; the
// draft stays open until the gate is confirmed or cancelled.
func (d *Directory) Submit(ctx context.Context) error {
	if d.state != StateEditorOpen {
		return ErrInvalidTransition
	}

	if d.mode == EditorEdit {
		d.gate = models.AdminGateRequest{Action: models.AdminActionUpdate, StudentID: d.editing}
		d.transition(StateGateOpen)
		return nil
	}

	if _, err := d.svc.Create(ctx, d.draft.Record()); err != nil {
		d.lastErr = err
		return err
	}
	d.closeEditor()
	d.transition(StateIdle)
	return d.Load(ctx)
}

// CancelEditor discards the draft and closes the editor.
func (d *Directory) CancelEditor() error {
	if d.state != StateEditorOpen {
		return ErrInvalidTransition
	}
	d.closeEditor()
	d.transition(StateIdle)
	return nil
}

// SetPassword stores the admin password verbatim.
func (d *Directory) SetPassword(text string) error {
	if d.state != StateGateOpen {
		return ErrInvalidTransition
	}
	d.gate.Password = text
	return nil
}

// Confirm issues exactly one Update or Delete for the pending action. On
// success the gate and the editor are closed and the list is reloaded. On
// failure the gate stays open with the inline error set.
func (d *Directory) Confirm(ctx context.Context) error {
	if d.state != StateGateOpen {
		return ErrInvalidTransition
	}

	var err error
	switch d.gate.Action {
	case models.AdminActionUpdate:
		_, err = d.svc.Update(ctx, d.gate.StudentID, d.draft.Record(), d.gate.Password)
	case models.AdminActionDelete:
		err = d.svc.Delete(ctx, d.gate.StudentID, d.gate.Password)
	default:
		return ErrInvalidTransition
	}
	if err != nil {
		d.lastErr = err
		return err
	}

	d.log.Info(ctx, "admin action confirmed", "action", string(d.gate.Action), "student_id", d.gate.StudentID)
	d.gate = models.AdminGateRequest{}
	d.closeEditor()
	d.transition(StateIdle)
	return d.Load(ctx)
}

// CancelGate closes the gate without any network call. A draft under edit
// is left open and untouched.
func (d *Directory) CancelGate() error {
	if d.state != StateGateOpen {
		return ErrInvalidTransition
	}
	back := StateIdle
	if d.gate.Action == models.AdminActionUpdate {
		back = StateEditorOpen
	}
	d.gate = models.AdminGateRequest{}
	d.transition(back)
	return nil
}

func (d *Directory) closeEditor() {
	d.mode = EditorCreate
	d.editing = ""
	d.draft = models.Draft{}
}
