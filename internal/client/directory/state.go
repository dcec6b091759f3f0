package directory

// State is the dialog state of the directory.
type State int

const (
	// StateIdle: only the table is shown.
	StateIdle State = iota
	// StateEditorOpen: the record editor holds a draft.
	StateEditorOpen
	// StateGateOpen: the admin gate waits for a password. For updates the
	// editor and its draft stay open underneath.
	StateGateOpen
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditorOpen:
		return "editor"
	case StateGateOpen:
		return "gate"
	default:
		return "unknown"
	}
}

// EditorMode tells whether the draft creates a new record or edits one.
type EditorMode int

const (
	EditorCreate EditorMode = iota
	EditorEdit
)

// Title is the editor heading.
func (m EditorMode) Title() string {
	if m == EditorEdit {
		return "Edit Student"
	}
	return "Add Student"
}

// SubmitLabel is the label of the editor's submit action.
func (m EditorMode) SubmitLabel() string {
	if m == EditorEdit {
		return "Update"
	}
	return "Add"
}
