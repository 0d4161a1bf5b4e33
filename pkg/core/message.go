package core

// Message is a discrete action applied to a Model.
type Message interface {
	isMessage()
}

// CreateNote adds a note with default fields and selects it.
// ID is optional; a fresh one is generated when empty or already taken.
type CreateNote struct{ ID string }

// SelectNote points the editor at a note. The ID is not validated.
type SelectNote struct{ ID string }

// UpdateTitle replaces the title of the selected note.
type UpdateTitle struct{ Title string }

// UpdateContent replaces the body of the selected note.
type UpdateContent struct{ Content string }

// ChangeColor retags the selected note.
type ChangeColor struct{ Color Color }

// ImportNotes asks for the note file to be loaded.
// It is resolved by Service into NotesImported or OperationFailed.
type ImportNotes struct{}

// ExportNotes asks for the current notes to be written out.
// It is resolved by Service into NotesExported or OperationFailed.
type ExportNotes struct{}

// NotesImported carries a fully decoded note collection.
type NotesImported struct{ Notes Notes }

// NotesExported reports a completed export.
type NotesExported struct{}

// OperationFailed reports a failed import or export.
type OperationFailed struct {
	Op  string
	Err error
}

// ClearError dismisses the error banner.
type ClearError struct{}

// FileChanged reports that the note file was modified by someone else.
type FileChanged struct{ Path string }

func (CreateNote) isMessage()      {}
func (SelectNote) isMessage()      {}
func (UpdateTitle) isMessage()     {}
func (UpdateContent) isMessage()   {}
func (ChangeColor) isMessage()     {}
func (ImportNotes) isMessage()     {}
func (ExportNotes) isMessage()     {}
func (NotesImported) isMessage()   {}
func (NotesExported) isMessage()   {}
func (OperationFailed) isMessage() {}
func (ClearError) isMessage()      {}
func (FileChanged) isMessage()     {}
