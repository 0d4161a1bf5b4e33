package core

import "github.com/google/uuid"

// Selection is a soft reference into Model.Notes.
// It may point at an ID that no longer exists.
type Selection struct {
	ID  string
	Set bool
}

// Model is the whole state of the notes application.
// It has a single owner; nothing in it is safe for concurrent use.
type Model struct {
	Notes    Notes
	Selected Selection
	// Err holds the last import/export failure. Empty means no error.
	Err string
	// Stale is set when the note file changed behind our back.
	Stale bool

	newID func() string
}

// NewModel returns an empty model that names notes with random UUIDs.
func NewModel() *Model {
	return &Model{Notes: make(Notes), newID: uuid.NewString}
}

// WithIDs replaces the identifier source. Intended for tests.
func (m *Model) WithIDs(next func() string) *Model {
	m.newID = next
	return m
}

// Current returns the selected note, if the selection resolves.
func (m *Model) Current() (Note, bool) {
	if !m.Selected.Set {
		return Note{}, false
	}
	n, ok := m.Notes[m.Selected.ID]
	return n, ok
}

// Apply performs the state transition for msg.
// Intents that need I/O (ImportNotes, ExportNotes) are ignored here;
// Service resolves them first.
func (m *Model) Apply(msg Message) {
	if m.Notes == nil {
		m.Notes = make(Notes)
	}

	switch msg := msg.(type) {
	case CreateNote:
		id := m.freshID(msg.ID)
		m.Notes[id] = Note{ID: id, Title: DefaultTitle, Color: DefaultColor}
		m.Selected = Selection{ID: id, Set: true}

	case SelectNote:
		m.Selected = Selection{ID: msg.ID, Set: true}

	case UpdateTitle:
		m.edit(func(n *Note) { n.Title = msg.Title })

	case UpdateContent:
		m.edit(func(n *Note) { n.Content = msg.Content })

	case ChangeColor:
		m.edit(func(n *Note) { n.Color = msg.Color })

	case NotesImported:
		notes := msg.Notes
		if notes == nil {
			notes = make(Notes)
		}
		m.Notes = notes
		m.Err = ""
		m.Stale = false

	case NotesExported:
		m.Err = ""
		m.Stale = false

	case OperationFailed:
		m.Err = failureText(msg)

	case ClearError:
		m.Err = ""

	case FileChanged:
		m.Stale = true
	}
}

func (m *Model) edit(fn func(n *Note)) {
	if !m.Selected.Set {
		return
	}
	n, ok := m.Notes[m.Selected.ID]
	if !ok {
		return
	}
	fn(&n)
	m.Notes[m.Selected.ID] = n
}

func (m *Model) freshID(requested string) string {
	if requested != "" {
		if _, taken := m.Notes[requested]; !taken {
			return requested
		}
	}
	gen := m.newID
	if gen == nil {
		gen = uuid.NewString
	}
	for {
		id := gen()
		if _, taken := m.Notes[id]; !taken && id != "" {
			return id
		}
	}
}

func failureText(f OperationFailed) string {
	var text string
	if f.Err != nil {
		text = f.Err.Error()
	}
	switch {
	case text == "" && f.Op != "":
		return f.Op + " failed"
	case text == "":
		return "operation failed"
	}
	return text
}
