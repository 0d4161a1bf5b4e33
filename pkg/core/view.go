package core

import "sort"

// EditorMode tells the front end what the editor pane shows.
type EditorMode int

const (
	EditorEmpty EditorMode = iota
	EditorNotFound
	EditorEditing
)

// Placeholder texts for the editor pane.
const (
	PromptSelect  = "Select a note to edit"
	PromptMissing = "Note not found"
)

// NoteButton is one entry of the note list.
type NoteButton struct {
	ID      string
	Title   string
	Color   Color
	Idle    Appearance
	Hovered Appearance
}

// Editor is the editor pane.
type Editor struct {
	Mode   EditorMode
	Prompt string
	Note   Note
}

// View is everything a front end needs to draw the notes window.
type View struct {
	List   []NoteButton
	Editor Editor
	Banner string
	Stale  bool
}

// Render derives the view from m. It never mutates m.
func Render(m *Model) View {
	v := View{Banner: m.Err, Stale: m.Stale}

	v.List = make([]NoteButton, 0, len(m.Notes))
	for id, n := range m.Notes {
		v.List = append(v.List, NoteButton{
			ID:      id,
			Title:   n.Title,
			Color:   n.Color,
			Idle:    Style(n.Color, Idle),
			Hovered: Style(n.Color, Hovered),
		})
	}
	sort.Slice(v.List, func(i, j int) bool {
		if v.List[i].Title != v.List[j].Title {
			return v.List[i].Title < v.List[j].Title
		}
		return v.List[i].ID < v.List[j].ID
	})

	switch {
	case !m.Selected.Set:
		v.Editor = Editor{Mode: EditorEmpty, Prompt: PromptSelect}
	default:
		if n, ok := m.Notes[m.Selected.ID]; ok {
			v.Editor = Editor{Mode: EditorEditing, Note: n}
		} else {
			v.Editor = Editor{Mode: EditorNotFound, Prompt: PromptMissing}
		}
	}

	return v
}
