package core

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultTitle is the title given to freshly created notes.
const DefaultTitle = "New Note"

// Color is the tag attached to a note. The set is closed.
type Color int

const (
	Red Color = iota
	Green
	Blue
	Yellow
	Orange
)

// DefaultColor is the color given to freshly created notes.
const DefaultColor = Yellow

// Colors lists every color in display order.
var Colors = []Color{Red, Green, Blue, Yellow, Orange}

var colorNames = [...]string{
	Red:    "Red",
	Green:  "Green",
	Blue:   "Blue",
	Yellow: "Yellow",
	Orange: "Orange",
}

// Valid reports whether c is one of the known colors.
func (c Color) Valid() bool {
	return c >= Red && c <= Orange
}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// ParseColor resolves a color name, ignoring case.
func ParseColor(name string) (Color, error) {
	for _, c := range Colors {
		if strings.EqualFold(colorNames[c], strings.TrimSpace(name)) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidColor, name)
}

// MarshalText encodes the color as its name, so JSON carries "Green".
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidColor, int(c))
	}
	return []byte(colorNames[c]), nil
}

// UnmarshalText accepts only the exact color names.
func (c *Color) UnmarshalText(text []byte) error {
	for _, candidate := range Colors {
		if colorNames[candidate] == string(text) {
			*c = candidate
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidColor, string(text))
}

// Note is a user-authored record with a title, a body and a color tag.
type Note struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Color   Color  `json:"color"`
}

// UnmarshalJSON requires all four fields. A missing or null field is an
// error rather than a zero value.
func (n *Note) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID      *string `json:"id"`
		Title   *string `json:"title"`
		Content *string `json:"content"`
		Color   *Color  `json:"color"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.ID == nil:
		return fmt.Errorf("%w: %q", ErrMissingField, "id")
	case raw.Title == nil:
		return fmt.Errorf("%w: %q", ErrMissingField, "title")
	case raw.Content == nil:
		return fmt.Errorf("%w: %q", ErrMissingField, "content")
	case raw.Color == nil:
		return fmt.Errorf("%w: %q", ErrMissingField, "color")
	}
	*n = Note{ID: *raw.ID, Title: *raw.Title, Content: *raw.Content, Color: *raw.Color}
	return nil
}

// Notes is the keyed collection persisted as a single document.
type Notes map[string]Note

// Clone returns a copy that shares nothing with n.
func (n Notes) Clone() Notes {
	out := make(Notes, len(n))
	for id, note := range n {
		out[id] = note
	}
	return out
}
