// Package picker holds the state of the color picker demo: a single
// optional choice over a fixed set of five colors.
package picker

import (
	"fmt"
	"strings"

	"github.com/aretw0/notepad/pkg/core"
)

// Option is one of the colors offered by the picker.
type Option int

const (
	Red Option = iota
	Green
	Blue
	Yellow
	Purple
)

// Options lists every choice in display order.
var Options = []Option{Red, Green, Blue, Yellow, Purple}

var names = [...]string{
	Red:    "Red",
	Green:  "Green",
	Blue:   "Blue",
	Yellow: "Yellow",
	Purple: "Purple",
}

var swatches = [...]core.RGB{
	Red:    {R: 1, G: 0, B: 0},
	Green:  {R: 0, G: 1, B: 0},
	Blue:   {R: 0, G: 0, B: 1},
	Yellow: {R: 1, G: 1, B: 0},
	Purple: {R: 0.5, G: 0, B: 0.5},
}

// Valid reports whether o is one of the known options.
func (o Option) Valid() bool { return o >= Red && o <= Purple }

func (o Option) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Option(%d)", int(o))
	}
	return names[o]
}

// RGB returns the fixed triple for o.
func (o Option) RGB() core.RGB {
	if !o.Valid() {
		return core.RGB{}
	}
	return swatches[o]
}

// Parse resolves an option name, ignoring case.
func Parse(name string) (Option, error) {
	for _, o := range Options {
		if strings.EqualFold(names[o], strings.TrimSpace(name)) {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", name)
}

// State is the picker's only state.
type State struct {
	selected Option
	set      bool
}

// Select overwrites the current choice.
func (s *State) Select(o Option) {
	s.selected = o
	s.set = true
}

// Selected returns the current choice, if any.
func (s *State) Selected() (Option, bool) {
	return s.selected, s.set
}

// Swatch is what the picker draws.
type Swatch struct {
	Label string
	Color core.RGB
	Set   bool
}

// Render describes the swatch for s.
func Render(s State) Swatch {
	o, ok := s.Selected()
	if !ok {
		return Swatch{Label: "No color selected"}
	}
	return Swatch{Label: o.String(), Color: o.RGB(), Set: true}
}
