package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/notepad/pkg/picker"
)

const pickerHelp = `commands:
  <color>             pick red, green, blue, yellow or purple
  select <color>      same as above
  list                show every color
  show                show the current pick
  quit                leave
`

// Picker is the terminal front end of the color picker demo.
type Picker struct {
	State picker.State
	out   io.Writer
	color bool
}

// NewPicker creates a picker writing to out.
func NewPicker(out io.Writer, color bool) *Picker {
	return &Picker{out: out, color: color}
}

// Pick selects name and prints the swatch.
func (p *Picker) Pick(name string) error {
	o, err := picker.Parse(name)
	if err != nil {
		return err
	}
	p.State.Select(o)
	WriteSwatch(p.out, picker.Render(p.State), p.color)
	return nil
}

// Run reads commands until quit or end of input.
func (p *Picker) Run(in LineReader) error {
	WriteSwatch(p.out, picker.Render(p.State), p.color)
	for {
		line, err := in.Readline()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		word, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
		switch strings.ToLower(word) {
		case "":
		case "quit", "exit", "q":
			return nil
		case "help", "?":
			fmt.Fprint(p.out, pickerHelp)
		case "show":
			WriteSwatch(p.out, picker.Render(p.State), p.color)
		case "list", "ls":
			for _, o := range picker.Options {
				var s picker.State
				s.Select(o)
				WriteSwatch(p.out, picker.Render(s), p.color)
			}
		case "select", "pick":
			if err := p.Pick(rest); err != nil {
				fmt.Fprintf(p.out, "%v\n", err)
			}
		default:
			if err := p.Pick(word); err != nil {
				fmt.Fprintf(p.out, "%v (try help)\n", err)
			}
		}
	}
}
