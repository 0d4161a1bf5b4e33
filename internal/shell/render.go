package shell

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/aretw0/notepad/pkg/core"
	"github.com/aretw0/notepad/pkg/picker"
)

// byte8 converts a 0..1 channel to 0..255.
func byte8(v float32) uint8 {
	return uint8(math.Round(float64(min(max(v, 0), 1)) * 255))
}

func triple(c core.RGB) string {
	return fmt.Sprintf("(%d, %d, %d)", byte8(c.R), byte8(c.G), byte8(c.B))
}

// paint wraps text in a 24-bit background escape when color is enabled.
func paint(text string, bg core.RGB, color bool) string {
	if !color {
		return text
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm\x1b[30m%s\x1b[0m", byte8(bg.R), byte8(bg.G), byte8(bg.B), text)
}

// WriteList prints the note list, one button per line.
func WriteList(w io.Writer, v core.View, color bool) {
	if len(v.List) == 0 {
		fmt.Fprintln(w, "(no notes)")
		return
	}
	for i, b := range v.List {
		label := paint(" "+b.Title+" ", b.Idle.Background, color)
		fmt.Fprintf(w, "#%-3d %s  %s  %s\n", i+1, label, b.Color, b.ID)
	}
}

// WriteEditor prints the editor pane.
func WriteEditor(w io.Writer, v core.View) {
	if v.Editor.Mode != core.EditorEditing {
		fmt.Fprintln(w, v.Editor.Prompt)
		return
	}
	n := v.Editor.Note
	names := make([]string, 0, len(core.Colors))
	for _, c := range core.Colors {
		names = append(names, c.String())
	}
	fmt.Fprintf(w, "id:      %s\n", n.ID)
	fmt.Fprintf(w, "title:   %s\n", n.Title)
	fmt.Fprintf(w, "content: %s\n", n.Content)
	fmt.Fprintf(w, "color:   %s  [%s]\n", n.Color, strings.Join(names, " "))
}

// WriteBanner prints the error banner and the stale marker, if any.
func WriteBanner(w io.Writer, v core.View) {
	if v.Banner != "" {
		fmt.Fprintf(w, "error: %s\n", v.Banner)
	}
	if v.Stale {
		fmt.Fprintln(w, "note file changed on disk; run import to reload")
	}
}

// WriteSwatch prints the color picker's swatch.
func WriteSwatch(w io.Writer, s picker.Swatch, color bool) {
	if !s.Set {
		fmt.Fprintln(w, s.Label)
		return
	}
	fmt.Fprintf(w, "%s %s %s\n", paint("      ", s.Color, color), s.Label, triple(s.Color))
}
