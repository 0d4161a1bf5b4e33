package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/aretw0/notepad/internal/platform"
	"github.com/aretw0/notepad/pkg/core"
)

// Notes is the terminal front end of the notes application.
type Notes struct {
	rt    *platform.Runtime
	color bool

	mu        sync.Mutex
	out       io.Writer
	view      core.View
	lastStale bool
}

// NewNotes creates a front end writing to out. color enables ANSI swatches.
func NewNotes(rt *platform.Runtime, out io.Writer, color bool) *Notes {
	return &Notes{rt: rt, out: out, color: color}
}

// Render is the loop's Renderer. It keeps the latest view and announces
// foreign edits as they appear.
func (n *Notes) Render(v core.View) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.view = v
	if v.Stale && !n.lastStale {
		fmt.Fprintln(n.out, "note file changed on disk; run import to reload")
	}
	n.lastStale = v.Stale
}

// Run reads commands until quit, end of input or ctx ends.
func (n *Notes) Run(ctx context.Context, in LineReader, loop *platform.Loop) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		line, err := in.Readline()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		cmd, err := Parse(line, n.current())
		if err != nil {
			n.printf("%v (try help)\n", err)
			continue
		}

		switch cmd.Kind {
		case KindEmpty:
		case KindQuit:
			return nil
		case KindHelp:
			n.printf("%s", notesHelp)
		case KindList:
			n.write(func(w io.Writer) { WriteList(w, n.current(), n.color) })
		case KindShow:
			n.write(func(w io.Writer) {
				v := n.current()
				WriteEditor(w, v)
				WriteBanner(w, v)
			})
		case KindDiff:
			n.diff()
		case KindMessage:
			if err := loop.Dispatch(ctx, cmd.Msg); err != nil {
				return nil
			}
			n.acknowledge(cmd.Msg)
		}
	}
}

func (n *Notes) acknowledge(msg core.Message) {
	v := n.current()
	switch msg.(type) {
	case core.CreateNote, core.SelectNote:
		n.write(func(w io.Writer) { WriteEditor(w, v) })
	case core.ImportNotes:
		if v.Banner != "" {
			n.printf("error: %s\n", v.Banner)
			return
		}
		n.printf("imported %d notes\n", len(v.List))
	case core.ExportNotes:
		if v.Banner != "" {
			n.printf("error: %s\n", v.Banner)
			return
		}
		n.printf("exported %d notes to %s\n", len(v.List), n.rt.Config.File)
	case core.UpdateTitle, core.UpdateContent, core.ChangeColor:
		if v.Editor.Mode != core.EditorEditing {
			n.printf("%s\n", v.Editor.Prompt)
		}
	}
}

func (n *Notes) diff() {
	p, err := n.rt.Preview()
	if err != nil {
		n.printf("diff failed: %v\n", err)
		return
	}
	if !p.Changed {
		n.printf("no differences\n")
		return
	}
	n.printf("%s\n", p.Text)
}

func (n *Notes) current() core.View {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.view
}

func (n *Notes) printf(format string, args ...any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, format, args...)
}

// write renders into a buffer first so output is never interleaved with
// the loop's announcements.
func (n *Notes) write(fn func(w io.Writer)) {
	var buf bytes.Buffer
	fn(&buf)
	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = n.out.Write(buf.Bytes())
}
