package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notepad"
	"github.com/aretw0/notepad/internal/shell"
)

func TestSession(t *testing.T) {
	t.Run("Start Failure Is Returned", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "missing", "notes.json")
		rt, err := notepad.New(notepad.WithFile(file), notepad.WithWatch(true))
		require.NoError(t, err)

		var out bytes.Buffer
		err = session(context.Background(), rt, shell.NewLineReader(strings.NewReader("")), &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to start")
	})

	t.Run("Runs Until Quit", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "notes.json")
		rt, err := notepad.New(notepad.WithFile(file))
		require.NoError(t, err)

		var out bytes.Buffer
		in := shell.NewLineReader(strings.NewReader("new\ntitle Groceries\nexport\nquit\n"))
		require.NoError(t, session(context.Background(), rt, in, &out))

		assert.Contains(t, out.String(), "exported 1 notes")
		assert.FileExists(t, file)
	})
}
