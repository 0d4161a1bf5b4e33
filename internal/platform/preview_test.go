package platform

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notepad/pkg/core"
)

func TestPreview(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	rt, err := New(WithFile(path), WithIDs(counterIDs()))
	require.NoError(t, err)
	ctx := context.Background()

	rt.Service.Dispatch(ctx, core.CreateNote{})
	rt.Service.Dispatch(ctx, core.UpdateTitle{Title: "Groceries"})
	rt.Service.Dispatch(ctx, core.ExportNotes{})

	t.Run("No Changes After Export", func(t *testing.T) {
		p, err := rt.Preview()
		require.NoError(t, err)
		assert.False(t, p.Changed)
		assert.NotContains(t, p.Text, "{+")
	})

	t.Run("Shows Pending Changes", func(t *testing.T) {
		rt.Service.Dispatch(ctx, core.UpdateTitle{Title: "Chores"})
		p, err := rt.Preview()
		require.NoError(t, err)
		assert.True(t, p.Changed)

		disk, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, string(disk), applyPreview(p.Text))
		assert.Contains(t, string(disk), "Groceries")
	})

	t.Run("Missing File", func(t *testing.T) {
		require.NoError(t, os.Remove(path))
		p, err := rt.Preview()
		require.NoError(t, err)
		assert.True(t, p.Changed)
		assert.True(t, strings.HasPrefix(p.Text, "[-"), p.Text)
	})
}

var (
	removed = regexp.MustCompile(`(?s)\[-.*?-\]`)
	added   = regexp.MustCompile(`(?s)\{\+(.*?)\+\}`)
)

// applyPreview turns a preview into the on-disk side of the diff.
func applyPreview(text string) string {
	text = removed.ReplaceAllString(text, "")
	return added.ReplaceAllString(text, "$1")
}
