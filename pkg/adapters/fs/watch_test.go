package fs_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notepad/pkg/adapters/fs"
	"github.com/aretw0/notepad/pkg/core"
)

func TestWatch(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping filesystem watcher test in short mode")
	}

	repo, path := setupRepo(t, func(c *fs.Config) {
		c.Debounce = 20 * time.Millisecond
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, repo.Store(ctx, core.Notes{}))

	events, err := repo.Watch(ctx)
	require.NoError(t, err)

	t.Run("Ignores Own Writes", func(t *testing.T) {
		require.NoError(t, repo.Store(ctx, core.Notes{"own": {ID: "own", Color: core.Blue}}))
		select {
		case ev := <-events:
			t.Fatalf("unexpected event for own write: %+v", ev)
		case <-time.After(300 * time.Millisecond):
		}
	})

	t.Run("Reports Foreign Writes", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte(`{"x":{"id":"x","title":"","content":"","color":"Red"}}`), 0644))
		select {
		case ev := <-events:
			assert.Equal(t, path, ev.Path)
		case <-time.After(3 * time.Second):
			t.Fatal("timed out waiting for change event")
		}
	})

	t.Run("Closes On Cancel", func(t *testing.T) {
		cancel()
		deadline := time.After(3 * time.Second)
		for {
			select {
			case _, ok := <-events:
				if !ok {
					return
				}
			case <-deadline:
				t.Fatal("event channel was not closed")
			}
		}
	})
}
