package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notepad"
)

// resetFlags puts every flag back to its default now and when the test ends,
// so a run never sees values parsed by an earlier Execute.
func resetFlags(t *testing.T) {
	t.Helper()
	reset := func() {
		rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
		cfg = notepad.Config{}
	}
	reset()
	t.Cleanup(reset)
}

func TestResolveConfig(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "notepad.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("file: from-yaml.json\nwatch: true\nlog_level: warn\n"), 0644))

	t.Run("File Values", func(t *testing.T) {
		resetFlags(t)
		rootCmd.SetArgs([]string{"version", "--config", configFile})
		require.NoError(t, rootCmd.Execute())

		assert.Equal(t, "from-yaml.json", cfg.File)
		assert.True(t, cfg.Watch)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("Flags Win", func(t *testing.T) {
		resetFlags(t)
		rootCmd.SetArgs([]string{"version", "--config", configFile, "--file", "flag.json", "--watch=false", "-v"})
		require.NoError(t, rootCmd.Execute())

		assert.Equal(t, "flag.json", cfg.File)
		assert.False(t, cfg.Watch)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("Invalid Config Fails", func(t *testing.T) {
		resetFlags(t)
		bad := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(bad, []byte("log_level: shouting\n"), 0644))

		rootCmd.SetArgs([]string{"version", "--config", bad})
		assert.Error(t, rootCmd.Execute())
	})

	t.Run("Repeated Runs", func(t *testing.T) {
		for range 3 {
			resetFlags(t)
			rootCmd.SetArgs([]string{"version", "--config", configFile, "-v"})
			require.NoError(t, rootCmd.Execute())
			assert.Equal(t, "debug", cfg.LogLevel)

			resetFlags(t)
			rootCmd.SetArgs([]string{"version", "--config", configFile})
			require.NoError(t, rootCmd.Execute())
			assert.Equal(t, "warn", cfg.LogLevel)
			assert.Equal(t, "from-yaml.json", cfg.File)
		}
	})
}
