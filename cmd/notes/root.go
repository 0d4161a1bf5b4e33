package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/notepad"
	"github.com/aretw0/notepad/internal/platform"
)

var (
	verbose      bool
	configPath   string
	notesFile    string
	watch        bool
	backgroundIO bool
	noColor      bool

	// Resolved in PersistentPreRunE.
	cfg      notepad.Config
	closeLog func() error
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notes",
	Short: "A multi-note editor backed by a single JSON file",
	Long: `notes keeps a set of titled, color-tagged notes in memory.
Import replaces them with the contents of the note file; export writes them back.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = resolveConfig(cmd)
		if err != nil {
			return err
		}

		logger, closeFn, err := platform.NewLogger(cfg, os.Stderr)
		if err != nil {
			return err
		}
		closeLog = closeFn
		slog.SetDefault(logger)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if closeLog != nil {
			return closeLog()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return shellCmd.RunE(cmd, args)
	},
}

// resolveConfig layers flags over the YAML file over defaults.
func resolveConfig(cmd *cobra.Command) (notepad.Config, error) {
	path := configPath
	if path == "" {
		if found, err := platform.FindConfig("."); err == nil {
			path = found
		}
	}

	c, err := notepad.LoadConfig(path)
	if err != nil {
		return c, err
	}

	flags := cmd.Flags()
	if flags.Changed("file") {
		c.File = notesFile
	}
	if flags.Changed("watch") {
		c.Watch = watch
	}
	if flags.Changed("background") {
		c.BackgroundIO = backgroundIO
	}
	if verbose {
		c.LogLevel = "debug"
	}
	return c, c.Validate()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: nearest notepad.yaml)")
	rootCmd.PersistentFlags().StringVarP(&notesFile, "file", "f", "notes.json", "Note file used by import and export")
	rootCmd.PersistentFlags().BoolVarP(&watch, "watch", "w", false, "Report changes made to the note file by other programs")
	rootCmd.PersistentFlags().BoolVar(&backgroundIO, "background", false, "Run import and export off the event loop")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}
