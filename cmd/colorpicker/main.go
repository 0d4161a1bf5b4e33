package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/aretw0/notepad/internal/platform"
	"github.com/aretw0/notepad/internal/shell"
)

var (
	pick    string
	noColor bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:          "colorpicker",
	Short:        "Pick one of five colors and see its swatch",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "info"
		if verbose {
			level = "debug"
		}
		logger, _, err := platform.NewLogger(platform.Config{LogLevel: level}, os.Stderr)
		if err != nil {
			return err
		}
		slog.SetDefault(logger)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		p := shell.NewPicker(os.Stdout, !noColor)
		if pick != "" {
			return p.Pick(pick)
		}

		rl, err := readline.NewEx(&readline.Config{Prompt: "color> "})
		if err != nil {
			return fmt.Errorf("failed to open terminal: %w", err)
		}
		defer rl.Close()

		slog.Debug("color picker started")
		return p.Run(terminal{rl})
	},
}

// terminal ends the session on Ctrl-C as it does on Ctrl-D.
type terminal struct {
	rl *readline.Instance
}

func (t terminal) Readline() (string, error) {
	line, err := t.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", io.EOF
	}
	return line, err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&pick, "pick", "p", "", "Pick a color and exit")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}
