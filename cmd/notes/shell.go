package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/aretw0/notepad"
	"github.com/aretw0/notepad/internal/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Edit notes interactively",
	Long:  `Start an interactive session. Type help for the list of commands.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		rt, err := notepad.New(notepad.WithConfig(cfg), notepad.WithLogger(slog.Default()))
		if err != nil {
			return fmt.Errorf("failed to initialize notes: %w", err)
		}

		rl, err := readline.NewEx(&readline.Config{
			Prompt:      "notes> ",
			HistoryFile: cfg.HistoryFile,
		})
		if err != nil {
			return fmt.Errorf("failed to open terminal: %w", err)
		}
		defer rl.Close()

		return session(ctx, rt, terminal{rl}, rl.Stdout())
	},
}

// session runs the event loop alongside the line-driven front end until the
// input ends.
func session(ctx context.Context, rt *notepad.Runtime, in shell.LineReader, out io.Writer) error {
	front := shell.NewNotes(rt, out, !noColor)
	loop, err := rt.Start(ctx, front.Render)
	if err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}

	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		_ = loop.Run(loopCtx)
	}()

	return front.Run(ctx, in, loop)
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

func init() {
	rootCmd.AddCommand(shellCmd)
}
