package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/notepad"
	"github.com/aretw0/notepad/internal/shell"
	"github.com/aretw0/notepad/pkg/core"
)

var (
	showJSON bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Import the note file and print the note list",
	Long:  `Import the note file once and print the list. Outputs the notes as JSON with --json.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		rt, err := notepad.New(notepad.WithConfig(cfg), notepad.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to initialize notes", err)
		}

		rt.Service.Dispatch(cmd.Context(), core.ImportNotes{})
		m := rt.Service.Model()
		if m.Err != "" {
			fmt.Fprintf(os.Stderr, "Error importing notes: %s\n", m.Err)
			os.Exit(1)
		}

		if showJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(m.Notes); err != nil {
				fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}

		shell.WriteList(os.Stdout, rt.Service.View(), !noColor)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
}
