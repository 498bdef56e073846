package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"notes-screen/internal/store/memory"
	"notes-screen/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Edit notes in the terminal",
	Run: func(cmd *cobra.Command, args []string) {
		p := tea.NewProgram(tui.New(memory.NewStore()), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fatal("Error running terminal UI", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
