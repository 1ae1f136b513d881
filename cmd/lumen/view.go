package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"lumen/internal/ui"
)

var viewCmd = &cobra.Command{
	Use:   "view [flags] <snapshot>",
	Short: "Browse a snapshot value in an interactive pager",
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func init() {
	registerSettingsFlags(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	lv, _, err := loadSnapshotFile(args[0])
	if err != nil {
		return err
	}

	text := lv.renderer.Render(lv.root, settings)
	model := ui.NewPagerModel(args[0], text)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("pager failed: %w", err)
	}
	return nil
}
