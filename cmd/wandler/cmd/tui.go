package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/wandler/internal/engine"
	"github.com/msto63/wandler/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [text...]",
	Short: "Starts the interactive terminal UI",
	Long: `Starts the interactive terminal UI, optionally with initial text.

Navigation:
  Tab / Shift+Tab   - switch between text, transform list and regex inputs
  Ctrl+← / Ctrl+→   - switch tabs
  ↑ ↓ Enter         - pick and apply a transform
  Ctrl+Z            - undo the last change
  Ctrl+Y / Ctrl+V   - copy the text / replace it with the clipboard
  Ctrl+L            - clear the text
  F1                - toggle help
  Esc / Ctrl+C      - quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := tui.Config{
		StartTab:  appConfig.TUI.StartTab,
		ShowHelp:  appConfig.TUI.ShowHelp,
		Clipboard: appConfig.TUI.Clipboard,
	}
	return tui.Run(engine.New(), cfg, strings.Join(args, " "))
}
