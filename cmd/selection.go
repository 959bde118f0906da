package cmd

import (
	"github.com/mj1618/selection-lens/internal/output"
	"github.com/spf13/cobra"
)

var selectionCmd = &cobra.Command{
	Use:   "selection",
	Short: "Print the current text selection once",
	Long: `Walk the focused application once and print the selected text, its bounds
[x, y, width, height], the owning pid and the focused element's role.

The outcome field is "selection", "no_focused_element" or "no_selection".`,
	Args: cobra.NoArgs,
	RunE: runSelection,
}

func init() {
	rootCmd.AddCommand(selectionCmd)
}

func runSelection(cmd *cobra.Command, args []string) error {
	ctrl, err := newController()
	if err != nil {
		return err
	}
	defer ctrl.Close()

	return output.Print(ctrl.Walk().Selection())
}
