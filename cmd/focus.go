package cmd

import (
	"github.com/spf13/cobra"

	"github.com/easyfocus/easyfocus/internal/layout"
	"github.com/easyfocus/easyfocus/internal/output"
	"github.com/easyfocus/easyfocus/internal/platform"
	"github.com/easyfocus/easyfocus/internal/selection"
)

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Focus a window without the picker",
	Long: `Focus a window by con_id, by the label the picker would give it, or by
the best title match among visible windows.

Examples:
  easyfocus focus --con-id 94231
  easyfocus focus --label s
  easyfocus focus --match mutt`,
	Args: cobra.NoArgs,
	RunE: runFocus,
}

func init() {
	rootCmd.AddCommand(focusCmd)
	focusCmd.Flags().Int64("con-id", 0, "Focus the container with this con_id")
	focusCmd.Flags().String("label", "", "Focus the window with this label")
	focusCmd.Flags().String("match", "", "Focus the visible window whose title best matches")
	focusCmd.MarkFlagsOneRequired("con-id", "label", "match")
	focusCmd.MarkFlagsMutuallyExclusive("con-id", "label", "match")
}

func runFocus(cmd *cobra.Command, args []string) error {
	opts, err := cfg.SelectionOptions()
	if err != nil {
		return err
	}
	conID, _ := cmd.Flags().GetInt64("con-id")
	label, _ := cmd.Flags().GetString("label")
	match, _ := cmd.Flags().GetString("match")
	target := selection.Target{ConID: layout.NodeID(conID), Label: label, Match: match}

	ctx := cmd.Context()
	wm, err := platform.NewWindowManager(ctx)
	if err != nil {
		return err
	}
	defer wm.Close()

	w, err := selection.FocusTarget(ctx, wm, opts, target)
	if err != nil {
		if w.ConID != 0 {
			return &exitError{code: exitFocusFailed, err: err}
		}
		return err
	}
	logger.Info("focused", "con_id", w.ConID, "title", w.Title)
	return output.Print(output.FocusResult{OK: true, ConID: w.ConID, Title: w.Title})
}
