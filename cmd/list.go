package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/easyfocus/easyfocus/internal/model"
	"github.com/easyfocus/easyfocus/internal/output"
	"github.com/easyfocus/easyfocus/internal/platform"
	"github.com/easyfocus/easyfocus/internal/selection"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List visible windows with the labels the picker would show",
	Long: `List the windows that would be labeled, in label order, without grabbing
any keys. Windows beyond the label alphabet are listed last without a label.

Examples:
  easyfocus list
  easyfocus list -a --sort-by num
  easyfocus list --match firefox --format json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("match", "", "Only windows whose title fuzzily matches this text")
}

func runList(cmd *cobra.Command, args []string) error {
	opts, err := cfg.SelectionOptions()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	wm, err := platform.NewWindowManager(ctx)
	if err != nil {
		return err
	}
	defer wm.Close()

	plan, err := selection.BuildPlan(ctx, wm, opts)
	if err != nil {
		return err
	}
	for _, d := range plan.Diagnostics {
		logger.Warn(d.Message, "kind", string(d.Kind), "con_id", int64(d.NodeID))
	}

	match, _ := cmd.Flags().GetString("match")
	windows := model.FilterWindows(model.Windows(plan.Tree, plan.Table), match)
	if windows == nil {
		windows = []model.Window{}
	}
	return output.Print(output.ListResult{
		Area:    opts.Area.String(),
		TS:      time.Now().Unix(),
		Windows: windows,
	})
}
