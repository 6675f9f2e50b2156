package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/easyfocus/easyfocus/internal/model"
	"github.com/easyfocus/easyfocus/internal/output"
	"github.com/easyfocus/easyfocus/internal/platform"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the window manager's container tree",
	Long: `Print the container tree as nested elements, or with --flat as one line
per container with a breadcrumb path.

Examples:
  easyfocus tree
  easyfocus tree --flat --focused
  easyfocus tree --flat --match term`,
	Args: cobra.NoArgs,
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().Bool("flat", false, "One container per line with its path")
	treeCmd.Flags().Bool("focused", false, "Only the path down to the focused container")
	treeCmd.Flags().String("match", "", "Only containers whose name matches, with their ancestors")
}

func runTree(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	wm, err := platform.NewWindowManager(ctx)
	if err != nil {
		return err
	}
	defer wm.Close()

	tree, err := wm.GetTree(ctx)
	if err != nil {
		return err
	}

	elements := []model.Element{model.FromNode(tree)}
	if focused, _ := cmd.Flags().GetBool("focused"); focused {
		elements = model.FilterByFocused(elements)
	}
	if match, _ := cmd.Flags().GetString("match"); match != "" {
		elements = model.FilterElements(elements, match)
	}

	ts := time.Now().Unix()
	if flat, _ := cmd.Flags().GetBool("flat"); flat {
		return output.Print(output.TreeFlatResult{TS: ts, Elements: model.FlattenElements(elements)})
	}
	return output.Print(output.TreeResult{TS: ts, Elements: elements})
}
