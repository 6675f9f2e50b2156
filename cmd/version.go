package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"

	"github.com/easyfocus/easyfocus/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	// Printing the version must work with a broken config file.
	PersistentPreRun: func(*cobra.Command, []string) {},
	Run: func(cmd *cobra.Command, _ []string) {
		short, _ := cmd.Flags().GetBool("short")
		format, _ := cmd.Flags().GetString("output")
		fmt.Fprint(cmd.OutOrStdout(), goversion.FuncWithOutput(short, version.Version, version.Commit, version.BuildDate, format))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().Bool("short", false, "Print just the version number")
	versionCmd.Flags().StringP("output", "o", "json", "Output format. One of 'yaml' or 'json'")
}
