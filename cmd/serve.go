package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/easyfocus/easyfocus/internal/platform"
	"github.com/easyfocus/easyfocus/internal/server"
	"github.com/easyfocus/easyfocus/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing window listing and focusing",
	Long: `Start a Model Context Protocol (MCP) server with the tools
visible_windows, focus_window and layout_tree. Labels returned by
visible_windows stay valid for focus_window until the cache expires or a
window is focused.

The server speaks MCP over standard input and output.

Examples:
  easyfocus serve
  easyfocus serve -a --cache-ttl 0`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().Int("cache-ttl", 5000, "How long labels from visible_windows stay valid, in milliseconds (0 to disable)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cacheTTLMs, _ := cmd.Flags().GetInt("cache-ttl")

	opts, err := cfg.SelectionOptions()
	if err != nil {
		return err
	}
	wm, err := platform.NewWindowManager(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to connect to the window manager: %w", err)
	}
	defer wm.Close()

	sc := server.Config{
		Transport: "stdio",
		CacheTTL:  time.Duration(cacheTTLMs) * time.Millisecond,
		Version:   version.Version,
	}
	logger.Info("serving", "transport", sc.Transport)
	return server.New(wm, opts, logger, sc).Serve(sc)
}
