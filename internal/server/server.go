// Package server exposes window listing and focusing as MCP tools.
package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/easyfocus/easyfocus/internal/logging"
	"github.com/easyfocus/easyfocus/internal/platform"
	"github.com/easyfocus/easyfocus/internal/selection"
)

// Config holds MCP server configuration.
type Config struct {
	// Transport is "stdio"; the server opens no network listener.
	Transport string
	// CacheTTL keeps a plan so labels from visible_windows stay valid for
	// a following focus_window. Zero disables caching.
	CacheTTL time.Duration
	Version  string
}

// Server serves the tools over one window manager connection.
type Server struct {
	wm    platform.WindowManager
	opts  selection.Options
	log   *logging.Logger
	cache *PlanCache

	// wmMu serializes requests on the window manager connection.
	wmMu sync.Mutex
	mcp  *mcpserver.MCPServer
}

// New creates and configures an MCP server with all tools registered.
func New(wm platform.WindowManager, opts selection.Options, log *logging.Logger, cfg Config) *Server {
	if log == nil {
		log = logging.Nop()
	}
	version := cfg.Version
	if version == "" {
		version = "dev"
	}
	s := &Server{
		wm:    wm,
		opts:  opts,
		log:   log,
		cache: NewPlanCache(cfg.CacheTTL),
		mcp:   mcpserver.NewMCPServer("easyfocus", version),
	}
	s.registerTools()
	return s
}

// Serve starts the server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "", "stdio":
		return mcpserver.ServeStdio(s.mcp)
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("visible_windows",
			mcp.WithDescription("List the windows currently visible on screen with the keyboard labels the picker would assign"),
			mcp.WithString("area", mcp.Description("Search area: output (default), all, container")),
			mcp.WithString("sort-by", mcp.Description("Workspace order with area=all: location (default) or num")),
			mcp.WithString("match", mcp.Description("Only windows whose title fuzzily matches this text")),
		),
		s.handleVisibleWindows,
	)

	s.mcp.AddTool(
		mcp.NewTool("focus_window",
			mcp.WithDescription("Focus a window by container id, by the label from visible_windows, or by title"),
			mcp.WithNumber("con-id", mcp.Description("Container id")),
			mcp.WithString("label", mcp.Description("Label from the last visible_windows call")),
			mcp.WithString("match", mcp.Description("Focus the window whose title best matches this text")),
		),
		s.handleFocusWindow,
	)

	s.mcp.AddTool(
		mcp.NewTool("layout_tree",
			mcp.WithDescription("Dump the window manager's container tree"),
			mcp.WithBoolean("flat", mcp.Description("Flatten to a list with path breadcrumbs")),
			mcp.WithBoolean("focused", mcp.Description("Only the path to the focused container")),
		),
		s.handleLayoutTree,
	)
}
