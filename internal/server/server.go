// Package server exposes the window queries as Model Context Protocol tools.
package server

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mj1618/winzorder/internal/platform"
)

// Options configures a Server.
type Options struct {
	Name    string
	Version string

	// Query holds the defaults applied when a tool call omits
	// include_title or include_owner_pid.
	Query platform.QueryOptions

	Logger *slog.Logger
}

// Server wraps the MCP server around a WindowSource. The source offers no
// serialization of its own, so tool calls are run one at a time.
type Server struct {
	source   platform.WindowSource
	defaults platform.ResolvedOptions
	logger   *slog.Logger
	now      func() time.Time

	sourceMu sync.Mutex
	mcp      *mcpserver.MCPServer
}

// New creates a Server with all window tools registered.
func New(source platform.WindowSource, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	name := opts.Name
	if name == "" {
		name = "winzorder"
	}
	version := opts.Version
	if version == "" {
		version = "dev"
	}

	s := &Server{
		source:   source,
		defaults: opts.Query.Resolve(),
		logger:   logger,
		now:      time.Now,
	}
	s.mcp = mcpserver.NewMCPServer(name, version)
	s.registerTools()
	return s
}

// MCP returns the underlying MCP server.
func (s *Server) MCP() *mcpserver.MCPServer {
	return s.mcp
}

// Serve starts the MCP server with the given transport.
func (s *Server) Serve(transport string, port int) error {
	switch transport {
	case "stdio":
		s.logger.Debug("serving MCP", "transport", transport)
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		s.logger.Info("serving MCP", "transport", transport, "port", port)
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", transport)
	}
}

func (s *Server) registerTools() {
	includeTitle := mcp.WithBoolean("include_title",
		mcp.Description("Read each window's title (default true)"))
	includeOwnerPID := mcp.WithBoolean("include_owner_pid",
		mcp.Description("Read each window's owning process ID (default true)"))

	// list_windows
	s.mcp.AddTool(
		mcp.NewTool("list_windows",
			mcp.WithDescription("List top-level windows in z-order, topmost first. Tool windows and no-activate windows are excluded."),
			includeTitle,
			includeOwnerPID,
			mcp.WithBoolean("on_screen", mcp.Description("Only windows that are visible, not minimized and not cloaked")),
			mcp.WithString("bbox", mcp.Description("Only windows intersecting this region: x,y,width,height")),
			mcp.WithString("title", mcp.Description("Only windows whose title contains this text (case-insensitive)")),
		),
		s.handleListWindows,
	)

	// get_window
	s.mcp.AddTool(
		mcp.NewTool("get_window",
			mcp.WithDescription("Get one window by its win32:<hex> ID. Returns found: false if it is gone or excluded."),
			mcp.WithString("id", mcp.Required(), mcp.Description("Window ID, e.g. win32:1a2b")),
			includeTitle,
			includeOwnerPID,
		),
		s.handleGetWindow,
	)

	// get_windows_above
	s.mcp.AddTool(
		mcp.NewTool("get_windows_above",
			mcp.WithDescription("List the windows stacked above the given window, topmost first. Unknown IDs yield an empty list."),
			mcp.WithString("id", mcp.Required(), mcp.Description("Window ID, e.g. win32:1a2b")),
			mcp.WithBoolean("overlapping", mcp.Description("Only on-screen windows overlapping the target")),
			includeTitle,
			includeOwnerPID,
		),
		s.handleGetWindowsAbove,
	)

	// get_foreground_window
	s.mcp.AddTool(
		mcp.NewTool("get_foreground_window",
			mcp.WithDescription("Get the foreground window. Returns found: false if there is none or it is excluded."),
			includeTitle,
			includeOwnerPID,
		),
		s.handleGetForegroundWindow,
	)
}
