package server

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mj1618/winzorder/internal/model"
	"github.com/mj1618/winzorder/internal/output"
	"github.com/mj1618/winzorder/internal/platform"
)

// toolError converts a query failure into a tool error result.
func (s *Server) toolError(tool string, err error) *mcp.CallToolResult {
	if errors.Is(err, platform.ErrUnsupported) {
		return mcp.NewToolResultError("window queries are not supported on this platform")
	}
	s.logger.Warn("tool call failed", "tool", tool, "error", err)
	return mcp.NewToolResultError(err.Error())
}

// yamlResult serializes v to YAML for the MCP response.
func yamlResult(v interface{}) *mcp.CallToolResult {
	text, err := output.YAMLString(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultText(text)
}

func (s *Server) handleListWindows(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	onScreen := boolParam(params, "on_screen", false)
	title := stringParam(params, "title", "")

	var bbox *model.Rect
	if raw := stringParam(params, "bbox", ""); raw != "" {
		r, err := platform.ParseBBox(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		bbox = &r
	}

	s.sourceMu.Lock()
	defer s.sourceMu.Unlock()

	opts := s.queryOptions(params)
	if title != "" {
		opts.IncludeTitle = platform.Bool(true)
	}
	windows, err := s.source.ListWindows(opts)
	if err != nil {
		return s.toolError("list_windows", err), nil
	}
	windows = model.FilterWindows(windows, onScreen, bbox)
	windows = model.FilterByTitle(windows, title)

	return yamlResult(output.NewListResult(s.now().Unix(), windows)), nil
}

func (s *Server) handleGetWindow(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	id := stringParam(params, "id", "")
	if id == "" {
		return mcp.NewToolResultError("id is required"), nil
	}

	s.sourceMu.Lock()
	defer s.sourceMu.Unlock()

	w, err := s.source.GetWindow(id, s.queryOptions(params))
	if err != nil {
		return s.toolError("get_window", err), nil
	}
	return yamlResult(output.NewWindowResult(w)), nil
}

func (s *Server) handleGetWindowsAbove(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	id := stringParam(params, "id", "")
	if id == "" {
		return mcp.NewToolResultError("id is required"), nil
	}
	overlapping := boolParam(params, "overlapping", false)
	opts := s.queryOptions(params)

	s.sourceMu.Lock()
	defer s.sourceMu.Unlock()

	above, err := s.source.GetWindowsAbove(id, opts)
	if err != nil {
		return s.toolError("get_windows_above", err), nil
	}
	if overlapping {
		target, err := s.source.GetWindow(id, platform.Light())
		if err != nil {
			return s.toolError("get_windows_above", err), nil
		}
		if target == nil {
			above = []model.Window{}
		} else {
			above = model.Occluders(above, *target)
		}
	}

	return yamlResult(output.AboveResult{
		Target:  id,
		TS:      s.now().Unix(),
		Count:   len(above),
		Windows: above,
	}), nil
}

func (s *Server) handleGetForegroundWindow(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	s.sourceMu.Lock()
	defer s.sourceMu.Unlock()

	w, err := s.source.GetForegroundWindow(s.queryOptions(params))
	if err != nil {
		return s.toolError("get_foreground_window", err), nil
	}
	return yamlResult(output.NewWindowResult(w)), nil
}
