package server

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/easyfocus/easyfocus/internal/layout"
	"github.com/easyfocus/easyfocus/internal/model"
	"github.com/easyfocus/easyfocus/internal/output"
	"github.com/easyfocus/easyfocus/internal/selection"
)

// toText serializes v to YAML for an MCP response.
func toText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

func (s *Server) requestOptions(params map[string]interface{}) (selection.Options, error) {
	opts := s.opts
	if area := StringParam(params, "area", ""); area != "" {
		a, err := layout.ParseSearchArea(area)
		if err != nil {
			return opts, err
		}
		opts.Area = a
	}
	if sortBy := StringParam(params, "sort-by", ""); sortBy != "" {
		m, err := layout.ParseSortMethod(sortBy)
		if err != nil {
			return opts, err
		}
		opts.Sort = m
	}
	return opts, nil
}

func (s *Server) handleVisibleWindows(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	opts, err := s.requestOptions(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.wmMu.Lock()
	defer s.wmMu.Unlock()

	plan, err := s.cache.Plan(ctx, s.wm, opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	for _, d := range plan.Diagnostics {
		s.log.Warn(d.Message, "kind", string(d.Kind))
	}

	windows := model.FilterWindows(model.Windows(plan.Tree, plan.Table), StringParam(params, "match", ""))
	if windows == nil {
		windows = []model.Window{}
	}
	return mcp.NewToolResultText(toText(output.ListResult{
		Area:    opts.Area.String(),
		TS:      time.Now().Unix(),
		Windows: windows,
	})), nil
}

func (s *Server) handleFocusWindow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	target := selection.Target{
		ConID: layout.NodeID(IntParam(params, "con-id", 0)),
		Label: StringParam(params, "label", ""),
		Match: StringParam(params, "match", ""),
	}
	if target.ConID == 0 && target.Label == "" && target.Match == "" {
		return mcp.NewToolResultError("one of con-id, label or match is required"), nil
	}

	s.wmMu.Lock()
	defer s.wmMu.Unlock()

	// Labels refer to the plan the caller last saw.
	plan, ok := s.cache.Latest()
	if !ok {
		var err error
		plan, err = selection.BuildPlan(ctx, s.wm, s.opts)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}
	w, err := selection.Lookup(plan, target)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.wm.Focus(ctx, layout.NodeID(w.ConID)); err != nil {
		s.log.Error("cannot focus window", err, "con_id", w.ConID)
		return mcp.NewToolResultError(toText(output.FocusResult{ConID: w.ConID, Title: w.Title})), nil
	}
	s.cache.InvalidateAll()
	s.log.Info("focused", "con_id", w.ConID, "title", w.Title)
	return mcp.NewToolResultText(toText(output.FocusResult{OK: true, ConID: w.ConID, Title: w.Title})), nil
}

func (s *Server) handleLayoutTree(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	s.wmMu.Lock()
	tree, err := s.wm.GetTree(ctx)
	s.wmMu.Unlock()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	elements := []model.Element{model.FromNode(tree)}
	if BoolParam(params, "focused", false) {
		elements = model.FilterByFocused(elements)
	}
	ts := time.Now().Unix()
	if BoolParam(params, "flat", false) {
		return mcp.NewToolResultText(toText(output.TreeFlatResult{TS: ts, Elements: model.FlattenElements(elements)})), nil
	}
	return mcp.NewToolResultText(toText(output.TreeResult{TS: ts, Elements: elements})), nil
}
