package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type reportSource interface {
	Latest() (*Report, bool)
}

type analysisTools struct {
	source reportSource
}

func NewAnalysisServer(source reportSource) *server.MCPServer {
	tools := &analysisTools{source: source}
	srv := server.NewMCPServer("doc-organizer", "0.0.1", server.WithToolCapabilities(false))

	srv.AddTool(mcp.NewTool("analysis_report",
		mcp.WithDescription("Returns the full JSON analysis report of the documentation set"),
	), tools.report)

	srv.AddTool(mcp.NewTool("document_quality",
		mcp.WithDescription("Returns category, quality score and keywords of a single document"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("File name of the document, e.g. API_GUIDE.md"),
		),
	), tools.documentQuality)

	srv.AddTool(mcp.NewTool("duplicate_groups",
		mcp.WithDescription("Lists groups of duplicate and near-duplicate documents"),
	), tools.duplicates)

	return srv
}

func (t *analysisTools) report(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, ok := t.source.Latest()
	if !ok {
		return mcp.NewToolResultError("analysis has not finished yet"), nil
	}

	return jsonResult(report)
}

func (t *analysisTools) documentQuality(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	report, ok := t.source.Latest()
	if !ok {
		return mcp.NewToolResultError("analysis has not finished yet"), nil
	}

	doc, ok := report.Find(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("document not found: %s", name)), nil
	}

	return jsonResult(doc)
}

func (t *analysisTools) duplicates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, ok := t.source.Latest()
	if !ok {
		return mcp.NewToolResultError("analysis has not finished yet"), nil
	}

	return jsonResult(report.Duplicates)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(raw)), nil
}
