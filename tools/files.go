package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/yegekucuk/git2mind/index"
)

// FilesArgs defines the input parameters for the git2mind_files tool.
type FilesArgs struct {
	Pattern    string `json:"pattern" jsonschema:"Glob pattern to match files (e.g. **/*.py or docs/**/*.md)"`
	NameOnly   bool   `json:"nameOnly,omitempty" jsonschema:"If true return only file paths without metadata"`
	MaxResults int    `json:"maxResults,omitempty" jsonschema:"Maximum number of results to return (default 50)"`
}

// FilesHandler holds the dependencies for the files tool.
type FilesHandler struct {
	Index  *index.Index
	Logger *slog.Logger
}

// Handle processes a git2mind_files request.
func (h *FilesHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args FilesArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	if args.Pattern == "" {
		h.Logger.Warn("git2mind_files called with empty pattern")
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "Error: pattern parameter is required"}},
			IsError: true,
		}, nil, nil
	}

	results, err := h.Index.FilterByGlob(args.Pattern, args.MaxResults)
	if err != nil {
		h.Logger.Error("git2mind_files failed", "pattern", args.Pattern, "error", err)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("Search error: %v", err)}},
			IsError: true,
		}, nil, nil
	}

	h.Logger.Info("git2mind_files",
		"pattern", args.Pattern,
		"results", len(results),
		"elapsed", time.Since(start),
	)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: FormatFileResults(results, args.NameOnly)}},
	}, nil, nil
}
