package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/yegekucuk/git2mind/index"
)

// ReadArgs defines the input parameters for the git2mind_read tool.
type ReadArgs struct {
	FilePath string `json:"filePath" jsonschema:"Relative file path to read from the scan (e.g. src/main.py)"`
}

// ReadHandler holds the dependencies for the read tool.
type ReadHandler struct {
	Index  *index.Index
	Logger *slog.Logger
}

// Handle processes a git2mind_read request.
func (h *ReadHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args ReadArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	if args.FilePath == "" {
		h.Logger.Warn("git2mind_read called with empty filePath")
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "Error: filePath parameter is required"}},
			IsError: true,
		}, nil, nil
	}

	doc, ok := h.Index.Document(args.FilePath)
	if !ok {
		h.Logger.Info("git2mind_read file not found", "filePath", args.FilePath)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("File not found in scan: %s", args.FilePath)}},
			IsError: true,
		}, nil, nil
	}

	h.Logger.Info("git2mind_read", "filePath", args.FilePath, "elapsed", time.Since(start))

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: FormatFileContent(doc.Path, doc.Content)}},
	}, nil, nil
}
