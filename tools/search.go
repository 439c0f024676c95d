package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/yegekucuk/git2mind/index"
)

// SearchArgs defines the input parameters for the git2mind_search tool.
type SearchArgs struct {
	Query        string `json:"query" jsonschema:"Search query. Plain text for word match, quoted for exact phrase, /regex/ for regular expression"`
	FileGlob     string `json:"fileGlob,omitempty" jsonschema:"Optional glob pattern to filter files (e.g. **/*.py)"`
	MaxResults   int    `json:"maxResults,omitempty" jsonschema:"Maximum number of file results to return (default 50)"`
	ContextLines int    `json:"contextLines,omitempty" jsonschema:"Number of context lines before and after each match (default 2)"`
}

// SearchHandler holds the dependencies for the search tool.
type SearchHandler struct {
	Index  *index.Index
	Logger *slog.Logger
}

// Handle processes a git2mind_search request.
func (h *SearchHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args SearchArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	if args.Query == "" {
		h.Logger.Warn("git2mind_search called with empty query")
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "Error: query parameter is required"}},
			IsError: true,
		}, nil, nil
	}

	contextLines := args.ContextLines
	if contextLines == 0 {
		contextLines = 2
	}

	results, totalMatches, err := h.Index.Search(index.SearchOptions{
		Query:        args.Query,
		FileGlob:     args.FileGlob,
		MaxResults:   args.MaxResults,
		ContextLines: contextLines,
	})
	if err != nil {
		h.Logger.Error("git2mind_search failed", "query", args.Query, "error", err)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("Search error: %v", err)}},
			IsError: true,
		}, nil, nil
	}

	h.Logger.Info("git2mind_search",
		"query", args.Query,
		"fileGlob", args.FileGlob,
		"files", len(results),
		"matches", totalMatches,
		"elapsed", time.Since(start),
	)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: FormatSearchResults(results, totalMatches)}},
	}, nil, nil
}
