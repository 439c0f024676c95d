package tools

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/yegekucuk/git2mind/index"
	"github.com/yegekucuk/git2mind/repo"
)

func newTestIndex(t *testing.T) *index.Index {
	t.Helper()
	docs := []repo.Document{
		{ID: "1", Path: "src/app.py", Kind: repo.KindPython, SizeBytes: 60, LineCount: 3,
			Content: "def main():\n    print(\"hello world\")\n    return\n"},
		{ID: "2", Path: "README.md", Kind: repo.KindMarkdown, SizeBytes: 20, LineCount: 1,
			Content: "# Demo project\n"},
	}

	ix, err := index.Build(docs)
	if err != nil {
		t.Fatalf("building index: %v", err)
	}
	t.Cleanup(func() { ix.Close() })
	return ix
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	return result.Content[0].(*mcp.TextContent).Text
}

func Test_SearchHandler_EmptyQuery(t *testing.T) {
	h := &SearchHandler{Index: newTestIndex(t), Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, SearchArgs{Query: ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError=true for empty query")
	}
	if !strings.Contains(resultText(t, result), "query parameter is required") {
		t.Errorf("expected error message about empty query, got: %s", resultText(t, result))
	}
}

func Test_SearchHandler_BasicSearch(t *testing.T) {
	h := &SearchHandler{Index: newTestIndex(t), Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, SearchArgs{Query: "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("expected success, got error result")
	}

	text := resultText(t, result)
	if !strings.Contains(text, "src/app.py") {
		t.Errorf("expected result to contain src/app.py, got:\n%s", text)
	}
	if !strings.Contains(text, "hello") {
		t.Errorf("expected result to contain 'hello', got:\n%s", text)
	}
}

func Test_SearchHandler_NoResults(t *testing.T) {
	h := &SearchHandler{Index: newTestIndex(t), Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, SearchArgs{Query: "nonexistent"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("expected success (no error), got error result")
	}
	if !strings.Contains(resultText(t, result), "No matches found") {
		t.Errorf("expected 'No matches found', got:\n%s", resultText(t, result))
	}
}
