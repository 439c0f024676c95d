package server

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/yegekucuk/git2mind/tools"
)

// Setup creates and configures the MCP server with all tool registrations.
func Setup(
	searchHandler *tools.SearchHandler,
	filesHandler *tools.FilesHandler,
	readHandler *tools.ReadHandler,
	statusHandler *tools.StatusHandler,
) *mcp.Server {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "git2mind",
			Version: "0.3.0",
		},
		&mcp.ServerOptions{
			Instructions: `This server exposes a scanned repository snapshot over MCP. The scan
applies the repository's exclusion rules, extracts per-file metadata and keeps
every accepted document in memory, so its tools answer without touching disk.

- Use git2mind_search for full-text content search across the scanned files
- Use git2mind_files to list scanned files by glob pattern
- Use git2mind_read to read a scanned file with numbered lines
- Use git2mind_status for scan statistics (documents, chunks, file kinds)`,
		},
	)

	// Register git2mind_search tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "git2mind_search",
		Description: `Search scanned file contents using full-text indexed search.

Query formats:
  - Plain text: word-level matching (e.g., "handle_request")
  - "quoted text": exact phrase matching (e.g., "\"def main\"")
  - /regex/: regular expression matching (e.g., "/def\s+\w+_handler/")

Filtering:
  - fileGlob: glob pattern to filter by file type (e.g., "**/*.py").`,
	}, searchHandler.Handle)

	// Register git2mind_files tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "git2mind_files",
		Description: `Find scanned files by glob pattern.

Pattern examples:
  - "**/*.py" - all Python files
  - "docs/**/*.md" - Markdown files under docs/
  - "**/test_*.py" - Python test files
  - "*.txt" - text files in root only`,
	}, filesHandler.Handle)

	// Register git2mind_read tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "git2mind_read",
		Description: `Read a scanned file's contents from memory. Returns a header plus numbered lines. Only files accepted by the scan are available.`,
	}, readHandler.Handle)

	// Register git2mind_status tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "git2mind_status",
		Description: "Show scan status: document count, chunk count, file kinds, total size, memory usage, and uptime.",
	}, statusHandler.Handle)

	return mcpServer
}
