// Package writer renders a completed scan into one self-contained output
// artifact. Serializers treat every metadata field as optional; the scan
// pipeline never depends on which format runs.
package writer

import (
	"fmt"
	"time"

	"github.com/yegekucuk/git2mind/gitlog"
	"github.com/yegekucuk/git2mind/repo"
)

// Summary is the read-only input to every serializer.
type Summary struct {
	RepoName    string          // Display name of the scanned repository
	RepoPath    string          // Absolute path of the scan root
	GeneratedAt time.Time       // Generation timestamp
	Documents   []repo.Document // All accepted documents, in scan order
	TotalChunks int             // Chunk count across all documents
	Git         *gitlog.Summary // Optional history report, nil when disabled
}

// Writer renders a summary into one output format.
type Writer interface {
	Format() string
	Render(summary *Summary) ([]byte, error)
}

// ForFormat returns the writer for a format string (md, json, or xml).
func ForFormat(format string) (Writer, error) {
	switch format {
	case "md":
		return &MarkdownWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	case "xml":
		return &XMLWriter{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q (expected md, json, or xml)", format)
}

// OutputExtension returns the default file extension for a format.
func OutputExtension(format string) string {
	if format == "md" {
		return "md"
	}
	return format
}
