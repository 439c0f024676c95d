package repo

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// Kind classifies a file for metadata extraction. The set is closed:
// unrecognized files get KindUnknown, never a new kind.
type Kind string

const (
	KindPython     Kind = "python"
	KindMarkdown   Kind = "markdown"
	KindDockerfile Kind = "dockerfile"
	KindLicense    Kind = "license"
	KindText       Kind = "text"
	KindUnknown    Kind = "unknown"
)

// Document represents one accepted, decoded file from a scan.
// Documents are immutable after construction.
type Document struct {
	ID        string   // Content-derived fingerprint, stable within a run
	Path      string   // Path relative to scan root (forward slashes)
	Kind      Kind     // Detected file kind
	SizeBytes int      // UTF-8 byte length of Content
	LineCount int      // Number of lines in Content (0 for empty content)
	Content   string   // Full decoded file content
	Metadata  Metadata // Kind-specific metadata, absent fields mean "not applicable"
}

// Metadata holds the kind-specific fields extracted from a document.
// Only the fields for the document's kind are populated; everything else
// stays at its zero value and serializes as absent.
type Metadata struct {
	Functions  []string          `json:"functions,omitempty"`  // python
	Classes    []string          `json:"classes,omitempty"`    // python
	Headers    []string          `json:"headers,omitempty"`    // markdown, in document order
	Header     string            `json:"header,omitempty"`     // license, first non-empty line
	Image      string            `json:"image,omitempty"`      // dockerfile, first FROM
	Workdir    string            `json:"workdir,omitempty"`    // dockerfile, last WORKDIR
	Entrypoint string            `json:"entrypoint,omitempty"` // dockerfile, last ENTRYPOINT
	Cmd        string            `json:"cmd,omitempty"`        // dockerfile, last CMD
	Env        map[string]string `json:"env,omitempty"`        // dockerfile, last value per key
}

// Chunk is a contiguous line range of one document. It carries copies of
// the document's identifying fields, not a live reference.
type Chunk struct {
	DocumentID string // ID of the source document
	Path       string // Relative path of the source document
	Content    string // Lines [StartLine, EndLine] joined by newline
	StartLine  int    // 1-based, inclusive
	EndLine    int    // 1-based, inclusive
}

// Fingerprint returns a 16-character hex identifier derived from a
// document's path and content. Stable and collision-resistant within a
// single run; no cryptographic property is needed.
func Fingerprint(path string, content string) string {
	sum := sha1.Sum([]byte(path + content))
	return hex.EncodeToString(sum[:])[:16]
}

// CountLines returns the line count of content: newline count plus one for
// non-empty content, zero for empty content.
func CountLines(content string) int {
	if content == "" {
		return 0
	}
	return strings.Count(content, "\n") + 1
}
