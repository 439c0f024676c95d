// Package parse classifies files into kinds and extracts lightweight,
// heuristic metadata from their content. It is deliberately shallow:
// pattern matching, not real language parsing.
package parse

import (
	"path/filepath"
	"strings"

	"github.com/yegekucuk/git2mind/repo"
)

// DetectKind returns the kind for a file path. Exact filename matches win
// over extension matches; unrecognized files get repo.KindUnknown.
func DetectKind(path string) repo.Kind {
	switch filepath.Base(path) {
	case "Dockerfile":
		return repo.KindDockerfile
	case "LICENSE":
		return repo.KindLicense
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".py":
		return repo.KindPython
	case ".md":
		return repo.KindMarkdown
	case ".txt":
		return repo.KindText
	}
	return repo.KindUnknown
}

// Parse builds a Document from a root-relative path and its decoded
// content: base fields first, then kind-specific metadata.
func Parse(relativePath string, content string) repo.Document {
	relativePath = filepath.ToSlash(relativePath)
	kind := DetectKind(relativePath)

	doc := repo.Document{
		ID:        repo.Fingerprint(relativePath, content),
		Path:      relativePath,
		Kind:      kind,
		SizeBytes: len(content),
		LineCount: repo.CountLines(content),
		Content:   content,
	}

	switch kind {
	case repo.KindPython:
		doc.Metadata = extractPython(content)
	case repo.KindMarkdown:
		doc.Metadata = extractMarkdown(content)
	case repo.KindDockerfile:
		doc.Metadata = extractDockerfile(content)
	case repo.KindLicense:
		doc.Metadata = extractLicense(content)
	}

	return doc
}

// extractLicense takes the first line with non-empty trimmed text as the
// license header. An empty file leaves the header unset.
func extractLicense(content string) repo.Metadata {
	for _, line := range strings.Split(content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return repo.Metadata{Header: trimmed}
		}
	}
	return repo.Metadata{}
}
