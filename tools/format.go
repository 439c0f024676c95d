// Package tools implements the MCP tool handlers exposed by the server:
// search, file listing, file reading and status reporting over a completed
// repository scan.
package tools

import (
	"fmt"
	"strings"

	"github.com/yegekucuk/git2mind/index"
	"github.com/yegekucuk/git2mind/repo"
)

// FormatSearchResults formats content search results as human-readable text.
// Groups matches by file with line numbers and optional context.
func FormatSearchResults(results []index.SearchResult, totalMatches int) string {
	if len(results) == 0 {
		return "No matches found."
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Found %d matches in %d files:\n\n", totalMatches, len(results)))

	for i, result := range results {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(fmt.Sprintf("── %s ──\n", result.Path))

		for _, match := range result.Matches {
			for _, ctxLine := range match.ContextBefore {
				builder.WriteString(fmt.Sprintf("  %s\n", ctxLine))
			}

			builder.WriteString(fmt.Sprintf("  %d: %s\n", match.LineNumber, match.LineText))

			for _, ctxLine := range match.ContextAfter {
				builder.WriteString(fmt.Sprintf("  %s\n", ctxLine))
			}
		}
	}

	return builder.String()
}

// FormatFileResults formats file listing results as human-readable text.
func FormatFileResults(documents []repo.Document, nameOnly bool) string {
	if len(documents) == 0 {
		return "No files matched."
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Found %d files:\n\n", len(documents)))

	for _, doc := range documents {
		if nameOnly {
			builder.WriteString(doc.Path)
			builder.WriteString("\n")
		} else {
			builder.WriteString(fmt.Sprintf("  %s  (%s, %s, %d lines)\n",
				doc.Path,
				doc.Kind,
				formatFileSize(int64(doc.SizeBytes)),
				doc.LineCount,
			))
		}
	}

	return builder.String()
}

// FormatFileContent formats a document's content with line numbers.
// Output format: header line with path and line count, followed by numbered lines.
func FormatFileContent(filePath string, content string) string {
	lines := strings.Split(content, "\n")
	lineCount := len(lines)

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("── %s (%d lines) ──\n", filePath, lineCount))

	// Calculate width needed for line numbers
	width := len(fmt.Sprintf("%d", lineCount))

	for i, line := range lines {
		builder.WriteString(fmt.Sprintf("%*d│ %s\n", width, i+1, line))
	}

	return builder.String()
}

// formatFileSize converts bytes to a human-readable string.
func formatFileSize(bytes int64) string {
	switch {
	case bytes >= 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	case bytes >= 1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
