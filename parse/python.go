package parse

import (
	"regexp"

	"github.com/yegekucuk/git2mind/repo"
)

var (
	pythonFunctionPattern = regexp.MustCompile(`def\s+(\w+)\s*\(`)
	pythonClassPattern    = regexp.MustCompile(`class\s+(\w+)\s*[(:]`)
)

// extractPython harvests function and class names by keyword pattern.
// Names are de-duplicated; a file with no matches yields empty sets.
func extractPython(content string) repo.Metadata {
	return repo.Metadata{
		Functions: uniqueMatches(pythonFunctionPattern, content),
		Classes:   uniqueMatches(pythonClassPattern, content),
	}
}

// uniqueMatches returns the distinct first capture groups of all pattern
// matches, in first-seen order.
func uniqueMatches(pattern *regexp.Regexp, content string) []string {
	matches := pattern.FindAllStringSubmatch(content, -1)

	seen := make(map[string]bool, len(matches))
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		name := match[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
