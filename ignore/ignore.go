package ignore

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/denormal/go-gitignore"
)

// Matcher decides whether a relative path is excluded from a scan.
// It combines three rule sources: optional .gitignore rules, user-supplied
// glob patterns, and built-in default-noise patterns. A path is excluded
// when any source matches; a .gitignore re-inclusion rule (!pattern) only
// overrides earlier .gitignore rules, never the other two sources.
//
// Matcher is immutable after construction and safe for concurrent reads.
type Matcher struct {
	rootDir      string
	ignoreFile   gitignore.GitIgnore
	userPatterns []string
}

// MatcherOptions configures the exclusion matcher.
type MatcherOptions struct {
	RootDir      string   // Scan root; .gitignore is loaded from here
	UserPatterns []string // Shell-glob patterns from the CLI
	UseGitignore bool     // Load root-level .gitignore rules
}

// NewMatcher creates a matcher for one scan. When UseGitignore is set but
// no .gitignore exists at the root, that source contributes no rules.
func NewMatcher(options MatcherOptions) *Matcher {
	matcher := &Matcher{
		rootDir:      options.RootDir,
		userPatterns: options.UserPatterns,
	}

	if options.UseGitignore {
		matcher.ignoreFile = loadIgnoreFile(filepath.Join(options.RootDir, ".gitignore"), options.RootDir)
	}

	return matcher
}

// Excluded returns true if the given root-relative path (forward slashes)
// should be skipped. Sources are evaluated in order: .gitignore rules,
// user patterns, default patterns.
func (m *Matcher) Excluded(relativePath string, isDir bool) bool {
	relativePath = filepath.ToSlash(relativePath)

	if m.ignoreFile != nil {
		// Relative() matches against the rule set without requiring the
		// path to exist on disk. Later rules win, so !pattern re-inclusions
		// are already resolved inside this one source.
		match := m.ignoreFile.Relative(relativePath, isDir)
		if match != nil && match.Ignore() {
			return true
		}
	}

	if matchesPatterns(m.userPatterns, relativePath) {
		return true
	}

	return matchesPatterns(DefaultExcludePatterns, relativePath)
}

// ExcludedDir returns true if a directory should be pruned from traversal.
func (m *Matcher) ExcludedDir(relativePath string) bool {
	return m.Excluded(relativePath, true)
}

// matchesPatterns checks a path against shell-glob patterns: each pattern
// is tried against the full relative path, the bare filename, and the name
// of every ancestor directory (with a trailing "/*" stripped from the
// pattern for the ancestor check).
func matchesPatterns(patterns []string, relativePath string) bool {
	baseName := relativePath
	if idx := strings.LastIndex(relativePath, "/"); idx >= 0 {
		baseName = relativePath[idx+1:]
	}

	parts := strings.Split(relativePath, "/")
	ancestors := parts[:len(parts)-1]

	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, relativePath); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, baseName); err == nil && matched {
			return true
		}

		dirPattern := strings.TrimSuffix(pattern, "/*")
		for _, ancestor := range ancestors {
			if matched, err := doublestar.Match(dirPattern, ancestor); err == nil && matched {
				return true
			}
		}
	}
	return false
}

// loadIgnoreFile reads an ignore file and creates a GitIgnore matcher from
// it. Returns nil when the file cannot be opened.
func loadIgnoreFile(filePath string, baseDir string) gitignore.GitIgnore {
	f, err := os.Open(filePath)
	if err != nil {
		return nil
	}
	defer f.Close()

	return gitignore.New(f, baseDir, nil)
}
