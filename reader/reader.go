// Package reader walks a repository tree and turns every accepted file
// into a repo.Document. Per-file problems are skipped and logged, never
// surfaced as errors; only configuration is validated up front.
package reader

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/yegekucuk/git2mind/ignore"
	"github.com/yegekucuk/git2mind/parse"
	"github.com/yegekucuk/git2mind/repo"
)

// maxDocumentBytes is the decoded-size cap; larger files are skipped with
// a warning.
const maxDocumentBytes = 100_000

// Config holds the scan configuration consumed by the Scanner.
type Config struct {
	Root         string   // Directory to scan
	Excludes     []string // User-supplied exclude patterns
	UseGitignore bool     // Honor a root-level .gitignore
	MaxFiles     int      // Stop after this many accepted documents
}

// Validate checks the configuration preconditions that must fail before
// any traversal work begins.
func (c Config) Validate() error {
	info, err := os.Stat(c.Root)
	if err != nil {
		return fmt.Errorf("root path %s: %w", c.Root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root path %s is not a directory", c.Root)
	}
	if c.MaxFiles <= 0 {
		return fmt.Errorf("max files must be positive, got %d", c.MaxFiles)
	}
	return nil
}

// Scanner reads files from a repository directory.
type Scanner struct {
	config  Config
	matcher *ignore.Matcher
	logger  *slog.Logger
}

// NewScanner validates the configuration and creates a scanner for one run.
func NewScanner(config Config, logger *slog.Logger) (*Scanner, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	matcher := ignore.NewMatcher(ignore.MatcherOptions{
		RootDir:      config.Root,
		UserPatterns: config.Excludes,
		UseGitignore: config.UseGitignore,
	})

	return &Scanner{config: config, matcher: matcher, logger: logger}, nil
}

// Matcher exposes the scanner's exclusion rules, e.g. for a file watcher
// that must prune the same directories.
func (s *Scanner) Matcher() *ignore.Matcher {
	return s.matcher
}

// Scan walks the tree and returns one Document per accepted file, in
// traversal order. An empty result is not an error; the caller decides
// whether that is fatal.
func (s *Scanner) Scan() ([]repo.Document, error) {
	var documents []repo.Document

	err := filepath.WalkDir(s.config.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entry, skip
		}
		if path == s.config.Root {
			return nil
		}

		relPath, err := filepath.Rel(s.config.Root, path)
		if err != nil {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if s.matcher.ExcludedDir(relPath) {
				s.logger.Debug("excluding directory", "path", relPath)
				return fs.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if len(documents) >= s.config.MaxFiles {
			s.logger.Warn("reached max files limit", "maxFiles", s.config.MaxFiles)
			return fs.SkipAll
		}

		if s.matcher.Excluded(relPath, false) {
			s.logger.Debug("excluding file", "path", relPath)
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			s.logger.Debug("skipping inaccessible file", "path", relPath, "error", err)
			return nil
		}

		if !isTextContent(data) {
			s.logger.Debug("skipping binary file", "path", relPath)
			return nil
		}

		if len(data) > maxDocumentBytes {
			s.logger.Warn("skipping large file", "path", relPath, "sizeBytes", len(data))
			return nil
		}

		documents = append(documents, parse.Parse(relPath, string(data)))
		s.logger.Debug("processed file", "path", relPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", s.config.Root, err)
	}

	s.logger.Info("scan complete", "root", s.config.Root, "files", len(documents))
	return documents, nil
}
