// Package index provides full-text search over a completed scan using an
// in-memory Bleve index. The index is built once from the Document
// collection and is read-only afterwards.
package index

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/yegekucuk/git2mind/repo"
)

// Index holds the Bleve index plus the raw documents for line-level result
// extraction and glob listing.
type Index struct {
	index       bleve.Index
	documents   map[string]repo.Document // key: relative path
	sortedPaths []string
}

// bleveDocument is the document structure stored in Bleve.
type bleveDocument struct {
	Content string `json:"content"`
	Path    string `json:"path"`
	Kind    string `json:"kind"`
}

// Build creates an in-memory index over all scanned documents.
func Build(documents []repo.Document) (*Index, error) {
	bleveIndex, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("creating bleve index: %w", err)
	}

	ix := &Index{
		index:     bleveIndex,
		documents: make(map[string]repo.Document, len(documents)),
	}

	for _, doc := range documents {
		ix.documents[doc.Path] = doc
		ix.sortedPaths = append(ix.sortedPaths, doc.Path)
		entry := bleveDocument{Content: doc.Content, Path: doc.Path, Kind: string(doc.Kind)}
		if err := bleveIndex.Index(doc.Path, entry); err != nil {
			return nil, fmt.Errorf("indexing %s: %w", doc.Path, err)
		}
	}
	sort.Strings(ix.sortedPaths)

	return ix, nil
}

// buildIndexMapping creates the Bleve mapping: content is indexed but not
// stored (the raw documents are kept alongside), path and kind are stored.
func buildIndexMapping() *mapping.IndexMappingImpl {
	indexMapping := bleve.NewIndexMapping()
	docMapping := bleve.NewDocumentMapping()

	contentFieldMapping := bleve.NewTextFieldMapping()
	contentFieldMapping.Store = false
	contentFieldMapping.IncludeInAll = true
	docMapping.AddFieldMappingsAt("content", contentFieldMapping)

	pathFieldMapping := bleve.NewTextFieldMapping()
	pathFieldMapping.Store = true
	pathFieldMapping.IncludeInAll = false
	docMapping.AddFieldMappingsAt("path", pathFieldMapping)

	kindFieldMapping := bleve.NewKeywordFieldMapping()
	kindFieldMapping.Store = true
	kindFieldMapping.IncludeInAll = false
	docMapping.AddFieldMappingsAt("kind", kindFieldMapping)

	indexMapping.DefaultMapping = docMapping
	return indexMapping
}

// LineMatch is a single matching line with optional context.
type LineMatch struct {
	LineNumber    int // 1-based
	LineText      string
	ContextBefore []string
	ContextAfter  []string
}

// SearchResult groups the matches found in one document.
type SearchResult struct {
	Path    string
	Kind    repo.Kind
	Matches []LineMatch
}

// SearchOptions configures one search.
type SearchOptions struct {
	Query        string
	FileGlob     string // Optional doublestar glob filter on paths
	MaxResults   int
	ContextLines int
}

// Search performs a full-text search across all indexed documents.
// Query format:
//   - Plain text: match query (word-level matching)
//   - "quoted text": phrase query
//   - /regex/: regexp query
func (ix *Index) Search(options SearchOptions) ([]SearchResult, int, error) {
	if options.MaxResults <= 0 {
		options.MaxResults = 50
	}
	if options.ContextLines < 0 {
		options.ContextLines = 0
	}

	searchRequest := bleve.NewSearchRequest(buildQuery(options.Query))
	// Oversample because hits are filtered by glob and grouped by file
	searchRequest.Size = options.MaxResults * 5
	searchRequest.Fields = []string{"path", "kind"}

	searchResults, err := ix.index.Search(searchRequest)
	if err != nil {
		return nil, 0, fmt.Errorf("searching index: %w", err)
	}

	var results []SearchResult
	totalMatches := 0

	for _, hit := range searchResults.Hits {
		doc, ok := ix.documents[hit.ID]
		if !ok {
			continue
		}

		if options.FileGlob != "" {
			matched, err := doublestar.Match(options.FileGlob, doc.Path)
			if err != nil || !matched {
				continue
			}
		}

		lineMatches := findMatchingLines(doc.Content, options.Query, options.ContextLines)
		if len(lineMatches) == 0 {
			continue
		}

		totalMatches += len(lineMatches)
		results = append(results, SearchResult{
			Path:    doc.Path,
			Kind:    doc.Kind,
			Matches: lineMatches,
		})

		if len(results) >= options.MaxResults {
			break
		}
	}

	return results, totalMatches, nil
}

// FilterByGlob returns documents whose path matches a doublestar glob, in
// sorted path order.
func (ix *Index) FilterByGlob(pattern string, maxResults int) ([]repo.Document, error) {
	if maxResults <= 0 {
		maxResults = 50
	}

	pattern = strings.ReplaceAll(pattern, "\\", "/")
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern: %s", pattern)
	}

	var results []repo.Document
	for _, path := range ix.sortedPaths {
		if len(results) >= maxResults {
			break
		}
		matched, err := doublestar.Match(pattern, path)
		if err != nil || !matched {
			continue
		}
		results = append(results, ix.documents[path])
	}
	return results, nil
}

// Document returns one indexed document by relative path.
func (ix *Index) Document(path string) (repo.Document, bool) {
	doc, ok := ix.documents[strings.ReplaceAll(path, "\\", "/")]
	return doc, ok
}

// DocumentCount returns the number of indexed documents.
func (ix *Index) DocumentCount() int {
	return len(ix.documents)
}

// Close releases the Bleve index.
func (ix *Index) Close() error {
	return ix.index.Close()
}

// buildQuery parses the query string into a Bleve query.
func buildQuery(queryString string) query.Query {
	queryString = strings.TrimSpace(queryString)

	if strings.HasPrefix(queryString, "/") && strings.HasSuffix(queryString, "/") && len(queryString) > 2 {
		return bleve.NewRegexpQuery(queryString[1 : len(queryString)-1])
	}
	if strings.HasPrefix(queryString, "\"") && strings.HasSuffix(queryString, "\"") && len(queryString) > 2 {
		return bleve.NewMatchPhraseQuery(queryString[1 : len(queryString)-1])
	}
	return bleve.NewMatchQuery(queryString)
}

// findMatchingLines scans content line by line for the raw search term and
// gathers context lines around each hit.
func findMatchingLines(content string, queryString string, contextLines int) []LineMatch {
	lines := strings.Split(content, "\n")
	searchTerm := strings.ToLower(extractSearchTerm(queryString))

	var matches []LineMatch
	for lineIdx, line := range lines {
		if !strings.Contains(strings.ToLower(line), searchTerm) {
			continue
		}

		match := LineMatch{
			LineNumber: lineIdx + 1,
			LineText:   line,
		}

		if contextLines > 0 {
			start := lineIdx - contextLines
			if start < 0 {
				start = 0
			}
			match.ContextBefore = append(match.ContextBefore, lines[start:lineIdx]...)

			end := lineIdx + contextLines + 1
			if end > len(lines) {
				end = len(lines)
			}
			match.ContextAfter = append(match.ContextAfter, lines[lineIdx+1:end]...)
		}

		matches = append(matches, match)
	}
	return matches
}

// extractSearchTerm strips query syntax to get the raw term used for
// line-level matching.
func extractSearchTerm(queryString string) string {
	queryString = strings.TrimSpace(queryString)

	if strings.HasPrefix(queryString, "/") && strings.HasSuffix(queryString, "/") && len(queryString) > 2 {
		return queryString[1 : len(queryString)-1]
	}
	if strings.HasPrefix(queryString, "\"") && strings.HasSuffix(queryString, "\"") && len(queryString) > 2 {
		return queryString[1 : len(queryString)-1]
	}
	return queryString
}
