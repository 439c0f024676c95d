package tools

import (
	"strings"
	"testing"

	"github.com/yegekucuk/git2mind/index"
	"github.com/yegekucuk/git2mind/repo"
)

// --- formatFileSize ---

func Test_FormatFileSize_Bytes(t *testing.T) {
	got := formatFileSize(500)
	if got != "500 B" {
		t.Errorf("expected '500 B', got '%s'", got)
	}
}

func Test_FormatFileSize_Kilobytes(t *testing.T) {
	got := formatFileSize(2048)
	if got != "2.0 KB" {
		t.Errorf("expected '2.0 KB', got '%s'", got)
	}
}

func Test_FormatFileSize_Megabytes(t *testing.T) {
	got := formatFileSize(3 * 1024 * 1024)
	if got != "3.0 MB" {
		t.Errorf("expected '3.0 MB', got '%s'", got)
	}
}

// --- FormatSearchResults ---

func Test_FormatSearchResults_NoMatches(t *testing.T) {
	got := FormatSearchResults(nil, 0)
	if got != "No matches found." {
		t.Errorf("expected 'No matches found.', got '%s'", got)
	}
}

func Test_FormatSearchResults_WithMatches(t *testing.T) {
	results := []index.SearchResult{
		{
			Path: "app.py",
			Kind: repo.KindPython,
			Matches: []index.LineMatch{
				{
					LineNumber:    5,
					LineText:      `print("hello")`,
					ContextBefore: []string{"def main():"},
					ContextAfter:  []string{"    return"},
				},
			},
		},
	}

	got := FormatSearchResults(results, 1)

	if !strings.Contains(got, "1 matches in 1 files") {
		t.Errorf("expected header with match/file counts, got:\n%s", got)
	}
	if !strings.Contains(got, "app.py") {
		t.Errorf("expected file path, got:\n%s", got)
	}
	if !strings.Contains(got, `5: print("hello")`) {
		t.Errorf("expected matching line with line number, got:\n%s", got)
	}
	if !strings.Contains(got, "def main():") {
		t.Errorf("expected context before, got:\n%s", got)
	}
	if !strings.Contains(got, "    return") {
		t.Errorf("expected context after, got:\n%s", got)
	}
}

// --- FormatFileResults ---

func Test_FormatFileResults_Empty(t *testing.T) {
	got := FormatFileResults(nil, false)
	if got != "No files matched." {
		t.Errorf("expected 'No files matched.', got '%s'", got)
	}
}

func Test_FormatFileResults_WithMetadata(t *testing.T) {
	documents := []repo.Document{
		{Path: "src/app.py", Kind: repo.KindPython, SizeBytes: 2048, LineCount: 50},
	}

	got := FormatFileResults(documents, false)

	if !strings.Contains(got, "src/app.py") {
		t.Errorf("expected file path, got:\n%s", got)
	}
	if !strings.Contains(got, "python") {
		t.Errorf("expected kind, got:\n%s", got)
	}
	if !strings.Contains(got, "2.0 KB") {
		t.Errorf("expected formatted size, got:\n%s", got)
	}
	if !strings.Contains(got, "50 lines") {
		t.Errorf("expected line count, got:\n%s", got)
	}
}

func Test_FormatFileResults_NameOnly(t *testing.T) {
	documents := []repo.Document{
		{Path: "src/app.py", Kind: repo.KindPython, SizeBytes: 2048, LineCount: 50},
	}

	got := FormatFileResults(documents, true)

	if !strings.Contains(got, "src/app.py") {
		t.Errorf("expected file path, got:\n%s", got)
	}
	// nameOnly should NOT include metadata
	if strings.Contains(got, "2.0 KB") {
		t.Errorf("nameOnly should not include metadata, got:\n%s", got)
	}
}

// --- FormatFileContent ---

func Test_FormatFileContent_NumbersLines(t *testing.T) {
	got := FormatFileContent("notes.txt", "line one\nline two\nline three")

	if !strings.Contains(got, "notes.txt (3 lines)") {
		t.Errorf("expected header with path and line count, got:\n%s", got)
	}
	if !strings.Contains(got, "1│ line one") {
		t.Errorf("expected line 1 with number, got:\n%s", got)
	}
	if !strings.Contains(got, "3│ line three") {
		t.Errorf("expected line 3 with number, got:\n%s", got)
	}
}

func Test_FormatFileContent_PadsLineNumbers(t *testing.T) {
	content := strings.Repeat("x\n", 11) + "last"
	got := FormatFileContent("big.txt", content)

	if !strings.Contains(got, " 1│ x") {
		t.Errorf("expected padded single-digit line numbers, got:\n%s", got)
	}
	if !strings.Contains(got, "12│ last") {
		t.Errorf("expected line 12, got:\n%s", got)
	}
}
