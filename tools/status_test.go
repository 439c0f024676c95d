package tools

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/yegekucuk/git2mind/repo"
)

func Test_StatusHandler_ReportsCounts(t *testing.T) {
	h := &StatusHandler{
		Documents: []repo.Document{
			{Path: "a.py", Kind: repo.KindPython, SizeBytes: 100},
			{Path: "b.py", Kind: repo.KindPython, SizeBytes: 200},
			{Path: "README.md", Kind: repo.KindMarkdown, SizeBytes: 50},
		},
		TotalChunks: 7,
		RootDir:     "/tmp/demo",
		StartTime:   time.Now().Add(-5 * time.Second),
		Logger:      discardLogger(),
	}

	result, _, err := h.Handle(context.Background(), nil, StatusArgs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "Root directory: /tmp/demo") {
		t.Errorf("expected root directory, got:\n%s", text)
	}
	if !strings.Contains(text, "Scanned documents: 3") {
		t.Errorf("expected document count, got:\n%s", text)
	}
	if !strings.Contains(text, "Total chunks: 7") {
		t.Errorf("expected chunk count, got:\n%s", text)
	}
	if !strings.Contains(text, "python") || !strings.Contains(text, "2 files") {
		t.Errorf("expected kind breakdown, got:\n%s", text)
	}
}

func Test_FormatDuration_Ranges(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Second, "30s"},
		{90 * time.Second, "1m30s"},
		{2*time.Hour + 5*time.Minute, "2h5m"},
	}

	for _, c := range cases {
		if got := formatDuration(c.d); got != c.want {
			t.Errorf("formatDuration(%v) = %s, want %s", c.d, got, c.want)
		}
	}
}
