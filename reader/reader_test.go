package reader

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yegekucuk/git2mind/repo"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, root string, relPath string, content []byte) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}
}

func scanDir(t *testing.T, config Config) []repo.Document {
	t.Helper()
	scanner, err := NewScanner(config, testLogger())
	if err != nil {
		t.Fatalf("unexpected config error: %v", err)
	}
	docs, err := scanner.Scan()
	if err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}
	return docs
}

func Test_Scanner_AcceptsAndParsesFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "app.py", []byte("def main():\n    pass\n"))
	writeFile(t, tmpDir, "docs/README.md", []byte("# Title\n"))

	docs := scanDir(t, Config{Root: tmpDir, MaxFiles: 100})

	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}

	byPath := make(map[string]repo.Document)
	for _, doc := range docs {
		byPath[doc.Path] = doc
	}
	if byPath["app.py"].Kind != repo.KindPython {
		t.Errorf("expected python kind, got %s", byPath["app.py"].Kind)
	}
	if byPath["docs/README.md"].Kind != repo.KindMarkdown {
		t.Errorf("expected markdown kind, got %s", byPath["docs/README.md"].Kind)
	}
}

func Test_Scanner_SkipsBinaryFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "app.py", []byte("print('ok')\n"))
	writeFile(t, tmpDir, "blob.bin", []byte{0x00, 0x01, 0xff, 0xfe})

	docs := scanDir(t, Config{Root: tmpDir, MaxFiles: 100})

	if len(docs) != 1 || docs[0].Path != "app.py" {
		t.Errorf("expected only app.py, got %d documents", len(docs))
	}
}

func Test_Scanner_SkipsInvalidUTF8(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "latin1.txt", []byte{'c', 'a', 'f', 0xe9})

	docs := scanDir(t, Config{Root: tmpDir, MaxFiles: 100})

	if len(docs) != 0 {
		t.Errorf("expected invalid UTF-8 to be skipped, got %d documents", len(docs))
	}
}

func Test_Scanner_SkipsOversizedFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "big.txt", []byte(strings.Repeat("x", maxDocumentBytes+1)))
	writeFile(t, tmpDir, "small.txt", []byte("ok\n"))

	docs := scanDir(t, Config{Root: tmpDir, MaxFiles: 100})

	if len(docs) != 1 || docs[0].Path != "small.txt" {
		t.Errorf("expected only small.txt, got %d documents", len(docs))
	}
}

func Test_Scanner_PrunesExcludedDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "src/main.py", []byte("x = 1\n"))
	writeFile(t, tmpDir, "node_modules/pkg/index.js", []byte("module.exports = {}\n"))
	writeFile(t, tmpDir, "__pycache__/main.cpython-311.pyc", []byte("not really read"))

	docs := scanDir(t, Config{Root: tmpDir, MaxFiles: 100})

	if len(docs) != 1 || docs[0].Path != "src/main.py" {
		t.Errorf("expected only src/main.py, got %v", docs)
	}
}

func Test_Scanner_UserExcludes(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "main.py", []byte("x = 1\n"))
	writeFile(t, tmpDir, "tests/test_main.py", []byte("x = 1\n"))

	docs := scanDir(t, Config{Root: tmpDir, MaxFiles: 100, Excludes: []string{"tests"}})

	if len(docs) != 1 || docs[0].Path != "main.py" {
		t.Errorf("expected tests/ to be excluded, got %v", docs)
	}
}

func Test_Scanner_MaxFilesCap(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "a.txt", []byte("a\n"))
	writeFile(t, tmpDir, "b.txt", []byte("b\n"))

	docs := scanDir(t, Config{Root: tmpDir, MaxFiles: 1})

	if len(docs) != 1 {
		t.Errorf("expected exactly 1 document with maxFiles=1, got %d", len(docs))
	}
}

func Test_Scanner_EmptyResultIsNotAnError(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "dist/bundle.js", []byte("excluded\n"))

	docs := scanDir(t, Config{Root: tmpDir, MaxFiles: 100})

	if len(docs) != 0 {
		t.Errorf("expected empty result, got %d documents", len(docs))
	}
}

func Test_Scanner_GitignoreMode(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, ".gitignore", []byte("*.txt\n"))
	writeFile(t, tmpDir, "keep.py", []byte("x = 1\n"))
	writeFile(t, tmpDir, "drop.txt", []byte("gone\n"))

	docs := scanDir(t, Config{Root: tmpDir, MaxFiles: 100, UseGitignore: true})

	paths := make([]string, 0, len(docs))
	for _, doc := range docs {
		paths = append(paths, doc.Path)
	}
	for _, path := range paths {
		if path == "drop.txt" {
			t.Error("expected drop.txt to be excluded by .gitignore")
		}
	}
	found := false
	for _, path := range paths {
		if path == "keep.py" {
			found = true
		}
	}
	if !found {
		t.Error("expected keep.py to be scanned")
	}
}

func Test_Config_Validate(t *testing.T) {
	if err := (Config{Root: "/does/not/exist", MaxFiles: 10}).Validate(); err == nil {
		t.Error("expected error for nonexistent root")
	}
	if err := (Config{Root: t.TempDir(), MaxFiles: 0}).Validate(); err == nil {
		t.Error("expected error for non-positive max files")
	}
	if err := (Config{Root: t.TempDir(), MaxFiles: 10}).Validate(); err != nil {
		t.Errorf("unexpected error for valid config: %v", err)
	}
}

func Test_IsTextContent(t *testing.T) {
	if !isTextContent([]byte("hello world\n")) {
		t.Error("expected plain ASCII to be text")
	}
	if !isTextContent([]byte("caf\xc3\xa9\n")) {
		t.Error("expected valid UTF-8 to be text")
	}
	if isTextContent([]byte{0x00, 0x01}) {
		t.Error("expected null bytes to mark binary")
	}
	if isTextContent([]byte{'a', 0xff, 'b'}) {
		t.Error("expected invalid UTF-8 to be rejected")
	}
}
