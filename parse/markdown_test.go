package parse

import (
	"reflect"
	"testing"
)

func Test_Parse_Markdown_HeadersInDocumentOrder(t *testing.T) {
	content := "# Title\n\nintro text\n\n## Install\n\nsteps\n\n## Usage\n\n### Flags\n"
	doc := Parse("README.md", content)

	want := []string{"Title", "Install", "Usage", "Flags"}
	if !reflect.DeepEqual(doc.Metadata.Headers, want) {
		t.Errorf("expected headers %v, got %v", want, doc.Metadata.Headers)
	}
}

func Test_Parse_Markdown_InlineFormattingStripped(t *testing.T) {
	doc := Parse("doc.md", "# The `run` *command*\n")

	if len(doc.Metadata.Headers) != 1 {
		t.Fatalf("expected 1 header, got %v", doc.Metadata.Headers)
	}
	if doc.Metadata.Headers[0] != "The run command" {
		t.Errorf("expected inline markup stripped, got %q", doc.Metadata.Headers[0])
	}
}

func Test_Parse_Markdown_SetextHeading(t *testing.T) {
	doc := Parse("doc.md", "Overview\n========\n\nbody\n")

	if len(doc.Metadata.Headers) != 1 || doc.Metadata.Headers[0] != "Overview" {
		t.Errorf("expected setext heading to be collected, got %v", doc.Metadata.Headers)
	}
}

func Test_Parse_Markdown_NoHeaders(t *testing.T) {
	doc := Parse("doc.md", "plain paragraph\n\nanother paragraph\n")

	if len(doc.Metadata.Headers) != 0 {
		t.Errorf("expected no headers, got %v", doc.Metadata.Headers)
	}
}

func Test_Parse_Markdown_HashInsideCodeBlockIgnored(t *testing.T) {
	content := "# Real\n\n```\n# not a heading\n```\n"
	doc := Parse("doc.md", content)

	want := []string{"Real"}
	if !reflect.DeepEqual(doc.Metadata.Headers, want) {
		t.Errorf("expected %v, got %v", want, doc.Metadata.Headers)
	}
}
