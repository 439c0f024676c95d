package writer

import (
	"encoding/xml"
	"sort"
	"time"

	"github.com/yegekucuk/git2mind/gitlog"
	"github.com/yegekucuk/git2mind/repo"
)

// XMLWriter renders the summary as an XML document mirroring the JSON
// structure. Env maps become repeated <var> elements because XML has no
// native map shape.
type XMLWriter struct{}

func (w *XMLWriter) Format() string { return "xml" }

type xmlOutput struct {
	XMLName        xml.Name        `xml:"repository"`
	Name           string          `xml:"name"`
	Path           string          `xml:"path"`
	GeneratedAt    string          `xml:"generated_at"`
	FilesProcessed int             `xml:"files_processed"`
	TotalChunks    int             `xml:"total_chunks"`
	Files          []xmlFile       `xml:"files>file"`
	Git            *gitlog.Summary `xml:"git,omitempty"`
}

type xmlFile struct {
	ID         string      `xml:"id,attr"`
	Path       string      `xml:"path"`
	Kind       repo.Kind   `xml:"kind"`
	SizeBytes  int         `xml:"size_bytes"`
	Lines      int         `xml:"lines"`
	Functions  []string    `xml:"functions>function,omitempty"`
	Classes    []string    `xml:"classes>class,omitempty"`
	Headers    []string    `xml:"headers>header,omitempty"`
	Header     string      `xml:"header,omitempty"`
	Image      string      `xml:"image,omitempty"`
	Workdir    string      `xml:"workdir,omitempty"`
	Entrypoint string      `xml:"entrypoint,omitempty"`
	Cmd        string      `xml:"cmd,omitempty"`
	Env        []xmlEnvVar `xml:"env>var,omitempty"`
}

type xmlEnvVar struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

func (w *XMLWriter) Render(summary *Summary) ([]byte, error) {
	output := xmlOutput{
		Name:           summary.RepoName,
		Path:           summary.RepoPath,
		GeneratedAt:    summary.GeneratedAt.Format(time.RFC3339),
		FilesProcessed: len(summary.Documents),
		TotalChunks:    summary.TotalChunks,
		Files:          make([]xmlFile, 0, len(summary.Documents)),
		Git:            summary.Git,
	}

	for _, doc := range summary.Documents {
		meta := doc.Metadata
		file := xmlFile{
			ID:         doc.ID,
			Path:       doc.Path,
			Kind:       doc.Kind,
			SizeBytes:  doc.SizeBytes,
			Lines:      doc.LineCount,
			Functions:  meta.Functions,
			Classes:    meta.Classes,
			Headers:    meta.Headers,
			Header:     meta.Header,
			Image:      meta.Image,
			Workdir:    meta.Workdir,
			Entrypoint: meta.Entrypoint,
			Cmd:        meta.Cmd,
		}
		for _, key := range sortedKeys(meta.Env) {
			file.Env = append(file.Env, xmlEnvVar{Key: key, Value: meta.Env[key]})
		}
		output.Files = append(output.Files, file)
	}

	rendered, err := xml.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), rendered...), nil
}

// sortedKeys returns a map's keys in stable order for deterministic output.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
