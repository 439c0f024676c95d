package writer

import (
	"encoding/json"
	"time"

	"github.com/yegekucuk/git2mind/gitlog"
	"github.com/yegekucuk/git2mind/repo"
)

// JSONWriter renders the summary as a single JSON document.
type JSONWriter struct{}

func (w *JSONWriter) Format() string { return "json" }

type jsonOutput struct {
	Repo  jsonRepo        `json:"repo"`
	Files []jsonFile      `json:"files"`
	Git   *gitlog.Summary `json:"git,omitempty"`
}

type jsonRepo struct {
	Name           string `json:"name"`
	Path           string `json:"path"`
	GeneratedAt    string `json:"generated_at"`
	FilesProcessed int    `json:"files_processed"`
	TotalChunks    int    `json:"total_chunks"`
}

type jsonFile struct {
	ID        string         `json:"id"`
	Path      string         `json:"path"`
	Kind      repo.Kind      `json:"kind"`
	SizeBytes int            `json:"size_bytes"`
	Lines     int            `json:"lines"`
	Metadata  map[string]any `json:"metadata"`
}

func (w *JSONWriter) Render(summary *Summary) ([]byte, error) {
	output := jsonOutput{
		Repo: jsonRepo{
			Name:           summary.RepoName,
			Path:           summary.RepoPath,
			GeneratedAt:    summary.GeneratedAt.Format(time.RFC3339),
			FilesProcessed: len(summary.Documents),
			TotalChunks:    summary.TotalChunks,
		},
		Files: make([]jsonFile, 0, len(summary.Documents)),
		Git:   summary.Git,
	}

	for _, doc := range summary.Documents {
		output.Files = append(output.Files, jsonFile{
			ID:        doc.ID,
			Path:      doc.Path,
			Kind:      doc.Kind,
			SizeBytes: doc.SizeBytes,
			Lines:     doc.LineCount,
			Metadata:  metadataFields(doc),
		})
	}

	return json.MarshalIndent(output, "", "  ")
}

// metadataFields selects the kind-specific metadata keys for one document.
// Kinds without metadata get an empty object, and list-valued keys are
// always present for their kind even when empty.
func metadataFields(doc repo.Document) map[string]any {
	meta := doc.Metadata

	switch doc.Kind {
	case repo.KindPython:
		return map[string]any{
			"functions": emptyIfNil(meta.Functions),
			"classes":   emptyIfNil(meta.Classes),
		}
	case repo.KindMarkdown:
		return map[string]any{
			"headers": emptyIfNil(meta.Headers),
		}
	case repo.KindLicense:
		return map[string]any{
			"header": meta.Header,
		}
	case repo.KindDockerfile:
		fields := map[string]any{
			"workdir":    meta.Workdir,
			"entrypoint": meta.Entrypoint,
			"cmd":        meta.Cmd,
		}
		if meta.Image != "" {
			fields["image"] = meta.Image
		}
		env := meta.Env
		if env == nil {
			env = map[string]string{}
		}
		fields["env"] = env
		return fields
	}

	return map[string]any{}
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
