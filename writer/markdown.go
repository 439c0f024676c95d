package writer

import (
	"fmt"
	"strings"
	"time"

	"github.com/yegekucuk/git2mind/repo"
)

// MarkdownWriter renders the summary as a human-readable markdown report.
type MarkdownWriter struct{}

func (w *MarkdownWriter) Format() string { return "md" }

func (w *MarkdownWriter) Render(summary *Summary) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# Repo Summary: %s\n\n", summary.RepoName)
	fmt.Fprintf(&b, "**Generated:** %s  \n", summary.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "**Files processed:** %d  \n", len(summary.Documents))
	fmt.Fprintf(&b, "**Total chunks:** %d\n\n", summary.TotalChunks)

	b.WriteString("## Files\n\n")
	for _, doc := range summary.Documents {
		fmt.Fprintf(&b, "### %s\n", doc.Path)
		fmt.Fprintf(&b, "*Kind:* %s  \n", doc.Kind)
		fmt.Fprintf(&b, "*Size:* %d bytes, %d lines  \n", doc.SizeBytes, doc.LineCount)
		writeMetadata(&b, doc)
		b.WriteString("\n")
	}

	if summary.Git != nil {
		writeGitSection(&b, summary)
	}

	return []byte(b.String()), nil
}

// writeMetadata appends the kind-specific metadata lines for one document.
// Empty fields produce no line at all.
func writeMetadata(b *strings.Builder, doc repo.Document) {
	meta := doc.Metadata

	switch doc.Kind {
	case repo.KindPython:
		if len(meta.Classes) > 0 {
			fmt.Fprintf(b, "*Classes:* %s  \n", strings.Join(meta.Classes, ", "))
		}
		if len(meta.Functions) > 0 {
			fmt.Fprintf(b, "*Functions:* %s  \n", strings.Join(meta.Functions, ", "))
		}
	case repo.KindMarkdown:
		if len(meta.Headers) > 0 {
			fmt.Fprintf(b, "*Headers:* %s  \n", strings.Join(meta.Headers, ", "))
		}
	case repo.KindLicense:
		if meta.Header != "" {
			fmt.Fprintf(b, "*Header:* %s  \n", meta.Header)
		}
	case repo.KindDockerfile:
		if meta.Image != "" {
			fmt.Fprintf(b, "*Image:* %s  \n", meta.Image)
		}
		if meta.Workdir != "" {
			fmt.Fprintf(b, "*Workdir:* %s  \n", meta.Workdir)
		}
		if meta.Entrypoint != "" {
			fmt.Fprintf(b, "*Entrypoint:* %s  \n", meta.Entrypoint)
		}
		if meta.Cmd != "" {
			fmt.Fprintf(b, "*CMD:* %s  \n", meta.Cmd)
		}
		if len(meta.Env) > 0 {
			pairs := make([]string, 0, len(meta.Env))
			for _, key := range sortedKeys(meta.Env) {
				pairs = append(pairs, fmt.Sprintf("%s=%s", key, meta.Env[key]))
			}
			fmt.Fprintf(b, "*ENV:* %s  \n", strings.Join(pairs, ", "))
		}
	}
}

// writeGitSection appends the optional history report.
func writeGitSection(b *strings.Builder, summary *Summary) {
	git := summary.Git

	b.WriteString("## Git History\n\n")
	if git.CurrentBranch != "" {
		fmt.Fprintf(b, "**Branch:** %s  \n", git.CurrentBranch)
	}
	fmt.Fprintf(b, "**Total commits:** %d  \n", git.TotalCommits)
	fmt.Fprintf(b, "**Contributors:** %d\n\n", git.TotalContributors)

	if len(git.Commits) > 0 {
		b.WriteString("### Recent Commits\n\n")
		for _, commit := range git.Commits {
			fmt.Fprintf(b, "- `%s` %s — %s (%s)\n",
				commit.Hash, commit.Message, commit.Author, commit.Date.Format("2006-01-02"))
		}
		b.WriteString("\n")
	}

	if len(git.Contributors) > 0 {
		b.WriteString("### Contributors\n\n")
		for _, contributor := range git.Contributors {
			fmt.Fprintf(b, "- %s <%s> — %d commits (+%d/-%d)\n",
				contributor.Name, contributor.Email, contributor.Commits,
				contributor.Insertions, contributor.Deletions)
		}
		b.WriteString("\n")
	}
}
