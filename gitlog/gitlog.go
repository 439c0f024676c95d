// Package gitlog reads repository history by shelling out to git. It is an
// optional collaborator: a missing git binary or a non-repo directory
// degrades to empty results and never affects the scan itself.
package gitlog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// gitTimeout bounds every git subprocess.
const gitTimeout = 30 * time.Second

// Commit is one commit with its shortstat counters.
type Commit struct {
	Hash         string    `json:"hash" xml:"hash"` // short hash (8 chars)
	Author       string    `json:"author" xml:"author"`
	Email        string    `json:"email" xml:"email"`
	Date         time.Time `json:"date" xml:"date"`
	Message      string    `json:"message" xml:"message"`
	FilesChanged int       `json:"files_changed" xml:"files_changed"`
	Insertions   int       `json:"insertions" xml:"insertions"`
	Deletions    int       `json:"deletions" xml:"deletions"`
}

// Branch is one local or remote branch with its tip commit.
type Branch struct {
	Name           string    `json:"name" xml:"name"`
	IsCurrent      bool      `json:"is_current" xml:"is_current"`
	LastCommit     string    `json:"last_commit" xml:"last_commit"`
	LastCommitDate time.Time `json:"last_commit_date" xml:"last_commit_date"`
}

// Contributor aggregates per-author commit and line counts.
type Contributor struct {
	Name       string `json:"name" xml:"name"`
	Email      string `json:"email" xml:"email"`
	Commits    int    `json:"commits" xml:"commits"`
	Insertions int    `json:"insertions" xml:"insertions"`
	Deletions  int    `json:"deletions" xml:"deletions"`
}

// Summary is the full history report consumed by the serializers.
type Summary struct {
	CurrentBranch     string        `json:"current_branch" xml:"current_branch"`
	TotalCommits      int           `json:"total_commits" xml:"total_commits"`
	TotalContributors int           `json:"total_contributors" xml:"total_contributors"`
	FirstCommitDate   *time.Time    `json:"first_commit_date,omitempty" xml:"first_commit_date,omitempty"`
	LastCommitDate    *time.Time    `json:"last_commit_date,omitempty" xml:"last_commit_date,omitempty"`
	Commits           []Commit      `json:"commits" xml:"commits>commit"`
	Branches          []Branch      `json:"branches" xml:"branches>branch"`
	Contributors      []Contributor `json:"contributors" xml:"contributors>contributor"`
}

// Analyzer runs read-only history queries against one repository.
type Analyzer struct {
	repoPath  string
	logger    *slog.Logger
	isGitRepo bool
}

// NewAnalyzer creates an analyzer for the given path. The .git check is a
// cheap existence test; every query also tolerates git failures.
func NewAnalyzer(repoPath string, logger *slog.Logger) *Analyzer {
	_, err := os.Stat(filepath.Join(repoPath, ".git"))
	return &Analyzer{
		repoPath:  repoPath,
		logger:    logger,
		isGitRepo: err == nil,
	}
}

// IsGitRepo reports whether the analyzed path looks like a git repository.
func (a *Analyzer) IsGitRepo() bool {
	return a.isGitRepo
}

// runGit executes one git command in the repository with a timeout and
// returns its trimmed stdout.
func (a *Analyzer) runGit(args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), gitTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = a.repoPath

	output, err := cmd.Output()
	if err != nil {
		a.logger.Warn("git command failed", "args", strings.Join(args, " "), "error", err)
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return strings.TrimSpace(string(output)), nil
}

// CurrentBranch returns the checked-out branch name, or "" outside a repo.
func (a *Analyzer) CurrentBranch() string {
	if !a.isGitRepo {
		return ""
	}
	branch, err := a.runGit("branch", "--show-current")
	if err != nil {
		return ""
	}
	return branch
}

// Commits returns up to limit recent commits with shortstat counters.
func (a *Analyzer) Commits(limit int) []Commit {
	if !a.isGitRepo {
		return nil
	}
	output, err := a.runGit("log", fmt.Sprintf("-%d", limit), "--format=%H|%an|%ae|%cI|%s", "--shortstat")
	if err != nil {
		return nil
	}
	return parseCommitLog(output)
}

// Branches returns all branches with their tip commit info.
func (a *Analyzer) Branches() []Branch {
	if !a.isGitRepo {
		return nil
	}
	output, err := a.runGit("branch", "-a", "--format=%(refname:short)")
	if err != nil {
		return nil
	}

	currentBranch := a.CurrentBranch()
	var branches []Branch
	for _, name := range strings.Split(output, "\n") {
		name = strings.TrimSpace(name)
		if name == "" || strings.Contains(name, "HEAD") {
			continue
		}

		tipInfo, err := a.runGit("log", name, "-1", "--format=%H|%cI")
		if err != nil {
			continue
		}
		hash, dateStr, ok := strings.Cut(tipInfo, "|")
		if !ok {
			continue
		}
		date, _ := time.Parse(time.RFC3339, dateStr)
		branches = append(branches, Branch{
			Name:           name,
			IsCurrent:      name == currentBranch,
			LastCommit:     shortHash(hash),
			LastCommitDate: date,
		})
	}
	return branches
}

// Contributors returns per-author statistics across all branches, sorted
// by commit count descending.
func (a *Analyzer) Contributors() []Contributor {
	if !a.isGitRepo {
		return nil
	}
	output, err := a.runGit("log", "--all", "--format=%an|%ae", "--numstat")
	if err != nil {
		return nil
	}
	return parseContributors(output)
}

// FileHistory returns up to limit commits that touched one file.
func (a *Analyzer) FileHistory(relativePath string, limit int) []Commit {
	if !a.isGitRepo {
		return nil
	}
	output, err := a.runGit("log", fmt.Sprintf("-%d", limit), "--format=%H|%an|%ae|%cI|%s", "--", relativePath)
	if err != nil {
		return nil
	}
	return parseCommitLog(output)
}

// Summarize builds the full history report: repo-level totals plus recent
// commits, branches, and contributors.
func (a *Analyzer) Summarize(commitLimit int) *Summary {
	if !a.isGitRepo {
		return nil
	}

	summary := &Summary{
		CurrentBranch: a.CurrentBranch(),
		Commits:       a.Commits(commitLimit),
		Branches:      a.Branches(),
		Contributors:  a.Contributors(),
	}
	summary.TotalContributors = len(summary.Contributors)

	if countStr, err := a.runGit("rev-list", "--count", "HEAD"); err == nil {
		fmt.Sscanf(countStr, "%d", &summary.TotalCommits)
	}
	if first, err := a.runGit("log", "--reverse", "--format=%cI", "--max-count=1"); err == nil {
		// --reverse with --max-count returns nothing on some git versions;
		// fall back to the first line of the full reversed log
		if first == "" {
			if all, err := a.runGit("log", "--reverse", "--format=%cI"); err == nil {
				first, _, _ = strings.Cut(all, "\n")
			}
		}
		if date, err := time.Parse(time.RFC3339, strings.TrimSpace(first)); err == nil {
			summary.FirstCommitDate = &date
		}
	}
	if last, err := a.runGit("log", "--format=%cI", "--max-count=1"); err == nil {
		if date, err := time.Parse(time.RFC3339, last); err == nil {
			summary.LastCommitDate = &date
		}
	}

	return summary
}

// shortHash truncates a full commit hash to 8 characters.
func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}
