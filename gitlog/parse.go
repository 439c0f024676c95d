package gitlog

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	filesChangedPattern = regexp.MustCompile(`(\d+)\s+files?\s+changed`)
	insertionsPattern   = regexp.MustCompile(`(\d+)\s+insertion`)
	deletionsPattern    = regexp.MustCompile(`(\d+)\s+deletion`)
)

// parseCommitLog parses `git log --format=%H|%an|%ae|%cI|%s --shortstat`
// output: header lines separated from their optional shortstat line by
// blank lines.
func parseCommitLog(output string) []Commit {
	if output == "" {
		return nil
	}

	lines := strings.Split(output, "\n")
	var commits []Commit

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if !strings.Contains(line, "|") {
			continue
		}

		parts := strings.SplitN(line, "|", 5)
		if len(parts) < 5 {
			continue
		}

		date, _ := time.Parse(time.RFC3339, parts[3])
		commit := Commit{
			Hash:    shortHash(parts[0]),
			Author:  parts[1],
			Email:   parts[2],
			Date:    date,
			Message: parts[4],
		}

		// The shortstat line, when present, is the next non-empty line.
		for j := i + 1; j < len(lines); j++ {
			next := strings.TrimSpace(lines[j])
			if next == "" {
				continue
			}
			if strings.Contains(next, "file") && strings.Contains(next, "changed") {
				commit.FilesChanged, commit.Insertions, commit.Deletions = parseShortstat(next)
			}
			break
		}

		commits = append(commits, commit)
	}

	return commits
}

// parseShortstat extracts the counters from a line like
// " 3 files changed, 45 insertions(+), 12 deletions(-)".
func parseShortstat(line string) (filesChanged int, insertions int, deletions int) {
	if m := filesChangedPattern.FindStringSubmatch(line); m != nil {
		filesChanged, _ = strconv.Atoi(m[1])
	}
	if m := insertionsPattern.FindStringSubmatch(line); m != nil {
		insertions, _ = strconv.Atoi(m[1])
	}
	if m := deletionsPattern.FindStringSubmatch(line); m != nil {
		deletions, _ = strconv.Atoi(m[1])
	}
	return filesChanged, insertions, deletions
}

// parseContributors parses `git log --all --format=%an|%ae --numstat`
// output: author lines followed by tab-separated added/deleted/path lines.
func parseContributors(output string) []Contributor {
	if output == "" {
		return nil
	}

	byKey := make(map[string]*Contributor)
	var order []string
	var currentKey string

	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, "|") {
			name, email, _ := strings.Cut(line, "|")
			currentKey = name + "|" + email
			if _, exists := byKey[currentKey]; !exists {
				byKey[currentKey] = &Contributor{Name: name, Email: email}
				order = append(order, currentKey)
			}
			byKey[currentKey].Commits++
			continue
		}

		if currentKey == "" || !strings.Contains(line, "\t") {
			continue
		}
		fields := strings.SplitN(line, "\t", 3)
		if len(fields) < 2 {
			continue
		}
		// Binary files report "-" for both counters
		if added, err := strconv.Atoi(fields[0]); err == nil {
			byKey[currentKey].Insertions += added
		}
		if deleted, err := strconv.Atoi(fields[1]); err == nil {
			byKey[currentKey].Deletions += deleted
		}
	}

	contributors := make([]Contributor, 0, len(order))
	for _, key := range order {
		contributors = append(contributors, *byKey[key])
	}
	sort.SliceStable(contributors, func(i, j int) bool {
		return contributors[i].Commits > contributors[j].Commits
	})
	return contributors
}
