package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yegekucuk/git2mind/index"
	"github.com/yegekucuk/git2mind/reader"
	"github.com/yegekucuk/git2mind/tools"
)

func newSearchCmd() *cobra.Command {
	searchCmd := &cobra.Command{
		Use:   "search <query> [path]",
		Short: "Scan a repository and search its contents",
		Long: `Scan the repository, build an in-memory full-text index and print the
matching lines. Plain queries match words, "quoted" queries match phrases
and /regex/ queries match regular expressions.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runSearch,
	}

	flags := searchCmd.Flags()
	flags.StringVar(&opts.searchGlob, "glob", "", "restrict results to paths matching a glob")
	flags.IntVar(&opts.maxResults, "max-results", 50, "maximum number of matching files")
	flags.IntVar(&opts.contextLines, "context", 2, "context lines around each match")

	return searchCmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	logger := setupLogger(opts.verbose)

	root, err := resolveRoot(args[1:])
	if err != nil {
		return err
	}

	scanner, err := reader.NewScanner(reader.Config{
		Root:         root,
		Excludes:     opts.excludes,
		UseGitignore: opts.useGitignore,
		MaxFiles:     opts.maxFiles,
	}, logger)
	if err != nil {
		return err
	}

	documents, err := scanner.Scan()
	if err != nil {
		return err
	}

	searchIndex, err := index.Build(documents)
	if err != nil {
		return err
	}
	defer searchIndex.Close()

	results, totalMatches, err := searchIndex.Search(index.SearchOptions{
		Query:        args[0],
		FileGlob:     opts.searchGlob,
		MaxResults:   opts.maxResults,
		ContextLines: opts.contextLines,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), tools.FormatSearchResults(results, totalMatches))
	return nil
}
