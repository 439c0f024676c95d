package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/yegekucuk/git2mind/gitlog"
	"github.com/yegekucuk/git2mind/reader"
	"github.com/yegekucuk/git2mind/repo"
	"github.com/yegekucuk/git2mind/watcher"
	"github.com/yegekucuk/git2mind/writer"
)

// defaultCommitLimit bounds the git history section of the summary.
const defaultCommitLimit = 20

// runGenerate is the root command: scan, summarize, render, write.
func runGenerate(cmd *cobra.Command, args []string) error {
	logger := setupLogger(opts.verbose)

	root, err := resolveRoot(args)
	if err != nil {
		return err
	}
	if opts.chunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", opts.chunkSize)
	}

	outputWriter, err := writer.ForFormat(opts.format)
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

	outputPath := opts.output
	if outputPath == "" {
		outputPath = "git2mind_output." + writer.OutputExtension(opts.format)
	}

	if err := generateOnce(scanner, outputWriter, root, outputPath, logger); err != nil {
		return err
	}

	if !opts.watch {
		return nil
	}
	return watchAndRegenerate(scanner, outputWriter, root, outputPath, logger)
}

// generateOnce runs a single scan-render-write cycle.
func generateOnce(scanner *reader.Scanner, outputWriter writer.Writer, root string, outputPath string, logger *slog.Logger) error {
	start := time.Now()

	documents, err := scanner.Scan()
	if err != nil {
		return err
	}
	if len(documents) == 0 {
		return fmt.Errorf("no files accepted under %s", root)
	}

	summary := buildSummary(root, documents, logger)

	rendered, err := outputWriter.Render(summary)
	if err != nil {
		return fmt.Errorf("rendering %s output: %w", outputWriter.Format(), err)
	}

	if opts.dryRun {
		logger.Info("dry run, skipping output",
			"files", len(documents),
			"chunks", summary.TotalChunks,
			"bytes", len(rendered),
			"elapsed", time.Since(start),
		)
		return nil
	}

	if err := os.WriteFile(outputPath, rendered, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	logger.Info("summary written",
		"output", outputPath,
		"format", outputWriter.Format(),
		"files", len(documents),
		"chunks", summary.TotalChunks,
		"elapsed", time.Since(start),
	)
	return nil
}

// buildSummary assembles the writer input from scanned documents, counting
// chunks and optionally attaching git history.
func buildSummary(root string, documents []repo.Document, logger *slog.Logger) *writer.Summary {
	totalChunks := 0
	for _, doc := range documents {
		totalChunks += len(repo.ChunkDocument(doc, opts.chunkSize))
	}

	summary := &writer.Summary{
		RepoName:    filepath.Base(root),
		RepoPath:    root,
		GeneratedAt: time.Now(),
		Documents:   documents,
		TotalChunks: totalChunks,
	}

	if opts.withGit {
		summary.Git = gitlog.NewAnalyzer(root, logger).Summarize(defaultCommitLimit)
	}
	return summary
}

// watchAndRegenerate blocks, rerunning the scan whenever the watcher
// reports a debounced batch of changes.
func watchAndRegenerate(scanner *reader.Scanner, outputWriter writer.Writer, root string, outputPath string, logger *slog.Logger) error {
	fileWatcher, err := watcher.NewWatcher(root, scanner.Matcher(), logger)
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer fileWatcher.Close()

	go fileWatcher.Start()
	logger.Info("watching for changes", "root", root)

	for batch := range fileWatcher.Events() {
		logger.Info("changes detected", "events", len(batch))
		if err := generateOnce(scanner, outputWriter, root, outputPath, logger); err != nil {
			logger.Error("regeneration failed", "error", err)
		}
	}
	return nil
}
