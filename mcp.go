package main

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/yegekucuk/git2mind/index"
	"github.com/yegekucuk/git2mind/reader"
	"github.com/yegekucuk/git2mind/repo"
	"github.com/yegekucuk/git2mind/server"
	"github.com/yegekucuk/git2mind/tools"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp [path]",
		Short: "Scan a repository and serve it over MCP stdio",
		Long: `Scan the repository once, build an in-memory full-text index and serve
the snapshot over the Model Context Protocol on stdio. Logging goes to
stderr so stdout stays reserved for the transport.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runMCP,
	}
}

func runMCP(cmd *cobra.Command, args []string) error {
	logger := setupLogger(opts.verbose)
	startTime := time.Now()

	root, err := resolveRoot(args)
	if err != nil {
		return err
	}
	if opts.chunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", opts.chunkSize)
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

	totalChunks := 0
	for _, doc := range documents {
		totalChunks += len(repo.ChunkDocument(doc, opts.chunkSize))
	}

	logger.Info("scan indexed",
		"root", root,
		"files", len(documents),
		"chunks", totalChunks,
		"elapsed", time.Since(startTime),
	)

	mcpServer := server.Setup(
		&tools.SearchHandler{Index: searchIndex, Logger: logger},
		&tools.FilesHandler{Index: searchIndex, Logger: logger},
		&tools.ReadHandler{Index: searchIndex, Logger: logger},
		&tools.StatusHandler{
			Documents:   documents,
			TotalChunks: totalChunks,
			RootDir:     root,
			StartTime:   startTime,
			Logger:      logger,
		},
	)

	logger.Info("MCP server starting on stdio")
	if err := mcpServer.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		logger.Error("MCP server error", "error", err)
		return err
	}
	return nil
}
