// git2mind scans a repository, applies layered exclusion rules, extracts
// per-file metadata and renders a summary for language models. It can also
// serve the scan over MCP or search it from the command line.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// options holds all CLI flag values shared across commands.
type options struct {
	format       string
	output       string
	excludes     []string
	useGitignore bool
	chunkSize    int
	maxFiles     int
	withGit      bool
	dryRun       bool
	watch        bool
	verbose      bool

	// search flags
	searchGlob   string
	maxResults   int
	contextLines int
}

var opts options

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "git2mind [path]",
		Short: "Turn a repository into a model-ready summary",
		Long: `git2mind walks a repository directory, skips excluded and binary files,
extracts per-file metadata (Python symbols, Markdown headers, Dockerfile
directives, license headers) and writes a Markdown, JSON or XML summary.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGenerate,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringArrayVar(&opts.excludes, "exclude", nil, "extra exclude pattern (repeatable)")
	flags.BoolVar(&opts.useGitignore, "use-gitignore", false, "honor a root-level .gitignore")
	flags.IntVar(&opts.chunkSize, "chunk-size", 50, "lines per content chunk")
	flags.IntVar(&opts.maxFiles, "max-files", 1000, "stop scanning after this many files")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	local := rootCmd.Flags()
	local.StringVarP(&opts.format, "format", "f", "md", "output format: md, json or xml")
	local.StringVarP(&opts.output, "output", "o", "", "output file path (default git2mind_output.<ext>)")
	local.BoolVar(&opts.withGit, "git", false, "include git history in the summary")
	local.BoolVar(&opts.dryRun, "dry-run", false, "scan and report without writing output")
	local.BoolVar(&opts.watch, "watch", false, "keep running and regenerate on file changes")

	rootCmd.AddCommand(newSearchCmd(), newMCPCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveRoot turns the optional positional argument into an absolute scan
// root, defaulting to the current working directory.
func resolveRoot(args []string) (string, error) {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving root path: %w", err)
	}
	return absRoot, nil
}

// setupLogger creates an slog.Logger on stderr. Stdout stays clean for
// rendered output and the MCP stdio transport.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
