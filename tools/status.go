package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/yegekucuk/git2mind/repo"
)

// StatusArgs defines the input parameters for the git2mind_status tool (none required).
type StatusArgs struct{}

// StatusHandler holds the dependencies for the status tool.
type StatusHandler struct {
	Documents   []repo.Document
	TotalChunks int
	RootDir     string
	StartTime   time.Time
	Logger      *slog.Logger
}

// Handle processes a git2mind_status request.
func (h *StatusHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args StatusArgs) (*mcp.CallToolResult, any, error) {
	var builder strings.Builder

	var totalSize int64
	kindCounts := make(map[repo.Kind]int)
	for _, doc := range h.Documents {
		totalSize += int64(doc.SizeBytes)
		kindCounts[doc.Kind]++
	}
	uptime := time.Since(h.StartTime)

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	h.Logger.Info("git2mind_status",
		"documents", len(h.Documents),
		"totalSize", totalSize,
		"memory", memStats.Alloc,
		"uptime", uptime,
	)

	builder.WriteString("=== git2mind Status ===\n\n")
	builder.WriteString(fmt.Sprintf("Root directory: %s\n", h.RootDir))
	builder.WriteString(fmt.Sprintf("Uptime: %s\n", formatDuration(uptime)))
	builder.WriteString(fmt.Sprintf("Scanned documents: %d\n", len(h.Documents)))
	builder.WriteString(fmt.Sprintf("Total chunks: %d\n", h.TotalChunks))
	builder.WriteString(fmt.Sprintf("Total scanned size: %s\n", formatFileSize(totalSize)))
	builder.WriteString(fmt.Sprintf("Memory usage: %s (heap: %s)\n",
		formatFileSize(int64(memStats.Alloc)),
		formatFileSize(int64(memStats.HeapAlloc)),
	))

	if len(kindCounts) > 0 {
		builder.WriteString("\nFile kinds:\n")

		type kindEntry struct {
			kind  repo.Kind
			count int
		}
		entries := make([]kindEntry, 0, len(kindCounts))
		for kind, count := range kindCounts {
			entries = append(entries, kindEntry{kind, count})
		}
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].count != entries[j].count {
				return entries[i].count > entries[j].count
			}
			return entries[i].kind < entries[j].kind
		})

		for _, entry := range entries {
			builder.WriteString(fmt.Sprintf("  %-12s %d files\n", entry.kind, entry.count))
		}
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: builder.String()}},
	}, nil, nil
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	totalSeconds := int(d.Seconds())
	if totalSeconds < 60 {
		return fmt.Sprintf("%ds", totalSeconds)
	}
	totalMinutes := totalSeconds / 60
	remainderSeconds := totalSeconds % 60
	if totalMinutes < 60 {
		return fmt.Sprintf("%dm%ds", totalMinutes, remainderSeconds)
	}
	hours := totalMinutes / 60
	remainderMinutes := totalMinutes % 60
	return fmt.Sprintf("%dh%dm", hours, remainderMinutes)
}
