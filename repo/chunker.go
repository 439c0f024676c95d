package repo

import "strings"

// ChunkDocument splits a document's content into consecutive windows of at
// most chunkSize lines. Chunks are contiguous, non-overlapping, and cover
// every line exactly once; the last chunk may be shorter. An empty document
// produces no chunks.
//
// chunkSize must be positive; callers validate it before scanning starts.
func ChunkDocument(doc Document, chunkSize int) []Chunk {
	if doc.Content == "" {
		return nil
	}

	lines := strings.Split(doc.Content, "\n")
	chunks := make([]Chunk, 0, (len(lines)+chunkSize-1)/chunkSize)

	for start := 0; start < len(lines); start += chunkSize {
		end := start + chunkSize
		if end > len(lines) {
			end = len(lines)
		}
		chunks = append(chunks, Chunk{
			DocumentID: doc.ID,
			Path:       doc.Path,
			Content:    strings.Join(lines[start:end], "\n"),
			StartLine:  start + 1,
			EndLine:    end,
		})
	}

	return chunks
}
