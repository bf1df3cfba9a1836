package rag

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultChunkSize = 300
	DefaultOverlap   = 50
)

// ChunkText splits text into windows of at most chunkSize words, each
// sharing overlap words with the one before it. The last window may be short.
func ChunkText(text, source string, chunkSize, overlap int) ([]Chunk, error) {
	if err := ValidateChunking(chunkSize, overlap); err != nil {
		return nil, err
	}

	words := strings.Fields(text)
	step := chunkSize - overlap

	var chunks []Chunk
	for i := 0; i < len(words); i += step {
		// i+chunkSize can overflow for huge windows
		end := i + min(chunkSize, len(words)-i)
		chunks = append(chunks, Chunk{
			ID:      source + "-" + strconv.Itoa(len(chunks)+1),
			Content: strings.Join(words[i:end], " "),
			Source:  source,
			Offset:  i,
			Words:   end - i,
		})
	}

	return chunks, nil
}

// ValidateChunking requires 0 <= overlap < chunkSize so the window always advances.
func ValidateChunking(chunkSize, overlap int) error {
	switch {
	case chunkSize <= 0:
		return fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidChunkConfig, chunkSize)
	case overlap < 0:
		return fmt.Errorf("%w: overlap must not be negative, got %d", ErrInvalidChunkConfig, overlap)
	case overlap >= chunkSize:
		return fmt.Errorf("%w: overlap %d must be smaller than chunk size %d", ErrInvalidChunkConfig, overlap, chunkSize)
	}
	return nil
}
