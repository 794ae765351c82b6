package store

import (
	"context"
	"fmt"

	"resume-rag/internal/config"
	"resume-rag/internal/models"
)

// VectorIndex is the narrow contract the pipeline needs from a vector
// store: append chunks, candidate-scoped similarity search, and the set
// of candidate tags currently present. The registry is derived from the
// index contents on every call, never cached by callers.
type VectorIndex interface {
	Add(ctx context.Context, candidate string, chunks []models.Chunk, embeddings [][]float32) error
	Search(ctx context.Context, candidate string, queryEmbedding []float32, k int) ([]string, error)
	Candidates(ctx context.Context) ([]string, error)
	Close() error
}

// Open builds the configured backend. The returned handle is meant to be
// opened once at process start and passed down explicitly.
func Open(cfg *config.StoreConfig) (VectorIndex, error) {
	switch cfg.Backend {
	case "chromem":
		return NewChromemStore(cfg.Path)
	case "postgres":
		return NewPostgresStore(cfg)
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend)
	}
}
