package store

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"github.com/philippgille/chromem-go"

	"resume-rag/internal/models"
)

var _ VectorIndex = (*ChromemStore)(nil)

const compress = false

// ChromemStore keeps one chromem collection per candidate tag. Scoped
// search only ever touches that candidate's collection, so chunks from
// different candidates cannot leak into each other's results. The
// candidate registry is the live set of collection names.
type ChromemStore struct {
	db *chromem.DB
}

// NewChromemStore opens a persistent database at path, or an in-memory
// one when path is empty.
func NewChromemStore(path string) (*ChromemStore, error) {
	if path == "" {
		return &ChromemStore{db: chromem.NewDB()}, nil
	}
	db, err := chromem.NewPersistentDB(path, compress)
	if err != nil {
		return nil, fmt.Errorf("failed to open chromem database: %w", err)
	}
	return &ChromemStore{db: db}, nil
}

func (s *ChromemStore) Add(ctx context.Context, candidate string, chunks []models.Chunk, embeddings [][]float32) error {
	if len(chunks) != len(embeddings) {
		return fmt.Errorf("chunks and embeddings length mismatch: %d != %d", len(chunks), len(embeddings))
	}
	if len(chunks) == 0 {
		return nil
	}

	col, err := s.db.GetOrCreateCollection(candidate, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create/get collection: %w", err)
	}

	docs := make([]chromem.Document, len(chunks))
	for i, ch := range chunks {
		// Offset-based IDs make re-uploading the same file an upsert
		// instead of accumulating duplicate chunks.
		docs[i] = chromem.Document{
			ID:      fmt.Sprintf("%s-%d", candidate, ch.StartOffset),
			Content: ch.Text,
			Metadata: map[string]string{
				"candidate": candidate,
				"offset":    fmt.Sprintf("%d", ch.StartOffset),
			},
			Embedding: embeddings[i],
		}
	}

	if err := col.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return fmt.Errorf("failed to add documents: %w", err)
	}
	return nil
}

func (s *ChromemStore) Search(ctx context.Context, candidate string, queryEmbedding []float32, k int) ([]string, error) {
	col := s.db.GetCollection(candidate, nil)
	if col == nil {
		return nil, nil
	}
	if n := col.Count(); k > n {
		k = n
	}
	if k <= 0 {
		return nil, nil
	}

	results, err := col.QueryWithOptions(ctx, chromem.QueryOptions{
		QueryEmbedding: queryEmbedding,
		NResults:       k,
		Where:          map[string]string{"candidate": candidate},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query by similarity: %w", err)
	}

	texts := make([]string, len(results))
	for i, r := range results {
		texts[i] = r.Content
	}
	return texts, nil
}

func (s *ChromemStore) Candidates(ctx context.Context) ([]string, error) {
	collections := s.db.ListCollections()
	tags := make([]string, 0, len(collections))
	for name := range collections {
		tags = append(tags, name)
	}
	sort.Strings(tags)
	return tags, nil
}

// Close is a no-op: chromem persists writes as they happen.
func (s *ChromemStore) Close() error { return nil }
