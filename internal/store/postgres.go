package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"resume-rag/internal/config"
	"resume-rag/internal/models"
)

var _ VectorIndex = (*PostgresStore)(nil)

// ChunkRow is the pgvector-backed chunk record.
type ChunkRow struct {
	bun.BaseModel `bun:"table:resume_chunks,alias:rc"`
	ID            int64     `bun:"id,pk,autoincrement"`
	Content       string    `bun:"content,notnull"`
	Candidate     string    `bun:"candidate,notnull"`
	StartOffset   int       `bun:"start_offset,notnull"`
	Embedding     []float32 `bun:"embedding,notnull,type:vector(768)"`
}

// PostgresStore implements VectorIndex on Postgres with the pgvector
// extension. The candidate registry is a DISTINCT scan over the stored
// chunk rows, so it always reflects the table's current contents.
type PostgresStore struct {
	db *bun.DB
}

func NewPostgresStore(cfg *config.StoreConfig) (*PostgresStore, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(cfg.DSN),
		pgdriver.WithPassword(cfg.Password),
	))
	db := bun.NewDB(sqldb, pgdialect.New())
	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	if _, err := db.NewCreateTable().Model((*ChunkRow)(nil)).IfNotExists().Exec(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to initialize resume_chunks table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Add(ctx context.Context, candidate string, chunks []models.Chunk, embeddings [][]float32) error {
	if len(chunks) != len(embeddings) {
		return fmt.Errorf("chunks and embeddings length mismatch: %d != %d", len(chunks), len(embeddings))
	}
	if len(chunks) == 0 {
		return nil
	}

	rows := make([]ChunkRow, len(chunks))
	for i, ch := range chunks {
		rows[i] = ChunkRow{
			Content:     ch.Text,
			Candidate:   candidate,
			StartOffset: ch.StartOffset,
			Embedding:   embeddings[i],
		}
	}
	if _, err := s.db.NewInsert().Model(&rows).Exec(ctx); err != nil {
		return fmt.Errorf("failed to store chunks: %w", err)
	}
	return nil
}

func (s *PostgresStore) Search(ctx context.Context, candidate string, queryEmbedding []float32, k int) ([]string, error) {
	if k <= 0 {
		return nil, nil
	}
	var rows []ChunkRow
	err := s.db.NewSelect().
		Model(&rows).
		Column("content").
		Where("candidate = ?", candidate).
		OrderExpr("embedding <-> ?", queryEmbedding).
		Limit(k).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query by similarity: %w", err)
	}

	texts := make([]string, len(rows))
	for i, r := range rows {
		texts[i] = r.Content
	}
	return texts, nil
}

func (s *PostgresStore) Candidates(ctx context.Context) ([]string, error) {
	var tags []string
	err := s.db.NewSelect().
		Model((*ChunkRow)(nil)).
		ColumnExpr("DISTINCT candidate").
		OrderExpr("candidate").
		Scan(ctx, &tags)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return tags, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
