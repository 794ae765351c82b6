package rag

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/embeddings"

	"resume-rag/internal/answer"
	"resume-rag/internal/candidate"
	"resume-rag/internal/chunker"
	"resume-rag/internal/config"
	"resume-rag/internal/llmservice"
	"resume-rag/internal/models"
	"resume-rag/internal/parser"
	"resume-rag/internal/prompt"
	"resume-rag/internal/store"
)

// ErrInsufficientContext means the scoped search matched no chunks for
// the resolved candidate. It is a refusal to answer, not a pipeline
// failure.
var ErrInsufficientContext = errors.New("rag: no relevant chunks found")

// RAG wires the interactive pipeline: upload tags and indexes a resume,
// Query resolves a candidate, retrieves scoped context and asks the
// model. All collaborators are passed in; RAG holds no hidden state.
type RAG struct {
	index    store.VectorIndex
	embedder embeddings.Embedder
	gen      llmservice.Generator
	cfg      *config.Config
}

func NewRAG(index store.VectorIndex, embedder embeddings.Embedder, gen llmservice.Generator, cfg *config.Config) *RAG {
	return &RAG{index: index, embedder: embedder, gen: gen, cfg: cfg}
}

// Upload extracts, chunks, embeds and indexes one resume. The candidate
// tag is derived from the file name.
func (r *RAG) Upload(ctx context.Context, filePath string) (string, int, error) {
	text, err := parser.ExtractText(filePath)
	if err != nil {
		return "", 0, fmt.Errorf("extracting text: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", 0, fmt.Errorf("no text extracted from %s", filePath)
	}

	tag := candidate.Tag(filePath)
	fragments, err := chunker.Split(text, r.cfg.RAG.ChunkSize, r.cfg.RAG.ChunkOverlap)
	if err != nil {
		return "", 0, err
	}

	texts := make([]string, len(fragments))
	chunks := make([]models.Chunk, len(fragments))
	for i, f := range fragments {
		texts[i] = f.Text
		chunks[i] = models.Chunk{Text: f.Text, Candidate: tag, StartOffset: f.StartOffset}
	}

	embs, err := r.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return "", 0, fmt.Errorf("embedding chunks: %w", err)
	}
	if err := r.index.Add(ctx, tag, chunks, embs); err != nil {
		return "", 0, fmt.Errorf("indexing chunks: %w", err)
	}

	log.Info().Str("candidate", tag).Int("chunks", len(chunks)).Msg("Resume indexed")
	return tag, len(chunks), nil
}

// Query answers one question scoped to the candidate the query text
// refers to. Resolution below the confidence threshold stops the
// pipeline before retrieval.
func (r *RAG) Query(ctx context.Context, queryText string) (*models.QueryResponse, error) {
	known, err := r.index.Candidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing candidates: %w", err)
	}

	match, err := candidate.Resolve(queryText, known)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("candidate", match.Tag).Int("confidence", match.Score).Msg("Matched candidate")

	queryEmbedding, err := r.embedder.EmbedQuery(ctx, queryText)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	chunks, err := r.index.Search(ctx, match.Tag, queryEmbedding, r.cfg.RAG.TopK)
	if err != nil {
		return nil, fmt.Errorf("searching chunks: %w", err)
	}
	if len(chunks) == 0 {
		return nil, ErrInsufficientContext
	}

	messages := prompt.Interactive(chunks, queryText)
	raw, err := r.gen.Generate(ctx, messages, r.cfg.GenLLM.MaxTokens)
	if err != nil {
		return nil, fmt.Errorf("generating answer: %w", err)
	}

	return &models.QueryResponse{
		Candidate:  match.Tag,
		Confidence: match.Score,
		Context:    strings.Join(chunks, models.ContextSeparator),
		Answer:     answer.Extract(raw),
	}, nil
}
