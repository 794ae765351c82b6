package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"resume-rag/internal/answer"
	"resume-rag/internal/config"
	"resume-rag/internal/helper"
	"resume-rag/internal/llmservice"
	"resume-rag/internal/parser"
	"resume-rag/internal/prompt"
	"resume-rag/internal/sink"
)

// Forwarder is the external sink boundary; sink.Client is the real one.
type Forwarder interface {
	Forward(ctx context.Context, record map[string]string) error
}

var _ Forwarder = (*sink.Client)(nil)

// Summary counts the outcomes of one batch run.
type Summary struct {
	Processed int
	Sent      int
	Skipped   int
	Failed    int
}

// Runner drives field extraction over a directory of resumes, one
// document at a time. Every failure is local to its document: the run
// itself only fails when the directory cannot be read.
type Runner struct {
	cfg     *config.Config
	gen     llmservice.Generator
	sink    Forwarder
	extract func(path string) (string, error)
}

func NewRunner(cfg *config.Config, gen llmservice.Generator, fw Forwarder) *Runner {
	return &Runner{
		cfg:     cfg,
		gen:     gen,
		sink:    fw,
		extract: parser.ExtractText,
	}
}

// Run processes every supported file in dir: extract text, prompt the
// model with the configured field questions, parse the answers and
// forward the record to the sink.
func (r *Runner) Run(ctx context.Context, dir string) (Summary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Summary{}, fmt.Errorf("reading batch directory: %w", err)
	}

	runID := uuid.NewString()
	logger := log.With().Str("run_id", runID).Logger()
	logger.Info().Str("dir", dir).Msg("Starting batch extraction")

	var sum Summary
	for _, entry := range entries {
		if entry.IsDir() || !parser.Supported(entry.Name()) {
			continue
		}
		sum.Processed++

		path := filepath.Join(dir, entry.Name())
		docLog := logger.With().Str("file", entry.Name()).Logger()

		record, err := r.extractRecord(ctx, path)
		if err != nil {
			docLog.Error().Err(err).Msg("Extraction failed, continuing with next document")
			sum.Failed++
			continue
		}
		if len(record) == 0 {
			docLog.Warn().Msg("No valid data extracted, skipping")
			sum.Skipped++
			continue
		}

		if err := r.sink.Forward(ctx, record); err != nil {
			docLog.Error().Err(err).Msg("Forwarding to sink failed")
			sum.Failed++
			continue
		}

		docLog.Info().Int("fields", len(record)).Msg("Record sent to sink")
		helper.PrettyPrint(record)
		sum.Sent++
	}

	logger.Info().
		Int("processed", sum.Processed).
		Int("sent", sum.Sent).
		Int("skipped", sum.Skipped).
		Int("failed", sum.Failed).
		Msg("Batch extraction finished")
	return sum, nil
}

// extractRecord runs one document through prompt, generation and answer
// decomposition. An empty record is a valid outcome, not an error.
func (r *Runner) extractRecord(ctx context.Context, path string) (map[string]string, error) {
	text, err := r.extract(path)
	if err != nil {
		return nil, fmt.Errorf("extracting text: %w", err)
	}

	messages := prompt.Batch(text, r.cfg.Batch.Fields)
	raw, err := r.gen.Generate(ctx, messages, r.cfg.Batch.MaxTokens)
	if err != nil {
		return nil, fmt.Errorf("generating answers: %w", err)
	}

	return answer.Decompose(answer.Extract(raw)), nil
}
