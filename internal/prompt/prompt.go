package prompt

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"resume-rag/internal/models"
)

// Interactive builds the message pair for a single scoped question:
// retrieved chunks joined by blank lines, then the literal question.
func Interactive(contextChunks []string, question string) []llms.MessageContent {
	context := strings.Join(contextChunks, models.ContextSeparator)
	return []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, models.SystemPromptInteractive),
		llms.TextParts(schema.ChatMessageTypeHuman,
			fmt.Sprintf("Context:\n%s\n\nQuestion: %s\nAnswer:", context, question)),
	}
}

// Batch builds the message pair for whole-document field extraction: the
// full document text plus one "Field: question" line per field, in
// configuration order.
func Batch(documentText string, fields []models.FieldQuery) []llms.MessageContent {
	questions := make([]string, len(fields))
	for i, fq := range fields {
		questions[i] = fmt.Sprintf("%s: %s", fq.Field, fq.Question)
	}
	return []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, models.SystemPromptBatch),
		llms.TextParts(schema.ChatMessageTypeHuman,
			fmt.Sprintf("Context:\n%s\n\nQuestions:\n%s\nAnswers:", documentText, strings.Join(questions, "\n"))),
	}
}
