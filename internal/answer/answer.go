package answer

import (
	"strings"

	"resume-rag/internal/models"
)

// Extract strips an optional reasoning segment from raw model output.
// With both delimiters present the answer is everything strictly after
// the end tag; with only the end tag, everything after it; with neither
// (or only a dangling start tag) the raw text is kept. All outcomes are
// trimmed and none is an error: a model that skips the reasoning block
// must pass through untouched.
func Extract(raw string) string {
	end := strings.Index(raw, models.ThinkEndTag)
	if end == -1 {
		return strings.TrimSpace(raw)
	}
	return strings.TrimSpace(raw[end+len(models.ThinkEndTag):])
}

// Decompose parses batch output into a field -> answer map. Each line is
// split on its first separator; the left side is the field, the right
// the answer, both trimmed. Lines without a separator are discarded. An
// empty map is a valid outcome the caller must treat as "skip", not as
// an error.
func Decompose(final string) map[string]string {
	record := make(map[string]string)
	for _, line := range strings.Split(final, "\n") {
		field, value, ok := strings.Cut(line, models.FieldSeparator)
		if !ok {
			continue
		}
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		record[field] = strings.TrimSpace(value)
	}
	return record
}
