package candidate

import (
	"errors"
	"path/filepath"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// MatchThreshold is the minimum confidence at which a fuzzy match is
// trusted. Below it the pipeline must refuse to answer rather than
// search across unrelated candidates.
const MatchThreshold = 60

var (
	ErrNoCandidates  = errors.New("candidate: no candidates indexed")
	ErrLowConfidence = errors.New("candidate: no confident match for query")
)

// Match is the outcome of resolving a free-text candidate reference.
type Match struct {
	Tag   string
	Score int
}

// Tag derives the candidate identifier from a document path: base name
// minus extension, lower-cased and trimmed. Deterministic, so repeated
// uploads of the same file land under the same tag. Distinct files that
// normalise to the same name merge under one tag.
func Tag(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ToLower(strings.TrimSpace(base))
}

// Resolve ranks known tags against the query text by token-set ratio and
// returns the best match. Both sides are cleansed first (punctuation to
// spaces, lower-cased) so a possessive like "smith's" still tokenizes to
// the name. The known slice is an explicit snapshot of the registry;
// Resolve never consults shared state. Ties keep the earliest tag in the
// slice, so the result is deterministic for a given input.
func Resolve(query string, known []string) (Match, error) {
	if len(known) == 0 {
		return Match{}, ErrNoCandidates
	}

	cleaned := fuzzy.Cleanse(strings.ToLower(query), false)
	best := Match{Score: -1}
	for _, tag := range known {
		score := fuzzy.TokenSetRatio(cleaned, fuzzy.Cleanse(strings.ToLower(tag), false))
		if score > best.Score {
			best = Match{Tag: tag, Score: score}
		}
	}

	if best.Score < MatchThreshold {
		return best, ErrLowConfidence
	}
	return best, nil
}
