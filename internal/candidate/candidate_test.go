package candidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTag_Normalises(t *testing.T) {
	assert.Equal(t, "alice", Tag("/home/user/resumes/Alice.pdf"))
	assert.Equal(t, "alice smith", Tag("Alice Smith.PDF"))
	assert.Equal(t, "bob", Tag("bob.docx"))
	assert.Equal(t, "carol", Tag(" Carol .txt"))
}

func TestTag_Idempotent(t *testing.T) {
	tag := Tag("resumes/Alice Smith.pdf")
	assert.Equal(t, tag, Tag(tag))
	assert.Equal(t, Tag("x/y/Alice.pdf"), Tag("z/Alice.pdf"))
}

func TestResolve_EmptyRegistry(t *testing.T) {
	_, err := Resolve("who is alice", nil)
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestResolve_EmptyQuery(t *testing.T) {
	_, err := Resolve("", []string{"alice", "bob"})
	assert.ErrorIs(t, err, ErrLowConfidence)
}

func TestResolve_MatchesNameInQuery(t *testing.T) {
	match, err := Resolve("how many years has alice worked", []string{"alice", "bob"})
	require.NoError(t, err)
	assert.Equal(t, "alice", match.Tag)
	assert.GreaterOrEqual(t, match.Score, MatchThreshold)
}

func TestResolve_MultiTokenName(t *testing.T) {
	// The possessive must not break tokenization of the name.
	match, err := Resolve("what are john smith's technical skills", []string{"john smith", "jane doe"})
	require.NoError(t, err)
	assert.Equal(t, "john smith", match.Tag)
	assert.GreaterOrEqual(t, match.Score, MatchThreshold)
}

func TestResolve_PunctuationAroundName(t *testing.T) {
	match, err := Resolve("where is alice, currently?", []string{"alice", "bob"})
	require.NoError(t, err)
	assert.Equal(t, "alice", match.Tag)
	assert.GreaterOrEqual(t, match.Score, MatchThreshold)
}

func TestResolve_LowConfidence(t *testing.T) {
	match, err := Resolve("completely unrelated question xyz", []string{"alice"})
	assert.ErrorIs(t, err, ErrLowConfidence)
	// The best match is still reported so callers can log it.
	assert.Equal(t, "alice", match.Tag)
	assert.Less(t, match.Score, MatchThreshold)
}

func TestResolve_Deterministic(t *testing.T) {
	known := []string{"alice", "bob", "carol"}
	first, err := Resolve("tell me about alice", known)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Resolve("tell me about alice", known)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
