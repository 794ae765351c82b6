package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-rag/internal/models"
)

func newTestStore(t *testing.T) *ChromemStore {
	t.Helper()
	s, err := NewChromemStore("")
	require.NoError(t, err)
	return s
}

func seed(t *testing.T, s *ChromemStore) {
	t.Helper()
	ctx := context.Background()

	err := s.Add(ctx, "alice", []models.Chunk{
		{Text: "5 years Java experience", Candidate: "alice", StartOffset: 0},
		{Text: "worked at Acme Corp", Candidate: "alice", StartOffset: 500},
	}, [][]float32{{1, 0}, {0.7071068, 0.7071068}})
	require.NoError(t, err)

	err = s.Add(ctx, "bob", []models.Chunk{
		{Text: "3 years Go experience", Candidate: "bob", StartOffset: 0},
	}, [][]float32{{0, 1}})
	require.NoError(t, err)
}

func TestChromemStore_ScopedSearchNeverCrossesCandidates(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)
	ctx := context.Background()

	texts, err := s.Search(ctx, "alice", []float32{1, 0}, 10)
	require.NoError(t, err)
	require.Len(t, texts, 2)
	assert.Equal(t, "5 years Java experience", texts[0])
	for _, text := range texts {
		assert.NotContains(t, text, "Go")
	}

	texts, err = s.Search(ctx, "bob", []float32{1, 0}, 10)
	require.NoError(t, err)
	require.Len(t, texts, 1)
	assert.Equal(t, "3 years Go experience", texts[0])
}

func TestChromemStore_SearchUnknownCandidateIsEmpty(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)

	texts, err := s.Search(context.Background(), "carol", []float32{1, 0}, 3)
	require.NoError(t, err)
	assert.Empty(t, texts)
}

func TestChromemStore_KLargerThanCollection(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)

	texts, err := s.Search(context.Background(), "bob", []float32{0, 1}, 100)
	require.NoError(t, err)
	assert.Len(t, texts, 1)
}

func TestChromemStore_CandidatesReflectContents(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	tags, err := s.Candidates(ctx)
	require.NoError(t, err)
	assert.Empty(t, tags)

	seed(t, s)
	tags, err = s.Candidates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, tags)
}

func TestChromemStore_ReuploadReplacesChunks(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	chunks := []models.Chunk{{Text: "original", Candidate: "alice", StartOffset: 0}}

	require.NoError(t, s.Add(ctx, "alice", chunks, [][]float32{{1, 0}}))
	chunks[0].Text = "updated"
	require.NoError(t, s.Add(ctx, "alice", chunks, [][]float32{{1, 0}}))

	texts, err := s.Search(ctx, "alice", []float32{1, 0}, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"updated"}, texts)
}

func TestChromemStore_AddLengthMismatch(t *testing.T) {
	s := newTestStore(t)
	err := s.Add(context.Background(), "alice",
		[]models.Chunk{{Text: "one"}}, [][]float32{{1, 0}, {0, 1}})
	assert.Error(t, err)
}
