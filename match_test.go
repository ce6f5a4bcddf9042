package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildS3Store(t *testing.T) *store {
	t.Helper()
	s := newTestStore("and", "with")
	require.NoError(t, s.add(35, "spider man and doctor stiven strange with hulk", Actual, nil))
	return s
}

func TestMatchDocumentS3ExcludesWhenMinusWordPresent(t *testing.T) {
	s := buildS3Store(t)
	q, err := parseQuery("spider man -hulk", s.stopWords)
	require.NoError(t, err)

	words := s.matchDocument(q, 35)
	assert.Empty(t, words)
}

func TestMatchDocumentS3ReturnsSortedPlusWords(t *testing.T) {
	s := buildS3Store(t)
	q, err := parseQuery("spider hulk", s.stopWords)
	require.NoError(t, err)

	words := s.matchDocument(q, 35)
	assert.Equal(t, []string{"hulk", "spider"}, words)
}

func TestMatchDocumentAbsentWordsAreExcluded(t *testing.T) {
	s := buildS3Store(t)
	q, err := parseQuery("spider scooby", s.stopWords)
	require.NoError(t, err)

	words := s.matchDocument(q, 35)
	assert.Equal(t, []string{"spider"}, words)
}

func TestMatchDocumentParallelAgreesWithSequential(t *testing.T) {
	s := buildS3Store(t)

	seqQuery, err := parseQuery("spider man -hulk", s.stopWords)
	require.NoError(t, err)
	parQuery, err := parseQueryRaw("spider man -hulk", s.stopWords)
	require.NoError(t, err)

	assert.Equal(t, s.matchDocument(seqQuery, 35), s.matchDocumentParallel(parQuery, 35))

	seqQuery2, err := parseQuery("spider hulk", s.stopWords)
	require.NoError(t, err)
	parQuery2, err := parseQueryRaw("spider hulk", s.stopWords)
	require.NoError(t, err)
	assert.Equal(t, s.matchDocument(seqQuery2, 35), s.matchDocumentParallel(parQuery2, 35))
}

func TestMatchDocumentParallelDedupsRepeatedPlusWords(t *testing.T) {
	s := buildS3Store(t)
	parQuery, err := parseQueryRaw("spider spider hulk hulk", s.stopWords)
	require.NoError(t, err)

	words := s.matchDocumentParallel(parQuery, 35)
	assert.Equal(t, []string{"hulk", "spider"}, words)
}
