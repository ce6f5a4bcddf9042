package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProcessTestServer(t *testing.T) *Server {
	t.Helper()
	server, err := NewServerFromString("and with")
	require.NoError(t, err)
	require.NoError(t, server.AddDocument(1, "funny pet and nasty rat", Actual, []int{7, 2, 7}))
	require.NoError(t, server.AddDocument(2, "funny pet with curly hair", Actual, []int{1, 2, 3}))
	require.NoError(t, server.AddDocument(3, "big cat nasty hair", Actual, []int{1, 2, 8}))
	return server
}

func TestProcessQueriesPreservesInputOrder(t *testing.T) {
	server := newProcessTestServer(t)
	results, err := ProcessQueries(server, []string{"funny", "nasty", "scooby"})
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, d := range results[0] {
		assert.NotEqual(t, DocumentID(3), d.ID, "query 'funny' must not match document 3")
	}
	assert.Empty(t, results[2])
}

func TestProcessQueriesPropagatesParseErrors(t *testing.T) {
	server := newProcessTestServer(t)
	_, err := ProcessQueries(server, []string{"funny", "--bad"})
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestProcessQueriesJoinedConcatenatesInOrder(t *testing.T) {
	server := newProcessTestServer(t)
	joined, err := ProcessQueriesJoined(server, []string{"funny", "nasty"})
	require.NoError(t, err)
	assert.NotEmpty(t, joined)

	separate, err := ProcessQueries(server, []string{"funny", "nasty"})
	require.NoError(t, err)
	var want []Document
	for _, docs := range separate {
		want = append(want, docs...)
	}
	assert.Equal(t, want, joined)
}
