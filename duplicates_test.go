package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRemoveDuplicatesS4 mirrors spec.md's S4 scenario: documents 3, 4, 5, 7
// are word-set duplicates of 2, 2, 1, 6 respectively.
func TestRemoveDuplicatesS4(t *testing.T) {
	server, err := NewServerFromString("and with")
	require.NoError(t, err)

	require.NoError(t, server.AddDocument(1, "funny pet and nasty rat", Actual, nil))
	require.NoError(t, server.AddDocument(2, "funny pet with curly hair", Actual, nil))
	require.NoError(t, server.AddDocument(3, "funny pet curly hair", Actual, nil))    // dup of 2
	require.NoError(t, server.AddDocument(4, "curly hair pet funny", Actual, nil))    // dup of 2
	require.NoError(t, server.AddDocument(5, "nasty rat funny pet", Actual, nil))     // dup of 1
	require.NoError(t, server.AddDocument(6, "big cat nasty hair", Actual, nil))
	require.NoError(t, server.AddDocument(7, "hair nasty cat big", Actual, nil))      // dup of 6
	require.NoError(t, server.AddDocument(8, "pure unique document text", Actual, nil))
	require.NoError(t, server.AddDocument(9, "another unique one here", Actual, nil))

	require.Equal(t, 9, server.GetDocumentCount())
	server.RemoveDuplicates()
	assert.Equal(t, 5, server.GetDocumentCount())

	for _, removed := range []DocumentID{3, 4, 5, 7} {
		_, _, err := server.MatchDocumentParallel("anything", removed)
		assert.ErrorIs(t, err, ErrNonexistentID)
	}
	for _, kept := range []DocumentID{1, 2, 6, 8, 9} {
		assert.Contains(t, server.IterDocumentIDs(), kept)
	}
}

func TestFindDuplicateGroupsKeepsSmallestID(t *testing.T) {
	s := newTestStore()
	require.NoError(t, s.add(5, "a b c", Actual, nil))
	require.NoError(t, s.add(2, "a b c", Actual, nil))
	require.NoError(t, s.add(9, "a b c", Actual, nil))
	require.NoError(t, s.add(1, "unique words only", Actual, nil))

	toRemove := s.findDuplicateGroups()
	assert.ElementsMatch(t, []DocumentID{5, 9}, toRemove)
}

func TestFindDuplicateGroupsSingleMemberGroupSurvives(t *testing.T) {
	s := newTestStore()
	require.NoError(t, s.add(1, "solo document", Actual, nil))
	toRemove := s.findDuplicateGroups()
	assert.Empty(t, toRemove)
}
