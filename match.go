package search

import (
	"sort"

	"golang.org/x/sync/errgroup"
)

// matchDocument returns the sorted plus-words of q present in document id,
// or an empty slice if any minus-word is present (spec.md §4.H). A direct
// port of SearchServer::MatchDocument's sequential branch in
// search_server.cpp.
func (s *store) matchDocument(q Query, id DocumentID) []string {
	for _, word := range q.MinusWords {
		if postings, ok := s.byTerm[word]; ok {
			if _, present := postings[id]; present {
				return []string{}
			}
		}
	}

	present := make(map[string]struct{})
	for _, word := range q.PlusWords {
		if postings, ok := s.byTerm[word]; ok {
			if _, ok := postings[id]; ok {
				present[word] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(present))
	for w := range present {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// matchDocumentParallel mirrors the parallel_policy overload: minus-word
// membership is checked with one goroutine per minus-word, and once all of
// them have finished any hit yields an empty result. The plus-words are
// then deduplicated, each distinct plus-word is tested on its own goroutine
// writing into its own slot of a pre-sized buffer, and the buffer is sorted
// and its empty-string prefix (the words not present) dropped — the same
// "copy_if then sort then upper_bound" shape as search_server.cpp's
// parallel MatchDocument.
func (s *store) matchDocumentParallel(q Query, id DocumentID) []string {
	freqs := s.wordFrequencies(id)

	found := make([]bool, len(q.MinusWords))
	var g errgroup.Group
	for i, word := range q.MinusWords {
		i, word := i, word
		g.Go(func() error {
			_, found[i] = freqs[word]
			return nil
		})
	}
	g.Wait() //nolint:errcheck // Go funcs never return an error
	for _, hit := range found {
		if hit {
			return []string{}
		}
	}

	// RemovePlusWordsDuplicates: the parallel query keeps raw multiplicity
	// on plus-words (parseQueryRaw); dedup here, right before the
	// parallel copy-if, the same point search_server.cpp calls
	// RemovePlusWordsDublicates() at.
	plusWords := dedupSorted(q.PlusWords)

	buf := make([]string, len(plusWords))
	var g2 errgroup.Group
	for i, word := range plusWords {
		i, word := i, word
		g2.Go(func() error {
			if _, ok := freqs[word]; ok {
				buf[i] = word
			}
			return nil
		})
	}
	g2.Wait() //nolint:errcheck // Go funcs never return an error

	sort.Strings(buf)
	// buf is sorted with all empty-string slots first; find the first
	// non-empty entry the same way upper_bound(..., "") does in C++.
	start := 0
	for start < len(buf) && buf[start] == "" {
		start++
	}
	return buf[start:]
}
