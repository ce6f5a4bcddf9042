package search

import (
	"fmt"
	"sync"
)

// meta holds the immutable, non-index metadata for one document.
type meta struct {
	status Status
	rating int
}

// store is the document store and inverted index (spec.md §4.D/§4.E),
// generalizing the teacher's TF_/document_status_/documents_rating_ maps
// (search_server.h) into Go maps. It is deliberately not safe for
// concurrent mutation — spec.md §5 requires writers to be serialized by the
// caller, exactly like SearchServer in search_server.cpp.
type store struct {
	ids       map[DocumentID]struct{}
	order     []DocumentID // insertion order, for GetDocumentID / iteration
	metas     map[DocumentID]meta
	byID      map[DocumentID]map[string]float64 // TF_by_id
	byTerm    map[string]map[DocumentID]float64 // TF_by_term
	stopWords map[string]struct{}
}

func newStore(stopWords map[string]struct{}) *store {
	return &store{
		ids:       make(map[DocumentID]struct{}),
		metas:     make(map[DocumentID]meta),
		byID:      make(map[DocumentID]map[string]float64),
		byTerm:    make(map[string]map[DocumentID]float64),
		stopWords: stopWords,
	}
}

func (s *store) count() int { return len(s.order) }

// add inserts a new document, computing its per-term frequencies after
// stop-word removal. It rejects a negative id, a duplicate id, or text
// containing a control byte (spec.md §3).
func (s *store) add(id DocumentID, text string, status Status, ratings []int) error {
	if id < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	if _, exists := s.ids[id]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateID, id)
	}
	if hasControlByte(text) {
		return fmt.Errorf("%w: document %d", ErrInvalidText, id)
	}

	words := make([]string, 0)
	for _, w := range splitIntoWords(text) {
		if _, isStop := s.stopWords[w]; isStop {
			continue
		}
		words = append(words, w)
	}

	tf := make(map[string]float64, len(words))
	if len(words) > 0 {
		inc := 1.0 / float64(len(words))
		for _, w := range words {
			tf[w] += inc
		}
	}

	s.ids[id] = struct{}{}
	s.order = append(s.order, id)
	s.metas[id] = meta{status: status, rating: computeAverageRating(ratings)}
	s.byID[id] = tf
	for term, freq := range tf {
		postings, ok := s.byTerm[term]
		if !ok {
			postings = make(map[DocumentID]float64)
			s.byTerm[term] = postings
		}
		postings[id] = freq
	}
	return nil
}

// remove deletes id from every index it appears in. A no-op if id is not
// present (spec.md §4.I / §7 — removal is idempotent, not an error).
func (s *store) remove(id DocumentID) {
	if _, exists := s.ids[id]; !exists {
		return
	}
	for term := range s.byID[id] {
		s.eraseTermPosting(term, id)
	}
	s.finishRemove(id)
}

// removeParallel mirrors RemoveDocument(std::execution::parallel_policy, ...)
// in search_server.cpp: the term list is materialized up front, and the
// per-term postings erasures run concurrently, since each term's inner
// posting map is a distinct object. Unlike C++ std::map, a Go map does not
// allow concurrent erasure of distinct keys on the *same* map — so unlike
// the C++ original, deleting a term that emptied out of the outer s.byTerm
// map cannot happen inside the concurrent phase. Emptied terms are
// collected instead and their outer-map keys deleted serially after the
// per-term work completes. Erasure of the document's own metadata happens
// only after that serial cleanup.
func (s *store) removeParallel(id DocumentID, parallelFor func(terms []string, do func(term string))) {
	if _, exists := s.ids[id]; !exists {
		return
	}
	terms := make([]string, 0, len(s.byID[id]))
	for term := range s.byID[id] {
		terms = append(terms, term)
	}

	var mu sync.Mutex
	var emptied []string
	parallelFor(terms, func(term string) {
		if s.erasePostingEntry(term, id) {
			mu.Lock()
			emptied = append(emptied, term)
			mu.Unlock()
		}
	})
	for _, term := range emptied {
		delete(s.byTerm, term)
	}
	s.finishRemove(id)
}

func (s *store) eraseTermPosting(term string, id DocumentID) {
	if s.erasePostingEntry(term, id) {
		delete(s.byTerm, term)
	}
}

// erasePostingEntry deletes id from term's posting list and reports whether
// the list is now empty. It only mutates the per-term inner map, never the
// outer s.byTerm map, so concurrent calls for distinct terms are safe: each
// inner map is a distinct object, and only the caller decides when (and
// serially) to remove the now-empty term from the outer map.
func (s *store) erasePostingEntry(term string, id DocumentID) bool {
	postings := s.byTerm[term]
	delete(postings, id)
	return len(postings) == 0
}

func (s *store) finishRemove(id DocumentID) {
	delete(s.byID, id)
	delete(s.metas, id)
	delete(s.ids, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// wordFrequencies returns the term->tf map for id, or an empty map if id is
// absent (spec.md §4.D).
func (s *store) wordFrequencies(id DocumentID) map[string]float64 {
	if tf, ok := s.byID[id]; ok {
		return tf
	}
	return emptyTermFreqs
}

var emptyTermFreqs = map[string]float64{}

func computeAverageRating(ratings []int) int {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return sum / len(ratings)
}
