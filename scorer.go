package search

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// findAllDocuments computes TF-IDF relevance for every candidate document
// that survives the predicate, then purges minus-word hits unconditionally.
// This is the sequential algorithm in spec.md §4.F, a direct port of
// SearchServer::FindAllDocuments in search_server.h.
func (s *store) findAllDocuments(q Query, filter Predicate) []Document {
	relevance := make(map[DocumentID]float64)

	for _, term := range q.PlusWords {
		postings, ok := s.byTerm[term]
		if !ok {
			continue
		}
		idf := math.Log(float64(s.count()) / float64(len(postings)))
		for id, tf := range postings {
			m := s.metas[id]
			if !filter(id, m.status, m.rating) {
				continue
			}
			relevance[id] += idf * tf
		}
	}

	for _, term := range q.MinusWords {
		postings, ok := s.byTerm[term]
		if !ok {
			continue
		}
		for id := range postings {
			delete(relevance, id)
		}
	}

	result := make([]Document, 0, len(relevance))
	for id, rel := range relevance {
		result = append(result, Document{ID: id, Relevance: rel, Rating: s.metas[id].rating})
	}
	return result
}

// findAllDocumentsParallel replaces the plain map accumulator with a
// ConcurrentMap and fans out one goroutine per plus-word (step 2) and one
// per minus-word (step 3), joined with errgroup — the idiomatic Go
// translation of the teacher's channel-per-shard worker pool
// (searchengine.go's indexerLookupWorker/rankerRankWorker) applied to the
// bulk-synchronous parallel region this spec actually calls for
// (spec.md §4.F, §5).
func (s *store) findAllDocumentsParallel(q Query, filter Predicate, shardCount int) []Document {
	relevance := NewConcurrentMap[DocumentID, float64](shardCount)

	var g errgroup.Group
	for _, term := range q.PlusWords {
		term := term
		postings, ok := s.byTerm[term]
		if !ok {
			continue
		}
		idf := math.Log(float64(s.count()) / float64(len(postings)))
		g.Go(func() error {
			for id, tf := range postings {
				m := s.metas[id]
				if !filter(id, m.status, m.rating) {
					continue
				}
				contribution := idf * tf
				relevance.Add(id, contribution, func(a, b float64) float64 { return a + b })
			}
			return nil
		})
	}
	g.Wait() //nolint:errcheck // Go funcs never return an error

	var g2 errgroup.Group
	for _, term := range q.MinusWords {
		term := term
		postings, ok := s.byTerm[term]
		if !ok {
			continue
		}
		g2.Go(func() error {
			for id := range postings {
				relevance.Erase(id)
			}
			return nil
		})
	}
	g2.Wait() //nolint:errcheck // Go funcs never return an error

	flat := relevance.BuildOrdinaryMap()
	result := make([]Document, 0, len(flat))
	for id, rel := range flat {
		result = append(result, Document{ID: id, Relevance: rel, Rating: s.metas[id].rating})
	}
	return result
}
