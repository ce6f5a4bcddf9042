// Package search implements an in-memory document search engine: documents
// are added with a status and a rating history, queries are parsed into
// plus/minus word sets, and the top matches are ranked by TF-IDF.
//
// The package exposes a sequential implementation of every operation plus a
// parallel execution path for the three operations expensive enough to
// benefit from it: scoring, matching and removal. The parallel scorer
// accumulates relevance in ConcurrentMap, a sharded, mutex-striped map; the
// sequential paths use plain maps.
package search

// Document identifiers are plain, non-negative ints. IDs are never reused
// by the store itself: once removed, an ID simply leaves the id set and may
// be re-added by a caller like any other unseen ID.
type DocumentID = int

const (
	// MaxResultDocumentCount bounds FindTopDocuments output.
	MaxResultDocumentCount = 5

	// RelevanceEpsilon is the absolute tolerance used when comparing two
	// relevance scores for ranking purposes.
	RelevanceEpsilon = 1e-6

	// MinInDay bounds the RequestQueue sliding window.
	MinInDay = 1440

	// DefaultShardCount is ConcurrentMap's shard count when callers don't
	// override it. Large enough that contention between plus-word workers
	// writing to distinct shards is rare, small enough that BuildOrdinaryMap
	// doesn't pay for thousands of empty shard locks.
	DefaultShardCount = 157
)
