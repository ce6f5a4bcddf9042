package search

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Server is the search engine's process-wide state: it owns the document
// store/inverted index and exposes the public operations in spec.md §6.
// All mutating operations (AddDocument, RemoveDocument*, RemoveDuplicates)
// must be serialized by the caller; read operations may run concurrently
// with each other but not with a writer (spec.md §5).
type Server struct {
	store      *store
	shardCount int
	log        zerolog.Logger
	numAdded   uint64
}

// Option configures a Server at construction time, generalizing the
// teacher's EngineInitOptions (searchengine.go) down to the options this
// spec actually exposes.
type Option func(*Server)

// WithShardCount overrides ConcurrentMap's default shard count
// (DefaultShardCount) for the parallel scorer used by
// FindTopDocumentsParallel.
func WithShardCount(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.shardCount = n
		}
	}
}

// WithLogger attaches a logger for lifecycle and duplicate-removal events.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) { s.log = logger }
}

// NewServer constructs a Server from a slice of stop-word tokens. It
// rejects any stop-word containing a control byte with ErrInvalidText,
// mirroring SearchServer's templated constructor in search_server.h.
func NewServer(stopWords []string, opts ...Option) (*Server, error) {
	set := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		if w == "" {
			continue
		}
		if hasControlByte(w) {
			return nil, fmt.Errorf("%w: stop word %q", ErrInvalidText, w)
		}
		set[w] = struct{}{}
	}

	s := &Server{
		store:      newStore(set),
		shardCount: DefaultShardCount,
		log:        newNopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log.Debug().Int("stop_words", len(set)).Msg("search server initialized")
	return s, nil
}

// NewServerFromString constructs a Server from a single space-separated
// string of stop-words, mirroring SearchServer(const std::string&) in
// search_server.h.
func NewServerFromString(stopWordsText string, opts ...Option) (*Server, error) {
	return NewServer(splitIntoWords(stopWordsText), opts...)
}

// AddDocument indexes a new document. See spec.md §3 for the rejection
// rules (negative id, duplicate id, control bytes in text).
func (s *Server) AddDocument(id DocumentID, text string, status Status, ratings []int) error {
	if err := s.store.add(id, text, status, ratings); err != nil {
		return err
	}
	s.numAdded++
	s.log.Debug().Int("document_id", id).Msg("document added")
	return nil
}

// FindTopDocuments runs the sequential scorer and ranker and returns up to
// MaxResultDocumentCount documents (spec.md §4.F/§4.G).
func (s *Server) FindTopDocuments(query string, filter Predicate) ([]Document, error) {
	q, err := parseQuery(query, s.store.stopWords)
	if err != nil {
		return nil, err
	}
	docs := s.store.findAllDocuments(q, filter)
	return rankAndTruncate(docs), nil
}

// FindTopDocumentsStatus is sugar for FindTopDocuments with a
// status-equality predicate (spec.md §6). FindTopDocumentsDefault is the
// variant that uses Actual.
func (s *Server) FindTopDocumentsStatus(query string, status Status) ([]Document, error) {
	return s.FindTopDocuments(query, byStatus(status))
}

// FindTopDocumentsDefault runs FindTopDocuments against the default status
// filter, ACTUAL (spec.md §6).
func (s *Server) FindTopDocumentsDefault(query string) ([]Document, error) {
	return s.FindTopDocumentsStatus(query, Actual)
}

// FindTopDocumentsParallel is the parallel execution-policy variant of
// FindTopDocuments (spec.md §4.F/§4.G, §5 — sequential and parallel
// variants must produce equal results as multisets up to floating point
// summation order).
func (s *Server) FindTopDocumentsParallel(query string, filter Predicate) ([]Document, error) {
	q, err := parseQuery(query, s.store.stopWords)
	if err != nil {
		return nil, err
	}
	docs := s.store.findAllDocumentsParallel(q, filter, s.shardCount)
	return rankAndTruncateParallel(docs), nil
}

// MatchDocument returns the sorted plus-words of query present in document
// id, or empty if any minus-word is present, along with the document's
// status (spec.md §4.H).
func (s *Server) MatchDocument(query string, id DocumentID) ([]string, Status, error) {
	q, err := parseQuery(query, s.store.stopWords)
	if err != nil {
		return nil, 0, err
	}
	return s.store.matchDocument(q, id), s.store.metas[id].status, nil
}

// MatchDocumentParallel is the parallel execution-policy variant of
// MatchDocument. Unlike the sequential variant it validates id up front:
// ErrInvalidID for a negative id, ErrNonexistentID for an id not currently
// indexed (spec.md §4.H, §7).
func (s *Server) MatchDocumentParallel(query string, id DocumentID) ([]string, Status, error) {
	if id < 0 {
		return nil, 0, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	if _, ok := s.store.ids[id]; !ok {
		return nil, 0, fmt.Errorf("%w: %d", ErrNonexistentID, id)
	}
	q, err := parseQueryRaw(query, s.store.stopWords)
	if err != nil {
		return nil, 0, err
	}
	return s.store.matchDocumentParallel(q, id), s.store.metas[id].status, nil
}

// GetWordFrequencies returns id's term->tf map, or an empty map if id is
// absent (spec.md §4.D/§6).
func (s *Server) GetWordFrequencies(id DocumentID) map[string]float64 {
	return s.store.wordFrequencies(id)
}

// GetDocumentCount returns the number of currently indexed documents
// (spec.md §6).
func (s *Server) GetDocumentCount() int {
	return s.store.count()
}

// NumDocumentsIndexed returns the lifetime count of successful AddDocument
// calls, mirroring Engine.NumDocumentsIndexed in searchengine.go. Unlike
// GetDocumentCount it never decreases when a document is removed.
func (s *Server) NumDocumentsIndexed() uint64 {
	return s.numAdded
}

// GetDocumentID returns the id at position order in insertion order, for
// parity with the legacy accessor in spec.md §7.
func (s *Server) GetDocumentID(order int) (DocumentID, error) {
	if order < 0 || order >= len(s.store.order) {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, order)
	}
	return s.store.order[order], nil
}

// IterDocumentIDs returns the ordered set of currently indexed ids
// (spec.md §6), used by RemoveDuplicates.
func (s *Server) IterDocumentIDs() []DocumentID {
	out := make([]DocumentID, len(s.store.order))
	copy(out, s.store.order)
	return out
}

// RemoveDocument deletes id from every index. A no-op if id is not present
// (spec.md §4.I/§7).
func (s *Server) RemoveDocument(id DocumentID) {
	s.store.remove(id)
}

// RemoveDocumentParallel is the parallel execution-policy variant of
// RemoveDocument: the per-term postings erasures run concurrently across
// distinct terms (spec.md §4.I).
func (s *Server) RemoveDocumentParallel(id DocumentID) {
	s.store.removeParallel(id, s.parallelForEachTerm)
}

func (s *Server) parallelForEachTerm(terms []string, do func(term string)) {
	var g errgroup.Group
	for _, term := range terms {
		term := term
		g.Go(func() error {
			do(term)
			return nil
		})
	}
	g.Wait() //nolint:errcheck // Go funcs never return an error
}

// RemoveDuplicates groups every indexed document by its unique word set,
// keeps the smallest id per group, and removes the rest, logging
// "Found duplicate document id <id>" once per removed id (spec.md §4.J/§6).
func (s *Server) RemoveDuplicates() {
	for _, id := range s.store.findDuplicateGroups() {
		s.log.Info().Msg(fmt.Sprintf("Found duplicate document id %d", id))
		s.store.remove(id)
	}
}

// Paginate wraps docs into fixed-size page views (spec.md §4.L/§6).
func (s *Server) Paginate(docs []Document, pageSize int) []Page {
	return Paginate(docs, pageSize)
}
