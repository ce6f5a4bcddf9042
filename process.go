package search

import "golang.org/x/sync/errgroup"

// ProcessQueries runs FindTopDocuments for each query against server in
// parallel, preserving input order in the returned slice (spec.md §6), a
// direct port of ProcessQueries in process_queries.cpp (there built on
// std::transform(std::execution::par, ...); here, one goroutine per query
// writing to its own pre-sized output slot).
func ProcessQueries(server *Server, queries []string) ([][]Document, error) {
	results := make([][]Document, len(queries))
	var g errgroup.Group
	for i, query := range queries {
		i, query := i, query
		g.Go(func() error {
			docs, err := server.FindTopDocuments(query, byStatus(Actual))
			if err != nil {
				return err
			}
			results[i] = docs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ProcessQueriesJoined runs ProcessQueries and concatenates the resulting
// per-query document lists in order, mirroring ProcessQueriesJoined in
// process_queries.cpp.
func ProcessQueriesJoined(server *Server, queries []string) ([]Document, error) {
	perQuery, err := ProcessQueries(server, queries)
	if err != nil {
		return nil, err
	}
	var joined []Document
	for _, docs := range perQuery {
		joined = append(joined, docs...)
	}
	return joined, nil
}
