package search

import (
	"fmt"
	"sort"
)

// Query is a parsed search request: a set of terms a matching document must
// contain (PlusWords) and a set it must not contain (MinusWords).
type Query struct {
	PlusWords  []string
	MinusWords []string
}

// parseQuery tokenizes raw, drops stop-words, and splits the remaining
// tokens into plus- and minus-words, deduplicating and sorting both (spec.md
// §4.C). It mirrors SearchServer::ParseQuery's sequential branch in
// search_server.cpp.
func parseQuery(raw string, stopWords map[string]struct{}) (Query, error) {
	if hasControlByte(raw) {
		return Query{}, fmt.Errorf("%w: query", ErrInvalidText)
	}

	plus, minus, err := splitQueryWords(raw, stopWords)
	if err != nil {
		return Query{}, err
	}

	return Query{
		PlusWords:  dedupSorted(plus),
		MinusWords: dedupSorted(minus),
	}, nil
}

// parseQueryRaw is the parallel-friendly variant: it skips deduplication,
// returning plus-words with their original multiplicity, matching the
// spec's note that "the parallel matcher intentionally keeps raw
// multiplicity on plus-words until an explicit dedup step" (spec.md §4.C).
func parseQueryRaw(raw string, stopWords map[string]struct{}) (Query, error) {
	if hasControlByte(raw) {
		return Query{}, fmt.Errorf("%w: query", ErrInvalidText)
	}
	plus, minus, err := splitQueryWords(raw, stopWords)
	if err != nil {
		return Query{}, err
	}
	return Query{PlusWords: plus, MinusWords: minus}, nil
}

func splitQueryWords(raw string, stopWords map[string]struct{}) (plus, minus []string, err error) {
	for _, w := range splitIntoWords(raw) {
		if len(w) > 0 && w[0] == '-' {
			base := w[1:]
			if base == "" || base[0] == '-' {
				return nil, nil, fmt.Errorf("%w: %q", ErrInvalidQuery, w)
			}
			// A minus-prefixed token whose base form is a stop-word is NOT
			// dropped here — only bare stop-words are (spec.md §4.C).
			minus = append(minus, base)
			continue
		}
		if _, isStop := stopWords[w]; isStop {
			continue
		}
		plus = append(plus, w)
	}
	return plus, minus, nil
}

func dedupSorted(words []string) []string {
	if len(words) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := set[w]; ok {
			continue
		}
		set[w] = struct{}{}
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
