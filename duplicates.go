package search

import "sort"

// findDuplicateGroups groups every indexed document by its unique word set
// and returns, for each group with more than one member, every id except
// the smallest — the set the caller should remove (spec.md §4.J). A direct
// port of RemoveDuplicates in remove_duplicates.cpp, which keeps the
// smallest id per group and removes the rest (see spec.md §9 on the legacy
// off-by-one that removed the survivor too).
func (s *store) findDuplicateGroups() []DocumentID {
	type group struct {
		ids []DocumentID
	}
	groups := make(map[string]*group)

	for _, id := range s.order {
		key := wordSetKey(s.wordFrequencies(id))
		g, ok := groups[key]
		if !ok {
			g = &group{}
			groups[key] = g
		}
		g.ids = append(g.ids, id)
	}

	var toRemove []DocumentID
	for _, g := range groups {
		if len(g.ids) <= 1 {
			continue
		}
		sort.Ints(g.ids)
		toRemove = append(toRemove, g.ids[1:]...)
	}
	sort.Ints(toRemove)
	return toRemove
}

// wordSetKey canonicalizes a term->tf map into a comparable key over its
// term set alone (frequencies are irrelevant to duplicate detection).
func wordSetKey(tf map[string]float64) string {
	terms := make([]string, 0, len(tf))
	for term := range tf {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	key := make([]byte, 0, 64)
	for i, t := range terms {
		if i > 0 {
			key = append(key, 0)
		}
		key = append(key, t...)
	}
	return string(key)
}
