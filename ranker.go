package search

import (
	"math"
	"sort"

	"golang.org/x/sync/errgroup"
)

// rankAndTruncate sorts docs by (relevance desc, rating desc) treating
// relevances within RelevanceEpsilon as equal, then truncates to
// MaxResultDocumentCount (spec.md §4.G). This is the comparator used by
// both the sequential and parallel rankers — the parallel variant only
// differs in which sort primitive it calls.
func rankAndTruncate(docs []Document) []Document {
	sort.Slice(docs, func(i, j int) bool { return less(docs[i], docs[j]) })
	return truncate(docs)
}

// rankAndTruncateParallel uses a concurrent sort over the same comparator.
// Go's sort.Slice is not parallel by itself, so the parallel variant splits
// the slice in two, sorts each half on its own goroutine, then merges —
// the same divide-and-conquer shape std::sort(std::execution::par, ...)
// uses internally, scaled down to the two-way split that's worthwhile for
// the small result sets this spec produces (candidate counts are bounded by
// the number of documents touched by the query, not the whole corpus).
func rankAndTruncateParallel(docs []Document) []Document {
	if len(docs) < 2 {
		return truncate(docs)
	}

	mid := len(docs) / 2
	left := append([]Document(nil), docs[:mid]...)
	right := append([]Document(nil), docs[mid:]...)

	var g errgroup.Group
	g.Go(func() error {
		sort.Slice(left, func(i, j int) bool { return less(left[i], left[j]) })
		return nil
	})
	g.Go(func() error {
		sort.Slice(right, func(i, j int) bool { return less(right[i], right[j]) })
		return nil
	})
	g.Wait() //nolint:errcheck // Go funcs never return an error

	merged := mergeSorted(left, right)
	return truncate(merged)
}

func less(a, b Document) bool {
	if math.Abs(a.Relevance-b.Relevance) > RelevanceEpsilon {
		return a.Relevance > b.Relevance
	}
	return a.Rating > b.Rating
}

func truncate(docs []Document) []Document {
	if len(docs) > MaxResultDocumentCount {
		return docs[:MaxResultDocumentCount]
	}
	return docs
}

func mergeSorted(a, b []Document) []Document {
	merged := make([]Document, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if less(a[i], b[j]) {
			merged = append(merged, a[i])
			i++
		} else {
			merged = append(merged, b[j])
			j++
		}
	}
	merged = append(merged, a[i:]...)
	merged = append(merged, b[j:]...)
	return merged
}
