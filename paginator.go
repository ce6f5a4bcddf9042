package search

import "strings"

// Page is a view over a contiguous slice of documents — one page of
// Paginate's output (spec.md §4.L), mirroring paginator.h's Page<Iterator>.
type Page struct {
	docs []Document
}

// Docs returns the documents on this page.
func (p Page) Docs() []Document { return p.docs }

// Len returns the number of documents on this page.
func (p Page) Len() int { return len(p.docs) }

// String concatenates the page's documents' printable forms, mirroring
// paginator.h's operator<<(ostream&, const Page<Iterator>&).
func (p Page) String() string {
	var b strings.Builder
	for _, d := range p.docs {
		b.WriteString(d.String())
	}
	return b.String()
}

// Paginate splits docs into fixed-size pages; the last page may be shorter.
// pageSize must be > 0 — a zero page size is undefined behavior per
// spec.md §4.L, mirroring Paginate/Paginator in paginator.h.
func Paginate(docs []Document, pageSize int) []Page {
	if pageSize <= 0 {
		panic("search: Paginate called with non-positive page size")
	}
	var pages []Page
	for start := 0; start < len(docs); start += pageSize {
		end := start + pageSize
		if end > len(docs) {
			end = len(docs)
		}
		pages = append(pages, Page{docs: docs[start:end]})
	}
	return pages
}
