package search

import "errors"

// Sentinel errors for the user-input failure modes in the spec. All of them
// are unrecoverable: the server's state is left unchanged and the caller is
// expected to give up on the request, not retry it verbatim.
var (
	// ErrInvalidText is returned when document text, stop-word text or
	// query text contains an ASCII control byte in [0x00, 0x1F].
	ErrInvalidText = errors.New("search: text contains a control byte")

	// ErrInvalidID is returned for a negative document id.
	ErrInvalidID = errors.New("search: document id is negative")

	// ErrDuplicateID is returned when AddDocument is called with an id
	// already present in the store.
	ErrDuplicateID = errors.New("search: document id already exists")

	// ErrNonexistentID is returned by the parallel MatchDocument when the
	// requested id is not currently indexed.
	ErrNonexistentID = errors.New("search: document id does not exist")

	// ErrInvalidQuery is returned for a lone "-" token or a "--"-prefixed
	// token in a query.
	ErrInvalidQuery = errors.New("search: malformed minus-word in query")

	// ErrOutOfRange is returned by GetDocumentID for an order outside
	// [0, GetDocumentCount()).
	ErrOutOfRange = errors.New("search: order out of range")
)
