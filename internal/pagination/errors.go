package pagination

import "fmt"

// Cursor kinds used in decode failure messages.
const (
	KindTableList   = "table list"
	KindQueryResult = "query result"
)

// DecodeError reports a cursor token that could not be decoded: malformed
// base64, malformed JSON, or a missing or mistyped field. The client must
// drop the cursor and restart pagination from the first page.
type DecodeError struct {
	Kind string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid %s cursor: %v", e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ScopeMismatchError reports a well-formed table-list cursor bound to a
// different database than the one in the current request. Treated as a
// client protocol violation, not retried.
type ScopeMismatchError struct {
	CursorDatabase  string
	RequestDatabase string
}

func (e *ScopeMismatchError) Error() string {
	return fmt.Sprintf("cursor database mismatch: %q != %q", e.CursorDatabase, e.RequestDatabase)
}

// QueryMismatchError reports a well-formed query cursor whose hash does not
// match the query text in the current request.
type QueryMismatchError struct{}

func (e *QueryMismatchError) Error() string {
	return "query has changed since cursor was generated"
}
