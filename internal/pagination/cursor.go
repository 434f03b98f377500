// Package pagination implements the opaque resume cursors handed to clients
// between pages. A cursor carries an offset plus a discriminator binding it
// to the exact request that produced it: the database name for catalog
// listings, a query hash for SELECT results. Cursors are never stored
// server-side; they are decoded, validated, and discarded on every request.
package pagination

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// Decode failure causes shared by both cursor variants.
var (
	errMissingOffset  = errors.New(`missing required field "offset"`)
	errNegativeOffset = errors.New("offset must not be negative")
)

// TableListCursor resumes a table-catalog listing. Database binds the cursor
// to the schema the listing was taken from, so a token minted while listing
// one database cannot silently continue a listing in another.
//
// Field order matters: the wire format is a JSON object with keys in sorted
// order, and encoding/json emits struct fields in declaration order.
type TableListCursor struct {
	Database string `json:"database"`
	Offset   int    `json:"offset"`
}

// Encode serializes the cursor to a URL-safe base64 token with padding
// retained. Pure; always succeeds.
func (c TableListCursor) Encode() string {
	return encodeToken(c)
}

// Validate checks that the cursor was minted for the given database.
// Returns a *ScopeMismatchError otherwise. A cursor that fails validation
// must never be used to compute a result page.
func (c TableListCursor) Validate(database string) error {
	if c.Database != database {
		return &ScopeMismatchError{CursorDatabase: c.Database, RequestDatabase: database}
	}
	return nil
}

// DecodeTableListCursor parses a token produced by TableListCursor.Encode.
// Returns a *DecodeError on malformed base64, malformed JSON, a non-object
// payload, unknown keys, or a missing or invalid offset. A missing database
// decodes to "" and is caught by Validate instead.
func DecodeTableListCursor(token string) (TableListCursor, error) {
	var raw struct {
		Database *string `json:"database"`
		Offset   *int    `json:"offset"`
	}
	if err := decodeToken(token, &raw); err != nil {
		return TableListCursor{}, &DecodeError{Kind: KindTableList, Err: err}
	}
	if raw.Offset == nil {
		return TableListCursor{}, &DecodeError{Kind: KindTableList, Err: errMissingOffset}
	}
	if *raw.Offset < 0 {
		return TableListCursor{}, &DecodeError{Kind: KindTableList, Err: errNegativeOffset}
	}

	c := TableListCursor{Offset: *raw.Offset}
	if raw.Database != nil {
		c.Database = *raw.Database
	}
	return c, nil
}

// QueryResultCursor resumes a paged SELECT. QueryHash is the digest of the
// original query text (without any pagination clause), so the token only
// works against byte-identical resubmissions of the same query.
type QueryResultCursor struct {
	Offset    int    `json:"offset"`
	QueryHash string `json:"query_hash"`
}

// Encode serializes the cursor to a URL-safe base64 token with padding
// retained. Pure; always succeeds.
func (c QueryResultCursor) Encode() string {
	return encodeToken(c)
}

// Validate checks that the cursor was minted for the given query text.
// Returns a *QueryMismatchError when the hash does not match.
func (c QueryResultCursor) Validate(query string) error {
	if c.QueryHash != HashQuery(query) {
		return &QueryMismatchError{}
	}
	return nil
}

// DecodeQueryResultCursor parses a token produced by QueryResultCursor.Encode.
// Failure modes mirror DecodeTableListCursor; a missing query_hash decodes
// to "" and is caught by Validate.
func DecodeQueryResultCursor(token string) (QueryResultCursor, error) {
	var raw struct {
		Offset    *int    `json:"offset"`
		QueryHash *string `json:"query_hash"`
	}
	if err := decodeToken(token, &raw); err != nil {
		return QueryResultCursor{}, &DecodeError{Kind: KindQueryResult, Err: err}
	}
	if raw.Offset == nil {
		return QueryResultCursor{}, &DecodeError{Kind: KindQueryResult, Err: errMissingOffset}
	}
	if *raw.Offset < 0 {
		return QueryResultCursor{}, &DecodeError{Kind: KindQueryResult, Err: errNegativeOffset}
	}

	c := QueryResultCursor{Offset: *raw.Offset}
	if raw.QueryHash != nil {
		c.QueryHash = *raw.QueryHash
	}
	return c, nil
}

// encodeToken serializes v as compact JSON and applies URL-safe base64.
// Cursor fields are plain strings and ints, so Marshal cannot fail.
func encodeToken(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("pagination: marshal cursor: %v", err))
	}
	return base64.URLEncoding.EncodeToString(data)
}

// decodeToken reverses encodeToken into the given raw struct, rejecting
// unknown keys and trailing content so a tampered token never yields a
// partially populated cursor.
func decodeToken(token string, into any) error {
	data, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(into); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("trailing data after cursor object")
	}
	return nil
}
