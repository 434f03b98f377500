package types

import (
	"context"
	"errors"
)

// Rows holds the result of one executed statement: column names in query
// order and one value slice per row.
type Rows struct {
	Columns []string
	Values  [][]any
}

// Executor runs a single SQL statement and returns its rows. The query
// service depends on this interface only; it never inspects the statement
// it is handed back.
type Executor interface {
	Query(ctx context.Context, query string) (*Rows, error)
}

// Catalog lists schema contents of the opened store.
type Catalog interface {
	Databases(ctx context.Context) ([]string, error)
	ListTables(ctx context.Context, database string) ([]string, error)
}

// Store lifecycle errors.
var (
	ErrStoreClosed     = errors.New("store is closed")
	ErrAlreadyOpen     = errors.New("store is already open")
	ErrDatabaseUnknown = errors.New("unknown database")
)
