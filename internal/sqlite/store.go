// Package sqlite implements the SQLite execution backend for the queryboard
// query service: it opens the configured database file and serves catalog
// listings and raw SELECT execution over it.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/queryboard/pkg/types"
)

// Compile-time interface checks: Store must implement Executor and Catalog.
var (
	_ types.Executor = (*Store)(nil)
	_ types.Catalog  = (*Store)(nil)
)

// Store wraps a single SQLite database handle. It holds no request state;
// the same Store serves concurrent queries.
type Store struct {
	mu     sync.RWMutex
	opened bool
	config types.Config
	db     *sql.DB
}

// NewStore creates a Store. The store is not opened; call Open with a
// Config to initialize.
func NewStore() *Store {
	return &Store{}
}

// Open validates the config and opens the database file. Returns
// ErrAlreadyOpen if the store is already open.
func (s *Store) Open(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.opened {
		return types.ErrAlreadyOpen
	}
	if err := config.Validate(); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", config.DatabaseFile)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	// sql.Open does not touch the file; ping so a missing or corrupt
	// database surfaces here rather than on the first query.
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("open database: %w", err)
	}

	s.db = db
	s.config = config
	s.opened = true
	return nil
}

// Close releases the database handle. After Close, all operations return
// ErrStoreClosed. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opened {
		return nil // idempotent
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}

	s.opened = false
	return nil
}

// Query executes a single SQL statement and materializes its result rows.
// The statement is executed as given; pagination clauses are the caller's
// responsibility.
func (s *Store) Query(ctx context.Context, query string) (*types.Rows, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.opened {
		return nil, types.ErrStoreClosed
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("execute query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	result := &types.Rows{Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		scan := make([]any, len(columns))
		for i := range values {
			scan[i] = &values[i]
		}
		if err := rows.Scan(scan...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		result.Values = append(result.Values, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	return result, nil
}

// Databases returns the names of the attached database schemas, in the
// order SQLite reports them ("main" first).
func (s *Store) Databases(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.opened {
		return nil, types.ErrStoreClosed
	}
	return s.databasesLocked(ctx)
}

// ListTables returns the table names in the given database schema, sorted
// by name. Returns ErrDatabaseUnknown if no attached schema has that name.
func (s *Store) ListTables(ctx context.Context, database string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.opened {
		return nil, types.ErrStoreClosed
	}

	schemas, err := s.databasesLocked(ctx)
	if err != nil {
		return nil, err
	}
	known := false
	for _, name := range schemas {
		if name == database {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("%w: %s", types.ErrDatabaseUnknown, database)
	}

	// The schema name was checked against database_list above, so quoting
	// it is safe.
	query := fmt.Sprintf("SELECT name FROM %q.sqlite_master WHERE type = 'table' ORDER BY name", database)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}

	return names, nil
}

// databasesLocked queries PRAGMA database_list. The caller must hold s.mu.
func (s *Store) databasesLocked(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "PRAGMA database_list")
	if err != nil {
		return nil, fmt.Errorf("list databases: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var seq int
		var name string
		var file sql.NullString
		if err := rows.Scan(&seq, &name, &file); err != nil {
			return nil, fmt.Errorf("scan database row: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list databases: %w", err)
	}

	return names, nil
}
