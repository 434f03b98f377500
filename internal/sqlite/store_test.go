package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/queryboard/pkg/types"
)

// setupStore opens a Store over a fresh database file seeded with a few
// tables and rows.
func setupStore(t *testing.T) *Store {
	t.Helper()

	s := NewStore()
	config := types.Config{
		DatabaseFile: filepath.Join(t.TempDir(), "queryboard.db"),
	}
	require.NoError(t, s.Open(config))
	t.Cleanup(func() { s.Close() })

	ctx := context.Background()
	seed := []string{
		"CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT)",
		"CREATE TABLE orders (id INTEGER PRIMARY KEY, user_id INTEGER)",
		"CREATE TABLE audit_log (id INTEGER PRIMARY KEY, entry TEXT)",
		"INSERT INTO users (name) VALUES ('ada'), ('grace'), ('edsger')",
	}
	for _, stmt := range seed {
		_, err := s.Query(ctx, stmt)
		require.NoError(t, err)
	}
	return s
}

func TestOpenLifecycle(t *testing.T) {
	s := NewStore()
	config := types.Config{DatabaseFile: filepath.Join(t.TempDir(), "q.db")}

	require.NoError(t, s.Open(config))
	assert.ErrorIs(t, s.Open(config), types.ErrAlreadyOpen)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close()) // idempotent

	_, err := s.Query(context.Background(), "SELECT 1")
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	_, err = s.ListTables(context.Background(), "main")
	assert.ErrorIs(t, err, types.ErrStoreClosed)
}

func TestOpenRejectsInvalidConfig(t *testing.T) {
	s := NewStore()
	err := s.Open(types.Config{})
	assert.ErrorIs(t, err, types.ErrDatabaseFileEmpty)
}

func TestQueryReturnsColumnsAndRows(t *testing.T) {
	s := setupStore(t)

	rows, err := s.Query(context.Background(), "SELECT id, name FROM users ORDER BY id")
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name"}, rows.Columns)
	require.Len(t, rows.Values, 3)
	assert.Equal(t, "ada", rows.Values[0][1])
}

func TestQuerySyntaxErrorSurfaces(t *testing.T) {
	s := setupStore(t)

	_, err := s.Query(context.Background(), "SELEC wrong")
	require.Error(t, err)
}

func TestDatabases(t *testing.T) {
	s := setupStore(t)

	names, err := s.Databases(context.Background())
	require.NoError(t, err)
	assert.Contains(t, names, "main")
}

func TestListTables(t *testing.T) {
	s := setupStore(t)

	names, err := s.ListTables(context.Background(), "main")
	require.NoError(t, err)
	assert.Equal(t, []string{"audit_log", "orders", "users"}, names)
}

func TestListTablesUnknownDatabase(t *testing.T) {
	s := setupStore(t)

	_, err := s.ListTables(context.Background(), "warehouse")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrDatabaseUnknown))
}
