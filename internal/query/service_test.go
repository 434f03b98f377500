package query

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/queryboard/internal/pagination"
	"github.com/mesh-intelligence/queryboard/pkg/types"
)

// fakeSource records the statements it is handed and serves canned data.
type fakeSource struct {
	tables     map[string][]string
	rows       *types.Rows
	lastQuery  string
	queryCalls int
	listCalls  int
}

func (f *fakeSource) Query(ctx context.Context, query string) (*types.Rows, error) {
	f.lastQuery = query
	f.queryCalls++
	return f.rows, nil
}

func (f *fakeSource) Databases(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(f.tables))
	for name := range f.tables {
		names = append(names, name)
	}
	return names, nil
}

func (f *fakeSource) ListTables(ctx context.Context, database string) ([]string, error) {
	f.listCalls++
	names, ok := f.tables[database]
	if !ok {
		return nil, types.ErrDatabaseUnknown
	}
	return names, nil
}

func newTestService(source *fakeSource) *Service {
	return NewService(source, nil, types.Config{DatabaseFile: "unused.db"})
}

func TestListTablesFirstPage(t *testing.T) {
	source := &fakeSource{tables: map[string][]string{
		"main": {"a", "b", "c", "d", "e"},
	}}
	svc := newTestService(source)

	page, err := svc.ListTables(context.Background(), ListTablesRequest{Database: "main", Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, page.Tables)
	require.NotEmpty(t, page.NextCursor)

	cursor, err := pagination.DecodeTableListCursor(page.NextCursor)
	require.NoError(t, err)
	assert.Equal(t, 2, cursor.Offset)
	assert.Equal(t, "main", cursor.Database)
}

func TestListTablesWalksToEnd(t *testing.T) {
	source := &fakeSource{tables: map[string][]string{
		"main": {"a", "b", "c", "d", "e"},
	}}
	svc := newTestService(source)
	ctx := context.Background()

	var all []string
	cursor := ""
	for pages := 0; ; pages++ {
		require.Less(t, pages, 10, "pagination did not terminate")
		page, err := svc.ListTables(ctx, ListTablesRequest{Database: "main", Limit: 2, Cursor: cursor})
		require.NoError(t, err)
		all = append(all, page.Tables...)
		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, all)
}

func TestListTablesExactMultipleHasNoTrailingCursor(t *testing.T) {
	source := &fakeSource{tables: map[string][]string{
		"main": {"a", "b", "c", "d"},
	}}
	svc := newTestService(source)

	page, err := svc.ListTables(context.Background(), ListTablesRequest{Database: "main", Limit: 2, Cursor: ""})
	require.NoError(t, err)
	require.NotEmpty(t, page.NextCursor)

	page, err = svc.ListTables(context.Background(), ListTablesRequest{Database: "main", Limit: 2, Cursor: page.NextCursor})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, page.Tables)
	assert.Empty(t, page.NextCursor)
}

func TestListTablesRejectsForeignCursor(t *testing.T) {
	source := &fakeSource{tables: map[string][]string{
		"test": {"a", "b", "c"},
		"prod": {"x", "y", "z"},
	}}
	svc := newTestService(source)
	ctx := context.Background()

	page, err := svc.ListTables(ctx, ListTablesRequest{Database: "test", Limit: 2})
	require.NoError(t, err)
	require.NotEmpty(t, page.NextCursor)

	listCallsBefore := source.listCalls
	_, err = svc.ListTables(ctx, ListTablesRequest{Database: "prod", Limit: 2, Cursor: page.NextCursor})
	require.Error(t, err)
	var mismatch *pagination.ScopeMismatchError
	assert.ErrorAs(t, err, &mismatch)
	// A rejected cursor must never reach the data source.
	assert.Equal(t, listCallsBefore, source.listCalls)
}

func TestListTablesRejectsMalformedCursor(t *testing.T) {
	source := &fakeSource{tables: map[string][]string{"main": {"a"}}}
	svc := newTestService(source)

	_, err := svc.ListTables(context.Background(), ListTablesRequest{Database: "main", Cursor: "garbage!!!"})
	require.Error(t, err)
	var decodeErr *pagination.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
	assert.Zero(t, source.listCalls)
}

func TestRunFirstPage(t *testing.T) {
	// limit 2, so the service fetches 3 and trims one.
	source := &fakeSource{rows: &types.Rows{
		Columns: []string{"id"},
		Values:  [][]any{{int64(1)}, {int64(2)}, {int64(3)}},
	}}
	svc := newTestService(source)

	page, err := svc.Run(context.Background(), RunRequest{Query: "SELECT id FROM users", Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, "SELECT id FROM users LIMIT 3 OFFSET 0", source.lastQuery)
	assert.Equal(t, [][]any{{int64(1)}, {int64(2)}}, page.Rows)
	require.NotEmpty(t, page.NextCursor)

	cursor, err := pagination.DecodeQueryResultCursor(page.NextCursor)
	require.NoError(t, err)
	assert.Equal(t, 2, cursor.Offset)
	assert.Equal(t, pagination.HashQuery("SELECT id FROM users"), cursor.QueryHash)
}

func TestRunLastPage(t *testing.T) {
	source := &fakeSource{rows: &types.Rows{
		Columns: []string{"id"},
		Values:  [][]any{{int64(1)}},
	}}
	svc := newTestService(source)

	page, err := svc.Run(context.Background(), RunRequest{Query: "SELECT id FROM users", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Rows, 1)
	assert.Empty(t, page.NextCursor)
}

func TestRunResumesAtCursorOffset(t *testing.T) {
	source := &fakeSource{rows: &types.Rows{Columns: []string{"id"}}}
	svc := newTestService(source)

	q := "SELECT id FROM users"
	cursor := pagination.QueryResultCursor{Offset: 40, QueryHash: pagination.HashQuery(q)}

	_, err := svc.Run(context.Background(), RunRequest{Query: q, Limit: 20, Cursor: cursor.Encode()})
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM users LIMIT 21 OFFSET 40", source.lastQuery)
}

func TestRunRejectsCursorForDifferentQuery(t *testing.T) {
	source := &fakeSource{rows: &types.Rows{Columns: []string{"id"}}}
	svc := newTestService(source)

	cursor := pagination.QueryResultCursor{Offset: 10, QueryHash: pagination.HashQuery("SELECT * FROM users")}

	_, err := svc.Run(context.Background(), RunRequest{
		Query:  "SELECT * FROM accounts",
		Limit:  5,
		Cursor: cursor.Encode(),
	})
	require.Error(t, err)
	var mismatch *pagination.QueryMismatchError
	assert.ErrorAs(t, err, &mismatch)
	assert.Zero(t, source.queryCalls)
}

func TestRunWrapsSelfPaginatedQuery(t *testing.T) {
	source := &fakeSource{rows: &types.Rows{Columns: []string{"id"}}}
	svc := newTestService(source)

	_, err := svc.Run(context.Background(), RunRequest{Query: "SELECT id FROM users LIMIT 100", Limit: 10})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(source.lastQuery, "SELECT * FROM (SELECT id FROM users LIMIT 100) AS paginated_subquery"))
}

func TestRunRejectsUntokenizableQuery(t *testing.T) {
	source := &fakeSource{rows: &types.Rows{Columns: []string{"id"}}}
	svc := newTestService(source)

	_, err := svc.Run(context.Background(), RunRequest{Query: "SELECT 'broken FROM users", Limit: 5})
	require.Error(t, err)
	assert.Zero(t, source.queryCalls)
}

func TestLimitNormalization(t *testing.T) {
	source := &fakeSource{rows: &types.Rows{Columns: []string{"id"}}}
	svc := NewService(source, nil, types.Config{DatabaseFile: "unused.db", DefaultLimit: 10, MaxLimit: 50})
	ctx := context.Background()

	_, err := svc.Run(ctx, RunRequest{Query: "SELECT id FROM t"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM t LIMIT 11 OFFSET 0", source.lastQuery)

	_, err = svc.Run(ctx, RunRequest{Query: "SELECT id FROM t", Limit: 900})
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM t LIMIT 51 OFFSET 0", source.lastQuery)
}
