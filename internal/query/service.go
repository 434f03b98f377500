// Package query orchestrates paged access to the store. For each endpoint
// it decodes the incoming cursor (if any), validates it against the request
// before the offset is used for anything, fetches one row beyond the page
// size, and mints the cursor for the next page when that extra row came
// back.
package query

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/queryboard/internal/pagination"
	"github.com/mesh-intelligence/queryboard/internal/rewrite"
	"github.com/mesh-intelligence/queryboard/pkg/types"
)

// Source is the data access the service needs. Implemented by sqlite.Store.
type Source interface {
	types.Executor
	types.Catalog
}

// Service serves paged catalog listings and paged SELECT results. It is
// stateless between requests; everything needed to resume lives in the
// cursor handed to the client.
type Service struct {
	source       Source
	logger       *zap.Logger
	defaultLimit int
	maxLimit     int
}

// NewService creates a Service over the given source. A nil logger is
// replaced with a no-op logger.
func NewService(source Source, logger *zap.Logger, config types.Config) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		source:       source,
		logger:       logger,
		defaultLimit: config.EffectiveDefaultLimit(),
		maxLimit:     config.EffectiveMaxLimit(),
	}
}

// ListTablesRequest asks for one page of the table catalog of Database.
// Cursor is the opaque token from a previous TablesPage, empty for the
// first page.
type ListTablesRequest struct {
	Database string
	Limit    int
	Cursor   string
}

// TablesPage is one page of a table-catalog listing. NextCursor is empty
// when no tables remain.
type TablesPage struct {
	Database   string   `json:"database"`
	Tables     []string `json:"tables"`
	NextCursor string   `json:"next_cursor,omitempty"`
}

// ListTables serves one page of the catalog listing. A cursor minted for a
// different database is rejected before any data is touched.
func (s *Service) ListTables(ctx context.Context, req ListTablesRequest) (*TablesPage, error) {
	limit := pagination.Clamp(req.Limit, s.defaultLimit, s.maxLimit)

	offset := 0
	if req.Cursor != "" {
		cursor, err := pagination.DecodeTableListCursor(req.Cursor)
		if err != nil {
			return nil, err
		}
		if err := cursor.Validate(req.Database); err != nil {
			return nil, err
		}
		offset = cursor.Offset
	}

	names, err := s.source.ListTables(ctx, req.Database)
	if err != nil {
		return nil, err
	}

	tables, more := pagination.Trim(pagination.Window(names, offset, limit), limit)

	page := &TablesPage{Database: req.Database, Tables: tables}
	if more {
		next := pagination.TableListCursor{Database: req.Database, Offset: offset + limit}
		page.NextCursor = next.Encode()
	}

	s.logger.Debug("served table listing page",
		zap.String("request_id", requestID()),
		zap.String("database", req.Database),
		zap.Int("offset", offset),
		zap.Int("count", len(tables)),
		zap.Bool("more", more))

	return page, nil
}

// RunRequest asks for one page of the result of Query. Cursor is the token
// from a previous RowsPage, empty for the first page.
type RunRequest struct {
	Query  string
	Limit  int
	Cursor string
}

// RowsPage is one page of SELECT results. NextCursor is empty when no rows
// remain.
type RowsPage struct {
	Columns    []string `json:"columns"`
	Rows       [][]any  `json:"rows"`
	NextCursor string   `json:"next_cursor,omitempty"`
}

// Run serves one page of the query's result set. The cursor must have been
// minted for the same query text (outer whitespace aside); the pagination
// clause is injected by the rewriter, never by the client.
func (s *Service) Run(ctx context.Context, req RunRequest) (*RowsPage, error) {
	limit := pagination.Clamp(req.Limit, s.defaultLimit, s.maxLimit)

	offset := 0
	if req.Cursor != "" {
		cursor, err := pagination.DecodeQueryResultCursor(req.Cursor)
		if err != nil {
			return nil, err
		}
		if err := cursor.Validate(req.Query); err != nil {
			return nil, err
		}
		offset = cursor.Offset
	}

	paged, err := rewrite.Rewrite(req.Query, limit+1, offset)
	if err != nil {
		return nil, err
	}

	rows, err := s.source.Query(ctx, paged)
	if err != nil {
		return nil, err
	}

	values, more := pagination.Trim(rows.Values, limit)

	page := &RowsPage{Columns: rows.Columns, Rows: values}
	if more {
		next := pagination.QueryResultCursor{
			Offset:    offset + limit,
			QueryHash: pagination.HashQuery(req.Query),
		}
		page.NextCursor = next.Encode()
	}

	s.logger.Debug("served query page",
		zap.String("request_id", requestID()),
		zap.String("query_hash", pagination.HashQuery(req.Query)),
		zap.Int("offset", offset),
		zap.Int("rows", len(values)),
		zap.Bool("more", more))

	return page, nil
}

// requestID generates a UUID v7 correlation ID for log entries.
func requestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
