// Shared helpers for queryboard CLI commands.
package main

import (
	"fmt"

	"github.com/mesh-intelligence/queryboard/internal/query"
	"github.com/mesh-intelligence/queryboard/internal/sqlite"
	"github.com/mesh-intelligence/queryboard/pkg/types"
)

// openService resolves the database file, opens the store, and builds the
// query service over it. The caller must defer store.Close().
func openService() (*query.Service, *sqlite.Store, error) {
	databaseFile, err := resolveDatabaseFile()
	if err != nil {
		return nil, nil, err
	}

	cfg := types.Config{
		DatabaseFile: databaseFile,
		DefaultLimit: configDefaultLimit,
		MaxLimit:     configMaxLimit,
	}

	store := sqlite.NewStore()
	if err := store.Open(cfg); err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	return query.NewService(store, logger, cfg), store, nil
}
