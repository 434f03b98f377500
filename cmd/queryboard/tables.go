// Tables command lists the table catalog of a database schema.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/queryboard/internal/query"
)

var (
	tablesDatabase string
	tablesLimit    int
	tablesCursor   string
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List tables in a database schema, one page at a time",
	Long: `Tables lists the table names of the given database schema ("main" unless
another schema is attached). When more names remain, a cursor for the next
page is printed; pass it back with --cursor to continue. The cursor is bound
to the database it was minted for.

Example:
  queryboard tables
  queryboard tables --database main --limit 20 --cursor eyJkYXRhYmFzZSI6Im1haW4iLCJvZmZzZXQiOjIwfQ==`,
	Args: cobra.NoArgs,
	RunE: runTables,
}

func init() {
	tablesCmd.Flags().StringVar(&tablesDatabase, "database", "main", "database schema to list")
	tablesCmd.Flags().IntVar(&tablesLimit, "limit", 0, "table names per page (default from config)")
	tablesCmd.Flags().StringVar(&tablesCursor, "cursor", "", "resume cursor from a previous page")
}

func runTables(cmd *cobra.Command, args []string) error {
	svc, store, err := openService()
	if err != nil {
		return err
	}
	defer store.Close()

	page, err := svc.ListTables(cmd.Context(), query.ListTablesRequest{
		Database: tablesDatabase,
		Limit:    tablesLimit,
		Cursor:   tablesCursor,
	})
	if err != nil {
		return fmt.Errorf("list tables: %w", err)
	}

	if flagJSON {
		output, err := json.MarshalIndent(page, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal page: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	for _, name := range page.Tables {
		fmt.Println(name)
	}
	if page.NextCursor != "" {
		fmt.Printf("\nnext cursor: %s\n", page.NextCursor)
	}
	return nil
}
