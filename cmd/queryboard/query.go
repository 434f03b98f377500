// Query command executes a paged SELECT against the configured database.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/queryboard/internal/query"
)

var (
	queryLimit  int
	queryCursor string
)

var queryCmd = &cobra.Command{
	Use:   "query <sql>",
	Short: "Run a SELECT statement and print one page of results",
	Long: `Query runs a SELECT statement against the configured database and prints
one page of results. When more rows remain, a cursor for the next page is
printed; pass it back with --cursor to continue. The cursor is bound to the
exact query text, so it only works with a byte-identical resubmission
(outer whitespace aside).

Example:
  queryboard query "SELECT id, name FROM users ORDER BY id" --limit 50
  queryboard query "SELECT id, name FROM users ORDER BY id" --limit 50 --cursor eyJvZmZzZXQiOjUwLC4uLn0=`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().IntVar(&queryLimit, "limit", 0, "rows per page (default from config)")
	queryCmd.Flags().StringVar(&queryCursor, "cursor", "", "resume cursor from a previous page")
}

func runQuery(cmd *cobra.Command, args []string) error {
	svc, store, err := openService()
	if err != nil {
		return err
	}
	defer store.Close()

	page, err := svc.Run(cmd.Context(), query.RunRequest{
		Query:  args[0],
		Limit:  queryLimit,
		Cursor: queryCursor,
	})
	if err != nil {
		return fmt.Errorf("run query: %w", err)
	}

	if flagJSON {
		output, err := json.MarshalIndent(page, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal page: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	fmt.Println(strings.Join(page.Columns, "\t"))
	for _, row := range page.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = formatValue(v)
		}
		fmt.Println(strings.Join(cells, "\t"))
	}
	if page.NextCursor != "" {
		fmt.Printf("\nnext cursor: %s\n", page.NextCursor)
	}
	return nil
}

// formatValue renders one cell for tabular output.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
