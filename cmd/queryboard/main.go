// Package main provides the queryboard CLI, a stateless tool serving paged
// results over a SQLite database: a table-catalog listing and free-form
// SELECT execution with tamper-evident resume cursors.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
