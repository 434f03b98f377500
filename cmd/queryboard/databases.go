// Databases command lists the attached database schemas.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var databasesCmd = &cobra.Command{
	Use:   "databases",
	Short: "List the attached database schemas",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := openService()
		if err != nil {
			return err
		}
		defer store.Close()

		names, err := store.Databases(cmd.Context())
		if err != nil {
			return fmt.Errorf("list databases: %w", err)
		}

		if flagJSON {
			output, err := json.MarshalIndent(names, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal databases: %w", err)
			}
			fmt.Println(string(output))
			return nil
		}

		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}
