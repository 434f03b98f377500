// Version command for the queryboard CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/queryboard/pkg/queryboard"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the queryboard version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("queryboard", queryboard.Version)
	},
}
