package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Displays the current version of ipnetctl",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println("ipnetctl version v0.1.0")
		},
	}
}
