package cmd

import (
	application "github.com/mkovalev/ipnetwork/internal/app"

	"github.com/mkovalev/ipnetwork"
	"github.com/spf13/cobra"
)

func newAggregateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "aggregate <cidr>...",
		Short: "Merges networks into the minimal equivalent prefix list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			networks := make([]ipnetwork.IPNetwork, 0, len(args))
			for _, arg := range args {
				network, err := ipnetwork.ParseIPNetwork(arg)
				if err != nil {
					return err
				}
				networks = append(networks, network)
			}

			prefixes, err := application.Aggregate(networks)
			if err != nil {
				return err
			}

			for _, prefix := range prefixes {
				cmd.Println(prefix)
			}
			return nil
		},
	}
}
