package cmd

import (
	"github.com/mkovalev/ipnetwork"
	"github.com/spf13/cobra"
)

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <cidr>...",
		Short: "Prints the derived quantities of one or more networks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				network, err := ipnetwork.ParseIPNetwork(arg)
				if err != nil {
					return err
				}

				cmd.Printf("%s\n", network)
				cmd.Printf("  first      %s\n", network.First())
				cmd.Printf("  last       %s\n", network.Last())
				cmd.Printf("  netmask    %s\n", network.Netmask())
				cmd.Printf("  hostcount  %s\n", network.HostCount())
			}
			return nil
		},
	}
}
