package cmd

import (
	"github.com/mkovalev/ipnetwork"
	"github.com/spf13/cobra"
)

func newHostsCommand() *cobra.Command {
	var max int

	cmd := &cobra.Command{
		Use:   "hosts <cidr>",
		Short: "Enumerates the host addresses strictly inside a network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			network, err := ipnetwork.ParseIPNetwork(args[0])
			if err != nil {
				return err
			}

			iter := network.Hosts()
			for printed := 0; max <= 0 || printed < max; printed++ {
				addr, ok := iter.Next()
				if !ok {
					return nil
				}
				cmd.Println(addr)
			}
			cmd.Println("...")
			return nil
		},
	}

	cmd.Flags().IntVar(&max, "max", 256, "Maximum number of addresses to print, 0 for no limit")

	return cmd
}
