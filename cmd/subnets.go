package cmd

import (
	"fmt"
	"strconv"

	"github.com/mkovalev/ipnetwork"
	"github.com/spf13/cobra"
)

func newSubnetsCommand() *cobra.Command {
	var max int

	cmd := &cobra.Command{
		Use:   "subnets <cidr> <prefix>",
		Short: "Enumerates the sub-blocks of a network at a given prefix length",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			network, err := ipnetwork.ParseIPNetwork(args[0])
			if err != nil {
				return err
			}

			prefix, err := parsePrefixArg(args[1])
			if err != nil {
				return err
			}

			iter, err := network.Subnets(prefix)
			if err != nil {
				return err
			}

			for printed := 0; max <= 0 || printed < max; printed++ {
				subnet, ok := iter.Next()
				if !ok {
					return nil
				}
				cmd.Println(subnet)
			}
			cmd.Println("...")
			return nil
		},
	}

	cmd.Flags().IntVar(&max, "max", 1024, "Maximum number of subnets to print, 0 for no limit")

	return cmd
}

func parsePrefixArg(arg string) (uint8, error) {
	prefix, err := strconv.ParseUint(arg, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid prefix length %q", arg)
	}
	return uint8(prefix), nil
}
