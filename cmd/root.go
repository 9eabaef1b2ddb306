package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// errSilent marks errors already reported to the user.
var errSilent = errors.New("SilentErr")

func Execute() {
	rootCmd := &cobra.Command{
		Use:   "ipnetctl",
		Short: "ipnetctl is a calculator for IPv4 and IPv6 address blocks.",
		Long: `ipnetctl is a command-line calculator for IPv4 and IPv6 address blocks in
    		CIDR notation. It prints derived quantities such as first and last address,
    		netmask and host count, enumerates subnets and host addresses, aggregates
    		block lists and renders configuration-driven reports.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		cmd.Println(err)
		cmd.Println(cmd.UsageString())
		return errSilent
	})
	rootCmd.AddCommand(newInfoCommand())
	rootCmd.AddCommand(newSubnetsCommand())
	rootCmd.AddCommand(newHostsCommand())
	rootCmd.AddCommand(newAggregateCommand())
	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errSilent) {
			_, _ = fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
