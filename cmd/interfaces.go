package cmd

import (
	"fmt"

	"github.com/endorses/bsdmon/internal/pkg/logger"
	"github.com/endorses/bsdmon/internal/pkg/sysmetrics"
	"github.com/spf13/cobra"
)

var interfacesCmd = &cobra.Command{
	Use:   "interfaces",
	Short: "List non-loopback IPv4 network interfaces",
	Long: `List the network interfaces the snapshot report includes: every
non-loopback interface with at least one IPv4 address, with its
address and netmask.`,
	RunE: runInterfaces,
}

func runInterfaces(cmd *cobra.Command, args []string) error {
	records, err := sysmetrics.Interfaces()
	if err != nil {
		logger.Error("Error accessing network interfaces", "error", err)
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Network interfaces:")
	if len(records) == 0 {
		fmt.Fprintln(out, "  No non-loopback IPv4 interfaces found.")
		return nil
	}
	for _, rec := range records {
		fmt.Fprintf(out, "  %s: %s (mask: %s)\n", rec.Name, rec.Addr, rec.Netmask)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(interfacesCmd)
}
