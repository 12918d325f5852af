package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/estatefox/estatefox/internal/pkg/maintenance/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "estatefox",
		Short: "EstateFox data-integrity maintenance tool",
		Long:  "Operator-invoked maintenance sweeps for the EstateFox store: account seeding, entitlement resets, subscription purges, apartment deduplication and document URL normalization.",
	}

	rootCmd.AddCommand(
		commands.SeedCmd(),
		commands.ResetEntitlementsCmd(),
		commands.PurgeSubscriptionsCmd(),
		commands.PurgePendingCmd(),
		commands.DedupeApartmentsCmd(),
		commands.FixDocumentURLsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
