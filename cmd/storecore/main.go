package main

import (
	"os"

	"github.com/spf13/cobra"

	"storecore/internal/interfaces/cli/migrate"
	"storecore/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "storecore",
		Short: "storecore - entitlement and ledger core for the storefront",
		Long:  `storecore serves the storefront's entitlement checks, the private ledger webhook, and the operator token tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
