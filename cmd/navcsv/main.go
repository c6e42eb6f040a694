package main

import (
	"os"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/navcsv/internal/adapters/cli"
	"github.com/example/navcsv/internal/cli"
	"github.com/example/navcsv/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "navcsv",
		Short:   "navcsv - ATT&CK Navigator layer to tactic CSV converter",
		Version: version.String(),
		Long: `navcsv turns an ATT&CK Navigator layer export into a spreadsheet with one
column per enterprise tactic, using a locally cached copy of the MITRE ATT&CK
technique catalog.`,
		SilenceErrors:     true,
		PersistentPreRunE: cli.Setup,
		PersistentPostRun: cli.Teardown,
	}

	cli.AddPersistentFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(cli.ConvertCmd())
	rootCmd.AddCommand(cli.CatalogCmd())

	if err := rootCmd.Execute(); err != nil {
		cliadapter.Failure(os.Stderr, err)
		os.Exit(1)
	}
}
