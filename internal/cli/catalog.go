package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/navcsv/internal/wire"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the local ATT&CK technique catalog",
	Long:  "Download, refresh and inspect the cached enterprise ATT&CK technique list.",
}

var catalogFetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the technique catalog",
	Long: `Download the enterprise ATT&CK STIX bundle and write the technique catalog.

An existing catalog is left alone unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		adapter, err := wire.CatalogAdapterWithOutput(cmd.OutOrStdout())
		if err != nil {
			return err
		}

		_, err = adapter.Fetch(cmd.Context(), force)
		return err
	},
}

var catalogLookupCmd = &cobra.Command{
	Use:   "lookup <technique_id>",
	Short: "Show a technique from the catalog",
	Long: `Print a technique's name and tactic phases from the local catalog.

Examples:
  navcsv catalog lookup T1059
  navcsv catalog lookup t1059.001`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		adapter, err := wire.CatalogAdapterWithOutput(cmd.OutOrStdout())
		if err != nil {
			return err
		}

		_, err = adapter.Lookup(cmd.Context(), normalizeTechniqueID(args[0]))
		return err
	},
}

func init() {
	catalogFetchCmd.Flags().Bool("force", false, "Refetch even if the catalog already exists")

	catalogCmd.AddCommand(catalogFetchCmd)
	catalogCmd.AddCommand(catalogLookupCmd)
}

// CatalogCmd returns the catalog command
func CatalogCmd() *cobra.Command {
	return catalogCmd
}

// normalizeTechniqueID upper-cases the ID so "t1059" matches "T1059".
func normalizeTechniqueID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
