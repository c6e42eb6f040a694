package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/navcsv/internal/adapters/cli"
	"github.com/example/navcsv/internal/wire"
)

var convertCmd = &cobra.Command{
	Use:   "convert <layer.json> <output_filename>",
	Short: "Convert an ATT&CK Navigator layer into a CSV grouped by tactic",
	Long: `Convert an ATT&CK Navigator layer export into a CSV with one column per
enterprise tactic. Each cell holds "Technique Name (TXXXX)".

The local technique catalog must exist; pass --fetch-techniques to download
it first (an existing catalog is never refetched, use 'navcsv catalog fetch
--force' for that). ".csv" is appended to output_filename.

Examples:
  navcsv convert layer.json report --fetch-techniques
  navcsv convert layer.json report --xlsx`,
	Args: convertArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fetch, _ := cmd.Flags().GetBool("fetch-techniques")
		xlsx, _ := cmd.Flags().GetBool("xlsx")

		adapter, err := wire.ConvertAdapterWithOutput(cmd.OutOrStdout())
		if err != nil {
			return err
		}

		return convertRunE(cmd.Context(), adapter, cliadapter.ConvertOptions{
			LayerPath:       args[0],
			OutputName:      args[1],
			FetchTechniques: fetch,
			XLSX:            xlsx,
		})
	},
}

func init() {
	convertCmd.Flags().Bool("fetch-techniques", false, "Download the ATT&CK technique catalog if it does not exist yet")
	convertCmd.Flags().Bool("xlsx", false, "Also write <output_filename>.xlsx")
}

// ConvertCmd returns the convert command
func ConvertCmd() *cobra.Command {
	return convertCmd
}

// convertArgs requires both positionals and an existing layer file.
func convertArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(2)(cmd, args); err != nil {
		return err
	}
	info, err := os.Stat(args[0])
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("layer file %q does not exist", args[0])
		}
		return fmt.Errorf("failed to stat layer file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("layer file %q is a directory", args[0])
	}
	return nil
}

func convertRunE(ctx context.Context, adapter *cliadapter.ConvertAdapter, opts cliadapter.ConvertOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	_, err := adapter.Convert(ctx, opts)
	return err
}
