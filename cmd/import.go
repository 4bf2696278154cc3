package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wilsonudomisor/folio/internal/admin"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import overrides from an exported JSON file",
	Long: `Reads a previously exported override document and applies its entries.
The document is validated before anything is written; entries from other
namespaces are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	a, closeStore, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	applied, err := admin.ImportOverrides(ctx, a.Store, a.NS, data)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d overrides\n", applied)
	return nil
}
