package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wilsonudomisor/folio/internal/admin"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all overrides to a JSON file",
	Long: `Writes every override in the configured namespace to a JSON document.
Without an argument the file is named {namespace}-overrides.json.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, closeStore, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	entries, err := admin.ExportOverrides(ctx, a.Store, a.NS)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}

	path := admin.ExportFilename(a.NS)
	if len(args) == 1 {
		path = args[0]
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("Exported %d overrides to %s\n", len(entries), path)
	return nil
}
