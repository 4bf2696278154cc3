package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wilsonudomisor/folio/internal/progress"
	"github.com/wilsonudomisor/folio/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the static site with current overrides baked in",
	Long: `Renders every page to the output directory and copies assets. Persisted
overrides are applied at build time; the output is plain static files
with no editing controls.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, closeStore, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if out, _ := cmd.Flags().GetString("output"); out != "" {
		a.Cfg.OutputDir = out
	}

	rep := progress.NewReporter()
	g := site.NewGenerator(a)
	started := false
	g.Progress = func(done, total int, name string) {
		if !started {
			rep.Start(total)
			started = true
		}
		rep.Update(done, name)
	}

	n, err := g.Generate(ctx)
	rep.Finish()
	if err != nil {
		return err
	}
	fmt.Printf("Generated %d pages in %s\n", n, a.Cfg.OutputDir)
	return nil
}
