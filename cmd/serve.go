package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wilsonudomisor/folio/internal/server"
	"github.com/wilsonudomisor/folio/internal/watch"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site locally with live editing",
	Long: `Starts a local server that renders pages on every request, so overrides
made through the admin panel or in-place editing show up immediately.
The data directory is watched; connected browsers reload on changes.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "override the configured port")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, closeStore, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		a.Cfg.Port = port
	}

	srv := server.New(a)

	// Reload data and refresh connected browsers when the data files change.
	w := watch.New(a.Cfg.DataDir, func() {
		log.Println("data changed, reloading")
		a.ReloadData()
		srv.Hub().Broadcast()
	})
	go func() {
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("watcher stopped: %v", err)
		}
	}()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
