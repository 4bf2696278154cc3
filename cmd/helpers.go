package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/wilsonudomisor/folio/internal/app"
	"github.com/wilsonudomisor/folio/internal/config"
)

// loadConfig reads and validates the tool configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if verbose {
		log.Printf("using config %s (namespace %s)", cfgFile, cfg.Namespace)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// buildApp opens the override store and assembles the application state.
// The caller owns closing the returned store.
func buildApp(ctx context.Context) (*app.App, func() error, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	s, err := app.OpenStore(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("opening override store: %w", err)
	}
	return app.New(ctx, cfg, s), s.Close, nil
}
