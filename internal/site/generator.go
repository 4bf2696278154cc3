package site

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/wilsonudomisor/folio/internal/app"
)

// Generator writes the whole site to the output directory as plain static
// files. Current overrides are baked in; the output carries no edit controls.
type Generator struct {
	App *app.App

	// Progress, when set, is called after each page is written.
	Progress func(done, total int, name string)
}

func NewGenerator(a *app.App) *Generator {
	return &Generator{App: a}
}

// Generate renders every page and copies assets. Returns the number of pages
// written.
func (g *Generator) Generate(ctx context.Context) (int, error) {
	cfg := g.App.Cfg
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}

	if err := os.WriteFile(filepath.Join(cfg.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, fmt.Errorf("writing stylesheet: %w", err)
	}

	r := NewRenderer(g.App, false)
	names := r.PageNames(ctx)
	for i, name := range names {
		page, err := r.Render(ctx, name)
		if err != nil {
			return i, fmt.Errorf("rendering %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(cfg.OutputDir, name), page, 0o644); err != nil {
			return i, fmt.Errorf("writing %s: %w", name, err)
		}
		if g.Progress != nil {
			g.Progress(i+1, len(names), name)
		}
	}

	if err := g.copyAssets(); err != nil {
		return len(names), err
	}
	return len(names), nil
}

// copyAssets mirrors the assets directory into the output, skipping excluded
// patterns. A missing assets directory is not an error.
func (g *Generator) copyAssets() error {
	cfg := g.App.Cfg
	if _, err := os.Stat(cfg.AssetsDir); os.IsNotExist(err) {
		return nil
	}
	return filepath.WalkDir(cfg.AssetsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(cfg.AssetsDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if excluded(rel, cfg.Exclude) {
			return nil
		}
		outPath := filepath.Join(cfg.OutputDir, "assets", filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading asset %s: %w", rel, err)
		}
		return os.WriteFile(outPath, data, 0o644)
	})
}

func excluded(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.PathMatch(pattern, rel); err == nil && ok {
			return true
		}
		if ok, err := doublestar.PathMatch(pattern, filepath.Base(rel)); err == nil && ok {
			return true
		}
	}
	return false
}
