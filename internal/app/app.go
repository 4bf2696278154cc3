// Package app assembles the application state: tool config, bundled site
// data, the override store, and the editing subsystem. State is built once
// at startup and passed explicitly to render and handler code; the only
// mutation entry points are ReloadData and the store-backed editors.
package app

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/wilsonudomisor/folio/internal/config"
	"github.com/wilsonudomisor/folio/internal/project"
	"github.com/wilsonudomisor/folio/internal/region"
	"github.com/wilsonudomisor/folio/internal/store"
)

// Bundled data file names inside the data directory.
const (
	SiteConfigFile = "site-config.json"
	ProjectsFile   = "projects.json"
)

// DataUnavailableMessage is bound into the projectsFallback region when the
// bundled data files could not be loaded.
const DataUnavailableMessage = "Unable to load site data files. Check the data directory and reload."

// App is the process-wide application state.
type App struct {
	Cfg      *config.Config
	Store    store.Store
	NS       store.Namespace
	Resolver *config.Resolver
	Mode     *region.EditMode
	Control  *region.Controller

	mu       sync.RWMutex
	site     *config.SiteConfig
	projects []project.Project
	dataErr  string
}

// New loads both bundled data documents and wires the editing subsystem.
// Data-load failures are not fatal: the affected document becomes empty and
// a human-readable message is kept for the fallback region, so rendering
// proceeds with whatever is available.
func New(ctx context.Context, cfg *config.Config, s store.Store) *App {
	ns := store.Namespace(cfg.Namespace)
	a := &App{
		Cfg:   cfg,
		Store: s,
		NS:    ns,
	}

	a.loadData()

	a.Resolver = config.NewResolver(s, ns, a.Site())
	a.Mode = region.LoadEditMode(ctx, s, ns)
	a.Control = region.NewController(s, ns, a.Resolver, a.Mode)

	return a
}

// OpenStore opens the production override store inside the data directory.
func OpenStore(cfg *config.Config) (*store.SQLite, error) {
	path := filepath.Join(cfg.DataDir, "overrides.db")
	s, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening override store: %w", err)
	}
	return s, nil
}

// loadData reads both bundled documents. Both loads are attempted before any
// rendering so a page never observes one document without the other having
// been tried.
func (a *App) loadData() {
	siteCfg, siteErr := config.LoadSiteConfig(filepath.Join(a.Cfg.DataDir, SiteConfigFile))
	projects, projErr := project.Load(filepath.Join(a.Cfg.DataDir, ProjectsFile))

	a.mu.Lock()
	defer a.mu.Unlock()

	if siteErr != nil {
		log.Printf("site config unavailable: %v", siteErr)
		siteCfg = config.EmptySiteConfig()
	}
	if projErr != nil {
		log.Printf("project list unavailable: %v", projErr)
		projects = nil
	}

	a.site = siteCfg
	a.projects = projects
	if siteErr != nil || projErr != nil {
		a.dataErr = DataUnavailableMessage
	} else {
		a.dataErr = ""
	}
}

// ReloadData re-reads the bundled documents, picking up edits to the data
// files without a restart.
func (a *App) ReloadData() {
	a.loadData()
	a.Resolver.Swap(a.Site())
}

// Site returns the current bundled site config (never nil).
func (a *App) Site() *config.SiteConfig {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.site
}

// Projects returns the current bundled project list, without overrides.
func (a *App) Projects() []project.Project {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.projects
}

// DataError returns the user-facing data-unavailable message, or "" when
// both documents loaded.
func (a *App) DataError() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.dataErr
}

// MergedProjects returns the project list with each record's persisted
// override patch applied.
func (a *App) MergedProjects(ctx context.Context) []project.Project {
	base := a.Projects()
	merged := make([]project.Project, len(base))
	for i, p := range base {
		merged[i] = project.ApplyOverride(ctx, a.Store, a.NS, p)
	}
	return merged
}

// MergedProject returns one project with its override applied. The second
// return is false when the id is unknown.
func (a *App) MergedProject(ctx context.Context, id string) (project.Project, bool) {
	p, ok := project.ByID(a.Projects(), id)
	if !ok {
		return project.Project{}, false
	}
	return project.ApplyOverride(ctx, a.Store, a.NS, p), true
}
