package config

import (
	"context"
	"sync"

	"github.com/wilsonudomisor/folio/internal/store"
)

// Resolver answers dotted-path value lookups against three layers, highest
// precedence first: the override store, the bundled SiteConfig, and a
// caller-supplied fallback. It is a pure read and never errors; a store
// failure or malformed path simply falls through to the next layer.
type Resolver struct {
	store store.Store
	ns    store.Namespace

	mu   sync.RWMutex
	site *SiteConfig
}

// NewResolver creates a Resolver over the given store and bundled config.
func NewResolver(s store.Store, ns store.Namespace, site *SiteConfig) *Resolver {
	return &Resolver{store: s, ns: ns, site: site}
}

// Swap replaces the bundled-config layer, used when the data files are
// reloaded. The store and fallback layers are unaffected.
func (r *Resolver) Swap(site *SiteConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.site = site
}

// Resolve returns the highest-precedence value for path. A stored empty
// string falls through to the bundled config, matching the edit surfaces
// where clearing a field means "back to the default". Returns "" only when
// the fallback itself is empty and no layer supplies a value.
func (r *Resolver) Resolve(ctx context.Context, path, fallback string) string {
	if v, ok, err := r.store.Get(ctx, r.ns.Key(path)); err == nil && ok && v != "" {
		return v
	}
	r.mu.RLock()
	site := r.site
	r.mu.RUnlock()
	if v, ok := site.Lookup(path); ok {
		return v
	}
	return fallback
}

// Namespace returns the namespace the resolver reads overrides under.
func (r *Resolver) Namespace() store.Namespace { return r.ns }
