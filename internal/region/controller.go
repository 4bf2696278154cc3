package region

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/wilsonudomisor/folio/internal/config"
	"github.com/wilsonudomisor/folio/internal/store"
)

// ErrEditModeOff rejects a text write attempted while edit mode is off.
var ErrEditModeOff = errors.New("edit mode is off")

// ErrUnknownRegion rejects a write to a region no mounted page declares.
var ErrUnknownRegion = errors.New("unknown region")

// Controller attaches editing capabilities to declared page regions and
// routes their reads and writes through the override store.
type Controller struct {
	store    store.Store
	ns       store.Namespace
	resolver *config.Resolver
	mode     *EditMode

	mu      sync.Mutex
	mounted map[string]Region
}

// NewController creates a Controller over the given store and resolver.
func NewController(s store.Store, ns store.Namespace, r *config.Resolver, mode *EditMode) *Controller {
	return &Controller{
		store:    s,
		ns:       ns,
		resolver: r,
		mode:     mode,
		mounted:  make(map[string]Region),
	}
}

// Mount claims every region the page declares and returns their resolved
// states. Mounting is idempotent: a region already claimed is refreshed,
// not claimed again, so repeated mounts never duplicate affordances.
func (c *Controller) Mount(ctx context.Context, page Page) []State {
	c.mu.Lock()
	for _, r := range page.Regions {
		if _, ok := c.mounted[r.ID]; !ok {
			c.mounted[r.ID] = r
		}
	}
	c.mu.Unlock()

	states := make([]State, 0, len(page.Regions))
	for _, r := range page.Regions {
		states = append(states, c.Resolve(ctx, r))
	}
	return states
}

// Mounted reports whether a region with the given id has been claimed.
func (c *Controller) Mounted(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.mounted[id]
	return ok
}

// Resolve computes a region's current presentation state: persisted override
// first, then the configured default, then the region's built-in value.
func (c *Controller) Resolve(ctx context.Context, r Region) State {
	st := State{Region: r, Editable: r.Kind == Text && c.mode.On()}

	if v, ok, err := c.store.Get(ctx, c.ns.Key(r.ID)); err == nil && ok && v != "" {
		st.Value = v
		st.Source = SourceOverride
		if r.Kind == Link {
			st.Value = TransformLink(r.ID, v)
		}
		return st
	}

	if r.ConfigPath != "" {
		if v := c.resolver.Resolve(ctx, r.ConfigPath, ""); v != "" {
			st.Value = v
			st.Source = SourceConfig
			if r.Kind == Link {
				st.Value = TransformLink(r.ID, v)
			}
			return st
		}
	}

	if r.Fallback != "" {
		st.Value = r.Fallback
		st.Source = SourceFallback
		return st
	}

	st.Source = SourcePlaceholder
	return st
}

// SetImageFile persists an uploaded image as an embedded data URL under the
// region's key and returns the stored value.
func (c *Controller) SetImageFile(ctx context.Context, id string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty image upload for region %s", id)
	}
	mime := http.DetectContentType(data)
	dataURL := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
	if err := c.store.Set(ctx, c.ns.Key(id), dataURL); err != nil {
		return "", err
	}
	return dataURL, nil
}

// SetImageURL persists a literal image path or URL under the region's key.
// An empty value means the editor was cancelled: no write happens.
func (c *Controller) SetImageURL(ctx context.Context, id, url string) error {
	if url == "" {
		return nil
	}
	return c.store.Set(ctx, c.ns.Key(id), url)
}

// SetLink persists a link value under the region's key. The key-specific
// transform applies on read, not on write, so the raw value round-trips
// through export and import unchanged. An empty value is a cancelled edit.
func (c *Controller) SetLink(ctx context.Context, id, url string) error {
	if url == "" {
		return nil
	}
	return c.store.Set(ctx, c.ns.Key(id), url)
}

// SetText persists a text region's content. Writes are only accepted while
// edit mode is on, mirroring the regions being read-only otherwise, and only
// for declared text regions; a mounted region of any other kind rejects the
// write the same way an undeclared one does.
func (c *Controller) SetText(ctx context.Context, id, text string) error {
	if !c.mode.On() {
		return ErrEditModeOff
	}
	c.mu.Lock()
	r, ok := c.mounted[id]
	c.mu.Unlock()
	if !ok || r.Kind != Text {
		return fmt.Errorf("%w: %s", ErrUnknownRegion, id)
	}
	return c.store.Set(ctx, c.ns.Key(id), text)
}

// EditMode exposes the controller's edit-mode state machine.
func (c *Controller) EditMode() *EditMode { return c.mode }
