package region

import (
	"context"
	"strconv"
	"sync"

	"github.com/wilsonudomisor/folio/internal/store"
)

// EditModeKey is the logical store key holding the persisted edit-mode flag.
const EditModeKey = "edit_mode"

// EditMode is the process-wide edit toggle. It is read from the store once
// at startup, flipped by explicit user action, and re-persisted immediately
// on every flip. First visit defaults to off.
type EditMode struct {
	store store.Store
	ns    store.Namespace

	mu sync.Mutex
	on bool
}

// LoadEditMode reads the persisted flag and returns the state machine.
func LoadEditMode(ctx context.Context, s store.Store, ns store.Namespace) *EditMode {
	m := &EditMode{store: s, ns: ns}
	if v, ok, err := s.Get(ctx, ns.Key(EditModeKey)); err == nil && ok {
		m.on = v == "true"
	}
	return m
}

// On reports the current state.
func (m *EditMode) On() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.on
}

// Toggle flips the state and persists it before returning the new value.
func (m *EditMode) Toggle(ctx context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.on = !m.on
	if err := m.store.Set(ctx, m.ns.Key(EditModeKey), strconv.FormatBool(m.on)); err != nil {
		return m.on, err
	}
	return m.on, nil
}
