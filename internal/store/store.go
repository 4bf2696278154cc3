// Package store provides the key-value persistence layer for local site
// overrides. Every value a site owner edits — config paths, project patches,
// region content, the edit-mode flag — lives here as a namespaced string key.
package store

import (
	"context"
	"strings"
)

// Store is the override persistence abstraction. Values are strings;
// structured values are JSON-encoded by callers.
type Store interface {
	// Get returns the value for key. The second return is false when no
	// entry exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes value under key, overwriting any previous entry.
	Set(ctx context.Context, key, value string) error
	// Delete removes the entry for key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// ListByPrefix returns every key/value pair whose key starts with prefix.
	ListByPrefix(ctx context.Context, prefix string) (map[string]string, error)
}

// Namespace is the short per-site identifier prepended to every stored key,
// keeping two site instances from colliding in a shared store.
type Namespace string

// Key returns the full stored key for a logical key.
func (n Namespace) Key(logical string) string {
	return string(n) + "_" + logical
}

// Prefix returns the key prefix shared by all entries of this namespace.
func (n Namespace) Prefix() string {
	return string(n) + "_"
}

// Owns reports whether key carries this namespace's prefix.
func (n Namespace) Owns(key string) bool {
	return strings.HasPrefix(key, n.Prefix())
}

// Logical strips the namespace prefix from a stored key. The second return
// is false when the key does not belong to this namespace.
func (n Namespace) Logical(key string) (string, bool) {
	if !n.Owns(key) {
		return "", false
	}
	return strings.TrimPrefix(key, n.Prefix()), true
}
