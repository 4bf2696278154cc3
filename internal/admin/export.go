package admin

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wilsonudomisor/folio/internal/store"
)

// ExportOverrides collects every override belonging to the namespace into a
// single document keyed by full store key.
func ExportOverrides(ctx context.Context, s store.Store, ns store.Namespace) (map[string]string, error) {
	entries, err := s.ListByPrefix(ctx, ns.Prefix())
	if err != nil {
		return nil, fmt.Errorf("listing overrides: %w", err)
	}
	return entries, nil
}

// ExportFilename is the download name for an override export.
func ExportFilename(ns store.Namespace) string {
	return string(ns) + "-overrides.json"
}

// ImportOverrides parses an exported document and writes the entries that
// belong to the namespace. The document is validated in full before any write,
// so a malformed payload changes nothing. Returns the number of entries
// applied; keys from other namespaces are skipped, not errors.
func ImportOverrides(ctx context.Context, s store.Store, ns store.Namespace, data []byte) (int, error) {
	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return 0, fmt.Errorf("parsing override export: %w", err)
	}
	applied := 0
	for key, value := range entries {
		if !ns.Owns(key) {
			continue
		}
		if err := s.Set(ctx, key, value); err != nil {
			return applied, fmt.Errorf("writing %s: %w", key, err)
		}
		applied++
	}
	return applied, nil
}
