package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/wilsonudomisor/folio/internal/store"
)

func testSiteConfig(t *testing.T, doc string) *SiteConfig {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site-config.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}
	sc, err := LoadSiteConfig(path)
	if err != nil {
		t.Fatalf("LoadSiteConfig failed: %v", err)
	}
	return sc
}

const sampleDoc = `{
  "owner": {"name": "Wilson Udomisor", "title": "Data Engineer"},
  "links": {"whatsappNumber": "2348000000000", "email": "wilson@example.com"},
  "images": {"headshot": "assets/img/headshot.jpg"},
  "meta": {"year": 2025, "published": true}
}`

func TestSiteConfigLookup(t *testing.T) {
	sc := testSiteConfig(t, sampleDoc)

	tests := []struct {
		path  string
		want  string
		found bool
	}{
		{"owner.name", "Wilson Udomisor", true},
		{"images.headshot", "assets/img/headshot.jpg", true},
		{"meta.year", "2025", true},
		{"meta.published", "true", true},
		{"owner.missing", "", false},
		{"missing.name", "", false},
		// Non-mapping intermediate fails closed rather than erroring.
		{"owner.name.deeper", "", false},
		// A mapping is not a value.
		{"owner", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, found := sc.Lookup(tt.path)
		if got != tt.want || found != tt.found {
			t.Errorf("Lookup(%q): got (%q, %v), want (%q, %v)", tt.path, got, found, tt.want, tt.found)
		}
	}
}

func TestResolvePrecedence(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	ns := store.Namespace("wu")
	r := NewResolver(s, ns, testSiteConfig(t, sampleDoc))

	// No override: bundled value wins over fallback.
	if got := r.Resolve(ctx, "owner.name", "Default Name"); got != "Wilson Udomisor" {
		t.Errorf("bundled layer: got %q", got)
	}

	// Override beats bundled.
	if err := s.Set(ctx, "wu_owner.name", "Edited Name"); err != nil {
		t.Fatal(err)
	}
	if got := r.Resolve(ctx, "owner.name", "Default Name"); got != "Edited Name" {
		t.Errorf("override layer: got %q", got)
	}

	// An override in another namespace is invisible.
	if err := s.Set(ctx, "de_owner.title", "Other Site"); err != nil {
		t.Fatal(err)
	}
	if got := r.Resolve(ctx, "owner.title", ""); got != "Data Engineer" {
		t.Errorf("foreign namespace leaked: got %q", got)
	}

	// Missing everywhere: fallback.
	if got := r.Resolve(ctx, "owner.tagline", "Fallback"); got != "Fallback" {
		t.Errorf("fallback layer: got %q", got)
	}

	// Missing everywhere, empty fallback: empty.
	if got := r.Resolve(ctx, "owner.tagline", ""); got != "" {
		t.Errorf("absent: got %q", got)
	}
}

func TestResolveEmptyOverrideFallsThrough(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	r := NewResolver(s, "wu", testSiteConfig(t, sampleDoc))

	// Clearing a field in an editor persists "", which means "use default".
	if err := s.Set(ctx, "wu_owner.name", ""); err != nil {
		t.Fatal(err)
	}
	if got := r.Resolve(ctx, "owner.name", "x"); got != "Wilson Udomisor" {
		t.Errorf("empty override should fall through: got %q", got)
	}
}

func TestResolveWithUnavailableConfig(t *testing.T) {
	// When the bundled document failed to load, resolution degrades to
	// override -> fallback.
	ctx := context.Background()
	s := store.NewMemory()
	r := NewResolver(s, "wu", EmptySiteConfig())

	if got := r.Resolve(ctx, "owner.name", "Default Name"); got != "Default Name" {
		t.Errorf("got %q, want fallback", got)
	}

	if err := s.Set(ctx, "wu_owner.name", "Edited"); err != nil {
		t.Fatal(err)
	}
	if got := r.Resolve(ctx, "owner.name", "Default Name"); got != "Edited" {
		t.Errorf("got %q, want override", got)
	}
}

func TestLoadSiteConfigMissingFile(t *testing.T) {
	if _, err := LoadSiteConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected an error for a missing document")
	}
}
