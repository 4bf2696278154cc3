package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/wilsonudomisor/folio/internal/app"
	"github.com/wilsonudomisor/folio/internal/config"
	"github.com/wilsonudomisor/folio/internal/store"
)

const testSiteConfig = `{"owner":{"name":"Wilson Udomisor"},"links":{"email":"wilson@example.com"}}`

const testProjects = `[
  {"id":"p1","title":"One","featured":true,"tools":["SQL","Airflow"],"links":{"github":"g"}},
  {"id":"p2","title":"Two"}
]`

func testAdmin(t *testing.T) (*Admin, *app.App, *store.Memory, http.Handler) {
	t.Helper()
	dataDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dataDir, app.SiteConfigFile), []byte(testSiteConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, app.ProjectsFile), []byte(testProjects), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultConfig()
	cfg.Namespace = "wu"
	cfg.DataDir = dataDir
	s := store.NewMemory()
	a := app.New(context.Background(), cfg, s)
	ad := New(a)
	r := chi.NewRouter()
	ad.RegisterRoutes(r)
	return ad, a, s, r
}

func TestStateReportsResolvedFields(t *testing.T) {
	_, a, s, router := testAdmin(t)
	ctx := context.Background()
	if err := s.Set(ctx, a.NS.Key("owner.title"), "Data Engineer"); err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/state", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	var state adminState
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatal(err)
	}
	if state.Namespace != "wu" {
		t.Errorf("namespace: got %q", state.Namespace)
	}
	values := map[string]string{}
	for _, f := range state.Fields {
		values[f.Path] = f.Value
	}
	if values["owner.name"] != "Wilson Udomisor" {
		t.Errorf("owner.name: got %q", values["owner.name"])
	}
	if values["owner.title"] != "Data Engineer" {
		t.Errorf("owner.title override: got %q", values["owner.title"])
	}
	if len(state.Projects) != 2 {
		t.Errorf("projects: got %d, want 2", len(state.Projects))
	}
}

func TestSaveConfigWritesEmptyValues(t *testing.T) {
	_, a, s, router := testAdmin(t)
	ctx := context.Background()

	body := `{"values":{"owner.name":"W. Udomisor","links.email":"","not.a.field":"x"}}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/admin/config", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	if v, ok, _ := s.Get(ctx, a.NS.Key("owner.name")); !ok || v != "W. Udomisor" {
		t.Errorf("owner.name: got %q ok=%v", v, ok)
	}
	// Cleared fields are stored as empty strings so resolution falls back.
	if v, ok, _ := s.Get(ctx, a.NS.Key("links.email")); !ok || v != "" {
		t.Errorf("links.email: got %q ok=%v, want stored empty", v, ok)
	}
	if got := a.Resolver.Resolve(ctx, "links.email", "fb"); got != "wilson@example.com" {
		t.Errorf("cleared field resolves to %q, want bundled value", got)
	}
	if _, ok, _ := s.Get(ctx, a.NS.Key("not.a.field")); ok {
		t.Error("unknown field was stored")
	}
}

func TestSaveProjectBuildsOverride(t *testing.T) {
	_, a, s, router := testAdmin(t)
	ctx := context.Background()

	body := `{"fields":{"title":"Rebuilt","tools":"SQL","links.drive":"d","featured":"on"}}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/admin/projects/p1", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200: %s", rec.Code, rec.Body.String())
	}

	if _, ok, _ := s.Get(ctx, a.NS.Key("project_p1_override")); !ok {
		t.Fatal("override was not stored")
	}
	merged, ok := a.MergedProject(ctx, "p1")
	if !ok {
		t.Fatal("merged project missing")
	}
	if merged.Title != "Rebuilt" {
		t.Errorf("title: got %q", merged.Title)
	}
	if len(merged.Tools) != 1 || merged.Tools[0] != "SQL" {
		t.Errorf("tools: got %v", merged.Tools)
	}
	if merged.Links["github"] != "g" || merged.Links["drive"] != "d" {
		t.Errorf("links: got %v, want base github kept and drive added", merged.Links)
	}
}

func TestSaveProjectUnknownID(t *testing.T) {
	_, _, _, router := testAdmin(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/admin/projects/nope", strings.NewReader(`{"fields":{}}`)))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	_, a, s, router := testAdmin(t)
	ctx := context.Background()

	if err := s.Set(ctx, a.NS.Key("owner.name"), "Exported Name"); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(ctx, a.NS.Key("edit_mode"), "true"); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(ctx, "other_owner.name", "foreign"); err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/export", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("export status: got %d", rec.Code)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "wu-overrides.json") {
		t.Errorf("content disposition: got %q", cd)
	}
	exported := rec.Body.Bytes()

	var doc map[string]string
	if err := json.Unmarshal(exported, &doc); err != nil {
		t.Fatal(err)
	}
	if _, ok := doc["other_owner.name"]; ok {
		t.Error("export leaked a foreign namespace key")
	}
	if len(doc) != 2 {
		t.Errorf("export: got %d entries, want 2", len(doc))
	}

	// Clear everything, import the document, and expect the namespace
	// restored exactly.
	for key := range doc {
		if err := s.Delete(ctx, key); err != nil {
			t.Fatal(err)
		}
	}
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/admin/import", strings.NewReader(string(exported))))
	if rec.Code != http.StatusOK {
		t.Fatalf("import status: got %d: %s", rec.Code, rec.Body.String())
	}
	if v, ok, _ := s.Get(ctx, a.NS.Key("owner.name")); !ok || v != "Exported Name" {
		t.Errorf("restored owner.name: got %q ok=%v", v, ok)
	}
	if v, ok, _ := s.Get(ctx, a.NS.Key("edit_mode")); !ok || v != "true" {
		t.Errorf("restored edit_mode: got %q ok=%v", v, ok)
	}
}

func TestImportRejectsMalformedDocument(t *testing.T) {
	_, _, s, router := testAdmin(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/admin/import", strings.NewReader("{not json")))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
	if s.Len() != 0 {
		t.Errorf("store has %d entries after rejected import, want 0", s.Len())
	}
}

func TestImportSkipsForeignKeys(t *testing.T) {
	_, a, s, router := testAdmin(t)
	ctx := context.Background()

	body := `{"wu_owner.name":"mine","other_owner.name":"theirs"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/admin/import", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var out map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out["applied"] != 1 {
		t.Errorf("applied: got %d, want 1", out["applied"])
	}
	if v, ok, _ := s.Get(ctx, a.NS.Key("owner.name")); !ok || v != "mine" {
		t.Errorf("owned key: got %q ok=%v", v, ok)
	}
	if _, ok, _ := s.Get(ctx, "other_owner.name"); ok {
		t.Error("foreign key was written")
	}
}
