// Package admin provides the bulk editing surface: a form view over the
// config resolver and project override merger, plus export and import of the
// full namespaced contents of the override store.
package admin

import (
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wilsonudomisor/folio/internal/app"
)

//go:embed admin.html
var adminHTML []byte

// ConfigField is one known admin form field bound to a config path.
type ConfigField struct {
	ID    string `json:"id"`
	Path  string `json:"path"`
	Label string `json:"label"`
}

// ConfigFields is the known set of site config fields the panel edits.
var ConfigFields = []ConfigField{
	{ID: "adminName", Path: "owner.name", Label: "Name"},
	{ID: "adminTitle", Path: "owner.title", Label: "Title"},
	{ID: "adminProof", Path: "owner.proofLine", Label: "Proof line"},
	{ID: "adminGithub", Path: "links.githubProfile", Label: "GitHub profile"},
	{ID: "adminLinkedIn", Path: "links.linkedin", Label: "LinkedIn"},
	{ID: "adminEmail", Path: "links.email", Label: "Email"},
	{ID: "adminWhatsApp", Path: "links.whatsappNumber", Label: "WhatsApp number"},
	{ID: "adminResume", Path: "links.resume", Label: "Resume"},
	{ID: "adminHeroHome", Path: "images.homeHeroPhoto", Label: "Home hero photo"},
	{ID: "adminHeroAbout", Path: "images.aboutHeroPhoto", Label: "About hero photo"},
	{ID: "adminHeadshot", Path: "images.headshot", Label: "Headshot"},
}

// Admin serves the panel and its JSON API.
type Admin struct {
	app *app.App
}

// New creates the admin surface over the application state.
func New(a *app.App) *Admin {
	return &Admin{app: a}
}

// RegisterRoutes mounts the panel and its API on the given router.
func (ad *Admin) RegisterRoutes(r chi.Router) {
	r.Get("/admin", ad.serveIndex)
	r.Get("/api/admin/state", ad.handleState)
	r.Post("/api/admin/config", ad.handleSaveConfig)
	r.Post("/api/admin/projects/{id}", ad.handleSaveProject)
	r.Get("/api/admin/export", ad.handleExport)
	r.Post("/api/admin/import", ad.handleImport)
}

func (ad *Admin) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(adminHTML)
}
