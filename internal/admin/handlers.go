package admin

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wilsonudomisor/folio/internal/project"
)

type fieldState struct {
	ConfigField
	Value string `json:"value"`
}

type adminState struct {
	Namespace string            `json:"namespace"`
	DataError string            `json:"dataError,omitempty"`
	Fields    []fieldState      `json:"fields"`
	Projects  []project.Project `json:"projects"`
}

func (ad *Admin) handleState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	fields := make([]fieldState, 0, len(ConfigFields))
	for _, f := range ConfigFields {
		fields = append(fields, fieldState{
			ConfigField: f,
			Value:       ad.app.Resolver.Resolve(ctx, f.Path, ""),
		})
	}
	writeJSON(w, http.StatusOK, adminState{
		Namespace: string(ad.app.NS),
		DataError: ad.app.DataError(),
		Fields:    fields,
		Projects:  ad.app.MergedProjects(ctx),
	})
}

// handleSaveConfig writes every submitted field unconditionally, empty values
// included. An empty stored value falls through to the bundled config at
// resolve time, so saving a cleared field restores the default.
func (ad *Admin) handleSaveConfig(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Values map[string]string `json:"values"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx := r.Context()
	known := make(map[string]bool, len(ConfigFields))
	for _, f := range ConfigFields {
		known[f.Path] = true
	}
	saved := 0
	for path, value := range body.Values {
		if !known[path] {
			continue
		}
		if err := ad.app.Store.Set(ctx, ad.app.NS.Key(path), value); err != nil {
			log.Printf("admin: saving %s: %v", path, err)
			writeError(w, http.StatusInternalServerError, "failed to save settings")
			return
		}
		saved++
	}
	writeJSON(w, http.StatusOK, map[string]any{"saved": saved})
}

func (ad *Admin) handleSaveProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctx := r.Context()
	if _, ok := ad.app.MergedProject(ctx, id); !ok {
		writeError(w, http.StatusNotFound, "unknown project")
		return
	}
	var body struct {
		Fields map[string]string `json:"fields"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	patch := project.BuildPatch(body.Fields)
	raw, err := json.Marshal(patch)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode override")
		return
	}
	if err := ad.app.Store.Set(ctx, ad.app.NS.Key(project.OverrideKey(id)), string(raw)); err != nil {
		log.Printf("admin: saving project %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to save project")
		return
	}
	merged, _ := ad.app.MergedProject(ctx, id)
	writeJSON(w, http.StatusOK, merged)
}

func (ad *Admin) handleExport(w http.ResponseWriter, r *http.Request) {
	entries, err := ExportOverrides(r.Context(), ad.app.Store, ad.app.NS)
	if err != nil {
		log.Printf("admin: export: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to export overrides")
		return
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode export")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+ExportFilename(ad.app.NS)+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (ad *Admin) handleImport(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	applied, err := ImportOverrides(r.Context(), ad.app.Store, ad.app.NS, data)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid override export")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"applied": applied})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("admin: encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
