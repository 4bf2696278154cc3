package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/wilsonudomisor/folio/internal/region"
)

// maxImageBytes caps in-place image uploads.
const maxImageBytes = 10 << 20

func (s *Server) registerRegionRoutes(r chi.Router) {
	r.Get("/api/edit-mode", s.handleEditMode)
	r.Post("/api/edit-mode/toggle", s.handleEditModeToggle)
	r.Post("/api/regions/{id}/image", s.handleSetImage)
	r.Post("/api/regions/{id}/link", s.handleSetLink)
	r.Post("/api/regions/{id}/text", s.handleSetText)
}

func (s *Server) handleEditMode(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"on": s.app.Mode.On()})
}

func (s *Server) handleEditModeToggle(w http.ResponseWriter, r *http.Request) {
	on, err := s.app.Mode.Toggle(r.Context())
	if err != nil {
		log.Printf("server: toggling edit mode: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to toggle edit mode")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"on": on})
}

// handleSetImage accepts either a multipart file upload or a JSON body with
// a url field. Uploads are stored as embedded data URLs.
func (s *Server) handleSetImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctx := r.Context()

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		file, _, err := r.FormFile("image")
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "missing image file")
			return
		}
		defer file.Close()
		data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "failed to read image")
			return
		}
		if len(data) > maxImageBytes {
			writeJSONError(w, http.StatusRequestEntityTooLarge, "image too large")
			return
		}
		value, err := s.app.Control.SetImageFile(ctx, id, data)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"value": value})
		return
	}

	var body struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.app.Control.SetImageURL(ctx, id, body.URL); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to save image")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"value": body.URL})
}

func (s *Server) handleSetLink(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var body struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.app.Control.SetLink(r.Context(), id, body.URL); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to save link")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"value": body.URL})
}

func (s *Server) handleSetText(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	err := s.app.Control.SetText(r.Context(), id, body.Text)
	switch {
	case errors.Is(err, region.ErrEditModeOff):
		writeJSONError(w, http.StatusConflict, "edit mode is off")
	case errors.Is(err, region.ErrUnknownRegion):
		writeJSONError(w, http.StatusNotFound, "unknown region")
	case err != nil:
		writeJSONError(w, http.StatusInternalServerError, "failed to save text")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"value": body.Text})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("server: encoding response: %v", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
