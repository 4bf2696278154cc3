package preview

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// maxUploadBytes caps preview uploads; this tool exists for trying photos,
// not hosting them.
const maxUploadBytes = 10 << 20

// Handler serves the preview API. It refuses non-loopback callers outright.
type Handler struct {
	previews *Previews
}

func NewHandler() *Handler {
	return &Handler{previews: NewPreviews()}
}

// Previews exposes the in-memory holding area, mainly for tests.
func (h *Handler) Previews() *Previews { return h.previews }

// RegisterRoutes mounts the preview API.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/preview", func(r chi.Router) {
		r.Use(loopbackOnly)
		r.Get("/targets", h.handleTargets)
		r.Post("/{target}", h.handleUpload)
		r.Get("/image/{token}", h.handleServe)
		r.Delete("/image/{token}", h.handleRevoke)
	})
}

// loopbackOnly rejects requests that do not originate from the local
// machine. The preview tool is for the developer at the keyboard.
func loopbackOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		ip := net.ParseIP(host)
		if ip == nil || !ip.IsLoopback() {
			http.Error(w, `{"error":"preview tool is local-only"}`, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) handleTargets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Targets)
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	target := chi.URLParam(r, "target")
	data, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes+1))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "failed to read upload"})
		return
	}
	if len(data) > maxUploadBytes {
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "upload too large"})
		return
	}
	mime := r.Header.Get("Content-Type")
	if mime == "" || strings.HasPrefix(mime, "multipart/") {
		mime = http.DetectContentType(data)
	}
	token, err := h.previews.Put(target, mime, data)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"token":        token,
		"url":          "/api/preview/image/" + token,
		"target":       Targets[target],
		"instructions": Instructions(target),
	})
}

func (h *Handler) handleServe(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	mime, data, ok := h.previews.Get(token)
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "no-store")
	w.Write(data)
}

func (h *Handler) handleRevoke(w http.ResponseWriter, r *http.Request) {
	h.previews.Revoke(chi.URLParam(r, "token"))
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
