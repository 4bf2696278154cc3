package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/wilsonudomisor/folio/internal/site"
)

func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	page, err := s.renderer.Render(r.Context(), r.URL.Path)
	if err != nil {
		if errors.Is(err, site.ErrNoSuchPage) {
			http.NotFound(w, r)
			return
		}
		log.Printf("server: rendering %s: %v", r.URL.Path, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func (s *Server) serveScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Write([]byte(site.ClientScript))
}

func (s *Server) serveStyle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(site.Stylesheet))
}
