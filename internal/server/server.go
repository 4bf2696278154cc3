// Package server hosts the live portfolio: pages rendered per request so
// edits show up immediately, the region editing API, the admin panel, the
// local preview tool, and the data-change reload socket.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/wilsonudomisor/folio/internal/admin"
	"github.com/wilsonudomisor/folio/internal/app"
	"github.com/wilsonudomisor/folio/internal/preview"
	"github.com/wilsonudomisor/folio/internal/site"
	"github.com/wilsonudomisor/folio/internal/watch"
)

// Server wires the application state to HTTP.
type Server struct {
	app        *app.App
	renderer   *site.Renderer
	hub        *watch.Hub
	router     chi.Router
	httpServer *http.Server
}

// New builds the server and its full route table.
func New(a *app.App) *Server {
	s := &Server{
		app:      a,
		renderer: site.NewRenderer(a, true),
		hub:      watch.NewHub(),
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	s.registerRegionRoutes(r)
	admin.New(s.app).RegisterRoutes(r)
	preview.NewHandler().RegisterRoutes(r)

	r.Get("/ws/reload", s.hub.ServeWS)
	r.Get("/script.js", s.serveScript)
	r.Get("/style.css", s.serveStyle)

	// Static assets from the configured directory.
	r.Handle("/assets/*", http.StripPrefix("/assets/",
		http.FileServer(http.Dir(s.app.Cfg.AssetsDir))))

	// Everything else is a page.
	r.Get("/*", s.servePage)
	r.Get("/", s.servePage)

	return r
}

// Hub returns the reload hub so the watcher can broadcast into it.
func (s *Server) Hub() *watch.Hub { return s.hub }

// Router exposes the route table, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.app.Cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Printf("folio serving on http://localhost:%d", s.app.Cfg.Port)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
