package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"

	"github.com/bogun-lab/facildash/frontend"
	"github.com/bogun-lab/facildash/pkg/usecase"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router       chi.Router
	statsHandler *StatsHandler
}

// NewServer creates a new HTTP server serving the dashboard and its API
func NewServer(ctx context.Context, addr string, statsUC usecase.Stats) (*Server, error) {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	statsHandler := NewStatsHandler(statsUC)

	// Health check
	router.Get("/health", handleHealth)

	// API routes
	router.Route("/api", func(r chi.Router) {
		r.Get("/regions", statsHandler.HandleListRegions)
		r.Route("/regions/{region}", func(r chi.Router) {
			r.Get("/stats", statsHandler.HandleRegionStats)
			r.Get("/chart", statsHandler.HandleRegionChart)
		})
	})

	// Dashboard frontend (embedded static files)
	fs, err := frontend.GetHTTPFS()
	if err != nil {
		ctxlog.From(ctx).Warn("Failed to get embedded frontend, using fallback",
			"error", err,
		)
		router.Get("/*", handleFallbackHome)
	} else {
		fileServer := http.FileServer(fs)
		router.Handle("/*", fileServer)
	}

	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:       router,
		statsHandler: statsHandler,
	}

	return server, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "facildash",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}

// handleFallbackHome handles the root path when the embedded frontend
// is not available
func handleFallbackHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>facildash</title>
</head>
<body>
    <h1>facildash</h1>
    <p>Regional health facility statistics.</p>
    <p>The dashboard frontend is not embedded in this build. The API is available under <a href="/api/regions">/api/regions</a>.</p>
</body>
</html>`)); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write fallback home page", "error", err)
	}
}
