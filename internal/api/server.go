// Package api is the HTTP boundary: request routing, JSON/query-string
// decoding, and response encoding around the query.Engine core.
package api

import (
	"net/http"
	"time"

	"carnav-core/internal/logger"
	"carnav-core/internal/query"
)

// Server wires the query engine to its HTTP surface.
type Server struct {
	engine *query.Engine
}

// New builds a Server around a fresh, empty query engine.
func New() *Server {
	return &Server{engine: query.New()}
}

// Handler builds the full routed HTTP handler, wrapped in request
// logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/offers", s.handlePostOffers)
	mux.HandleFunc("GET /api/offers", s.handleGetOffers)
	mux.HandleFunc("DELETE /api/offers", s.handleDeleteOffers)

	return withLogging(mux)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("carnav-core\n"))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "ok")
}

// withLogging logs method, path, status, and duration for every request
// under the "HTTP" tag.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		dur := time.Since(start)
		msg := r.Method + " " + r.URL.Path + " " + http.StatusText(sw.status) + " " + dur.String()
		switch {
		case sw.status >= 500:
			logger.Error("HTTP", msg)
		case sw.status >= 400:
			logger.Warn("HTTP", msg)
		default:
			logger.Info("HTTP", msg)
		}
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
