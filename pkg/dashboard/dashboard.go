// Package dashboard serves a standardized result set over HTTP.
//
// Routes:
//
//	GET /healthz        liveness check with build identity
//	GET /columns        resolved column order and header
//	GET /repos          every repository row as JSON
//	GET /repos/{name}   one repository row, 404 if unknown
//	GET /report.csv     the CSV report
//
// The served set can be swapped at runtime with [Server.Update], so a
// long-running dashboard can pick up a fresh batch without restarting.
package dashboard

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/repohealth/pkg/buildinfo"
	"github.com/matzehuels/repohealth/pkg/metadata"
	"github.com/matzehuels/repohealth/pkg/report"
)

// Server holds the data behind the dashboard routes.
type Server struct {
	mu  sync.RWMutex
	set *metadata.ResultSet
	cfg *report.Config
}

// New creates a Server for a standardized set. cfg may be nil.
func New(set *metadata.ResultSet, cfg *report.Config) *Server {
	if set == nil {
		set = metadata.NewResultSet()
	}
	return &Server{set: set, cfg: cfg}
}

// Update replaces the served set.
func (s *Server) Update(set *metadata.ResultSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set = set
}

func (s *Server) snapshot() (*metadata.ResultSet, *report.Config) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set, s.cfg
}

// Handler returns the dashboard router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "build": buildinfo.Get()})
	})
	r.Get("/columns", s.columns)
	r.Get("/repos", s.repos)
	r.Get("/repos/{name}", s.repo)
	r.Get("/report.csv", s.csv)
	return r
}

func (s *Server) columns(w http.ResponseWriter, _ *http.Request) {
	set, cfg := s.snapshot()
	cols := report.Columns(set, cfg)
	writeJSON(w, http.StatusOK, map[string]any{
		"columns": cols,
		"header":  report.Header(cols, cfg),
	})
}

func (s *Server) repos(w http.ResponseWriter, _ *http.Request) {
	set, cfg := s.snapshot()
	writeJSON(w, http.StatusOK, report.Records(set, cfg))
}

func (s *Server) repo(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	set, cfg := s.snapshot()
	row, ok := set.Get(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown repository: " + name})
		return
	}

	// Resolve columns against the full set so every row has the same shape.
	cols := report.Columns(set, cfg)
	rec := report.Record{report.RepoNameColumn: name}
	for _, c := range cols {
		rec[c] = row[c]
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) csv(w http.ResponseWriter, _ *http.Request) {
	set, cfg := s.snapshot()
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="repo_health.csv"`)
	if err := report.WriteCSV(w, set, cfg); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
