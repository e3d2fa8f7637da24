package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/opdnav/opdnav/core"
	"github.com/opdnav/opdnav/match"
	"github.com/opdnav/opdnav/metrics"
)

// aecSearchResponse mirrors the page data: department matches plus the
// (always empty for now) navigation and building result groups.
type aecSearchResponse struct {
	DepartmentResults []core.AECRecord `json:"department_results"`
	NavigationResults []any            `json:"navigation_results"`
	BuildingResults   []any            `json:"building_results"`
	Suggestion        *string          `json:"suggestion"`
}

type pgiSearchResponse struct {
	DepartmentResults []core.PGIRecord `json:"department_results"`
	NavigationResults []any            `json:"navigation_results"`
	BuildingResults   []any            `json:"building_results"`
	Suggestion        string           `json:"suggestion"`
}

type aecPage struct {
	Query      string
	Results    []core.AECRecord
	Suggestion *string
	Hospital   string
}

type pgiPage struct {
	Query             string
	DepartmentResults []core.PGIRecord
	Suggestion        string
	Hospital          string
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.render(w, "main.html", nil)
}

func (s *Server) handleTest(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleAEC(w http.ResponseWriter, r *http.Request) {
	raw := r.FormValue("search_query")
	query := match.Sanitize(raw)

	start := time.Now()
	results, suggestion := s.dir.AECMatcher().SearchWithMonitor(query, &phaseMonitor{campus: "aec"})
	observeSearch("aec", start, len(results), suggestion != nil)

	if wantsJSON(r) {
		writeJSON(w, aecSearchResponse{
			DepartmentResults: results,
			NavigationResults: []any{},
			BuildingResults:   []any{},
			Suggestion:        suggestion,
		})
		return
	}
	s.render(w, "aec_index.html", aecPage{
		Query:      raw,
		Results:    results,
		Suggestion: suggestion,
		Hospital:   "aec",
	})
}

func (s *Server) handlePGI(w http.ResponseWriter, r *http.Request) {
	raw := r.FormValue("search_query")
	query := match.Sanitize(raw)

	start := time.Now()
	results, suggestion := s.dir.PGIMatcher().SearchWithMonitor(query, &phaseMonitor{campus: "pgi"})
	observeSearch("pgi", start, len(results), suggestion != "")

	if wantsJSON(r) {
		writeJSON(w, pgiSearchResponse{
			DepartmentResults: results,
			NavigationResults: []any{},
			BuildingResults:   []any{},
			Suggestion:        suggestion,
		})
		return
	}
	s.render(w, "index.html", pgiPage{
		Query:             raw,
		DepartmentResults: results,
		Suggestion:        suggestion,
		Hospital:          "pgi",
	})
}

// wantsJSON reports whether the client asked for a JSON response.
func wantsJSON(r *http.Request) bool {
	return r.Header.Get("Accept") == "application/json"
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error("template render failed", "template", name, "err", err)
	}
}

func observeSearch(campus string, start time.Time, matched int, suggested bool) {
	metrics.SearchesTotal.WithLabelValues(campus).Inc()
	metrics.SearchDurationMs.WithLabelValues(campus).Observe(float64(time.Since(start).Milliseconds()))
	if matched == 0 {
		metrics.EmptyResultsTotal.WithLabelValues(campus).Inc()
	}
	if suggested {
		metrics.SuggestionsTotal.WithLabelValues(campus).Inc()
	}
}

// phaseMonitor feeds cascade phase hits into the match counter.
type phaseMonitor struct {
	campus string
}

var _ match.Monitor = (*phaseMonitor)(nil)

func (m *phaseMonitor) Start(_ string)           {}
func (m *phaseMonitor) EnterPhase(_ match.Phase) {}
func (m *phaseMonitor) Hit(phase match.Phase, _ core.ID) {
	metrics.MatchesTotal.WithLabelValues(m.campus, phase.String()).Inc()
}
func (m *phaseMonitor) Suggested(_ string, _ int) {}
func (m *phaseMonitor) Finish(_ int)              {}
