package match

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/opdnav/opdnav/core"
	"github.com/opdnav/opdnav/store"
)

const (
	// pgiSuggestionThreshold is the minimum fuzzy score (exclusive)
	// for a PGI "did you mean" suggestion.
	pgiSuggestionThreshold = 65

	// pgiFuzzyMinQueryLen is the query length (exclusive) below which
	// the fuzzy phase is skipped.
	pgiFuzzyMinQueryLen = 2
)

// PGIMatcher answers queries against the PGI campus store. Queries
// containing digits first go through a numeric phase over counter
// ranges, room numbers and department numbers; everything else falls
// to a three-phase text cascade.
type PGIMatcher struct {
	store  store.PGIStore
	scorer Scorer
	logger *slog.Logger
}

// NewPGIMatcher creates a matcher over the given store.
func NewPGIMatcher(st store.PGIStore, opts ...Option) (*PGIMatcher, error) {
	if st == nil {
		return nil, ErrStoreRequired
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &PGIMatcher{store: st, scorer: o.scorer, logger: o.logger}, nil
}

// Search runs the cascade for a sanitized query. It returns the
// matched records in store order and, when nothing matched, possibly
// a fuzzy suggestion (empty string when none qualifies).
func (m *PGIMatcher) Search(query string) ([]core.PGIRecord, string) {
	return m.SearchWithMonitor(query, nil)
}

// SearchWithMonitor is Search with cascade observation hooks.
func (m *PGIMatcher) SearchWithMonitor(query string, monitor Monitor) ([]core.PGIRecord, string) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	results := []core.PGIRecord{}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || m.store.Len() == 0 {
		return results, ""
	}
	monitor.Start(trimmed)

	records := m.store.Records()
	lower := strings.ToLower(trimmed)

	// Step 1: numeric phase, only for queries carrying digits.
	// Each record is tested against counters first, then room numbers,
	// then department numbers, and contributes at most once.
	if hasDigit(trimmed) {
		monitor.EnterPhase(PhaseNumeric)
		queryNums := extractInts(trimmed)
		for _, rec := range records {
			if rec.Counters != "" && anyInSet(queryNums, parseCounterSet(rec.Counters)) {
				results = append(results, rec)
				monitor.Hit(PhaseNumeric, rec.ID)
				continue
			}
			if rec.RoomNo != "" && anyIn(queryNums, extractInts(rec.RoomNo)) {
				results = append(results, rec)
				monitor.Hit(PhaseNumeric, rec.ID)
				continue
			}
			if anyIn(queryNums, extractInts(rec.Department)) {
				results = append(results, rec)
				monitor.Hit(PhaseNumeric, rec.ID)
			}
		}
		// A numeric hit ends the search; the text phase and its
		// suggestion never run alongside numeric matches.
		if len(results) > 0 {
			monitor.Finish(len(results))
			return results, ""
		}
	}

	// Step 2a: substring match on department only
	monitor.EnterPhase(PhaseDepartment)
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Department), lower) {
			results = append(results, rec)
			monitor.Hit(PhaseDepartment, rec.ID)
		}
	}
	if len(results) > 0 {
		monitor.Finish(len(results))
		return results, ""
	}

	// Step 2b: substring match across fields in priority order.
	// The first matching field admits the record; a record appears at
	// most once no matter how many fields match.
	monitor.EnterPhase(PhaseFields)
	for _, rec := range records {
		for _, field := range []string{rec.Department, rec.Doctors, rec.Notes, rec.Block, rec.Building} {
			if strings.Contains(strings.ToLower(field), lower) {
				results = append(results, rec)
				monitor.Hit(PhaseFields, rec.ID)
				break
			}
		}
	}
	if len(results) > 0 {
		monitor.Finish(len(results))
		return results, ""
	}

	// Step 2c: fuzzy suggestion over department names, skipped for
	// very short queries. No records are returned from this phase.
	if utf8.RuneCountInString(trimmed) > pgiFuzzyMinQueryLen {
		monitor.EnterPhase(PhaseFuzzy)
		candidates := make([]string, 0, len(records))
		for _, rec := range records {
			if rec.Department != "" {
				candidates = append(candidates, rec.Department)
			}
		}
		best, score := BestMatch(m.scorer, trimmed, candidates)
		if score > pgiSuggestionThreshold {
			m.logger.Debug("fuzzy suggestion", "campus", "pgi", "query", trimmed, "candidate", best, "score", score)
			monitor.Suggested(best, score)
			monitor.Finish(0)
			return results, best
		}
	}
	monitor.Finish(0)
	return results, ""
}
