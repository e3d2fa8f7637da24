package match

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/opdnav/opdnav/core"
	"github.com/opdnav/opdnav/store"
)

// aecSuggestionThreshold is the minimum fuzzy score (exclusive) for an
// AEC "did you mean" suggestion.
const aecSuggestionThreshold = 70

// AECMatcher answers queries against the AEC campus store using a
// four-phase cascade: exact, whole word, substring, fuzzy suggestion.
// The first phase with any result wins.
type AECMatcher struct {
	store  store.AECStore
	scorer Scorer
	logger *slog.Logger
}

// NewAECMatcher creates a matcher over the given store.
func NewAECMatcher(st store.AECStore, opts ...Option) (*AECMatcher, error) {
	if st == nil {
		return nil, ErrStoreRequired
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &AECMatcher{store: st, scorer: o.scorer, logger: o.logger}, nil
}

// Search runs the cascade for a sanitized query. It returns the
// matched records in store order and, when no phase matched anything,
// possibly a fuzzy suggestion (nil when none qualifies).
func (m *AECMatcher) Search(query string) ([]core.AECRecord, *string) {
	return m.SearchWithMonitor(query, nil)
}

// SearchWithMonitor is Search with cascade observation hooks.
func (m *AECMatcher) SearchWithMonitor(query string, monitor Monitor) ([]core.AECRecord, *string) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	results := []core.AECRecord{}
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" || m.store.Len() == 0 {
		return results, nil
	}
	monitor.Start(q)

	records := m.store.Records()
	qStripped := stripPeriods(q)

	// Phase 1: exact equality, compared both with and without periods
	monitor.EnterPhase(PhaseExact)
	for _, rec := range records {
		dept := strings.ToUpper(rec.Department)
		notes := strings.ToUpper(rec.Notes)
		if dept == q || stripPeriods(dept) == qStripped ||
			notes == q || (notes != "" && stripPeriods(notes) == qStripped) {
			results = append(results, rec)
			monitor.Hit(PhaseExact, rec.ID)
		}
	}
	if len(results) > 0 {
		monitor.Finish(len(results))
		return results, nil
	}

	// Phase 2: whole-word match on period-stripped text
	monitor.EnterPhase(PhaseWholeWord)
	if pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(qStripped) + `\b`); err == nil {
		for _, rec := range records {
			if pattern.MatchString(stripPeriods(strings.ToUpper(rec.Department))) ||
				(rec.Notes != "" && pattern.MatchString(stripPeriods(strings.ToUpper(rec.Notes)))) {
				results = append(results, rec)
				monitor.Hit(PhaseWholeWord, rec.ID)
			}
		}
	}
	if len(results) > 0 {
		monitor.Finish(len(results))
		return results, nil
	}

	// Phase 3: substring
	monitor.EnterPhase(PhaseSubstring)
	for _, rec := range records {
		if strings.Contains(strings.ToUpper(rec.Department), q) ||
			(rec.Notes != "" && strings.Contains(strings.ToUpper(rec.Notes), q)) {
			results = append(results, rec)
			monitor.Hit(PhaseSubstring, rec.ID)
		}
	}
	if len(results) > 0 {
		monitor.Finish(len(results))
		return results, nil
	}

	// Phase 4: fuzzy suggestion over distinct department/notes strings.
	// No records are returned from this phase, only a suggestion.
	monitor.EnterPhase(PhaseFuzzy)
	candidates := m.suggestionCandidates(records)
	best, score := BestMatch(m.scorer, q, candidates)
	if score > aecSuggestionThreshold {
		m.logger.Debug("fuzzy suggestion", "campus", "aec", "query", q, "candidate", best, "score", score)
		monitor.Suggested(best, score)
		monitor.Finish(0)
		return results, &best
	}
	monitor.Finish(0)
	return results, nil
}

// suggestionCandidates collects the distinct department and non-empty
// notes strings, preserving first-seen order.
func (m *AECMatcher) suggestionCandidates(records []core.AECRecord) []string {
	seen := make(map[string]struct{}, len(records))
	candidates := make([]string, 0, len(records))
	add := func(s string) {
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		candidates = append(candidates, s)
	}
	for _, rec := range records {
		add(rec.Department)
	}
	for _, rec := range records {
		add(rec.Notes)
	}
	return candidates
}

// stripPeriods removes every period so abbreviated department names
// ("E.N.T.") compare equal to their compact form ("ENT").
func stripPeriods(s string) string {
	return strings.ReplaceAll(s, ".", "")
}
