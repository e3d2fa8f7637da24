package match

import (
	"math"
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

// Scorer produces a similarity score between two strings on a 0-100
// scale. Implementations must be safe for concurrent use.
type Scorer interface {
	Ratio(a, b string) int
}

// TokenSetScorer scores strings as sets of lowercased tokens, making
// the score robust to word reordering and duplication. The edit
// similarity kernel is Levenshtein.
type TokenSetScorer struct{}

var _ Scorer = (*TokenSetScorer)(nil)

// NewTokenSetScorer creates the default scorer.
func NewTokenSetScorer() *TokenSetScorer {
	return &TokenSetScorer{}
}

// Ratio computes the token-set similarity of a and b.
//
// The token sets are split into the shared intersection and the two
// remainders; the score is the best pairwise similarity between
// "intersection", "intersection + remainder of a" and
// "intersection + remainder of b", scaled to 0-100. Identical token
// sets score 100 regardless of word order.
func (TokenSetScorer) Ratio(a, b string) int {
	ta := tokenSet(a)
	tb := tokenSet(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	inter, restA, restB := splitTokenSets(ta, tb)

	sect := strings.Join(inter, " ")
	s1 := strings.TrimSpace(sect + " " + strings.Join(restA, " "))
	s2 := strings.TrimSpace(sect + " " + strings.Join(restB, " "))

	best := levenshtein.Similarity(sect, s1, nil)
	if s := levenshtein.Similarity(sect, s2, nil); s > best {
		best = s
	}
	if s := levenshtein.Similarity(s1, s2, nil); s > best {
		best = s
	}
	return int(math.Round(best * 100))
}

// BestMatch scores query against every candidate and returns the
// highest-scoring one. Earlier candidates win ties. Returns ("", 0)
// when there are no candidates.
func BestMatch(scorer Scorer, query string, candidates []string) (string, int) {
	best := ""
	bestScore := 0
	for _, c := range candidates {
		if score := scorer.Ratio(query, c); score > bestScore {
			best = c
			bestScore = score
		}
	}
	return best, bestScore
}

// tokenSet returns the sorted distinct lowercased tokens of s.
func tokenSet(s string) []string {
	seen := make(map[string]struct{})
	for _, tok := range strings.Fields(strings.ToLower(s)) {
		seen[tok] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for tok := range seen {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

// splitTokenSets splits two sorted token sets into their intersection
// and the tokens unique to each side. All three results stay sorted.
func splitTokenSets(a, b []string) (inter, restA, restB []string) {
	inB := make(map[string]struct{}, len(b))
	for _, tok := range b {
		inB[tok] = struct{}{}
	}
	inInter := make(map[string]struct{})
	for _, tok := range a {
		if _, ok := inB[tok]; ok {
			inter = append(inter, tok)
			inInter[tok] = struct{}{}
		} else {
			restA = append(restA, tok)
		}
	}
	for _, tok := range b {
		if _, ok := inInter[tok]; !ok {
			restB = append(restB, tok)
		}
	}
	return inter, restA, restB
}
