package match

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// hasDigit reports whether s contains at least one digit.
func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// extractInts returns every integer token in s, in order of appearance.
// Tokens that do not fit in an int are skipped.
func extractInts(s string) []int {
	var out []int
	for _, tok := range digitRun.FindAllString(s, -1) {
		n, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// parseCounterSet expands a raw comma-separated counter list such as
// "1-5,7,9A" into the set of integers it covers. A part is either a
// single integer (a trailing "A" suffix is stripped before parsing) or
// a hyphen-separated inclusive range of two integers.
//
// Malformed parts are skipped, never an error: a part with more than
// one hyphen, non-digit range bounds, or leftover non-digit characters
// simply contributes nothing.
func parseCounterSet(raw string) map[int]struct{} {
	set := make(map[int]struct{})
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.Contains(part, "-") {
			bounds := strings.Split(part, "-")
			if len(bounds) != 2 || !allDigits(bounds[0]) || !allDigits(bounds[1]) {
				continue // malformed range
			}
			lo, errLo := strconv.Atoi(bounds[0])
			hi, errHi := strconv.Atoi(bounds[1])
			if errLo != nil || errHi != nil {
				continue
			}
			for n := lo; n <= hi; n++ {
				set[n] = struct{}{}
			}
			continue
		}
		v := strings.TrimSuffix(part, "A")
		if !allDigits(v) {
			continue // malformed counter
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			continue
		}
		set[n] = struct{}{}
	}
	return set
}

// allDigits reports whether s is non-empty and entirely ASCII digits.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// anyInSet reports whether any of nums is a member of set.
func anyInSet(nums []int, set map[int]struct{}) bool {
	for _, n := range nums {
		if _, ok := set[n]; ok {
			return true
		}
	}
	return false
}

// anyIn reports whether nums and candidates share at least one value.
func anyIn(nums, candidates []int) bool {
	for _, c := range candidates {
		for _, n := range nums {
			if n == c {
				return true
			}
		}
	}
	return false
}
