package core

import "strings"

// floorLevels maps the floor names that appear in the PGI source data
// to integer levels. Lookups are case-insensitive.
var floorLevels = map[string]int{
	"GROUND FLOOR": 0, "GF": 0, "G": 0,
	"FIRST FLOOR": 1, "1ST": 1, "1": 1,
	"SECOND FLOOR": 2, "2ND": 2, "2": 2,
	"THIRD FLOOR": 3, "3RD": 3, "3": 3,
	"FOURTH FLOOR": 4, "4TH": 4, "4": 4,
	"FIFTH FLOOR": 5, "5TH": 5, "5": 5,
	"LEVEL II": 2,
}

// ParseLevel resolves free-form floor text to an integer level.
// Unmapped text yields nil, never an error.
func ParseLevel(floorText string) *int {
	key := strings.ToUpper(strings.TrimSpace(floorText))
	if lvl, ok := floorLevels[key]; ok {
		return &lvl
	}
	return nil
}
