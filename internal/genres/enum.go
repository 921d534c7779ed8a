package genres

import (
	"sort"
	"strings"
)

const (
	Alternative    = "Alternative"
	Blues          = "Blues"
	Classical      = "Classical"
	Country        = "Country"
	Electronic     = "Electronic"
	Folk           = "Folk"
	Funk           = "Funk"
	HipHop         = "Hip-Hop"
	HeavyMetal     = "Heavy Metal"
	Instrumental   = "Instrumental"
	Jazz           = "Jazz"
	MusicalTheatre = "Musical Theatre"
	Pop            = "Pop"
	Punk           = "Punk"
	RandB          = "R&B"
	Reggae         = "Reggae"
	RockNRoll      = "Rock n Roll"
	Soul           = "Soul"
	Other          = "Other"
)

// All is the fixed enumeration in display order. It is the only source of
// genre rows.
var All = []string{
	Alternative, Blues, Classical, Country, Electronic, Folk, Funk, HipHop,
	HeavyMetal, Instrumental, Jazz, MusicalTheatre, Pop, Punk, RandB, Reggae,
	RockNRoll, Soul, Other,
}

var position = func() map[string]int {
	m := make(map[string]int, len(All))
	for i, name := range All {
		m[name] = i
	}
	return m
}()

// IsValid reports whether name is part of the enumeration (exact match).
func IsValid(name string) bool {
	_, ok := position[name]
	return ok
}

// Normalize trims names and drops duplicates and blanks, keeping the first
// occurrence's order.
func Normalize(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// Invalid returns the names that are not part of the enumeration.
func Invalid(names []string) []string {
	var bad []string
	for _, n := range names {
		if !IsValid(n) {
			bad = append(bad, n)
		}
	}
	return bad
}

// Sort orders names by their position in All, in place.
func Sort(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return position[names[i]] < position[names[j]]
	})
}
