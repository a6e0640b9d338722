// Package curriculum holds the built-in unit catalog: the grammar points
// available for practice, grouped into teaching units.
package curriculum

import (
	"fmt"
	"strings"
)

// Unit groups related grammar points under a teaching theme.
type Unit struct {
	// Name is the short identifier, e.g. "unit-3".
	Name string

	// Title is the human-readable theme.
	Title string

	// GrammarPoints lists the practicable points in teaching order.
	GrammarPoints []string
}

// units is the built-in catalog, in teaching order.
var units = []Unit{
	{
		Name:  "unit-1",
		Title: "Talking About the Past",
		GrammarPoints: []string{
			"simple past",
			"past continuous",
			"used to",
		},
	},
	{
		Name:  "unit-2",
		Title: "Experiences and Results",
		GrammarPoints: []string{
			"present perfect",
			"present perfect vs simple past",
			"past perfect",
		},
	},
	{
		Name:  "unit-3",
		Title: "Plans and Predictions",
		GrammarPoints: []string{
			"going to and will",
			"present continuous for future",
			"first conditional",
		},
	},
	{
		Name:  "unit-4",
		Title: "Hypotheticals and Advice",
		GrammarPoints: []string{
			"second conditional",
			"modal verbs of advice",
			"wish and if only",
		},
	},
	{
		Name:  "unit-5",
		Title: "Describing and Comparing",
		GrammarPoints: []string{
			"comparatives and superlatives",
			"relative clauses",
			"articles",
		},
	},
	{
		Name:  "unit-6",
		Title: "Reporting and Passives",
		GrammarPoints: []string{
			"reported speech",
			"passive voice",
			"tag questions",
		},
	},
}

// Units returns the catalog in teaching order.
func Units() []Unit {
	out := make([]Unit, len(units))
	copy(out, units)
	return out
}

// FindUnit returns the unit with the given name, matched case-insensitively.
func FindUnit(name string) (*Unit, error) {
	for i := range units {
		if strings.EqualFold(units[i].Name, name) {
			u := units[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("unknown unit %q", name)
}

// AllGrammarPoints returns every grammar point across the catalog, in
// teaching order.
func AllGrammarPoints() []string {
	var points []string
	for _, u := range units {
		points = append(points, u.GrammarPoints...)
	}
	return points
}

// ValidGrammarPoint reports whether point is in the catalog, matched
// case-insensitively on the trimmed input.
func ValidGrammarPoint(point string) bool {
	point = strings.TrimSpace(point)
	for _, u := range units {
		for _, gp := range u.GrammarPoints {
			if strings.EqualFold(gp, point) {
				return true
			}
		}
	}
	return false
}

// CanonicalGrammarPoint returns the catalog spelling of point, or an error
// when the point is not in the catalog.
func CanonicalGrammarPoint(point string) (string, error) {
	trimmed := strings.TrimSpace(point)
	for _, u := range units {
		for _, gp := range u.GrammarPoints {
			if strings.EqualFold(gp, trimmed) {
				return gp, nil
			}
		}
	}
	return "", fmt.Errorf("unknown grammar point %q", point)
}
