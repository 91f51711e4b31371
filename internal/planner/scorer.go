package planner

import (
	"math"
	"strings"
)

// pickDestination ranks candidate cities by how well their POIs align with
// the requested interests, plus a flat exploration bonus. Ties keep the
// first candidate encountered; an empty candidate list yields nil.
func (e *Engine) pickDestination(candidates []candidate, interests []string) *candidate {
	var best *candidate
	bestScore := math.Inf(-1)

	for i := range candidates {
		score := e.cityInterestScore(candidates[i].City, interests) + explorationBonus
		if score > bestScore {
			bestScore = score
			best = &candidates[i]
		}
	}
	return best
}

func (e *Engine) cityInterestScore(city string, interests []string) float64 {
	total := 0.0
	for _, poi := range e.Catalog.Pois(city) {
		if matchesInterest(poi.Category, interests) {
			total += popularityOrDefault(poi.PopularityScore)
		}
	}
	return total
}

// matchesInterest does a case-insensitive substring match in both
// directions, so "museums" matches a "museum" category and vice versa.
func matchesInterest(category string, interests []string) bool {
	cat := strings.ToLower(strings.TrimSpace(category))
	if cat == "" {
		return false
	}
	for _, interest := range interests {
		in := strings.ToLower(strings.TrimSpace(interest))
		if in == "" {
			continue
		}
		if strings.Contains(cat, in) || strings.Contains(in, cat) {
			return true
		}
	}
	return false
}

func popularityOrDefault(score float64) float64 {
	if score <= 0 {
		return 1
	}
	return score
}
