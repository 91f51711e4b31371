package planner

import (
	"math"
	"strings"

	"tripplanner/internal/domain/models"
)

type candidate struct {
	City      string
	Transport models.TransportOption
}

// findCandidates enumerates reachable unvisited cities from the current one,
// keeping a single best transport option per destination. An option survives
// only if its mode is allowed and its cost stays within the transport share
// of the remaining budget.
func (e *Engine) findCandidates(currentCity string, modes map[string]bool) []candidate {
	maxCost := transportBudgetShare * e.remainingBudget

	out := []candidate{}
	for _, route := range e.Catalog.RoutesFrom(currentCity) {
		to := strings.ToLower(strings.TrimSpace(route.To))
		if to == "" || e.visitedCities[to] {
			continue
		}
		best, ok := bestOption(route.Options, modes, maxCost)
		if !ok {
			continue
		}
		out = append(out, candidate{City: to, Transport: best})
	}
	return out
}

// bestOption picks the cheapest-weighted surviving option. An hour of travel
// counts as much as ten units of cost, so short hops win over cheap crawls.
func bestOption(options []models.TransportOption, modes map[string]bool, maxCost float64) (models.TransportOption, bool) {
	var best models.TransportOption
	bestScore := math.MaxFloat64
	found := false

	for _, opt := range options {
		if !modes[strings.ToLower(strings.TrimSpace(opt.Mode))] {
			continue
		}
		if opt.Cost > maxCost {
			continue
		}
		score := opt.Cost + opt.DurationHours*durationWeight
		if score < bestScore {
			best = opt
			bestScore = score
			found = true
		}
	}
	return best, found
}
