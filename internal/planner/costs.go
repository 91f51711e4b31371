package planner

import (
	"math"
	"strings"
)

// activityBaseCost is the per-category base price for one activity.
var activityBaseCost = map[string]float64{
	"museums":       15,
	"art":           12,
	"history":       10,
	"architecture":  5,
	"food":          25,
	"shopping":      0,
	"nature":        0,
	"nightlife":     30,
	"entertainment": 20,
}

const defaultActivityBaseCost = 15

// estimateActivityCost returns the category base price perturbed by a
// uniform amount in [-5, +5), floored to a whole number and clamped at 0 so
// free categories stay free.
func (e *Engine) estimateActivityCost(category string) float64 {
	base, ok := activityBaseCost[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		base = defaultActivityBaseCost
	}

	cost := math.Floor(base + e.Rand.Float64()*10 - 5)
	if cost < 0 {
		cost = 0
	}
	return cost
}
