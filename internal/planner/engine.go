package planner

import (
	"math/rand"
	"strings"
	"time"

	"tripplanner/internal/domain/models"
	"tripplanner/internal/utils"
)

// Catalog is the read-only view of the travel catalog the engine plans
// against. A city with no POIs or no outgoing routes yields empty slices.
type Catalog interface {
	RoutesFrom(city string) []models.Route
	Pois(city string) []models.Poi
}

const (
	// transportBudgetShare caps a single relocation at this share of the
	// remaining budget.
	transportBudgetShare = 0.3
	// durationWeight makes one hour of travel weigh as much as ten units of
	// cost when ranking transport options.
	durationWeight = 10.0
	// explorationBonus dominates normal POI-score ranges so a reachable new
	// city beats staying put.
	explorationBonus = 50.0

	maxActivitiesPerDay     = 3
	stuckDaysBeforeFlexible = 2
	minTripDaysForFlexible  = 4
)

var allTransportModes = []string{"flight", "train", "bus", "car"}

// Engine generates one itinerary. It owns mutable run-state (visited sets,
// rotation cursors, the stuck counter), so construct a fresh Engine per
// request; sharing one across requests leaks selection state between users.
type Engine struct {
	Catalog Catalog
	Rand    *rand.Rand

	currentCity       string
	remainingBudget   float64
	totalTravelTime   float64
	visitedCities     map[string]bool
	visitedPois       map[string]bool
	daysInSameCity    int
	flexibleTransport bool
	rotation          map[string]int
}

func NewEngine(cat Catalog) *Engine {
	return &Engine{
		Catalog: cat,
		Rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Generate builds the full day-by-day itinerary for a validated request.
// It always emits exactly DurationDays days and never fails: when no city or
// POI qualifies, the day stays in place with whatever activities remain, and
// the remaining budget is allowed to go negative.
func (e *Engine) Generate(req models.TripRequest) models.TripResponse {
	e.reset(req)

	start, _ := utils.ParseDate(req.DepartureDate)
	days := make([]models.TripDay, 0, req.DurationDays)

	for d := 1; d <= req.DurationDays; d++ {
		modes := e.modesForDay(req)

		var transport *models.TripTransport
		if d > 1 {
			transport = e.relocate(modes, req.Interests)
		}
		if transport != nil {
			e.daysInSameCity = 0
			e.flexibleTransport = false
		} else {
			e.daysInSameCity++
		}

		activities := e.selectActivities(e.currentCity, req.Interests)

		activityCost := 0.0
		for _, a := range activities {
			activityCost += a.Cost
		}
		// Activity spend has no feasibility check; only transport is capped.
		e.remainingBudget -= activityCost

		dailyCost := activityCost
		if transport != nil {
			dailyCost += transport.Option.Cost
		}

		days = append(days, models.TripDay{
			Day:        d,
			City:       e.currentCity,
			Date:       utils.FormatDate(start.AddDate(0, 0, d-1)),
			Transport:  transport,
			Activities: activities,
			DailyCost:  dailyCost,
		})
	}

	return models.TripResponse{
		TripDays:        days,
		TotalCost:       req.MaxBudget - e.remainingBudget,
		TotalTravelTime: e.totalTravelTime,
		RemainingBudget: e.remainingBudget,
	}
}

func (e *Engine) reset(req models.TripRequest) {
	e.currentCity = strings.ToLower(strings.TrimSpace(req.Origin))
	e.remainingBudget = req.MaxBudget
	e.totalTravelTime = 0
	e.visitedCities = map[string]bool{e.currentCity: true}
	e.visitedPois = map[string]bool{}
	e.daysInSameCity = 0
	e.flexibleTransport = false
	e.rotation = map[string]int{}

	if e.Rand == nil {
		e.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
}

// modesForDay returns the transport-mode filter for the current day. When a
// long trip has been stuck in one city for two days, the filter widens to
// every mode for this day only; the one-shot flag keeps it from firing again
// until a relocation succeeds.
func (e *Engine) modesForDay(req models.TripRequest) map[string]bool {
	if req.DurationDays >= minTripDaysForFlexible &&
		e.daysInSameCity >= stuckDaysBeforeFlexible &&
		!e.flexibleTransport {
		e.flexibleTransport = true
		return modeSet(allTransportModes)
	}
	return modeSet(req.TransportPreference)
}

// relocate moves to the best-scoring reachable unvisited city, charging the
// budget and travel time. Returns nil when no candidate qualifies.
func (e *Engine) relocate(modes map[string]bool, interests []string) *models.TripTransport {
	best := e.pickDestination(e.findCandidates(e.currentCity, modes), interests)
	if best == nil {
		return nil
	}

	from := e.currentCity
	e.remainingBudget -= best.Transport.Cost
	e.totalTravelTime += best.Transport.DurationHours
	e.visitedCities[best.City] = true
	e.currentCity = best.City

	return &models.TripTransport{From: from, To: best.City, Option: best.Transport}
}

func modeSet(modes []string) map[string]bool {
	out := make(map[string]bool, len(modes))
	for _, m := range modes {
		m = strings.ToLower(strings.TrimSpace(m))
		if m != "" {
			out[m] = true
		}
	}
	return out
}
