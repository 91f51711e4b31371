package planner

import (
	"math/rand"
	"strings"

	"tripplanner/internal/domain/models"
)

// stubCatalog is an in-memory Catalog for tests.
type stubCatalog struct {
	routes map[string][]models.Route
	pois   map[string][]models.Poi
}

func (s stubCatalog) RoutesFrom(city string) []models.Route {
	return s.routes[strings.ToLower(strings.TrimSpace(city))]
}

func (s stubCatalog) Pois(city string) []models.Poi {
	return s.pois[strings.ToLower(strings.TrimSpace(city))]
}

func seededEngine(cat Catalog, seed int64) *Engine {
	return &Engine{Catalog: cat, Rand: rand.New(rand.NewSource(seed))}
}

// europeCatalog is a small paris/london/rome network used by most tests.
func europeCatalog() stubCatalog {
	return stubCatalog{
		routes: map[string][]models.Route{
			"paris": {
				{From: "paris", To: "london", Options: []models.TransportOption{
					{Mode: "train", DurationHours: 2.5, Cost: 90},
					{Mode: "flight", DurationHours: 1.25, Cost: 120},
				}},
				{From: "paris", To: "rome", Options: []models.TransportOption{
					{Mode: "flight", DurationHours: 2.1, Cost: 105},
				}},
			},
			"london": {
				{From: "london", To: "rome", Options: []models.TransportOption{
					{Mode: "flight", DurationHours: 2.6, Cost: 110},
				}},
			},
		},
		pois: map[string][]models.Poi{
			"paris": {
				{ID: 1, Name: "Louvre", Category: "museums", PopularityScore: 10},
				{ID: 2, Name: "Orsay", Category: "art", PopularityScore: 9},
				{ID: 3, Name: "Eiffel", Category: "architecture", PopularityScore: 10},
				{ID: 4, Name: "Marais Food Walk", Category: "food", PopularityScore: 7},
				{ID: 5, Name: "Luxembourg Gardens", Category: "nature", PopularityScore: 6},
			},
			"london": {
				{ID: 1, Name: "British Museum", Category: "museums", PopularityScore: 10},
				{ID: 2, Name: "Tate Modern", Category: "art", PopularityScore: 8},
				{ID: 3, Name: "Borough Market", Category: "food", PopularityScore: 8},
				{ID: 4, Name: "Tower of London", Category: "history", PopularityScore: 9},
			},
			"rome": {
				{ID: 1, Name: "Colosseum", Category: "history", PopularityScore: 10},
				{ID: 2, Name: "Vatican Museums", Category: "museums", PopularityScore: 10},
				{ID: 3, Name: "Pantheon", Category: "architecture", PopularityScore: 9},
			},
		},
	}
}

func validRequest() models.TripRequest {
	return models.TripRequest{
		Origin:              "paris",
		DurationDays:        3,
		MaxBudget:           1000,
		TransportPreference: []string{"train", "flight"},
		Interests:           []string{"museums"},
		DepartureDate:       "2024-06-01",
	}
}
