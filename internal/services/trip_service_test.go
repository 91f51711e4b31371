package services

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"tripplanner/internal/domain/models"
	"tripplanner/internal/planner"
)

type fakeCatalog struct {
	routes map[string][]models.Route
	pois   map[string][]models.Poi
}

func (f fakeCatalog) RoutesFrom(city string) []models.Route {
	return f.routes[strings.ToLower(strings.TrimSpace(city))]
}

func (f fakeCatalog) Pois(city string) []models.Poi {
	return f.pois[strings.ToLower(strings.TrimSpace(city))]
}

func testCatalog() fakeCatalog {
	return fakeCatalog{
		routes: map[string][]models.Route{
			"paris": {
				{From: "paris", To: "london", Options: []models.TransportOption{
					{Mode: "train", DurationHours: 2.5, Cost: 90},
				}},
			},
		},
		pois: map[string][]models.Poi{
			"paris": {
				{ID: 1, Name: "Louvre", Category: "museums", PopularityScore: 10},
				{ID: 2, Name: "Orsay", Category: "art", PopularityScore: 9},
			},
			"london": {
				{ID: 1, Name: "British Museum", Category: "museums", PopularityScore: 10},
			},
		},
	}
}

func seededService(cat planner.Catalog) TripService {
	return TripService{
		Catalog:   cat,
		RequestID: "test",
		NewEngine: func(c planner.Catalog) *planner.Engine {
			return &planner.Engine{Catalog: c, Rand: rand.New(rand.NewSource(42))}
		},
	}
}

func TestTripServicePlanProducesFullTrip(t *testing.T) {
	svc := seededService(testCatalog())

	req := models.TripRequest{
		Origin:              "paris",
		DurationDays:        3,
		MaxBudget:           1000,
		TransportPreference: []string{"train"},
		Interests:           []string{"museums"},
		DepartureDate:       "2024-06-01",
	}

	resp := svc.Plan(req)
	if len(resp.TripDays) != req.DurationDays {
		t.Fatalf("expected %d days, got %d", req.DurationDays, len(resp.TripDays))
	}
	if got := req.MaxBudget - resp.RemainingBudget; got != resp.TotalCost {
		t.Fatalf("cost identity broken: %v vs %v", got, resp.TotalCost)
	}
}

func TestTripServiceRecommendationsOnePerCity(t *testing.T) {
	svc := seededService(testCatalog())

	resp := models.TripResponse{
		TripDays: []models.TripDay{
			{Day: 1, City: "paris"},
			{Day: 2, City: "paris"},
			{Day: 3, City: "london"},
		},
	}

	recs := svc.Recommendations(context.Background(), resp, []string{"museums"})
	if len(recs) != 2 {
		t.Fatalf("expected one entry per distinct city, got %d", len(recs))
	}
	if recs[0].City != "paris" || recs[1].City != "london" {
		t.Fatalf("cities out of first-visit order: %+v", recs)
	}
	// The recs backend is unconfigured here, so each city degrades to the
	// fallback rather than failing the call.
	for _, rec := range recs {
		if rec.Tips != FallbackTips {
			t.Fatalf("expected fallback tips, got %q", rec.Tips)
		}
	}
}
