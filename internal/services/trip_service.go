package services

import (
	"context"
	"fmt"
	"strings"

	"tripplanner/internal/domain/models"
	"tripplanner/internal/planner"
	"tripplanner/internal/repositories"
	"tripplanner/internal/utils"
)

// TripService drives itinerary generation and persistence. Each Plan call
// builds a fresh engine so rotation/visited state never crosses requests.
type TripService struct {
	Catalog   planner.Catalog
	Repo      repositories.TripRepository
	Recs      RecsService
	RequestID string

	// NewEngine lets tests inject a seeded engine.
	NewEngine func(planner.Catalog) *planner.Engine
}

func (s TripService) Plan(req models.TripRequest) models.TripResponse {
	utils.LogEvent(s.RequestID, "trip", "plan",
		fmt.Sprintf("origin=%s days=%d budget=%s", utils.NormalizeCity(req.Origin), req.DurationDays, utils.FormatMoney(req.MaxBudget)))

	eng := s.engine()
	return eng.Generate(req)
}

func (s TripService) SaveTrip(ownerID int64, req models.TripRequest, resp models.TripResponse) (models.SavedTrip, error) {
	trip := models.SavedTrip{
		OwnerID:      ownerID,
		Origin:       utils.NormalizeCity(req.Origin),
		DurationDays: req.DurationDays,
		MaxBudget:    req.MaxBudget,
		Request:      req,
		Response:     resp,
	}

	saved, err := s.Repo.Save(trip)
	if err != nil {
		return saved, err
	}
	utils.LogEvent(s.RequestID, "trip", "save", "trip_id="+saved.ID)
	return saved, nil
}

func (s TripService) ListTrips(ownerID int64) ([]models.SavedTrip, error) {
	return s.Repo.List(ownerID)
}

func (s TripService) GetTrip(id string) (models.SavedTrip, error) {
	return s.Repo.GetByID(id)
}

func (s TripService) DeleteTrip(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "trip", "delete", "trip_id="+strings.TrimSpace(id))
	return nil
}

// Recommendations produces one local-tips entry per distinct city in the
// itinerary, in first-visit order. Failures degrade per city and never block
// the trip itself.
func (s TripService) Recommendations(ctx context.Context, resp models.TripResponse, interests []string) []models.CityRecommendation {
	seen := map[string]bool{}
	out := []models.CityRecommendation{}

	for _, day := range resp.TripDays {
		city := utils.NormalizeCity(day.City)
		if city == "" || seen[city] {
			continue
		}
		seen[city] = true
		out = append(out, models.CityRecommendation{
			City: city,
			Tips: s.Recs.CityTips(ctx, city, interests),
		})
	}
	return out
}

func (s TripService) engine() *planner.Engine {
	if s.NewEngine != nil {
		return s.NewEngine(s.Catalog)
	}
	return planner.NewEngine(s.Catalog)
}
