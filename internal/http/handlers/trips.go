package handlers

import (
	"fmt"
	"net/http"

	intconfig "tripplanner/internal/config"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/http/middleware"
	"tripplanner/internal/planner"
	"tripplanner/internal/repositories"
	"tripplanner/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/trips/plan
func PlanTrip(c *gin.Context) {
	var req models.TripRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if msgs := planner.ValidateRequest(req); len(msgs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors":     msgs,
			"request_id": middleware.GetRequestID(c),
		})
		return
	}

	svc := newTripService(middleware.GetRequestID(c))
	c.JSON(http.StatusOK, svc.Plan(req))
}

// POST /api/trips/plan/pdf
func PlanTripPDF(c *gin.Context) {
	var req models.TripRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if msgs := planner.ValidateRequest(req); len(msgs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors":     msgs,
			"request_id": middleware.GetRequestID(c),
		})
		return
	}

	reqID := middleware.GetRequestID(c)
	resp := newTripService(reqID).Plan(req)

	docs := services.DocsService{RequestID: reqID}
	pdf, filename, err := docs.GenerateItineraryPDF(req, resp)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to render itinerary PDF", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

type saveTripRequest struct {
	Request  models.TripRequest  `json:"request"`
	Response models.TripResponse `json:"response"`
}

// POST /api/trips
func SaveTrip(c *gin.Context) {
	var body saveTripRequest
	if !BindJSONOrError(c, &body) {
		return
	}

	if msgs := planner.ValidateRequest(body.Request); len(msgs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors":     msgs,
			"request_id": middleware.GetRequestID(c),
		})
		return
	}

	svc := tripServiceWithRepo(c)
	saved, err := svc.SaveTrip(middleware.GetUserID(c), body.Request, body.Response)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// GET /api/trips
func ListTrips(c *gin.Context) {
	svc := tripServiceWithRepo(c)
	trips, err := svc.ListTrips(middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// GET /api/admin/trips lists every saved trip regardless of owner.
func AdminListTrips(c *gin.Context) {
	svc := tripServiceWithRepo(c)
	trips, err := svc.ListTrips(0)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// GET /api/trips/:id
func GetTrip(c *gin.Context) {
	svc := tripServiceWithRepo(c)
	trip, err := svc.GetTrip(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// DELETE /api/trips/:id
func DeleteTrip(c *gin.Context) {
	svc := tripServiceWithRepo(c)
	if err := svc.DeleteTrip(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// GET /api/trips/:id/recommendations
// Tips are best-effort: a failing recommendation backend degrades each city
// to a fallback message without touching the itinerary.
func GetTripRecommendations(c *gin.Context) {
	svc := tripServiceWithRepo(c)
	trip, err := svc.GetTrip(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	recs := svc.Recommendations(c.Request.Context(), trip.Response, trip.Request.Interests)
	c.JSON(http.StatusOK, gin.H{
		"tripId":          trip.ID,
		"recommendations": recs,
	})
}

func tripServiceWithRepo(c *gin.Context) services.TripService {
	svc := newTripService(middleware.GetRequestID(c))
	svc.Repo = repositories.TripRepository{DB: intconfig.DB}
	return svc
}
