package planner

import (
	"fmt"
	"strings"

	"tripplanner/internal/domain/models"
	"tripplanner/internal/utils"
)

const (
	minDurationDays = 1
	maxDurationDays = 30
	minBudget       = 100
)

// ValidateRequest returns human-readable problems with a trip request. An
// empty slice means the request may be handed to the engine.
func ValidateRequest(req models.TripRequest) []string {
	msgs := []string{}

	if strings.TrimSpace(req.Origin) == "" {
		msgs = append(msgs, "origin is required")
	}
	if req.DurationDays < minDurationDays || req.DurationDays > maxDurationDays {
		msgs = append(msgs, fmt.Sprintf("durationDays must be between %d and %d", minDurationDays, maxDurationDays))
	}
	if req.MaxBudget < minBudget {
		msgs = append(msgs, fmt.Sprintf("maxBudget must be at least %d", minBudget))
	}
	if len(req.TransportPreference) == 0 {
		msgs = append(msgs, "transportPreference must contain at least one mode")
	}
	if len(req.Interests) == 0 {
		msgs = append(msgs, "interests must contain at least one category")
	}
	if _, err := utils.ParseDate(req.DepartureDate); err != nil {
		msgs = append(msgs, "departureDate must be a valid YYYY-MM-DD date")
	}

	return msgs
}
