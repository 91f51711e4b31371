package services

import (
	"bytes"
	"fmt"
	"strings"

	"tripplanner/internal/domain/models"
	"tripplanner/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders a generated itinerary as a printable PDF.
type DocsService struct {
	RequestID string
}

func (s DocsService) GenerateItineraryPDF(req models.TripRequest, resp models.TripResponse) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "docs", "generate_itinerary",
		fmt.Sprintf("origin=%s days=%d", utils.NormalizeCity(req.Origin), len(resp.TripDays)))
	return buildItineraryPDF(req, resp)
}

func buildItineraryPDF(req models.TripRequest, resp models.TripResponse) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Travel Itinerary", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRAVEL ITINERARY")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	header := []string{
		fmt.Sprintf("Origin        : %s", utils.TitleCity(req.Origin)),
		fmt.Sprintf("Departure     : %s", safe(req.DepartureDate, "-")),
		fmt.Sprintf("Duration      : %d day(s)", len(resp.TripDays)),
		fmt.Sprintf("Budget        : %s", utils.FormatBudget(req.MaxBudget)),
		fmt.Sprintf("Interests     : %s", safe(strings.Join(req.Interests, ", "), "-")),
	}
	for _, line := range header {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	for _, day := range resp.TripDays {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, fmt.Sprintf("Day %d - %s (%s)", day.Day, utils.TitleCity(day.City), day.Date))
		pdf.Ln(8)

		pdf.SetFont("Helvetica", "", 11)
		if day.Transport != nil {
			pdf.Cell(0, 6, fmt.Sprintf("  Travel: %s -> %s by %s (%.1fh, %s)",
				utils.TitleCity(day.Transport.From),
				utils.TitleCity(day.Transport.To),
				day.Transport.Option.Mode,
				day.Transport.Option.DurationHours,
				utils.FormatBudget(day.Transport.Option.Cost),
			))
			pdf.Ln(6)
		}
		if len(day.Activities) == 0 {
			pdf.Cell(0, 6, "  Free day - no scheduled activities")
			pdf.Ln(6)
		}
		for _, act := range day.Activities {
			pdf.Cell(0, 6, fmt.Sprintf("  %s  %s (%s, %s)",
				act.Time, act.Name, act.Category, utils.FormatBudget(act.Cost)))
			pdf.Ln(6)
		}

		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 6, fmt.Sprintf("  Daily cost: %s", utils.FormatBudget(day.DailyCost)))
		pdf.Ln(9)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total cost: %s", utils.FormatBudget(resp.TotalCost)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total travel time: %.1f hours", resp.TotalTravelTime))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Remaining budget: %s", utils.FormatBudget(resp.RemainingBudget)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ITINERARY_%s_%s.pdf",
		safeFilenamePart(utils.NormalizeCity(req.Origin)), safe(req.DepartureDate, "trip"))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "trip"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-")
	return replacer.Replace(s)
}
