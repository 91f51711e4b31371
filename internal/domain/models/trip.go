package models

// TransportOption is one way of getting between two cities. Cost is in the
// same unit as the trip budget.
type TransportOption struct {
	Mode          string  `json:"mode"`
	DurationHours float64 `json:"durationHours"`
	Cost          float64 `json:"cost"`
	DepartureTime string  `json:"departureTime,omitempty"`
	ArrivalTime   string  `json:"arrivalTime,omitempty"`
}

// Route is a directional city pair with its transport options. The reverse
// pair is a separate route; its absence means no direct return.
type Route struct {
	From    string            `json:"from"`
	To      string            `json:"to"`
	Options []TransportOption `json:"options"`
}

// Poi is a visitable attraction belonging to exactly one city.
// ID is unique within that city's list only.
type Poi struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	PopularityScore float64 `json:"popularityScore"`
	Description     string  `json:"description,omitempty"`
	Duration        string  `json:"duration,omitempty"`
}

type CityMeta struct {
	Name        string `json:"name"`
	Country     string `json:"country"`
	Description string `json:"description,omitempty"`
}

type TripRequest struct {
	Origin              string   `json:"origin"`
	DurationDays        int      `json:"durationDays"`
	MaxBudget           float64  `json:"maxBudget"`
	TransportPreference []string `json:"transportPreference"`
	Interests           []string `json:"interests"`
	DepartureDate       string   `json:"departureDate"`
}

type Activity struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Time     string  `json:"time"`
	Duration string  `json:"duration,omitempty"`
	Cost     float64 `json:"cost"`
}

type TripTransport struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Option TransportOption `json:"option"`
}

// TripDay is one itinerary day. Transport is set only when the day starts
// with a relocation from the previous day's city.
type TripDay struct {
	Day        int            `json:"day"`
	City       string         `json:"city"`
	Date       string         `json:"date"`
	Transport  *TripTransport `json:"transport,omitempty"`
	Activities []Activity     `json:"activities"`
	DailyCost  float64        `json:"dailyCost"`
}

// TripResponse invariant: TotalCost == MaxBudget - RemainingBudget.
// RemainingBudget may go negative; an over-budget trip is still a trip.
type TripResponse struct {
	TripDays        []TripDay `json:"tripDays"`
	TotalCost       float64   `json:"totalCost"`
	TotalTravelTime float64   `json:"totalTravelTime"`
	RemainingBudget float64   `json:"remainingBudget"`
}

type CityRecommendation struct {
	City string `json:"city"`
	Tips string `json:"tips"`
}

// SavedTrip keeps the original request next to the generated response so
// features like per-city recommendations still know the traveler's
// interests after the fact.
type SavedTrip struct {
	ID           string       `json:"id"`
	OwnerID      int64        `json:"ownerId,omitempty"`
	Origin       string       `json:"origin"`
	DurationDays int          `json:"durationDays"`
	MaxBudget    float64      `json:"maxBudget"`
	Request      TripRequest  `json:"request"`
	Response     TripResponse `json:"response"`
	CreatedAt    string       `json:"createdAt"`
}
