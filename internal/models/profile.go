package models

// UserProfile holds the static traveler attributes shared with every gate
// and responder call. Constructed once per session and treated as read-only
// by the whole pipeline.
type UserProfile struct {
	Name          string   `json:"name"`
	Age           int      `json:"age"`
	DepartureCity string   `json:"departure_city"`
	Budget        float64  `json:"budget"`
	TravelHistory []string `json:"travel_history"`
}
