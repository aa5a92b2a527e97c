package models

import "time"

// SpecialEvent is a dated event. Only events with AffectsAvailability set
// gate bookings; the rest are informational.
type SpecialEvent struct {
	ID                  int64     `json:"id"`
	RestaurantID        int64     `json:"restaurant_id"`
	Name                string    `json:"name"`
	EventDate           time.Time `json:"event_date"`
	EventStartTime      string    `json:"event_start_time"` // "18:00"
	EventEndTime        string    `json:"event_end_time"`   // "23:00"
	AffectsAvailability bool      `json:"affects_availability"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
