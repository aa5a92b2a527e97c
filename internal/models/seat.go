package models

import "time"

// Layout is a seating arrangement. Restaurants and locations each point at
// their current layout via current_layout_id.
type Layout struct {
	ID           int64     `json:"id"`
	RestaurantID int64     `json:"restaurant_id"`
	LocationID   *int64    `json:"location_id,omitempty"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SeatSection groups seats within a layout.
type SeatSection struct {
	ID       int64  `json:"id"`
	LayoutID int64  `json:"layout_id"`
	Name     string `json:"name"`
}

// Seat is a bookable unit inside a section.
type Seat struct {
	ID        int64  `json:"id"`
	SectionID int64  `json:"section_id"`
	Capacity  int    `json:"capacity"`
	Label     string `json:"label,omitempty"`
	Position  int    `json:"position"`
}

// EffectiveCapacity normalizes the seat's contribution: a missing, zero or
// negative capacity counts as one seat, never zero.
func (s *Seat) EffectiveCapacity() int {
	if s.Capacity < 1 {
		return 1
	}
	return s.Capacity
}
