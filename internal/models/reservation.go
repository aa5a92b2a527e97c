package models

import "time"

// Reservation is an existing commitment the engine tests overlap against.
// The engine only ever reads a snapshot of these rows; it never mutates them.
type Reservation struct {
	ID              int64     `json:"id"`
	RestaurantID    int64     `json:"restaurant_id"`
	LocationID      *int64    `json:"location_id,omitempty"`
	GuestName       string    `json:"guest_name,omitempty"`
	StartTime       time.Time `json:"start_time"`
	PartySize       int       `json:"party_size"`
	Status          string    `json:"status"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Occupies reports whether the reservation still holds capacity.
func (r *Reservation) Occupies() bool {
	for _, s := range NonOccupyingStatuses {
		if r.Status == s {
			return false
		}
	}
	return true
}

// EffectiveDuration returns the reservation's own duration, or the supplied
// restaurant default when unset or invalid.
func (r *Reservation) EffectiveDuration(defaultMinutes int) time.Duration {
	if r.DurationMinutes != nil && *r.DurationMinutes > 0 {
		return time.Duration(*r.DurationMinutes) * time.Minute
	}
	return time.Duration(defaultMinutes) * time.Minute
}

// EffectiveEnd returns when the reservation releases its seats, before any
// turnaround buffer.
func (r *Reservation) EffectiveEnd(defaultMinutes int) time.Time {
	return r.StartTime.Add(r.EffectiveDuration(defaultMinutes))
}
