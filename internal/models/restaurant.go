package models

import "time"

// Restaurant holds the per-tenant settings the availability engine reads.
// All rows reaching the engine are already scoped to one tenant.
type Restaurant struct {
	ID                  int64     `json:"id"`
	Name                string    `json:"name"`
	Timezone            string    `json:"timezone"` // IANA name, e.g. "America/New_York"
	MaxPartySize        int       `json:"max_party_size"`       // 0 = no limit
	ReservationDuration int       `json:"reservation_duration"` // minutes
	TurnaroundTime      int       `json:"turnaround_time"`      // minutes
	OverlapWindow       int       `json:"overlap_window"`       // minutes
	TimeSlotInterval    int       `json:"time_slot_interval"`   // minutes
	SeatingCapacity     int       `json:"seating_capacity"` // admin-configured fallback, 0 = unset
	CurrentLayoutID     *int64    `json:"current_layout_id,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// DurationMinutes returns the default reservation duration in minutes.
func (r *Restaurant) DurationMinutes() int {
	if r.ReservationDuration <= 0 {
		return DefaultReservationDurationMinutes
	}
	return r.ReservationDuration
}

// Duration returns the default reservation duration.
func (r *Restaurant) Duration() time.Duration {
	return time.Duration(r.DurationMinutes()) * time.Minute
}

// Turnaround returns the buffer added after each reservation.
func (r *Restaurant) Turnaround() time.Duration {
	if r.TurnaroundTime <= 0 {
		return time.Duration(DefaultTurnaroundMinutes) * time.Minute
	}
	return time.Duration(r.TurnaroundTime) * time.Minute
}

// OverlapWindowSpan returns the pre-filter window applied around a candidate
// slot when loading reservations.
func (r *Restaurant) OverlapWindowSpan() time.Duration {
	if r.OverlapWindow <= 0 {
		return time.Duration(DefaultOverlapWindowMinutes) * time.Minute
	}
	return time.Duration(r.OverlapWindow) * time.Minute
}

// SlotInterval returns the step between generated time slots.
func (r *Restaurant) SlotInterval() time.Duration {
	if r.TimeSlotInterval <= 0 {
		return time.Duration(DefaultSlotIntervalMinutes) * time.Minute
	}
	return time.Duration(r.TimeSlotInterval) * time.Minute
}

// Location is a physical area of a restaurant with its own seating layout.
type Location struct {
	ID              int64     `json:"id"`
	RestaurantID    int64     `json:"restaurant_id"`
	Name            string    `json:"name"`
	CurrentLayoutID *int64    `json:"current_layout_id,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
