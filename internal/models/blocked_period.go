package models

import "time"

// BlockedPeriod is an ad-hoc closure. A nil LocationID blocks the whole
// restaurant; a set one blocks only that location.
type BlockedPeriod struct {
	ID           int64     `json:"id"`
	RestaurantID int64     `json:"restaurant_id"`
	LocationID   *int64    `json:"location_id,omitempty"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Reason       string    `json:"reason"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Covers reports whether the instant falls inside the block, inclusive on
// both ends.
func (b *BlockedPeriod) Covers(t time.Time) bool {
	return !t.Before(b.StartTime) && !t.After(b.EndTime)
}

// OverlapsRange reports whether [start, end) intersects the block.
func (b *BlockedPeriod) OverlapsRange(start, end time.Time) bool {
	return start.Before(b.EndTime) && b.StartTime.Before(end)
}
