package models

import "time"

// OperatingHour describes one weekday's opening window for a restaurant.
// There is expected to be exactly one record per (restaurant, day_of_week).
type OperatingHour struct {
	ID           int64     `json:"id"`
	RestaurantID int64     `json:"restaurant_id"`
	DayOfWeek    int       `json:"day_of_week"` // 0=Sunday .. 6=Saturday
	Closed       bool      `json:"closed"`
	OpenTime     string    `json:"open_time"`  // "09:00"
	CloseTime    string    `json:"close_time"` // "17:00"
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DefaultOperatingHour returns the substitute window used by read-only hours
// listings when a weekday has no record.
func DefaultOperatingHour(restaurantID int64, dayOfWeek int) OperatingHour {
	return OperatingHour{
		RestaurantID: restaurantID,
		DayOfWeek:    dayOfWeek,
		OpenTime:     DefaultOpenTime,
		CloseTime:    DefaultCloseTime,
	}
}
