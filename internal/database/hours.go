package database

import (
	"context"
	"database/sql"
	"fmt"

	"tablero/internal/models"
)

// OperatingHourForDay returns the weekday's record, or (nil, nil) when the
// day has no record. Availability callers treat the latter as closed.
func (db *DB) OperatingHourForDay(ctx context.Context, restaurantID int64, dayOfWeek int) (*models.OperatingHour, error) {
	var h models.OperatingHour
	err := db.QueryRowContext(ctx, `
		SELECT id, restaurant_id, day_of_week, closed, open_time, close_time, created_at, updated_at
		FROM operating_hours
		WHERE restaurant_id = ? AND day_of_week = ?
		LIMIT 1`,
		restaurantID, dayOfWeek,
	).Scan(&h.ID, &h.RestaurantID, &h.DayOfWeek, &h.Closed, &h.OpenTime, &h.CloseTime, &h.CreatedAt, &h.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("operating hours day %d: %w", dayOfWeek, err)
	}
	return &h, nil
}

// OperatingHoursForWeek returns every stored weekday record, ordered by day.
// Missing days are left missing here; listing callers substitute the default
// window themselves.
func (db *DB) OperatingHoursForWeek(ctx context.Context, restaurantID int64) ([]models.OperatingHour, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, restaurant_id, day_of_week, closed, open_time, close_time, created_at, updated_at
		FROM operating_hours
		WHERE restaurant_id = ?
		ORDER BY day_of_week`,
		restaurantID,
	)
	if err != nil {
		return nil, fmt.Errorf("weekly hours: %w", err)
	}
	defer rows.Close()

	var hours []models.OperatingHour
	for rows.Next() {
		var h models.OperatingHour
		if err := rows.Scan(&h.ID, &h.RestaurantID, &h.DayOfWeek, &h.Closed, &h.OpenTime, &h.CloseTime, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan operating hour: %w", err)
		}
		hours = append(hours, h)
	}
	return hours, rows.Err()
}
