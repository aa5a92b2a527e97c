package database

import (
	"context"
	"fmt"
	"time"

	"tablero/internal/models"
)

// SpecialEventsOn returns events dated on the calendar day of date.
func (db *DB) SpecialEventsOn(ctx context.Context, restaurantID int64, date time.Time) ([]models.SpecialEvent, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, restaurant_id, name, event_date, event_start_time, event_end_time,
		       affects_availability, created_at, updated_at
		FROM special_events
		WHERE restaurant_id = ? AND date(event_date) = date(?)`,
		restaurantID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("special events: %w", err)
	}
	defer rows.Close()

	var events []models.SpecialEvent
	for rows.Next() {
		var e models.SpecialEvent
		if err := rows.Scan(&e.ID, &e.RestaurantID, &e.Name, &e.EventDate, &e.EventStartTime, &e.EventEndTime,
			&e.AffectsAvailability, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan special event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
