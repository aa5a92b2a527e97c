package database

import (
	"context"
	"database/sql"
	"fmt"

	"tablero/internal/models"
)

// RestaurantByID loads a restaurant's settings row.
func (db *DB) RestaurantByID(ctx context.Context, id int64) (*models.Restaurant, error) {
	var r models.Restaurant
	var timezone sql.NullString
	var currentLayoutID sql.NullInt64
	err := db.QueryRowContext(ctx, `
		SELECT id, name, timezone, max_party_size, reservation_duration,
		       turnaround_time, overlap_window, time_slot_interval,
		       seating_capacity, current_layout_id, created_at, updated_at
		FROM restaurants
		WHERE id = ?`,
		id,
	).Scan(
		&r.ID, &r.Name, &timezone, &r.MaxPartySize, &r.ReservationDuration,
		&r.TurnaroundTime, &r.OverlapWindow, &r.TimeSlotInterval,
		&r.SeatingCapacity, &currentLayoutID, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("restaurant %d: %w", id, err)
	}
	if timezone.Valid {
		r.Timezone = timezone.String
	}
	if currentLayoutID.Valid {
		r.CurrentLayoutID = &currentLayoutID.Int64
	}
	return &r, nil
}

// ActiveLocations lists a restaurant's active locations.
func (db *DB) ActiveLocations(ctx context.Context, restaurantID int64) ([]models.Location, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, restaurant_id, name, current_layout_id, is_active, created_at, updated_at
		FROM locations
		WHERE restaurant_id = ? AND is_active = 1
		ORDER BY id`,
		restaurantID,
	)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var locations []models.Location
	for rows.Next() {
		var l models.Location
		var layoutID sql.NullInt64
		if err := rows.Scan(&l.ID, &l.RestaurantID, &l.Name, &layoutID, &l.IsActive, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		if layoutID.Valid {
			l.CurrentLayoutID = &layoutID.Int64
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}
