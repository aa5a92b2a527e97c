package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tablero/internal/models"
)

// BlockedPeriodsInRange returns active blocks intersecting [from, to].
// With no location, only restaurant-wide blocks apply; with a location, both
// restaurant-wide and that location's blocks apply.
func (db *DB) BlockedPeriodsInRange(ctx context.Context, restaurantID int64, locationID *int64, from, to time.Time) ([]models.BlockedPeriod, error) {
	query := `
		SELECT id, restaurant_id, location_id, start_time, end_time, reason, is_active, created_at, updated_at
		FROM blocked_periods
		WHERE restaurant_id = ? AND is_active = 1
		  AND start_time <= ? AND end_time >= ?`
	args := []any{restaurantID, to, from}

	if locationID != nil {
		query += " AND (location_id IS NULL OR location_id = ?)"
		args = append(args, *locationID)
	} else {
		query += " AND location_id IS NULL"
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("blocked periods: %w", err)
	}
	defer rows.Close()

	var blocks []models.BlockedPeriod
	for rows.Next() {
		var b models.BlockedPeriod
		var locID sql.NullInt64
		var reason sql.NullString
		if err := rows.Scan(&b.ID, &b.RestaurantID, &locID, &b.StartTime, &b.EndTime, &reason, &b.IsActive, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan blocked period: %w", err)
		}
		if locID.Valid {
			b.LocationID = &locID.Int64
		}
		if reason.Valid {
			b.Reason = reason.String
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}
