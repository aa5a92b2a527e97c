package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"tablero/internal/models"
)

// ReservationsInWindow returns occupying reservations starting within
// [from, to]. Non-occupying statuses are filtered at the source. With no
// location, only restaurant-wide reservations apply; with a location, only
// that location's.
func (db *DB) ReservationsInWindow(ctx context.Context, restaurantID int64, locationID *int64, from, to time.Time) ([]models.Reservation, error) {
	placeholders := make([]string, len(models.NonOccupyingStatuses))
	args := []any{restaurantID, from, to}
	for i, s := range models.NonOccupyingStatuses {
		placeholders[i] = "?"
		args = append(args, s)
	}

	query := fmt.Sprintf(`
		SELECT id, restaurant_id, location_id, guest_name, start_time, party_size,
		       status, duration_minutes, created_at, updated_at
		FROM reservations
		WHERE restaurant_id = ?
		  AND start_time >= ? AND start_time <= ?
		  AND status NOT IN (%s)`, strings.Join(placeholders, ", "))

	if locationID != nil {
		query += " AND location_id = ?"
		args = append(args, *locationID)
	} else {
		query += " AND location_id IS NULL"
	}
	query += " ORDER BY start_time"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("reservations in window: %w", err)
	}
	defer rows.Close()

	var reservations []models.Reservation
	for rows.Next() {
		var r models.Reservation
		var locID, duration sql.NullInt64
		var guest sql.NullString
		if err := rows.Scan(&r.ID, &r.RestaurantID, &locID, &guest, &r.StartTime, &r.PartySize,
			&r.Status, &duration, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		if locID.Valid {
			r.LocationID = &locID.Int64
		}
		if guest.Valid {
			r.GuestName = guest.String
		}
		if duration.Valid {
			d := int(duration.Int64)
			r.DurationMinutes = &d
		}
		reservations = append(reservations, r)
	}
	return reservations, rows.Err()
}
