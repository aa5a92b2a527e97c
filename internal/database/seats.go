package database

import (
	"context"
	"database/sql"
	"fmt"

	"tablero/internal/models"
)

// SeatsForRestaurant loads the seats of the restaurant's current layout.
func (db *DB) SeatsForRestaurant(ctx context.Context, restaurantID int64) ([]models.Seat, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT s.id, s.section_id, s.capacity, s.label, s.position
		FROM seats s
		JOIN seat_sections sec ON sec.id = s.section_id
		JOIN layouts l ON l.id = sec.layout_id
		JOIN restaurants r ON r.current_layout_id = l.id
		WHERE r.id = ?
		ORDER BY s.position, s.id`,
		restaurantID,
	)
	if err != nil {
		return nil, fmt.Errorf("restaurant seats: %w", err)
	}
	defer rows.Close()
	return scanSeats(rows)
}

// SeatsForLocation loads the seats of the location's current layout.
func (db *DB) SeatsForLocation(ctx context.Context, locationID int64) ([]models.Seat, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT s.id, s.section_id, s.capacity, s.label, s.position
		FROM seats s
		JOIN seat_sections sec ON sec.id = s.section_id
		JOIN layouts l ON l.id = sec.layout_id
		JOIN locations loc ON loc.current_layout_id = l.id
		WHERE loc.id = ?
		ORDER BY s.position, s.id`,
		locationID,
	)
	if err != nil {
		return nil, fmt.Errorf("location seats: %w", err)
	}
	defer rows.Close()
	return scanSeats(rows)
}

func scanSeats(rows *sql.Rows) ([]models.Seat, error) {
	var seats []models.Seat
	for rows.Next() {
		var s models.Seat
		var label sql.NullString
		if err := rows.Scan(&s.ID, &s.SectionID, &s.Capacity, &label, &s.Position); err != nil {
			return nil, fmt.Errorf("scan seat: %w", err)
		}
		if label.Valid {
			s.Label = label.String
		}
		seats = append(seats, s)
	}
	return seats, rows.Err()
}
