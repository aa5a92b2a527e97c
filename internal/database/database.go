package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps sql.DB for the availability service. The engine treats everything
// here as a read-only snapshot; write endpoints live in the wider application.
type DB struct {
	*sql.DB
}

// New opens the database at path and runs migrations.
func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if err := createTables(db); err != nil {
		return nil, err
	}
	return &DB{db}, nil
}

func createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			timezone TEXT,
			max_party_size INTEGER NOT NULL DEFAULT 0,
			reservation_duration INTEGER NOT NULL DEFAULT 0,
			turnaround_time INTEGER NOT NULL DEFAULT 0,
			overlap_window INTEGER NOT NULL DEFAULT 0,
			time_slot_interval INTEGER NOT NULL DEFAULT 0,
			seating_capacity INTEGER NOT NULL DEFAULT 0,
			current_layout_id INTEGER,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS locations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			restaurant_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			current_layout_id INTEGER,
			is_active BOOLEAN NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (restaurant_id) REFERENCES restaurants(id)
		)`,

		`CREATE TABLE IF NOT EXISTS layouts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			restaurant_id INTEGER NOT NULL,
			location_id INTEGER,
			name TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (restaurant_id) REFERENCES restaurants(id),
			FOREIGN KEY (location_id) REFERENCES locations(id)
		)`,

		`CREATE TABLE IF NOT EXISTS seat_sections (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			layout_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			FOREIGN KEY (layout_id) REFERENCES layouts(id)
		)`,

		`CREATE TABLE IF NOT EXISTS seats (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			section_id INTEGER NOT NULL,
			capacity INTEGER NOT NULL DEFAULT 1,
			label TEXT,
			position INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY (section_id) REFERENCES seat_sections(id)
		)`,

		`CREATE TABLE IF NOT EXISTS operating_hours (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			restaurant_id INTEGER NOT NULL,
			day_of_week INTEGER NOT NULL,
			closed BOOLEAN NOT NULL DEFAULT 0,
			open_time TEXT NOT NULL DEFAULT '09:00',
			close_time TEXT NOT NULL DEFAULT '17:00',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (restaurant_id, day_of_week),
			FOREIGN KEY (restaurant_id) REFERENCES restaurants(id)
		)`,

		`CREATE TABLE IF NOT EXISTS blocked_periods (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			restaurant_id INTEGER NOT NULL,
			location_id INTEGER,
			start_time DATETIME NOT NULL,
			end_time DATETIME NOT NULL,
			reason TEXT,
			is_active BOOLEAN NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (restaurant_id) REFERENCES restaurants(id),
			FOREIGN KEY (location_id) REFERENCES locations(id)
		)`,

		`CREATE TABLE IF NOT EXISTS special_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			restaurant_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			event_date DATE NOT NULL,
			event_start_time TEXT NOT NULL,
			event_end_time TEXT NOT NULL,
			affects_availability BOOLEAN NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (restaurant_id) REFERENCES restaurants(id)
		)`,

		`CREATE TABLE IF NOT EXISTS reservations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			restaurant_id INTEGER NOT NULL,
			location_id INTEGER,
			guest_name TEXT,
			start_time DATETIME NOT NULL,
			party_size INTEGER NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			duration_minutes INTEGER,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (restaurant_id) REFERENCES restaurants(id),
			FOREIGN KEY (location_id) REFERENCES locations(id)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_reservations_window
			ON reservations(restaurant_id, start_time)`,
		`CREATE INDEX IF NOT EXISTS idx_blocked_periods_window
			ON blocked_periods(restaurant_id, start_time)`,
		`CREATE INDEX IF NOT EXISTS idx_operating_hours_day
			ON operating_hours(restaurant_id, day_of_week)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}
