package availability

import (
	"context"
	"time"

	"tablero/internal/models"
)

// Store supplies the engine's read-only snapshot of configuration and
// reservations. All rows are expected to be pre-scoped to one tenant.
//
// Location filtering follows two deliberately different rules:
//   - blocked periods: nil locationID matches restaurant-wide blocks only;
//     a set locationID matches restaurant-wide OR that location's blocks.
//   - reservations: nil locationID matches restaurant-wide reservations only;
//     a set locationID matches that location's reservations only.
type Store interface {
	RestaurantByID(ctx context.Context, id int64) (*models.Restaurant, error)

	// OperatingHourForDay returns (nil, nil) when the weekday has no record.
	OperatingHourForDay(ctx context.Context, restaurantID int64, dayOfWeek int) (*models.OperatingHour, error)

	// BlockedPeriodsInRange returns active blocks intersecting [from, to].
	BlockedPeriodsInRange(ctx context.Context, restaurantID int64, locationID *int64, from, to time.Time) ([]models.BlockedPeriod, error)

	// SpecialEventsOn returns events dated on the calendar day of date.
	SpecialEventsOn(ctx context.Context, restaurantID int64, date time.Time) ([]models.SpecialEvent, error)

	// SeatsForRestaurant walks restaurant -> current layout -> sections -> seats.
	SeatsForRestaurant(ctx context.Context, restaurantID int64) ([]models.Seat, error)

	// SeatsForLocation walks location -> current layout -> sections -> seats.
	SeatsForLocation(ctx context.Context, locationID int64) ([]models.Seat, error)

	// ReservationsInWindow returns occupying reservations starting within
	// [from, to]; non-occupying statuses are filtered out at the source.
	ReservationsInWindow(ctx context.Context, restaurantID int64, locationID *int64, from, to time.Time) ([]models.Reservation, error)
}
