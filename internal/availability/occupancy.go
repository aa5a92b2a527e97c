package availability

import (
	"context"
	"fmt"

	"tablero/internal/models"
)

// IntervalOccupancy is seats booked against capacity for one interval.
type IntervalOccupancy struct {
	Time           string `json:"time"`
	BookedSeats    int    `json:"booked_seats"`
	TotalSeats     int    `json:"total_seats"`
	AvailableSeats int    `json:"available_seats"`
}

// DayOccupancy reports booked-versus-capacity for every interval of the
// date's operating window. It makes no availability decision; a closed day
// yields an empty slice.
func (e *Engine) DayOccupancy(ctx context.Context, restaurantID int64, dateStr string, locationID *int64) ([]IntervalOccupancy, error) {
	rest, err := e.store.RestaurantByID(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("load restaurant: %w", err)
	}

	loc := LoadLocation(rest.Timezone)
	date := ResolveDate(dateStr, loc)

	hour, err := e.store.OperatingHourForDay(ctx, rest.ID, int(date.Weekday()))
	if err != nil {
		return nil, fmt.Errorf("load operating hours: %w", err)
	}
	if hour == nil || hour.Closed {
		return []IntervalOccupancy{}, nil
	}

	openAt, err := ClockOn(date, hour.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("parse open time: %w", err)
	}
	closeAt, err := ClockOn(date, hour.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("parse close time: %w", err)
	}

	interval := rest.SlotInterval()
	window := rest.OverlapWindowSpan()
	total := e.totalCapacity(ctx, rest, locationID, CapacitySlots)

	reservations, err := e.store.ReservationsInWindow(ctx, rest.ID, locationID, openAt.Add(-window), closeAt.Add(window))
	if err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}

	occupancy := make([]IntervalOccupancy, 0)
	for cursor := openAt; !cursor.After(closeAt.Add(-interval)); cursor = cursor.Add(interval) {
		booked := seatsTaken(rest, cursor, reservations)
		remaining := total - booked
		if remaining < 0 {
			remaining = 0
		}
		occupancy = append(occupancy, IntervalOccupancy{
			Time:           cursor.Format(models.TimeFormat),
			BookedSeats:    booked,
			TotalSeats:     total,
			AvailableSeats: remaining,
		})
	}
	return occupancy, nil
}
