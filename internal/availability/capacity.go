package availability

import (
	"context"

	"tablero/internal/models"
)

// CapacityPath selects the hardcoded floor applied when neither seats nor a
// configured seating capacity yield a usable total. The two floors come from
// different call paths in the legacy system and stay distinct: slot listing
// and direct checks use 26, max-party queries use 18.
type CapacityPath int

const (
	CapacitySlots CapacityPath = iota
	CapacityMaxParty
)

func (p CapacityPath) defaultCapacity() int {
	if p == CapacityMaxParty {
		return models.DefaultCapacityMaxParty
	}
	return models.DefaultCapacitySlots
}

// totalCapacity resolves seating capacity with layered fallback and never
// returns less than 1: seat sum, then the admin-configured seating capacity,
// then the path's hardcoded floor. Seat lookup errors degrade to "no seats".
func (e *Engine) totalCapacity(ctx context.Context, rest *models.Restaurant, locationID *int64, path CapacityPath) int {
	var seats []models.Seat
	var err error
	if locationID != nil {
		seats, err = e.store.SeatsForLocation(ctx, *locationID)
	} else {
		seats, err = e.store.SeatsForRestaurant(ctx, rest.ID)
	}
	if err != nil {
		e.logger.Debug().Err(err).Int64("restaurant_id", rest.ID).Msg("seat lookup failed, using capacity fallback")
		seats = nil
	}

	total := 0
	for i := range seats {
		total += seats[i].EffectiveCapacity()
	}
	if total == 0 && rest.SeatingCapacity > 0 {
		total = rest.SeatingCapacity
	}
	if total <= 0 {
		total = path.defaultCapacity()
	}
	return total
}
