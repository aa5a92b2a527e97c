package availability

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"tablero/internal/models"
)

// Engine answers availability questions over a read snapshot of restaurant
// configuration and reservations. It is stateless and advisory: it never
// writes, and nothing here prevents two concurrent callers from booking the
// same remaining seats. The booking write path re-validates under its own
// transaction.
type Engine struct {
	store  Store
	logger zerolog.Logger
}

// New creates an engine over the given store.
func New(store Store, logger *zerolog.Logger) *Engine {
	return &Engine{store: store, logger: logger.With().Str("component", "availability").Logger()}
}

// CheckRequest asks whether one exact date/time/party combination fits.
type CheckRequest struct {
	RestaurantID int64  `json:"restaurant_id"`
	Date         string `json:"date"` // YYYY-MM-DD
	Time         string `json:"time"` // H:MM or HH:MM
	PartySize    int    `json:"party_size"`
	LocationID   *int64 `json:"location_id,omitempty"`
}

// CheckResult reports the outcome of a CheckRequest. Success=false means the
// check itself failed; Available=false with Success=true means the slot is
// taken or closed, with Reason saying why.
type CheckResult struct {
	Success        bool     `json:"success"`
	Available      bool     `json:"available"`
	Reason         string   `json:"reason,omitempty"`
	AvailableSeats int      `json:"available_seats"`
	TotalSeats     int      `json:"total_seats"`
	MaxPartySize   int      `json:"max_party_size"`
	Errors         []string `json:"errors,omitempty"`
}

func checkFailure(err error) CheckResult {
	return CheckResult{Errors: []string{err.Error()}}
}

// CheckAvailability answers whether the exact slot can take the party.
// Gate order: operating calendar, party-size ceiling, remaining seats.
func (e *Engine) CheckAvailability(ctx context.Context, req CheckRequest) CheckResult {
	rest, err := e.store.RestaurantByID(ctx, req.RestaurantID)
	if err != nil {
		return checkFailure(fmt.Errorf("load restaurant: %w", err))
	}

	loc := LoadLocation(rest.Timezone)
	at, err := ResolveSlotTime(req.Date, req.Time, loc)
	if err != nil {
		return checkFailure(fmt.Errorf("resolve slot time: %w", err))
	}

	status, err := e.isOpen(ctx, rest, at, req.LocationID)
	if err != nil {
		return checkFailure(err)
	}
	if !status.Open {
		return CheckResult{Success: true, Reason: status.Reason, MaxPartySize: rest.MaxPartySize}
	}

	if rest.MaxPartySize > 0 && req.PartySize > rest.MaxPartySize {
		return CheckResult{
			Success:      true,
			Reason:       fmt.Sprintf("Party size %d exceeds restaurant maximum of %d", req.PartySize, rest.MaxPartySize),
			MaxPartySize: rest.MaxPartySize,
		}
	}

	total := e.totalCapacity(ctx, rest, req.LocationID, CapacitySlots)

	window := rest.OverlapWindowSpan()
	reservations, err := e.store.ReservationsInWindow(ctx, rest.ID, req.LocationID, at.Add(-window), at.Add(window))
	if err != nil {
		return checkFailure(fmt.Errorf("load reservations: %w", err))
	}

	remaining := total - seatsTaken(rest, at, reservations)
	if remaining < 0 {
		remaining = 0
	}

	if remaining < req.PartySize {
		return CheckResult{
			Success:        true,
			Reason:         fmt.Sprintf("Insufficient seats available (%d of %d free)", remaining, total),
			AvailableSeats: remaining,
			TotalSeats:     total,
			MaxPartySize:   rest.MaxPartySize,
		}
	}

	return CheckResult{
		Success:        true,
		Available:      true,
		AvailableSeats: remaining,
		TotalSeats:     total,
		MaxPartySize:   rest.MaxPartySize,
	}
}

// SlotsRequest asks for all bookable slots on a date.
type SlotsRequest struct {
	RestaurantID int64  `json:"restaurant_id"`
	Date         string `json:"date"`
	PartySize    int    `json:"party_size"`
	LocationID   *int64 `json:"location_id,omitempty"`
}

// SlotInfo is one bookable slot in a listing.
type SlotInfo struct {
	Time           string `json:"time"` // "11:30"
	AvailableSeats int    `json:"available_seats"`
	TotalSeats     int    `json:"total_seats"`
}

// SlotsResult always carries Success=true: the listing degrades to an empty
// slice with a message rather than failing, so the booking UI stays
// functional.
type SlotsResult struct {
	Success        bool       `json:"success"`
	Date           string     `json:"date"`
	AvailableSlots []SlotInfo `json:"available_slots"`
	Message        string     `json:"message,omitempty"`
}

func emptySlots(date, message string) SlotsResult {
	return SlotsResult{Success: true, Date: date, AvailableSlots: []SlotInfo{}, Message: message}
}

// AvailableTimeSlots lists every slot on the date that can take the party.
// Candidates step from opening time at the configured interval; the last
// candidate starts one interval before closing. Partial failures drop the
// affected slots, total failures produce an empty listing, and neither is
// surfaced as an error.
func (e *Engine) AvailableTimeSlots(ctx context.Context, req SlotsRequest) SlotsResult {
	rest, err := e.store.RestaurantByID(ctx, req.RestaurantID)
	if err != nil {
		e.logger.Error().Err(err).Int64("restaurant_id", req.RestaurantID).Msg("slot listing: restaurant lookup failed")
		return emptySlots(req.Date, "Unable to load restaurant configuration")
	}

	loc := LoadLocation(rest.Timezone)
	date := ResolveDate(req.Date, loc)
	dateStr := date.Format(models.DateFormat)

	hour, err := e.store.OperatingHourForDay(ctx, rest.ID, int(date.Weekday()))
	if err != nil {
		e.logger.Error().Err(err).Msg("slot listing: operating hours lookup failed")
		return emptySlots(dateStr, "Unable to load operating hours")
	}
	if hour == nil || hour.Closed {
		return emptySlots(dateStr, ReasonClosedDay)
	}

	if rest.MaxPartySize > 0 && req.PartySize > rest.MaxPartySize {
		return emptySlots(dateStr, fmt.Sprintf("Party size %d exceeds restaurant maximum of %d", req.PartySize, rest.MaxPartySize))
	}

	openAt, err := ClockOn(date, hour.OpenTime)
	if err != nil {
		e.logger.Error().Err(err).Msg("slot listing: bad open time")
		return emptySlots(dateStr, "Operating hours are misconfigured")
	}
	closeAt, err := ClockOn(date, hour.CloseTime)
	if err != nil {
		e.logger.Error().Err(err).Msg("slot listing: bad close time")
		return emptySlots(dateStr, "Operating hours are misconfigured")
	}

	interval := rest.SlotInterval()
	duration := rest.Duration()
	window := rest.OverlapWindowSpan()
	total := e.totalCapacity(ctx, rest, req.LocationID, CapacitySlots)

	// One fetch covers every candidate; per-slot work is then pure.
	blocks, err := e.store.BlockedPeriodsInRange(ctx, rest.ID, req.LocationID, openAt, closeAt.Add(duration))
	if err != nil {
		e.logger.Error().Err(err).Msg("slot listing: blocked periods lookup failed")
		return emptySlots(dateStr, "Unable to load blocked periods")
	}
	reservations, err := e.store.ReservationsInWindow(ctx, rest.ID, req.LocationID, openAt.Add(-window), closeAt.Add(window))
	if err != nil {
		e.logger.Error().Err(err).Msg("slot listing: reservations lookup failed")
		return emptySlots(dateStr, "Unable to load reservations")
	}

	lastStart := closeAt.Add(-interval)
	slots := make([]SlotInfo, 0)
	for cursor := openAt; !cursor.After(lastStart); cursor = cursor.Add(interval) {
		slotEnd := cursor.Add(duration)

		blocked := false
		for i := range blocks {
			if blocks[i].OverlapsRange(cursor, slotEnd) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}

		remaining := total - seatsTaken(rest, cursor, reservations)
		if remaining < 0 {
			remaining = 0
		}
		if remaining < req.PartySize {
			continue
		}

		slots = append(slots, SlotInfo{
			Time:           cursor.Format(models.TimeFormat),
			AvailableSeats: remaining,
			TotalSeats:     total,
		})
	}

	return SlotsResult{Success: true, Date: dateStr, AvailableSlots: slots}
}

// MaxPartyRequest asks for the largest party the slot can still take.
type MaxPartyRequest struct {
	RestaurantID       int64  `json:"restaurant_id"`
	Date               string `json:"date"`
	Time               string `json:"time"`
	RequestedPartySize int    `json:"requested_party_size"`
	LocationID         *int64 `json:"location_id,omitempty"`
}

// MaxPartyResult reports the remaining-seat ceiling for one slot.
type MaxPartyResult struct {
	Success      bool     `json:"success"`
	Available    bool     `json:"available"`
	MaxPartySize int      `json:"max_party_size"`
	TotalSeats   int      `json:"total_seats"`
	BookedSeats  int      `json:"booked_seats"`
	Errors       []string `json:"errors,omitempty"`
}

// MaxPartySize computes the ceiling for the exact slot: capacity minus booked
// seats, clamped to the restaurant's configured maximum. It deliberately uses
// the strict-intersection overlap with no turnaround buffer.
func (e *Engine) MaxPartySize(ctx context.Context, req MaxPartyRequest) MaxPartyResult {
	rest, err := e.store.RestaurantByID(ctx, req.RestaurantID)
	if err != nil {
		return MaxPartyResult{Errors: []string{fmt.Errorf("load restaurant: %w", err).Error()}}
	}

	loc := LoadLocation(rest.Timezone)
	at, err := ResolveSlotTime(req.Date, req.Time, loc)
	if err != nil {
		return MaxPartyResult{Errors: []string{fmt.Errorf("resolve slot time: %w", err).Error()}}
	}

	total := e.totalCapacity(ctx, rest, req.LocationID, CapacityMaxParty)

	window := rest.OverlapWindowSpan()
	reservations, err := e.store.ReservationsInWindow(ctx, rest.ID, req.LocationID, at.Add(-window), at.Add(window))
	if err != nil {
		return MaxPartyResult{Errors: []string{fmt.Errorf("load reservations: %w", err).Error()}}
	}

	booked := seatsTakenCeiling(rest, at, reservations)
	remaining := total - booked
	if remaining < 0 {
		remaining = 0
	}
	if rest.MaxPartySize > 0 && remaining > rest.MaxPartySize {
		remaining = rest.MaxPartySize
	}

	return MaxPartyResult{
		Success:      true,
		Available:    req.RequestedPartySize > 0 && remaining >= req.RequestedPartySize,
		MaxPartySize: remaining,
		TotalSeats:   total,
		BookedSeats:  booked,
	}
}

// firstAvailableSlot is used by range queries: the earliest bookable slot on
// a date, if any.
func (e *Engine) firstAvailableSlot(ctx context.Context, req SlotsRequest) (SlotInfo, bool) {
	res := e.AvailableTimeSlots(ctx, req)
	if len(res.AvailableSlots) == 0 {
		return SlotInfo{}, false
	}
	return res.AvailableSlots[0], true
}
