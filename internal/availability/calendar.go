package availability

import (
	"context"
	"fmt"
	"time"

	"tablero/internal/models"
)

// OpenStatus is the operating-calendar verdict for one instant.
type OpenStatus struct {
	Open   bool
	Reason string
}

// Closure reasons surfaced to callers verbatim.
const (
	ReasonClosedDay  = "Restaurant is closed on this day"
	ReasonClosedTime = "Restaurant is closed at this time"
)

// isOpen resolves whether the restaurant accepts bookings at the instant.
// Gate order: weekly hours absent/closed, blocked periods, open/close window,
// availability-affecting special events. The first failing gate wins.
func (e *Engine) isOpen(ctx context.Context, rest *models.Restaurant, at time.Time, locationID *int64) (OpenStatus, error) {
	hour, err := e.store.OperatingHourForDay(ctx, rest.ID, int(at.Weekday()))
	if err != nil {
		return OpenStatus{}, fmt.Errorf("load operating hours: %w", err)
	}
	if hour == nil || hour.Closed {
		return OpenStatus{Reason: ReasonClosedDay}, nil
	}

	blocks, err := e.store.BlockedPeriodsInRange(ctx, rest.ID, locationID, at, at)
	if err != nil {
		return OpenStatus{}, fmt.Errorf("load blocked periods: %w", err)
	}
	for i := range blocks {
		if blocks[i].Covers(at) {
			return OpenStatus{Reason: "Time is blocked: " + blocks[i].Reason}, nil
		}
	}

	// open_time/close_time are wall-clock only; pin everything onto the
	// request's date before comparing.
	openAt, err := ClockOn(at, hour.OpenTime)
	if err != nil {
		return OpenStatus{}, fmt.Errorf("parse open time: %w", err)
	}
	closeAt, err := ClockOn(at, hour.CloseTime)
	if err != nil {
		return OpenStatus{}, fmt.Errorf("parse close time: %w", err)
	}
	if at.Before(openAt) || at.After(closeAt) {
		return OpenStatus{Reason: ReasonClosedTime}, nil
	}

	events, err := e.store.SpecialEventsOn(ctx, rest.ID, at)
	if err != nil {
		return OpenStatus{}, fmt.Errorf("load special events: %w", err)
	}
	for i := range events {
		ev := &events[i]
		if !ev.AffectsAvailability {
			continue
		}
		start, serr := ClockOn(at, ev.EventStartTime)
		end, eerr := ClockOn(at, ev.EventEndTime)
		if serr != nil || eerr != nil {
			e.logger.Debug().Int64("event_id", ev.ID).Msg("skipping event with malformed times")
			continue
		}
		if !at.Before(start) && !at.After(end) {
			return OpenStatus{Reason: "Special event: " + ev.Name}, nil
		}
	}

	return OpenStatus{Open: true}, nil
}
