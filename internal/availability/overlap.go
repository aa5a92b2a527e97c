package availability

import (
	"time"

	"tablero/internal/models"
)

// seatsTaken sums party sizes of reservations whose occupied window touches
// the candidate slot [slotStart, slotStart+duration]. The turnaround buffer
// extends each reservation's window, not the candidate's. Intervals compare
// closed on both ends.
//
// A snapshot containing a reservation without a start time cannot be placed
// on the timeline; the whole computation then degrades to the coarse sum so
// the request still gets an answer (an overcount, never an undercount).
func seatsTaken(rest *models.Restaurant, slotStart time.Time, reservations []models.Reservation) int {
	for i := range reservations {
		if reservations[i].StartTime.IsZero() {
			return seatsTakenCoarse(reservations)
		}
	}

	slotEnd := slotStart.Add(rest.Duration())
	turnaround := rest.Turnaround()
	defaultMinutes := rest.DurationMinutes()

	taken := 0
	for i := range reservations {
		r := &reservations[i]
		if !r.Occupies() {
			continue
		}
		effectiveEnd := r.EffectiveEnd(defaultMinutes).Add(turnaround)
		if !r.StartTime.After(slotEnd) && !effectiveEnd.Before(slotStart) {
			taken += r.PartySize
		}
	}
	return taken
}

// seatsTakenCoarse ignores durations entirely and charges every occupying
// reservation in the pre-filtered window against the slot.
func seatsTakenCoarse(reservations []models.Reservation) int {
	taken := 0
	for i := range reservations {
		if reservations[i].Occupies() {
			taken += reservations[i].PartySize
		}
	}
	return taken
}

// seatsTakenCeiling is the coarser overlap used by max-party queries: strict
// interval intersection with no turnaround buffer. It answers "what is the
// ceiling right now" rather than "does this request fit with buffer room".
func seatsTakenCeiling(rest *models.Restaurant, slotStart time.Time, reservations []models.Reservation) int {
	slotEnd := slotStart.Add(rest.Duration())
	defaultMinutes := rest.DurationMinutes()

	taken := 0
	for i := range reservations {
		r := &reservations[i]
		if !r.Occupies() {
			continue
		}
		end := r.EffectiveEnd(defaultMinutes)
		if r.StartTime.Before(slotEnd) && end.After(slotStart) {
			taken += r.PartySize
		}
	}
	return taken
}
