package models

// Time format constants shared across the engine and API layers.
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// Default configuration values applied when a restaurant record leaves a
// setting unset.
const (
	DefaultReservationDurationMinutes = 60
	DefaultTurnaroundMinutes          = 0
	DefaultOverlapWindowMinutes       = 120
	DefaultSlotIntervalMinutes        = 30

	// The two capacity floors come from different call paths in the legacy
	// system and are deliberately kept as two named constants: slot listing
	// and direct checks fall back to 26 seats, max-party queries to 18.
	DefaultCapacitySlots    = 26
	DefaultCapacityMaxParty = 18

	// Window substituted by read-only hours listings for weekdays that have
	// no operating-hours record. Availability decisions never use it: a
	// missing record means closed there.
	DefaultOpenTime  = "09:00"
	DefaultCloseTime = "17:00"
)

// Reservation statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusSeated    = "seated"
	StatusFinished  = "finished"
	StatusCanceled  = "canceled"
	StatusNoShow    = "no_show"
)

// NonOccupyingStatuses lists the statuses excluded from overlap accounting.
// Every other status, including an empty one, holds capacity.
var NonOccupyingStatuses = []string{StatusCanceled, StatusFinished, StatusNoShow}
