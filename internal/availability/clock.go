package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tablero/internal/models"
)

// LoadLocation resolves a restaurant's named timezone. An empty or unknown
// name falls back to the process-local zone so that time construction still
// yields a usable instant.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}

// ResolveDate parses a YYYY-MM-DD date in loc. An unparseable date falls
// back to today in the same zone.
func ResolveDate(dateStr string, loc *time.Location) time.Time {
	d, err := time.ParseInLocation(models.DateFormat, dateStr, loc)
	if err != nil {
		now := time.Now().In(loc)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	}
	return d
}

// ParseClock splits a wall-clock string ("H:MM" or "HH:MM") into hour and
// minute.
func ParseClock(timeStr string) (hour, minute int, err error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("invalid time format: %s", timeStr)
	}
	hour, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hour: %w", err)
	}
	minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minute: %w", err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time out of range: %s", timeStr)
	}
	return hour, minute, nil
}

// ClockOn pins a wall-clock string onto a date, keeping the date's zone.
// Pinning both sides of a comparison onto the same date makes open/close
// checks date-independent.
func ClockOn(date time.Time, timeStr string) (time.Time, error) {
	hour, minute, err := ParseClock(timeStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()), nil
}

// ResolveSlotTime combines a date string and a wall-clock string into an
// instant in loc. The date degrades to today on parse failure; a bad time is
// an error for the caller to surface.
func ResolveSlotTime(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	return ClockOn(ResolveDate(dateStr, loc), timeStr)
}
