package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"tablero/internal/availability"
	"tablero/internal/metrics"
	"tablero/internal/models"
	"tablero/internal/service"
)

// handleCheckAvailability answers a single date/time/party question.
// POST /api/availability/check
func (s *HTTPServer) handleCheckAvailability(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("availability_check")

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use POST")
		return
	}

	var req availability.CheckRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := validateSlotFields(req.RestaurantID, req.Date, req.PartySize); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Time == "" {
		writeError(w, http.StatusBadRequest, "time is required")
		return
	}

	// Engine failures ride the result's own success flag, not the HTTP status.
	writeJSON(w, http.StatusOK, s.svc.CheckAvailability(r.Context(), req))
}

// handleAvailableTimeSlots lists bookable slots for a date.
// POST /api/availability/slots
func (s *HTTPServer) handleAvailableTimeSlots(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("availability_slots")

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use POST")
		return
	}

	var req availability.SlotsRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := validateSlotFields(req.RestaurantID, req.Date, req.PartySize); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, s.svc.AvailableTimeSlots(r.Context(), req))
}

// handleMaxPartySize reports the remaining-seat ceiling for a slot.
// POST /api/availability/max-party
func (s *HTTPServer) handleMaxPartySize(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("availability_max_party")

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use POST")
		return
	}

	var req availability.MaxPartyRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.RestaurantID <= 0 {
		writeError(w, http.StatusBadRequest, "restaurant_id is required")
		return
	}
	if req.Time == "" {
		writeError(w, http.StatusBadRequest, "time is required")
		return
	}

	writeJSON(w, http.StatusOK, s.svc.MaxPartySize(r.Context(), req))
}

// RangeRequest is the body for POST /api/availability/range.
type RangeRequest struct {
	RestaurantID int64  `json:"restaurant_id"`
	StartDate    string `json:"start_date"` // YYYY-MM-DD
	EndDate      string `json:"end_date"`   // YYYY-MM-DD
	PartySize    int    `json:"party_size"`
	LocationID   *int64 `json:"location_id,omitempty"`
}

// handleAvailabilityRange reports per-date availability over a bounded range.
// POST /api/availability/range
func (s *HTTPServer) handleAvailabilityRange(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("availability_range")

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use POST")
		return
	}

	var req RangeRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.RestaurantID <= 0 {
		writeError(w, http.StatusBadRequest, "restaurant_id is required")
		return
	}
	start, end, err := validateDateRange(req.StartDate, req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.PartySize <= 0 {
		writeError(w, http.StatusBadRequest, "party_size must be a positive integer")
		return
	}

	writeJSON(w, http.StatusOK, s.svc.AvailabilityRange(r.Context(), req.RestaurantID, start, end, req.PartySize, req.LocationID))
}

// handleWeeklyHours lists the seven-day schedule.
// GET /api/hours?restaurant_id=
func (s *HTTPServer) handleWeeklyHours(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("weekly_hours")

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use GET")
		return
	}

	restaurantID, err := strconv.ParseInt(r.URL.Query().Get("restaurant_id"), 10, 64)
	if err != nil || restaurantID <= 0 {
		writeError(w, http.StatusBadRequest, "restaurant_id is required")
		return
	}

	hours, err := s.svc.WeeklyHours(r.Context(), restaurantID)
	if err != nil {
		s.logger.Error().Err(err).Int64("restaurant_id", restaurantID).Msg("weekly hours lookup failed")
		writeError(w, http.StatusInternalServerError, "failed to load operating hours")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"hours": hours})
}

func validateSlotFields(restaurantID int64, date string, partySize int) error {
	if restaurantID <= 0 {
		return fmt.Errorf("restaurant_id is required")
	}
	if date == "" {
		return fmt.Errorf("date is required")
	}
	if partySize <= 0 {
		return fmt.Errorf("party_size must be a positive integer")
	}
	return nil
}

func validateDateRange(startDate, endDate string) (start, end time.Time, err error) {
	if startDate == "" || endDate == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date and end_date are required")
	}

	start, err = time.Parse(models.DateFormat, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start_date format; expected YYYY-MM-DD")
	}
	end, err = time.Parse(models.DateFormat, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end_date format; expected YYYY-MM-DD")
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date must be before or equal to end_date")
	}

	days := int(end.Sub(start).Hours() / 24)
	if days > service.MaxRangeDays {
		return time.Time{}, time.Time{}, fmt.Errorf("date range exceeds maximum of %d days", service.MaxRangeDays)
	}
	return start, end, nil
}
