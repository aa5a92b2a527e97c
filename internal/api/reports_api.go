package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"tablero/internal/metrics"
	"tablero/internal/models"
	"tablero/internal/report"
)

// handleOccupancyReport streams an xlsx occupancy workbook for one date.
// GET /api/reports/occupancy?restaurant_id=&date=
func (s *HTTPServer) handleOccupancyReport(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("occupancy_report")

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use GET")
		return
	}

	restaurantID, err := strconv.ParseInt(r.URL.Query().Get("restaurant_id"), 10, 64)
	if err != nil || restaurantID <= 0 {
		writeError(w, http.StatusBadRequest, "restaurant_id is required")
		return
	}
	date := r.URL.Query().Get("date")
	if _, err := time.Parse(models.DateFormat, date); err != nil {
		writeError(w, http.StatusBadRequest, "invalid date format; expected YYYY-MM-DD")
		return
	}

	locations, err := s.svc.OccupancyReport(r.Context(), restaurantID, date)
	if err != nil {
		s.logger.Error().Err(err).Int64("restaurant_id", restaurantID).Msg("occupancy report failed")
		writeError(w, http.StatusInternalServerError, "failed to build occupancy report")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="occupancy_%s.xlsx"`, date))
	if err := report.WriteOccupancyWorkbook(w, date, locations); err != nil {
		s.logger.Error().Err(err).Msg("write occupancy workbook")
	}
}
