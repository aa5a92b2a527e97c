package api

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"tablero/internal/availability"
	"tablero/internal/models"
	"tablero/internal/service"
)

// Availability is the service surface the HTTP layer depends on.
type Availability interface {
	CheckAvailability(ctx context.Context, req availability.CheckRequest) availability.CheckResult
	AvailableTimeSlots(ctx context.Context, req availability.SlotsRequest) availability.SlotsResult
	MaxPartySize(ctx context.Context, req availability.MaxPartyRequest) availability.MaxPartyResult
	AvailabilityRange(ctx context.Context, restaurantID int64, start, end time.Time, partySize int, locationID *int64) service.RangeResult
	WeeklyHours(ctx context.Context, restaurantID int64) ([]models.OperatingHour, error)
	OccupancyReport(ctx context.Context, restaurantID int64, date string) ([]service.LocationOccupancy, error)
}

// RateLimitSettings configures the per-client token bucket.
type RateLimitSettings struct {
	Enabled   bool
	PerSecond float64
	Burst     int
}

// HTTPServer exposes the availability engine over HTTP.
type HTTPServer struct {
	svc       Availability
	logger    zerolog.Logger
	rateLimit RateLimitSettings

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func NewHTTPServer(svc Availability, rateLimit RateLimitSettings, logger *zerolog.Logger) *HTTPServer {
	return &HTTPServer{
		svc:       svc,
		logger:    logger.With().Str("component", "api").Logger(),
		rateLimit: rateLimit,
		limiters:  make(map[string]*rate.Limiter),
	}
}

// Handler builds the route table with middleware applied.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/availability/check", s.handleCheckAvailability)
	mux.HandleFunc("/api/availability/slots", s.handleAvailableTimeSlots)
	mux.HandleFunc("/api/availability/max-party", s.handleMaxPartySize)
	mux.HandleFunc("/api/availability/range", s.handleAvailabilityRange)
	mux.HandleFunc("/api/hours", s.handleWeeklyHours)
	mux.HandleFunc("/api/reports/occupancy", s.handleOccupancyReport)
	return s.withRequestID(s.withRateLimit(mux))
}

func (s *HTTPServer) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		s.logger.Debug().Str("request_id", requestID).Str("path", r.URL.Path).Msg("request")
		next.ServeHTTP(w, r)
	})
}

func (s *HTTPServer) withRateLimit(next http.Handler) http.Handler {
	if !s.rateLimit.Enabled {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiterFor(clientKey(r)).Allow() {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *HTTPServer) limiterFor(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.limiters[key]
	if !ok {
		l = rate.NewLimiter(rate.Limit(s.rateLimit.PerSecond), s.rateLimit.Burst)
		s.limiters[key] = l
	}
	return l
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
