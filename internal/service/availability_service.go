package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"tablero/internal/availability"
	"tablero/internal/database"
	"tablero/internal/metrics"
	"tablero/internal/models"
)

// MaxRangeDays bounds date-range availability requests.
const MaxRangeDays = 90

// AvailabilityService composes the engine with the store and an optional
// redis cache for slot listings. Caching is advisory: misses and cache errors
// fall through to the engine silently.
type AvailabilityService struct {
	engine   *availability.Engine
	db       *database.DB
	redis    *redis.Client
	cacheTTL time.Duration
	logger   zerolog.Logger
}

func NewAvailabilityService(db *database.DB, logger *zerolog.Logger) *AvailabilityService {
	return &AvailabilityService{
		engine: availability.New(db, logger),
		db:     db,
		logger: logger.With().Str("component", "availability_service").Logger(),
	}
}

// UseRedisCache configures slot-listing caching.
func (s *AvailabilityService) UseRedisCache(client *redis.Client, ttl time.Duration) {
	s.redis = client
	s.cacheTTL = ttl
}

// CheckAvailability answers a single-slot availability question.
func (s *AvailabilityService) CheckAvailability(ctx context.Context, req availability.CheckRequest) availability.CheckResult {
	res := s.engine.CheckAvailability(ctx, req)
	switch {
	case !res.Success:
		metrics.IncCheck(metrics.OutcomeError)
	case res.Available:
		metrics.IncCheck(metrics.OutcomeAvailable)
	default:
		metrics.IncCheck(metrics.OutcomeUnavailable)
	}
	return res
}

// AvailableTimeSlots lists bookable slots for a date, consulting the cache
// first.
func (s *AvailabilityService) AvailableTimeSlots(ctx context.Context, req availability.SlotsRequest) availability.SlotsResult {
	key := slotCacheKey(req)

	var cached availability.SlotsResult
	if s.readCache(ctx, key, &cached) {
		metrics.IncSlotQuery("hit")
		return cached
	}
	metrics.IncSlotQuery("miss")

	res := s.engine.AvailableTimeSlots(ctx, req)
	s.writeCache(ctx, key, res)
	return res
}

// MaxPartySize answers the remaining-seat ceiling for a slot.
func (s *AvailabilityService) MaxPartySize(ctx context.Context, req availability.MaxPartyRequest) availability.MaxPartyResult {
	metrics.IncMaxPartyQuery()
	return s.engine.MaxPartySize(ctx, req)
}

// DayAvailability summarizes one date inside a range query.
type DayAvailability struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
	FirstSlot string `json:"first_slot,omitempty"`
	SlotCount int    `json:"slot_count"`
}

// RangeResult is the response shape for date-range availability.
type RangeResult struct {
	Success bool              `json:"success"`
	Days    []DayAvailability `json:"days"`
	Period  struct {
		Start string `json:"start"`
		End   string `json:"end"`
	} `json:"period"`
}

// AvailabilityRange walks each date in [start, end] and reports whether the
// party fits anywhere that day. The range is validated by the API layer and
// bounded by MaxRangeDays.
func (s *AvailabilityService) AvailabilityRange(ctx context.Context, restaurantID int64, start, end time.Time, partySize int, locationID *int64) RangeResult {
	var res RangeResult
	res.Success = true
	res.Period.Start = start.Format(models.DateFormat)
	res.Period.End = end.Format(models.DateFormat)
	res.Days = make([]DayAvailability, 0)

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format(models.DateFormat)
		slots := s.AvailableTimeSlots(ctx, availability.SlotsRequest{
			RestaurantID: restaurantID,
			Date:         dateStr,
			PartySize:    partySize,
			LocationID:   locationID,
		})

		day := DayAvailability{Date: dateStr, SlotCount: len(slots.AvailableSlots)}
		if len(slots.AvailableSlots) > 0 {
			day.Available = true
			day.FirstSlot = slots.AvailableSlots[0].Time
		}
		res.Days = append(res.Days, day)
	}
	return res
}

// WeeklyHours returns the seven-day schedule. Days without a record get the
// default 09:00-17:00 window; this is a read-only listing policy and never
// feeds availability decisions, which treat missing days as closed.
func (s *AvailabilityService) WeeklyHours(ctx context.Context, restaurantID int64) ([]models.OperatingHour, error) {
	stored, err := s.db.OperatingHoursForWeek(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	byDay := make(map[int]models.OperatingHour, len(stored))
	for _, h := range stored {
		byDay[h.DayOfWeek] = h
	}

	week := make([]models.OperatingHour, 0, 7)
	for day := 0; day < 7; day++ {
		if h, ok := byDay[day]; ok {
			week = append(week, h)
			continue
		}
		week = append(week, models.DefaultOperatingHour(restaurantID, day))
	}
	return week, nil
}

// LocationOccupancy is one location's (or the restaurant-wide layout's)
// interval-by-interval occupancy for a date.
type LocationOccupancy struct {
	Name      string                           `json:"name"`
	Intervals []availability.IntervalOccupancy `json:"intervals"`
}

// OccupancyReport assembles the restaurant-wide occupancy plus one entry per
// active location.
func (s *AvailabilityService) OccupancyReport(ctx context.Context, restaurantID int64, date string) ([]LocationOccupancy, error) {
	restaurantWide, err := s.engine.DayOccupancy(ctx, restaurantID, date, nil)
	if err != nil {
		return nil, err
	}
	out := []LocationOccupancy{{Name: "Restaurant", Intervals: restaurantWide}}

	locations, err := s.db.ActiveLocations(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	for _, l := range locations {
		intervals, err := s.engine.DayOccupancy(ctx, restaurantID, date, &l.ID)
		if err != nil {
			s.logger.Error().Err(err).Int64("location_id", l.ID).Msg("skipping location in occupancy report")
			continue
		}
		out = append(out, LocationOccupancy{Name: l.Name, Intervals: intervals})
	}
	return out, nil
}

func slotCacheKey(req availability.SlotsRequest) string {
	loc := int64(0)
	if req.LocationID != nil {
		loc = *req.LocationID
	}
	return fmt.Sprintf("slots:%d:%s:%d:%d", req.RestaurantID, req.Date, req.PartySize, loc)
}

func (s *AvailabilityService) readCache(ctx context.Context, key string, out any) bool {
	if s.redis == nil || s.cacheTTL <= 0 {
		return false
	}
	val, err := s.redis.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		s.logger.Debug().Err(err).Str("key", key).Msg("dropping undecodable cache entry")
		return false
	}
	return true
}

func (s *AvailabilityService) writeCache(ctx context.Context, key string, val any) {
	if s.redis == nil || s.cacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	_ = s.redis.Set(ctx, key, data, s.cacheTTL).Err()
}
