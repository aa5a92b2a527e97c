package service

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablero/internal/availability"
	"tablero/internal/database"
)

func newTestService(t *testing.T) (*AvailabilityService, *database.DB) {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := zerolog.New(io.Discard)
	return NewAvailabilityService(db, &logger), db
}

// seedOpenRestaurant creates a restaurant open 11:00-22:00 every day with a
// configured capacity of 20 and no seats.
func seedOpenRestaurant(t *testing.T, db *database.DB) int64 {
	t.Helper()
	res, err := db.Exec(`
		INSERT INTO restaurants (name, timezone, max_party_size, reservation_duration, turnaround_time,
		                         overlap_window, time_slot_interval, seating_capacity)
		VALUES ('Cache Bistro', 'UTC', 10, 60, 15, 120, 30, 20)`)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)

	for day := 0; day < 7; day++ {
		_, err := db.Exec(`INSERT INTO operating_hours (restaurant_id, day_of_week, closed, open_time, close_time)
			VALUES (?, ?, 0, '11:00', '22:00')`, id, day)
		require.NoError(t, err)
	}
	return id
}

func TestCheckAvailability_EndToEnd(t *testing.T) {
	svc, db := newTestService(t)
	restID := seedOpenRestaurant(t, db)

	_, err := db.Exec(`INSERT INTO reservations (restaurant_id, start_time, party_size, status)
		VALUES (?, ?, 18, 'confirmed')`, restID, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	res := svc.CheckAvailability(context.Background(), availability.CheckRequest{
		RestaurantID: restID, Date: "2024-06-01", Time: "12:30", PartySize: 4,
	})

	assert.True(t, res.Success)
	assert.False(t, res.Available)
	assert.Equal(t, 2, res.AvailableSeats)
	assert.Equal(t, 20, res.TotalSeats)
}

func TestAvailableTimeSlots_CachesListings(t *testing.T) {
	svc, db := newTestService(t)
	restID := seedOpenRestaurant(t, db)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	svc.UseRedisCache(rdb, 30*time.Second)

	req := availability.SlotsRequest{RestaurantID: restID, Date: "2024-06-01", PartySize: 4}

	first := svc.AvailableTimeSlots(context.Background(), req)
	require.True(t, first.Success)
	require.Len(t, first.AvailableSlots, 22)

	// A reservation added after the first call is invisible until the cache
	// entry expires.
	_, err := db.Exec(`INSERT INTO reservations (restaurant_id, start_time, party_size, status)
		VALUES (?, ?, 20, 'confirmed')`, restID, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	cached := svc.AvailableTimeSlots(context.Background(), req)
	assert.Equal(t, first.AvailableSlots, cached.AvailableSlots)

	mr.FastForward(time.Minute)

	fresh := svc.AvailableTimeSlots(context.Background(), req)
	assert.Less(t, len(fresh.AvailableSlots), len(first.AvailableSlots))
}

func TestAvailableTimeSlots_CacheKeyIncludesPartySize(t *testing.T) {
	svc, db := newTestService(t)
	restID := seedOpenRestaurant(t, db)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	svc.UseRedisCache(rdb, 30*time.Second)

	_, err := db.Exec(`INSERT INTO reservations (restaurant_id, start_time, party_size, status)
		VALUES (?, ?, 16, 'confirmed')`, restID, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	small := svc.AvailableTimeSlots(context.Background(), availability.SlotsRequest{RestaurantID: restID, Date: "2024-06-01", PartySize: 2})
	large := svc.AvailableTimeSlots(context.Background(), availability.SlotsRequest{RestaurantID: restID, Date: "2024-06-01", PartySize: 8})

	// Around noon only 4 seats remain: enough for 2, not for 8.
	assert.NotEqual(t, len(small.AvailableSlots), len(large.AvailableSlots))
}

func TestAvailabilityRange(t *testing.T) {
	svc, db := newTestService(t)
	restID := seedOpenRestaurant(t, db)

	// Close Mondays.
	_, err := db.Exec(`UPDATE operating_hours SET closed = 1 WHERE restaurant_id = ? AND day_of_week = 1`, restID)
	require.NoError(t, err)

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) // Saturday
	end := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)   // Tuesday

	res := svc.AvailabilityRange(context.Background(), restID, start, end, 4, nil)

	assert.True(t, res.Success)
	require.Len(t, res.Days, 4)
	assert.True(t, res.Days[0].Available)
	assert.Equal(t, "11:00", res.Days[0].FirstSlot)
	assert.False(t, res.Days[2].Available) // Monday 2024-06-03
	assert.Equal(t, 0, res.Days[2].SlotCount)
}

func TestWeeklyHours_FillsMissingDaysWithDefaults(t *testing.T) {
	svc, db := newTestService(t)

	res, err := db.Exec(`INSERT INTO restaurants (name, timezone) VALUES ('Sparse', 'UTC')`)
	require.NoError(t, err)
	restID, err := res.LastInsertId()
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO operating_hours (restaurant_id, day_of_week, closed, open_time, close_time)
		VALUES (?, 5, 0, '10:00', '23:00')`, restID)
	require.NoError(t, err)

	week, err := svc.WeeklyHours(context.Background(), restID)
	require.NoError(t, err)
	require.Len(t, week, 7)

	assert.Equal(t, "10:00", week[5].OpenTime)
	// Days without a record get the listing default window, not "closed".
	assert.Equal(t, "09:00", week[0].OpenTime)
	assert.Equal(t, "17:00", week[0].CloseTime)
	assert.False(t, week[0].Closed)
}

func TestOccupancyReport(t *testing.T) {
	svc, db := newTestService(t)
	restID := seedOpenRestaurant(t, db)

	_, err := db.Exec(`INSERT INTO locations (restaurant_id, name) VALUES (?, 'Patio')`, restID)
	require.NoError(t, err)

	report, err := svc.OccupancyReport(context.Background(), restID, "2024-06-01")
	require.NoError(t, err)
	require.Len(t, report, 2)
	assert.Equal(t, "Restaurant", report[0].Name)
	assert.Equal(t, "Patio", report[1].Name)
	assert.Len(t, report[0].Intervals, 22)
}
