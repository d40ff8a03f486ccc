package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fixedClock(t *testing.T, zone string, instant time.Time) *ZoneClock {
	t.Helper()
	c, err := NewZoneClock(zone)
	require.NoError(t, err)
	c.now = func() time.Time { return instant }
	return c
}

func TestZoneClockToday(t *testing.T) {
	// 2024-01-10 23:30 UTC is already 2024-01-11 08:30 in Seoul.
	c := fixedClock(t, "Asia/Seoul", time.Date(2024, time.January, 10, 23, 30, 0, 0, time.UTC))
	require.Equal(t, "2024-01-11", c.Today().String())

	utc := fixedClock(t, "UTC", time.Date(2024, time.January, 10, 23, 30, 0, 0, time.UTC))
	require.Equal(t, "2024-01-10", utc.Today().String())
}

func TestZoneClockSecondsUntilMidnight(t *testing.T) {
	// 23:59:20 KST leaves 40 seconds in the day.
	loc, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)
	c := fixedClock(t, "Asia/Seoul", time.Date(2024, time.January, 10, 23, 59, 20, 0, loc))
	require.EqualValues(t, 40, c.SecondsUntilMidnight())
}

func TestZoneClockMidnightBoundary(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)
	c := fixedClock(t, "Asia/Seoul", time.Date(2024, time.January, 11, 0, 0, 0, 0, loc))
	require.Equal(t, "2024-01-11", c.Today().String())
	// TTL derived from the clock must always be positive.
	require.EqualValues(t, 24*60*60, c.SecondsUntilMidnight())
}

func TestZoneClockRejectsUnknownZone(t *testing.T) {
	_, err := NewZoneClock("Mars/Olympus_Mons")
	require.Error(t, err)
}
