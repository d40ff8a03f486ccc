package utils

import (
	"fmt"
	"time"

	"github.com/oohyj/pointsync/models"
)

// ZoneClock reports the current calendar date in one fixed time zone.
// Every date the service handles is interpreted in this zone; check-in
// markers expire at this zone's midnight.
type ZoneClock struct {
	loc *time.Location
	now func() time.Time
}

// NewZoneClock builds a clock for an IANA zone name, e.g. "Asia/Seoul".
func NewZoneClock(zone string) (*ZoneClock, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", zone, err)
	}
	return &ZoneClock{loc: loc, now: time.Now}, nil
}

// Today returns the current calendar date in the configured zone.
func (c *ZoneClock) Today() models.Date {
	return models.DateOf(c.now().In(c.loc))
}

// SecondsUntilMidnight returns how many whole seconds remain before the
// next midnight in the configured zone. Never negative; at least 1 so a
// cache TTL derived from it is always valid.
func (c *ZoneClock) SecondsUntilMidnight() int64 {
	now := c.now().In(c.loc)
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.loc).AddDate(0, 0, 1)
	secs := int64(next.Sub(now) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}
