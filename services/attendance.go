package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/oohyj/pointsync/models"
)

// longestStreakWindowDays bounds the longest-streak range query. A streak
// longer than the window is under-reported; accepted trade-off for a
// single bounded query.
const longestStreakWindowDays = 365

// Clock supplies "today" in the service's fixed time zone.
type Clock interface {
	Today() models.Date
	SecondsUntilMidnight() int64
}

// UserDirectory resolves users before a check-in is recorded.
type UserDirectory interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

// AttendanceStore is the durable check-in log. Record must create the
// attendance row and its point award in one transaction, returning
// created=false (and no error) when the user already has a row for that
// day; the unique index on (user_id, attend_date) is the authority.
type AttendanceStore interface {
	Record(ctx context.Context, userID uint, day models.Date, points int, reason string) (created bool, err error)
	Exists(ctx context.Context, userID uint, day models.Date) (bool, error)
	DatesBetween(ctx context.Context, userID uint, from, to models.Date) ([]models.Date, error)
}

// PointSummer reads a user's running point total.
type PointSummer interface {
	Sum(ctx context.Context, userID uint) (int, error)
}

// MarkerCache is the fast path: an expiring per-user-per-day marker that
// lets repeat check-ins skip the durable store. Advisory only; losing it
// costs a round-trip, never correctness.
type MarkerCache interface {
	SetIfAbsent(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// CheckInResult is returned by every successful check-in, first or repeat.
type CheckInResult struct {
	AttendedToday bool        `json:"attended_today"`
	Date          models.Date `json:"date"`
	TodayPoint    int         `json:"today_point"`
	TotalPoints   int         `json:"total_points"`
	CurrentStreak int         `json:"current_streak"`
	LongestStreak int         `json:"longest_streak"`
}

// SummaryResult is the read-only attendance summary.
type SummaryResult struct {
	AttendedToday bool `json:"attended_today"`
	TotalPoints   int  `json:"total_points"`
	CurrentStreak int  `json:"current_streak"`
	LongestStreak int  `json:"longest_streak"`
}

// AttendanceService coordinates the cache, the durable log and the ledger
// to make the daily check-in idempotent.
type AttendanceService struct {
	users  UserDirectory
	store  AttendanceStore
	points PointSummer
	cache  MarkerCache
	clock  Clock
	reward int
	log    *zap.SugaredLogger
}

// NewAttendanceService wires the coordinator. reward is the points granted
// for the first check-in of a day.
func NewAttendanceService(users UserDirectory, store AttendanceStore, points PointSummer, cache MarkerCache, clock Clock, reward int, log *zap.SugaredLogger) *AttendanceService {
	if reward <= 0 {
		reward = 1
	}
	return &AttendanceService{
		users:  users,
		store:  store,
		points: points,
		cache:  cache,
		clock:  clock,
		reward: reward,
		log:    log,
	}
}

func markerKey(userID uint, day models.Date) string {
	return fmt.Sprintf("attendance:%d:%s", userID, day)
}

// CheckIn records today's attendance for userID at most once, awarding
// points only on the call that actually created the row.
//
// The Redis SetNX marker is a hint: among racing requests in one day at
// most one sees first=true per cache lifetime, and repeat calls skip the
// store write entirely. Only the store's unique index decides who awards
// the point; a duplicate-key insert is absorbed as "already attended".
// A cache failure fails the whole call rather than silently bypassing the
// fast path.
func (s *AttendanceService) CheckIn(ctx context.Context, userID uint) (*CheckInResult, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	today := s.clock.Today()
	ttl := time.Duration(s.clock.SecondsUntilMidnight()) * time.Second
	first, err := s.cache.SetIfAbsent(ctx, markerKey(userID, today), ttl)
	if err != nil {
		return nil, fmt.Errorf("attendance marker: %w", err)
	}

	todayPoint := 0
	if first {
		created, err := s.store.Record(ctx, userID, today, s.reward, models.ReasonDailyCheckIn)
		if err != nil {
			return nil, fmt.Errorf("record attendance: %w", err)
		}
		if created {
			todayPoint = s.reward
		} else if s.log != nil {
			s.log.Infow("attendance row already exists, race absorbed", "user_id", userID, "date", today.String())
		}
	}

	total, current, longest, err := s.aggregates(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	return &CheckInResult{
		AttendedToday: true,
		Date:          today,
		TodayPoint:    todayPoint,
		TotalPoints:   total,
		CurrentStreak: current,
		LongestStreak: longest,
	}, nil
}

// GetCalendar lists attended dates within [from, to], ascending.
func (s *AttendanceService) GetCalendar(ctx context.Context, userID uint, from, to models.Date) ([]models.Date, error) {
	if from.After(to) {
		return nil, ErrInvalidRange
	}
	dates, err := s.store.DatesBetween(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("attendance range: %w", err)
	}
	return dates, nil
}

// GetSummary reports today's attendance flag, the point total and both
// streaks. Pure read; the cache is not consulted.
func (s *AttendanceService) GetSummary(ctx context.Context, userID uint) (*SummaryResult, error) {
	today := s.clock.Today()
	attended, err := s.store.Exists(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("attendance exists: %w", err)
	}
	total, current, longest, err := s.aggregates(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	return &SummaryResult{
		AttendedToday: attended,
		TotalPoints:   total,
		CurrentStreak: current,
		LongestStreak: longest,
	}, nil
}

func (s *AttendanceService) aggregates(ctx context.Context, userID uint, today models.Date) (total, current, longest int, err error) {
	total, err = s.points.Sum(ctx, userID)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("sum points: %w", err)
	}
	current, err = s.currentStreak(ctx, userID, today)
	if err != nil {
		return 0, 0, 0, err
	}
	longest, err = s.longestStreak(ctx, userID, today)
	if err != nil {
		return 0, 0, 0, err
	}
	return total, current, longest, nil
}

// currentStreak walks backward from today until the first missing day.
// One indexed existence probe per streak day.
func (s *AttendanceService) currentStreak(ctx context.Context, userID uint, today models.Date) (int, error) {
	streak := 0
	for d := today; ; d = d.AddDays(-1) {
		ok, err := s.store.Exists(ctx, userID, d)
		if err != nil {
			return 0, fmt.Errorf("streak probe: %w", err)
		}
		if !ok {
			return streak, nil
		}
		streak++
	}
}

// longestStreak scans the attended dates of the trailing 365-day window
// once, tracking the longest run of consecutive days.
func (s *AttendanceService) longestStreak(ctx context.Context, userID uint, today models.Date) (int, error) {
	from := today.AddDays(-longestStreakWindowDays)
	days, err := s.store.DatesBetween(ctx, userID, from, today)
	if err != nil {
		return 0, fmt.Errorf("streak window: %w", err)
	}
	if len(days) == 0 {
		return 0, nil
	}
	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].DaysSince(days[i-1]) == 1 {
			run++
			continue
		}
		if run > longest {
			longest = run
		}
		run = 1
	}
	if run > longest {
		longest = run
	}
	return longest, nil
}
