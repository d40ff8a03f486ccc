package stores_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oohyj/pointsync/models"
	"github.com/oohyj/pointsync/stores"
)

func TestAttendanceRecordCreatesBothRows(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "alice", "alice@example.com")
	store := stores.NewAttendanceStore(db)
	ctx := context.Background()
	day := models.NewDate(2024, time.January, 10)

	created, err := store.Record(ctx, user.ID, day, 1, models.ReasonDailyCheckIn)
	require.NoError(t, err)
	require.True(t, created)

	var logs int64
	require.NoError(t, db.Model(&models.AttendanceLog{}).Where("user_id = ?", user.ID).Count(&logs).Error)
	require.EqualValues(t, 1, logs)

	var entry models.PointLedger
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&entry).Error)
	require.Equal(t, 1, entry.Amount)
	require.Equal(t, models.ReasonDailyCheckIn, entry.Reason)
}

func TestAttendanceRecordAbsorbsDuplicate(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "alice", "alice@example.com")
	store := stores.NewAttendanceStore(db)
	ctx := context.Background()
	day := models.NewDate(2024, time.January, 10)

	created, err := store.Record(ctx, user.ID, day, 1, models.ReasonDailyCheckIn)
	require.NoError(t, err)
	require.True(t, created)

	// Second writer for the same day loses on uq_user_day: whole
	// transaction rolls back, so no second award row either.
	created, err = store.Record(ctx, user.ID, day, 1, models.ReasonDailyCheckIn)
	require.NoError(t, err)
	require.False(t, created)

	var logs, awards int64
	require.NoError(t, db.Model(&models.AttendanceLog{}).Where("user_id = ?", user.ID).Count(&logs).Error)
	require.NoError(t, db.Model(&models.PointLedger{}).Where("user_id = ?", user.ID).Count(&awards).Error)
	require.EqualValues(t, 1, logs)
	require.EqualValues(t, 1, awards)
}

func TestAttendanceRecordDifferentDaysAndUsers(t *testing.T) {
	db := openTestDB(t)
	alice := seedUser(t, db, "alice", "alice@example.com")
	bob := seedUser(t, db, "bob", "bob@example.com")
	store := stores.NewAttendanceStore(db)
	ctx := context.Background()
	day := models.NewDate(2024, time.January, 10)

	for _, tc := range []struct {
		userID uint
		day    models.Date
	}{
		{alice.ID, day},
		{alice.ID, day.AddDays(1)},
		{bob.ID, day},
	} {
		created, err := store.Record(ctx, tc.userID, tc.day, 1, models.ReasonDailyCheckIn)
		require.NoError(t, err)
		require.True(t, created)
	}
}

func TestAttendanceExists(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "alice", "alice@example.com")
	store := stores.NewAttendanceStore(db)
	ctx := context.Background()
	day := models.NewDate(2024, time.January, 10)

	ok, err := store.Exists(ctx, user.ID, day)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = store.Record(ctx, user.ID, day, 1, models.ReasonDailyCheckIn)
	require.NoError(t, err)

	ok, err = store.Exists(ctx, user.ID, day)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = store.Exists(ctx, user.ID, day.AddDays(-1))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAttendanceDatesBetweenOrderedInclusive(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "alice", "alice@example.com")
	store := stores.NewAttendanceStore(db)
	ctx := context.Background()

	// Insert out of order; the query must return ascending dates.
	for _, day := range []models.Date{
		models.NewDate(2024, time.January, 20),
		models.NewDate(2024, time.January, 5),
		models.NewDate(2024, time.February, 1),
		models.NewDate(2024, time.January, 12),
	} {
		_, err := store.Record(ctx, user.ID, day, 1, models.ReasonDailyCheckIn)
		require.NoError(t, err)
	}

	dates, err := store.DatesBetween(ctx, user.ID,
		models.NewDate(2024, time.January, 5), models.NewDate(2024, time.January, 31))
	require.NoError(t, err)

	require.Len(t, dates, 3)
	require.Equal(t, "2024-01-05", dates[0].String())
	require.Equal(t, "2024-01-12", dates[1].String())
	require.Equal(t, "2024-01-20", dates[2].String())
}
