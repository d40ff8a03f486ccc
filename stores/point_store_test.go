package stores_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oohyj/pointsync/stores"
)

func TestPointSumEmptyLedger(t *testing.T) {
	db := openTestDB(t)
	store := stores.NewPointStore(db)

	total, err := store.Sum(context.Background(), 1)
	require.NoError(t, err)
	require.Zero(t, total)
}

func TestPointSumMixedAmounts(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "alice", "alice@example.com")
	other := seedUser(t, db, "bob", "bob@example.com")
	store := stores.NewPointStore(db)
	ctx := context.Background()

	for _, amount := range []int{10, -3, 1} {
		_, err := store.Append(ctx, user.ID, amount, "adjustment")
		require.NoError(t, err)
	}
	_, err := store.Append(ctx, other.ID, 100, "bonus")
	require.NoError(t, err)

	total, err := store.Sum(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, 8, total)
}

func TestPointHistoryNewestFirst(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "alice", "alice@example.com")
	store := stores.NewPointStore(db)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_, err := store.Append(ctx, user.ID, i, "bonus")
		require.NoError(t, err)
	}

	items, total, err := store.History(ctx, user.ID, 0, 2)
	require.NoError(t, err)
	require.EqualValues(t, 5, total)
	require.Len(t, items, 2)
	require.Equal(t, 5, items[0].Amount)
	require.Equal(t, 4, items[1].Amount)

	items, _, err = store.History(ctx, user.ID, 2, 2)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 1, items[0].Amount)
}
