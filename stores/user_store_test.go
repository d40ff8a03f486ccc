package stores_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oohyj/pointsync/models"
	"github.com/oohyj/pointsync/services"
	"github.com/oohyj/pointsync/stores"
)

func TestUserCreateAndFind(t *testing.T) {
	db := openTestDB(t)
	store := stores.NewUserStore(db)
	ctx := context.Background()

	user := &models.User{Name: "alice", Email: "alice@example.com"}
	require.NoError(t, store.Create(ctx, user))
	require.NotZero(t, user.ID)

	found, err := store.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", found.Name)

	byEmail, err := store.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	store := stores.NewUserStore(db)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &models.User{Name: "alice", Email: "alice@example.com"}))

	// Unique index is the backstop even when the service's pre-check
	// raced past a concurrent sign-up.
	err := store.Create(ctx, &models.User{Name: "imposter", Email: "alice@example.com"})
	require.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestUserFindMissing(t *testing.T) {
	db := openTestDB(t)
	store := stores.NewUserStore(db)
	ctx := context.Background()

	_, err := store.FindByID(ctx, 404)
	require.ErrorIs(t, err, services.ErrUserNotFound)

	_, err = store.FindByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestUserDelete(t *testing.T) {
	db := openTestDB(t)
	store := stores.NewUserStore(db)
	ctx := context.Background()

	user := &models.User{Name: "alice", Email: "alice@example.com"}
	require.NoError(t, store.Create(ctx, user))
	require.NoError(t, store.Delete(ctx, user.ID))

	_, err := store.FindByID(ctx, user.ID)
	require.ErrorIs(t, err, services.ErrUserNotFound)

	// Deleting an unknown id is a no-op.
	require.NoError(t, store.Delete(ctx, 404))

	ok, err := store.ExistsByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.False(t, ok)
}
