package repositories

import (
	"context"
	"testing"

	"github.com/red-fox-ru/techshop/app/helpers"
	"github.com/red-fox-ru/techshop/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateHashesPassword(t *testing.T) {
	db := newRepoTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{
		Username: "ivan",
		Email:    "ivan@example.com",
		Password: "s3cret-pass",
		Role:     models.RoleCustomer,
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEmpty(t, user.ID)

	stored, err := repo.FindByUsername(ctx, "ivan")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret-pass", stored.Password)
	assert.True(t, helpers.ComparePassword(stored.Password, "s3cret-pass"))
	assert.False(t, helpers.ComparePassword(stored.Password, "wrong-pass"))
}

func TestUserRepository_FindMissingReturnsNil(t *testing.T) {
	db := newRepoTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user, err := repo.FindByID(ctx, "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = repo.FindByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_UpdateAvatar(t *testing.T) {
	db := newRepoTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Username: "ivan", Email: "ivan@example.com", Password: "pw", Role: models.RoleCustomer}
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.UpdateAvatar(ctx, user.ID, "assets/images/ivan.jpg"))

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "assets/images/ivan.jpg", stored.AvatarPath)
}
