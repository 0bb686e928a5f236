//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := newTestDB(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewUserRepository(db)

	ana := &model.User{
		Email:        " Ana@Example.com",
		Username:     "ana",
		PasswordHash: "hash",
		Name:         "Ana Lima",
		Active:       true,
	}
	require.NoError(t, repo.Create(ctx, ana))
	require.False(t, ana.ID.IsZero())
	assert.Equal(t, "ana@example.com", ana.Email)
	assert.NotNil(t, ana.Roles)

	t.Run("duplicate email or username", func(t *testing.T) {
		tests := []struct {
			name string
			user *model.User
		}{
			{"same email", &model.User{Email: "ANA@example.com", Username: "ana2", Active: true}},
			{"same username", &model.User{Email: "other@example.com", Username: "ana", Active: true}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.ErrorIs(t, repo.Create(ctx, tt.user), ErrAccountExists)
			})
		}
	})

	t.Run("find by login", func(t *testing.T) {
		for _, login := range []string{"ana", "ana@example.com", "Ana@Example.COM"} {
			found, err := repo.FindByLogin(ctx, login)
			require.NoError(t, err)
			require.NotNil(t, found, login)
			assert.Equal(t, ana.ID, found.ID)
			assert.Equal(t, "hash", found.PasswordHash)
		}

		missing, err := repo.FindByLogin(ctx, "bruno")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("find by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, ana.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Ana Lima", found.Name)

		missing, err := repo.FindByID(ctx, primitive.NewObjectID())
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("update profile", func(t *testing.T) {
		profile := model.CustomerProfile{
			Phone:            "+351 912 345 678",
			DefaultShipping:  &model.Address{FullName: "Ana Lima", Line1: "Rua Augusta 10", City: "Lisboa", PostalCode: "1100-053", Country: "PT"},
			PreferredPayment: model.PaymentCard,
		}
		updated, err := repo.UpdateProfile(ctx, ana.ID, "Ana L.", profile)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Ana L.", updated.Name)
		assert.Equal(t, "Lisboa", updated.Profile.DefaultShipping.City)
		assert.Equal(t, model.PaymentCard, updated.Profile.PreferredPayment)

		missing, err := repo.UpdateProfile(ctx, primitive.NewObjectID(), "x", profile)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("record login", func(t *testing.T) {
		at := time.Now().Truncate(time.Millisecond)
		require.NoError(t, repo.RecordLogin(ctx, ana.ID, at))

		found, err := repo.FindByID(ctx, ana.ID)
		require.NoError(t, err)
		require.NotNil(t, found.LastLoginAt)
		assert.True(t, at.Equal(*found.LastLoginAt))
	})

	t.Run("count", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &model.User{Email: "old@example.com", Username: "old", Active: false}))

		all, err := repo.Count(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, int64(2), all)

		active, err := repo.Count(ctx, true)
		require.NoError(t, err)
		assert.Equal(t, int64(1), active)
	})
}
