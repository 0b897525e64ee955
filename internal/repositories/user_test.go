package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lost-found/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	saved, err := repo.Save(ctx, &models.UserDB{
		FirstName:    "Alice",
		LastName:     "Smith",
		PhoneNumber:  "555-0101",
		Email:        "alice@example.com",
		PasswordHash: "hashed",
	})
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.UserID)
	assert.Equal(t, "alice@example.com", saved.Email)
	assert.Equal(t, "hashed", saved.PasswordHash)
	assert.False(t, saved.CreatedAt.IsZero())

	t.Run("DuplicateEmail", func(t *testing.T) {
		dup, err := repo.Save(ctx, &models.UserDB{
			FirstName:    "Other",
			LastName:     "Person",
			PhoneNumber:  "555-0102",
			Email:        "alice@example.com",
			PasswordHash: "other",
		})
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, dup)

		var count int
		assert.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM users WHERE email = $1", "alice@example.com"))
		assert.Equal(t, 1, count)
	})
}

func TestUserReadRepository(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	readRepo := NewUserReadRepository(db)
	charlie := createUser(t, db, "Charlie", "Brown", "charlie@example.com")

	t.Run("ByEmail", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "charlie@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, charlie.UserID, user.UserID)
	})

	t.Run("ByID", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, charlie.UserID)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "Charlie Brown", user.FullName())
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)

		user, err = readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}
