package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lost-found/internal/models"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestPostRepositories(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	author := createUser(t, db, "Ann", "Owner", "ann@example.com")
	reader := NewPostReadRepository(db)
	writer := NewPostWriteRepository(db, nil)

	backpack := createPost(t, db, author, "Blue Backpack", models.CategoryLost)
	wallet := createPost(t, db, author, "Brown Wallet", models.CategoryFound)
	percent := createPost(t, db, author, "100% wool scarf", models.CategoryLost)

	t.Run("ListNewestFirst", func(t *testing.T) {
		posts, err := reader.List(ctx, models.PostFilter{})
		assert.NoError(t, err)
		if assert.Len(t, posts, 3) {
			assert.Equal(t, percent.PostID, posts[0].PostID)
			assert.Equal(t, wallet.PostID, posts[1].PostID)
			assert.Equal(t, backpack.PostID, posts[2].PostID)
		}
	})

	t.Run("ListByCategory", func(t *testing.T) {
		posts, err := reader.List(ctx, models.PostFilter{Category: strPtr(models.CategoryFound)})
		assert.NoError(t, err)
		if assert.Len(t, posts, 1) {
			assert.Equal(t, wallet.PostID, posts[0].PostID)
		}
	})

	t.Run("ListBySearchIsCaseInsensitive", func(t *testing.T) {
		posts, err := reader.List(ctx, models.PostFilter{Search: strPtr("BACKPACK")})
		assert.NoError(t, err)
		if assert.Len(t, posts, 1) {
			assert.Equal(t, backpack.PostID, posts[0].PostID)
		}

		posts, err = reader.List(ctx, models.PostFilter{Search: strPtr("library")})
		assert.NoError(t, err)
		assert.Len(t, posts, 3)
	})

	t.Run("SearchWildcardsAreLiteral", func(t *testing.T) {
		posts, err := reader.List(ctx, models.PostFilter{Search: strPtr("%")})
		assert.NoError(t, err)
		if assert.Len(t, posts, 1) {
			assert.Equal(t, percent.PostID, posts[0].PostID)
		}
	})

	t.Run("GetByID", func(t *testing.T) {
		post, err := reader.GetByID(ctx, backpack.PostID)
		assert.NoError(t, err)
		assert.Equal(t, "Ann Owner", post.AuthorName)
		assert.Equal(t, "ann@example.com", post.AuthorEmail)

		post, err = reader.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, post)
	})

	t.Run("Delete", func(t *testing.T) {
		deleted, err := writer.Delete(ctx, wallet.PostID)
		assert.NoError(t, err)
		assert.Equal(t, wallet.PostID, deleted.PostID)

		_, err = writer.Delete(ctx, wallet.PostID)
		assert.ErrorIs(t, err, sql.ErrNoRows)

		posts, err := reader.List(ctx, models.PostFilter{})
		assert.NoError(t, err)
		assert.Len(t, posts, 2)
	})

	t.Run("DeleteUnknownHasNoSideEffects", func(t *testing.T) {
		_, err := writer.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, sql.ErrNoRows)

		var count int
		assert.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM posts"))
		assert.Equal(t, 2, count)
	})
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_sale\\x`, escapeLike(`50% off_sale\x`))
	assert.Equal(t, "plain", escapeLike("plain"))
}
