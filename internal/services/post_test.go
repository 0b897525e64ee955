package services_test

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lost-found/internal/apperrors"
	"github.com/sbilibin2017/gw-lost-found/internal/models"
	"github.com/sbilibin2017/gw-lost-found/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postMocks struct {
	reader    *services.MockPostReader
	writer    *services.MockPostWriter
	users     *services.MockUserGetter
	images    *services.MockImageStore
	cache     *services.MockFeedCache
	publisher *services.MockEventPublisher
}

func newPostService(t *testing.T) (*services.PostService, *postMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &postMocks{
		reader:    services.NewMockPostReader(ctrl),
		writer:    services.NewMockPostWriter(ctrl),
		users:     services.NewMockUserGetter(ctrl),
		images:    services.NewMockImageStore(ctrl),
		cache:     services.NewMockFeedCache(ctrl),
		publisher: services.NewMockEventPublisher(ctrl),
	}
	svc := services.NewPostService(m.reader, m.writer, m.users, m.images, m.cache, m.publisher)
	return svc, m
}

func strPtr(s string) *string { return &s }

func TestPostService_Create(t *testing.T) {
	ctx := context.Background()
	author := &models.UserDB{UserID: uuid.New(), FirstName: "Alice", LastName: "Smith", Email: "alice@example.com"}
	input := services.PostInput{
		ItemName:    " Blue Backpack ",
		Description: "Left in library",
		Category:    "Lost",
	}

	t.Run("snapshots author and publishes", func(t *testing.T) {
		svc, m := newPostService(t)

		m.users.EXPECT().GetUser(ctx, author.UserID).Return(author, nil)
		m.writer.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *models.PostDB) (*models.PostDB, error) {
			assert.Equal(t, "Blue Backpack", p.ItemName)
			assert.Equal(t, models.CategoryLost, p.Category)
			assert.Equal(t, "Alice Smith", p.AuthorName)
			assert.Equal(t, "alice@example.com", p.AuthorEmail)
			assert.Empty(t, p.ImageURL)
			saved := *p
			saved.PostID = uuid.New()
			return &saved, nil
		})
		m.cache.EXPECT().InvalidateFeed(ctx).Return(nil)
		m.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e models.Event) error {
			assert.Equal(t, models.EventPostCreated, e.Type)
			assert.Equal(t, author.UserID.String(), e.ActorID)
			return nil
		})

		post, err := svc.Create(ctx, author.UserID, input, nil)
		require.NoError(t, err)
		assert.Equal(t, author.UserID, post.AuthorID)
	})

	t.Run("stores image", func(t *testing.T) {
		svc, m := newPostService(t)
		upload := &services.ImageUpload{Filename: "bag.png", Content: strings.NewReader("png")}

		m.users.EXPECT().GetUser(ctx, author.UserID).Return(author, nil)
		m.images.EXPECT().Save(ctx, "bag.png", upload.Content).Return("/uploads/file-1.png", nil)
		m.writer.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *models.PostDB) (*models.PostDB, error) {
			assert.Equal(t, "/uploads/file-1.png", p.ImageURL)
			return p, nil
		})
		m.cache.EXPECT().InvalidateFeed(ctx).Return(errors.New("redis down"))
		m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("kafka down"))

		post, err := svc.Create(ctx, author.UserID, input, upload)
		require.NoError(t, err, "cache and publish failures do not fail the request")
		assert.Equal(t, "/uploads/file-1.png", post.ImageURL)
	})

	t.Run("removes image when save fails", func(t *testing.T) {
		svc, m := newPostService(t)
		upload := &services.ImageUpload{Filename: "bag.png", Content: strings.NewReader("png")}

		m.users.EXPECT().GetUser(ctx, author.UserID).Return(author, nil)
		m.images.EXPECT().Save(ctx, "bag.png", gomock.Any()).Return("/uploads/file-2.png", nil)
		m.writer.EXPECT().Save(ctx, gomock.Any()).Return(nil, errors.New("db error"))
		m.images.EXPECT().Delete(ctx, "/uploads/file-2.png").Return(nil)

		_, err := svc.Create(ctx, author.UserID, input, upload)
		assert.EqualError(t, err, "db error")
	})

	t.Run("rejected image", func(t *testing.T) {
		svc, m := newPostService(t)
		upload := &services.ImageUpload{Filename: "notes.txt", Content: strings.NewReader("text")}

		m.users.EXPECT().GetUser(ctx, author.UserID).Return(author, nil)
		m.images.EXPECT().Save(ctx, "notes.txt", gomock.Any()).Return("", apperrors.Validation("Only image files are allowed!"))

		_, err := svc.Create(ctx, author.UserID, input, upload)
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})

	t.Run("validation lists every field", func(t *testing.T) {
		svc, _ := newPostService(t)

		_, err := svc.Create(ctx, author.UserID, services.PostInput{ItemName: "  "}, nil)
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
		assert.EqualError(t, err, "itemName is required. description is required. category is required")
	})

	t.Run("posting as someone else", func(t *testing.T) {
		svc, _ := newPostService(t)

		in := input
		in.UserID = uuid.NewString()
		_, err := svc.Create(ctx, author.UserID, in, nil)
		assert.True(t, errors.Is(err, apperrors.ErrForbidden))
	})
}

func TestPostService_List(t *testing.T) {
	ctx := context.Background()
	feed := []models.PostDB{{PostID: uuid.New(), ItemName: "Keys"}}

	t.Run("cache hit", func(t *testing.T) {
		svc, m := newPostService(t)
		m.cache.EXPECT().GetFeed(ctx).Return(feed, nil)

		posts, err := svc.List(ctx, models.PostFilter{})
		require.NoError(t, err)
		assert.Equal(t, feed, posts)
	})

	t.Run("cache miss fills cache", func(t *testing.T) {
		svc, m := newPostService(t)
		gomock.InOrder(
			m.cache.EXPECT().GetFeed(ctx).Return(nil, errors.New("miss")),
			m.reader.EXPECT().List(ctx, models.PostFilter{}).Return(feed, nil),
			m.cache.EXPECT().SetFeed(ctx, feed).Return(nil),
		)

		posts, err := svc.List(ctx, models.PostFilter{})
		require.NoError(t, err)
		assert.Equal(t, feed, posts)
	})

	t.Run("empty feed is an empty slice", func(t *testing.T) {
		svc, m := newPostService(t)
		m.cache.EXPECT().GetFeed(ctx).Return(nil, errors.New("miss"))
		m.reader.EXPECT().List(ctx, models.PostFilter{}).Return(nil, nil)
		m.cache.EXPECT().SetFeed(ctx, []models.PostDB{}).Return(nil)

		posts, err := svc.List(ctx, models.PostFilter{})
		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)
	})

	t.Run("filtered feed bypasses cache", func(t *testing.T) {
		svc, m := newPostService(t)
		m.reader.EXPECT().List(ctx, models.PostFilter{Category: strPtr("found"), Search: strPtr("keys")}).Return(feed, nil)

		posts, err := svc.List(ctx, models.PostFilter{Category: strPtr(" FOUND "), Search: strPtr(" keys ")})
		require.NoError(t, err)
		assert.Equal(t, feed, posts)
	})

	t.Run("blank filters select the whole feed", func(t *testing.T) {
		svc, m := newPostService(t)
		m.cache.EXPECT().GetFeed(ctx).Return(feed, nil)

		posts, err := svc.List(ctx, models.PostFilter{Category: strPtr(""), Search: strPtr("  ")})
		require.NoError(t, err)
		assert.Equal(t, feed, posts)
	})

	t.Run("unknown category", func(t *testing.T) {
		svc, _ := newPostService(t)

		_, err := svc.List(ctx, models.PostFilter{Category: strPtr("stolen")})
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})

	t.Run("reader error", func(t *testing.T) {
		svc, m := newPostService(t)
		m.reader.EXPECT().List(ctx, gomock.Any()).Return(nil, errors.New("db error"))

		_, err := svc.List(ctx, models.PostFilter{Search: strPtr("x")})
		assert.EqualError(t, err, "db error")
	})
}

func TestPostService_Delete(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.New()
	post := &models.PostDB{PostID: uuid.New(), AuthorID: authorID, ImageURL: "/uploads/file-1.png"}

	t.Run("author deletes", func(t *testing.T) {
		svc, m := newPostService(t)
		m.reader.EXPECT().GetByID(ctx, post.PostID).Return(post, nil)
		m.writer.EXPECT().Delete(ctx, post.PostID).Return(post, nil)
		m.images.EXPECT().Delete(ctx, post.ImageURL).Return(errors.New("disk error"))
		m.cache.EXPECT().InvalidateFeed(ctx).Return(nil)
		m.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e models.Event) error {
			assert.Equal(t, models.EventPostDeleted, e.Type)
			assert.Equal(t, post.PostID.String(), e.EntityID)
			return nil
		})

		deleted, err := svc.Delete(ctx, post.PostID, authorID)
		require.NoError(t, err)
		assert.Equal(t, post.PostID, deleted.PostID)
	})

	t.Run("unknown post", func(t *testing.T) {
		svc, m := newPostService(t)
		m.reader.EXPECT().GetByID(ctx, gomock.Any()).Return(nil, nil)

		_, err := svc.Delete(ctx, uuid.New(), authorID)
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
		assert.EqualError(t, err, "Post not found")
	})

	t.Run("not the author", func(t *testing.T) {
		svc, m := newPostService(t)
		m.reader.EXPECT().GetByID(ctx, post.PostID).Return(post, nil)

		_, err := svc.Delete(ctx, post.PostID, uuid.New())
		assert.True(t, errors.Is(err, apperrors.ErrForbidden))
	})

	t.Run("deleted concurrently", func(t *testing.T) {
		svc, m := newPostService(t)
		m.reader.EXPECT().GetByID(ctx, post.PostID).Return(post, nil)
		m.writer.EXPECT().Delete(ctx, post.PostID).Return(nil, sql.ErrNoRows)

		_, err := svc.Delete(ctx, post.PostID, authorID)
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})
}
