package services

//go:generate mockgen -source=post.go -destination=post_mock.go -package=services

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lost-found/internal/apperrors"
	"github.com/sbilibin2017/gw-lost-found/internal/logger"
	"github.com/sbilibin2017/gw-lost-found/internal/models"
	"github.com/sbilibin2017/gw-lost-found/internal/txhooks"
)

// PostReader defines read operations for posts.
type PostReader interface {
	GetByID(ctx context.Context, postID uuid.UUID) (*models.PostDB, error)
	List(ctx context.Context, filter models.PostFilter) ([]models.PostDB, error)
}

// PostWriter defines write operations for posts.
type PostWriter interface {
	Save(ctx context.Context, post *models.PostDB) (*models.PostDB, error)
	Delete(ctx context.Context, postID uuid.UUID) (*models.PostDB, error)
}

// ImageStore stores uploaded post images.
type ImageStore interface {
	Save(ctx context.Context, originalName string, src io.Reader) (string, error)
	Delete(ctx context.Context, imageURL string) error
}

// FeedCache caches the unfiltered feed.
type FeedCache interface {
	GetFeed(ctx context.Context) ([]models.PostDB, error)
	SetFeed(ctx context.Context, posts []models.PostDB) error
	InvalidateFeed(ctx context.Context) error
}

// PostInput holds the fields of a new post.
type PostInput struct {
	ItemName    string `json:"itemName" validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=5000"`
	Question    string `json:"question" validate:"max=500"`
	Category    string `json:"category" validate:"required,oneof=lost found"`
	UserID      string `json:"userId" validate:"omitempty,uuid"`
}

// ImageUpload is an optional file attached to a new post.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// PostService manages the item feed.
type PostService struct {
	reader    PostReader
	writer    PostWriter
	users     UserGetter
	images    ImageStore
	cache     FeedCache
	publisher EventPublisher
}

// NewPostService creates a new PostService.
func NewPostService(
	reader PostReader,
	writer PostWriter,
	users UserGetter,
	images ImageStore,
	cache FeedCache,
	publisher EventPublisher,
) *PostService {
	return &PostService{
		reader:    reader,
		writer:    writer,
		users:     users,
		images:    images,
		cache:     cache,
		publisher: publisher,
	}
}

// Create stores a post authored by authorID. The author's name and email are
// copied from the user record. The feed cache and subscribers only hear about
// the post once the surrounding transaction commits; a rolled back post takes
// its image with it.
func (s *PostService) Create(ctx context.Context, authorID uuid.UUID, in PostInput, image *ImageUpload) (*models.PostDB, error) {
	in.ItemName = strings.TrimSpace(in.ItemName)
	in.Description = strings.TrimSpace(in.Description)
	in.Question = strings.TrimSpace(in.Question)
	in.Category = strings.ToLower(strings.TrimSpace(in.Category))
	in.UserID = strings.ToLower(strings.TrimSpace(in.UserID))

	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if in.UserID != "" && in.UserID != authorID.String() {
		return nil, apperrors.Forbidden("You can only post as yourself")
	}

	author, err := s.users.GetUser(ctx, authorID)
	if err != nil {
		return nil, err
	}

	var imageURL string
	if image != nil {
		imageURL, err = s.images.Save(ctx, image.Filename, image.Content)
		if err != nil {
			logger.Log.Errorw("failed to store image", "author_id", authorID, "err", err)
			return nil, err
		}
	}

	post, err := s.writer.Save(ctx, &models.PostDB{
		ItemName:    in.ItemName,
		Description: in.Description,
		Question:    in.Question,
		Category:    in.Category,
		ImageURL:    imageURL,
		AuthorID:    author.UserID,
		AuthorName:  author.FullName(),
		AuthorEmail: author.Email,
	})
	if err != nil {
		logger.Log.Errorw("failed to save post", "author_id", authorID, "err", err)
		s.removeImage(ctx, imageURL)
		return nil, err
	}

	txhooks.AfterRollback(ctx, func() { s.removeImage(ctx, imageURL) })
	txhooks.AfterCommit(ctx, func() {
		s.invalidateFeed(ctx)
		publish(ctx, s.publisher, newEvent(models.EventPostCreated, authorID, post.PostID, post.PostID, ""))
	})

	return post, nil
}

// List returns posts newest first. The unfiltered feed is served from the
// cache when present.
func (s *PostService) List(ctx context.Context, filter models.PostFilter) ([]models.PostDB, error) {
	filter, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	if filter.IsEmpty() && s.cache != nil {
		posts, err := s.cache.GetFeed(ctx)
		if err == nil {
			return posts, nil
		}
	}

	posts, err := s.reader.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list posts", "err", err)
		return nil, err
	}
	if posts == nil {
		posts = []models.PostDB{}
	}

	if filter.IsEmpty() && s.cache != nil {
		if err := s.cache.SetFeed(ctx, posts); err != nil {
			logger.Log.Errorw("failed to cache feed", "err", err)
		}
	}

	return posts, nil
}

// Delete removes a post. Only its author may delete it; its image is removed
// best-effort after commit and its responses are kept.
func (s *PostService) Delete(ctx context.Context, postID, requesterID uuid.UUID) (*models.PostDB, error) {
	post, err := s.reader.GetByID(ctx, postID)
	if err != nil {
		logger.Log.Errorw("failed to get post", "post_id", postID, "err", err)
		return nil, err
	}
	if post == nil {
		return nil, apperrors.NotFound("Post not found")
	}
	if post.AuthorID != requesterID {
		logger.Log.Infow("delete denied", "post_id", postID, "requester_id", requesterID)
		return nil, apperrors.Forbidden("You can only delete your own posts")
	}

	deleted, err := s.writer.Delete(ctx, postID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("Post not found")
	}
	if err != nil {
		logger.Log.Errorw("failed to delete post", "post_id", postID, "err", err)
		return nil, err
	}

	txhooks.AfterCommit(ctx, func() {
		s.removeImage(ctx, deleted.ImageURL)
		s.invalidateFeed(ctx)
		publish(ctx, s.publisher, newEvent(models.EventPostDeleted, requesterID, deleted.PostID, deleted.PostID, ""))
	})

	return deleted, nil
}

func (s *PostService) removeImage(ctx context.Context, imageURL string) {
	if imageURL == "" {
		return
	}
	if err := s.images.Delete(ctx, imageURL); err != nil {
		logger.Log.Errorw("failed to remove image", "image_url", imageURL, "err", err)
	}
}

func (s *PostService) invalidateFeed(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFeed(ctx); err != nil {
		logger.Log.Errorw("failed to invalidate feed cache", "err", err)
	}
}

// normalizeFilter trims the filter and drops empty values.
func normalizeFilter(filter models.PostFilter) (models.PostFilter, error) {
	var out models.PostFilter
	if filter.Category != nil {
		category := strings.ToLower(strings.TrimSpace(*filter.Category))
		switch category {
		case "":
		case models.CategoryLost, models.CategoryFound:
			out.Category = &category
		default:
			return out, apperrors.Validation("category must be one of: lost, found")
		}
	}
	if filter.Search != nil {
		if search := strings.TrimSpace(*filter.Search); search != "" {
			out.Search = &search
		}
	}
	return out, nil
}
