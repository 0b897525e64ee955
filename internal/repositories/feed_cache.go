package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-lost-found/internal/logger"
	"github.com/sbilibin2017/gw-lost-found/internal/models"
)

const feedCacheKey = "posts:feed"

// ErrFeedCacheMiss is returned when the feed is not cached.
var ErrFeedCacheMiss = errors.New("feed not found in cache")

// FeedCacheRepository caches the unfiltered newest-first feed in Redis.
type FeedCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached feed
}

// NewFeedCacheRepository creates a new repository instance with the given TTL
func NewFeedCacheRepository(client *redis.Client, expiration time.Duration) *FeedCacheRepository {
	return &FeedCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetFeed returns the cached feed or ErrFeedCacheMiss.
func (r *FeedCacheRepository) GetFeed(ctx context.Context) ([]models.PostDB, error) {
	val, err := r.client.Get(ctx, feedCacheKey).Bytes()
	if err != nil {
		logger.Log.Infow("cache get", "key", feedCacheKey, "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, ErrFeedCacheMiss
		}
		return nil, err
	}

	var posts []models.PostDB
	if err := json.Unmarshal(val, &posts); err != nil {
		logger.Log.Infow("cache get", "key", feedCacheKey, "size", len(val), "error", err)
		return nil, fmt.Errorf("decode cached feed: %w", err)
	}

	logger.Log.Infow("cache get", "key", feedCacheKey, "result", len(posts), "error", nil)
	return posts, nil
}

// SetFeed stores the feed with the repository TTL.
func (r *FeedCacheRepository) SetFeed(ctx context.Context, posts []models.PostDB) error {
	if posts == nil {
		posts = []models.PostDB{}
	}
	data, err := json.Marshal(posts)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, feedCacheKey, data, r.exp).Err()
	logger.Log.Infow("cache set", "key", feedCacheKey, "result", len(posts), "error", err)
	return err
}

// InvalidateFeed drops the cached feed.
func (r *FeedCacheRepository) InvalidateFeed(ctx context.Context) error {
	err := r.client.Del(ctx, feedCacheKey).Err()
	logger.Log.Infow("cache del", "key", feedCacheKey, "error", err)
	return err
}
