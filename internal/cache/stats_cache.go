package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"kinohub/internal/api/dto"

	"github.com/redis/go-redis/v9"
)

// StatsCache is a Redis-backed cache for computed movie aggregates. It is
// purely an optimization: every failure path degrades to a recompute, never
// to a request error.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewStatsCache connects to Redis. A nil-client cache is returned when the
// URL is empty, which turns every lookup into a miss.
func NewStatsCache(redisURL string, ttl time.Duration, logger *slog.Logger) (*StatsCache, error) {
	if redisURL == "" {
		return &StatsCache{ttl: ttl, logger: logger}, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &StatsCache{client: client, ttl: ttl, logger: logger}, nil
}

func movieStatsKey(movieID int64) string {
	return fmt.Sprintf("movie:stats:%d", movieID)
}

func (c *StatsCache) GetMovieStats(ctx context.Context, movieID int64) (*dto.MovieStats, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, movieStatsKey(movieID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("stats cache read failed", "movie_id", movieID, "error", err)
		}
		return nil, false
	}

	var stats dto.MovieStats
	if err := json.Unmarshal(payload, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

func (c *StatsCache) SetMovieStats(ctx context.Context, movieID int64, stats *dto.MovieStats) {
	if c == nil || c.client == nil {
		return
	}

	payload, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, movieStatsKey(movieID), payload, c.ttl).Err(); err != nil {
		c.logger.Warn("stats cache write failed", "movie_id", movieID, "error", err)
	}
}

// InvalidateMovie drops the movie's cached aggregates after a rating or like
// write so the next read recomputes.
func (c *StatsCache) InvalidateMovie(ctx context.Context, movieID int64) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, movieStatsKey(movieID)).Err(); err != nil {
		c.logger.Warn("stats cache invalidation failed", "movie_id", movieID, "error", err)
	}
}

// Close releases the underlying Redis connection.
func (c *StatsCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
