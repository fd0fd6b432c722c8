package service

import (
	"context"
	"testing"

	"kinohub/internal/api/dto"
	"kinohub/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMovieStats_CacheHitSkipsDatabase(t *testing.T) {
	ratingRepo := new(MockRatingRepository)
	likeRepo := new(MockLikeRepository)
	cache := new(MockStatsCache)
	svc := NewStatsService(ratingRepo, likeRepo, cache)
	ctx := context.Background()

	cached := &dto.MovieStats{AverageRating: 4.2, LikesCount: 17}
	cache.On("GetMovieStats", ctx, int64(7)).Return(cached, true)

	stats, err := svc.MovieStats(ctx, 7)

	assert.NoError(t, err)
	assert.Equal(t, 4.2, stats.AverageRating)
	assert.Equal(t, int64(17), stats.LikesCount)
	ratingRepo.AssertNotCalled(t, "AverageForMovie", mock.Anything, mock.Anything)
	likeRepo.AssertNotCalled(t, "CountActive", mock.Anything, mock.Anything, mock.Anything)
}

func TestMovieStats_CacheMissComputesAndStores(t *testing.T) {
	ratingRepo := new(MockRatingRepository)
	likeRepo := new(MockLikeRepository)
	cache := new(MockStatsCache)
	svc := NewStatsService(ratingRepo, likeRepo, cache)
	ctx := context.Background()

	cache.On("GetMovieStats", ctx, int64(7)).Return(nil, false)
	ratingRepo.On("AverageForMovie", ctx, int64(7)).Return(3.5, nil)
	likeRepo.On("CountActive", ctx, models.TargetMovie, int64(7)).Return(int64(9), nil)
	cache.On("SetMovieStats", ctx, int64(7), mock.AnythingOfType("*dto.MovieStats")).Return()

	stats, err := svc.MovieStats(ctx, 7)

	assert.NoError(t, err)
	assert.Equal(t, 3.5, stats.AverageRating)
	assert.Equal(t, int64(9), stats.LikesCount)
	cache.AssertExpectations(t)
}

func TestMovieStats_UnratedMovieReadsZero(t *testing.T) {
	ratingRepo := new(MockRatingRepository)
	likeRepo := new(MockLikeRepository)
	svc := NewStatsService(ratingRepo, likeRepo, nil)
	ctx := context.Background()

	ratingRepo.On("AverageForMovie", ctx, int64(7)).Return(float64(0), nil)
	likeRepo.On("CountActive", ctx, models.TargetMovie, int64(7)).Return(int64(0), nil)

	stats, err := svc.MovieStats(ctx, 7)

	assert.NoError(t, err)
	assert.Equal(t, float64(0), stats.AverageRating)
	assert.Equal(t, int64(0), stats.LikesCount)
}

func TestAnnotateMovies_BatchesAggregates(t *testing.T) {
	ratingRepo := new(MockRatingRepository)
	likeRepo := new(MockLikeRepository)
	svc := NewStatsService(ratingRepo, likeRepo, nil)
	ctx := context.Background()

	movies := []models.Movie{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}, {ID: 3, Title: "C"}}
	ratingRepo.On("AverageForMovies", ctx, []int64{1, 2, 3}).
		Return(map[int64]float64{1: 4.0, 3: 2.5}, nil)
	likeRepo.On("CountActiveForTargets", ctx, models.TargetMovie, []int64{1, 2, 3}).
		Return(map[int64]int64{1: 10, 2: 1}, nil)

	responses, err := svc.AnnotateMovies(ctx, movies)

	assert.NoError(t, err)
	assert.Len(t, responses, 3)
	assert.Equal(t, 4.0, responses[0].AverageRating)
	assert.Equal(t, int64(10), responses[0].LikesCount)
	// Movie 2 has no ratings: annotated as zero, not omitted.
	assert.Equal(t, float64(0), responses[1].AverageRating)
	assert.Equal(t, int64(1), responses[1].LikesCount)
	assert.Equal(t, 2.5, responses[2].AverageRating)
	assert.Equal(t, int64(0), responses[2].LikesCount)
	ratingRepo.AssertExpectations(t)
	likeRepo.AssertExpectations(t)
}

func TestAnnotateComments_CoversReplies(t *testing.T) {
	ratingRepo := new(MockRatingRepository)
	likeRepo := new(MockLikeRepository)
	svc := NewStatsService(ratingRepo, likeRepo, nil)
	ctx := context.Background()

	parentID := int64(1)
	comments := []models.Comment{
		{
			ID: 1, MovieID: 7, Text: "Top",
			Replies: []models.Comment{{ID: 2, MovieID: 7, Text: "Reply", ParentID: &parentID}},
		},
	}
	// The grouped count query covers reply ids too, so a page of threads
	// costs one query regardless of nesting.
	likeRepo.On("CountActiveForTargets", ctx, models.TargetComment, []int64{1, 2}).
		Return(map[int64]int64{1: 5, 2: 2}, nil)

	responses, err := svc.AnnotateComments(ctx, comments)

	assert.NoError(t, err)
	assert.Len(t, responses, 1)
	assert.Equal(t, int64(5), responses[0].LikesCount)
	assert.Len(t, responses[0].Replies, 1)
	assert.Equal(t, int64(2), responses[0].Replies[0].LikesCount)
	likeRepo.AssertExpectations(t)
}
