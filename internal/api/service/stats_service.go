package service

import (
	"context"

	"kinohub/internal/api/dto"
	"kinohub/internal/api/models"
	"kinohub/internal/api/repository"
)

// StatsCache is the read-through cache the aggregation engine consults before
// recomputing. Implementations must treat failures as misses.
type StatsCache interface {
	GetMovieStats(ctx context.Context, movieID int64) (*dto.MovieStats, bool)
	SetMovieStats(ctx context.Context, movieID int64, stats *dto.MovieStats)
	InvalidateMovie(ctx context.Context, movieID int64)
}

// StatsService computes display statistics at read time. Aggregates are never
// stored on the entities themselves; list endpoints get them batch-annotated
// onto response DTOs to avoid per-row queries.
type StatsService interface {
	MovieStats(ctx context.Context, movieID int64) (*dto.MovieStats, error)
	AnnotateMovies(ctx context.Context, movies []models.Movie) ([]dto.MovieResponse, error)
	AnnotateComments(ctx context.Context, comments []models.Comment) ([]dto.CommentResponse, error)
	InvalidateMovie(ctx context.Context, movieID int64)
}

type statsService struct {
	ratingRepo repository.RatingRepository
	likeRepo   repository.LikeRepository
	cache      StatsCache
}

func NewStatsService(ratingRepo repository.RatingRepository, likeRepo repository.LikeRepository, cache StatsCache) StatsService {
	return &statsService{
		ratingRepo: ratingRepo,
		likeRepo:   likeRepo,
		cache:      cache,
	}
}

// MovieStats returns the mean rating (0 when unrated) and active like count
// for one movie, consulting the cache first.
func (s *statsService) MovieStats(ctx context.Context, movieID int64) (*dto.MovieStats, error) {
	if s.cache != nil {
		if stats, ok := s.cache.GetMovieStats(ctx, movieID); ok {
			return stats, nil
		}
	}

	avg, err := s.ratingRepo.AverageForMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}
	likes, err := s.likeRepo.CountActive(ctx, models.TargetMovie, movieID)
	if err != nil {
		return nil, err
	}

	stats := &dto.MovieStats{AverageRating: avg, LikesCount: likes}
	if s.cache != nil {
		s.cache.SetMovieStats(ctx, movieID, stats)
	}
	return stats, nil
}

// AnnotateMovies attaches aggregates to a page of movies using two grouped
// queries instead of 2N per-row lookups.
func (s *statsService) AnnotateMovies(ctx context.Context, movies []models.Movie) ([]dto.MovieResponse, error) {
	ids := make([]int64, 0, len(movies))
	for i := range movies {
		ids = append(ids, movies[i].ID)
	}

	averages, err := s.ratingRepo.AverageForMovies(ctx, ids)
	if err != nil {
		return nil, err
	}
	likes, err := s.likeRepo.CountActiveForTargets(ctx, models.TargetMovie, ids)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MovieResponse, 0, len(movies))
	for i := range movies {
		stats := dto.MovieStats{
			AverageRating: averages[movies[i].ID],
			LikesCount:    likes[movies[i].ID],
		}
		responses = append(responses, *dto.FromModelToMovieResponse(&movies[i], stats))
	}
	return responses, nil
}

// AnnotateComments attaches like counts to comments and their preloaded
// replies in one grouped query.
func (s *statsService) AnnotateComments(ctx context.Context, comments []models.Comment) ([]dto.CommentResponse, error) {
	var ids []int64
	for i := range comments {
		ids = append(ids, comments[i].ID)
		for j := range comments[i].Replies {
			ids = append(ids, comments[i].Replies[j].ID)
		}
	}

	likes, err := s.likeRepo.CountActiveForTargets(ctx, models.TargetComment, ids)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, *dto.FromModelToCommentResponse(&comments[i], likes))
	}
	return responses, nil
}

func (s *statsService) InvalidateMovie(ctx context.Context, movieID int64) {
	if s.cache != nil {
		s.cache.InvalidateMovie(ctx, movieID)
	}
}
