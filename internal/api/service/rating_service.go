package service

import (
	"context"
	"errors"

	"kinohub/internal/api/dto"
	"kinohub/internal/api/models"
	"kinohub/internal/api/repository"

	"gorm.io/gorm"
)

var (
	ErrInvalidScore   = errors.New("score must be between 1 and 5")
	ErrRatingNotFound = errors.New("rating not found")
)

type RatingService interface {
	RateMovie(ctx context.Context, userID string, movieID int64, score int) (*dto.RatingResponse, error)
	DeleteRating(ctx context.Context, userID string, movieID int64) error
	GetUserRating(ctx context.Context, userID string, movieID int64) (*dto.RatingResponse, error)
	GetMovieRatings(ctx context.Context, movieID int64, page, pageSize int) (*dto.Paginated[dto.RatingResponse], error)
	GetMovieAverage(ctx context.Context, movieID int64) (*dto.AverageRatingResponse, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	movieRepo  repository.MovieRepository
	stats      StatsService
}

func NewRatingService(ratingRepo repository.RatingRepository, movieRepo repository.MovieRepository, stats StatsService) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		movieRepo:  movieRepo,
		stats:      stats,
	}
}

// RateMovie records the user's score for a movie. Re-rating overwrites the
// previous score; exactly one rating row per (user, movie) pair holds after
// the call.
func (s *ratingService) RateMovie(ctx context.Context, userID string, movieID int64, score int) (*dto.RatingResponse, error) {
	if score < models.MinScore || score > models.MaxScore {
		return nil, ErrInvalidScore
	}
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	rating := &models.Rating{
		UserID:  userID,
		MovieID: movieID,
		Score:   score,
	}
	if err := s.ratingRepo.Upsert(ctx, rating); err != nil {
		return nil, err
	}

	// The movie's average changes on next read.
	s.stats.InvalidateMovie(ctx, movieID)

	// Reload with user data for the response.
	saved, err := s.ratingRepo.GetByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToRatingResponse(saved), nil
}

func (s *ratingService) DeleteRating(ctx context.Context, userID string, movieID int64) error {
	if err := s.ratingRepo.Delete(ctx, userID, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRatingNotFound
		}
		return err
	}
	s.stats.InvalidateMovie(ctx, movieID)
	return nil
}

func (s *ratingService) GetUserRating(ctx context.Context, userID string, movieID int64) (*dto.RatingResponse, error) {
	rating, err := s.ratingRepo.GetByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return dto.FromModelToRatingResponse(rating), nil
}

func (s *ratingService) GetMovieRatings(ctx context.Context, movieID int64, page, pageSize int) (*dto.Paginated[dto.RatingResponse], error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	ratings, total, err := s.ratingRepo.GetByMovie(ctx, movieID, page, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.RatingResponse, 0, len(ratings))
	for i := range ratings {
		responses = append(responses, *dto.FromModelToRatingResponse(&ratings[i]))
	}
	return dto.NewPaginated(responses, total, page, pageSize), nil
}

func (s *ratingService) GetMovieAverage(ctx context.Context, movieID int64) (*dto.AverageRatingResponse, error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	avg, err := s.ratingRepo.AverageForMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}
	count, err := s.ratingRepo.CountForMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	return &dto.AverageRatingResponse{
		MovieID:       movieID,
		AverageRating: avg,
		RatingsCount:  count,
	}, nil
}
