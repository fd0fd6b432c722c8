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
	ErrDuplicateReview = errors.New("review already exists for this movie")
	ErrReviewNotFound  = errors.New("review not found")
	ErrForbidden       = errors.New("not the owner of this resource")
)

type ReviewService interface {
	Create(ctx context.Context, userID string, req dto.CreateReviewDTO) (*dto.ReviewResponse, error)
	Get(ctx context.Context, reviewID int64) (*dto.ReviewResponse, error)
	GetByMovie(ctx context.Context, movieID int64, page, pageSize int) (*dto.Paginated[dto.ReviewResponse], error)
	GetAll(ctx context.Context, page, pageSize int) (*dto.Paginated[dto.ReviewResponse], error)
	Update(ctx context.Context, actorID string, actorIsAdmin bool, reviewID int64, req dto.UpdateReviewDTO) (*dto.ReviewResponse, error)
	Delete(ctx context.Context, actorID string, actorIsAdmin bool, reviewID int64) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	movieRepo  repository.MovieRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, movieRepo repository.MovieRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		movieRepo:  movieRepo,
	}
}

// Create writes a new review. A second review for the same (user, movie)
// pair is a conflict, never an overwrite — deliberately stricter than the
// rating upsert.
func (s *reviewService) Create(ctx context.Context, userID string, req dto.CreateReviewDTO) (*dto.ReviewResponse, error) {
	if req.Rating < models.MinScore || req.Rating > models.MaxScore {
		return nil, ErrInvalidScore
	}
	if _, err := s.movieRepo.GetByID(ctx, req.MovieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	if _, err := s.reviewRepo.GetByUserAndMovie(ctx, userID, req.MovieID); err == nil {
		return nil, ErrDuplicateReview
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	review := &models.Review{
		UserID:  userID,
		MovieID: req.MovieID,
		Title:   req.Title,
		Text:    req.Text,
		Rating:  req.Rating,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		// A concurrent create for the same pair loses on the unique index.
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateReview
		}
		return nil, err
	}

	saved, err := s.reviewRepo.GetByID(ctx, review.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToReviewResponse(saved), nil
}

func (s *reviewService) Get(ctx context.Context, reviewID int64) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return dto.FromModelToReviewResponse(review), nil
}

func (s *reviewService) GetByMovie(ctx context.Context, movieID int64, page, pageSize int) (*dto.Paginated[dto.ReviewResponse], error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	reviews, total, err := s.reviewRepo.GetByMovie(ctx, movieID, page, pageSize)
	if err != nil {
		return nil, err
	}
	return dto.NewPaginated(toReviewResponses(reviews), total, page, pageSize), nil
}

func (s *reviewService) GetAll(ctx context.Context, page, pageSize int) (*dto.Paginated[dto.ReviewResponse], error) {
	reviews, total, err := s.reviewRepo.GetAll(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	return dto.NewPaginated(toReviewResponses(reviews), total, page, pageSize), nil
}

// Update modifies a review. Only the owner or an admin may do so.
func (s *reviewService) Update(ctx context.Context, actorID string, actorIsAdmin bool, reviewID int64, req dto.UpdateReviewDTO) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if review.UserID != actorID && !actorIsAdmin {
		return nil, ErrForbidden
	}

	if req.Rating != nil {
		if *req.Rating < models.MinScore || *req.Rating > models.MaxScore {
			return nil, ErrInvalidScore
		}
		review.Rating = *req.Rating
	}
	if req.Title != nil {
		review.Title = *req.Title
	}
	if req.Text != nil {
		review.Text = *req.Text
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return dto.FromModelToReviewResponse(review), nil
}

func (s *reviewService) Delete(ctx context.Context, actorID string, actorIsAdmin bool, reviewID int64) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	if review.UserID != actorID && !actorIsAdmin {
		return ErrForbidden
	}
	return s.reviewRepo.Delete(ctx, reviewID)
}

func toReviewResponses(reviews []models.Review) []dto.ReviewResponse {
	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, *dto.FromModelToReviewResponse(&reviews[i]))
	}
	return responses
}
