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
	ErrInvalidTarget  = errors.New("invalid target type")
	ErrTargetNotFound = errors.New("target not found")
)

type LikeService interface {
	Toggle(ctx context.Context, userID, targetType string, targetID int64) (*dto.ToggleLikeResponse, error)
	HasLiked(ctx context.Context, userID, targetType string, targetID int64) (bool, error)
}

type likeService struct {
	likeRepo    repository.LikeRepository
	movieRepo   repository.MovieRepository
	commentRepo repository.CommentRepository
	stats       StatsService
}

func NewLikeService(likeRepo repository.LikeRepository, movieRepo repository.MovieRepository, commentRepo repository.CommentRepository, stats StatsService) LikeService {
	return &likeService{
		likeRepo:    likeRepo,
		movieRepo:   movieRepo,
		commentRepo: commentRepo,
		stats:       stats,
	}
}

// Toggle flips the caller's like on a movie or comment and returns the new
// state plus the target's active like count.
//
// The whole check-then-act sequence runs in one transaction with the physical
// (user, target) row locked, so concurrent toggles by the same user
// serialize. Unliking soft-deletes the row; liking again revives that same
// row. Inserting a brand-new row only happens when no physical row exists
// yet — a duplicate-key error from that insert means a concurrent call won
// the race, and the call is re-evaluated once as like-only.
func (s *likeService) Toggle(ctx context.Context, userID, targetType string, targetID int64) (*dto.ToggleLikeResponse, error) {
	tt := models.TargetType(targetType)
	if !tt.Valid() {
		return nil, ErrInvalidTarget
	}
	if err := s.targetExists(ctx, tt, targetID); err != nil {
		return nil, err
	}

	var liked bool
	var count int64

	toggle := func(repo repository.LikeRepository) error {
		row, err := repo.FindForUpdate(ctx, userID, tt, targetID)
		if err != nil {
			return err
		}
		switch {
		case row == nil:
			like := &models.Like{UserID: userID, TargetType: tt, TargetID: targetID}
			if err := repo.Create(ctx, like); err != nil {
				return err
			}
			liked = true
		case row.DeletedAt.Valid:
			if err := repo.Restore(ctx, row.ID); err != nil {
				return err
			}
			liked = true
		default:
			if err := repo.SoftDelete(ctx, row.ID); err != nil {
				return err
			}
			liked = false
		}
		count, err = repo.CountActive(ctx, tt, targetID)
		return err
	}

	err := s.likeRepo.Transaction(ctx, toggle)
	if repository.IsUniqueViolation(err) {
		// Lost the insert race against a concurrent call for the same
		// triple. Re-evaluate as resurrect-or-keep so the caller still
		// ends up in the liked state.
		err = s.likeRepo.Transaction(ctx, func(repo repository.LikeRepository) error {
			row, ferr := repo.FindForUpdate(ctx, userID, tt, targetID)
			if ferr != nil {
				return ferr
			}
			if row != nil && row.DeletedAt.Valid {
				if rerr := repo.Restore(ctx, row.ID); rerr != nil {
					return rerr
				}
			}
			liked = true
			count, ferr = repo.CountActive(ctx, tt, targetID)
			return ferr
		})
	}
	if err != nil {
		return nil, err
	}

	if tt == models.TargetMovie {
		s.stats.InvalidateMovie(ctx, targetID)
	}

	return &dto.ToggleLikeResponse{Liked: liked, LikesCount: count}, nil
}

func (s *likeService) HasLiked(ctx context.Context, userID, targetType string, targetID int64) (bool, error) {
	tt := models.TargetType(targetType)
	if !tt.Valid() {
		return false, ErrInvalidTarget
	}
	return s.likeRepo.ExistsActive(ctx, userID, tt, targetID)
}

// targetExists resolves the discriminator to the owning store and checks the
// referenced row is present (and not soft-deleted).
func (s *likeService) targetExists(ctx context.Context, tt models.TargetType, targetID int64) error {
	var err error
	switch tt {
	case models.TargetMovie:
		_, err = s.movieRepo.GetByID(ctx, targetID)
	case models.TargetComment:
		_, err = s.commentRepo.GetByID(ctx, targetID)
	default:
		return ErrInvalidTarget
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTargetNotFound
		}
		return err
	}
	return nil
}
