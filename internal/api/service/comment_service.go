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
	ErrCommentNotFound = errors.New("comment not found")
	ErrInvalidParent   = errors.New("parent comment does not belong to this movie")
)

type CommentService interface {
	Create(ctx context.Context, userID string, movieID int64, req dto.CreateCommentDTO) (*dto.CommentResponse, error)
	GetByMovie(ctx context.Context, movieID int64, page, pageSize int) (*dto.Paginated[dto.CommentResponse], error)
	Delete(ctx context.Context, actorID string, actorIsAdmin bool, commentID int64) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	movieRepo   repository.MovieRepository
	stats       StatsService
}

func NewCommentService(commentRepo repository.CommentRepository, movieRepo repository.MovieRepository, stats StatsService) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		movieRepo:   movieRepo,
		stats:       stats,
	}
}

// Create posts a comment on a movie. A reply's parent must be a live comment
// on the same movie.
func (s *commentService) Create(ctx context.Context, userID string, movieID int64, req dto.CreateCommentDTO) (*dto.CommentResponse, error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	if req.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCommentNotFound
			}
			return nil, err
		}
		if parent.MovieID != movieID {
			return nil, ErrInvalidParent
		}
	}

	comment := &models.Comment{
		MovieID:  movieID,
		UserID:   userID,
		Text:     req.Text,
		ParentID: req.ParentID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	saved, err := s.commentRepo.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToCommentResponse(saved, nil), nil
}

func (s *commentService) GetByMovie(ctx context.Context, movieID int64, page, pageSize int) (*dto.Paginated[dto.CommentResponse], error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	comments, total, err := s.commentRepo.GetByMovie(ctx, movieID, page, pageSize)
	if err != nil {
		return nil, err
	}
	responses, err := s.stats.AnnotateComments(ctx, comments)
	if err != nil {
		return nil, err
	}
	return dto.NewPaginated(responses, total, page, pageSize), nil
}

func (s *commentService) Delete(ctx context.Context, actorID string, actorIsAdmin bool, commentID int64) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if comment.UserID != actorID && !actorIsAdmin {
		return ErrForbidden
	}
	return s.commentRepo.Delete(ctx, commentID)
}
