package service

import (
	"context"
	"errors"

	"kinohub/internal/api/dto"
	"kinohub/internal/api/repository"

	"gorm.io/gorm"
)

var (
	ErrAlreadyFavorite  = errors.New("movie already in favorites")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

type FavoriteService interface {
	Add(ctx context.Context, userID string, movieID int64) (*dto.FavoriteResponse, error)
	Remove(ctx context.Context, actorID string, actorIsAdmin bool, favoriteID int64) error
	List(ctx context.Context, userID string, page, pageSize int) (*dto.Paginated[dto.FavoriteResponse], error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	movieRepo    repository.MovieRepository
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository, movieRepo repository.MovieRepository) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		movieRepo:    movieRepo,
	}
}

// Add bookmarks a movie. Duplicates are rejected; there is no toggle or
// resurrection here, removal and re-adding are plain delete and insert.
func (s *favoriteService) Add(ctx context.Context, userID string, movieID int64) (*dto.FavoriteResponse, error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	exists, err := s.favoriteRepo.Exists(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyFavorite
	}

	favorite, err := s.favoriteRepo.Add(ctx, userID, movieID)
	if err != nil {
		// Concurrent adds for the same pair collapse onto the unique index.
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyFavorite
		}
		return nil, err
	}
	return dto.FromModelToFavoriteResponse(favorite), nil
}

func (s *favoriteService) Remove(ctx context.Context, actorID string, actorIsAdmin bool, favoriteID int64) error {
	favorite, err := s.favoriteRepo.GetByID(ctx, favoriteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFavoriteNotFound
		}
		return err
	}
	if favorite.UserID != actorID && !actorIsAdmin {
		return ErrForbidden
	}
	return s.favoriteRepo.Remove(ctx, favoriteID)
}

func (s *favoriteService) List(ctx context.Context, userID string, page, pageSize int) (*dto.Paginated[dto.FavoriteResponse], error) {
	favorites, total, err := s.favoriteRepo.List(ctx, userID, page, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		responses = append(responses, *dto.FromModelToFavoriteResponse(&favorites[i]))
	}
	return dto.NewPaginated(responses, total, page, pageSize), nil
}
