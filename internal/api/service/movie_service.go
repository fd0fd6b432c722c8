package service

import (
	"context"
	"errors"

	"kinohub/internal/api/dto"
	"kinohub/internal/api/models"
	"kinohub/internal/api/repository"

	"gorm.io/gorm"
)

var ErrMovieNotFound = errors.New("movie not found")

type MovieService interface {
	List(ctx context.Context, page, pageSize int) (*dto.Paginated[dto.MovieResponse], error)
	Get(ctx context.Context, movieID int64) (*dto.MovieResponse, error)
	Search(ctx context.Context, query dto.SearchMoviesQuery) (*dto.Paginated[dto.MovieResponse], error)
	Create(ctx context.Context, req dto.CreateMovieDTO) (*dto.MovieResponse, error)
	Update(ctx context.Context, movieID int64, req dto.UpdateMovieDTO) (*dto.MovieResponse, error)
	Delete(ctx context.Context, movieID int64) error
	SetMedia(ctx context.Context, movieID int64, req dto.UpdateMediaDTO) (*dto.MovieResponse, error)
}

type movieService struct {
	movieRepo repository.MovieRepository
	stats     StatsService
}

func NewMovieService(movieRepo repository.MovieRepository, stats StatsService) MovieService {
	return &movieService{
		movieRepo: movieRepo,
		stats:     stats,
	}
}

func (s *movieService) List(ctx context.Context, page, pageSize int) (*dto.Paginated[dto.MovieResponse], error) {
	movies, total, err := s.movieRepo.GetAll(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	responses, err := s.stats.AnnotateMovies(ctx, movies)
	if err != nil {
		return nil, err
	}
	return dto.NewPaginated(responses, total, page, pageSize), nil
}

func (s *movieService) Get(ctx context.Context, movieID int64) (*dto.MovieResponse, error) {
	movie, err := s.movieRepo.GetByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	stats, err := s.stats.MovieStats(ctx, movieID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToMovieResponse(movie, *stats), nil
}

func (s *movieService) Search(ctx context.Context, query dto.SearchMoviesQuery) (*dto.Paginated[dto.MovieResponse], error) {
	movies, total, err := s.movieRepo.Search(ctx, repository.MovieSearch{
		Query:    query.Query,
		Genre:    query.Genre,
		YearFrom: query.YearFrom,
		YearTo:   query.YearTo,
		Ordering: query.Ordering,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		return nil, err
	}
	responses, err := s.stats.AnnotateMovies(ctx, movies)
	if err != nil {
		return nil, err
	}
	return dto.NewPaginated(responses, total, query.Page, query.PageSize), nil
}

func (s *movieService) Create(ctx context.Context, req dto.CreateMovieDTO) (*dto.MovieResponse, error) {
	movie := &models.Movie{
		Title:       req.Title,
		Description: req.Description,
		Year:        req.Year,
		Genre:       req.Genre,
		Duration:    req.Duration,
	}
	if err := s.movieRepo.Create(ctx, movie); err != nil {
		return nil, err
	}
	return dto.FromModelToMovieResponse(movie, dto.MovieStats{}), nil
}

func (s *movieService) Update(ctx context.Context, movieID int64, req dto.UpdateMovieDTO) (*dto.MovieResponse, error) {
	movie, err := s.movieRepo.GetByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Description != nil {
		movie.Description = *req.Description
	}
	if req.Year != nil {
		movie.Year = *req.Year
	}
	if req.Genre != nil {
		movie.Genre = *req.Genre
	}
	if req.Duration != nil {
		movie.Duration = *req.Duration
	}

	if err := s.movieRepo.Update(ctx, movie); err != nil {
		return nil, err
	}
	stats, err := s.stats.MovieStats(ctx, movieID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToMovieResponse(movie, *stats), nil
}

func (s *movieService) Delete(ctx context.Context, movieID int64) error {
	if err := s.movieRepo.Delete(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMovieNotFound
		}
		return err
	}
	s.stats.InvalidateMovie(ctx, movieID)
	return nil
}

func (s *movieService) SetMedia(ctx context.Context, movieID int64, req dto.UpdateMediaDTO) (*dto.MovieResponse, error) {
	movie, err := s.movieRepo.GetByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	if req.PosterURL != nil {
		movie.PosterURL = req.PosterURL
	}
	if req.VideoURL != nil {
		movie.VideoURL = req.VideoURL
	}

	if err := s.movieRepo.Update(ctx, movie); err != nil {
		return nil, err
	}
	stats, err := s.stats.MovieStats(ctx, movieID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToMovieResponse(movie, *stats), nil
}
