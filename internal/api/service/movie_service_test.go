package service

import (
	"context"
	"testing"

	"kinohub/internal/api/dto"
	"kinohub/internal/api/models"
	"kinohub/internal/api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newMovieServiceForTest() (MovieService, *MockMovieRepository, *MockStatsService) {
	movieRepo := new(MockMovieRepository)
	stats := new(MockStatsService)
	return NewMovieService(movieRepo, stats), movieRepo, stats
}

func TestGetMovie_AnnotatedWithStats(t *testing.T) {
	svc, movieRepo, stats := newMovieServiceForTest()
	ctx := context.Background()

	movieRepo.On("GetByID", ctx, int64(7)).Return(&models.Movie{ID: 7, Title: "Mirror"}, nil)
	stats.On("MovieStats", ctx, int64(7)).Return(&dto.MovieStats{AverageRating: 4.8, LikesCount: 30}, nil)

	result, err := svc.Get(ctx, 7)

	assert.NoError(t, err)
	assert.Equal(t, "Mirror", result.Title)
	assert.Equal(t, 4.8, result.AverageRating)
	assert.Equal(t, int64(30), result.LikesCount)
}

func TestGetMovie_Missing(t *testing.T) {
	svc, movieRepo, stats := newMovieServiceForTest()
	ctx := context.Background()

	movieRepo.On("GetByID", ctx, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	result, err := svc.Get(ctx, 404)

	assert.ErrorIs(t, err, ErrMovieNotFound)
	assert.Nil(t, result)
	stats.AssertNotCalled(t, "MovieStats", mock.Anything, mock.Anything)
}

func TestListMovies_BatchAnnotated(t *testing.T) {
	svc, movieRepo, stats := newMovieServiceForTest()
	ctx := context.Background()

	movies := []models.Movie{{ID: 1}, {ID: 2}}
	annotated := []dto.MovieResponse{
		{ID: 1, AverageRating: 4.0, LikesCount: 3},
		{ID: 2, AverageRating: 0, LikesCount: 0},
	}
	movieRepo.On("GetAll", ctx, 1, 20).Return(movies, int64(2), nil)
	stats.On("AnnotateMovies", ctx, movies).Return(annotated, nil)

	page, err := svc.List(ctx, 1, 20)

	assert.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, 1, page.TotalPages)
	stats.AssertExpectations(t)
}

func TestSearchMovies_PassesFilters(t *testing.T) {
	svc, movieRepo, stats := newMovieServiceForTest()
	ctx := context.Background()

	expected := repository.MovieSearch{
		Query: "tarkovsky", Genre: "drama", YearFrom: 1970, YearTo: 1980,
		Ordering: "-average_rating", Page: 1, PageSize: 10,
	}
	movies := []models.Movie{{ID: 1, Title: "Stalker"}}
	movieRepo.On("Search", ctx, expected).Return(movies, int64(1), nil)
	stats.On("AnnotateMovies", ctx, movies).Return([]dto.MovieResponse{{ID: 1, Title: "Stalker"}}, nil)

	page, err := svc.Search(ctx, dto.SearchMoviesQuery{
		Query: "tarkovsky", Genre: "drama", YearFrom: 1970, YearTo: 1980,
		Ordering: "-average_rating", Page: 1, PageSize: 10,
	})

	assert.NoError(t, err)
	assert.Len(t, page.Data, 1)
	movieRepo.AssertExpectations(t)
}

func TestUpdateMovie_PartialPatch(t *testing.T) {
	svc, movieRepo, stats := newMovieServiceForTest()
	ctx := context.Background()

	existing := &models.Movie{ID: 7, Title: "Old", Year: 1972, Genre: "sci-fi", Duration: 160}
	movieRepo.On("GetByID", ctx, int64(7)).Return(existing, nil)
	movieRepo.On("Update", ctx, mock.AnythingOfType("*models.Movie")).Return(nil)
	stats.On("MovieStats", ctx, int64(7)).Return(&dto.MovieStats{}, nil)

	newTitle := "Solaris"
	result, err := svc.Update(ctx, 7, dto.UpdateMovieDTO{Title: &newTitle})

	assert.NoError(t, err)
	assert.Equal(t, "Solaris", result.Title)
	assert.Equal(t, 1972, result.Year)
}

func TestDeleteMovie_InvalidatesStats(t *testing.T) {
	svc, movieRepo, stats := newMovieServiceForTest()
	ctx := context.Background()

	movieRepo.On("Delete", ctx, int64(7)).Return(nil)
	stats.On("InvalidateMovie", ctx, int64(7)).Return()

	err := svc.Delete(ctx, 7)

	assert.NoError(t, err)
	stats.AssertExpectations(t)
}
