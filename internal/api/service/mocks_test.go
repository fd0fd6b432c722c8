package service

import (
	"context"

	"kinohub/internal/api/dto"
	"kinohub/internal/api/models"
	"kinohub/internal/api/repository"

	"github.com/stretchr/testify/mock"
)

// MockLikeRepository mocks the LikeRepository interface. Transaction simply
// hands the mock itself to the closure, so expectations set on the mock cover
// the calls made inside the transaction.
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Transaction(ctx context.Context, fn func(repository.LikeRepository) error) error {
	m.Called(ctx)
	return fn(m)
}

func (m *MockLikeRepository) FindForUpdate(ctx context.Context, userID string, targetType models.TargetType, targetID int64) (*models.Like, error) {
	args := m.Called(ctx, userID, targetType, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Like), args.Error(1)
}

func (m *MockLikeRepository) Create(ctx context.Context, like *models.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockLikeRepository) SoftDelete(ctx context.Context, likeID int64) error {
	args := m.Called(ctx, likeID)
	return args.Error(0)
}

func (m *MockLikeRepository) Restore(ctx context.Context, likeID int64) error {
	args := m.Called(ctx, likeID)
	return args.Error(0)
}

func (m *MockLikeRepository) CountActive(ctx context.Context, targetType models.TargetType, targetID int64) (int64, error) {
	args := m.Called(ctx, targetType, targetID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeRepository) CountActiveForTargets(ctx context.Context, targetType models.TargetType, targetIDs []int64) (map[int64]int64, error) {
	args := m.Called(ctx, targetType, targetIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int64), args.Error(1)
}

func (m *MockLikeRepository) ExistsActive(ctx context.Context, userID string, targetType models.TargetType, targetID int64) (bool, error) {
	args := m.Called(ctx, userID, targetType, targetID)
	return args.Bool(0), args.Error(1)
}

// MockMovieRepository mocks the MovieRepository interface
type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) GetAll(ctx context.Context, page, pageSize int) ([]models.Movie, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Movie), args.Get(1).(int64), args.Error(2)
}

func (m *MockMovieRepository) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *models.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) Update(ctx context.Context, movie *models.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMovieRepository) Search(ctx context.Context, params repository.MovieSearch) ([]models.Movie, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Movie), args.Get(1).(int64), args.Error(2)
}

// MockCommentRepository mocks the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, commentID int64) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, commentID int64) (*models.Comment, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByMovie(ctx context.Context, movieID int64, page, pageSize int) ([]models.Comment, int64, error) {
	args := m.Called(ctx, movieID, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepository) GetByUser(ctx context.Context, userID string, page, pageSize int) ([]models.Comment, int64, error) {
	args := m.Called(ctx, userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Comment), args.Get(1).(int64), args.Error(2)
}

// MockRatingRepository mocks the RatingRepository interface
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockRatingRepository) Delete(ctx context.Context, userID string, movieID int64) error {
	args := m.Called(ctx, userID, movieID)
	return args.Error(0)
}

func (m *MockRatingRepository) GetByUserAndMovie(ctx context.Context, userID string, movieID int64) (*models.Rating, error) {
	args := m.Called(ctx, userID, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) GetByMovie(ctx context.Context, movieID int64, page, pageSize int) ([]models.Rating, int64, error) {
	args := m.Called(ctx, movieID, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Rating), args.Get(1).(int64), args.Error(2)
}

func (m *MockRatingRepository) AverageForMovie(ctx context.Context, movieID int64) (float64, error) {
	args := m.Called(ctx, movieID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockRatingRepository) AverageForMovies(ctx context.Context, movieIDs []int64) (map[int64]float64, error) {
	args := m.Called(ctx, movieIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]float64), args.Error(1)
}

func (m *MockRatingRepository) CountForMovie(ctx context.Context, movieID int64) (int64, error) {
	args := m.Called(ctx, movieID)
	return args.Get(0).(int64), args.Error(1)
}

// MockReviewRepository mocks the ReviewRepository interface
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, reviewID int64) error {
	args := m.Called(ctx, reviewID)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, reviewID int64) (*models.Review, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByUserAndMovie(ctx context.Context, userID string, movieID int64) (*models.Review, error) {
	args := m.Called(ctx, userID, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByMovie(ctx context.Context, movieID int64, page, pageSize int) ([]models.Review, int64, error) {
	args := m.Called(ctx, movieID, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Review), args.Get(1).(int64), args.Error(2)
}

func (m *MockReviewRepository) GetAll(ctx context.Context, page, pageSize int) ([]models.Review, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Review), args.Get(1).(int64), args.Error(2)
}

// MockFavoriteRepository mocks the FavoriteRepository interface
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Add(ctx context.Context, userID string, movieID int64) (*models.Favorite, error) {
	args := m.Called(ctx, userID, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, favoriteID int64) error {
	args := m.Called(ctx, favoriteID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) GetByID(ctx context.Context, favoriteID int64) (*models.Favorite, error) {
	args := m.Called(ctx, favoriteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) List(ctx context.Context, userID string, page, pageSize int) ([]models.Favorite, int64, error) {
	args := m.Called(ctx, userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Favorite), args.Get(1).(int64), args.Error(2)
}

func (m *MockFavoriteRepository) Exists(ctx context.Context, userID string, movieID int64) (bool, error) {
	args := m.Called(ctx, userID, movieID)
	return args.Bool(0), args.Error(1)
}

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Deactivate(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockRefreshTokenRepository mocks the RefreshTokenRepository interface
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(token *models.RefreshToken) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindByToken(tokenString string) (*models.RefreshToken, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) Revoke(tokenID string) error {
	args := m.Called(tokenID)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) Delete(tokenID string) error {
	args := m.Called(tokenID)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) DeleteExpired() error {
	args := m.Called()
	return args.Error(0)
}

// MockStatsCache mocks the StatsCache interface
type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) GetMovieStats(ctx context.Context, movieID int64) (*dto.MovieStats, bool) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*dto.MovieStats), args.Bool(1)
}

func (m *MockStatsCache) SetMovieStats(ctx context.Context, movieID int64, stats *dto.MovieStats) {
	m.Called(ctx, movieID, stats)
}

func (m *MockStatsCache) InvalidateMovie(ctx context.Context, movieID int64) {
	m.Called(ctx, movieID)
}

// MockStatsService mocks the StatsService interface for services that only
// need invalidation or annotation behavior.
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) MovieStats(ctx context.Context, movieID int64) (*dto.MovieStats, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MovieStats), args.Error(1)
}

func (m *MockStatsService) AnnotateMovies(ctx context.Context, movies []models.Movie) ([]dto.MovieResponse, error) {
	args := m.Called(ctx, movies)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.MovieResponse), args.Error(1)
}

func (m *MockStatsService) AnnotateComments(ctx context.Context, comments []models.Comment) ([]dto.CommentResponse, error) {
	args := m.Called(ctx, comments)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CommentResponse), args.Error(1)
}

func (m *MockStatsService) InvalidateMovie(ctx context.Context, movieID int64) {
	m.Called(ctx, movieID)
}
