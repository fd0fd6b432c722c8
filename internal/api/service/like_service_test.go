package service

import (
	"context"
	"testing"
	"time"

	"kinohub/internal/api/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newLikeServiceForTest() (LikeService, *MockLikeRepository, *MockMovieRepository, *MockCommentRepository, *MockStatsService) {
	likeRepo := new(MockLikeRepository)
	movieRepo := new(MockMovieRepository)
	commentRepo := new(MockCommentRepository)
	stats := new(MockStatsService)
	return NewLikeService(likeRepo, movieRepo, commentRepo, stats), likeRepo, movieRepo, commentRepo, stats
}

func TestToggle_FirstLikeInsertsRow(t *testing.T) {
	svc, likeRepo, movieRepo, _, stats := newLikeServiceForTest()
	ctx := context.Background()

	movieRepo.On("GetByID", ctx, int64(7)).Return(&models.Movie{ID: 7}, nil)
	likeRepo.On("Transaction", ctx).Return(nil)
	likeRepo.On("FindForUpdate", ctx, "user-1", models.TargetMovie, int64(7)).Return(nil, nil)
	likeRepo.On("Create", ctx, mock.AnythingOfType("*models.Like")).Return(nil)
	likeRepo.On("CountActive", ctx, models.TargetMovie, int64(7)).Return(int64(1), nil)
	stats.On("InvalidateMovie", ctx, int64(7)).Return()

	result, err := svc.Toggle(ctx, "user-1", "movie", 7)

	assert.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, int64(1), result.LikesCount)
	likeRepo.AssertExpectations(t)
	stats.AssertExpectations(t)
}

func TestToggle_ActiveLikeIsSoftDeleted(t *testing.T) {
	svc, likeRepo, movieRepo, _, stats := newLikeServiceForTest()
	ctx := context.Background()

	active := &models.Like{ID: 42, UserID: "user-1", TargetType: models.TargetMovie, TargetID: 7}
	movieRepo.On("GetByID", ctx, int64(7)).Return(&models.Movie{ID: 7}, nil)
	likeRepo.On("Transaction", ctx).Return(nil)
	likeRepo.On("FindForUpdate", ctx, "user-1", models.TargetMovie, int64(7)).Return(active, nil)
	likeRepo.On("SoftDelete", ctx, int64(42)).Return(nil)
	likeRepo.On("CountActive", ctx, models.TargetMovie, int64(7)).Return(int64(0), nil)
	stats.On("InvalidateMovie", ctx, int64(7)).Return()

	result, err := svc.Toggle(ctx, "user-1", "movie", 7)

	assert.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, int64(0), result.LikesCount)
	likeRepo.AssertExpectations(t)
	likeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestToggle_RelikeResurrectsSameRow(t *testing.T) {
	svc, likeRepo, movieRepo, _, stats := newLikeServiceForTest()
	ctx := context.Background()

	buried := &models.Like{
		ID:         42,
		UserID:     "user-1",
		TargetType: models.TargetMovie,
		TargetID:   7,
		DeletedAt:  gorm.DeletedAt{Time: time.Now(), Valid: true},
	}
	movieRepo.On("GetByID", ctx, int64(7)).Return(&models.Movie{ID: 7}, nil)
	likeRepo.On("Transaction", ctx).Return(nil)
	likeRepo.On("FindForUpdate", ctx, "user-1", models.TargetMovie, int64(7)).Return(buried, nil)
	likeRepo.On("Restore", ctx, int64(42)).Return(nil)
	likeRepo.On("CountActive", ctx, models.TargetMovie, int64(7)).Return(int64(1), nil)
	stats.On("InvalidateMovie", ctx, int64(7)).Return()

	result, err := svc.Toggle(ctx, "user-1", "movie", 7)

	assert.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, int64(1), result.LikesCount)
	// The buried row comes back; no second physical row is created.
	likeRepo.AssertCalled(t, "Restore", ctx, int64(42))
	likeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestToggle_CommentTargetSkipsMovieInvalidation(t *testing.T) {
	svc, likeRepo, _, commentRepo, stats := newLikeServiceForTest()
	ctx := context.Background()

	commentRepo.On("GetByID", ctx, int64(9)).Return(&models.Comment{ID: 9, MovieID: 7}, nil)
	likeRepo.On("Transaction", ctx).Return(nil)
	likeRepo.On("FindForUpdate", ctx, "user-1", models.TargetComment, int64(9)).Return(nil, nil)
	likeRepo.On("Create", ctx, mock.AnythingOfType("*models.Like")).Return(nil)
	likeRepo.On("CountActive", ctx, models.TargetComment, int64(9)).Return(int64(3), nil)

	result, err := svc.Toggle(ctx, "user-1", "comment", 9)

	assert.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, int64(3), result.LikesCount)
	stats.AssertNotCalled(t, "InvalidateMovie", mock.Anything, mock.Anything)
}

func TestToggle_UnknownTargetType(t *testing.T) {
	svc, likeRepo, _, _, _ := newLikeServiceForTest()

	result, err := svc.Toggle(context.Background(), "user-1", "playlist", 7)

	assert.ErrorIs(t, err, ErrInvalidTarget)
	assert.Nil(t, result)
	likeRepo.AssertNotCalled(t, "Transaction", mock.Anything)
}

func TestToggle_TargetMissing(t *testing.T) {
	svc, likeRepo, movieRepo, _, _ := newLikeServiceForTest()
	ctx := context.Background()

	movieRepo.On("GetByID", ctx, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	result, err := svc.Toggle(ctx, "user-1", "movie", 404)

	assert.ErrorIs(t, err, ErrTargetNotFound)
	assert.Nil(t, result)
	likeRepo.AssertNotCalled(t, "Transaction", mock.Anything)
}

func TestToggle_InsertRaceEndsLiked(t *testing.T) {
	svc, likeRepo, movieRepo, _, stats := newLikeServiceForTest()
	ctx := context.Background()

	movieRepo.On("GetByID", ctx, int64(7)).Return(&models.Movie{ID: 7}, nil)
	likeRepo.On("Transaction", ctx).Return(nil)

	// First attempt: no row visible yet, insert loses to a concurrent call.
	likeRepo.On("FindForUpdate", ctx, "user-1", models.TargetMovie, int64(7)).Return(nil, nil).Once()
	likeRepo.On("Create", ctx, mock.AnythingOfType("*models.Like")).
		Return(&pgconn.PgError{Code: "23505"}).Once()

	// Retry sees the winner's row, soft-deleted by the winner's unlike.
	buried := &models.Like{
		ID:         42,
		UserID:     "user-1",
		TargetType: models.TargetMovie,
		TargetID:   7,
		DeletedAt:  gorm.DeletedAt{Time: time.Now(), Valid: true},
	}
	likeRepo.On("FindForUpdate", ctx, "user-1", models.TargetMovie, int64(7)).Return(buried, nil).Once()
	likeRepo.On("Restore", ctx, int64(42)).Return(nil).Once()
	likeRepo.On("CountActive", ctx, models.TargetMovie, int64(7)).Return(int64(1), nil)
	stats.On("InvalidateMovie", ctx, int64(7)).Return()

	result, err := svc.Toggle(ctx, "user-1", "movie", 7)

	assert.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, int64(1), result.LikesCount)
	likeRepo.AssertExpectations(t)
}

func TestToggle_InsertRaceKeepsActiveRow(t *testing.T) {
	svc, likeRepo, movieRepo, _, stats := newLikeServiceForTest()
	ctx := context.Background()

	movieRepo.On("GetByID", ctx, int64(7)).Return(&models.Movie{ID: 7}, nil)
	likeRepo.On("Transaction", ctx).Return(nil)

	likeRepo.On("FindForUpdate", ctx, "user-1", models.TargetMovie, int64(7)).Return(nil, nil).Once()
	likeRepo.On("Create", ctx, mock.AnythingOfType("*models.Like")).
		Return(&pgconn.PgError{Code: "23505"}).Once()

	// Retry finds the winner's row still active: nothing to restore, the
	// caller simply observes the liked state instead of flipping it off.
	active := &models.Like{ID: 42, UserID: "user-1", TargetType: models.TargetMovie, TargetID: 7}
	likeRepo.On("FindForUpdate", ctx, "user-1", models.TargetMovie, int64(7)).Return(active, nil).Once()
	likeRepo.On("CountActive", ctx, models.TargetMovie, int64(7)).Return(int64(1), nil)
	stats.On("InvalidateMovie", ctx, int64(7)).Return()

	result, err := svc.Toggle(ctx, "user-1", "movie", 7)

	assert.NoError(t, err)
	assert.True(t, result.Liked)
	likeRepo.AssertNotCalled(t, "Restore", mock.Anything, mock.Anything)
	likeRepo.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
}

func TestHasLiked(t *testing.T) {
	svc, likeRepo, _, _, _ := newLikeServiceForTest()
	ctx := context.Background()

	likeRepo.On("ExistsActive", ctx, "user-1", models.TargetMovie, int64(7)).Return(true, nil)

	liked, err := svc.HasLiked(ctx, "user-1", "movie", 7)

	assert.NoError(t, err)
	assert.True(t, liked)
}

func TestHasLiked_UnknownTargetType(t *testing.T) {
	svc, _, _, _, _ := newLikeServiceForTest()

	_, err := svc.HasLiked(context.Background(), "user-1", "actor", 7)

	assert.ErrorIs(t, err, ErrInvalidTarget)
}
