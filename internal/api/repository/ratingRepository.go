package repository

import (
	"context"

	"kinohub/internal/api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository interface {
	Upsert(ctx context.Context, rating *models.Rating) error
	Delete(ctx context.Context, userID string, movieID int64) error
	GetByUserAndMovie(ctx context.Context, userID string, movieID int64) (*models.Rating, error)
	GetByMovie(ctx context.Context, movieID int64, page, pageSize int) ([]models.Rating, int64, error)
	AverageForMovie(ctx context.Context, movieID int64) (float64, error)
	AverageForMovies(ctx context.Context, movieIDs []int64) (map[int64]float64, error)
	CountForMovie(ctx context.Context, movieID int64) (int64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert inserts the rating or, when the (user, movie) pair already exists,
// overwrites the stored score in place. Exactly one row per pair holds after
// the call regardless of interleaving.
func (r *ratingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "movie_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(rating).Error
}

func (r *ratingRepository) Delete(ctx context.Context, userID string, movieID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&models.Rating{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ratingRepository) GetByUserAndMovie(ctx context.Context, userID string, movieID int64) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Preload("User").
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) GetByMovie(ctx context.Context, movieID int64, page, pageSize int) ([]models.Rating, int64, error) {
	var ratings []models.Rating
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Rating{}).Where("movie_id = ?", movieID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Preload("User").
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&ratings).Error
	if err != nil {
		return nil, 0, err
	}

	return ratings, total, nil
}

// AverageForMovie returns the mean score for a movie, 0 when unrated.
func (r *ratingRepository) AverageForMovie(ctx context.Context, movieID int64) (float64, error) {
	var avg struct {
		Average float64
	}
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("COALESCE(AVG(score), 0) as average").
		Where("movie_id = ?", movieID).
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	return avg.Average, nil
}

// AverageForMovies computes the mean score for many movies in one grouped
// query. Movies with no ratings are absent from the result map.
func (r *ratingRepository) AverageForMovies(ctx context.Context, movieIDs []int64) (map[int64]float64, error) {
	averages := make(map[int64]float64, len(movieIDs))
	if len(movieIDs) == 0 {
		return averages, nil
	}

	var rows []struct {
		MovieID int64
		Average float64
	}
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("movie_id, AVG(score) as average").
		Where("movie_id IN ?", movieIDs).
		Group("movie_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		averages[row.MovieID] = row.Average
	}
	return averages, nil
}

func (r *ratingRepository) CountForMovie(ctx context.Context, movieID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Rating{}).Where("movie_id = ?", movieID).Count(&count).Error
	return count, err
}
