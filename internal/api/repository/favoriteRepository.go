package repository

import (
	"context"
	"fmt"

	"kinohub/internal/api/models"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Add(ctx context.Context, userID string, movieID int64) (*models.Favorite, error)
	Remove(ctx context.Context, favoriteID int64) error
	GetByID(ctx context.Context, favoriteID int64) (*models.Favorite, error)
	List(ctx context.Context, userID string, page, pageSize int) ([]models.Favorite, int64, error)
	Exists(ctx context.Context, userID string, movieID int64) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Add(ctx context.Context, userID string, movieID int64) (*models.Favorite, error) {
	favorite := &models.Favorite{
		UserID:  userID,
		MovieID: movieID,
	}
	if err := r.db.WithContext(ctx).Create(favorite).Error; err != nil {
		return nil, fmt.Errorf("add favorite: %w", err)
	}
	return favorite, nil
}

// Remove hard-deletes the bookmark so the same movie can be favorited again.
func (r *favoriteRepository) Remove(ctx context.Context, favoriteID int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Favorite{}, favoriteID)
	if result.Error != nil {
		return fmt.Errorf("remove favorite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *favoriteRepository) GetByID(ctx context.Context, favoriteID int64) (*models.Favorite, error) {
	var favorite models.Favorite
	if err := r.db.WithContext(ctx).First(&favorite, favoriteID).Error; err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) List(ctx context.Context, userID string, page, pageSize int) ([]models.Favorite, int64, error) {
	var favorites []models.Favorite
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Favorite{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.WithContext(ctx).
		Preload("Movie").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&favorites).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list favorites: %w", err)
	}

	return favorites, total, nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID string, movieID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
