package repository

import (
	"context"
	"errors"

	"kinohub/internal/api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository exposes the primitives the toggle state machine is built
// from. FindForUpdate sees soft-deleted rows: the physical uniqueness of
// (user, target_type, target_id) means the deleted row must be restored on
// re-like, never duplicated.
type LikeRepository interface {
	// Transaction runs fn against a repository bound to one transaction.
	Transaction(ctx context.Context, fn func(LikeRepository) error) error
	FindForUpdate(ctx context.Context, userID string, targetType models.TargetType, targetID int64) (*models.Like, error)
	Create(ctx context.Context, like *models.Like) error
	SoftDelete(ctx context.Context, likeID int64) error
	Restore(ctx context.Context, likeID int64) error
	CountActive(ctx context.Context, targetType models.TargetType, targetID int64) (int64, error)
	CountActiveForTargets(ctx context.Context, targetType models.TargetType, targetIDs []int64) (map[int64]int64, error)
	ExistsActive(ctx context.Context, userID string, targetType models.TargetType, targetID int64) (bool, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Transaction(ctx context.Context, fn func(LikeRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&likeRepository{db: tx})
	})
}

// FindForUpdate loads the physical like row for the triple, deleted or not,
// locking it so concurrent toggles by the same user serialize. Returns
// (nil, nil) when no row exists yet.
func (r *likeRepository) FindForUpdate(ctx context.Context, userID string, targetType models.TargetType, targetID int64) (*models.Like, error) {
	var like models.Like
	err := r.db.WithContext(ctx).
		Unscoped().
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).
		First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) Create(ctx context.Context, like *models.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *likeRepository) SoftDelete(ctx context.Context, likeID int64) error {
	return r.db.WithContext(ctx).Delete(&models.Like{}, likeID).Error
}

// Restore clears the deletion timestamp, reviving the existing row in place.
func (r *likeRepository) Restore(ctx context.Context, likeID int64) error {
	return r.db.WithContext(ctx).
		Unscoped().
		Model(&models.Like{}).
		Where("id = ?", likeID).
		Update("deleted_at", nil).Error
}

// CountActive counts non-deleted likes for one target. The default scope
// already excludes soft-deleted rows.
func (r *likeRepository) CountActive(ctx context.Context, targetType models.TargetType, targetID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Count(&count).Error
	return count, err
}

// CountActiveForTargets counts likes for many targets of one kind in a single
// grouped query. Targets with no likes are absent from the result map.
func (r *likeRepository) CountActiveForTargets(ctx context.Context, targetType models.TargetType, targetIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(targetIDs))
	if len(targetIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		TargetID int64
		Total    int64
	}
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Select("target_id, COUNT(*) as total").
		Where("target_type = ? AND target_id IN ?", targetType, targetIDs).
		Group("target_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.TargetID] = row.Total
	}
	return counts, nil
}

func (r *likeRepository) ExistsActive(ctx context.Context, userID string, targetType models.TargetType, targetID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
