package models

import (
	"time"

	"gorm.io/gorm"
)

// Review is a long-form critique with its own score. Unlike Rating, a second
// review for the same (user, movie) pair is rejected rather than merged.
// The unique index is partial so a soft-deleted review does not block a new one.
type Review struct {
	ID        int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string         `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_review_user_movie,where:deleted_at IS NULL"`
	MovieID   int64          `json:"movie_id" gorm:"not null;uniqueIndex:idx_review_user_movie,where:deleted_at IS NULL;index"`
	Title     string         `json:"title" gorm:"not null;size:255"`
	Text      string         `json:"text" gorm:"not null;type:text"`
	Rating    int            `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Associations
	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Movie Movie `json:"movie,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
}

func (Review) TableName() string {
	return "reviews"
}
