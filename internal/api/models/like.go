package models

import (
	"time"

	"gorm.io/gorm"
)

// TargetType discriminates which entity a Like points to.
type TargetType string

const (
	TargetMovie   TargetType = "movie"
	TargetComment TargetType = "comment"
)

func (t TargetType) Valid() bool {
	return t == TargetMovie || t == TargetComment
}

// Like attaches a user's reaction to a movie or a comment through one table.
// The unique index spans the physical row, deleted or not: unliking soft-deletes
// the row and liking again must resurrect that same row, never insert a second one.
type Like struct {
	ID         int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     string         `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_like_user_target"`
	TargetType TargetType     `json:"target_type" gorm:"size:20;not null;uniqueIndex:idx_like_user_target"`
	TargetID   int64          `json:"target_id" gorm:"not null;uniqueIndex:idx_like_user_target;index:idx_like_target"`
	CreatedAt  time.Time      `json:"created_at" gorm:"autoCreateTime"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (Like) TableName() string {
	return "likes"
}
