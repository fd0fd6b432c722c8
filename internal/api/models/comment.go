package models

import (
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	ID        int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	MovieID   int64          `json:"movie_id" gorm:"not null;index"`
	UserID    string         `json:"user_id" gorm:"type:uuid;not null;index"`
	Text      string         `json:"text" gorm:"not null;type:text"`
	ParentID  *int64         `json:"parent_id,omitempty" gorm:"index"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Associations
	User    User      `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Movie   Movie     `json:"movie,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
	Replies []Comment `json:"replies,omitempty" gorm:"foreignKey:ParentID"`
}

func (Comment) TableName() string {
	return "comments"
}
