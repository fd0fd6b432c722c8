package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MinYear = 1900
	MaxYear = 2100
)

type Movie struct {
	ID          int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string         `json:"title" gorm:"not null;size:255"`
	Description string         `json:"description" gorm:"not null;type:text"`
	Year        int            `json:"year" gorm:"not null;index;check:year >= 1900 AND year <= 2100"`
	Genre       string         `json:"genre" gorm:"not null;size:100;index"`
	Duration    int            `json:"duration" gorm:"not null"` // minutes
	PosterURL   *string        `json:"poster_url,omitempty"`
	VideoURL    *string        `json:"video_url,omitempty"`
	CreatedAt   time.Time      `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Movie) TableName() string {
	return "movies"
}
