package models

import "time"

const (
	MinScore = 1
	MaxScore = 5
)

// Rating is a single user's score for a movie. The (user, movie) pair is
// unique: re-rating overwrites the existing row instead of adding one.
type Rating struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_rating_user_movie"`
	MovieID   int64     `json:"movie_id" gorm:"not null;uniqueIndex:idx_rating_user_movie;index"`
	Score     int       `json:"score" gorm:"not null;check:score >= 1 AND score <= 5"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Movie Movie `json:"movie,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
}

func (Rating) TableName() string {
	return "ratings"
}
