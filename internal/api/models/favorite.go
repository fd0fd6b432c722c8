package models

import "time"

// Favorite is a plain (user, movie) bookmark. Removal is a hard delete, so
// re-adding after a remove is an ordinary insert against the unique pair.
type Favorite struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_favorite_user_movie"`
	MovieID   int64     `json:"movie_id" gorm:"not null;uniqueIndex:idx_favorite_user_movie;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Movie *Movie `json:"movie,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
}

func (Favorite) TableName() string {
	return "favorites"
}
