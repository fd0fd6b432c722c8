package dto

import (
	"time"

	"kinohub/internal/api/models"
)

// RateMovieDTO for creating or updating a rating
type RateMovieDTO struct {
	Score int `json:"score" binding:"required,min=1,max=5"`
}

// RatingResponse for returning rating information
type RatingResponse struct {
	Username  string    `json:"username"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromModelToRatingResponse converts a Rating model to RatingResponse DTO
func FromModelToRatingResponse(rating *models.Rating) *RatingResponse {
	return &RatingResponse{
		Username:  rating.User.Username,
		Score:     rating.Score,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
}

// AverageRatingResponse for the per-movie average endpoint
type AverageRatingResponse struct {
	MovieID       int64   `json:"movie_id"`
	AverageRating float64 `json:"average_rating"`
	RatingsCount  int64   `json:"ratings_count"`
}
