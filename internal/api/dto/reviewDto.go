package dto

import (
	"time"

	"kinohub/internal/api/models"
)

// CreateReviewDTO for creating a review
type CreateReviewDTO struct {
	MovieID int64  `json:"movie_id" binding:"required,min=1"`
	Title   string `json:"title" binding:"required,max=255"`
	Text    string `json:"text" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

// UpdateReviewDTO for partial updates of a review
type UpdateReviewDTO struct {
	Title  *string `json:"title,omitempty" binding:"omitempty,max=255"`
	Text   *string `json:"text,omitempty"`
	Rating *int    `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
}

// ReviewResponse for returning review information
type ReviewResponse struct {
	ID        int64     `json:"id"`
	MovieID   int64     `json:"movie_id"`
	Username  string    `json:"username"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromModelToReviewResponse converts a Review model to ReviewResponse DTO
func FromModelToReviewResponse(review *models.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        review.ID,
		MovieID:   review.MovieID,
		Username:  review.User.Username,
		Title:     review.Title,
		Text:      review.Text,
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}
