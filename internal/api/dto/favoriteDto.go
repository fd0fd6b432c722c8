package dto

import (
	"time"

	"kinohub/internal/api/models"
)

// AddFavoriteDTO for bookmarking a movie
type AddFavoriteDTO struct {
	MovieID int64 `json:"movie_id" binding:"required,min=1"`
}

// FavoriteResponse for returning favorite information
type FavoriteResponse struct {
	ID        int64     `json:"id"`
	MovieID   int64     `json:"movie_id"`
	Title     string    `json:"title"`
	Year      int       `json:"year"`
	PosterURL *string   `json:"poster_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FromModelToFavoriteResponse converts a Favorite model to FavoriteResponse DTO
func FromModelToFavoriteResponse(favorite *models.Favorite) *FavoriteResponse {
	resp := &FavoriteResponse{
		ID:        favorite.ID,
		MovieID:   favorite.MovieID,
		CreatedAt: favorite.CreatedAt,
	}
	if favorite.Movie != nil {
		resp.Title = favorite.Movie.Title
		resp.Year = favorite.Movie.Year
		resp.PosterURL = favorite.Movie.PosterURL
	}
	return resp
}
