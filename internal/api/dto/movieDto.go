package dto

import (
	"time"

	"kinohub/internal/api/models"
)

// CreateMovieDTO for creating a movie (admin only)
type CreateMovieDTO struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"required"`
	Year        int    `json:"year" binding:"required,min=1900,max=2100"`
	Genre       string `json:"genre" binding:"required,max=100"`
	Duration    int    `json:"duration" binding:"required,min=1"` // minutes
}

// UpdateMovieDTO for partial updates of a movie (admin only)
type UpdateMovieDTO struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,max=255"`
	Description *string `json:"description,omitempty"`
	Year        *int    `json:"year,omitempty" binding:"omitempty,min=1900,max=2100"`
	Genre       *string `json:"genre,omitempty" binding:"omitempty,max=100"`
	Duration    *int    `json:"duration,omitempty" binding:"omitempty,min=1"`
}

// UpdateMediaDTO sets poster/video references on a movie (admin only)
type UpdateMediaDTO struct {
	PosterURL *string `json:"poster_url,omitempty" binding:"omitempty,url"`
	VideoURL  *string `json:"video_url,omitempty" binding:"omitempty,url"`
}

// SearchMoviesQuery binds the search endpoint's query parameters.
type SearchMoviesQuery struct {
	Query    string `form:"query"`
	Genre    string `form:"genre"`
	YearFrom int    `form:"year_from" binding:"omitempty,min=1900,max=2100"`
	YearTo   int    `form:"year_to" binding:"omitempty,min=1900,max=2100"`
	Ordering string `form:"ordering,default=-created_at" binding:"omitempty,oneof=created_at -created_at year -year title -title average_rating -average_rating"`
	Page     int    `form:"page,default=1" binding:"min=1"`
	PageSize int    `form:"page_size,default=20" binding:"min=1,max=100"`
}

// MovieStats carries the computed aggregates for one movie.
type MovieStats struct {
	AverageRating float64 `json:"average_rating"`
	LikesCount    int64   `json:"likes_count"`
}

// MovieResponse is a movie with its aggregates precomputed. The stats fields
// are populated by the aggregation pass, never stored on the model.
type MovieResponse struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Year          int       `json:"year"`
	Genre         string    `json:"genre"`
	Duration      int       `json:"duration"`
	PosterURL     *string   `json:"poster_url,omitempty"`
	VideoURL      *string   `json:"video_url,omitempty"`
	AverageRating float64   `json:"average_rating"`
	LikesCount    int64     `json:"likes_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// FromModelToMovieResponse converts a Movie model plus its stats to a response DTO
func FromModelToMovieResponse(movie *models.Movie, stats MovieStats) *MovieResponse {
	return &MovieResponse{
		ID:            movie.ID,
		Title:         movie.Title,
		Description:   movie.Description,
		Year:          movie.Year,
		Genre:         movie.Genre,
		Duration:      movie.Duration,
		PosterURL:     movie.PosterURL,
		VideoURL:      movie.VideoURL,
		AverageRating: stats.AverageRating,
		LikesCount:    stats.LikesCount,
		CreatedAt:     movie.CreatedAt,
	}
}
