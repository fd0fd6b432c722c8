package handler

import (
	"errors"
	"net/http"
	"strconv"

	"kinohub/internal/api/dto"
	"kinohub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RegisterPublicRoutes registers rating read routes.
func (h *RatingHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/movies/:id/ratings", h.ListForMovie)
	router.GET("/movies/:id/ratings/average", h.Average)
}

// RegisterRoutes registers rating write routes on an authenticated group.
func (h *RatingHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.PUT("/movies/:id/rating", h.Rate)
	router.GET("/movies/:id/rating", h.MyRating)
	router.DELETE("/movies/:id/rating", h.Delete)
}

// Rate sets or replaces the caller's score for a movie.
func (h *RatingHandler) Rate(c *gin.Context) {
	userID := c.GetString("userID")

	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return
	}

	var req dto.RateMovieDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.ratingService.RateMovie(c.Request.Context(), userID, movieID, req.Score)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidScore):
			c.JSON(http.StatusBadRequest, gin.H{"error": "score must be between 1 and 5"})
		case errors.Is(err, service.ErrMovieNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save rating"})
		}
		return
	}

	c.JSON(http.StatusOK, rating)
}

func (h *RatingHandler) MyRating(c *gin.Context) {
	userID := c.GetString("userID")

	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return
	}

	rating, err := h.ratingService.GetUserRating(c.Request.Context(), userID, movieID)
	if err != nil {
		if errors.Is(err, service.ErrRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "rating not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch rating"})
		return
	}

	c.JSON(http.StatusOK, rating)
}

func (h *RatingHandler) Delete(c *gin.Context) {
	userID := c.GetString("userID")

	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return
	}

	if err := h.ratingService.DeleteRating(c.Request.Context(), userID, movieID); err != nil {
		if errors.Is(err, service.ErrRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "rating not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete rating"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RatingHandler) ListForMovie(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return
	}

	var query dto.PaginationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.ratingService.GetMovieRatings(c.Request.Context(), movieID, query.Page, query.PageSize)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list ratings"})
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *RatingHandler) Average(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return
	}

	avg, err := h.ratingService.GetMovieAverage(c.Request.Context(), movieID)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute average"})
		return
	}

	c.JSON(http.StatusOK, avg)
}
