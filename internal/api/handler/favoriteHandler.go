package handler

import (
	"errors"
	"net/http"
	"strconv"

	"kinohub/internal/api/dto"
	"kinohub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// RegisterRoutes registers favorite routes on an authenticated group.
func (h *FavoriteHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/favorites", h.List)
	router.POST("/favorites", h.Add)
	router.DELETE("/favorites/:id", h.Remove)
}

func (h *FavoriteHandler) Add(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.AddFavoriteDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	favorite, err := h.favoriteService.Add(c.Request.Context(), userID, req.MovieID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMovieNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
		case errors.Is(err, service.ErrAlreadyFavorite):
			c.JSON(http.StatusConflict, gin.H{"error": "movie already in favorites"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add favorite"})
		}
		return
	}

	c.JSON(http.StatusCreated, favorite)
}

func (h *FavoriteHandler) List(c *gin.Context) {
	userID := c.GetString("userID")

	var query dto.PaginationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.favoriteService.List(c.Request.Context(), userID, query.Page, query.PageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list favorites"})
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID := c.GetString("userID")
	isAdmin := c.GetBool("isAdmin")

	favoriteID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid favorite id"})
		return
	}

	if err := h.favoriteService.Remove(c.Request.Context(), userID, isAdmin, favoriteID); err != nil {
		switch {
		case errors.Is(err, service.ErrFavoriteNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "favorite not found"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove favorite"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
