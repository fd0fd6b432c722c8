package handler

import (
	"errors"
	"net/http"

	"kinohub/internal/api/dto"
	"kinohub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeService service.LikeService
}

func NewLikeHandler(likeService service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// RegisterRoutes registers like routes on an authenticated group.
func (h *LikeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/likes/toggle", h.Toggle)
	router.GET("/likes/status", h.Status)
}

// Toggle flips the caller's like on a movie or a comment and returns the new
// state together with the target's active like count.
func (h *LikeHandler) Toggle(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.ToggleLikeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.likeService.Toggle(c.Request.Context(), userID, req.TargetType, req.TargetID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTarget):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown target type"})
		case errors.Is(err, service.ErrTargetNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "target not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle like"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// Status reports whether the caller currently likes the given target.
func (h *LikeHandler) Status(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.ToggleLikeDTO
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	liked, err := h.likeService.HasLiked(c.Request.Context(), userID, req.TargetType, req.TargetID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTarget) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown target type"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch like status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}
