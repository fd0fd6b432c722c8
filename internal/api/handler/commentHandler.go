package handler

import (
	"errors"
	"net/http"
	"strconv"

	"kinohub/internal/api/dto"
	"kinohub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// RegisterPublicRoutes registers the comment read routes.
func (h *CommentHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/movies/:id/comments", h.ListForMovie)
}

// RegisterRoutes registers comment write routes on an authenticated group.
func (h *CommentHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/movies/:id/comments", h.Create)
	router.DELETE("/comments/:id", h.Delete)
}

// Create posts a top-level comment or a reply on a movie.
func (h *CommentHandler) Create(c *gin.Context) {
	userID := c.GetString("userID")

	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return
	}

	var req dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), userID, movieID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMovieNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
		case errors.Is(err, service.ErrCommentNotFound), errors.Is(err, service.ErrInvalidParent):
			c.JSON(http.StatusBadRequest, gin.H{"error": "parent comment is missing or belongs to another movie"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to post comment"})
		}
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// ListForMovie returns the movie's comment threads: top-level comments with
// nested replies, each annotated with its active like count.
func (h *CommentHandler) ListForMovie(c *gin.Context) {
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

	page, err := h.commentService.GetByMovie(c.Request.Context(), movieID, query.Page, query.PageSize)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list comments"})
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	userID := c.GetString("userID")
	isAdmin := c.GetBool("isAdmin")

	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), userID, isAdmin, commentID); err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete comment"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
