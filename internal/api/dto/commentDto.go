package dto

import (
	"time"

	"kinohub/internal/api/models"
)

// CreateCommentDTO for creating a comment on a movie
type CreateCommentDTO struct {
	Text     string `json:"text" binding:"required,min=1,max=5000"`
	ParentID *int64 `json:"parent_id,omitempty"`
}

// CommentResponse for returning comment information
type CommentResponse struct {
	ID         int64             `json:"id"`
	MovieID    int64             `json:"movie_id"`
	Username   string            `json:"username"`
	Text       string            `json:"text"`
	ParentID   *int64            `json:"parent_id,omitempty"`
	LikesCount int64             `json:"likes_count"`
	CreatedAt  time.Time         `json:"created_at"`
	Replies    []CommentResponse `json:"replies,omitempty"`
}

// FromModelToCommentResponse converts a Comment model to CommentResponse DTO.
// likesCounts maps comment id to its active like count for this comment and
// its replies; missing ids count as zero.
func FromModelToCommentResponse(comment *models.Comment, likesCounts map[int64]int64) *CommentResponse {
	resp := &CommentResponse{
		ID:         comment.ID,
		MovieID:    comment.MovieID,
		Username:   comment.User.Username,
		Text:       comment.Text,
		ParentID:   comment.ParentID,
		LikesCount: likesCounts[comment.ID],
		CreatedAt:  comment.CreatedAt,
	}
	for i := range comment.Replies {
		resp.Replies = append(resp.Replies, *FromModelToCommentResponse(&comment.Replies[i], likesCounts))
	}
	return resp
}
