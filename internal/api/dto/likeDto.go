package dto

// ToggleLikeDTO identifies the target of a like toggle. The same shape is
// bound from query parameters on the status endpoint.
type ToggleLikeDTO struct {
	TargetType string `json:"target_type" form:"target_type" binding:"required,oneof=movie comment"`
	TargetID   int64  `json:"target_id" form:"target_id" binding:"required,min=1"`
}

// ToggleLikeResponse reports the state after the toggle.
type ToggleLikeResponse struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}
