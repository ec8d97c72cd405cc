package dto

import (
	"time"

	"afriverse.co/editorial/internal/model"
)

type SubmitRequest struct {
	Priority string `json:"priority" binding:"omitempty,oneof=low normal urgent"`
	Note     string `json:"note" binding:"max=5000"`
}

type ResubmitRequest struct {
	Note string `json:"note" binding:"max=5000"`
}

type DecisionRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approve request_changes"`
	Note     string `json:"note" binding:"max=5000"`
}

type ScheduleRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

type ReviewResponse struct {
	ID          int64      `json:"id,string"`
	PostID      int64      `json:"post_id,string"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	ReviewerID  *int64     `json:"reviewer_id,string,omitempty"`
	ClaimedAt   *time.Time `json:"claimed_at,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func ToReviewResponse(r *model.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:          r.ID,
		PostID:      r.PostID,
		Status:      string(r.Status),
		Priority:    string(r.Priority),
		ReviewerID:  r.ReviewerID,
		ClaimedAt:   r.ClaimedAt,
		PublishedAt: r.PublishedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
