package dto

import (
	"time"

	"afriverse.co/editorial/internal/model"
)

type AddFeedbackRequest struct {
	Type     string `json:"type" binding:"required,oneof=comment response internal_note"`
	Body     string `json:"body" binding:"required,max=10000"`
	Internal bool   `json:"internal"`
}

type FeedbackResponse struct {
	ID         int64     `json:"id,string"`
	ReviewID   int64     `json:"review_id,string"`
	AuthorID   int64     `json:"author_id,string"`
	AuthorName string    `json:"author_name"`
	AuthorRole string    `json:"author_role"`
	Type       string    `json:"type"`
	Body       string    `json:"body"`
	Internal   bool      `json:"internal"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToFeedbackResponse(f *model.Feedback) *FeedbackResponse {
	return &FeedbackResponse{
		ID:         f.ID,
		ReviewID:   f.ReviewID,
		AuthorID:   f.AuthorID,
		AuthorName: f.AuthorName,
		AuthorRole: string(f.AuthorRole),
		Type:       string(f.Type),
		Body:       f.Body,
		Internal:   f.Internal,
		CreatedAt:  f.CreatedAt,
	}
}

func ToFeedbackResponses(items []model.Feedback) []*FeedbackResponse {
	out := make([]*FeedbackResponse, len(items))
	for i := range items {
		out[i] = ToFeedbackResponse(&items[i])
	}
	return out
}
