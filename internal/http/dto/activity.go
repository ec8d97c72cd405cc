package dto

import (
	"time"

	"afriverse.co/editorial/internal/model"
)

type ActivityResponse struct {
	ID        int64     `json:"id,string"`
	PostID    int64     `json:"post_id,string"`
	ActorID   int64     `json:"actor_id,string"`
	ActorName string    `json:"actor_name"`
	ActorRole string    `json:"actor_role"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ToActivityResponse(a *model.Activity) *ActivityResponse {
	return &ActivityResponse{
		ID:        a.ID,
		PostID:    a.PostID,
		ActorID:   a.ActorID,
		ActorName: a.ActorName,
		ActorRole: string(a.ActorRole),
		Action:    string(a.Action),
		Detail:    a.Detail,
		CreatedAt: a.CreatedAt,
	}
}

func ToActivityResponses(items []model.Activity) []*ActivityResponse {
	out := make([]*ActivityResponse, len(items))
	for i := range items {
		out[i] = ToActivityResponse(&items[i])
	}
	return out
}
