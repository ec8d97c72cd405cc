package dto

import (
	"time"

	"afriverse.co/editorial/internal/model"
	"afriverse.co/editorial/internal/workflow"
)

type CreatePostRequest struct {
	Title    string `json:"title" binding:"required,min=1,max=200"`
	Excerpt  string `json:"excerpt" binding:"max=500"`
	Category string `json:"category" binding:"max=100"`
	Body     string `json:"body"`
}

type UpdatePostRequest struct {
	Title    string `json:"title" binding:"required,min=1,max=200"`
	Excerpt  string `json:"excerpt" binding:"max=500"`
	Category string `json:"category" binding:"max=100"`
	Body     string `json:"body"`
}

type PostResponse struct {
	ID             int64      `json:"id,string"`
	AuthorID       int64      `json:"author_id,string"`
	Title          string     `json:"title"`
	Slug           string     `json:"slug"`
	Excerpt        string     `json:"excerpt"`
	Category       string     `json:"category"`
	Body           string     `json:"body"`
	WordCount      int32      `json:"word_count"`
	Status         string     `json:"status"`
	AllowedActions []string   `json:"allowed_actions"`
	ScheduledAt    *time.Time `json:"scheduled_at,omitempty"`
	PublishedAt    *time.Time `json:"published_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func ToPostResponse(p *model.Post) *PostResponse {
	actions := workflow.AllowedActions(p.Status)
	actionNames := make([]string, len(actions))
	for i, a := range actions {
		actionNames[i] = string(a)
	}

	return &PostResponse{
		ID:             p.ID,
		AuthorID:       p.AuthorID,
		Title:          p.Title,
		Slug:           p.Slug,
		Excerpt:        p.Excerpt,
		Category:       p.Category,
		Body:           p.Body,
		WordCount:      p.WordCount,
		Status:         string(p.Status),
		AllowedActions: actionNames,
		ScheduledAt:    p.ScheduledAt,
		PublishedAt:    p.PublishedAt,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func ToPostResponses(posts []model.Post) []*PostResponse {
	out := make([]*PostResponse, len(posts))
	for i := range posts {
		out[i] = ToPostResponse(&posts[i])
	}
	return out
}
