package model

import "time"

type FeedbackType string

const (
	FeedbackTypeComment      FeedbackType = "comment"
	FeedbackTypeResponse     FeedbackType = "response"
	FeedbackTypeInternalNote FeedbackType = "internal_note"
)

func (t FeedbackType) Valid() bool {
	switch t {
	case FeedbackTypeComment, FeedbackTypeResponse, FeedbackTypeInternalNote:
		return true
	}
	return false
}

// Feedback snapshots the author's name and role at write time so the
// thread stays readable after role changes or departures.
type Feedback struct {
	ID         int64        `json:"id"`
	ReviewID   int64        `json:"review_id"`
	AuthorID   int64        `json:"author_id"`
	AuthorName string       `json:"author_name"`
	AuthorRole Role         `json:"author_role"`
	Type       FeedbackType `json:"type"`
	Body       string       `json:"body"`
	Internal   bool         `json:"internal"`
	CreatedAt  time.Time    `json:"created_at"`
}
