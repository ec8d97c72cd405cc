package model

import "time"

type PostStatus string

const (
	PostStatusDraft            PostStatus = "draft"
	PostStatusPendingReview    PostStatus = "pending_review"
	PostStatusInReview         PostStatus = "in_review"
	PostStatusChangesRequested PostStatus = "changes_requested"
	PostStatusApproved         PostStatus = "approved"
	PostStatusScheduled        PostStatus = "scheduled"
	PostStatusPublished        PostStatus = "published"
	PostStatusArchived         PostStatus = "archived"
)

// Editable reports whether the author may still modify the content.
// Once a post enters the review pipeline, edits go through the review
// resubmission path instead.
func (s PostStatus) Editable() bool {
	return s == PostStatusDraft || s == PostStatusChangesRequested
}

func (s PostStatus) Valid() bool {
	switch s {
	case PostStatusDraft, PostStatusPendingReview, PostStatusInReview,
		PostStatusChangesRequested, PostStatusApproved, PostStatusScheduled,
		PostStatusPublished, PostStatusArchived:
		return true
	}
	return false
}

type Post struct {
	ID          int64      `json:"id"`
	AuthorID    int64      `json:"author_id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Category    string     `json:"category"`
	Body        string     `json:"body"`
	WordCount   int32      `json:"word_count"`
	Status      PostStatus `json:"status"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
