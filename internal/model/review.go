package model

import "time"

type ReviewStatus string

const (
	ReviewStatusPending           ReviewStatus = "pending"
	ReviewStatusInReview          ReviewStatus = "in_review"
	ReviewStatusChangesRequested  ReviewStatus = "changes_requested"
	ReviewStatusRevisionSubmitted ReviewStatus = "revision_submitted"
	ReviewStatusApproved          ReviewStatus = "approved"
	ReviewStatusPublished         ReviewStatus = "published"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityUrgent:
		return true
	}
	return false
}

// Review tracks a post's trip through the editorial pipeline. There is
// at most one review row per post; resubmissions reuse it.
type Review struct {
	ID          int64        `json:"id"`
	PostID      int64        `json:"post_id"`
	Status      ReviewStatus `json:"status"`
	Priority    Priority     `json:"priority"`
	ReviewerID  *int64       `json:"reviewer_id,omitempty"`
	ClaimedAt   *time.Time   `json:"claimed_at,omitempty"`
	PublishedAt *time.Time   `json:"published_at,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
