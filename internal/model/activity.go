package model

import "time"

type ActivityAction string

const (
	ActivityCreated            ActivityAction = "created"
	ActivityEdited             ActivityAction = "edited"
	ActivitySubmittedForReview ActivityAction = "submitted_for_review"
	ActivityClaimed            ActivityAction = "claimed"
	ActivityFeedback           ActivityAction = "feedback"
	ActivityChangesRequested   ActivityAction = "changes_requested"
	ActivityResubmitted        ActivityAction = "resubmitted"
	ActivityApproved           ActivityAction = "approved"
	ActivityScheduled          ActivityAction = "scheduled"
	ActivityPublished          ActivityAction = "published"
	ActivityUnpublished        ActivityAction = "unpublished"
	ActivityArchived           ActivityAction = "archived"
)

// Activity is one append-only audit entry on a post's timeline. Actor
// name and role are captured at write time.
type Activity struct {
	ID        int64          `json:"id"`
	PostID    int64          `json:"post_id"`
	ActorID   int64          `json:"actor_id"`
	ActorName string         `json:"actor_name"`
	ActorRole Role           `json:"actor_role"`
	Action    ActivityAction `json:"action"`
	Detail    string         `json:"detail,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
