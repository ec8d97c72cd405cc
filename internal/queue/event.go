package queue

// EventType identifies a workflow event that fans out as notifications.
type EventType string

const (
	EventReviewSubmitted   EventType = "review.submitted"
	EventReviewResubmitted EventType = "review.resubmitted"
	EventChangesRequested  EventType = "review.changes_requested"
	EventReviewApproved    EventType = "review.approved"
	EventFeedbackAdded     EventType = "review.feedback"
	EventPostPublished     EventType = "post.published"
)

func (t EventType) Valid() bool {
	switch t {
	case EventReviewSubmitted, EventReviewResubmitted, EventChangesRequested,
		EventReviewApproved, EventFeedbackAdded, EventPostPublished:
		return true
	}
	return false
}
