package store

import (
	"context"
	"errors"
	"time"

	"afriverse.co/editorial/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// PostStore defines the contract for post data access
type PostStore interface {
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	GetBySlug(ctx context.Context, slug string) (*model.Post, error)
	Create(ctx context.Context, post *model.Post) error
	UpdateContent(ctx context.Context, post *model.Post) error
	// SetStatus moves the post to the given status, also persisting
	// scheduled/published timestamps when relevant.
	SetStatus(ctx context.Context, id int64, status model.PostStatus, scheduledAt, publishedAt *time.Time) (*model.Post, error)
	// ClaimPending transitions the post from pending_review to
	// in_review as a single conditional update. ErrNotFound means the
	// post was not in pending_review (missing, or already claimed).
	ClaimPending(ctx context.Context, id int64) (*model.Post, error)
	DeleteDraft(ctx context.Context, id int64) error
	ListByAuthor(ctx context.Context, authorID int64) ([]model.Post, error)
	ListByStatus(ctx context.Context, status model.PostStatus) ([]model.Post, error)
	ListDueScheduled(ctx context.Context, limit int32) ([]model.Post, error)
}

// ReviewStore defines the contract for review data access
type ReviewStore interface {
	GetByID(ctx context.Context, id int64) (*model.Review, error)
	GetByPost(ctx context.Context, postID int64) (*model.Review, error)
	// UpsertForSubmission creates the post's review row or, when one
	// already exists, resets it to pending with no reviewer.
	UpsertForSubmission(ctx context.Context, id, postID int64, priority model.Priority) (*model.Review, error)
	Claim(ctx context.Context, postID, reviewerID int64) (*model.Review, error)
	SetStatus(ctx context.Context, postID int64, status model.ReviewStatus) (*model.Review, error)
	MarkPublished(ctx context.Context, postID int64) (*model.Review, error)
}

// FeedbackStore defines the contract for review feedback data access
type FeedbackStore interface {
	Create(ctx context.Context, fb *model.Feedback) error
	ListByReview(ctx context.Context, reviewID int64) ([]model.Feedback, error)
	// ListPublicByReview omits internal notes.
	ListPublicByReview(ctx context.Context, reviewID int64) ([]model.Feedback, error)
}

// ActivityStore defines the contract for the append-only audit trail
type ActivityStore interface {
	Create(ctx context.Context, a *model.Activity) error
	ListByPost(ctx context.Context, postID int64) ([]model.Activity, error)
}

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByWorkOSID(ctx context.Context, workosID string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	UpsertByWorkOSID(ctx context.Context, user *model.User) error
	SetRole(ctx context.Context, id int64, role model.Role) (*model.User, error)
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)
	// ListEditorialStaff returns all users with editor rank or higher.
	ListEditorialStaff(ctx context.Context) ([]model.User, error)
}

// SessionStore defines the contract for session data access
type SessionStore interface {
	GetByID(ctx context.Context, id int64) (*model.Session, error)
	// GetValid returns the session only when it has not expired.
	GetValid(ctx context.Context, id int64) (*model.Session, error)
	Create(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id int64) error
	DeleteByUser(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context) error
}
