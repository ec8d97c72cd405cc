package store

import (
	"afriverse.co/editorial/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Posts() PostStore {
	return newPostStore(s.queries)
}

func (s *Stores) Reviews() ReviewStore {
	return newReviewStore(s.queries)
}

func (s *Stores) Feedback() FeedbackStore {
	return newFeedbackStore(s.queries)
}

func (s *Stores) Activity() ActivityStore {
	return newActivityStore(s.queries)
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) Sessions() SessionStore {
	return newSessionStore(s.queries)
}
