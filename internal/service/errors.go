package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrForbidden means the actor's role or ownership does not allow
	// the operation.
	ErrForbidden = errors.New("operation not permitted")
	// ErrAlreadyClaimed means another reviewer claimed the post first.
	ErrAlreadyClaimed = errors.New("review already claimed")
	// ErrNotReviewer means the actor is not the reviewer who claimed
	// the post.
	ErrNotReviewer = errors.New("post is claimed by another reviewer")
	// ErrOwnPost means a reviewer tried to review their own post.
	ErrOwnPost = errors.New("cannot review your own post")
	// ErrNotEditable means the post has entered the review pipeline and
	// can no longer be edited directly.
	ErrNotEditable = errors.New("post is no longer editable")
)

// ValidationError itemizes every failed submission check so authors
// can fix all of them in one pass.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) add(field, msg string) {
	e.Fields[field] = msg
}

func (e *ValidationError) ok() bool {
	return len(e.Fields) == 0
}
