// Package workflow defines the post lifecycle state machine. Every
// status change in the system goes through Next; nothing else mutates
// post status directly.
package workflow

import (
	"fmt"

	"afriverse.co/editorial/internal/model"
)

type Action string

const (
	ActionSubmit         Action = "submit"
	ActionClaim          Action = "claim"
	ActionRequestChanges Action = "request_changes"
	ActionResubmit       Action = "resubmit"
	ActionApprove        Action = "approve"
	ActionSchedule       Action = "schedule"
	ActionPublish        Action = "publish"
	ActionUnpublish      Action = "unpublish"
	ActionArchive        Action = "archive"
)

// InvalidTransitionError reports an action applied in a status that
// does not allow it. Handlers map it to 400.
type InvalidTransitionError struct {
	From   model.PostStatus
	Action Action
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a post in status %s", e.Action, e.From)
}

// transitions is the full edge table: action -> from-status -> to-status.
// Edges that exist only for editor overrides are guarded by the service
// layer; the table answers reachability, not authorization.
var transitions = map[Action]map[model.PostStatus]model.PostStatus{
	ActionSubmit: {
		model.PostStatusDraft:            model.PostStatusPendingReview,
		model.PostStatusChangesRequested: model.PostStatusPendingReview,
	},
	ActionClaim: {
		model.PostStatusPendingReview: model.PostStatusInReview,
	},
	ActionRequestChanges: {
		model.PostStatusInReview:      model.PostStatusChangesRequested,
		model.PostStatusPendingReview: model.PostStatusChangesRequested,
	},
	ActionResubmit: {
		model.PostStatusChangesRequested: model.PostStatusPendingReview,
	},
	ActionApprove: {
		model.PostStatusInReview:      model.PostStatusApproved,
		model.PostStatusPendingReview: model.PostStatusApproved,
	},
	ActionSchedule: {
		model.PostStatusApproved:  model.PostStatusScheduled,
		model.PostStatusScheduled: model.PostStatusScheduled,
	},
	ActionPublish: {
		model.PostStatusDraft:            model.PostStatusPublished,
		model.PostStatusPendingReview:    model.PostStatusPublished,
		model.PostStatusInReview:         model.PostStatusPublished,
		model.PostStatusChangesRequested: model.PostStatusPublished,
		model.PostStatusApproved:         model.PostStatusPublished,
		model.PostStatusScheduled:        model.PostStatusPublished,
	},
	ActionUnpublish: {
		// Unpublishing lands on approved, not draft, from any live status:
		// the content is pulled off its track and can be republished
		// without another review cycle. Archived stays archived.
		model.PostStatusDraft:            model.PostStatusApproved,
		model.PostStatusPendingReview:    model.PostStatusApproved,
		model.PostStatusInReview:         model.PostStatusApproved,
		model.PostStatusChangesRequested: model.PostStatusApproved,
		model.PostStatusApproved:         model.PostStatusApproved,
		model.PostStatusScheduled:        model.PostStatusApproved,
		model.PostStatusPublished:        model.PostStatusApproved,
	},
	ActionArchive: {
		model.PostStatusDraft:     model.PostStatusArchived,
		model.PostStatusApproved:  model.PostStatusArchived,
		model.PostStatusPublished: model.PostStatusArchived,
	},
}

// Next returns the status an action leads to from the given status, or
// an *InvalidTransitionError if the edge does not exist.
func Next(from model.PostStatus, action Action) (model.PostStatus, error) {
	to, ok := transitions[action][from]
	if !ok {
		return "", &InvalidTransitionError{From: from, Action: action}
	}
	return to, nil
}

// Allowed reports whether the action is legal from the given status.
func Allowed(from model.PostStatus, action Action) bool {
	_, ok := transitions[action][from]
	return ok
}

// AllowedActions lists the legal actions from a status, for surfacing
// in API responses. Order is stable.
func AllowedActions(from model.PostStatus) []Action {
	all := []Action{
		ActionSubmit, ActionClaim, ActionRequestChanges, ActionResubmit,
		ActionApprove, ActionSchedule, ActionPublish, ActionUnpublish,
		ActionArchive,
	}
	var out []Action
	for _, a := range all {
		if Allowed(from, a) {
			out = append(out, a)
		}
	}
	return out
}
