package notify

import (
	"fmt"
	"html/template"
	"strings"

	"afriverse.co/editorial/internal/model"
	"afriverse.co/editorial/internal/queue"
)

// bodyTmpl escapes the user-supplied parts (titles, names) on the way
// into the HTML body.
var bodyTmpl = template.Must(template.New("email").Parse(
	`<p>{{.Lead}}</p>
<p><a href="{{.Link}}">{{.CTA}}</a></p>
`))

// Render builds the subject and HTML body for a workflow event. The
// actor may be nil for system-originated events like the publishing
// sweep.
func Render(event queue.EventType, post *model.Post, actor *model.User, studioURL string) (subject, htmlBody string) {
	actorName := "The scheduler"
	if actor != nil {
		actorName = actor.Name
	}

	data := struct {
		Lead string
		Link string
		CTA  string
	}{
		Link: fmt.Sprintf("%s/posts/%d", studioURL, post.ID),
	}

	switch event {
	case queue.EventReviewSubmitted:
		subject = fmt.Sprintf("New submission: %s", post.Title)
		data.Lead = fmt.Sprintf("%s submitted %q for review.", actorName, post.Title)
		data.CTA = "Claim it in the review queue"
	case queue.EventReviewResubmitted:
		subject = fmt.Sprintf("Revision ready: %s", post.Title)
		data.Lead = fmt.Sprintf("%s resubmitted %q after addressing your notes.", actorName, post.Title)
		data.CTA = "Pick it back up"
	case queue.EventChangesRequested:
		subject = fmt.Sprintf("Changes requested: %s", post.Title)
		data.Lead = fmt.Sprintf("%s requested changes on %q.", actorName, post.Title)
		data.CTA = "Read the feedback and revise"
	case queue.EventReviewApproved:
		subject = fmt.Sprintf("Approved: %s", post.Title)
		data.Lead = fmt.Sprintf("%s approved %q. You can publish it whenever you're ready.", actorName, post.Title)
		data.CTA = "Open the post"
	case queue.EventFeedbackAdded:
		subject = fmt.Sprintf("New feedback on %s", post.Title)
		data.Lead = fmt.Sprintf("%s left feedback on %q.", actorName, post.Title)
		data.CTA = "Read it here"
	case queue.EventPostPublished:
		subject = fmt.Sprintf("Published: %s", post.Title)
		data.Lead = fmt.Sprintf("%q is now live.", post.Title)
		data.Link = fmt.Sprintf("%s/p/%s", studioURL, post.Slug)
		data.CTA = "See it on the site"
	default:
		subject = fmt.Sprintf("Update on %s", post.Title)
		data.Lead = fmt.Sprintf("There is new activity on %q.", post.Title)
		data.CTA = "Open the post"
	}

	var b strings.Builder
	// The template only fails on unexecutable data, not on content.
	_ = bodyTmpl.Execute(&b, data)
	return subject, b.String()
}
