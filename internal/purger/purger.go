// Package purger selects issue comments by author and body pattern and
// deletes them one at a time.
package purger

import (
	"context"
	"regexp"

	"github.com/pkg/errors"

	"github.com/danielolaszy/purge/internal/logging"
	"github.com/danielolaszy/purge/pkg/models"
)

// ErrInvalidConfig marks criteria or arguments rejected before any API call.
var ErrInvalidConfig = errors.New("invalid purge configuration")

// CommentService is the remote API surface the purger consumes.
type CommentService interface {
	ListIssueComments(ctx context.Context, issueNumber int) ([]models.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
}

// Criteria decides which comments are deletion candidates.
type Criteria struct {
	UserName string
	Pattern  *regexp.Regexp
}

// NewCriteria compiles bodyRegex and pairs it with the author login to match.
func NewCriteria(userName, bodyRegex string) (Criteria, error) {
	if userName == "" {
		return Criteria{}, errors.Wrap(ErrInvalidConfig, "user name must not be empty")
	}
	if bodyRegex == "" {
		return Criteria{}, errors.Wrap(ErrInvalidConfig, "body regex must not be empty")
	}

	pattern, err := regexp.Compile(bodyRegex)
	if err != nil {
		return Criteria{}, errors.Wrapf(ErrInvalidConfig, "invalid body regex %q: %v", bodyRegex, err)
	}

	return Criteria{UserName: userName, Pattern: pattern}, nil
}

// Match reports whether the comment was written by the target user and its body
// contains a match for the pattern. Comments without an author or body never match.
func (c Criteria) Match(comment models.Comment) bool {
	if comment.Author == "" || comment.Body == "" || c.Pattern == nil {
		return false
	}
	return comment.Author == c.UserName && c.Pattern.MatchString(comment.Body)
}

// Candidates returns the comments that match c, preserving their order.
func Candidates(comments []models.Comment, c Criteria) []models.Comment {
	var out []models.Comment
	for _, comment := range comments {
		if c.Match(comment) {
			out = append(out, comment)
		}
	}
	return out
}

// Result summarizes a run.
type Result struct {
	Inspected int
	Deleted   []int64
	DryRun    bool
}

// Option configures a Purger.
type Option func(*Purger)

// WithDryRun makes Run log candidates without deleting them.
func WithDryRun(dryRun bool) Option {
	return func(p *Purger) {
		p.dryRun = dryRun
	}
}

// Purger deletes matching comments from an issue.
type Purger struct {
	svc    CommentService
	dryRun bool
}

// New returns a Purger backed by svc.
func New(svc CommentService, opts ...Option) *Purger {
	p := &Purger{svc: svc}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run fetches all comments on the issue and deletes each candidate in list order,
// waiting for every delete before issuing the next. The first error stops the run;
// comments already deleted stay deleted. The returned Result reflects the work done
// up to the point of failure.
func (p *Purger) Run(ctx context.Context, issueNumber int, c Criteria) (Result, error) {
	result := Result{DryRun: p.dryRun}

	if issueNumber <= 0 {
		return result, errors.Wrapf(ErrInvalidConfig, "issue number %d must be positive", issueNumber)
	}
	if c.Pattern == nil || c.UserName == "" {
		return result, errors.Wrap(ErrInvalidConfig, "criteria must be built with NewCriteria")
	}

	comments, err := p.svc.ListIssueComments(ctx, issueNumber)
	if err != nil {
		return result, errors.Wrap(err, "fetching comments")
	}
	result.Inspected = len(comments)

	for _, comment := range Candidates(comments, c) {
		logging.Info("processing comment",
			"issue", comment.IssueURL,
			"user", comment.Author,
			"comment", comment.Body)

		if p.dryRun {
			continue
		}

		if err := p.svc.DeleteComment(ctx, comment.ID); err != nil {
			return result, errors.Wrapf(err, "deleting comment %d", comment.ID)
		}
		result.Deleted = append(result.Deleted, comment.ID)
	}

	logging.Info("purge complete",
		"issue_number", issueNumber,
		"inspected", result.Inspected,
		"deleted", len(result.Deleted),
		"dry_run", p.dryRun)

	return result, nil
}
