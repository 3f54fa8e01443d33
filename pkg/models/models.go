// Package models defines data structures shared across the application.
package models

// Comment represents a GitHub issue comment with the fields the purger needs.
type Comment struct {
	// ID is the comment identifier used by the delete endpoint
	ID int64

	// IssueURL is the API URL of the issue the comment belongs to
	IssueURL string

	// Author is the login of the comment author, empty when GitHub returns no user
	Author string

	// Body is the markdown text of the comment
	Body string
}
