package domain

import (
	"context"
	"errors"
	"time"
)

// Submission errors.
var (
	ErrSubmissionInvalid = errors.New("submission is missing required fields")
	ErrUnknownTopic      = errors.New("topic is not in the call for papers")
)

// SubmissionStatusUnderReview is the status every new submission starts in.
const SubmissionStatusUnderReview = "Under Review"

// Submission represents a paper submitted through the portal. Submissions
// are owned by the account that created them.
// swagger:model Submission
type Submission struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"accountId"`
	Email       string    `json:"email"`
	Title       string    `json:"title"`
	Authors     string    `json:"authors"`
	Topic       string    `json:"topic"`
	FileName    string    `json:"fileName"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// SubmissionInput is what the submission form collects.
type SubmissionInput struct {
	Title    string
	Authors  string
	Topic    string
	FileName string
}

// SubmissionService owns the paper submission workflow for signed-in
// authors.
type SubmissionService interface {
	// Submit validates the input, records the submission with status
	// "Under Review", and returns it.
	Submit(ctx context.Context, accountID, email string, in SubmissionInput) (*Submission, error)
	// ListByAccount returns the account's submissions, oldest first.
	ListByAccount(ctx context.Context, accountID string) ([]*Submission, error)
}
