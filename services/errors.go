package services

import "errors"

var (
	// ErrReviewNotFound is returned when a mutation matches no review for
	// the acting user. It covers both a missing review and one owned by
	// another judge, so callers cannot probe for other judges' reviews.
	ErrReviewNotFound = errors.New("review not found")

	// ErrSubmissionNotFound is returned when a review targets a submission
	// that does not exist or has no owning team.
	ErrSubmissionNotFound = errors.New("submission not found")
)
