package service

import "errors"

var (
	ErrExamNotFound       = errors.New("exam not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrDuplicateExam      = errors.New("an exam already exists for this tally form")
	ErrInvalidPayload     = errors.New("webhook payload has no data object")
	ErrInvalidScore       = errors.New("score is not a numeric value")
	ErrFormFetch          = errors.New("failed to fetch tally form")
)
