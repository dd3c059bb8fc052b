package service

import "errors"

var (
	// ErrQuestionNotFound covers both absent questions and questions whose
	// publish date is still in the future; the public API treats them alike.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrChoiceNotFound is returned when a vote targets a choice that does not
	// belong to the question.
	ErrChoiceNotFound = errors.New("choice does not belong to this question")
)
