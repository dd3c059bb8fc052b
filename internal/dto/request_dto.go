package dto

import "time"

// CreateChoiceRequest is used standalone when adding a choice to an existing
// question, and nested inside CreateQuestionRequest.
type CreateChoiceRequest struct {
	ChoiceText string `json:"choice_text" binding:"required,max=200"`
}

// CreateQuestionRequest creates a question, optionally with its initial choices.
// PubDate defaults to the time of creation when omitted.
type CreateQuestionRequest struct {
	QuestionText string                `json:"question_text" binding:"required,max=200"`
	PubDate      *time.Time            `json:"pub_date"`
	Choices      []CreateChoiceRequest `json:"choices" binding:"omitempty,dive"`
}

// UpdateQuestionRequest updates a question's text and/or publish date.
type UpdateQuestionRequest struct {
	QuestionText string     `json:"question_text" binding:"required,max=200"`
	PubDate      *time.Time `json:"pub_date"`
}

// VoteRequest selects one of a question's choices.
type VoteRequest struct {
	ChoiceID uint `json:"choice_id" binding:"required"`
}
