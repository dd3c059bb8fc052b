package dto

import "time"

type ChoiceResponse struct {
	ID         uint   `json:"id"`
	QuestionID uint   `json:"question_id"`
	ChoiceText string `json:"choice_text"`
	Votes      uint   `json:"votes"`
}

type QuestionResponse struct {
	ID           uint             `json:"id"`
	QuestionText string           `json:"question_text"`
	PubDate      time.Time        `json:"pub_date"`
	Choices      []ChoiceResponse `json:"choices,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// QuestionSummaryResponse is used for question listings.
type QuestionSummaryResponse struct {
	ID           uint      `json:"id"`
	QuestionText string    `json:"question_text"`
	PubDate      time.Time `json:"pub_date"`
	ChoiceCount  int       `json:"choice_count"`
}

// ResultsResponse carries the vote tallies of a question, choices ordered by
// votes descending and choice text ascending on ties.
type ResultsResponse struct {
	ID           uint             `json:"id"`
	QuestionText string           `json:"question_text"`
	PubDate      time.Time        `json:"pub_date"`
	Choices      []ChoiceResponse `json:"choices"`
}

// VoteErrorResponse redisplays the question detail together with the reason
// the vote was rejected.
type VoteErrorResponse struct {
	Error    string           `json:"error"`
	Question QuestionResponse `json:"question"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
