package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// LatestQuestionLimit caps the public index listing.
const LatestQuestionLimit = 5

// PollService is the public, read-and-vote surface of the polls API. Only
// questions published in the past are visible through it.
type PollService interface {
	GetLatestQuestions() ([]dto.QuestionSummaryResponse, error)
	GetQuestionDetail(questionID uint) (*dto.QuestionResponse, error)
	GetQuestionResults(questionID uint) (*dto.ResultsResponse, error)
	Vote(questionID, choiceID uint) error
}

type pollService struct {
	questionRepo repository.QuestionRepository
	choiceRepo   repository.ChoiceRepository
}

func NewPollService(questionRepo repository.QuestionRepository, choiceRepo repository.ChoiceRepository) PollService {
	return &pollService{questionRepo: questionRepo, choiceRepo: choiceRepo}
}

func (s *pollService) GetLatestQuestions() ([]dto.QuestionSummaryResponse, error) {
	latest, err := s.questionRepo.FindLatestPublished(LatestQuestionLimit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get latest published questions from repository")
		return nil, fmt.Errorf("error fetching latest questions: %w", err)
	}

	summaries := make([]dto.QuestionSummaryResponse, 0, len(latest))
	for _, q := range latest {
		summaries = append(summaries, dto.QuestionSummaryResponse{
			ID:           q.Question.ID,
			QuestionText: q.Question.QuestionText,
			PubDate:      q.Question.PubDate,
			ChoiceCount:  q.ChoiceCount,
		})
	}
	return summaries, nil
}

func (s *pollService) GetQuestionDetail(questionID uint) (*dto.QuestionResponse, error) {
	question, err := s.questionRepo.FindByIDWithChoices(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to get question detail from repository")
		return nil, fmt.Errorf("error fetching question %d: %w", questionID, err)
	}
	if !question.IsPublished() {
		return nil, ErrQuestionNotFound
	}

	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, question); err != nil {
		log.Error().Err(err).Msg("Failed to copy Question model to QuestionResponse")
		return nil, fmt.Errorf("error preparing question detail response: %w", err)
	}
	return &resp, nil
}

func (s *pollService) GetQuestionResults(questionID uint) (*dto.ResultsResponse, error) {
	question, err := s.questionRepo.FindByIDWithResults(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to get question results from repository")
		return nil, fmt.Errorf("error fetching results for question %d: %w", questionID, err)
	}
	if !question.IsPublished() {
		return nil, ErrQuestionNotFound
	}

	var resp dto.ResultsResponse
	if err := copier.Copy(&resp, question); err != nil {
		log.Error().Err(err).Msg("Failed to copy Question model to ResultsResponse")
		return nil, fmt.Errorf("error preparing results response: %w", err)
	}
	return &resp, nil
}

// Vote adds one vote to the given choice. The increment is a single UPDATE
// scoped to the owning question, so a choice belonging to another question is
// rejected with ErrChoiceNotFound rather than incremented.
func (s *pollService) Vote(questionID, choiceID uint) error {
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to load question for vote")
		return fmt.Errorf("error loading question %d: %w", questionID, err)
	}
	if !question.IsPublished() {
		return ErrQuestionNotFound
	}

	ok, err := s.choiceRepo.IncrementVotes(questionID, choiceID)
	if err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Uint("choiceID", choiceID).Msg("Failed to increment votes")
		return fmt.Errorf("error recording vote: %w", err)
	}
	if !ok {
		return ErrChoiceNotFound
	}

	log.Info().Uint("questionID", questionID).Uint("choiceID", choiceID).Msg("Vote recorded")
	return nil
}
