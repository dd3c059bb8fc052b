package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AdminPollService manages questions and choices regardless of publish date.
type AdminPollService interface {
	CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	ListQuestions() ([]dto.QuestionSummaryResponse, error)
	GetQuestion(questionID uint) (*dto.QuestionResponse, error)
	UpdateQuestion(questionID uint, req dto.UpdateQuestionRequest) (*dto.QuestionResponse, error)
	DeleteQuestion(questionID uint) error
	AddChoice(questionID uint, req dto.CreateChoiceRequest) (*dto.ChoiceResponse, error)
}

type adminPollService struct {
	questionRepo repository.QuestionRepository
	choiceRepo   repository.ChoiceRepository
}

func NewAdminPollService(questionRepo repository.QuestionRepository, choiceRepo repository.ChoiceRepository) AdminPollService {
	return &adminPollService{questionRepo: questionRepo, choiceRepo: choiceRepo}
}

func (s *adminPollService) CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	question := model.Question{
		QuestionText: req.QuestionText,
		PubDate:      time.Now(),
	}
	if req.PubDate != nil {
		question.PubDate = *req.PubDate
	}
	for _, c := range req.Choices {
		question.Choices = append(question.Choices, model.Choice{ChoiceText: c.ChoiceText})
	}

	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		return nil, fmt.Errorf("error creating question: %w", err)
	}

	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, &question); err != nil {
		log.Error().Err(err).Msg("Failed to copy Question model to QuestionResponse")
		return nil, fmt.Errorf("error preparing question response: %w", err)
	}
	return &resp, nil
}

func (s *adminPollService) ListQuestions() ([]dto.QuestionSummaryResponse, error) {
	questionsWithCount, err := s.questionRepo.FindAllWithChoiceCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list questions with choice count")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}

	summaries := make([]dto.QuestionSummaryResponse, 0, len(questionsWithCount))
	for _, qwc := range questionsWithCount {
		summaries = append(summaries, dto.QuestionSummaryResponse{
			ID:           qwc.Question.ID,
			QuestionText: qwc.Question.QuestionText,
			PubDate:      qwc.Question.PubDate,
			ChoiceCount:  qwc.ChoiceCount,
		})
	}
	return summaries, nil
}

func (s *adminPollService) GetQuestion(questionID uint) (*dto.QuestionResponse, error) {
	question, err := s.questionRepo.FindByIDWithChoices(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to get question")
		return nil, fmt.Errorf("error fetching question %d: %w", questionID, err)
	}

	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, question); err != nil {
		return nil, fmt.Errorf("error preparing question response: %w", err)
	}
	return &resp, nil
}

func (s *adminPollService) UpdateQuestion(questionID uint, req dto.UpdateQuestionRequest) (*dto.QuestionResponse, error) {
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to load question for update")
		return nil, fmt.Errorf("error loading question %d: %w", questionID, err)
	}

	question.QuestionText = req.QuestionText
	if req.PubDate != nil {
		question.PubDate = *req.PubDate
	}
	if err := s.questionRepo.Update(question); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to update question")
		return nil, fmt.Errorf("error updating question %d: %w", questionID, err)
	}

	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, question); err != nil {
		return nil, fmt.Errorf("error preparing question response: %w", err)
	}
	return &resp, nil
}

func (s *adminPollService) DeleteQuestion(questionID uint) error {
	if _, err := s.questionRepo.FindByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		return fmt.Errorf("error loading question %d: %w", questionID, err)
	}
	if err := s.questionRepo.Delete(questionID); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to delete question")
		return fmt.Errorf("error deleting question %d: %w", questionID, err)
	}
	return nil
}

func (s *adminPollService) AddChoice(questionID uint, req dto.CreateChoiceRequest) (*dto.ChoiceResponse, error) {
	if _, err := s.questionRepo.FindByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("error loading question %d: %w", questionID, err)
	}

	choice := model.Choice{
		QuestionID: questionID,
		ChoiceText: req.ChoiceText,
	}
	if err := s.choiceRepo.Create(&choice); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to create choice")
		return nil, fmt.Errorf("error creating choice: %w", err)
	}

	var resp dto.ChoiceResponse
	if err := copier.Copy(&resp, &choice); err != nil {
		return nil, fmt.Errorf("error preparing choice response: %w", err)
	}
	return &resp, nil
}
