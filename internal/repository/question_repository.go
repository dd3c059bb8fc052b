package repository

import (
	"time"

	"github.com/lshigami/Quokka/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByIDWithChoices(id uint) (*model.Question, error)
	FindByIDWithResults(id uint) (*model.Question, error)
	FindLatestPublished(limit int) ([]struct {
		model.Question
		ChoiceCount int
	}, error)
	FindAllWithChoiceCount() ([]struct {
		model.Question
		ChoiceCount int
	}, error)
	Update(question *model.Question) error
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	// GORM's Create with associations also creates question.Choices when populated.
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByIDWithChoices(id uint) (*model.Question, error) {
	var question model.Question
	err := r.db.Preload("Choices", func(db *gorm.DB) *gorm.DB {
		return db.Order("choices.choice_text ASC")
	}).First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByIDWithResults(id uint) (*model.Question, error) {
	var question model.Question
	err := r.db.Preload("Choices", func(db *gorm.DB) *gorm.DB {
		return db.Order("choices.votes DESC, choices.choice_text ASC")
	}).First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// FindLatestPublished returns at most limit questions whose publish date is not
// in the future and that have at least one choice, most recent first.
func (r *questionRepository) FindLatestPublished(limit int) ([]struct {
	model.Question
	ChoiceCount int
}, error) {
	var results []struct {
		model.Question
		ChoiceCount int
	}
	err := r.db.Model(&model.Question{}).
		Select("questions.*, (SELECT COUNT(*) FROM choices WHERE choices.question_id = questions.id) as choice_count").
		Where("questions.pub_date <= ?", time.Now()).
		Where("EXISTS (SELECT 1 FROM choices WHERE choices.question_id = questions.id)").
		Order("questions.pub_date DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *questionRepository) FindAllWithChoiceCount() ([]struct {
	model.Question
	ChoiceCount int
}, error) {
	var results []struct {
		model.Question
		ChoiceCount int
	}
	err := r.db.Model(&model.Question{}).
		Select("questions.*, (SELECT COUNT(*) FROM choices WHERE choices.question_id = questions.id) as choice_count").
		Order("questions.pub_date DESC").
		Scan(&results).Error
	return results, err
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) Delete(id uint) error {
	// The choices FK carries ON DELETE CASCADE; the store removes owned choices.
	return r.db.Delete(&model.Question{}, id).Error
}
