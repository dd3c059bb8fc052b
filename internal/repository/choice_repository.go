package repository

import (
	"github.com/lshigami/Quokka/internal/model"
	"gorm.io/gorm"
)

type ChoiceRepository interface {
	Create(choice *model.Choice) error
	FindByID(id uint) (*model.Choice, error)
	FindByQuestionID(questionID uint) ([]model.Choice, error)
	FindByQuestionIDByVotes(questionID uint) ([]model.Choice, error)
	IncrementVotes(questionID, choiceID uint) (bool, error)
}

type choiceRepository struct {
	db *gorm.DB
}

func NewChoiceRepository(db *gorm.DB) ChoiceRepository {
	return &choiceRepository{db: db}
}

func (r *choiceRepository) Create(choice *model.Choice) error {
	return r.db.Create(choice).Error
}

func (r *choiceRepository) FindByID(id uint) (*model.Choice, error) {
	var choice model.Choice
	if err := r.db.First(&choice, id).Error; err != nil {
		return nil, err
	}
	return &choice, nil
}

func (r *choiceRepository) FindByQuestionID(questionID uint) ([]model.Choice, error) {
	var choices []model.Choice
	if err := r.db.Where("question_id = ?", questionID).Order("choice_text ASC").Find(&choices).Error; err != nil {
		return nil, err
	}
	return choices, nil
}

func (r *choiceRepository) FindByQuestionIDByVotes(questionID uint) ([]model.Choice, error) {
	var choices []model.Choice
	if err := r.db.Where("question_id = ?", questionID).Order("votes DESC, choice_text ASC").Find(&choices).Error; err != nil {
		return nil, err
	}
	return choices, nil
}

// IncrementVotes adds one vote to the choice in a single UPDATE so concurrent
// votes cannot lose updates. The question_id predicate doubles as the ownership
// check: it returns false when the choice does not belong to the question.
func (r *choiceRepository) IncrementVotes(questionID, choiceID uint) (bool, error) {
	res := r.db.Model(&model.Choice{}).
		Where("id = ? AND question_id = ?", choiceID, questionID).
		UpdateColumn("votes", gorm.Expr("votes + ?", 1))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
