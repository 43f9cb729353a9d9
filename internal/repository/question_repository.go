package repository

import (
	"github.com/lshigami/Margay/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByQuizID(quizID uint) ([]model.Question, error)
	Filter(subject, chapter, difficulty, qtype string) ([]model.Question, error)
	Save(question *model.Question) error
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.Preload("Subject").Preload("Chapter").First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByQuizID(quizID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.
		Preload("Subject").Preload("Chapter").
		Where("quiz_id = ?", quizID).
		Order("id ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// Filter is the read contract blueprint generation consumes: narrow the
// question bank by free-form tags. Empty arguments are ignored.
func (r *questionRepository) Filter(subject, chapter, difficulty, qtype string) ([]model.Question, error) {
	query := r.db.Model(&model.Question{}).Preload("Subject").Preload("Chapter")
	if subject != "" {
		query = query.Joins("JOIN subjects ON subjects.id = questions.subject_id").
			Where("subjects.name = ?", subject)
	}
	if chapter != "" {
		query = query.Joins("JOIN chapters ON chapters.id = questions.chapter_id").
			Where("chapters.name = ?", chapter)
	}
	if difficulty != "" {
		query = query.Where("questions.difficulty = ?", difficulty)
	}
	if qtype != "" {
		query = query.Where("questions.qtype = ?", qtype)
	}

	var questions []model.Question
	if err := query.Order("questions.id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Save(question *model.Question) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) Delete(id uint) error {
	return r.db.Delete(&model.Question{}, id).Error
}
