package repository

import (
	"github.com/lshigami/Margay/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(attempt *model.Attempt) error
	Save(attempt *model.Attempt) error
	FindByID(id uint) (*model.Attempt, error)
	FindByIDWithDetails(id uint) (*model.Attempt, error)
	CountByUserAndQuiz(userID, quizID uint) (int64, error)
	LastByUserAndQuiz(userID, quizID uint) (*model.Attempt, error)
	FindAllByUser(userID uint) ([]model.Attempt, error)
	FindAllByQuizWithUser(quizID uint) ([]model.Attempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.Attempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) Save(attempt *model.Attempt) error {
	return r.db.Save(attempt).Error
}

func (r *attemptRepository) FindByID(id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.First(&attempt, id).Error
	return &attempt, err
}

func (r *attemptRepository) FindByIDWithDetails(id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.
		Preload("Quiz").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("attempt_answers.question_id ASC")
		}).
		Preload("Answers.Question").
		Preload("Answers.Question.Subject").
		Preload("Answers.Question.Chapter").
		First(&attempt, id).Error
	return &attempt, err
}

func (r *attemptRepository) CountByUserAndQuiz(userID, quizID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Attempt{}).
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Count(&count).Error
	return count, err
}

// LastByUserAndQuiz returns the most recently started attempt, used for
// the cooldown check. gorm.ErrRecordNotFound when there is none.
func (r *attemptRepository) LastByUserAndQuiz(userID, quizID uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Order("started_at DESC").
		First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindAllByUser(userID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.Preload("Quiz").
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindAllByQuizWithUser(quizID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.Preload("User").
		Where("quiz_id = ?", quizID).
		Order("score DESC, started_at ASC").
		Find(&attempts).Error
	return attempts, err
}
