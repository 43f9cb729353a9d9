package repository

import (
	"github.com/lshigami/Margay/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssignmentRepository interface {
	Upsert(assignment *model.Assignment) error
	FindByUserAndQuiz(userID, quizID uint) (*model.Assignment, error)
	FindAllByQuiz(quizID uint) ([]model.Assignment, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

// Upsert keeps at most one assignment row per (user, quiz);
// re-assigning updates limit and cooldown in place.
func (r *assignmentRepository) Upsert(assignment *model.Assignment) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "quiz_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"attempts_limit", "cooldown_days", "updated_at"}),
	}).Create(assignment).Error
}

func (r *assignmentRepository) FindByUserAndQuiz(userID, quizID uint) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.db.Where("user_id = ? AND quiz_id = ?", userID, quizID).First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) FindAllByQuiz(quizID uint) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.db.Preload("User").Where("quiz_id = ?", quizID).Find(&assignments).Error
	return assignments, err
}
