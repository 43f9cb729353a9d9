package service

import (
	"errors"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Margay/internal/apperr"
	"github.com/lshigami/Margay/internal/dto"
	"github.com/lshigami/Margay/internal/model"
	"github.com/lshigami/Margay/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AdminQuizService interface {
	CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error)
	UpdateQuiz(quizID uint, req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error)
	DeleteQuiz(quizID uint) error
	GetQuiz(quizID uint) (*dto.QuizResponseDTO, error)
	GetQuizResults(quizID uint) ([]dto.QuizResultRowDTO, error)
}

type adminQuizService struct {
	quizRepo    repository.QuizRepository
	attemptRepo repository.AttemptRepository
	subjectRepo repository.SubjectRepository
	db          *gorm.DB
}

func NewAdminQuizService(
	quizRepo repository.QuizRepository,
	attemptRepo repository.AttemptRepository,
	subjectRepo repository.SubjectRepository,
	db *gorm.DB,
) AdminQuizService {
	return &adminQuizService{quizRepo: quizRepo, attemptRepo: attemptRepo, subjectRepo: subjectRepo, db: db}
}

func (s *adminQuizService) CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error) {
	if req.StartTime != nil && req.EndTime != nil && req.EndTime.Before(*req.StartTime) {
		return nil, apperr.InvalidInput("quiz end time precedes start time")
	}

	quiz := model.Quiz{
		Title:            req.Title,
		DurationMinutes:  req.DurationMinutes,
		MarksPerQuestion: req.MarksPerQuestion,
		NegativeMarking:  req.NegativeMarking,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
	}
	if quiz.MarksPerQuestion == 0 {
		quiz.MarksPerQuestion = 1.0
	}

	for _, qDto := range req.Questions {
		question, err := buildQuestionModel(s.subjectRepo, qDto)
		if err != nil {
			return nil, err
		}
		quiz.Questions = append(quiz.Questions, *question)
	}

	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Msg("Failed to create quiz in database")
		return nil, err
	}

	return s.GetQuiz(quiz.ID)
}

func (s *adminQuizService) UpdateQuiz(quizID uint, req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error) {
	quiz, err := s.quizRepo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("quiz %d not found", quizID)
		}
		return nil, err
	}
	if req.StartTime != nil && req.EndTime != nil && req.EndTime.Before(*req.StartTime) {
		return nil, apperr.InvalidInput("quiz end time precedes start time")
	}

	quiz.Title = req.Title
	quiz.DurationMinutes = req.DurationMinutes
	quiz.MarksPerQuestion = req.MarksPerQuestion
	quiz.NegativeMarking = req.NegativeMarking
	quiz.StartTime = req.StartTime
	quiz.EndTime = req.EndTime

	if err := s.quizRepo.Save(quiz); err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("Failed to update quiz")
		return nil, err
	}
	return s.GetQuiz(quizID)
}

// DeleteQuiz removes the quiz and everything hanging off it — answers,
// attempts, questions, assignments — in one transaction.
func (s *adminQuizService) DeleteQuiz(quizID uint) error {
	if _, err := s.quizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("quiz %d not found", quizID)
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("attempt_id IN (?)",
			tx.Model(&model.Attempt{}).Select("id").Where("quiz_id = ?", quizID),
		).Delete(&model.AttemptAnswer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", quizID).Delete(&model.Attempt{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", quizID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", quizID).Delete(&model.Assignment{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Quiz{}, quizID).Error; err != nil {
			return err
		}
		log.Info().Uint("quizID", quizID).Msg("Quiz deleted with cascade")
		return nil
	})
}

func (s *adminQuizService) GetQuiz(quizID uint) (*dto.QuizResponseDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("quiz %d not found", quizID)
		}
		return nil, err
	}

	var resp dto.QuizResponseDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		log.Error().Err(err).Msg("Failed to copy Quiz model to QuizResponseDTO")
		return nil, err
	}
	// copier misses the derived tag names on nested questions.
	for i, q := range quiz.Questions {
		if q.Subject != nil {
			resp.Questions[i].Subject = q.Subject.Name
		}
		if q.Chapter != nil {
			resp.Questions[i].Chapter = q.Chapter.Name
		}
	}
	return &resp, nil
}

func (s *adminQuizService) GetQuizResults(quizID uint) ([]dto.QuizResultRowDTO, error) {
	if _, err := s.quizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("quiz %d not found", quizID)
		}
		return nil, err
	}

	attempts, err := s.attemptRepo.FindAllByQuizWithUser(quizID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("GetQuizResults: attempt lookup failed")
		return nil, err
	}

	rows := make([]dto.QuizResultRowDTO, 0, len(attempts))
	for _, attempt := range attempts {
		rows = append(rows, dto.QuizResultRowDTO{
			AttemptID:   attempt.ID,
			UserID:      attempt.UserID,
			Username:    attempt.User.Username,
			Score:       attempt.Score,
			StartedAt:   attempt.StartedAt,
			SubmittedAt: attempt.SubmittedAt,
		})
	}
	return rows, nil
}
