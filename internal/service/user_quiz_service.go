package service

import (
	"github.com/lshigami/Margay/internal/dto"
	"github.com/lshigami/Margay/internal/repository"
	"github.com/rs/zerolog/log"
)

type UserQuizService interface {
	GetAllQuizzes(callerID uint) ([]dto.QuizSummaryDTO, error)
}

type userQuizService struct {
	quizRepo    repository.QuizRepository
	attemptRepo repository.AttemptRepository
}

func NewUserQuizService(quizRepo repository.QuizRepository, attemptRepo repository.AttemptRepository) UserQuizService {
	return &userQuizService{quizRepo: quizRepo, attemptRepo: attemptRepo}
}

// GetAllQuizzes lists quizzes with question counts and the caller's own
// attempt count per quiz.
func (s *userQuizService) GetAllQuizzes(callerID uint) ([]dto.QuizSummaryDTO, error) {
	quizzesWithCount, err := s.quizRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get all quizzes with question count from repository")
		return nil, err
	}

	dtos := make([]dto.QuizSummaryDTO, 0, len(quizzesWithCount))
	for _, qwc := range quizzesWithCount {
		attempts, err := s.attemptRepo.CountByUserAndQuiz(callerID, qwc.Quiz.ID)
		if err != nil {
			log.Error().Err(err).Uint("quizID", qwc.Quiz.ID).Msg("Failed to count caller attempts for quiz")
			return nil, err
		}
		dtos = append(dtos, dto.QuizSummaryDTO{
			ID:               qwc.Quiz.ID,
			Title:            qwc.Quiz.Title,
			DurationMinutes:  qwc.Quiz.DurationMinutes,
			MarksPerQuestion: qwc.Quiz.MarksPerQuestion,
			NegativeMarking:  qwc.Quiz.NegativeMarking,
			StartTime:        qwc.Quiz.StartTime,
			EndTime:          qwc.Quiz.EndTime,
			QuestionCount:    qwc.QuestionCount,
			MyAttempts:       int(attempts),
			CreatedAt:        qwc.Quiz.CreatedAt,
		})
	}
	return dtos, nil
}
