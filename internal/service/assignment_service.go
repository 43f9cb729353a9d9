package service

import (
	"errors"

	"github.com/lshigami/Margay/internal/apperr"
	"github.com/lshigami/Margay/internal/dto"
	"github.com/lshigami/Margay/internal/model"
	"github.com/lshigami/Margay/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AssignmentService interface {
	AssignQuiz(req dto.AssignmentUpsertDTO) (*model.Assignment, error)
}

type assignmentService struct {
	assignmentRepo repository.AssignmentRepository
	userRepo       repository.UserRepository
	quizRepo       repository.QuizRepository
}

func NewAssignmentService(
	assignmentRepo repository.AssignmentRepository,
	userRepo repository.UserRepository,
	quizRepo repository.QuizRepository,
) AssignmentService {
	return &assignmentService{assignmentRepo: assignmentRepo, userRepo: userRepo, quizRepo: quizRepo}
}

// AssignQuiz creates or updates the single assignment row for the
// (user, quiz) pair; re-assigning overwrites limit and cooldown.
func (s *assignmentService) AssignQuiz(req dto.AssignmentUpsertDTO) (*model.Assignment, error) {
	if req.AttemptsLimit < 1 {
		return nil, apperr.InvalidInput("attempts limit must be at least 1")
	}
	if req.CooldownDays < 0 {
		return nil, apperr.InvalidInput("cooldown days must not be negative")
	}

	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user %d not found", req.UserID)
		}
		return nil, err
	}
	if _, err := s.quizRepo.FindByID(req.QuizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("quiz %d not found", req.QuizID)
		}
		return nil, err
	}

	assignment := model.Assignment{
		UserID:        req.UserID,
		QuizID:        req.QuizID,
		AttemptsLimit: req.AttemptsLimit,
		CooldownDays:  req.CooldownDays,
	}
	if err := s.assignmentRepo.Upsert(&assignment); err != nil {
		log.Error().Err(err).Uint("userID", req.UserID).Uint("quizID", req.QuizID).Msg("Failed to upsert assignment")
		return nil, err
	}

	stored, err := s.assignmentRepo.FindByUserAndQuiz(req.UserID, req.QuizID)
	if err != nil {
		return nil, err
	}
	log.Info().Uint("userID", req.UserID).Uint("quizID", req.QuizID).Int("limit", stored.AttemptsLimit).Msg("Quiz assigned")
	return stored, nil
}
