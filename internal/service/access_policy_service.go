package service

import (
	"errors"
	"time"

	"github.com/lshigami/Margay/internal/apperr"
	"github.com/lshigami/Margay/internal/model"
	"github.com/lshigami/Margay/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AccessPolicyService is the assignment ledger: it decides whether a
// user may start an attempt right now. It is a pure check with no side
// effects; all mutations happen in the attempt service.
type AccessPolicyService interface {
	CanStart(user *model.User, quiz *model.Quiz, now time.Time) error
}

type accessPolicyService struct {
	assignmentRepo repository.AssignmentRepository
	attemptRepo    repository.AttemptRepository
}

func NewAccessPolicyService(
	assignmentRepo repository.AssignmentRepository,
	attemptRepo repository.AttemptRepository,
) AccessPolicyService {
	return &accessPolicyService{assignmentRepo: assignmentRepo, attemptRepo: attemptRepo}
}

// CanStart evaluates the rules in order: privileged bypass (admins and
// teachers skip assignment, limit and cooldown, but still respect the
// quiz window), assignment existence, attempts limit, cooldown, quiz
// time window. A nil return means Allow; every Deny is an
// apperr.PolicyViolation carrying the reason.
func (s *accessPolicyService) CanStart(user *model.User, quiz *model.Quiz, now time.Time) error {
	if user.IsPrivileged() {
		return s.checkWindow(quiz, now)
	}

	assignment, err := s.assignmentRepo.FindByUserAndQuiz(user.ID, quiz.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.PolicyViolation("not assigned")
		}
		log.Error().Err(err).Uint("userID", user.ID).Uint("quizID", quiz.ID).Msg("CanStart: assignment lookup failed")
		return err
	}

	count, err := s.attemptRepo.CountByUserAndQuiz(user.ID, quiz.ID)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Uint("quizID", quiz.ID).Msg("CanStart: attempt count failed")
		return err
	}
	if count >= int64(assignment.AttemptsLimit) {
		return apperr.PolicyViolation("limit reached")
	}

	if assignment.CooldownDays > 0 {
		last, err := s.attemptRepo.LastByUserAndQuiz(user.ID, quiz.ID)
		switch {
		case err == nil:
			// Whole-day difference between now and the previous start.
			days := int(now.Sub(last.StartedAt).Hours() / 24)
			if days < assignment.CooldownDays {
				return apperr.PolicyViolation("cooldown active")
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// First attempt, nothing to cool down from.
		default:
			log.Error().Err(err).Uint("userID", user.ID).Uint("quizID", quiz.ID).Msg("CanStart: last attempt lookup failed")
			return err
		}
	}

	return s.checkWindow(quiz, now)
}

func (s *accessPolicyService) checkWindow(quiz *model.Quiz, now time.Time) error {
	if quiz.StartTime != nil && now.Before(*quiz.StartTime) {
		return apperr.PolicyViolation("not started yet")
	}
	if quiz.EndTime != nil && now.After(*quiz.EndTime) {
		return apperr.PolicyViolation("window ended")
	}
	return nil
}
