package service

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/lshigami/Margay/internal/apperr"
	"github.com/lshigami/Margay/internal/dto"
	"github.com/lshigami/Margay/internal/model"
	"github.com/lshigami/Margay/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttemptService owns the attempt lifecycle: NotStarted → InProgress →
// Submitted, with no way back from Submitted. Caller identity is an
// explicit parameter on every operation; there is no ambient user.
type AttemptService interface {
	Start(callerID, quizID uint, now time.Time) (*dto.StartAttemptDTO, error)
	Autosave(callerID, attemptID uint, req dto.AutosaveRequest) error
	Submit(callerID, attemptID, quizID uint, lateAnswers map[uint]string) (*dto.SubmitResultDTO, error)
	GetMyAttempts(callerID uint) ([]dto.AttemptSummaryDTO, error)
}

type attemptService struct {
	userRepo    repository.UserRepository
	quizRepo    repository.QuizRepository
	attemptRepo repository.AttemptRepository
	policy      AccessPolicyService
	scoring     ScoringService
	observer    SubmitObserver
	db          *gorm.DB

	// rng is injected so tests can pin the shuffle; rand.Rand is not
	// goroutine safe, hence the mutex.
	rng   *rand.Rand
	rngMu sync.Mutex
}

func NewAttemptService(
	userRepo repository.UserRepository,
	quizRepo repository.QuizRepository,
	attemptRepo repository.AttemptRepository,
	policy AccessPolicyService,
	scoring ScoringService,
	observer SubmitObserver,
	db *gorm.DB,
	rng *rand.Rand,
) AttemptService {
	return &attemptService{
		userRepo:    userRepo,
		quizRepo:    quizRepo,
		attemptRepo: attemptRepo,
		policy:      policy,
		scoring:     scoring,
		observer:    observer,
		db:          db,
		rng:         rng,
	}
}

// Start checks the assignment ledger, creates the attempt row, and
// returns the quiz's question snapshot in a fresh uniform shuffle plus
// the advisory deadline. The deadline is for the client timer only;
// submit never rejects on it.
func (s *attemptService) Start(callerID, quizID uint, now time.Time) (*dto.StartAttemptDTO, error) {
	user, err := s.userRepo.FindByID(callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user %d not found", callerID)
		}
		return nil, err
	}

	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("quiz %d not found", quizID)
		}
		log.Error().Err(err).Uint("quizID", quizID).Msg("Start: quiz lookup failed")
		return nil, err
	}
	if len(quiz.Questions) == 0 {
		return nil, apperr.InvalidInput("quiz %d has no questions", quizID)
	}

	if err := s.policy.CanStart(user, quiz, now); err != nil {
		log.Info().Err(err).Uint("userID", callerID).Uint("quizID", quizID).Msg("Start denied by policy")
		return nil, err
	}

	attempt := model.Attempt{
		UserID:    callerID,
		QuizID:    quizID,
		StartedAt: now,
		Active:    true,
	}
	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Uint("userID", callerID).Uint("quizID", quizID).Msg("Start: failed to create attempt")
		return nil, err
	}

	questions := make([]dto.TakerQuestionDTO, len(quiz.Questions))
	for i, q := range quiz.Questions {
		questions[i] = dto.TakerQuestionDTO{
			ID:      q.ID,
			Text:    q.Text,
			OptionA: q.OptionA,
			OptionB: q.OptionB,
			OptionC: q.OptionC,
			OptionD: q.OptionD,
		}
	}
	s.rngMu.Lock()
	s.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	s.rngMu.Unlock()

	log.Info().Uint("attemptID", attempt.ID).Uint("userID", callerID).Uint("quizID", quizID).Msg("Attempt started")
	return &dto.StartAttemptDTO{
		AttemptID: attempt.ID,
		QuizID:    quiz.ID,
		QuizTitle: quiz.Title,
		Questions: questions,
		StartedAt: now,
		Deadline:  quiz.Deadline(now),
	}, nil
}

// Autosave upserts the single answer row for (attempt, question).
// Selection updates only on a non-empty value (last non-empty write
// wins), flagged always overwrites, note overwrites only when
// non-empty. It fails closed on submitted attempts: the active check
// runs inside the same transaction that writes the row, so an autosave
// racing a submit can never resurrect a finished attempt.
func (s *attemptService) Autosave(callerID, attemptID uint, req dto.AutosaveRequest) error {
	if req.SelectedOption != "" {
		letter := strings.ToUpper(req.SelectedOption[:1])
		if letter < "A" || letter > "D" {
			return apperr.InvalidInput("selected option must be one of A-D, got %q", req.SelectedOption)
		}
	}
	if len(req.Note) > model.NoteMaxLen {
		return apperr.InvalidInput("note exceeds %d characters", model.NoteMaxLen)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var attempt model.Attempt
		if err := lockForUpdate(tx).First(&attempt, attemptID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("attempt %d not found", attemptID)
			}
			return err
		}
		if attempt.UserID != callerID {
			return apperr.Unauthorized("attempt %d does not belong to caller", attemptID)
		}
		if !attempt.Active {
			return apperr.Conflict("attempt %d already submitted", attemptID)
		}

		var question model.Question
		if err := tx.Where("id = ? AND quiz_id = ?", req.QuestionID, attempt.QuizID).First(&question).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("question %d not part of quiz %d", req.QuestionID, attempt.QuizID)
			}
			return err
		}

		var answer model.AttemptAnswer
		err := tx.Where("attempt_id = ? AND question_id = ?", attemptID, req.QuestionID).First(&answer).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			answer = model.AttemptAnswer{AttemptID: attemptID, QuestionID: req.QuestionID}
		case err != nil:
			return err
		}

		if req.SelectedOption != "" {
			selected := strings.ToUpper(req.SelectedOption[:1])
			answer.SelectedOption = &selected
		}
		answer.Flagged = req.Flagged
		if req.Note != "" {
			answer.Note = req.Note
		}

		return tx.Save(&answer).Error
	})
}

// Submit finalizes an attempt. It runs in one transaction that locks
// the attempt row: the first caller through scores every question of
// the quiz (answered or not), sums the marks, flips the attempt to
// Submitted and applies rewards. Any later call, concurrent or replay,
// observes Active == false and gets the stored result back without
// re-scoring or re-crediting.
func (s *attemptService) Submit(callerID, attemptID, quizID uint, lateAnswers map[uint]string) (*dto.SubmitResultDTO, error) {
	var result dto.SubmitResultDTO

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var attempt model.Attempt
		if err := lockForUpdate(tx).First(&attempt, attemptID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("attempt %d not found", attemptID)
			}
			return err
		}
		if attempt.QuizID != quizID {
			return apperr.InvalidInput("attempt %d does not belong to quiz %d", attemptID, quizID)
		}
		if attempt.UserID != callerID {
			var caller model.User
			if err := tx.First(&caller, callerID).Error; err != nil || !caller.IsPrivileged() {
				return apperr.Unauthorized("attempt %d does not belong to caller", attemptID)
			}
		}

		if !attempt.Active {
			// Terminal state reached earlier; replay returns the
			// already-computed score with no side effects.
			result = dto.SubmitResultDTO{AttemptID: attempt.ID, Score: attempt.Score, SubmittedAt: *attempt.SubmittedAt}
			return nil
		}

		var quiz model.Quiz
		if err := tx.Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.id ASC")
		}).First(&quiz, attempt.QuizID).Error; err != nil {
			return err
		}

		total := 0.0
		for i := range quiz.Questions {
			question := &quiz.Questions[i]

			var answer model.AttemptAnswer
			err := tx.Where("attempt_id = ? AND question_id = ?", attempt.ID, question.ID).First(&answer).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				answer = model.AttemptAnswer{AttemptID: attempt.ID, QuestionID: question.ID}
			case err != nil:
				return err
			}

			selected := answer.SelectedOption
			if selected == nil {
				if late, ok := lateAnswers[question.ID]; ok && late != "" {
					letter := strings.ToUpper(late[:1])
					selected = &letter
				}
			}

			isCorrect, marks := s.scoring.Score(question, selected, &quiz)
			answer.SelectedOption = selected
			answer.IsCorrect = isCorrect
			answer.MarksEarned = marks
			if err := tx.Save(&answer).Error; err != nil {
				return err
			}
			total += marks
		}

		now := time.Now()
		attempt.Score = total
		attempt.SubmittedAt = &now
		attempt.Active = false
		if err := tx.Save(&attempt).Error; err != nil {
			return err
		}

		if err := s.observer.AttemptSubmitted(tx, &attempt); err != nil {
			return err
		}

		result = dto.SubmitResultDTO{AttemptID: attempt.ID, Score: total, SubmittedAt: now}
		log.Info().Uint("attemptID", attempt.ID).Float64("score", total).Msg("Attempt submitted")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *attemptService) GetMyAttempts(callerID uint) ([]dto.AttemptSummaryDTO, error) {
	attempts, err := s.attemptRepo.FindAllByUser(callerID)
	if err != nil {
		log.Error().Err(err).Uint("userID", callerID).Msg("GetMyAttempts: lookup failed")
		return nil, err
	}

	dtos := make([]dto.AttemptSummaryDTO, 0, len(attempts))
	for _, attempt := range attempts {
		dtos = append(dtos, dto.AttemptSummaryDTO{
			ID:          attempt.ID,
			QuizID:      attempt.QuizID,
			QuizTitle:   attempt.Quiz.Title,
			UserID:      attempt.UserID,
			Score:       attempt.Score,
			StartedAt:   attempt.StartedAt,
			SubmittedAt: attempt.SubmittedAt,
			Active:      attempt.Active,
		})
	}
	return dtos, nil
}

// lockForUpdate adds SELECT ... FOR UPDATE on dialects that support it.
// sqlite has no row locks; its single-writer transactions already
// serialize the submit path there.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
