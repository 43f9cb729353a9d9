package service_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/lshigami/Margay/internal/apperr"
	"github.com/lshigami/Margay/internal/dto"
	"github.com/lshigami/Margay/internal/model"
	"github.com/lshigami/Margay/internal/repository"
	"github.com/lshigami/Margay/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Subject{},
		&model.Chapter{},
		&model.Quiz{},
		&model.Question{},
		&model.Assignment{},
		&model.Attempt{},
		&model.AttemptAnswer{},
	))
	return db
}

func newAttemptService(t *testing.T, db *gorm.DB) service.AttemptService {
	t.Helper()
	attemptRepo := repository.NewAttemptRepository(db)
	return service.NewAttemptService(
		repository.NewUserRepository(db),
		repository.NewQuizRepository(db),
		attemptRepo,
		service.NewAccessPolicyService(repository.NewAssignmentRepository(db), attemptRepo),
		service.NewScoringService(),
		service.NewRewardService(),
		db,
		rand.New(rand.NewSource(1)),
	)
}

func seedUser(t *testing.T, db *gorm.DB, username, role string) *model.User {
	t.Helper()
	user := model.User{Username: username, PasswordHash: "x", Role: role}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// seedQuiz creates a quiz with three questions whose correct options
// are A, B and C, worth 2 marks each with 0.5 negative marking.
func seedQuiz(t *testing.T, db *gorm.DB) *model.Quiz {
	t.Helper()
	quiz := model.Quiz{
		Title:            "Mechanics basics",
		DurationMinutes:  30,
		MarksPerQuestion: 2,
		NegativeMarking:  0.5,
		Questions: []model.Question{
			{Text: "Q1", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectOption: "A"},
			{Text: "Q2", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectOption: "B"},
			{Text: "Q3", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectOption: "C"},
		},
	}
	require.NoError(t, db.Create(&quiz).Error)
	return &quiz
}

func seedAssignment(t *testing.T, db *gorm.DB, userID, quizID uint, limit, cooldownDays int) {
	t.Helper()
	require.NoError(t, db.Create(&model.Assignment{
		UserID:        userID,
		QuizID:        quizID,
		AttemptsLimit: limit,
		CooldownDays:  cooldownDays,
	}).Error)
}

func TestStartReturnsShuffledSnapshot(t *testing.T) {
	db := newTestDB(t)
	svc := newAttemptService(t, db)
	user := seedUser(t, db, "alice", model.RoleUser)
	quiz := seedQuiz(t, db)
	seedAssignment(t, db, user.ID, quiz.ID, 3, 0)

	started, err := svc.Start(user.ID, quiz.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, quiz.ID, started.QuizID)
	assert.Equal(t, started.StartedAt.Add(30*time.Minute), started.Deadline)

	// All questions present exactly once, regardless of shuffle order.
	require.Len(t, started.Questions, 3)
	seen := make(map[uint]bool)
	for _, q := range started.Questions {
		seen[q.ID] = true
	}
	assert.Len(t, seen, 3)

	var attempt model.Attempt
	require.NoError(t, db.First(&attempt, started.AttemptID).Error)
	assert.True(t, attempt.Active)
	assert.Nil(t, attempt.SubmittedAt)
}

func TestStartDeniedWithoutAssignment(t *testing.T) {
	db := newTestDB(t)
	svc := newAttemptService(t, db)
	user := seedUser(t, db, "bob", model.RoleUser)
	quiz := seedQuiz(t, db)

	_, err := svc.Start(user.ID, quiz.ID, time.Now())
	require.Error(t, err)
	assert.Equal(t, apperr.KindPolicyViolation, apperr.KindOf(err))

	// A denied start leaves no attempt row behind.
	var count int64
	require.NoError(t, db.Model(&model.Attempt{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestStartEnforcesAttemptLimit(t *testing.T) {
	db := newTestDB(t)
	svc := newAttemptService(t, db)
	user := seedUser(t, db, "carol", model.RoleUser)
	quiz := seedQuiz(t, db)
	seedAssignment(t, db, user.ID, quiz.ID, 1, 0)

	_, err := svc.Start(user.ID, quiz.ID, time.Now())
	require.NoError(t, err)

	_, err = svc.Start(user.ID, quiz.ID, time.Now())
	require.Error(t, err)
	assert.EqualError(t, err, "limit reached")
}

func TestAutosaveEmptySelectionKeepsPrevious(t *testing.T) {
	db := newTestDB(t)
	svc := newAttemptService(t, db)
	user := seedUser(t, db, "dave", model.RoleUser)
	quiz := seedQuiz(t, db)
	seedAssignment(t, db, user.ID, quiz.ID, 1, 0)

	started, err := svc.Start(user.ID, quiz.ID, time.Now())
	require.NoError(t, err)
	questionID := quiz.Questions[0].ID

	require.NoError(t, svc.Autosave(user.ID, started.AttemptID, dto.AutosaveRequest{
		QuestionID:     questionID,
		SelectedOption: "b",
	}))

	// Flag-only write: selection must survive, flag must flip.
	require.NoError(t, svc.Autosave(user.ID, started.AttemptID, dto.AutosaveRequest{
		QuestionID: questionID,
		Flagged:    true,
		Note:       "revisit",
	}))

	var answer model.AttemptAnswer
	require.NoError(t, db.Where("attempt_id = ? AND question_id = ?", started.AttemptID, questionID).First(&answer).Error)
	require.NotNil(t, answer.SelectedOption)
	assert.Equal(t, "B", *answer.SelectedOption)
	assert.True(t, answer.Flagged)
	assert.Equal(t, "revisit", answer.Note)
}

func TestAutosaveValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newAttemptService(t, db)
	user := seedUser(t, db, "erin", model.RoleUser)
	quiz := seedQuiz(t, db)
	seedAssignment(t, db, user.ID, quiz.ID, 1, 0)

	started, err := svc.Start(user.ID, quiz.ID, time.Now())
	require.NoError(t, err)
	questionID := quiz.Questions[0].ID

	err = svc.Autosave(user.ID, started.AttemptID, dto.AutosaveRequest{QuestionID: questionID, SelectedOption: "X"})
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))

	err = svc.Autosave(user.ID, started.AttemptID, dto.AutosaveRequest{QuestionID: questionID, Note: strings.Repeat("n", model.NoteMaxLen+1)})
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))

	err = svc.Autosave(user.ID, started.AttemptID, dto.AutosaveRequest{QuestionID: 9999, SelectedOption: "A"})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	other := seedUser(t, db, "mallory", model.RoleUser)
	err = svc.Autosave(other.ID, started.AttemptID, dto.AutosaveRequest{QuestionID: questionID, SelectedOption: "A"})
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestAutosaveAfterSubmitConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := newAttemptService(t, db)
	user := seedUser(t, db, "frank", model.RoleUser)
	quiz := seedQuiz(t, db)
	seedAssignment(t, db, user.ID, quiz.ID, 1, 0)

	started, err := svc.Start(user.ID, quiz.ID, time.Now())
	require.NoError(t, err)
	_, err = svc.Submit(user.ID, started.AttemptID, quiz.ID, nil)
	require.NoError(t, err)

	err = svc.Autosave(user.ID, started.AttemptID, dto.AutosaveRequest{
		QuestionID:     quiz.Questions[0].ID,
		SelectedOption: "A",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestSubmitScoresEveryQuestion(t *testing.T) {
	db := newTestDB(t)
	svc := newAttemptService(t, db)
	user := seedUser(t, db, "grace", model.RoleUser)
	quiz := seedQuiz(t, db)
	seedAssignment(t, db, user.ID, quiz.ID, 1, 0)

	started, err := svc.Start(user.ID, quiz.ID, time.Now())
	require.NoError(t, err)

	// Q1 correct via autosave, Q2 wrong via late answers, Q3 skipped.
	require.NoError(t, svc.Autosave(user.ID, started.AttemptID, dto.AutosaveRequest{
		QuestionID:     quiz.Questions[0].ID,
		SelectedOption: "A",
	}))
	result, err := svc.Submit(user.ID, started.AttemptID, quiz.ID, map[uint]string{
		quiz.Questions[1].ID: "d",
	})
	require.NoError(t, err)
	assert.Equal(t, 1.5, result.Score)

	var attempt model.Attempt
	require.NoError(t, db.First(&attempt, started.AttemptID).Error)
	assert.False(t, attempt.Active)
	require.NotNil(t, attempt.SubmittedAt)
	assert.Equal(t, 1.5, attempt.Score)

	// Every question got an answer row, the skipped one with no penalty.
	var answers []model.AttemptAnswer
	require.NoError(t, db.Where("attempt_id = ?", started.AttemptID).Order("question_id").Find(&answers).Error)
	require.Len(t, answers, 3)
	assert.Equal(t, 2.0, answers[0].MarksEarned)
	assert.Equal(t, -0.5, answers[1].MarksEarned)
	assert.Equal(t, 0.0, answers[2].MarksEarned)
	assert.Nil(t, answers[2].SelectedOption)

	// floor(1.5) coins credited.
	var updated model.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.Equal(t, 1, updated.Coins)
}

func TestSubmitReplayReturnsCachedScore(t *testing.T) {
	db := newTestDB(t)
	svc := newAttemptService(t, db)
	user := seedUser(t, db, "heidi", model.RoleUser)
	quiz := seedQuiz(t, db)
	seedAssignment(t, db, user.ID, quiz.ID, 1, 0)

	started, err := svc.Start(user.ID, quiz.ID, time.Now())
	require.NoError(t, err)

	first, err := svc.Submit(user.ID, started.AttemptID, quiz.ID, map[uint]string{
		quiz.Questions[0].ID: "A",
		quiz.Questions[1].ID: "B",
	})
	require.NoError(t, err)
	assert.Equal(t, 4.0, first.Score)

	// Replay with different late answers changes nothing.
	second, err := svc.Submit(user.ID, started.AttemptID, quiz.ID, map[uint]string{
		quiz.Questions[2].ID: "C",
	})
	require.NoError(t, err)
	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.SubmittedAt.Unix(), second.SubmittedAt.Unix())

	// Coins were credited exactly once.
	var updated model.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.Equal(t, 4, updated.Coins)
}

func TestSubmitQuizMismatch(t *testing.T) {
	db := newTestDB(t)
	svc := newAttemptService(t, db)
	user := seedUser(t, db, "ivan", model.RoleUser)
	quiz := seedQuiz(t, db)
	seedAssignment(t, db, user.ID, quiz.ID, 1, 0)

	started, err := svc.Start(user.ID, quiz.ID, time.Now())
	require.NoError(t, err)

	_, err = svc.Submit(user.ID, started.AttemptID, quiz.ID+99, nil)
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
}

func TestSubmitGrantsTopperBadge(t *testing.T) {
	db := newTestDB(t)
	svc := newAttemptService(t, db)
	user := seedUser(t, db, "judy", model.RoleUser)
	quiz := model.Quiz{
		Title:            "Finals",
		DurationMinutes:  60,
		MarksPerQuestion: 30,
		Questions: []model.Question{
			{Text: "Q1", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectOption: "A"},
		},
	}
	require.NoError(t, db.Create(&quiz).Error)
	seedAssignment(t, db, user.ID, quiz.ID, 1, 0)

	started, err := svc.Start(user.ID, quiz.ID, time.Now())
	require.NoError(t, err)
	result, err := svc.Submit(user.ID, started.AttemptID, quiz.ID, map[uint]string{quiz.Questions[0].ID: "A"})
	require.NoError(t, err)
	assert.Equal(t, 30.0, result.Score)

	var updated model.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.True(t, updated.HasBadge(service.TopperBadge))
	assert.Equal(t, 30, updated.Coins)
}

func TestGetMyAttempts(t *testing.T) {
	db := newTestDB(t)
	svc := newAttemptService(t, db)
	user := seedUser(t, db, "kim", model.RoleUser)
	quiz := seedQuiz(t, db)
	seedAssignment(t, db, user.ID, quiz.ID, 2, 0)

	started, err := svc.Start(user.ID, quiz.ID, time.Now())
	require.NoError(t, err)
	_, err = svc.Submit(user.ID, started.AttemptID, quiz.ID, nil)
	require.NoError(t, err)
	_, err = svc.Start(user.ID, quiz.ID, time.Now())
	require.NoError(t, err)

	attempts, err := svc.GetMyAttempts(user.ID)
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	for _, a := range attempts {
		assert.Equal(t, quiz.ID, a.QuizID)
		assert.Equal(t, "Mechanics basics", a.QuizTitle)
	}
}
