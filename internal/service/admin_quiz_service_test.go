package service_test

import (
	"testing"
	"time"

	"github.com/lshigami/Margay/internal/apperr"
	"github.com/lshigami/Margay/internal/dto"
	"github.com/lshigami/Margay/internal/model"
	"github.com/lshigami/Margay/internal/repository"
	"github.com/lshigami/Margay/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAdminQuizService(db *gorm.DB) service.AdminQuizService {
	return service.NewAdminQuizService(
		repository.NewQuizRepository(db),
		repository.NewAttemptRepository(db),
		repository.NewSubjectRepository(db),
		db,
	)
}

func TestCreateQuizWithQuestions(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminQuizService(db)

	resp, err := svc.CreateQuiz(dto.QuizCreateDTO{
		Title:           "Optics",
		DurationMinutes: 25,
		NegativeMarking: 0.25,
		Questions: []dto.QuestionCreateDTO{
			{Text: "Q1", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectOption: "b", Subject: "Physics", Chapter: "Light"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Optics", resp.Title)
	assert.Equal(t, 1.0, resp.MarksPerQuestion, "marks per question defaults to 1")
	require.Len(t, resp.Questions, 1)
	assert.Equal(t, "B", resp.Questions[0].CorrectOption)
	assert.Equal(t, "Physics", resp.Questions[0].Subject)
	assert.Equal(t, "Light", resp.Questions[0].Chapter)
}

func TestCreateQuizRejectsInvertedWindow(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminQuizService(db)

	start := time.Now()
	end := start.Add(-time.Hour)
	_, err := svc.CreateQuiz(dto.QuizCreateDTO{
		Title:           "Broken window",
		DurationMinutes: 10,
		StartTime:       &start,
		EndTime:         &end,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
}

func TestDeleteQuizCascades(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice", model.RoleUser)
	quiz := seedQuiz(t, db)
	seedAssignment(t, db, user.ID, quiz.ID, 1, 0)

	attemptSvc := newAttemptService(t, db)
	started, err := attemptSvc.Start(user.ID, quiz.ID, time.Now())
	require.NoError(t, err)
	_, err = attemptSvc.Submit(user.ID, started.AttemptID, quiz.ID, map[uint]string{quiz.Questions[0].ID: "A"})
	require.NoError(t, err)

	require.NoError(t, newAdminQuizService(db).DeleteQuiz(quiz.ID))

	for _, probe := range []struct {
		name  string
		model interface{}
	}{
		{"quizzes", &model.Quiz{}},
		{"questions", &model.Question{}},
		{"assignments", &model.Assignment{}},
		{"attempts", &model.Attempt{}},
		{"attempt answers", &model.AttemptAnswer{}},
	} {
		var count int64
		require.NoError(t, db.Model(probe.model).Count(&count).Error)
		assert.Zero(t, count, "expected no %s left after cascade", probe.name)
	}
}

func TestGetQuizResultsOrdering(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db)
	low := seedUser(t, db, "low", model.RoleUser)
	high := seedUser(t, db, "high", model.RoleUser)
	seedAssignment(t, db, low.ID, quiz.ID, 1, 0)
	seedAssignment(t, db, high.ID, quiz.ID, 1, 0)

	attemptSvc := newAttemptService(t, db)
	started, err := attemptSvc.Start(low.ID, quiz.ID, time.Now())
	require.NoError(t, err)
	_, err = attemptSvc.Submit(low.ID, started.AttemptID, quiz.ID, nil)
	require.NoError(t, err)

	started, err = attemptSvc.Start(high.ID, quiz.ID, time.Now())
	require.NoError(t, err)
	_, err = attemptSvc.Submit(high.ID, started.AttemptID, quiz.ID, map[uint]string{
		quiz.Questions[0].ID: "A",
		quiz.Questions[1].ID: "B",
		quiz.Questions[2].ID: "C",
	})
	require.NoError(t, err)

	rows, err := newAdminQuizService(db).GetQuizResults(quiz.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "high", rows[0].Username)
	assert.Equal(t, 6.0, rows[0].Score)
	assert.Equal(t, "low", rows[1].Username)
}
