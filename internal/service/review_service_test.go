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

func newReviewService(db *gorm.DB) service.ReviewService {
	return service.NewReviewService(repository.NewUserRepository(db), repository.NewAttemptRepository(db))
}

// seedTaggedQuiz builds a quiz where Q1 and Q2 are tagged Math (chapters
// Algebra and Geometry) and Q3 carries no tags.
func seedTaggedQuiz(t *testing.T, db *gorm.DB) *model.Quiz {
	t.Helper()
	math := model.Subject{Name: "Math"}
	require.NoError(t, db.Create(&math).Error)
	algebra := model.Chapter{SubjectID: math.ID, Name: "Algebra"}
	geometry := model.Chapter{SubjectID: math.ID, Name: "Geometry"}
	require.NoError(t, db.Create(&algebra).Error)
	require.NoError(t, db.Create(&geometry).Error)

	quiz := model.Quiz{
		Title:            "Midterm",
		DurationMinutes:  45,
		MarksPerQuestion: 2,
		NegativeMarking:  0.5,
		Questions: []model.Question{
			{Text: "Q1", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectOption: "A", SubjectID: &math.ID, ChapterID: &algebra.ID},
			{Text: "Q2", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectOption: "B", SubjectID: &math.ID, ChapterID: &geometry.ID},
			{Text: "Q3", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectOption: "C"},
		},
	}
	require.NoError(t, db.Create(&quiz).Error)
	return &quiz
}

func submitTaggedAttempt(t *testing.T, db *gorm.DB, user *model.User, quiz *model.Quiz) uint {
	t.Helper()
	svc := newAttemptService(t, db)
	started, err := svc.Start(user.ID, quiz.ID, time.Now())
	require.NoError(t, err)

	// Q1 correct, Q2 wrong, Q3 skipped.
	require.NoError(t, svc.Autosave(user.ID, started.AttemptID, dto.AutosaveRequest{
		QuestionID:     quiz.Questions[0].ID,
		SelectedOption: "A",
		Flagged:        true,
	}))
	require.NoError(t, svc.Autosave(user.ID, started.AttemptID, dto.AutosaveRequest{
		QuestionID:     quiz.Questions[1].ID,
		SelectedOption: "D",
		Note:           "guessed",
	}))
	_, err = svc.Submit(user.ID, started.AttemptID, quiz.ID, nil)
	require.NoError(t, err)
	return started.AttemptID
}

func TestReviewAggregation(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice", model.RoleUser)
	quiz := seedTaggedQuiz(t, db)
	seedAssignment(t, db, user.ID, quiz.ID, 1, 0)
	attemptID := submitTaggedAttempt(t, db, user, quiz)

	review, err := newReviewService(db).Review(user.ID, attemptID)
	require.NoError(t, err)
	assert.Equal(t, quiz.ID, review.QuizID)
	assert.Equal(t, "Midterm", review.QuizTitle)
	assert.Equal(t, 1.5, review.Score)

	// Sorted by name: General before Math.
	require.Len(t, review.PerSubject, 2)
	general := review.PerSubject[0]
	assert.Equal(t, dto.ScoreBreakdownDTO{Subject: "General", Total: 1, Correct: 0, Wrong: 0, Marks: 0}, general)
	math := review.PerSubject[1]
	assert.Equal(t, dto.ScoreBreakdownDTO{Subject: "Math", Total: 2, Correct: 1, Wrong: 1, Marks: 1.5}, math)

	require.Len(t, review.PerChapter, 3)
	assert.Equal(t, dto.ScoreBreakdownDTO{Subject: "General", Chapter: "-", Total: 1}, review.PerChapter[0])
	assert.Equal(t, dto.ScoreBreakdownDTO{Subject: "Math", Chapter: "Algebra", Total: 1, Correct: 1, Marks: 2}, review.PerChapter[1])
	assert.Equal(t, dto.ScoreBreakdownDTO{Subject: "Math", Chapter: "Geometry", Total: 1, Wrong: 1, Marks: -0.5}, review.PerChapter[2])

	// Items come back in question order with the stored annotations.
	require.Len(t, review.Items, 3)
	assert.True(t, review.Items[0].Flagged)
	assert.Equal(t, "guessed", review.Items[1].Note)
	assert.Equal(t, "C", review.Items[2].CorrectOption)
	assert.Nil(t, review.Items[2].SelectedOption)
}

func TestReviewIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "bob", model.RoleUser)
	quiz := seedTaggedQuiz(t, db)
	seedAssignment(t, db, user.ID, quiz.ID, 1, 0)
	attemptID := submitTaggedAttempt(t, db, user, quiz)

	svc := newReviewService(db)
	first, err := svc.Review(user.ID, attemptID)
	require.NoError(t, err)
	second, err := svc.Review(user.ID, attemptID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestReviewAccessControl(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "carol", model.RoleUser)
	stranger := seedUser(t, db, "mallory", model.RoleUser)
	teacher := seedUser(t, db, "trent", model.RoleTeacher)
	quiz := seedTaggedQuiz(t, db)
	seedAssignment(t, db, owner.ID, quiz.ID, 1, 0)
	attemptID := submitTaggedAttempt(t, db, owner, quiz)

	svc := newReviewService(db)

	_, err := svc.Review(stranger.ID, attemptID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	_, err = svc.Review(teacher.ID, attemptID)
	assert.NoError(t, err)

	_, err = svc.Review(owner.ID, attemptID)
	assert.NoError(t, err)
}

func TestReviewOpenAttemptConflicts(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "dave", model.RoleUser)
	quiz := seedTaggedQuiz(t, db)
	seedAssignment(t, db, user.ID, quiz.ID, 1, 0)

	started, err := newAttemptService(t, db).Start(user.ID, quiz.ID, time.Now())
	require.NoError(t, err)

	_, err = newReviewService(db).Review(user.ID, started.AttemptID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}
