package service_test

import (
	"testing"
	"time"

	"github.com/lshigami/Margay/internal/apperr"
	"github.com/lshigami/Margay/internal/model"
	"github.com/lshigami/Margay/internal/repository"
	"github.com/lshigami/Margay/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubAssignmentRepo struct {
	assignment *model.Assignment
	err        error
}

func (s *stubAssignmentRepo) Upsert(*model.Assignment) error { return nil }
func (s *stubAssignmentRepo) FindByUserAndQuiz(userID, quizID uint) (*model.Assignment, error) {
	return s.assignment, s.err
}
func (s *stubAssignmentRepo) FindAllByQuiz(quizID uint) ([]model.Assignment, error) {
	return nil, nil
}

type stubAttemptRepo struct {
	repository.AttemptRepository
	count   int64
	last    *model.Attempt
	lastErr error
}

func (s *stubAttemptRepo) CountByUserAndQuiz(userID, quizID uint) (int64, error) {
	return s.count, nil
}
func (s *stubAttemptRepo) LastByUserAndQuiz(userID, quizID uint) (*model.Attempt, error) {
	return s.last, s.lastErr
}

func newPolicy(assignment *model.Assignment, assignErr error, attempts *stubAttemptRepo) service.AccessPolicyService {
	if attempts == nil {
		attempts = &stubAttemptRepo{lastErr: gorm.ErrRecordNotFound}
	}
	return service.NewAccessPolicyService(&stubAssignmentRepo{assignment: assignment, err: assignErr}, attempts)
}

func TestCanStartNotAssigned(t *testing.T) {
	policy := newPolicy(nil, gorm.ErrRecordNotFound, nil)
	user := &model.User{ID: 1, Role: model.RoleUser}

	err := policy.CanStart(user, &model.Quiz{ID: 1}, time.Now())
	require.Error(t, err)
	assert.Equal(t, apperr.KindPolicyViolation, apperr.KindOf(err))
	assert.EqualError(t, err, "not assigned")
}

func TestCanStartPrivilegedBypassesAssignment(t *testing.T) {
	policy := newPolicy(nil, gorm.ErrRecordNotFound, nil)
	now := time.Now()

	for _, role := range []string{model.RoleAdmin, model.RoleTeacher} {
		user := &model.User{ID: 1, Role: role}
		assert.NoError(t, policy.CanStart(user, &model.Quiz{ID: 1}, now), "role %s", role)
	}

	// The quiz window still binds privileged roles.
	ended := now.Add(-time.Hour)
	err := policy.CanStart(&model.User{ID: 1, Role: model.RoleAdmin}, &model.Quiz{ID: 1, EndTime: &ended}, now)
	require.Error(t, err)
	assert.EqualError(t, err, "window ended")
}

func TestCanStartAttemptLimit(t *testing.T) {
	assignment := &model.Assignment{UserID: 1, QuizID: 1, AttemptsLimit: 2}
	user := &model.User{ID: 1, Role: model.RoleUser}
	now := time.Now()

	policy := newPolicy(assignment, nil, &stubAttemptRepo{count: 1, lastErr: gorm.ErrRecordNotFound})
	assert.NoError(t, policy.CanStart(user, &model.Quiz{ID: 1}, now))

	policy = newPolicy(assignment, nil, &stubAttemptRepo{count: 2, lastErr: gorm.ErrRecordNotFound})
	err := policy.CanStart(user, &model.Quiz{ID: 1}, now)
	require.Error(t, err)
	assert.Equal(t, apperr.KindPolicyViolation, apperr.KindOf(err))
	assert.EqualError(t, err, "limit reached")
}

func TestCanStartCooldown(t *testing.T) {
	assignment := &model.Assignment{UserID: 1, QuizID: 1, AttemptsLimit: 10, CooldownDays: 2}
	user := &model.User{ID: 1, Role: model.RoleUser}
	now := time.Now()

	// 47h since the last start is one whole day: still cooling down.
	last := &model.Attempt{StartedAt: now.Add(-47 * time.Hour)}
	policy := newPolicy(assignment, nil, &stubAttemptRepo{count: 1, last: last})
	err := policy.CanStart(user, &model.Quiz{ID: 1}, now)
	require.Error(t, err)
	assert.EqualError(t, err, "cooldown active")

	// 49h is two whole days: allowed.
	last = &model.Attempt{StartedAt: now.Add(-49 * time.Hour)}
	policy = newPolicy(assignment, nil, &stubAttemptRepo{count: 1, last: last})
	assert.NoError(t, policy.CanStart(user, &model.Quiz{ID: 1}, now))
}

func TestCanStartCooldownFirstAttempt(t *testing.T) {
	assignment := &model.Assignment{UserID: 1, QuizID: 1, AttemptsLimit: 3, CooldownDays: 5}
	policy := newPolicy(assignment, nil, &stubAttemptRepo{count: 0, lastErr: gorm.ErrRecordNotFound})

	err := policy.CanStart(&model.User{ID: 1, Role: model.RoleUser}, &model.Quiz{ID: 1}, time.Now())
	assert.NoError(t, err, "no previous attempt means nothing to cool down from")
}

func TestCanStartWindow(t *testing.T) {
	assignment := &model.Assignment{UserID: 1, QuizID: 1, AttemptsLimit: 5}
	user := &model.User{ID: 1, Role: model.RoleUser}
	now := time.Now()
	policy := newPolicy(assignment, nil, &stubAttemptRepo{lastErr: gorm.ErrRecordNotFound})

	future := now.Add(time.Hour)
	err := policy.CanStart(user, &model.Quiz{ID: 1, StartTime: &future}, now)
	require.Error(t, err)
	assert.EqualError(t, err, "not started yet")

	past := now.Add(-time.Hour)
	err = policy.CanStart(user, &model.Quiz{ID: 1, EndTime: &past}, now)
	require.Error(t, err)
	assert.EqualError(t, err, "window ended")

	start := now.Add(-time.Minute)
	end := now.Add(time.Minute)
	assert.NoError(t, policy.CanStart(user, &model.Quiz{ID: 1, StartTime: &start, EndTime: &end}, now))
}
