package service_test

import (
	"testing"

	"github.com/lshigami/Margay/internal/apperr"
	"github.com/lshigami/Margay/internal/dto"
	"github.com/lshigami/Margay/internal/model"
	"github.com/lshigami/Margay/internal/repository"
	"github.com/lshigami/Margay/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserAndAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewUserService(repository.NewUserRepository(db))

	created, err := svc.CreateUser(dto.UserCreateDTO{Username: "alice", Password: "s3cret99"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, created.Role, "role defaults to user")

	user, err := svc.Authenticate("alice", "s3cret99")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	// Wrong password and unknown username fail identically.
	_, badPass := svc.Authenticate("alice", "wrong")
	_, badUser := svc.Authenticate("nobody", "s3cret99")
	require.Error(t, badPass)
	require.Error(t, badUser)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(badPass))
	assert.Equal(t, badPass.Error(), badUser.Error())
}

func TestCreateUserDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewUserService(repository.NewUserRepository(db))

	_, err := svc.CreateUser(dto.UserCreateDTO{Username: "bob", Password: "s3cret99"})
	require.NoError(t, err)

	_, err = svc.CreateUser(dto.UserCreateDTO{Username: "bob", Password: "other999"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestEnsureAdminAccountIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewUserService(repository.NewUserRepository(db))

	require.NoError(t, svc.EnsureAdminAccount())
	require.NoError(t, svc.EnsureAdminAccount())

	var count int64
	require.NoError(t, db.Model(&model.User{}).Where("username = ?", "admin").Count(&count).Error)
	assert.EqualValues(t, 1, count)

	admin, err := svc.Authenticate("admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)
}
