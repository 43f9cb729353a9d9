package service

import (
	"errors"

	"github.com/lshigami/Margay/internal/apperr"
	"github.com/lshigami/Margay/internal/dto"
	"github.com/lshigami/Margay/internal/model"
	"github.com/lshigami/Margay/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	CreateUser(req dto.UserCreateDTO) (*dto.UserResponseDTO, error)
	Authenticate(username, password string) (*model.User, error)
	EnsureAdminAccount() error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(req dto.UserCreateDTO) (*dto.UserResponseDTO, error) {
	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return nil, apperr.Conflict("user %q already exists", req.Username)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = model.RoleUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("Failed to create user")
		return nil, err
	}

	return &dto.UserResponseDTO{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		Coins:     user.Coins,
		Badges:    user.Badges,
		CreatedAt: user.CreatedAt,
	}, nil
}

// Authenticate verifies credentials and returns the account. Wrong
// username and wrong password produce the same error so callers cannot
// probe for accounts.
func (s *userService) Authenticate(username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("invalid credentials")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}
	return user, nil
}

// EnsureAdminAccount seeds the default admin on first boot.
func (s *userService) EnsureAdminAccount() error {
	_, err := s.userRepo.FindByUsername("admin")
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := model.User{Username: "admin", PasswordHash: string(hash), Role: model.RoleAdmin}
	if err := s.userRepo.Create(&admin); err != nil {
		return err
	}
	log.Info().Msg("Seeded default admin account")
	return nil
}
