package user

import (
	"fmt"
	"time"

	userRepo "stellartours/database/repository/user"
	"stellartours/models"
	"stellartours/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegistrationInput carries the fields accepted at registration.
type RegistrationInput struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// UserService handles registration and credential verification. Sessions
// themselves are established by the handler layer.
type UserService interface {
	RegisterUser(in RegistrationInput) (*models.User, error)
	AuthenticateUser(username, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
}

type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// RegisterUser hashes the password and creates the account. Accounts are
// auto-verified; there is no email confirmation flow.
func (s *DefaultUserService) RegisterUser(in RegistrationInput) (*models.User, error) {
	existing, err := s.Repo.GetByUsername(in.Username)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	u := &models.User{
		Username:   in.Username,
		Password:   string(hashedPassword),
		Email:      in.Email,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Role:       "user",
		IsVerified: true,
	}
	if err := s.Repo.Create(u); err != nil {
		utils.GetLogger().Error("RegisterUser: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	return u, nil
}

// AuthenticateUser verifies the password hash and stamps last-login.
func (s *DefaultUserService) AuthenticateUser(username, password string) (*models.User, error) {
	u, err := s.Repo.GetByUsername(username)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.Repo.UpdateLastLogin(u.ID, now); err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to update last login", zap.Error(err))
	}
	u.LastLogin = &now
	return u, nil
}

func (s *DefaultUserService) GetUserByID(id uint) (*models.User, error) {
	return s.Repo.GetByID(id)
}
