package service

import (
	"errors"

	"github.com/meetapp/meetapp-backend/internal/apperr"
	"github.com/meetapp/meetapp-backend/internal/metric"
	"github.com/meetapp/meetapp-backend/internal/models"
	"github.com/meetapp/meetapp-backend/internal/repository"
	"github.com/meetapp/meetapp-backend/pkg/bcrypt"
	jwtPkg "github.com/meetapp/meetapp-backend/pkg/jwt"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = apperr.New(apperr.Conflict, "Email is already in use")
	ErrInvalidCredentials = apperr.New(apperr.Authorization, "Invalid email or password")
)

type AuthService struct {
	userRepo *repository.UserRepository
	notifier Notifier
	logger   *zap.Logger
}

func NewAuthService(userRepo *repository.UserRepository, notifier Notifier, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	exists, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := jwtPkg.GenerateToken(user.Email, user.ID)
	if err != nil {
		return nil, err
	}

	// Best effort; the account already exists.
	go func() {
		if err := s.notifier.SendWelcomeEmail(user.Email, user.Name); err != nil {
			metric.NotificationFailures.Inc()
			s.logger.Warn("welcome email failed",
				zap.Uint("user_id", user.ID),
				zap.Error(err))
		}
	}()

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := jwtPkg.GenerateToken(user.Email, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}
