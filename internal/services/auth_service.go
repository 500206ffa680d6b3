package services

import (
	"errors"

	"careercenter_backend/internal/auth"
	"careercenter_backend/internal/models"
	"careercenter_backend/internal/repositories"
	"careercenter_backend/internal/services/dto"
	"careercenter_backend/pkg/apperrors"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type AuthServiceImpl struct {
	db       *gorm.DB
	userRepo repositories.UserRepository
}

func NewAuthService(db *gorm.DB, userRepo repositories.UserRepository) AuthService {
	return &AuthServiceImpl{db: db, userRepo: userRepo}
}

// Register - регистрация нового пользователя
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:          req.Email,
		PasswordHash:   hash,
		FullName:       req.FullName,
		UserType:       models.UserType(req.UserType),
		CompanyName:    req.CompanyName,
		INN:            req.INN,
		CompanyWebsite: req.CompanyWebsite,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return s.issueToken(user)
}

// Login - аутентификация по email и паролю
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *AuthServiceImpl) issueToken(user *models.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(user.ID, user.Email, string(user.UserType))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        dto.UserToDTO(user),
	}, nil
}
