package dto

import (
	"time"

	"careercenter_backend/internal/models"
)

// RegisterRequest - запрос регистрации
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required"`
	UserType string `json:"user_type" validate:"required,is-user-type"`

	// Поля для компании
	CompanyName    string `json:"company_name,omitempty" validate:"required_if=UserType company"`
	INN            string `json:"inn,omitempty" validate:"required_if=UserType company"`
	CompanyWebsite string `json:"company_website,omitempty"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse - ответ с токеном доступа
type AuthResponse struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	User        UserDTO `json:"user"`
}

// UserDTO - публичная информация о пользователе
type UserDTO struct {
	ID             string          `json:"id"`
	Email          string          `json:"email"`
	FullName       string          `json:"full_name"`
	UserType       models.UserType `json:"user_type"`
	CompanyName    string          `json:"company_name,omitempty"`
	INN            string          `json:"inn,omitempty"`
	CompanyWebsite string          `json:"company_website,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

func UserToDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:             user.ID,
		Email:          user.Email,
		FullName:       user.FullName,
		UserType:       user.UserType,
		CompanyName:    user.CompanyName,
		INN:            user.INN,
		CompanyWebsite: user.CompanyWebsite,
		CreatedAt:      user.CreatedAt,
	}
}
