package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"careercenter_backend/internal/config"
	"careercenter_backend/pkg/apperrors"
)

// Claims - полезная нагрузка access-токена.
// sub/email/user_type совместимы с фронтендом карьерного центра.
type Claims struct {
	Email    string `json:"email"`
	UserType string `json:"user_type"`
	jwt.RegisteredClaims
}

// UserID возвращает subject claim
func (c *Claims) UserID() string {
	return c.Subject
}

// GenerateToken выпускает HS256 токен со сроком жизни из конфига (7 дней)
func GenerateToken(userID, email, userType string) (string, error) {
	cfg := config.GetConfig()

	claims := &Claims{
		Email:    email,
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(cfg.JWT.TTL) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ParseToken проверяет подпись и срок жизни токена.
// Просроченный и невалидный токен различаются по причине,
// но оба отдаются наружу как 401.
func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(config.GetConfig().JWT.Secret), nil
	})

	if err != nil {
		if apperrors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	if !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
