package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminRole роль, открывающая административные маршруты
const AdminRole = "admin"

var (
	ErrAuthDisabled = errors.New("admin authentication is not configured")
	ErrInvalidToken = errors.New("invalid token")
	ErrNotAdmin     = errors.New("token does not grant admin role")
)

// AdminClaims claims административного токена
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService выпускает и проверяет JWT для административных маршрутов
type AuthService struct {
	jwtSecret []byte
	now       func() time.Time
}

// NewAuthService создает новый экземпляр AuthService. Пустой секрет отключает админ-доступ.
func NewAuthService(jwtSecret string) *AuthService {
	return &AuthService{
		jwtSecret: []byte(jwtSecret),
		now:       time.Now,
	}
}

// Enabled сообщает, задан ли секрет для подписи токенов
func (a *AuthService) Enabled() bool {
	return len(a.jwtSecret) > 0
}

// IssueAdminToken создает токен администратора для subject со сроком жизни ttl
func (a *AuthService) IssueAdminToken(subject string, ttl time.Duration) (string, error) {
	if !a.Enabled() {
		return "", ErrAuthDisabled
	}

	now := a.now()
	claims := AdminClaims{
		Role: AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ValidateAdminToken проверяет подпись, срок и роль. Возвращает subject токена.
func (a *AuthService) ValidateAdminToken(tokenString string) (string, error) {
	if !a.Enabled() {
		return "", ErrAuthDisabled
	}

	claims := &AdminClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return a.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.Role != AdminRole {
		return "", ErrNotAdmin
	}

	return claims.Subject, nil
}
