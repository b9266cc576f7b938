package usecase

import (
	"errors"

	"job-khojo/internal/config"
	"job-khojo/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminAuthDisabled  = errors.New("admin auth not configured")
)

type AdminAuthUsecase interface {
	Login(password string) (string, error)
}

type AdminAuth struct {
	passwordHash string
	jwt          jwt.Service
}

func NewAdminAuthUsecase(cfg config.AdminConfig, jwtSvc jwt.Service) *AdminAuth {
	return &AdminAuth{passwordHash: cfg.PasswordHash, jwt: jwtSvc}
}

// Login checks the shared admin password against the configured bcrypt hash
// and issues a short-lived bearer token.
func (u *AdminAuth) Login(password string) (string, error) {
	if u == nil || u.passwordHash == "" || u.jwt == nil {
		return "", ErrAdminAuthDisabled
	}
	if password == "" {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return u.jwt.GenerateAdminToken()
}
