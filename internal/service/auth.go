package service

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gcordner/chargeguard/internal/config"
	errs "github.com/gcordner/chargeguard/internal/errors"
	"github.com/gcordner/chargeguard/internal/model/auth"
)

// AuthService verifies the single operator credential and signs access
// tokens for the admin surface.
type AuthService interface {
	Login(email string, password string, at time.Time) (*auth.Jwt, error)
}

type authService struct {
	jwtIssuer *auth.JwtIssuer
	operator  config.OperatorCfg
}

func NewAuthService(jwtIssuer *auth.JwtIssuer, operator config.OperatorCfg) AuthService {
	return &authService{jwtIssuer: jwtIssuer, operator: operator}
}

func (s *authService) Login(email string, password string, at time.Time) (*auth.Jwt, error) {
	if !strings.EqualFold(email, s.operator.Email) {
		return nil, errs.NewBusinessErr("login", "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.operator.PasswordHash), []byte(password)); err != nil {
		return nil, errs.NewBusinessErr("login", "invalid credentials")
	}

	return s.jwtIssuer.Sign(s.operator.Email, at)
}
