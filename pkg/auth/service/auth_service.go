package service

import (
	"errors"

	"github.com/burnashoff2016/Yandex-AI/entities"
)

var (
	ErrEmailTaken         = errors.New("Email already registered")
	ErrInvalidCredentials = errors.New("Incorrect email or password")
)

type AuthService interface {
	Register(email, password string) (*entities.User, error)
	// Authenticate verifies credentials and returns a signed access
	// token alongside the user.
	Authenticate(email, password string) (string, *entities.User, error)
	// ParseToken validates a token and loads its user.
	ParseToken(token string) (*entities.User, error)
}
