package serviceImp

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/burnashoff2016/Yandex-AI/entities"
	"github.com/burnashoff2016/Yandex-AI/pkg/auth/repository"
	"github.com/burnashoff2016/Yandex-AI/pkg/auth/service"
)

type AuthSvc struct {
	users    repository.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

func New(users repository.UserRepository, secret string, ttlHours int) *AuthSvc {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthSvc{users: users, secret: []byte(secret), tokenTTL: time.Duration(ttlHours) * time.Hour}
}

var _ service.AuthService = (*AuthSvc)(nil)

func (s *AuthSvc) Register(email, password string) (*entities.User, error) {
	if _, err := s.users.FindByEmail(email); err == nil {
		return nil, service.ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entities.User{Email: email, HashedPassword: string(hash), Role: entities.RoleUser}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthSvc) Authenticate(email, password string) (string, *entities.User, error) {
	u, err := s.users.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, service.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password)) != nil {
		return "", nil, service.ErrInvalidCredentials
	}
	token, err := s.issueToken(u)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *AuthSvc) issueToken(u *entities.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(u.ID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *AuthSvc) ParseToken(token string) (*entities.User, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, service.ErrInvalidCredentials
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, service.ErrInvalidCredentials
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, service.ErrInvalidCredentials
	}
	return s.users.FindByID(uint(id))
}
