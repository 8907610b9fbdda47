// Package auth проверяет учетные данные по статической таблице из конфигурации.
// Сессии здесь не хранятся: результат проверки - только пользователь и роль.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/shenikar/drought_response_system/internal/config"
	"github.com/shenikar/drought_response_system/internal/models"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type StaticChecker struct {
	users map[string]config.Credential
}

func NewStaticChecker(creds []config.Credential) *StaticChecker {
	users := make(map[string]config.Credential, len(creds))
	for _, c := range creds {
		users[c.Username] = c
	}
	return &StaticChecker{users: users}
}

// Authenticate сравнивает пароль за постоянное время
func (s *StaticChecker) Authenticate(_ context.Context, username, password string) (models.User, error) {
	cred, ok := s.users[username]
	if !ok || subtle.ConstantTimeCompare([]byte(cred.Password), []byte(password)) != 1 {
		return models.User{}, ErrInvalidCredentials
	}
	return models.User{Username: cred.Username, Role: cred.Role}, nil
}
