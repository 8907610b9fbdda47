package dashboard

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shenikar/drought_response_system/internal/models"
)

const sessionCookie = "drought_session"

// sessionStore - токены входа отдельных клиентов
type sessionStore struct {
	mu     sync.RWMutex
	tokens map[string]models.Session
}

func newSessionStore() *sessionStore {
	return &sessionStore{tokens: make(map[string]models.Session)}
}

func (s *sessionStore) issue(session models.Session) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = session
	s.mu.Unlock()
	return token
}

func (s *sessionStore) lookup(token string) (models.Session, bool) {
	if token == "" {
		return models.Session{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.tokens[token]
	return session, ok
}

// revoke удаляет токен и сообщает, остались ли другие входы
func (s *sessionStore) revoke(token string) (remaining int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return len(s.tokens)
}

// requestToken берет токен из заголовка Authorization или из cookie
func requestToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	token, err := c.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	return token
}
