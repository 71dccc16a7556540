package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-adoption-web/internal/domain/session"
)

var (
	ErrNotFound = errors.New("not found")
)

type sessionsRepo struct {
	mu      sync.RWMutex
	byToken map[string]session.Session
}

// NewSessionsRepo es el storage por defecto cuando no hay DB_DSN:
// las sesiones viven mientras viva el proceso.
func NewSessionsRepo() session.Repository {
	return &sessionsRepo{
		byToken: make(map[string]session.Session),
	}
}

func (r *sessionsRepo) Save(ctx context.Context, s session.Session) error {
	if strings.TrimSpace(s.Token) == "" {
		return errors.New("session token required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byToken[s.Token] = s
	return nil
}

func (r *sessionsRepo) Get(ctx context.Context, token string) (session.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byToken[token]
	if !ok {
		return session.Session{}, ErrNotFound
	}
	return s, nil
}

func (r *sessionsRepo) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byToken, token)
	return nil
}
