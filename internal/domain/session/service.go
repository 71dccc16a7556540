package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-adoption-web/internal/platform/logger"
	"pet-adoption-web/internal/ports/adoption"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotAuthed    = errors.New("not authenticated")
)

type Service struct {
	repo Repository
	auth adoption.AuthClient
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, auth adoption.AuthClient, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo: repo,
		auth: auth,
		log:  log.With(map[string]any{"component": "session"}),
		now:  time.Now,
	}
}

// Login valida credenciales contra el backend remoto y crea la sesión.
// Los cuatro campos derivados quedan seteados de una (atómico para el caller).
func (s *Service) Login(ctx context.Context, username, password string) (Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Empty(), ErrInvalidInput
	}

	res, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return Empty(), err
	}

	user := res.User
	sess := Session{
		Token:       uuid.NewString(),
		RemoteToken: res.Access,
		User:        &user,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Save(ctx, sess); err != nil {
		// Storage caído no bloquea el login: la sesión vive en memoria del
		// navegador hasta el próximo reload. Degradamos, no crasheamos.
		s.log.Warn("session save failed, session will not survive restart", map[string]any{
			"err": err.Error(),
		})
	}

	return sess, nil
}

// Restore resuelve un token a su sesión persistida. Token ausente,
// desconocido o malformado => sesión anónima. Nunca devuelve error.
func (s *Service) Restore(ctx context.Context, token string) Session {
	token = strings.TrimSpace(token)
	if token == "" {
		return Empty()
	}

	sess, err := s.repo.Get(ctx, token)
	if err != nil {
		return Empty()
	}
	if sess.User == nil || strings.TrimSpace(sess.RemoteToken) == "" {
		// Registro malformado en storage: lo tratamos como inexistente.
		return Empty()
	}
	return sess
}

// Logout borra la sesión. Idempotente: sin sesión, o con storage caído,
// igual termina bien.
func (s *Service) Logout(ctx context.Context, token string) {
	token = strings.TrimSpace(token)
	if token == "" {
		return
	}
	if err := s.repo.Delete(ctx, token); err != nil {
		s.log.Warn("session delete failed", map[string]any{"err": err.Error()})
	}
}

// Register da de alta un usuario en el backend remoto. No inicia sesión.
func (s *Service) Register(ctx context.Context, in adoption.RegisterInput) error {
	return s.auth.Register(ctx, in)
}

// ChangePassword requiere sesión autenticada.
func (s *Service) ChangePassword(ctx context.Context, sess Session, oldPassword, newPassword string) error {
	if !sess.IsAuthenticated() {
		return ErrNotAuthed
	}
	if oldPassword == "" || newPassword == "" {
		return ErrInvalidInput
	}
	return s.auth.ChangePassword(ctx, sess.RemoteToken, oldPassword, newPassword)
}
