package users

import (
	"context"
	"errors"

	"pet-adoption-web/internal/domain/session"
	"pet-adoption-web/internal/platform/logger"
	"pet-adoption-web/internal/ports/adoption"
)

var (
	ErrInvalidInput = errors.New("users: invalid input")
	// ErrSelfChange: un admin no puede tocar su propio rol; se valida
	// acá antes de cualquier llamada al backend.
	ErrSelfChange = errors.New("users: cannot change own role")
)

type Service struct {
	users adoption.UsersClient
	log   logger.Logger
}

func NewService(users adoption.UsersClient, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{users: users, log: log}
}

func (s *Service) List(ctx context.Context, sess session.Session) ([]adoption.Profile, error) {
	return s.users.ListUsers(ctx, sess.RemoteToken)
}

// SetRole otorga o revoca el rol de admin de otro usuario.
func (s *Service) SetRole(ctx context.Context, sess session.Session, userID int, isStaff bool) (adoption.Profile, error) {
	if userID <= 0 {
		return adoption.Profile{}, ErrInvalidInput
	}
	if sess.User != nil && sess.User.ID == userID {
		return adoption.Profile{}, ErrSelfChange
	}

	updated, err := s.users.UpdateUserRole(ctx, sess.RemoteToken, userID, isStaff)
	if err != nil {
		s.log.Error("role update failed", map[string]any{"user_id": userID, "is_staff": isStaff, "err": err.Error()})
		return adoption.Profile{}, err
	}
	s.log.Info("role updated", map[string]any{"user_id": updated.ID, "is_staff": updated.IsStaff})
	return updated, nil
}
