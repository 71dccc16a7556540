package shelters

import (
	"context"
	"errors"

	"pet-adoption-web/internal/domain/session"
	"pet-adoption-web/internal/platform/logger"
	"pet-adoption-web/internal/ports/adoption"
)

var ErrInvalidInput = errors.New("shelters: invalid input")

type Service struct {
	shelters adoption.SheltersClient
	log      logger.Logger
}

func NewService(shelters adoption.SheltersClient, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{shelters: shelters, log: log}
}

func (s *Service) List(ctx context.Context) ([]adoption.Shelter, error) {
	items, err := s.shelters.ListShelters(ctx)
	if err != nil {
		s.log.Error("shelters list failed", map[string]any{"err": err.Error()})
		return nil, err
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id int) (adoption.Shelter, error) {
	if id <= 0 {
		return adoption.Shelter{}, ErrInvalidInput
	}
	return s.shelters.GetShelter(ctx, id)
}

func (s *Service) Create(ctx context.Context, sess session.Session, in adoption.ShelterInput) (adoption.Shelter, error) {
	return s.shelters.CreateShelter(ctx, sess.RemoteToken, in)
}

func (s *Service) Update(ctx context.Context, sess session.Session, id int, in adoption.ShelterInput) (adoption.Shelter, error) {
	if id <= 0 {
		return adoption.Shelter{}, ErrInvalidInput
	}
	return s.shelters.UpdateShelter(ctx, sess.RemoteToken, id, in)
}

func (s *Service) Delete(ctx context.Context, sess session.Session, id int) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	return s.shelters.DeleteShelter(ctx, sess.RemoteToken, id)
}
