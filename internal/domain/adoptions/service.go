package adoptions

import (
	"context"
	"errors"
	"fmt"

	"pet-adoption-web/internal/domain/session"
	"pet-adoption-web/internal/platform/logger"
	"pet-adoption-web/internal/ports/adoption"
)

var (
	ErrInvalidInput = errors.New("adoptions: invalid input")
	// ErrNotPending: solo las solicitudes pendientes admiten decisión.
	ErrNotPending = errors.New("adoptions: request is not pending")
)

type Service struct {
	adoptions adoption.AdoptionsClient
	log       logger.Logger
}

func NewService(adoptions adoption.AdoptionsClient, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{adoptions: adoptions, log: log}
}

// Submit crea la solicitud de adopción del usuario autenticado.
func (s *Service) Submit(ctx context.Context, sess session.Session, in adoption.AdoptionInput) (adoption.AdoptionRequest, error) {
	if in.PetID <= 0 {
		return adoption.AdoptionRequest{}, ErrInvalidInput
	}
	req, err := s.adoptions.CreateRequest(ctx, sess.RemoteToken, in)
	if err != nil {
		s.log.Error("adoption submit failed", map[string]any{"pet_id": in.PetID, "err": err.Error()})
		return adoption.AdoptionRequest{}, err
	}
	s.log.Info("adoption request created", map[string]any{"request_id": req.ID, "pet_id": req.PetID})
	return req, nil
}

func (s *Service) ListMine(ctx context.Context, sess session.Session) ([]adoption.AdoptionRequest, error) {
	return s.adoptions.ListMine(ctx, sess.RemoteToken)
}

func (s *Service) ListAll(ctx context.Context, sess session.Session) ([]adoption.AdoptionRequest, error) {
	return s.adoptions.ListAll(ctx, sess.RemoteToken)
}

func (s *Service) Get(ctx context.Context, sess session.Session, id int) (adoption.AdoptionRequest, error) {
	if id <= 0 {
		return adoption.AdoptionRequest{}, ErrInvalidInput
	}
	return s.adoptions.GetRequest(ctx, sess.RemoteToken, id)
}

// Decide aprueba o rechaza una solicitud. Se relee el estado antes de
// decidir: una solicitud que otro admin ya resolvió no se vuelve a tocar.
func (s *Service) Decide(ctx context.Context, sess session.Session, id int, approve bool) (adoption.AdoptionRequest, error) {
	if id <= 0 {
		return adoption.AdoptionRequest{}, ErrInvalidInput
	}

	current, err := s.adoptions.GetRequest(ctx, sess.RemoteToken, id)
	if err != nil {
		return adoption.AdoptionRequest{}, err
	}
	if current.Status != adoption.RequestStatusPending {
		return adoption.AdoptionRequest{}, fmt.Errorf("%w: status is %s", ErrNotPending, current.Status)
	}

	var decided adoption.AdoptionRequest
	if approve {
		decided, err = s.adoptions.Approve(ctx, sess.RemoteToken, id)
	} else {
		decided, err = s.adoptions.Reject(ctx, sess.RemoteToken, id)
	}
	if err != nil {
		s.log.Error("adoption decision failed", map[string]any{"request_id": id, "approve": approve, "err": err.Error()})
		return adoption.AdoptionRequest{}, err
	}
	s.log.Info("adoption request decided", map[string]any{"request_id": decided.ID, "status": decided.Status})
	return decided, nil
}
