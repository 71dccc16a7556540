package pets

import (
	"context"
	"errors"
	"time"

	"pet-adoption-web/internal/domain/session"
	"pet-adoption-web/internal/platform/logger"
	"pet-adoption-web/internal/ports/adoption"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrPetAdopted corta el delete antes de llegar al backend. Es cortesía
	// de UX; la autoridad real es el servidor remoto.
	ErrPetAdopted = errors.New("pet already adopted")
)

type Service struct {
	pets      adoption.PetsClient
	adoptions adoption.AdoptionsClient
	searcher  *Searcher
	log       logger.Logger
}

func NewService(pets adoption.PetsClient, adoptions adoption.AdoptionsClient, log logger.Logger, debounce time.Duration) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		pets:      pets,
		adoptions: adoptions,
		searcher:  NewSearcher(pets.ListPets, debounce),
		log:       log.With(map[string]any{"component": "pets"}),
	}
}

// List pasa por el Searcher: texto libre debounced, resto directo.
// Un resultado vacío es estado terminal válido, no error.
func (s *Service) List(ctx context.Context, callerKey string, f adoption.PetFilter) ([]adoption.Pet, error) {
	return s.searcher.Search(ctx, callerKey, f)
}

// AdoptionMode es la decisión de qué acción mostrar en el detalle.
type AdoptionMode string

const (
	ModeLoginRequired    AdoptionMode = "LOGIN_REQUIRED"
	ModeCanRequest       AdoptionMode = "CAN_REQUEST"
	ModeNotAvailable     AdoptionMode = "NOT_AVAILABLE"
	ModeAlreadyRequested AdoptionMode = "ALREADY_REQUESTED"
)

type RequestSummary struct {
	ID          int
	Status      adoption.RequestStatus
	RequestDate string
	Notes       string
}

type DetailView struct {
	Pet     adoption.Pet
	Mode    AdoptionMode
	Request *RequestSummary
}

// Detail arma el view model del detalle. Regla de desempate: una solicitud
// existente (en cualquier estado) siempre gana sobre la disponibilidad de
// la mascota; nunca se ofrece enviar una segunda solicitud.
func (s *Service) Detail(ctx context.Context, sess session.Session, petID int) (DetailView, error) {
	if petID <= 0 {
		return DetailView{}, ErrInvalidInput
	}

	pet, err := s.pets.GetPet(ctx, petID)
	if err != nil {
		return DetailView{}, err
	}

	if !sess.IsAuthenticated() {
		return DetailView{Pet: pet, Mode: ModeLoginRequired}, nil
	}

	// El lookup va keyed por token; el cliente no manda user id.
	mine, err := s.adoptions.MyRequestForPet(ctx, sess.RemoteToken, petID)
	if err != nil {
		// Sin saber si ya existe solicitud no podemos ofrecer el submit:
		// fallamos explícito en vez de arriesgar una solicitud duplicada.
		return DetailView{}, err
	}

	if mine.Exists && mine.Adoption != nil {
		return DetailView{
			Pet:  pet,
			Mode: ModeAlreadyRequested,
			Request: &RequestSummary{
				ID:          mine.Adoption.ID,
				Status:      mine.Adoption.Status,
				RequestDate: mine.Adoption.RequestDate,
				Notes:       mine.Adoption.Notes,
			},
		}, nil
	}

	if pet.Status == adoption.PetStatusAvailable {
		return DetailView{Pet: pet, Mode: ModeCanRequest}, nil
	}
	return DetailView{Pet: pet, Mode: ModeNotAvailable}, nil
}

// --- operaciones admin ---

func (s *Service) Create(ctx context.Context, sess session.Session, in adoption.PetInput) (adoption.Pet, error) {
	return s.pets.CreatePet(ctx, sess.RemoteToken, in)
}

func (s *Service) Update(ctx context.Context, sess session.Session, petID int, in adoption.PetInput) (adoption.Pet, error) {
	if petID <= 0 {
		return adoption.Pet{}, ErrInvalidInput
	}
	return s.pets.UpdatePet(ctx, sess.RemoteToken, petID, in)
}

// Delete rechaza mascotas adoptadas antes de tocar el backend.
func (s *Service) Delete(ctx context.Context, sess session.Session, petID int) error {
	if petID <= 0 {
		return ErrInvalidInput
	}

	cur, err := s.pets.GetPet(ctx, petID)
	if err != nil {
		return err
	}
	if cur.Status == adoption.PetStatusAdopted {
		return ErrPetAdopted
	}

	return s.pets.DeletePet(ctx, sess.RemoteToken, petID)
}
