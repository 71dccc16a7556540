package adoption

import (
	"context"
	"errors"
)

var (
	// ErrBadCredentials distingue "usuario/clave inválidos" de una falla
	// genérica del upstream; la UI muestra mensajes distintos para cada caso.
	ErrBadCredentials = errors.New("invalid credentials")

	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")

	// ErrUnavailable agrupa fallas de red/5xx del backend remoto. Para la
	// UI es siempre "falló, reintentá": acá no hay retry automático.
	ErrUnavailable = errors.New("adoption service unavailable")
)

// Puertos hacia el backend remoto de adopciones. token es el access token
// remoto del usuario; string vacío = llamada anónima (endpoints públicos).

type AuthClient interface {
	Login(ctx context.Context, username, password string) (LoginResult, error)
	Register(ctx context.Context, in RegisterInput) error
	ChangePassword(ctx context.Context, token, oldPassword, newPassword string) error
}

type PetsClient interface {
	ListPets(ctx context.Context, f PetFilter) ([]Pet, error)
	GetPet(ctx context.Context, id int) (Pet, error)
	CreatePet(ctx context.Context, token string, in PetInput) (Pet, error)
	UpdatePet(ctx context.Context, token string, id int, in PetInput) (Pet, error)
	DeletePet(ctx context.Context, token string, id int) error
}

type SheltersClient interface {
	ListShelters(ctx context.Context) ([]Shelter, error)
	GetShelter(ctx context.Context, id int) (Shelter, error)
	CreateShelter(ctx context.Context, token string, in ShelterInput) (Shelter, error)
	UpdateShelter(ctx context.Context, token string, id int, in ShelterInput) (Shelter, error)
	DeleteShelter(ctx context.Context, token string, id int) error
}

type AdoptionsClient interface {
	CreateRequest(ctx context.Context, token string, in AdoptionInput) (AdoptionRequest, error)
	ListMine(ctx context.Context, token string) ([]AdoptionRequest, error)
	ListAll(ctx context.Context, token string) ([]AdoptionRequest, error)
	GetRequest(ctx context.Context, token string, id int) (AdoptionRequest, error)
	Approve(ctx context.Context, token string, id int) (AdoptionRequest, error)
	Reject(ctx context.Context, token string, id int) (AdoptionRequest, error)
	MyRequestForPet(ctx context.Context, token string, petID int) (MyRequest, error)
}

type UsersClient interface {
	ListUsers(ctx context.Context, token string) ([]Profile, error)
	UpdateUserRole(ctx context.Context, token string, id int, isStaff bool) (Profile, error)
}

// Client agrupa todos los puertos (lo implementa el adapter remoto).
type Client interface {
	AuthClient
	PetsClient
	SheltersClient
	AdoptionsClient
	UsersClient
}
