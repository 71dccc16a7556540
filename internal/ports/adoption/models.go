package adoption

// PetStatus define los estados de una mascota.
// AVAILABLE -> ADOPTED es one-way y lo decide el backend remoto.
type PetStatus string

const (
	PetStatusAvailable PetStatus = "AVAILABLE"
	PetStatusAdopted   PetStatus = "ADOPTED"
)

// Label devuelve la etiqueta que muestra la UI.
func (s PetStatus) Label() string {
	switch s {
	case PetStatusAvailable:
		return "Disponible"
	case PetStatusAdopted:
		return "Adoptado"
	default:
		return string(s)
	}
}

// RequestStatus define los estados de una solicitud de adopción.
// Nace PENDING; solo PENDING puede pasar a APPROVED o REJECTED (one-way).
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "PENDING"
	RequestStatusApproved  RequestStatus = "APPROVED"
	RequestStatusRejected  RequestStatus = "REJECTED"
	RequestStatusCancelled RequestStatus = "CANCELLED"
)

func (s RequestStatus) Label() string {
	switch s {
	case RequestStatusPending:
		return "Pendiente"
	case RequestStatusApproved:
		return "Aprobada"
	case RequestStatusRejected:
		return "Rechazada"
	case RequestStatusCancelled:
		return "Cancelada"
	default:
		return string(s)
	}
}

// Profile es el usuario tal como lo entrega el backend remoto.
type Profile struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsStaff  bool   `json:"is_staff"`
}

// Pet es la copia read-through de una mascota. El backend remoto es la
// fuente autoritativa; acá no se persiste nada.
type Pet struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Species     string    `json:"species"`
	Breed       string    `json:"breed"`
	Age         int       `json:"age"`
	Gender      string    `json:"gender"`
	Status      PetStatus `json:"status"`
	ShelterID   int       `json:"shelter"`
	ShelterName string    `json:"shelter_name,omitempty"`
	Photo       string    `json:"photo,omitempty"`
	Description string    `json:"description,omitempty"`
}

type Shelter struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
	Photo    string `json:"photo"`
	PetCount int    `json:"pets_count"`
	IsActive bool   `json:"is_active"`
}

type AdoptionRequest struct {
	ID           int           `json:"id"`
	UserID       int           `json:"user"`
	PetID        int           `json:"pet"`
	Status       RequestStatus `json:"status"`
	Notes        string        `json:"notes,omitempty"`
	PhoneNumber  string        `json:"phone_number,omitempty"`
	Address      string        `json:"address,omitempty"`
	HasOtherPets bool          `json:"has_other_pets,omitempty"`
	HomePhoto    string        `json:"home_photo,omitempty"`
	RequestDate  string        `json:"request_date"`
	UserName     string        `json:"user_name"`
	UserEmail    string        `json:"user_email"`
	PetName      string        `json:"pet_name"`
	PetSpecies   string        `json:"pet_species"`
}

// MyRequest es la respuesta del lookup "mi solicitud para esta mascota".
// El backend resuelve el usuario desde el token; el cliente no manda user id.
type MyRequest struct {
	Exists   bool `json:"exists"`
	Adoption *struct {
		ID          int           `json:"id"`
		Status      RequestStatus `json:"status"`
		RequestDate string        `json:"request_date"`
		Notes       string        `json:"notes"`
	} `json:"adoption,omitempty"`
}

// LoginResult es lo que devuelve el login remoto.
type LoginResult struct {
	Access  string  `json:"access"`
	Refresh string  `json:"refresh"`
	User    Profile `json:"user"`
}

// PetFilter son los criterios del listado de mascotas.
// Campos vacíos se omiten del query string.
type PetFilter struct {
	Search    string
	Status    PetStatus
	ShelterID int
}

// FileUpload es un archivo subido por el navegador que se reenvía
// al backend remoto dentro del multipart.
type FileUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// PetInput usa punteros para PATCH real: nil = no tocar ese campo.
// Para create, el handler setea todos los campos del form.
type PetInput struct {
	Name        *string
	Species     *string
	Breed       *string
	Age         *int
	Gender      *string
	Status      *PetStatus
	ShelterID   *int
	Description *string
	Photo       *FileUpload
}

type ShelterInput struct {
	Name     *string
	Address  *string
	Phone    *string
	Email    *string
	IsActive *bool
	Photo    *FileUpload
}

// AdoptionInput arma la solicitud rica (multipart). Los opcionales
// vacíos se omiten del payload, nunca viajan como string vacío.
type AdoptionInput struct {
	PetID        int
	Notes        string
	PhoneNumber  string
	Address      string
	HasOtherPets *bool
	HomePhoto    *FileUpload
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
