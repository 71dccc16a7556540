package adoptions

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"pet-adoption-web/internal/domain/session"
	"pet-adoption-web/internal/platform/webutil"
	"pet-adoption-web/internal/ports/adoption"

	"github.com/go-chi/chi/v5"
)

const maxUploadBytes = 10 << 20

// RegisterRoutes monta las rutas del usuario autenticado.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/adoptions", submitHandler(svc))
	r.Get("/adoptions/mine", listMineHandler(svc))
}

func RegisterAdminRoutes(r chi.Router, svc *Service) {
	r.Get("/adoptions", listAllHandler(svc))
	r.Get("/adoptions/{requestID}", getHandler(svc))
	r.Post("/adoptions/{requestID}/approve", decideHandler(svc, true))
	r.Post("/adoptions/{requestID}/reject", decideHandler(svc, false))
}

type requestResponse struct {
	ID           int    `json:"id"`
	PetID        int    `json:"pet"`
	PetName      string `json:"pet_name,omitempty"`
	PetSpecies   string `json:"pet_species,omitempty"`
	Status       string `json:"status"`
	StatusLabel  string `json:"status_label"`
	Notes        string `json:"notes,omitempty"`
	RequestDate  string `json:"request_date"`
	UserName     string `json:"user_name,omitempty"`
	UserEmail    string `json:"user_email,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	Address      string `json:"address,omitempty"`
	HasOtherPets bool   `json:"has_other_pets"`
	HomePhoto    string `json:"home_photo,omitempty"`
}

func submitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			webutil.WriteError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}

		petID, err := strconv.Atoi(strings.TrimSpace(r.FormValue("pet")))
		if err != nil || petID <= 0 {
			webutil.WriteFieldErrors(w, map[string]string{"pet": "required"})
			return
		}

		in := adoption.AdoptionInput{
			PetID:       petID,
			Notes:       strings.TrimSpace(r.FormValue("notes")),
			PhoneNumber: strings.TrimSpace(r.FormValue("phone_number")),
			Address:     strings.TrimSpace(r.FormValue("address")),
		}
		if raw := strings.TrimSpace(r.FormValue("has_other_pets")); raw != "" {
			hasPets, err := strconv.ParseBool(raw)
			if err != nil {
				webutil.WriteFieldErrors(w, map[string]string{"has_other_pets": "boolean"})
				return
			}
			in.HasOtherPets = &hasPets
		}

		photo, err := formFile(r, "home_photo")
		if err != nil {
			webutil.WriteError(w, http.StatusBadRequest, "invalid photo upload")
			return
		}
		in.HomePhoto = photo

		sess := session.FromContext(r.Context())
		req, err := svc.Submit(r.Context(), sess, in)
		switch {
		case err == nil:
			webutil.WriteJSON(w, http.StatusCreated, toRequestResponse(req))
		case errors.Is(err, ErrInvalidInput):
			webutil.WriteFieldErrors(w, map[string]string{"pet": "required"})
		case errors.Is(err, adoption.ErrNotFound):
			webutil.WriteError(w, http.StatusNotFound, "Mascota no encontrada.")
		default:
			webutil.WriteError(w, http.StatusBadGateway, "No se pudo enviar la solicitud. Intenta nuevamente.")
		}
	}
}

func listMineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromContext(r.Context())
		items, err := svc.ListMine(r.Context(), sess)
		if err != nil {
			webutil.WriteError(w, http.StatusBadGateway, "Ocurrió un error al cargar tus solicitudes. Intenta de nuevo más tarde.")
			return
		}
		webutil.WriteJSON(w, http.StatusOK, toRequestResponses(items))
	}
}

func listAllHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromContext(r.Context())
		items, err := svc.ListAll(r.Context(), sess)
		if err != nil {
			webutil.WriteError(w, http.StatusBadGateway, "Ocurrió un error al cargar las solicitudes. Intenta de nuevo más tarde.")
			return
		}
		webutil.WriteJSON(w, http.StatusOK, toRequestResponses(items))
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "requestID"))
		if err != nil || id <= 0 {
			webutil.WriteError(w, http.StatusBadRequest, "invalid request id")
			return
		}
		sess := session.FromContext(r.Context())
		req, err := svc.Get(r.Context(), sess, id)
		switch {
		case err == nil:
			webutil.WriteJSON(w, http.StatusOK, toRequestResponse(req))
		case errors.Is(err, adoption.ErrNotFound):
			webutil.WriteError(w, http.StatusNotFound, "Solicitud no encontrada.")
		default:
			webutil.WriteError(w, http.StatusBadGateway, "No se pudo cargar la solicitud.")
		}
	}
}

type decisionRequest struct {
	Confirm bool `json:"confirm"`
}

func decideHandler(svc *Service, approve bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "requestID"))
		if err != nil || id <= 0 {
			webutil.WriteError(w, http.StatusBadRequest, "invalid request id")
			return
		}

		var body decisionRequest
		if err := webutil.DecodeJSON(r, &body); err != nil || !body.Confirm {
			webutil.WriteError(w, http.StatusBadRequest, "confirmation required")
			return
		}

		sess := session.FromContext(r.Context())
		decided, err := svc.Decide(r.Context(), sess, id, approve)
		switch {
		case err == nil:
			webutil.WriteJSON(w, http.StatusOK, toRequestResponse(decided))
		case errors.Is(err, ErrNotPending):
			webutil.WriteError(w, http.StatusConflict, "La solicitud ya fue resuelta.")
		case errors.Is(err, adoption.ErrNotFound):
			webutil.WriteError(w, http.StatusNotFound, "Solicitud no encontrada.")
		default:
			webutil.WriteError(w, http.StatusBadGateway, "No se pudo registrar la decisión. Intenta nuevamente.")
		}
	}
}

func formFile(r *http.Request, name string) (*adoption.FileUpload, error) {
	file, header, err := r.FormFile(name)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return nil, err
	}

	return &adoption.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func toRequestResponses(items []adoption.AdoptionRequest) []requestResponse {
	out := make([]requestResponse, 0, len(items))
	for _, req := range items {
		out = append(out, toRequestResponse(req))
	}
	return out
}

func toRequestResponse(req adoption.AdoptionRequest) requestResponse {
	return requestResponse{
		ID:           req.ID,
		PetID:        req.PetID,
		PetName:      req.PetName,
		PetSpecies:   req.PetSpecies,
		Status:       string(req.Status),
		StatusLabel:  req.Status.Label(),
		Notes:        req.Notes,
		RequestDate:  req.RequestDate,
		UserName:     req.UserName,
		UserEmail:    req.UserEmail,
		PhoneNumber:  req.PhoneNumber,
		Address:      req.Address,
		HasOtherPets: req.HasOtherPets,
		HomePhoto:    req.HomePhoto,
	}
}
