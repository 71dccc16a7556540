package shelters

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

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/shelters", listHandler(svc))
	r.Get("/shelters/{shelterID}", getHandler(svc))
}

func RegisterAdminRoutes(r chi.Router, svc *Service) {
	r.Post("/shelters", createHandler(svc))
	r.Patch("/shelters/{shelterID}", updateHandler(svc))
	r.Delete("/shelters/{shelterID}", deleteHandler(svc))
}

type shelterResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Photo    string `json:"photo,omitempty"`
	PetCount int    `json:"pets_count"`
	IsActive bool   `json:"is_active"`
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			webutil.WriteError(w, http.StatusBadGateway, "Ocurrió un error al cargar los refugios. Intenta de nuevo más tarde.")
			return
		}
		out := make([]shelterResponse, 0, len(items))
		for _, sh := range items {
			out = append(out, toShelterResponse(sh))
		}
		webutil.WriteJSON(w, http.StatusOK, out)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "shelterID"))
		if err != nil || id <= 0 {
			webutil.WriteError(w, http.StatusBadRequest, "invalid shelter id")
			return
		}
		sh, err := svc.Get(r.Context(), id)
		switch {
		case err == nil:
			webutil.WriteJSON(w, http.StatusOK, toShelterResponse(sh))
		case errors.Is(err, adoption.ErrNotFound):
			webutil.WriteError(w, http.StatusNotFound, "Refugio no encontrado.")
		default:
			webutil.WriteError(w, http.StatusBadGateway, "No se pudo cargar la información del refugio.")
		}
	}
}

type shelterForm struct {
	Name    string `validate:"required"`
	Address string `validate:"required"`
	Phone   string `validate:"required"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			webutil.WriteError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}

		form := shelterForm{
			Name:    strings.TrimSpace(r.FormValue("name")),
			Address: strings.TrimSpace(r.FormValue("address")),
			Phone:   strings.TrimSpace(r.FormValue("phone")),
		}
		if fields := webutil.Validate(form); len(fields) > 0 {
			webutil.WriteFieldErrors(w, fields)
			return
		}

		email := strings.TrimSpace(r.FormValue("email"))
		active := true
		in := adoption.ShelterInput{
			Name:     &form.Name,
			Address:  &form.Address,
			Phone:    &form.Phone,
			Email:    &email,
			IsActive: &active,
		}

		photo, err := formFile(r, "photo")
		if err != nil {
			webutil.WriteError(w, http.StatusBadRequest, "invalid photo upload")
			return
		}
		in.Photo = photo

		sess := session.FromContext(r.Context())
		created, err := svc.Create(r.Context(), sess, in)
		if err != nil {
			webutil.WriteError(w, http.StatusBadGateway, "No se pudo guardar el refugio. Intenta nuevamente.")
			return
		}
		webutil.WriteJSON(w, http.StatusCreated, toShelterResponse(created))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "shelterID"))
		if err != nil || id <= 0 {
			webutil.WriteError(w, http.StatusBadRequest, "invalid shelter id")
			return
		}
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			webutil.WriteError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}

		var in adoption.ShelterInput
		if v, ok := formPresent(r, "name"); ok {
			in.Name = &v
		}
		if v, ok := formPresent(r, "address"); ok {
			in.Address = &v
		}
		if v, ok := formPresent(r, "phone"); ok {
			in.Phone = &v
		}
		if v, ok := formPresent(r, "email"); ok {
			in.Email = &v
		}
		if v, ok := formPresent(r, "is_active"); ok {
			active, err := strconv.ParseBool(v)
			if err != nil {
				webutil.WriteFieldErrors(w, map[string]string{"is_active": "boolean"})
				return
			}
			in.IsActive = &active
		}

		photo, err := formFile(r, "photo")
		if err != nil {
			webutil.WriteError(w, http.StatusBadRequest, "invalid photo upload")
			return
		}
		in.Photo = photo

		sess := session.FromContext(r.Context())
		updated, err := svc.Update(r.Context(), sess, id, in)
		switch {
		case err == nil:
			webutil.WriteJSON(w, http.StatusOK, toShelterResponse(updated))
		case errors.Is(err, adoption.ErrNotFound):
			webutil.WriteError(w, http.StatusNotFound, "Refugio no encontrado.")
		default:
			webutil.WriteError(w, http.StatusBadGateway, "No se pudo guardar el refugio. Intenta nuevamente.")
		}
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "shelterID"))
		if err != nil || id <= 0 {
			webutil.WriteError(w, http.StatusBadRequest, "invalid shelter id")
			return
		}
		if r.URL.Query().Get("confirm") != "true" {
			webutil.WriteError(w, http.StatusBadRequest, "confirmation required")
			return
		}

		sess := session.FromContext(r.Context())
		err = svc.Delete(r.Context(), sess, id)
		switch {
		case err == nil:
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, adoption.ErrNotFound):
			webutil.WriteError(w, http.StatusNotFound, "Refugio no encontrado.")
		default:
			webutil.WriteError(w, http.StatusBadGateway, "No se pudo eliminar el refugio. Intenta nuevamente.")
		}
	}
}

func formPresent(r *http.Request, name string) (string, bool) {
	if r.MultipartForm == nil {
		return "", false
	}
	vs, ok := r.MultipartForm.Value[name]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return strings.TrimSpace(vs[0]), true
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

func toShelterResponse(sh adoption.Shelter) shelterResponse {
	return shelterResponse{
		ID:       sh.ID,
		Name:     sh.Name,
		Address:  sh.Address,
		Phone:    sh.Phone,
		Email:    sh.Email,
		Photo:    sh.Photo,
		PetCount: sh.PetCount,
		IsActive: sh.IsActive,
	}
}
