package pets

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

const maxUploadBytes = 10 << 20 // 10MB por form con foto

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/pets", listHandler(svc))
	r.Get("/pets/{petID}", detailHandler(svc))
}

// RegisterAdminRoutes se monta bajo el gate de admin en el router.
func RegisterAdminRoutes(r chi.Router, svc *Service) {
	r.Post("/pets", createHandler(svc))
	r.Patch("/pets/{petID}", updateHandler(svc))
	r.Delete("/pets/{petID}", deleteHandler(svc))
}

type petResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Species     string `json:"species"`
	Breed       string `json:"breed,omitempty"`
	Age         int    `json:"age"`
	Gender      string `json:"gender,omitempty"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	ShelterID   int    `json:"shelter"`
	ShelterName string `json:"shelter_name,omitempty"`
	Photo       string `json:"photo,omitempty"`
	Description string `json:"description,omitempty"`
}

type requestSummaryResponse struct {
	ID          int    `json:"id"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	RequestDate string `json:"request_date,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type detailResponse struct {
	Pet     petResponse             `json:"pet"`
	Mode    string                  `json:"adoption_mode"`
	Request *requestSummaryResponse `json:"my_request,omitempty"`
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, ok := parseFilter(w, r)
		if !ok {
			return
		}

		items, err := svc.List(r.Context(), callerKey(r), f)
		switch {
		case err == nil:
			out := make([]petResponse, 0, len(items))
			for _, p := range items {
				out = append(out, toPetResponse(p))
			}
			// Lista vacía es 200 con []: "sin resultados" nunca se
			// confunde con "falló la carga".
			webutil.WriteJSON(w, http.StatusOK, out)
		case errors.Is(err, ErrSuperseded):
			// Hay una consulta más nueva del mismo caller en vuelo;
			// este snapshot se descarta sin tocar el estado de la UI.
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, ErrInvalidInput):
			webutil.WriteError(w, http.StatusBadRequest, "invalid filter")
		default:
			webutil.WriteError(w, http.StatusBadGateway, "Ocurrió un error al cargar las mascotas. Intenta de nuevo más tarde.")
		}
	}
}

func detailHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "petID"))
		if err != nil || id <= 0 {
			webutil.WriteError(w, http.StatusBadRequest, "invalid pet id")
			return
		}

		sess := session.FromContext(r.Context())
		view, err := svc.Detail(r.Context(), sess, id)
		switch {
		case err == nil:
			resp := detailResponse{
				Pet:  toPetResponse(view.Pet),
				Mode: string(view.Mode),
			}
			if view.Request != nil {
				resp.Request = &requestSummaryResponse{
					ID:          view.Request.ID,
					Status:      string(view.Request.Status),
					StatusLabel: view.Request.Status.Label(),
					RequestDate: view.Request.RequestDate,
					Notes:       view.Request.Notes,
				}
			}
			webutil.WriteJSON(w, http.StatusOK, resp)
		case errors.Is(err, adoption.ErrNotFound):
			webutil.WriteError(w, http.StatusNotFound, "Mascota no encontrada.")
		default:
			webutil.WriteError(w, http.StatusBadGateway, "No se pudo cargar la información de la mascota.")
		}
	}
}

// petForm valida el alta: la coerción numérica es falla de validación
// del cliente, no viaja al backend.
type petForm struct {
	Name      string `validate:"required"`
	Species   string `validate:"required"`
	Age       int    `validate:"min=0"`
	Gender    string `validate:"required"`
	ShelterID int    `validate:"required,min=1"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			webutil.WriteError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}

		fields := map[string]string{}
		age, ok := formInt(r, "age")
		if !ok {
			fields["age"] = "numeric"
		}
		shelterID, ok := formInt(r, "shelter")
		if !ok {
			fields["shelter"] = "numeric"
		}

		form := petForm{
			Name:      strings.TrimSpace(r.FormValue("name")),
			Species:   strings.TrimSpace(r.FormValue("species")),
			Age:       age,
			Gender:    strings.TrimSpace(r.FormValue("gender")),
			ShelterID: shelterID,
		}
		for k, v := range webutil.Validate(form) {
			fields[k] = v
		}
		if len(fields) > 0 {
			webutil.WriteFieldErrors(w, fields)
			return
		}

		status := adoption.PetStatus(strings.TrimSpace(r.FormValue("status")))
		if status == "" {
			status = adoption.PetStatusAvailable
		}
		if status != adoption.PetStatusAvailable && status != adoption.PetStatusAdopted {
			webutil.WriteFieldErrors(w, map[string]string{"status": "invalid"})
			return
		}

		breed := strings.TrimSpace(r.FormValue("breed"))
		description := strings.TrimSpace(r.FormValue("description"))
		in := adoption.PetInput{
			Name:        &form.Name,
			Species:     &form.Species,
			Breed:       &breed,
			Age:         &form.Age,
			Gender:      &form.Gender,
			Status:      &status,
			ShelterID:   &form.ShelterID,
			Description: &description,
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
			webutil.WriteError(w, http.StatusBadGateway, "No se pudo guardar la mascota. Intenta nuevamente.")
			return
		}
		webutil.WriteJSON(w, http.StatusCreated, toPetResponse(created))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	// PATCH real: solo los campos presentes en el form viajan al backend;
	// un edit que no toca description no la pierde.
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "petID"))
		if err != nil || id <= 0 {
			webutil.WriteError(w, http.StatusBadRequest, "invalid pet id")
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			webutil.WriteError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}

		var in adoption.PetInput
		fields := map[string]string{}

		if v, ok := formPresent(r, "name"); ok {
			in.Name = &v
		}
		if v, ok := formPresent(r, "species"); ok {
			in.Species = &v
		}
		if v, ok := formPresent(r, "breed"); ok {
			in.Breed = &v
		}
		if v, ok := formPresent(r, "gender"); ok {
			in.Gender = &v
		}
		if v, ok := formPresent(r, "description"); ok {
			in.Description = &v
		}
		if _, ok := formPresent(r, "age"); ok {
			age, ok := formInt(r, "age")
			if !ok || age < 0 {
				fields["age"] = "numeric"
			} else {
				in.Age = &age
			}
		}
		if _, ok := formPresent(r, "shelter"); ok {
			shelterID, ok := formInt(r, "shelter")
			if !ok || shelterID <= 0 {
				fields["shelter"] = "numeric"
			} else {
				in.ShelterID = &shelterID
			}
		}
		if v, ok := formPresent(r, "status"); ok {
			status := adoption.PetStatus(v)
			if status != adoption.PetStatusAvailable && status != adoption.PetStatusAdopted {
				fields["status"] = "invalid"
			} else {
				in.Status = &status
			}
		}
		if len(fields) > 0 {
			webutil.WriteFieldErrors(w, fields)
			return
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
			webutil.WriteJSON(w, http.StatusOK, toPetResponse(updated))
		case errors.Is(err, adoption.ErrNotFound):
			webutil.WriteError(w, http.StatusNotFound, "Mascota no encontrada.")
		default:
			webutil.WriteError(w, http.StatusBadGateway, "No se pudo guardar la mascota. Intenta nuevamente.")
		}
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "petID"))
		if err != nil || id <= 0 {
			webutil.WriteError(w, http.StatusBadRequest, "invalid pet id")
			return
		}

		// Acción destructiva: exige confirmación explícita del humano.
		if r.URL.Query().Get("confirm") != "true" {
			webutil.WriteError(w, http.StatusBadRequest, "confirmation required")
			return
		}

		sess := session.FromContext(r.Context())
		err = svc.Delete(r.Context(), sess, id)
		switch {
		case err == nil:
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, ErrPetAdopted):
			webutil.WriteError(w, http.StatusConflict, "No se puede eliminar una mascota adoptada.")
		case errors.Is(err, adoption.ErrNotFound):
			webutil.WriteError(w, http.StatusNotFound, "Mascota no encontrada.")
		default:
			webutil.WriteError(w, http.StatusBadGateway, "No se pudo eliminar la mascota. Intenta nuevamente.")
		}
	}
}

func parseFilter(w http.ResponseWriter, r *http.Request) (adoption.PetFilter, bool) {
	q := r.URL.Query()

	f := adoption.PetFilter{
		Search: strings.TrimSpace(q.Get("search")),
	}

	switch status := adoption.PetStatus(q.Get("status")); status {
	case "", adoption.PetStatusAvailable, adoption.PetStatusAdopted:
		f.Status = status
	default:
		webutil.WriteError(w, http.StatusBadRequest, "invalid status filter")
		return adoption.PetFilter{}, false
	}

	if raw := q.Get("shelter_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			webutil.WriteError(w, http.StatusBadRequest, "invalid shelter filter")
			return adoption.PetFilter{}, false
		}
		f.ShelterID = id
	}

	return f, true
}

// callerKey identifica "quién tipea" para el debounce: sesión si hay,
// si no la IP (ya normalizada por RealIP).
func callerKey(r *http.Request) string {
	if sess := session.FromContext(r.Context()); sess.Token != "" {
		return sess.Token
	}
	return r.RemoteAddr
}

func formInt(r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(r.FormValue(name)))
	if err != nil {
		return 0, false
	}
	return v, true
}

// formPresent distingue "campo no enviado" de "campo enviado vacío",
// que para un PATCH son cosas distintas.
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

func toPetResponse(p adoption.Pet) petResponse {
	return petResponse{
		ID:          p.ID,
		Name:        p.Name,
		Species:     p.Species,
		Breed:       p.Breed,
		Age:         p.Age,
		Gender:      p.Gender,
		Status:      string(p.Status),
		StatusLabel: p.Status.Label(),
		ShelterID:   p.ShelterID,
		ShelterName: p.ShelterName,
		Photo:       p.Photo,
		Description: p.Description,
	}
}
