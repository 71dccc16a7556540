package users

import (
	"errors"
	"net/http"
	"strconv"

	"pet-adoption-web/internal/domain/session"
	"pet-adoption-web/internal/platform/webutil"
	"pet-adoption-web/internal/ports/adoption"

	"github.com/go-chi/chi/v5"
)

func RegisterAdminRoutes(r chi.Router, svc *Service) {
	r.Get("/users", listHandler(svc))
	r.Patch("/users/{userID}/role", setRoleHandler(svc))
}

type userResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsStaff  bool   `json:"is_staff"`
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromContext(r.Context())
		items, err := svc.List(r.Context(), sess)
		if err != nil {
			webutil.WriteError(w, http.StatusBadGateway, "Ocurrió un error al cargar los usuarios. Intenta de nuevo más tarde.")
			return
		}
		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toUserResponse(u))
		}
		webutil.WriteJSON(w, http.StatusOK, out)
	}
}

// setRoleRequest lleva el rol destino y la confirmación con dirección
// explícita: "grant" para otorgar, "revoke" para quitar. La dirección
// tiene que coincidir con is_staff para que un diálogo desactualizado
// no aplique el cambio contrario al que el admin leyó.
type setRoleRequest struct {
	IsStaff *bool  `json:"is_staff"`
	Confirm string `json:"confirm"`
}

func setRoleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "userID"))
		if err != nil || id <= 0 {
			webutil.WriteError(w, http.StatusBadRequest, "invalid user id")
			return
		}

		var body setRoleRequest
		if err := webutil.DecodeJSON(r, &body); err != nil || body.IsStaff == nil {
			webutil.WriteError(w, http.StatusBadRequest, "is_staff is required")
			return
		}

		want := "revoke"
		if *body.IsStaff {
			want = "grant"
		}
		if body.Confirm != want {
			webutil.WriteError(w, http.StatusBadRequest, "confirmation required")
			return
		}

		sess := session.FromContext(r.Context())
		updated, err := svc.SetRole(r.Context(), sess, id, *body.IsStaff)
		switch {
		case err == nil:
			webutil.WriteJSON(w, http.StatusOK, toUserResponse(updated))
		case errors.Is(err, ErrSelfChange):
			webutil.WriteError(w, http.StatusConflict, "No puedes cambiar tu propio rol.")
		case errors.Is(err, adoption.ErrNotFound):
			webutil.WriteError(w, http.StatusNotFound, "Usuario no encontrado.")
		default:
			webutil.WriteError(w, http.StatusBadGateway, "No se pudo actualizar el rol. Intenta nuevamente.")
		}
	}
}

func toUserResponse(u adoption.Profile) userResponse {
	return userResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsStaff:  u.IsStaff,
	}
}
