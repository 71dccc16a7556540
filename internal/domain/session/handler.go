package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"pet-adoption-web/internal/platform/webutil"
	"pet-adoption-web/internal/ports/adoption"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/auth/login", loginHandler(svc))
	r.Post("/auth/register", registerHandler(svc))
	r.Post("/auth/change-password", changePasswordHandler(svc))

	// GET /session es el restore del arranque de la SPA: siempre 200,
	// con sesión anónima si el token no resuelve.
	r.Get("/session", currentSessionHandler())
	r.Delete("/session", logoutHandler(svc))
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type profileResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsStaff  bool   `json:"is_staff"`
}

type sessionResponse struct {
	Authenticated bool             `json:"authenticated"`
	Admin         bool             `json:"admin"`
	User          *profileResponse `json:"user,omitempty"`
}

type loginResponse struct {
	Token string          `json:"token"`
	User  profileResponse `json:"user"`
	Admin bool            `json:"admin"`
}

func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			webutil.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if fields := webutil.Validate(req); fields != nil {
			webutil.WriteFieldErrors(w, fields)
			return
		}

		sess, err := svc.Login(r.Context(), req.Username, req.Password)
		switch {
		case err == nil:
			webutil.WriteJSON(w, http.StatusOK, loginResponse{
				Token: sess.Token,
				User:  toProfileResponse(*sess.User),
				Admin: sess.IsAdmin(),
			})
		case errors.Is(err, adoption.ErrBadCredentials), errors.Is(err, ErrInvalidInput):
			webutil.WriteError(w, http.StatusUnauthorized, "Usuario o contraseña incorrectos.")
		default:
			webutil.WriteError(w, http.StatusBadGateway, "No se pudo iniciar sesión. Intenta nuevamente.")
		}
	}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			webutil.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if fields := webutil.Validate(req); fields != nil {
			webutil.WriteFieldErrors(w, fields)
			return
		}

		err := svc.Register(r.Context(), adoption.RegisterInput{
			Username: strings.TrimSpace(req.Username),
			Email:    strings.TrimSpace(req.Email),
			Password: req.Password,
		})
		if err != nil {
			webutil.WriteError(w, http.StatusBadGateway, "No se pudo completar el registro. Intenta nuevamente.")
			return
		}
		w.WriteHeader(http.StatusCreated)
	}
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

func changePasswordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := FromContext(r.Context())
		if !sess.IsAuthenticated() {
			webutil.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req changePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			webutil.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if fields := webutil.Validate(req); fields != nil {
			webutil.WriteFieldErrors(w, fields)
			return
		}

		err := svc.ChangePassword(r.Context(), sess, req.OldPassword, req.NewPassword)
		switch {
		case err == nil:
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, adoption.ErrBadCredentials):
			webutil.WriteError(w, http.StatusBadRequest, "La contraseña actual no es correcta.")
		default:
			webutil.WriteError(w, http.StatusBadGateway, "No se pudo cambiar la contraseña. Intenta nuevamente.")
		}
	}
}

func currentSessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := FromContext(r.Context())

		resp := sessionResponse{
			Authenticated: sess.IsAuthenticated(),
			Admin:         sess.IsAdmin(),
		}
		if sess.User != nil {
			p := toProfileResponse(*sess.User)
			resp.User = &p
		}
		webutil.WriteJSON(w, http.StatusOK, resp)
	}
}

func logoutHandler(svc *Service) http.HandlerFunc {
	// Idempotente: sin sesión igual responde 204.
	return func(w http.ResponseWriter, r *http.Request) {
		sess := FromContext(r.Context())
		svc.Logout(r.Context(), sess.Token)
		w.WriteHeader(http.StatusNoContent)
	}
}

func toProfileResponse(p adoption.Profile) profileResponse {
	return profileResponse{
		ID:       p.ID,
		Username: p.Username,
		Email:    p.Email,
		IsStaff:  p.IsStaff,
	}
}
