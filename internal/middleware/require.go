package middleware

import (
	"encoding/json"
	"net/http"

	"pet-adoption-web/internal/domain/session"
)

// Gate de autorización por navegación. Se evalúa sincrónicamente desde la
// sesión del contexto, sin I/O. Resultados terminales:
// - requiere auth y no hay sesión    => 401 + redirect a /login
// - requiere admin y no es admin     => 403 + redirect a /
// - si no                            => renderiza el handler
// La denegación no es un "error" para la UI: es un redirect silencioso.

func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromContext(r.Context())
		if !sess.IsAuthenticated() {
			writeRedirect(w, http.StatusUnauthorized, "/login")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromContext(r.Context())
		if !sess.IsAuthenticated() {
			writeRedirect(w, http.StatusUnauthorized, "/login")
			return
		}
		if !sess.IsAdmin() {
			writeRedirect(w, http.StatusForbidden, "/")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeRedirect(w http.ResponseWriter, status int, to string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"redirect": to})
}
