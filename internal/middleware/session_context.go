package middleware

import (
	"context"
	"net/http"
	"strings"

	"pet-adoption-web/internal/domain/session"
)

// SessionResolver resuelve un token opaco a su sesión. Restore nunca
// falla: ante token ausente/desconocido devuelve la sesión anónima.
type SessionResolver interface {
	Restore(ctx context.Context, token string) session.Session
}

// SessionContext:
// - Si viene Bearer token => lo resuelve y guarda la sesión en el contexto.
// - Si no viene token o no resuelve => sigue con sesión anónima.
// Acá no se corta nada; RequireAuth/RequireAdmin deciden por ruta.
func SessionContext(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := session.Empty()
			if token := bearerToken(r.Header.Get("Authorization")); token != "" && resolver != nil {
				sess = resolver.Restore(r.Context(), token)
			}
			ctx := session.WithSession(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
