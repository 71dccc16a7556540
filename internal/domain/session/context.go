package session

import "context"

type ctxKey string

const sessionKey ctxKey = "session"

// WithSession guarda la sesión en el contexto del request.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// FromContext devuelve la sesión del request. Si el middleware no corrió
// (o no había token), devuelve la sesión anónima.
func FromContext(ctx context.Context) Session {
	v := ctx.Value(sessionKey)
	if v == nil {
		return Empty()
	}
	s, ok := v.(Session)
	if !ok {
		return Empty()
	}
	return s
}
