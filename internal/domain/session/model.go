package session

import (
	"time"

	"pet-adoption-web/internal/ports/adoption"
)

// Session representa "quién está actuando". Token es el id opaco que viaja
// al navegador; RemoteToken es el access token del backend remoto y nunca
// sale de este servicio.
//
// Invariantes: IsAuthenticated() == (User presente);
// IsAdmin() == (User presente && User.IsStaff).
type Session struct {
	Token       string
	RemoteToken string
	User        *adoption.Profile
	CreatedAt   time.Time
}

func (s Session) IsAuthenticated() bool {
	return s.User != nil
}

func (s Session) IsAdmin() bool {
	return s.User != nil && s.User.IsStaff
}

// Empty es la sesión anónima. Restore degrada a esto ante cualquier
// problema de storage; nunca lanza.
func Empty() Session {
	return Session{}
}
