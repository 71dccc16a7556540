package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-adoption-web/internal/domain/session"
	"pet-adoption-web/internal/ports/adoption"
)

// SessionsRepo persiste sesiones para que un reinicio del servicio no
// desloguee a todo el mundo.
//
// Esquema esperado:
//
//	CREATE TABLE sessions (
//	    token        text PRIMARY KEY,
//	    remote_token text NOT NULL,
//	    user_id      integer NOT NULL,
//	    username     text NOT NULL,
//	    email        text NOT NULL,
//	    is_staff     boolean NOT NULL,
//	    created_at   timestamptz NOT NULL
//	);
type SessionsRepo struct {
	db *sql.DB
}

func NewSessionsRepo(db *sql.DB) *SessionsRepo {
	return &SessionsRepo{db: db}
}

func (r *SessionsRepo) Save(ctx context.Context, s session.Session) error {
	if s.User == nil {
		return ErrNotFound
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (
			token, remote_token,
			user_id, username, email, is_staff,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (token) DO UPDATE SET
			remote_token = EXCLUDED.remote_token,
			user_id = EXCLUDED.user_id,
			username = EXCLUDED.username,
			email = EXCLUDED.email,
			is_staff = EXCLUDED.is_staff
	`,
		s.Token,
		s.RemoteToken,
		s.User.ID,
		s.User.Username,
		s.User.Email,
		s.User.IsStaff,
		s.CreatedAt,
	)
	return err
}

func (r *SessionsRepo) Get(ctx context.Context, token string) (session.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return session.Session{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			token, remote_token,
			user_id, username, email, is_staff,
			created_at
		FROM sessions
		WHERE token = $1
	`, token)

	var s session.Session
	var u adoption.Profile
	if err := row.Scan(
		&s.Token,
		&s.RemoteToken,
		&u.ID,
		&u.Username,
		&u.Email,
		&u.IsStaff,
		&s.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return session.Session{}, ErrNotFound
		}
		return session.Session{}, err
	}

	s.User = &u
	return s, nil
}

func (r *SessionsRepo) Delete(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	return err
}
