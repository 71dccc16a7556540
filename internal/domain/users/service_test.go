package users

import (
	"context"
	"errors"
	"testing"

	"pet-adoption-web/internal/domain/session"
	"pet-adoption-web/internal/ports/adoption"
)

type testUsersClient struct {
	byID    map[int]adoption.Profile
	updates int
}

func newTestUsersClient(users ...adoption.Profile) *testUsersClient {
	c := &testUsersClient{byID: map[int]adoption.Profile{}}
	for _, u := range users {
		c.byID[u.ID] = u
	}
	return c
}

func (c *testUsersClient) ListUsers(ctx context.Context, token string) ([]adoption.Profile, error) {
	out := make([]adoption.Profile, 0, len(c.byID))
	for _, u := range c.byID {
		out = append(out, u)
	}
	return out, nil
}

func (c *testUsersClient) UpdateUserRole(ctx context.Context, token string, id int, isStaff bool) (adoption.Profile, error) {
	u, ok := c.byID[id]
	if !ok {
		return adoption.Profile{}, adoption.ErrNotFound
	}
	u.IsStaff = isStaff
	c.byID[id] = u
	c.updates++
	return u, nil
}

func adminSession(id int) session.Session {
	return session.Session{
		Token:       "tok",
		RemoteToken: "remote",
		User:        &adoption.Profile{ID: id, Username: "admin", IsStaff: true},
	}
}

func TestService_SetRole_Grant(t *testing.T) {
	tc := newTestUsersClient(adoption.Profile{ID: 2, Username: "ana"})
	svc := NewService(tc, nil)

	updated, err := svc.SetRole(context.Background(), adminSession(1), 2, true)
	if err != nil {
		t.Fatalf("SetRole returned error: %v", err)
	}
	if !updated.IsStaff {
		t.Fatalf("expected staff granted, got %#v", updated)
	}
}

func TestService_SetRole_Revoke(t *testing.T) {
	tc := newTestUsersClient(adoption.Profile{ID: 2, Username: "ana", IsStaff: true})
	svc := NewService(tc, nil)

	updated, err := svc.SetRole(context.Background(), adminSession(1), 2, false)
	if err != nil {
		t.Fatalf("SetRole returned error: %v", err)
	}
	if updated.IsStaff {
		t.Fatalf("expected staff revoked, got %#v", updated)
	}
}

func TestService_SetRole_SelfChange_Blocked(t *testing.T) {
	tc := newTestUsersClient(adoption.Profile{ID: 1, Username: "admin", IsStaff: true})
	svc := NewService(tc, nil)

	_, err := svc.SetRole(context.Background(), adminSession(1), 1, false)
	if !errors.Is(err, ErrSelfChange) {
		t.Fatalf("expected ErrSelfChange, got %v", err)
	}
	if tc.updates != 0 {
		t.Fatalf("self change must never reach the backend")
	}
}

func TestService_SetRole_NotFound(t *testing.T) {
	svc := NewService(newTestUsersClient(), nil)

	_, err := svc.SetRole(context.Background(), adminSession(1), 99, true)
	if !errors.Is(err, adoption.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
