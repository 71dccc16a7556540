package shelters

import (
	"context"
	"errors"
	"testing"

	"pet-adoption-web/internal/domain/session"
	"pet-adoption-web/internal/ports/adoption"
)

// -------------------------
// Cliente de prueba
// -------------------------

type testSheltersClient struct {
	byID    map[int]adoption.Shelter
	deleted []int
	listErr error
}

func newTestSheltersClient(shelters ...adoption.Shelter) *testSheltersClient {
	c := &testSheltersClient{byID: map[int]adoption.Shelter{}}
	for _, sh := range shelters {
		c.byID[sh.ID] = sh
	}
	return c
}

func (c *testSheltersClient) ListShelters(ctx context.Context) ([]adoption.Shelter, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}
	out := make([]adoption.Shelter, 0, len(c.byID))
	for _, sh := range c.byID {
		out = append(out, sh)
	}
	return out, nil
}

func (c *testSheltersClient) GetShelter(ctx context.Context, id int) (adoption.Shelter, error) {
	sh, ok := c.byID[id]
	if !ok {
		return adoption.Shelter{}, adoption.ErrNotFound
	}
	return sh, nil
}

func (c *testSheltersClient) CreateShelter(ctx context.Context, token string, in adoption.ShelterInput) (adoption.Shelter, error) {
	sh := adoption.Shelter{ID: len(c.byID) + 1}
	if in.Name != nil {
		sh.Name = *in.Name
	}
	c.byID[sh.ID] = sh
	return sh, nil
}

func (c *testSheltersClient) UpdateShelter(ctx context.Context, token string, id int, in adoption.ShelterInput) (adoption.Shelter, error) {
	sh, ok := c.byID[id]
	if !ok {
		return adoption.Shelter{}, adoption.ErrNotFound
	}
	if in.Name != nil {
		sh.Name = *in.Name
	}
	c.byID[id] = sh
	return sh, nil
}

func (c *testSheltersClient) DeleteShelter(ctx context.Context, token string, id int) error {
	if _, ok := c.byID[id]; !ok {
		return adoption.ErrNotFound
	}
	delete(c.byID, id)
	c.deleted = append(c.deleted, id)
	return nil
}

func adminSession() session.Session {
	return session.Session{
		Token:       "tok",
		RemoteToken: "remote",
		User:        &adoption.Profile{ID: 1, Username: "admin", IsStaff: true},
	}
}

// -------------------------
// Tests
// -------------------------

func TestService_List_OK(t *testing.T) {
	tc := newTestSheltersClient(
		adoption.Shelter{ID: 1, Name: "Refugio Centro", IsActive: true},
		adoption.Shelter{ID: 2, Name: "Refugio Norte", IsActive: false},
	)
	svc := NewService(tc, nil)

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 shelters, got %d", len(items))
	}
}

func TestService_List_UpstreamFails(t *testing.T) {
	tc := newTestSheltersClient()
	tc.listErr = adoption.ErrUnavailable
	svc := NewService(tc, nil)

	_, err := svc.List(context.Background())
	if !errors.Is(err, adoption.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestService_Get_NotFound(t *testing.T) {
	svc := NewService(newTestSheltersClient(), nil)

	_, err := svc.Get(context.Background(), 99)
	if !errors.Is(err, adoption.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Get_InvalidID(t *testing.T) {
	svc := NewService(newTestSheltersClient(), nil)

	if _, err := svc.Get(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Delete_OK(t *testing.T) {
	tc := newTestSheltersClient(adoption.Shelter{ID: 1, Name: "Refugio Centro"})
	svc := NewService(tc, nil)

	if err := svc.Delete(context.Background(), adminSession(), 1); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(tc.deleted) != 1 || tc.deleted[0] != 1 {
		t.Fatalf("expected shelter 1 deleted, got %#v", tc.deleted)
	}
}

func TestService_Delete_InvalidID(t *testing.T) {
	tc := newTestSheltersClient()
	svc := NewService(tc, nil)

	if err := svc.Delete(context.Background(), adminSession(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(tc.deleted) != 0 {
		t.Fatalf("invalid id must never reach the backend")
	}
}
