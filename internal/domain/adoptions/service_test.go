package adoptions

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

type testClient struct {
	byID        map[int]adoption.AdoptionRequest
	transitions []string // "approve:3", "reject:5"
}

func newTestClient(reqs ...adoption.AdoptionRequest) *testClient {
	c := &testClient{byID: map[int]adoption.AdoptionRequest{}}
	for _, r := range reqs {
		c.byID[r.ID] = r
	}
	return c
}

func (c *testClient) CreateRequest(ctx context.Context, token string, in adoption.AdoptionInput) (adoption.AdoptionRequest, error) {
	r := adoption.AdoptionRequest{ID: len(c.byID) + 1, PetID: in.PetID, Status: adoption.RequestStatusPending, Notes: in.Notes}
	c.byID[r.ID] = r
	return r, nil
}

func (c *testClient) ListMine(ctx context.Context, token string) ([]adoption.AdoptionRequest, error) {
	return nil, nil
}

func (c *testClient) ListAll(ctx context.Context, token string) ([]adoption.AdoptionRequest, error) {
	out := make([]adoption.AdoptionRequest, 0, len(c.byID))
	for _, r := range c.byID {
		out = append(out, r)
	}
	return out, nil
}

func (c *testClient) GetRequest(ctx context.Context, token string, id int) (adoption.AdoptionRequest, error) {
	r, ok := c.byID[id]
	if !ok {
		return adoption.AdoptionRequest{}, adoption.ErrNotFound
	}
	return r, nil
}

func (c *testClient) Approve(ctx context.Context, token string, id int) (adoption.AdoptionRequest, error) {
	return c.apply(id, "approve", adoption.RequestStatusApproved)
}

func (c *testClient) Reject(ctx context.Context, token string, id int) (adoption.AdoptionRequest, error) {
	return c.apply(id, "reject", adoption.RequestStatusRejected)
}

func (c *testClient) apply(id int, action string, to adoption.RequestStatus) (adoption.AdoptionRequest, error) {
	r, ok := c.byID[id]
	if !ok {
		return adoption.AdoptionRequest{}, adoption.ErrNotFound
	}
	r.Status = to
	c.byID[id] = r
	c.transitions = append(c.transitions, action)
	return r, nil
}

func (c *testClient) MyRequestForPet(ctx context.Context, token string, petID int) (adoption.MyRequest, error) {
	return adoption.MyRequest{}, nil
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

func TestService_Decide_Approve_Pending(t *testing.T) {
	tc := newTestClient(adoption.AdoptionRequest{ID: 3, Status: adoption.RequestStatusPending})
	svc := NewService(tc, nil)

	decided, err := svc.Decide(context.Background(), adminSession(), 3, true)
	if err != nil {
		t.Fatalf("Decide returned error: %v", err)
	}
	if decided.Status != adoption.RequestStatusApproved {
		t.Fatalf("expected APPROVED, got %s", decided.Status)
	}
	if decided.Status.Label() != "Aprobada" {
		t.Fatalf("expected label Aprobada, got %s", decided.Status.Label())
	}
}

func TestService_Decide_Reject_Pending(t *testing.T) {
	tc := newTestClient(adoption.AdoptionRequest{ID: 3, Status: adoption.RequestStatusPending})
	svc := NewService(tc, nil)

	decided, err := svc.Decide(context.Background(), adminSession(), 3, false)
	if err != nil {
		t.Fatalf("Decide returned error: %v", err)
	}
	if decided.Status != adoption.RequestStatusRejected {
		t.Fatalf("expected REJECTED, got %s", decided.Status)
	}
}

func TestService_Decide_NonPending_Refused(t *testing.T) {
	for _, status := range []adoption.RequestStatus{
		adoption.RequestStatusApproved,
		adoption.RequestStatusRejected,
		adoption.RequestStatusCancelled,
	} {
		tc := newTestClient(adoption.AdoptionRequest{ID: 3, Status: status})
		svc := NewService(tc, nil)

		_, err := svc.Decide(context.Background(), adminSession(), 3, true)
		if !errors.Is(err, ErrNotPending) {
			t.Fatalf("status %s: expected ErrNotPending, got %v", status, err)
		}
		if len(tc.transitions) != 0 {
			t.Fatalf("status %s: transition must not reach the backend", status)
		}
	}
}

func TestService_Decide_NotFound(t *testing.T) {
	svc := NewService(newTestClient(), nil)

	_, err := svc.Decide(context.Background(), adminSession(), 99, true)
	if !errors.Is(err, adoption.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Submit_RequiresPet(t *testing.T) {
	svc := NewService(newTestClient(), nil)

	_, err := svc.Submit(context.Background(), adminSession(), adoption.AdoptionInput{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Submit_OK(t *testing.T) {
	tc := newTestClient()
	svc := NewService(tc, nil)

	req, err := svc.Submit(context.Background(), adminSession(), adoption.AdoptionInput{PetID: 5, Notes: "patio grande"})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if req.Status != adoption.RequestStatusPending || req.PetID != 5 {
		t.Fatalf("unexpected request: %#v", req)
	}
}
