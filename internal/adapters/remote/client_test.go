package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-adoption-web/internal/ports/adoption"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(Config{BaseURL: srv.URL}, nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return c, srv
}

func TestNew_RequiresBaseURL(t *testing.T) {
	if _, err := New(Config{}, nil); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestClient_Login_OK(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login/" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access":"tok","refresh":"ref","user":{"id":1,"username":"ana","email":"a@b.c","is_staff":true}}`))
	}))

	res, err := c.Login(context.Background(), "ana", "secreta12")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if res.Access != "tok" || !res.User.IsStaff {
		t.Fatalf("unexpected result: %#v", res)
	}
}

func TestClient_Login_BadCredentials(t *testing.T) {
	for _, status := range []int{400, 401} {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"detail":"no"}`, status)
		}))
		_, err := c.Login(context.Background(), "ana", "mala")
		if !errors.Is(err, adoption.ErrBadCredentials) {
			t.Fatalf("status %d: expected ErrBadCredentials, got %v", status, err)
		}
	}
}

func TestClient_ChangePassword_WrongOldPassword(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"old_password":["Wrong password."]}`, http.StatusBadRequest)
	}))

	err := c.ChangePassword(context.Background(), "tok", "mala", "nueva1234")
	if !errors.Is(err, adoption.ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
}

func TestClient_ChangePassword_UpstreamError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	err := c.ChangePassword(context.Background(), "tok", "vieja", "nueva1234")
	if !errors.Is(err, adoption.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestClient_Login_UpstreamDown(t *testing.T) {
	c, srv := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := c.Login(context.Background(), "ana", "secreta12")
	if !errors.Is(err, adoption.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestClient_ListPets_QueryAndEnvelope(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("search") != "luna" || q.Get("status") != "AVAILABLE" {
			t.Fatalf("unexpected query: %s", r.URL.RawQuery)
		}
		if q.Has("shelter") {
			t.Fatalf("empty shelter filter must be omitted, got %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count":1,"next":null,"previous":null,"results":[{"id":3,"name":"Luna","status":"AVAILABLE"}]}`))
	}))

	pets, err := c.ListPets(context.Background(), adoption.PetFilter{Search: "luna", Status: adoption.PetStatusAvailable})
	if err != nil {
		t.Fatalf("ListPets returned error: %v", err)
	}
	if len(pets) != 1 || pets[0].ID != 3 {
		t.Fatalf("unexpected pets: %#v", pets)
	}
}

func TestClient_ListShelters_NormalizesBothShapes(t *testing.T) {
	payloads := map[string]string{
		"bare":  `[{"id":1,"name":"Refugio Centro","is_active":true}]`,
		"paged": `{"count":1,"next":null,"previous":null,"results":[{"id":1,"name":"Refugio Centro","is_active":true}]}`,
	}
	for shape, payload := range payloads {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/shelters/" {
				t.Fatalf("%s: unexpected path %s", shape, r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(payload))
		}))

		shelters, err := c.ListShelters(context.Background())
		if err != nil {
			t.Fatalf("%s: ListShelters returned error: %v", shape, err)
		}
		if len(shelters) != 1 || shelters[0].Name != "Refugio Centro" || !shelters[0].IsActive {
			t.Fatalf("%s: unexpected shelters: %#v", shape, shelters)
		}
	}
}

func TestClient_GetPet_NotFound(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := c.GetPet(context.Background(), 99)
	if !errors.Is(err, adoption.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_CreateRequest_OmitsEmptyOptionals(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("pet"); got != "5" {
			t.Fatalf("expected pet=5, got %q", got)
		}
		if got := r.FormValue("notes"); got != "tengo patio" {
			t.Fatalf("expected notes, got %q", got)
		}
		// Los vacíos no viajan ni como string vacío.
		for _, name := range []string{"phone_number", "address", "has_other_pets"} {
			if _, ok := r.MultipartForm.Value[name]; ok {
				t.Fatalf("field %q must be omitted when empty", name)
			}
		}
		if r.MultipartForm.File["home_photo"] != nil {
			t.Fatalf("home_photo must be omitted when absent")
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Fatalf("expected bearer token, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":11,"pet":5,"status":"PENDING"}`))
	}))

	req, err := c.CreateRequest(context.Background(), "tok", adoption.AdoptionInput{
		PetID: 5,
		Notes: "tengo patio",
	})
	if err != nil {
		t.Fatalf("CreateRequest returned error: %v", err)
	}
	if req.ID != 11 || req.Status != adoption.RequestStatusPending {
		t.Fatalf("unexpected request: %#v", req)
	}
}

func TestClient_CreateRequest_SendsPhotoAndFlags(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("has_other_pets"); got != "false" {
			t.Fatalf("explicit false must travel, got %q", got)
		}
		files := r.MultipartForm.File["home_photo"]
		if len(files) != 1 || files[0].Filename != "patio.jpg" {
			t.Fatalf("expected home_photo patio.jpg, got %#v", files)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":12,"pet":5,"status":"PENDING"}`))
	}))

	hasPets := false
	_, err := c.CreateRequest(context.Background(), "tok", adoption.AdoptionInput{
		PetID:        5,
		HasOtherPets: &hasPets,
		HomePhoto: &adoption.FileUpload{
			Filename:    "patio.jpg",
			ContentType: "image/jpeg",
			Data:        []byte("jpegdata"),
		},
	})
	if err != nil {
		t.Fatalf("CreateRequest returned error: %v", err)
	}
}

func TestClient_UpdatePet_PartialPatch(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/pets/4/" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("name"); got != "Simba" {
			t.Fatalf("expected name=Simba, got %q", got)
		}
		for _, name := range []string{"species", "age", "status", "shelter"} {
			if _, ok := r.MultipartForm.Value[name]; ok {
				t.Fatalf("untouched field %q must not travel", name)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":4,"name":"Simba","status":"AVAILABLE"}`))
	}))

	name := "Simba"
	pet, err := c.UpdatePet(context.Background(), "tok", 4, adoption.PetInput{Name: &name})
	if err != nil {
		t.Fatalf("UpdatePet returned error: %v", err)
	}
	if pet.Name != "Simba" {
		t.Fatalf("unexpected pet: %#v", pet)
	}
}

func TestClient_Unauthorized_Mapped(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"no"}`, http.StatusForbidden)
	}))

	_, err := c.ListUsers(context.Background(), "tok")
	if !errors.Is(err, adoption.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
