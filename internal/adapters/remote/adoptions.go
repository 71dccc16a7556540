package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"pet-adoption-web/internal/ports/adoption"
)

func (c *Client) CreateRequest(ctx context.Context, token string, in adoption.AdoptionInput) (adoption.AdoptionRequest, error) {
	f := newMultipartForm()
	f.field("pet", strconv.Itoa(in.PetID))

	// Opcionales: se omiten si están vacíos, no se mandan como "".
	if v := strings.TrimSpace(in.Notes); v != "" {
		f.field("notes", v)
	}
	if v := strings.TrimSpace(in.PhoneNumber); v != "" {
		f.field("phone_number", v)
	}
	if v := strings.TrimSpace(in.Address); v != "" {
		f.field("address", v)
	}
	if in.HasOtherPets != nil {
		f.field("has_other_pets", strconv.FormatBool(*in.HasOtherPets))
	}
	if in.HomePhoto != nil {
		f.file("home_photo", *in.HomePhoto)
	}

	contentType, body, err := f.close()
	if err != nil {
		return adoption.AdoptionRequest{}, fmt.Errorf("%w: build multipart: %v", adoption.ErrUnavailable, err)
	}

	var out adoption.AdoptionRequest
	if err := c.http.DoRaw(ctx, http.MethodPost, "/adoption-requests/", headers(token), contentType, body, &out); err != nil {
		return adoption.AdoptionRequest{}, mapError(err)
	}
	return out, nil
}

// ListMine y ListAll pegan al mismo endpoint; el backend decide el alcance
// según el rol del token (un usuario normal solo ve las suyas).
func (c *Client) ListMine(ctx context.Context, token string) ([]adoption.AdoptionRequest, error) {
	return c.listRequests(ctx, token)
}

func (c *Client) ListAll(ctx context.Context, token string) ([]adoption.AdoptionRequest, error) {
	return c.listRequests(ctx, token)
}

func (c *Client) listRequests(ctx context.Context, token string) ([]adoption.AdoptionRequest, error) {
	var raw json.RawMessage
	if err := c.http.DoJSON(ctx, http.MethodGet, "/adoption-requests/", headers(token), nil, &raw); err != nil {
		return nil, mapError(err)
	}
	return normalizeCollection[adoption.AdoptionRequest](raw)
}

func (c *Client) GetRequest(ctx context.Context, token string, id int) (adoption.AdoptionRequest, error) {
	var out adoption.AdoptionRequest
	err := c.http.DoJSON(ctx, http.MethodGet, fmt.Sprintf("/adoption-requests/%d/", id), headers(token), nil, &out)
	if err != nil {
		return adoption.AdoptionRequest{}, mapError(err)
	}
	return out, nil
}

func (c *Client) Approve(ctx context.Context, token string, id int) (adoption.AdoptionRequest, error) {
	return c.transition(ctx, token, id, "approve")
}

func (c *Client) Reject(ctx context.Context, token string, id int) (adoption.AdoptionRequest, error) {
	return c.transition(ctx, token, id, "reject")
}

func (c *Client) transition(ctx context.Context, token string, id int, action string) (adoption.AdoptionRequest, error) {
	var out adoption.AdoptionRequest
	path := fmt.Sprintf("/adoption-requests/%d/%s/", id, action)
	err := c.http.DoJSON(ctx, http.MethodPost, path, headers(token), nil, &out)
	if err != nil {
		return adoption.AdoptionRequest{}, mapError(err)
	}
	return out, nil
}

func (c *Client) MyRequestForPet(ctx context.Context, token string, petID int) (adoption.MyRequest, error) {
	path := fmt.Sprintf("/adoption-requests/my-for-pet/?pet_id=%d", petID)
	var out adoption.MyRequest
	if err := c.http.DoJSON(ctx, http.MethodGet, path, headers(token), nil, &out); err != nil {
		return adoption.MyRequest{}, mapError(err)
	}
	return out, nil
}
