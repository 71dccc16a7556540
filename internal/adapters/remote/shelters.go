package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"pet-adoption-web/internal/ports/adoption"
)

func (c *Client) ListShelters(ctx context.Context) ([]adoption.Shelter, error) {
	var raw json.RawMessage
	if err := c.http.DoJSON(ctx, http.MethodGet, "/shelters/", nil, nil, &raw); err != nil {
		return nil, mapError(err)
	}
	return normalizeCollection[adoption.Shelter](raw)
}

func (c *Client) GetShelter(ctx context.Context, id int) (adoption.Shelter, error) {
	var out adoption.Shelter
	err := c.http.DoJSON(ctx, http.MethodGet, fmt.Sprintf("/shelters/%d/", id), nil, nil, &out)
	if err != nil {
		return adoption.Shelter{}, mapError(err)
	}
	return out, nil
}

func (c *Client) CreateShelter(ctx context.Context, token string, in adoption.ShelterInput) (adoption.Shelter, error) {
	return c.sendShelter(ctx, token, http.MethodPost, "/shelters/", in)
}

func (c *Client) UpdateShelter(ctx context.Context, token string, id int, in adoption.ShelterInput) (adoption.Shelter, error) {
	return c.sendShelter(ctx, token, http.MethodPatch, fmt.Sprintf("/shelters/%d/", id), in)
}

func (c *Client) DeleteShelter(ctx context.Context, token string, id int) error {
	err := c.http.DoJSON(ctx, http.MethodDelete, fmt.Sprintf("/shelters/%d/", id), headers(token), nil, nil)
	return mapError(err)
}

func (c *Client) sendShelter(ctx context.Context, token, method, path string, in adoption.ShelterInput) (adoption.Shelter, error) {
	f := newMultipartForm()
	if in.Name != nil {
		f.field("name", *in.Name)
	}
	if in.Address != nil {
		f.field("address", *in.Address)
	}
	if in.Phone != nil {
		f.field("phone", *in.Phone)
	}
	if in.Email != nil {
		f.field("email", *in.Email)
	}
	if in.IsActive != nil {
		f.field("is_active", strconv.FormatBool(*in.IsActive))
	}
	if in.Photo != nil {
		f.file("photo", *in.Photo)
	}

	contentType, body, err := f.close()
	if err != nil {
		return adoption.Shelter{}, fmt.Errorf("%w: build multipart: %v", adoption.ErrUnavailable, err)
	}

	var out adoption.Shelter
	if err := c.http.DoRaw(ctx, method, path, headers(token), contentType, body, &out); err != nil {
		return adoption.Shelter{}, mapError(err)
	}
	return out, nil
}
