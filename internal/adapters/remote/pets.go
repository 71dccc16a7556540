package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"pet-adoption-web/internal/platform/httpclient"
	"pet-adoption-web/internal/ports/adoption"
)

func (c *Client) ListPets(ctx context.Context, f adoption.PetFilter) ([]adoption.Pet, error) {
	params := map[string]string{
		"search": f.Search,
		"status": string(f.Status),
	}
	if f.ShelterID > 0 {
		params["shelter"] = strconv.Itoa(f.ShelterID)
	}
	path := httpclient.WithQuery("/pets/", params)

	var raw json.RawMessage
	if err := c.http.DoJSON(ctx, http.MethodGet, path, nil, nil, &raw); err != nil {
		return nil, mapError(err)
	}
	return normalizeCollection[adoption.Pet](raw)
}

func (c *Client) GetPet(ctx context.Context, id int) (adoption.Pet, error) {
	var out adoption.Pet
	err := c.http.DoJSON(ctx, http.MethodGet, fmt.Sprintf("/pets/%d/", id), nil, nil, &out)
	if err != nil {
		return adoption.Pet{}, mapError(err)
	}
	return out, nil
}

func (c *Client) CreatePet(ctx context.Context, token string, in adoption.PetInput) (adoption.Pet, error) {
	return c.sendPet(ctx, token, http.MethodPost, "/pets/", in)
}

func (c *Client) UpdatePet(ctx context.Context, token string, id int, in adoption.PetInput) (adoption.Pet, error) {
	return c.sendPet(ctx, token, http.MethodPatch, fmt.Sprintf("/pets/%d/", id), in)
}

func (c *Client) DeletePet(ctx context.Context, token string, id int) error {
	err := c.http.DoJSON(ctx, http.MethodDelete, fmt.Sprintf("/pets/%d/", id), headers(token), nil, nil)
	return mapError(err)
}

// sendPet serializa el PetInput como multipart. Campos nil no viajan,
// así un PATCH parcial no pisa campos que el form no tocó.
func (c *Client) sendPet(ctx context.Context, token, method, path string, in adoption.PetInput) (adoption.Pet, error) {
	f := newMultipartForm()
	if in.Name != nil {
		f.field("name", *in.Name)
	}
	if in.Species != nil {
		f.field("species", *in.Species)
	}
	if in.Breed != nil {
		f.field("breed", *in.Breed)
	}
	if in.Age != nil {
		f.field("age", strconv.Itoa(*in.Age))
	}
	if in.Gender != nil {
		f.field("gender", *in.Gender)
	}
	if in.Status != nil {
		f.field("status", string(*in.Status))
	}
	if in.ShelterID != nil {
		f.field("shelter", strconv.Itoa(*in.ShelterID))
	}
	if in.Description != nil {
		f.field("description", *in.Description)
	}
	if in.Photo != nil {
		f.file("photo", *in.Photo)
	}

	contentType, body, err := f.close()
	if err != nil {
		return adoption.Pet{}, fmt.Errorf("%w: build multipart: %v", adoption.ErrUnavailable, err)
	}

	var out adoption.Pet
	if err := c.http.DoRaw(ctx, method, path, headers(token), contentType, body, &out); err != nil {
		return adoption.Pet{}, mapError(err)
	}
	return out, nil
}
