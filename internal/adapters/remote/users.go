package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"pet-adoption-web/internal/ports/adoption"
)

func (c *Client) ListUsers(ctx context.Context, token string) ([]adoption.Profile, error) {
	// page_size grande para traer todo de una; la pantalla admin no pagina.
	var raw json.RawMessage
	if err := c.http.DoJSON(ctx, http.MethodGet, "/admin/users/?page_size=1000", headers(token), nil, &raw); err != nil {
		return nil, mapError(err)
	}
	return normalizeCollection[adoption.Profile](raw)
}

func (c *Client) UpdateUserRole(ctx context.Context, token string, id int, isStaff bool) (adoption.Profile, error) {
	in := map[string]bool{"is_staff": isStaff}

	var out adoption.Profile
	err := c.http.DoJSON(ctx, http.MethodPatch, fmt.Sprintf("/admin/users/%d/", id), headers(token), in, &out)
	if err != nil {
		return adoption.Profile{}, mapError(err)
	}
	return out, nil
}
