package remote

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"pet-adoption-web/internal/platform/httpclient"
	"pet-adoption-web/internal/ports/adoption"
)

func (c *Client) Login(ctx context.Context, username, password string) (adoption.LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return adoption.LoginResult{}, adoption.ErrBadCredentials
	}

	in := map[string]string{
		"username": username,
		"password": password,
	}

	var out adoption.LoginResult
	err := c.http.DoJSON(ctx, http.MethodPost, "/auth/login/", nil, in, &out)
	if err != nil {
		var he *httpclient.HTTPError
		if errors.As(err, &he) && (he.StatusCode == 400 || he.StatusCode == 401) {
			return adoption.LoginResult{}, adoption.ErrBadCredentials
		}
		return adoption.LoginResult{}, mapError(err)
	}

	if strings.TrimSpace(out.Access) == "" {
		return adoption.LoginResult{}, errors.New("login response missing access token")
	}
	return out, nil
}

func (c *Client) Register(ctx context.Context, in adoption.RegisterInput) error {
	err := c.http.DoJSON(ctx, http.MethodPost, "/auth/register/", nil, in, nil)
	return mapError(err)
}

func (c *Client) ChangePassword(ctx context.Context, token, oldPassword, newPassword string) error {
	in := map[string]string{
		"old_password": oldPassword,
		"new_password": newPassword,
	}
	err := c.http.DoJSON(ctx, http.MethodPost, "/auth/change-password/", headers(token), in, nil)
	if err != nil {
		// 400 acá es "la contraseña actual no coincide", no una falla genérica.
		var he *httpclient.HTTPError
		if errors.As(err, &he) && he.StatusCode == 400 {
			return adoption.ErrBadCredentials
		}
		return mapError(err)
	}
	return nil
}
