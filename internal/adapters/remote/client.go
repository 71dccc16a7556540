package remote

import (
	"errors"
	"fmt"
	"time"

	"pet-adoption-web/internal/platform/httpclient"
	"pet-adoption-web/internal/platform/logger"
	"pet-adoption-web/internal/ports/adoption"
)

var (
	ErrNotConfigured = errors.New("adoption api client not configured")
)

// Config del cliente hacia el backend remoto de adopciones.
// BaseURL normalmente viene de ADOPTION_API_URL.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client implementa adoption.Client contra el backend REST remoto.
// Es el único lugar que conoce paths, envelopes y multipart del contrato.
type Client struct {
	http *httpclient.Client
	log  logger.Logger
}

func New(cfg Config, log logger.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrNotConfigured
	}
	hc, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Client{
		http: hc,
		log:  log.With(map[string]any{"component": "adoption-api"}),
	}, nil
}

// headers arma los headers por request. token vacío => llamada anónima.
func headers(token string) map[string]string {
	if token == "" {
		return nil
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

// mapError normaliza errores del transporte a los sentinels del puerto.
// 401/403 => ErrUnauthorized, 404 => ErrNotFound, resto => ErrUnavailable.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var he *httpclient.HTTPError
	if errors.As(err, &he) {
		switch he.StatusCode {
		case 401, 403:
			return fmt.Errorf("%w: %v", adoption.ErrUnauthorized, he)
		case 404:
			return fmt.Errorf("%w: %v", adoption.ErrNotFound, he)
		default:
			return fmt.Errorf("%w: %v", adoption.ErrUnavailable, he)
		}
	}
	return fmt.Errorf("%w: %v", adoption.ErrUnavailable, err)
}
