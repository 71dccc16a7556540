package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// pagedEnvelope es el shape paginado estilo DRF: {count,next,previous,results}.
type pagedEnvelope[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// normalizeCollection acepta las dos formas que puede devolver el backend
// para cualquier listado (array pelado o envelope paginado) y entrega
// siempre un slice plano. Es el único punto donde se decide el shape;
// los call sites nunca lo sniffean inline.
func normalizeCollection[T any](raw json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []T{}, nil
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decode collection: %w", err)
		}
		if items == nil {
			items = []T{}
		}
		return items, nil
	}

	var env pagedEnvelope[T]
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("decode paged collection: %w", err)
	}
	if env.Results == nil {
		return []T{}, nil
	}
	return env.Results, nil
}
