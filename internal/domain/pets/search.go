package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"pet-adoption-web/internal/ports/adoption"

	"golang.org/x/sync/singleflight"
)

// DefaultDebounce es la ventana de silencio para búsqueda por texto:
// un request por tecleo sería un fetch por keystroke.
const DefaultDebounce = 500 * time.Millisecond

// ErrSuperseded marca una consulta que fue reemplazada por otra más nueva
// del mismo caller antes de completarse. Su resultado se descarta: una
// respuesta tardía de un snapshot viejo nunca pisa estado más nuevo.
var ErrSuperseded = errors.New("search superseded by newer query")

type FetchFunc func(ctx context.Context, f adoption.PetFilter) ([]adoption.Pet, error)

// Searcher coordina el listado filtrado de mascotas:
//   - texto libre se debouncea por caller (generation counter);
//   - fetches idénticos concurrentes colapsan en uno (singleflight);
//   - cambios de filtro sin texto (el select de status) van directo.
type Searcher struct {
	fetch    FetchFunc
	debounce time.Duration

	mu   sync.Mutex
	gens map[string]uint64

	sf singleflight.Group
}

func NewSearcher(fetch FetchFunc, debounce time.Duration) *Searcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Searcher{
		fetch:    fetch,
		debounce: debounce,
		gens:     make(map[string]uint64),
	}
}

// Search resuelve el listado para el snapshot de filtros f. callerKey
// identifica a quién tipea (token de sesión o IP); el debounce y el
// descarte de respuestas viejas son por caller.
func (s *Searcher) Search(ctx context.Context, callerKey string, f adoption.PetFilter) ([]adoption.Pet, error) {
	f.Search = strings.TrimSpace(f.Search)

	if f.Search == "" {
		return s.fetchShared(ctx, f)
	}

	gen := s.bump(callerKey)

	timer := time.NewTimer(s.debounce)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	// Llegó otra consulta durante la ventana: esta quedó vieja y no
	// dispara fetch.
	if !s.isCurrent(callerKey, gen) {
		return nil, ErrSuperseded
	}

	items, err := s.fetchShared(ctx, f)
	if err != nil {
		return nil, err
	}

	// Guard de respuesta tardía: si mientras el fetch estaba en vuelo
	// entró una consulta más nueva, este resultado ya no representa el
	// snapshot vigente.
	if !s.isCurrent(callerKey, gen) {
		return nil, ErrSuperseded
	}
	return items, nil
}

func (s *Searcher) bump(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[key]++
	return s.gens[key]
}

func (s *Searcher) isCurrent(key string, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[key] == gen
}

func (s *Searcher) fetchShared(ctx context.Context, f adoption.PetFilter) ([]adoption.Pet, error) {
	// El vuelo compartido corre desacoplado del contexto del caller que lo
	// inició: si ese caller abandona, los demás que colapsaron en el mismo
	// vuelo siguen esperando su resultado. El que abandona corta por el
	// select de abajo sin tocar el vuelo.
	ch := s.sf.DoChan(filterKey(f), func() (any, error) {
		return s.fetch(context.WithoutCancel(ctx), f)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		items, ok := res.Val.([]adoption.Pet)
		if !ok {
			return nil, errors.New("searcher: unexpected fetch result type")
		}
		return items, nil
	}
}

func filterKey(f adoption.PetFilter) string {
	return fmt.Sprintf("%s|%s|%d", strings.ToLower(f.Search), f.Status, f.ShelterID)
}
