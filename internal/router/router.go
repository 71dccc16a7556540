package router

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	mem "pet-adoption-web/internal/adapters/storage/memory"
	pg "pet-adoption-web/internal/adapters/storage/postgres"
	"pet-adoption-web/internal/domain/adoptions"
	"pet-adoption-web/internal/domain/pets"
	"pet-adoption-web/internal/domain/session"
	"pet-adoption-web/internal/domain/shelters"
	"pet-adoption-web/internal/domain/users"
	"pet-adoption-web/internal/middleware"
	"pet-adoption-web/internal/platform/logger"
	"pet-adoption-web/internal/ports/adoption"

	_ "pet-adoption-web/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Remote es el cliente hacia la API de adopciones.
	Remote adoption.Client

	Logger logger.Logger

	// Opcional: si viene, guarda sesiones en Postgres. Si no, in-memory.
	DB *sql.DB

	// SearchDebounce: 0 usa el default del buscador.
	SearchDebounce time.Duration
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	var sessionRepo session.Repository

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, using in-memory sessions", map[string]any{"err": err.Error()})
			}
		}
	}

	if db != nil {
		sessionRepo = pg.NewSessionsRepo(db)
	} else {
		sessionRepo = mem.NewSessionsRepo()
	}

	// Services por módulo
	sessionSvc := session.NewService(sessionRepo, opts.Remote, log)
	petsSvc := pets.NewService(opts.Remote, opts.Remote, log, opts.SearchDebounce)
	sheltersSvc := shelters.NewService(opts.Remote, log)
	adoptionsSvc := adoptions.NewService(opts.Remote, log)
	usersSvc := users.NewService(opts.Remote, log)

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionContext(sessionSvc))

		// Rutas públicas: listado y detalle no requieren sesión.
		session.RegisterRoutes(r, sessionSvc)
		pets.RegisterRoutes(r, petsSvc)
		shelters.RegisterRoutes(r, sheltersSvc)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			adoptions.RegisterRoutes(r, adoptionsSvc)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			pets.RegisterAdminRoutes(r, petsSvc)
			shelters.RegisterAdminRoutes(r, sheltersSvc)
			adoptions.RegisterAdminRoutes(r, adoptionsSvc)
			users.RegisterAdminRoutes(r, usersSvc)
		})
	})

	return r
}
