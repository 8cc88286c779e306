package router

import (
	"database/sql"
	"net/http"

	mem "pet-registry/internal/adapters/storage/memory"
	pg "pet-registry/internal/adapters/storage/postgres"
	"pet-registry/internal/domain/pets"
	"pet-registry/internal/middleware"
	"pet-registry/internal/platform/logger"
	"pet-registry/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-registry/docs" // registra la spec swagger
)

type Options struct {
	AuthVerifier auth.AuthVerifier // nil => modo dev (X-Debug-User-ID)

	// DB opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger logger.Logger // nil => sin logs de wiring
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var petRepo pets.Repository
	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
	} else {
		petRepo = mem.NewPetRepo()
	}

	if opts.Logger != nil {
		storage := "memory"
		if opts.DB != nil {
			storage = "postgres"
		}
		opts.Logger.Info("router ready", map[string]any{
			"storage":  storage,
			"dev_auth": opts.AuthVerifier == nil,
		})
	}

	petsSvc := pets.NewService(petRepo)
	pets.RegisterRoutes(r, petsSvc)

	return r
}
