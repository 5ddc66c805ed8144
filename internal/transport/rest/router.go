package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/spoolkeep/spoolkeep-backend/internal/config"
	"github.com/spoolkeep/spoolkeep-backend/internal/transport/middleware"
)

// Handlers groups the per-entity handlers mounted by the router.
type Handlers struct {
	Health           *HealthHandler
	Filaments        *FilamentHandler
	Manufacturers    *NamedHandler
	Materials        *NamedHandler
	StorageLocations *NamedHandler
	Colors           *ColorHandler
	Diameters        *DiameterHandler
}

// NewRouter assembles the full HTTP routing tree: health probes at the
// root, entity routes under /api/v1, the shared middleware chain on top.
func NewRouter(h Handlers, validator middleware.TokenValidator, logger *slog.Logger, cors config.CORSConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cors),
		middleware.Auth(validator),
	)

	r.Get("/health", h.Health.Health)
	r.Get("/health/live", h.Health.Live)
	r.Get("/health/ready", h.Health.Ready)

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/filaments", h.Filaments.Routes())
		r.Mount("/manufacturers", h.Manufacturers.Routes())
		r.Mount("/materials", h.Materials.Routes())
		r.Mount("/storage-locations", h.StorageLocations.Routes())
		r.Mount("/colors", h.Colors.Routes())
		r.Mount("/diameters", h.Diameters.Routes())
	})

	return r
}
