// Package filament implements the inventory business logic: CRUD on
// spools plus the bulk import/export and batch-mutation operations.
package filament

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/spoolkeep/spoolkeep-backend/internal/config"
	"github.com/spoolkeep/spoolkeep-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type filamentRepo interface {
	Create(ctx context.Context, f domain.Filament) (domain.Filament, error)
	GetByID(ctx context.Context, userID uuid.UUID, id int64) (domain.Filament, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Filament, error)
	Update(ctx context.Context, userID uuid.UUID, id int64, patch domain.FilamentPatch) (domain.Filament, error)
	Delete(ctx context.Context, userID uuid.UUID, id int64) (bool, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the filament inventory business logic.
type Service struct {
	log       *slog.Logger
	filaments filamentRepo
	cfg       config.InventoryConfig
}

// NewService creates a new Filament service.
func NewService(log *slog.Logger, filaments filamentRepo, cfg config.InventoryConfig) *Service {
	return &Service{
		log:       log.With("service", "filament"),
		filaments: filaments,
		cfg:       cfg,
	}
}
