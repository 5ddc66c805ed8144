// Package catalog implements the business logic for the lookup entities
// surrounding the inventory: manufacturers, materials, storage locations,
// colors, and diameters. Each set carries the same operation surface as
// the filament service (CRUD + import + export + batch mutation) over a
// much smaller shape.
package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/spoolkeep/spoolkeep-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type namedRepo interface {
	Create(ctx context.Context, item domain.NamedItem) (domain.NamedItem, error)
	GetByID(ctx context.Context, userID uuid.UUID, id int64) (domain.NamedItem, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.NamedItem, error)
	Update(ctx context.Context, userID uuid.UUID, id int64, patch domain.NamedItemPatch) (domain.NamedItem, error)
	Delete(ctx context.Context, userID uuid.UUID, id int64) (bool, error)
}

type colorRepo interface {
	Create(ctx context.Context, c domain.Color) (domain.Color, error)
	GetByID(ctx context.Context, userID uuid.UUID, id int64) (domain.Color, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Color, error)
	Update(ctx context.Context, userID uuid.UUID, id int64, patch domain.ColorPatch) (domain.Color, error)
	Delete(ctx context.Context, userID uuid.UUID, id int64) (bool, error)
}

type diameterRepo interface {
	Create(ctx context.Context, d domain.Diameter) (domain.Diameter, error)
	GetByID(ctx context.Context, userID uuid.UUID, id int64) (domain.Diameter, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Diameter, error)
	Update(ctx context.Context, userID uuid.UUID, id int64, patch domain.DiameterPatch) (domain.Diameter, error)
	Delete(ctx context.Context, userID uuid.UUID, id int64) (bool, error)
}
