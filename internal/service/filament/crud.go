package filament

import (
	"context"
	"fmt"

	"github.com/spoolkeep/spoolkeep-backend/internal/domain"
	"github.com/spoolkeep/spoolkeep-backend/pkg/ctxutil"
)

// Create validates and persists a single filament. Validation failures
// surface as a structured *domain.ValidationError.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Filament, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Filament{}, domain.ErrUnauthorized
	}

	draft := input.toDraft()
	draft.UserID = userID

	if err := draft.Validate(); err != nil {
		return domain.Filament{}, err
	}

	created, err := s.filaments.Create(ctx, draft)
	if err != nil {
		return domain.Filament{}, fmt.Errorf("create filament: %w", err)
	}

	return created, nil
}

// Get returns one filament scoped to the authenticated owner.
func (s *Service) Get(ctx context.Context, id int64) (domain.Filament, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Filament{}, domain.ErrUnauthorized
	}

	return s.filaments.GetByID(ctx, userID, id)
}

// List returns the owner's full inventory.
func (s *Service) List(ctx context.Context) ([]domain.Filament, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.filaments.List(ctx, userID)
}

// Update applies a partial-field patch to one filament. The same patch
// type and merge rule serve the batch-update path.
func (s *Service) Update(ctx context.Context, id int64, patch domain.FilamentPatch) (domain.Filament, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Filament{}, domain.ErrUnauthorized
	}

	if patch.IsEmpty() {
		return domain.Filament{}, domain.NewValidationError("updates", "no fields to update")
	}
	if err := patch.Validate(); err != nil {
		return domain.Filament{}, err
	}

	return s.filaments.Update(ctx, userID, id, patch)
}

// Delete removes one filament. A missing record is ErrNotFound here;
// only the batch path treats it as a silent skip.
func (s *Service) Delete(ctx context.Context, id int64) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	deleted, err := s.filaments.Delete(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("delete filament: %w", err)
	}
	if !deleted {
		return fmt.Errorf("filament %d: %w", id, domain.ErrNotFound)
	}

	return nil
}
