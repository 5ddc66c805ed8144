package filament

import (
	"context"
	"errors"

	"github.com/spoolkeep/spoolkeep-backend/internal/bulk"
	"github.com/spoolkeep/spoolkeep-backend/internal/domain"
	"github.com/spoolkeep/spoolkeep-backend/pkg/ctxutil"
)

// BatchUpdate applies one partial-field patch to every id in the request.
// Per-id isolation: a failed update is recorded and processing continues;
// a missing record is tagged Skipped, not failed. Nothing is rolled back.
func (s *Service) BatchUpdate(ctx context.Context, input BatchUpdateInput) (bulk.BatchResult[domain.Filament], error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return bulk.BatchResult[domain.Filament]{}, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.BatchMaxIDs); err != nil {
		return bulk.BatchResult[domain.Filament]{}, err
	}

	ids := bulk.ParseIDs(input.IDs)

	res := bulk.Run(ctx, ids, func(ctx context.Context, id int64) (domain.Filament, bool, error) {
		updated, err := s.filaments.Update(ctx, userID, id, *input.Updates)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Filament{}, false, nil
		}
		if err != nil {
			return domain.Filament{}, false, err
		}
		return updated, true, nil
	})

	s.log.Info("filament batch update finished",
		"updated", len(res.Success), "skipped", len(res.Skipped), "failed", len(res.Failed))

	return res, nil
}

// BatchDelete removes every id in the request. Deleting a nonexistent id
// is tagged Skipped and the call does not fail.
func (s *Service) BatchDelete(ctx context.Context, input BatchDeleteInput) (bulk.BatchResult[int64], error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return bulk.BatchResult[int64]{}, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.BatchMaxIDs); err != nil {
		return bulk.BatchResult[int64]{}, err
	}

	ids := bulk.ParseIDs(input.IDs)

	res := bulk.Run(ctx, ids, func(ctx context.Context, id int64) (int64, bool, error) {
		deleted, err := s.filaments.Delete(ctx, userID, id)
		if err != nil {
			return 0, false, err
		}
		return id, deleted, nil
	})

	s.log.Info("filament batch delete finished",
		"deleted", len(res.Success), "skipped", len(res.Skipped), "failed", len(res.Failed))

	return res, nil
}
