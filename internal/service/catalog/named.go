package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spoolkeep/spoolkeep-backend/internal/bulk"
	"github.com/spoolkeep/spoolkeep-backend/internal/config"
	"github.com/spoolkeep/spoolkeep-backend/internal/domain"
	"github.com/spoolkeep/spoolkeep-backend/pkg/ctxutil"
)

// NamedSet implements the business logic for one name-only catalog:
// manufacturers, materials, or storage locations.
type NamedSet struct {
	log    *slog.Logger
	repo   namedRepo
	entity string
	cfg    config.InventoryConfig
}

// NewNamedSet creates a service over one name-only catalog.
// entity names the kind in logs and error messages ("manufacturer", ...).
func NewNamedSet(log *slog.Logger, repo namedRepo, entity string, cfg config.InventoryConfig) *NamedSet {
	return &NamedSet{
		log:    log.With("service", entity),
		repo:   repo,
		entity: entity,
		cfg:    cfg,
	}
}

// CreateNamedInput holds the parameters for creating a named item.
type CreateNamedInput struct {
	Name string `json:"name"`
}

// Create validates and persists one item.
func (s *NamedSet) Create(ctx context.Context, input CreateNamedInput) (domain.NamedItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.NamedItem{}, domain.ErrUnauthorized
	}

	draft := domain.NamedItem{UserID: userID, Name: strings.TrimSpace(input.Name)}
	if err := draft.Validate(); err != nil {
		return domain.NamedItem{}, err
	}

	created, err := s.repo.Create(ctx, draft)
	if err != nil {
		return domain.NamedItem{}, fmt.Errorf("create %s: %w", s.entity, err)
	}
	return created, nil
}

// Get returns one item scoped to the authenticated owner.
func (s *NamedSet) Get(ctx context.Context, id int64) (domain.NamedItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.NamedItem{}, domain.ErrUnauthorized
	}
	return s.repo.GetByID(ctx, userID, id)
}

// List returns the owner's full catalog.
func (s *NamedSet) List(ctx context.Context) ([]domain.NamedItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.List(ctx, userID)
}

// Update applies a partial patch to one item.
func (s *NamedSet) Update(ctx context.Context, id int64, patch domain.NamedItemPatch) (domain.NamedItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.NamedItem{}, domain.ErrUnauthorized
	}

	if patch.IsEmpty() {
		return domain.NamedItem{}, domain.NewValidationError("updates", "no fields to update")
	}
	if err := patch.Validate(); err != nil {
		return domain.NamedItem{}, err
	}

	return s.repo.Update(ctx, userID, id, patch)
}

// Delete removes one item.
func (s *NamedSet) Delete(ctx context.Context, id int64) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	deleted, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", s.entity, err)
	}
	if !deleted {
		return fmt.Errorf("%s %d: %w", s.entity, id, domain.ErrNotFound)
	}
	return nil
}

// Import runs a bulk import from CSV or JSON text.
func (s *NamedSet) Import(ctx context.Context, input ImportInput) (bulk.Result, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return bulk.Result{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return bulk.Result{}, err
	}

	p := bulk.Pipeline[domain.NamedItem]{
		Columns:  []string{"name"},
		Required: []string{"name"},
		MaxRows:  s.cfg.ImportMaxRows,
		Key: func(vals map[string]string) string {
			return domain.Normalize(vals["name"])
		},
		Build: func(vals map[string]string) (domain.NamedItem, error) {
			draft := domain.NamedItem{UserID: userID, Name: strings.TrimSpace(vals["name"])}
			if err := draft.Validate(); err != nil {
				return domain.NamedItem{}, err
			}
			return draft, nil
		},
		Index: func(ctx context.Context) (map[string]struct{}, error) {
			existing, err := s.repo.List(ctx, userID)
			if err != nil {
				return nil, err
			}
			index := make(map[string]struct{}, len(existing))
			for _, item := range existing {
				index[item.Key()] = struct{}{}
			}
			return index, nil
		},
		Create: func(ctx context.Context, draft domain.NamedItem) error {
			_, err := s.repo.Create(ctx, draft)
			return err
		},
	}

	var (
		res bulk.Result
		err error
	)
	if input.CSVData != nil {
		res, err = p.RunCSV(ctx, *input.CSVData)
	} else {
		res, err = p.RunJSON(ctx, *input.JSONData)
	}
	if err != nil {
		return bulk.Result{}, err
	}

	s.log.Info("import finished",
		"created", res.Created, "duplicates", res.Duplicates, "errors", res.Errors)

	return res, nil
}

// ExportCSV renders the owner's catalog as a CSV document.
func (s *NamedSet) ExportCSV(ctx context.Context) (string, error) {
	items, err := s.List(ctx)
	if err != nil {
		return "", err
	}

	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = []string{item.Name}
	}
	return bulk.Document([]string{"Name"}, rows), nil
}

// ExportJSON renders the owner's catalog as a pretty-printed array.
func (s *NamedSet) ExportJSON(ctx context.Context) ([]byte, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return bulk.PrettyJSON(items)
}

// BatchUpdateNamedInput is the strict batch-update schema for named items.
type BatchUpdateNamedInput struct {
	IDs     []any                  `json:"ids"`
	Updates *domain.NamedItemPatch `json:"updates"`
}

// Validate rejects malformed bodies before any id is touched.
func (i BatchUpdateNamedInput) Validate(maxIDs int) error {
	if err := validateIDList(i.IDs, maxIDs); err != nil {
		return err
	}
	if i.Updates == nil || i.Updates.IsEmpty() {
		return domain.NewValidationError("updates", "required")
	}
	return i.Updates.Validate()
}

// BatchUpdate applies one patch to every id with per-id isolation.
func (s *NamedSet) BatchUpdate(ctx context.Context, input BatchUpdateNamedInput) (bulk.BatchResult[domain.NamedItem], error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return bulk.BatchResult[domain.NamedItem]{}, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.BatchMaxIDs); err != nil {
		return bulk.BatchResult[domain.NamedItem]{}, err
	}

	ids := bulk.ParseIDs(input.IDs)

	res := bulk.Run(ctx, ids, func(ctx context.Context, id int64) (domain.NamedItem, bool, error) {
		updated, err := s.repo.Update(ctx, userID, id, *input.Updates)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NamedItem{}, false, nil
		}
		if err != nil {
			return domain.NamedItem{}, false, err
		}
		return updated, true, nil
	})

	s.log.Info("batch update finished",
		"updated", len(res.Success), "skipped", len(res.Skipped), "failed", len(res.Failed))

	return res, nil
}

// BatchDelete removes every id with per-id isolation; a nonexistent id
// is tagged Skipped and the call does not fail.
func (s *NamedSet) BatchDelete(ctx context.Context, input BatchDeleteInput) (bulk.BatchResult[int64], error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return bulk.BatchResult[int64]{}, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.BatchMaxIDs); err != nil {
		return bulk.BatchResult[int64]{}, err
	}

	ids := bulk.ParseIDs(input.IDs)

	res := bulk.Run(ctx, ids, func(ctx context.Context, id int64) (int64, bool, error) {
		deleted, err := s.repo.Delete(ctx, userID, id)
		if err != nil {
			return 0, false, err
		}
		return id, deleted, nil
	})

	s.log.Info("batch delete finished",
		"deleted", len(res.Success), "skipped", len(res.Skipped), "failed", len(res.Failed))

	return res, nil
}
