package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spoolkeep/spoolkeep-backend/internal/bulk"
	"github.com/spoolkeep/spoolkeep-backend/internal/config"
	"github.com/spoolkeep/spoolkeep-backend/internal/domain"
	"github.com/spoolkeep/spoolkeep-backend/pkg/ctxutil"
)

// DiameterSet implements the diameter catalog business logic.
type DiameterSet struct {
	log  *slog.Logger
	repo diameterRepo
	cfg  config.InventoryConfig
}

// NewDiameterSet creates the diameter catalog service.
func NewDiameterSet(log *slog.Logger, repo diameterRepo, cfg config.InventoryConfig) *DiameterSet {
	return &DiameterSet{
		log:  log.With("service", "diameter"),
		repo: repo,
		cfg:  cfg,
	}
}

// CreateDiameterInput holds the parameters for creating a diameter.
type CreateDiameterInput struct {
	Value float64 `json:"value"`
}

// Create validates and persists one diameter.
func (s *DiameterSet) Create(ctx context.Context, input CreateDiameterInput) (domain.Diameter, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Diameter{}, domain.ErrUnauthorized
	}

	draft := domain.Diameter{UserID: userID, Value: input.Value}
	if err := draft.Validate(); err != nil {
		return domain.Diameter{}, err
	}

	created, err := s.repo.Create(ctx, draft)
	if err != nil {
		return domain.Diameter{}, fmt.Errorf("create diameter: %w", err)
	}
	return created, nil
}

// Get returns one diameter scoped to the authenticated owner.
func (s *DiameterSet) Get(ctx context.Context, id int64) (domain.Diameter, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Diameter{}, domain.ErrUnauthorized
	}
	return s.repo.GetByID(ctx, userID, id)
}

// List returns the owner's diameters.
func (s *DiameterSet) List(ctx context.Context) ([]domain.Diameter, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.List(ctx, userID)
}

// Update applies a partial patch to one diameter.
func (s *DiameterSet) Update(ctx context.Context, id int64, patch domain.DiameterPatch) (domain.Diameter, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Diameter{}, domain.ErrUnauthorized
	}

	if patch.IsEmpty() {
		return domain.Diameter{}, domain.NewValidationError("updates", "no fields to update")
	}
	if err := patch.Validate(); err != nil {
		return domain.Diameter{}, err
	}

	return s.repo.Update(ctx, userID, id, patch)
}

// Delete removes one diameter.
func (s *DiameterSet) Delete(ctx context.Context, id int64) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	deleted, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("delete diameter: %w", err)
	}
	if !deleted {
		return fmt.Errorf("diameter %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Import runs a bulk import from CSV or JSON text. A diameter row is a
// single numeric value.
func (s *DiameterSet) Import(ctx context.Context, input ImportInput) (bulk.Result, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return bulk.Result{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return bulk.Result{}, err
	}

	p := bulk.Pipeline[domain.Diameter]{
		Columns:  []string{"value"},
		Required: []string{"value"},
		MaxRows:  s.cfg.ImportMaxRows,
		Key: func(vals map[string]string) string {
			v, err := strconv.ParseFloat(strings.TrimSpace(vals["value"]), 64)
			if err != nil {
				return strings.TrimSpace(vals["value"])
			}
			return domain.Diameter{Value: v}.Key()
		},
		Build: func(vals map[string]string) (domain.Diameter, error) {
			v, err := strconv.ParseFloat(strings.TrimSpace(vals["value"]), 64)
			if err != nil {
				return domain.Diameter{}, domain.NewValidationError("value", "must be a number")
			}
			draft := domain.Diameter{UserID: userID, Value: v}
			if err := draft.Validate(); err != nil {
				return domain.Diameter{}, err
			}
			return draft, nil
		},
		Index: func(ctx context.Context) (map[string]struct{}, error) {
			existing, err := s.repo.List(ctx, userID)
			if err != nil {
				return nil, err
			}
			index := make(map[string]struct{}, len(existing))
			for _, d := range existing {
				index[d.Key()] = struct{}{}
			}
			return index, nil
		},
		Create: func(ctx context.Context, draft domain.Diameter) error {
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

// ExportCSV renders the owner's diameters as a CSV document.
func (s *DiameterSet) ExportCSV(ctx context.Context) (string, error) {
	diameters, err := s.List(ctx)
	if err != nil {
		return "", err
	}

	rows := make([][]string, len(diameters))
	for i, d := range diameters {
		rows[i] = []string{strconv.FormatFloat(d.Value, 'f', -1, 64)}
	}
	return bulk.Document([]string{"Value"}, rows), nil
}

// ExportJSON renders the owner's diameters as a pretty-printed array.
func (s *DiameterSet) ExportJSON(ctx context.Context) ([]byte, error) {
	diameters, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return bulk.PrettyJSON(diameters)
}

// BatchUpdateDiameterInput is the strict batch-update schema for diameters.
type BatchUpdateDiameterInput struct {
	IDs     []any                 `json:"ids"`
	Updates *domain.DiameterPatch `json:"updates"`
}

// Validate rejects malformed bodies before any id is touched.
func (i BatchUpdateDiameterInput) Validate(maxIDs int) error {
	if err := validateIDList(i.IDs, maxIDs); err != nil {
		return err
	}
	if i.Updates == nil || i.Updates.IsEmpty() {
		return domain.NewValidationError("updates", "required")
	}
	return i.Updates.Validate()
}

// BatchUpdate applies one patch to every id with per-id isolation.
func (s *DiameterSet) BatchUpdate(ctx context.Context, input BatchUpdateDiameterInput) (bulk.BatchResult[domain.Diameter], error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return bulk.BatchResult[domain.Diameter]{}, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.BatchMaxIDs); err != nil {
		return bulk.BatchResult[domain.Diameter]{}, err
	}

	ids := bulk.ParseIDs(input.IDs)

	res := bulk.Run(ctx, ids, func(ctx context.Context, id int64) (domain.Diameter, bool, error) {
		updated, err := s.repo.Update(ctx, userID, id, *input.Updates)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Diameter{}, false, nil
		}
		if err != nil {
			return domain.Diameter{}, false, err
		}
		return updated, true, nil
	})

	s.log.Info("batch update finished",
		"updated", len(res.Success), "skipped", len(res.Skipped), "failed", len(res.Failed))

	return res, nil
}

// BatchDelete removes every id with per-id isolation.
func (s *DiameterSet) BatchDelete(ctx context.Context, input BatchDeleteInput) (bulk.BatchResult[int64], error) {
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
