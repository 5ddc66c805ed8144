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

// ColorSet implements the color catalog business logic.
type ColorSet struct {
	log  *slog.Logger
	repo colorRepo
	cfg  config.InventoryConfig
}

// NewColorSet creates the color catalog service.
func NewColorSet(log *slog.Logger, repo colorRepo, cfg config.InventoryConfig) *ColorSet {
	return &ColorSet{
		log:  log.With("service", "color"),
		repo: repo,
		cfg:  cfg,
	}
}

// CreateColorInput holds the parameters for creating a color.
type CreateColorInput struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Create validates and persists one color. A bare hex code gets its '#'
// prefix before validation.
func (s *ColorSet) Create(ctx context.Context, input CreateColorInput) (domain.Color, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Color{}, domain.ErrUnauthorized
	}

	draft := domain.Color{
		UserID: userID,
		Name:   strings.TrimSpace(input.Name),
		Code:   domain.NormalizeColorCode(input.Code),
	}
	if err := draft.Validate(); err != nil {
		return domain.Color{}, err
	}

	created, err := s.repo.Create(ctx, draft)
	if err != nil {
		return domain.Color{}, fmt.Errorf("create color: %w", err)
	}
	return created, nil
}

// Get returns one color scoped to the authenticated owner.
func (s *ColorSet) Get(ctx context.Context, id int64) (domain.Color, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Color{}, domain.ErrUnauthorized
	}
	return s.repo.GetByID(ctx, userID, id)
}

// List returns the owner's full color catalog.
func (s *ColorSet) List(ctx context.Context) ([]domain.Color, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.List(ctx, userID)
}

// Update applies a partial patch to one color.
func (s *ColorSet) Update(ctx context.Context, id int64, patch domain.ColorPatch) (domain.Color, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Color{}, domain.ErrUnauthorized
	}

	if patch.IsEmpty() {
		return domain.Color{}, domain.NewValidationError("updates", "no fields to update")
	}
	if patch.Code != nil {
		code := domain.NormalizeColorCode(*patch.Code)
		patch.Code = &code
	}
	if err := patch.Validate(); err != nil {
		return domain.Color{}, err
	}

	return s.repo.Update(ctx, userID, id, patch)
}

// Delete removes one color.
func (s *ColorSet) Delete(ctx context.Context, id int64) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	deleted, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("delete color: %w", err)
	}
	if !deleted {
		return fmt.Errorf("color %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// colorDraft resolves the 2-field/3-field ambiguity into a final display
// name and prefixed code. The 3-field form ("brand, colorName, hexCode")
// synthesizes the display name "<colorName> (<brand>)".
func colorDraft(vals map[string]string) (name, code string) {
	name = strings.TrimSpace(vals["name"])
	if cn := strings.TrimSpace(vals["colorname"]); cn != "" {
		name = cn
	}
	if brand := strings.TrimSpace(vals["brand"]); brand != "" && name != "" {
		name = fmt.Sprintf("%s (%s)", name, brand)
	}

	code = strings.TrimSpace(vals["code"])
	if hex := strings.TrimSpace(vals["hexcode"]); hex != "" {
		code = hex
	}
	code = domain.NormalizeColorCode(code)
	return name, code
}

// extractColor maps raw CSV fields for the two accepted positional forms:
// "name, code" (2 fields) and "brand, colorName, hexCode" (3+ fields).
// Headered input uses the column map as usual.
func extractColor(fields []string, layout bulk.Layout) map[string]string {
	vals := make(map[string]string, 3)

	if layout.Headered() {
		for _, col := range []string{"name", "code", "brand", "colorname", "hexcode"} {
			if idx, ok := layout.Columns[col]; ok && idx < len(fields) {
				vals[col] = fields[idx]
			}
		}
		return vals
	}

	switch {
	case len(fields) >= 3:
		vals["brand"] = fields[0]
		vals["colorname"] = fields[1]
		vals["code"] = fields[2]
	case len(fields) == 2:
		vals["name"] = fields[0]
		vals["code"] = fields[1]
	case len(fields) == 1:
		vals["name"] = fields[0]
	}
	return vals
}

// Import runs a bulk import from CSV or JSON text.
func (s *ColorSet) Import(ctx context.Context, input ImportInput) (bulk.Result, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return bulk.Result{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return bulk.Result{}, err
	}

	p := bulk.Pipeline[domain.Color]{
		Columns:  []string{"name", "code", "brand", "colorname", "hexcode"},
		Required: []string{}, // the 2/3-field forms make per-column checks misleading
		Extract:  extractColor,
		MaxRows:  s.cfg.ImportMaxRows,
		Key: func(vals map[string]string) string {
			name, code := colorDraft(vals)
			return domain.Color{Name: name, Code: code}.Key()
		},
		Build: func(vals map[string]string) (domain.Color, error) {
			name, code := colorDraft(vals)
			draft := domain.Color{UserID: userID, Name: name, Code: code}
			if err := draft.Validate(); err != nil {
				return domain.Color{}, err
			}
			return draft, nil
		},
		Index: func(ctx context.Context) (map[string]struct{}, error) {
			existing, err := s.repo.List(ctx, userID)
			if err != nil {
				return nil, err
			}
			index := make(map[string]struct{}, len(existing))
			for _, c := range existing {
				index[c.Key()] = struct{}{}
			}
			return index, nil
		},
		Create: func(ctx context.Context, draft domain.Color) error {
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

// ExportCSV renders the owner's colors as a CSV document.
func (s *ColorSet) ExportCSV(ctx context.Context) (string, error) {
	colors, err := s.List(ctx)
	if err != nil {
		return "", err
	}

	rows := make([][]string, len(colors))
	for i, c := range colors {
		rows[i] = []string{c.Name, c.Code}
	}
	return bulk.Document([]string{"Name", "Code"}, rows), nil
}

// ExportJSON renders the owner's colors as a pretty-printed array.
func (s *ColorSet) ExportJSON(ctx context.Context) ([]byte, error) {
	colors, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return bulk.PrettyJSON(colors)
}

// BatchUpdateColorInput is the strict batch-update schema for colors.
type BatchUpdateColorInput struct {
	IDs     []any              `json:"ids"`
	Updates *domain.ColorPatch `json:"updates"`
}

// Validate rejects malformed bodies before any id is touched.
func (i BatchUpdateColorInput) Validate(maxIDs int) error {
	if err := validateIDList(i.IDs, maxIDs); err != nil {
		return err
	}
	if i.Updates == nil || i.Updates.IsEmpty() {
		return domain.NewValidationError("updates", "required")
	}
	return i.Updates.Validate()
}

// BatchUpdate applies one patch to every id with per-id isolation.
func (s *ColorSet) BatchUpdate(ctx context.Context, input BatchUpdateColorInput) (bulk.BatchResult[domain.Color], error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return bulk.BatchResult[domain.Color]{}, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.BatchMaxIDs); err != nil {
		return bulk.BatchResult[domain.Color]{}, err
	}

	patch := *input.Updates
	if patch.Code != nil {
		code := domain.NormalizeColorCode(*patch.Code)
		patch.Code = &code
	}

	ids := bulk.ParseIDs(input.IDs)

	res := bulk.Run(ctx, ids, func(ctx context.Context, id int64) (domain.Color, bool, error) {
		updated, err := s.repo.Update(ctx, userID, id, patch)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Color{}, false, nil
		}
		if err != nil {
			return domain.Color{}, false, err
		}
		return updated, true, nil
	})

	s.log.Info("batch update finished",
		"updated", len(res.Success), "skipped", len(res.Skipped), "failed", len(res.Failed))

	return res, nil
}

// BatchDelete removes every id with per-id isolation.
func (s *ColorSet) BatchDelete(ctx context.Context, input BatchDeleteInput) (bulk.BatchResult[int64], error) {
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
