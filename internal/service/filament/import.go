package filament

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/spoolkeep/spoolkeep-backend/internal/bulk"
	"github.com/spoolkeep/spoolkeep-backend/internal/domain"
	"github.com/spoolkeep/spoolkeep-backend/pkg/ctxutil"
)

// Numeric defaults applied when an import row or create payload leaves
// the field unspecified.
const (
	defaultDiameter    = 1.75
	defaultTotalWeight = 1
	defaultRemaining   = 100
)

// importColumns is the positional default layout for headerless input
// and the expected column set for header detection. 16 columns.
var importColumns = []string{
	"name", "material", "colorname", "colorcode", "manufacturer",
	"diameter", "totalweight", "remainingpercentage", "location", "price",
	"purchasedate", "openeddate", "lastdrieddate", "dryercount",
	"lotnumber", "notes",
}

var importRequired = []string{"name", "material", "colorname"}

// Import runs a bulk import from CSV or JSON text and returns the
// aggregate result. Per-row failures never abort the run.
func (s *Service) Import(ctx context.Context, input ImportInput) (bulk.Result, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return bulk.Result{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return bulk.Result{}, err
	}

	p := s.pipeline(userID)

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

	s.log.Info("filament import finished",
		"created", res.Created, "duplicates", res.Duplicates, "errors", res.Errors)

	return res, nil
}

// pipeline instantiates the generic import algorithm for filaments.
func (s *Service) pipeline(userID uuid.UUID) bulk.Pipeline[domain.Filament] {
	return bulk.Pipeline[domain.Filament]{
		Columns:  importColumns,
		Required: importRequired,
		MaxRows:  s.cfg.ImportMaxRows,
		Key: func(vals map[string]string) string {
			return domain.Normalize(vals["name"])
		},
		Build: func(vals map[string]string) (domain.Filament, error) {
			return buildDraft(userID, vals)
		},
		Index: func(ctx context.Context) (map[string]struct{}, error) {
			existing, err := s.filaments.List(ctx, userID)
			if err != nil {
				return nil, err
			}
			index := make(map[string]struct{}, len(existing))
			for _, f := range existing {
				index[f.Key()] = struct{}{}
			}
			return index, nil
		},
		Create: func(ctx context.Context, draft domain.Filament) error {
			_, err := s.filaments.Create(ctx, draft)
			return err
		},
	}
}

// buildDraft turns extracted row values into a validated filament draft.
// Date-like fields pass through unparsed.
func buildDraft(userID uuid.UUID, vals map[string]string) (domain.Filament, error) {
	diameter, err := floatOrDefault(vals["diameter"], defaultDiameter)
	if err != nil {
		return domain.Filament{}, domain.NewValidationError("diameter", "must be a number")
	}
	totalWeight, err := floatOrDefault(vals["totalweight"], defaultTotalWeight)
	if err != nil {
		return domain.Filament{}, domain.NewValidationError("totalWeight", "must be a number")
	}
	remaining, err := floatOrDefault(vals["remainingpercentage"], defaultRemaining)
	if err != nil {
		return domain.Filament{}, domain.NewValidationError("remainingPercentage", "must be a number")
	}
	dryerCount, err := intOrDefault(vals["dryercount"], 0)
	if err != nil {
		return domain.Filament{}, domain.NewValidationError("dryerCount", "must be an integer")
	}

	price, err := optionalFloat(vals["price"])
	if err != nil {
		return domain.Filament{}, domain.NewValidationError("price", "must be a number")
	}

	var colorCode *string
	if code := domain.NormalizeColorCode(vals["colorcode"]); code != "" {
		colorCode = &code
	}

	f := domain.Filament{
		UserID:              userID,
		Name:                strings.TrimSpace(vals["name"]),
		Material:            strings.TrimSpace(vals["material"]),
		ColorName:           strings.TrimSpace(vals["colorname"]),
		ColorCode:           colorCode,
		Manufacturer:        optionalString(vals["manufacturer"]),
		Diameter:            diameter,
		TotalWeight:         totalWeight,
		RemainingPercentage: remaining,
		Location:            optionalString(vals["location"]),
		Price:               price,
		PurchaseDate:        optionalString(vals["purchasedate"]),
		OpenedDate:          optionalString(vals["openeddate"]),
		LastDriedDate:       optionalString(vals["lastdrieddate"]),
		DryerCount:          dryerCount,
		LotNumber:           optionalString(vals["lotnumber"]),
		Notes:               optionalString(vals["notes"]),
	}

	if err := f.Validate(); err != nil {
		return domain.Filament{}, err
	}
	return f, nil
}

func floatOrDefault(raw string, def float64) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func intOrDefault(raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func optionalFloat(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func optionalString(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return &raw
}
