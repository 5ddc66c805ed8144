package filament

import (
	"context"
	"strconv"

	"github.com/spoolkeep/spoolkeep-backend/internal/bulk"
	"github.com/spoolkeep/spoolkeep-backend/internal/domain"
	"github.com/spoolkeep/spoolkeep-backend/pkg/ctxutil"
)

// exportHeader is the fixed CSV field order. The names match the import
// column set case-insensitively, so an export re-imports cleanly.
var exportHeader = []string{
	"Name", "Material", "ColorName", "ColorCode", "Manufacturer",
	"Diameter", "TotalWeight", "RemainingPercentage", "Location", "Price",
	"PurchaseDate", "OpenedDate", "LastDriedDate", "DryerCount",
	"LotNumber", "Notes",
}

// ExportCSV renders the owner's inventory as a CSV document.
func (s *Service) ExportCSV(ctx context.Context) (string, error) {
	filaments, err := s.listForExport(ctx)
	if err != nil {
		return "", err
	}

	rows := make([][]string, len(filaments))
	for i, f := range filaments {
		rows[i] = []string{
			f.Name,
			f.Material,
			f.ColorName,
			strOrEmpty(f.ColorCode),
			strOrEmpty(f.Manufacturer),
			formatFloat(f.Diameter),
			formatFloat(f.TotalWeight),
			formatFloat(f.RemainingPercentage),
			strOrEmpty(f.Location),
			floatOrEmpty(f.Price),
			strOrEmpty(f.PurchaseDate),
			strOrEmpty(f.OpenedDate),
			strOrEmpty(f.LastDriedDate),
			strconv.Itoa(f.DryerCount),
			strOrEmpty(f.LotNumber),
			strOrEmpty(f.Notes),
		}
	}

	return bulk.Document(exportHeader, rows), nil
}

// ExportJSON renders the owner's inventory as a pretty-printed array.
func (s *Service) ExportJSON(ctx context.Context) ([]byte, error) {
	filaments, err := s.listForExport(ctx)
	if err != nil {
		return nil, err
	}
	return bulk.PrettyJSON(filaments)
}

func (s *Service) listForExport(ctx context.Context) ([]domain.Filament, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	filaments, err := s.filaments.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s.cfg.ExportMaxRows > 0 && len(filaments) > s.cfg.ExportMaxRows {
		return nil, domain.NewValidationError("export", "export exceeds row limit")
	}
	return filaments, nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatOrEmpty(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
