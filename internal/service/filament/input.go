package filament

import (
	"strings"

	"github.com/spoolkeep/spoolkeep-backend/internal/domain"
)

// CreateInput holds the parameters for creating a single filament.
// Optional numeric fields default the same way the import pipeline
// defaults them: totalWeight=1, remainingPercentage=100, dryerCount=0,
// diameter=1.75.
type CreateInput struct {
	Name                string   `json:"name"`
	Material            string   `json:"material"`
	ColorName           string   `json:"colorName"`
	ColorCode           *string  `json:"colorCode"`
	Manufacturer        *string  `json:"manufacturer"`
	Diameter            *float64 `json:"diameter"`
	TotalWeight         *float64 `json:"totalWeight"`
	RemainingPercentage *float64 `json:"remainingPercentage"`
	Location            *string  `json:"location"`
	Price               *float64 `json:"price"`
	PurchaseDate        *string  `json:"purchaseDate"`
	OpenedDate          *string  `json:"openedDate"`
	LastDriedDate       *string  `json:"lastDriedDate"`
	DryerCount          *int     `json:"dryerCount"`
	LotNumber           *string  `json:"lotNumber"`
	Notes               *string  `json:"notes"`
}

// toDraft applies defaults and builds the unvalidated entity draft.
func (i CreateInput) toDraft() domain.Filament {
	f := domain.Filament{
		Name:                strings.TrimSpace(i.Name),
		Material:            strings.TrimSpace(i.Material),
		ColorName:           strings.TrimSpace(i.ColorName),
		ColorCode:           i.ColorCode,
		Manufacturer:        i.Manufacturer,
		Diameter:            defaultDiameter,
		TotalWeight:         defaultTotalWeight,
		RemainingPercentage: defaultRemaining,
		Location:            i.Location,
		Price:               i.Price,
		PurchaseDate:        i.PurchaseDate,
		OpenedDate:          i.OpenedDate,
		LastDriedDate:       i.LastDriedDate,
		LotNumber:           i.LotNumber,
		Notes:               i.Notes,
	}
	if i.Diameter != nil {
		f.Diameter = *i.Diameter
	}
	if i.TotalWeight != nil {
		f.TotalWeight = *i.TotalWeight
	}
	if i.RemainingPercentage != nil {
		f.RemainingPercentage = *i.RemainingPercentage
	}
	if i.DryerCount != nil {
		f.DryerCount = *i.DryerCount
	}
	return f
}

// ImportInput holds a bulk import payload: exactly one of CSVData or
// JSONData must be set.
type ImportInput struct {
	CSVData  *string `json:"csvData"`
	JSONData *string `json:"jsonData"`
}

// Validate rejects malformed import requests before any row is touched.
func (i ImportInput) Validate() error {
	switch {
	case i.CSVData == nil && i.JSONData == nil:
		return domain.NewValidationError("csvData", "either csvData or jsonData is required")
	case i.CSVData != nil && i.JSONData != nil:
		return domain.NewValidationError("csvData", "csvData and jsonData are mutually exclusive")
	}
	return nil
}

// BatchUpdateInput is the single strict batch-update request schema:
// an id array and one partial-field patch applied to every id.
type BatchUpdateInput struct {
	IDs     []any                 `json:"ids"`
	Updates *domain.FilamentPatch `json:"updates"`
}

// Validate rejects malformed bodies before any id is touched.
func (i BatchUpdateInput) Validate(maxIDs int) error {
	if len(i.IDs) == 0 {
		return domain.NewValidationError("ids", "required")
	}
	if maxIDs > 0 && len(i.IDs) > maxIDs {
		return domain.NewValidationError("ids", "too many ids")
	}
	if i.Updates == nil || i.Updates.IsEmpty() {
		return domain.NewValidationError("updates", "required")
	}
	return i.Updates.Validate()
}

// BatchDeleteInput is the batch-delete request schema.
type BatchDeleteInput struct {
	IDs []any `json:"ids"`
}

// Validate rejects malformed bodies before any id is touched.
func (i BatchDeleteInput) Validate(maxIDs int) error {
	if len(i.IDs) == 0 {
		return domain.NewValidationError("ids", "required")
	}
	if maxIDs > 0 && len(i.IDs) > maxIDs {
		return domain.NewValidationError("ids", "too many ids")
	}
	return nil
}
