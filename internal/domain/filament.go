package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Filament is one spool in the inventory.
//
// PurchaseDate, OpenedDate and LastDriedDate are kept as opaque strings:
// they travel from import files to export files unparsed, and the backend
// never computes with them.
type Filament struct {
	ID                  int64      `json:"id"`
	UserID              uuid.UUID  `json:"-"`
	Name                string     `json:"name"`
	Material            string     `json:"material"`
	ColorName           string     `json:"colorName"`
	ColorCode           *string    `json:"colorCode,omitempty"`
	Manufacturer        *string    `json:"manufacturer,omitempty"`
	Diameter            float64    `json:"diameter"`
	TotalWeight         float64    `json:"totalWeight"`
	RemainingPercentage float64    `json:"remainingPercentage"`
	Location            *string    `json:"location,omitempty"`
	Price               *float64   `json:"price,omitempty"`
	PurchaseDate        *string    `json:"purchaseDate,omitempty"`
	OpenedDate          *string    `json:"openedDate,omitempty"`
	LastDriedDate       *string    `json:"lastDriedDate,omitempty"`
	DryerCount          int        `json:"dryerCount"`
	LotNumber           *string    `json:"lotNumber,omitempty"`
	Notes               *string    `json:"notes,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// FilamentPatch is a partial-field patch: nil means "leave the stored
// value untouched". The same patch type flows through the single-record
// update and every batch-update path, so the merge rule cannot drift.
type FilamentPatch struct {
	Name                *string  `json:"name"`
	Material            *string  `json:"material"`
	ColorName           *string  `json:"colorName"`
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

// IsEmpty reports whether the patch changes nothing.
func (p FilamentPatch) IsEmpty() bool {
	return p.Name == nil && p.Material == nil && p.ColorName == nil &&
		p.ColorCode == nil && p.Manufacturer == nil && p.Diameter == nil &&
		p.TotalWeight == nil && p.RemainingPercentage == nil && p.Location == nil &&
		p.Price == nil && p.PurchaseDate == nil && p.OpenedDate == nil &&
		p.LastDriedDate == nil && p.DryerCount == nil && p.LotNumber == nil &&
		p.Notes == nil
}

// Validate checks the fields a patch sets. Unset fields are not judged.
func (p FilamentPatch) Validate() error {
	var errs []FieldError

	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "must not be blank"})
	}
	if p.Material != nil && strings.TrimSpace(*p.Material) == "" {
		errs = append(errs, FieldError{Field: "material", Message: "must not be blank"})
	}
	if p.ColorName != nil && strings.TrimSpace(*p.ColorName) == "" {
		errs = append(errs, FieldError{Field: "colorName", Message: "must not be blank"})
	}
	if p.Diameter != nil && *p.Diameter <= 0 {
		errs = append(errs, FieldError{Field: "diameter", Message: "must be > 0"})
	}
	if p.TotalWeight != nil && *p.TotalWeight <= 0 {
		errs = append(errs, FieldError{Field: "totalWeight", Message: "must be > 0"})
	}
	if p.RemainingPercentage != nil && (*p.RemainingPercentage < 0 || *p.RemainingPercentage > 100) {
		errs = append(errs, FieldError{Field: "remainingPercentage", Message: "must be between 0 and 100"})
	}
	if p.Price != nil && *p.Price < 0 {
		errs = append(errs, FieldError{Field: "price", Message: "must be >= 0"})
	}
	if p.DryerCount != nil && *p.DryerCount < 0 {
		errs = append(errs, FieldError{Field: "dryerCount", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// Validate checks a filament draft before persistence and collects all errors.
func (f Filament) Validate() error {
	var errs []FieldError

	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	}
	if strings.TrimSpace(f.Material) == "" {
		errs = append(errs, FieldError{Field: "material", Message: "required"})
	}
	if strings.TrimSpace(f.ColorName) == "" {
		errs = append(errs, FieldError{Field: "colorName", Message: "required"})
	}
	if f.Diameter <= 0 {
		errs = append(errs, FieldError{Field: "diameter", Message: "must be > 0"})
	}
	if f.TotalWeight <= 0 {
		errs = append(errs, FieldError{Field: "totalWeight", Message: "must be > 0"})
	}
	if f.RemainingPercentage < 0 || f.RemainingPercentage > 100 {
		errs = append(errs, FieldError{Field: "remainingPercentage", Message: "must be between 0 and 100"})
	}
	if f.Price != nil && *f.Price < 0 {
		errs = append(errs, FieldError{Field: "price", Message: "must be >= 0"})
	}
	if f.DryerCount < 0 {
		errs = append(errs, FieldError{Field: "dryerCount", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// Key returns the filament's dedup key (case-folded name).
func (f Filament) Key() string {
	return Normalize(f.Name)
}
