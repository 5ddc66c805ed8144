package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NamedItem is a simple name-only catalog entity: manufacturer, material,
// or storage location. The three share one shape and one dedup rule.
type NamedItem struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate checks a named-item draft.
func (n NamedItem) Validate() error {
	name := strings.TrimSpace(n.Name)
	if name == "" {
		return NewValidationError("name", "required")
	}
	if len(name) > 200 {
		return NewValidationError("name", "max 200 characters")
	}
	return nil
}

// Key returns the item's dedup key.
func (n NamedItem) Key() string {
	return Normalize(n.Name)
}

// NamedItemPatch updates a named item. Only the name can change.
type NamedItemPatch struct {
	Name *string `json:"name"`
}

// IsEmpty reports whether the patch changes nothing.
func (p NamedItemPatch) IsEmpty() bool { return p.Name == nil }

// Validate checks the fields the patch sets.
func (p NamedItemPatch) Validate() error {
	if p.Name != nil {
		if strings.TrimSpace(*p.Name) == "" {
			return NewValidationError("name", "must not be blank")
		}
		if len(strings.TrimSpace(*p.Name)) > 200 {
			return NewValidationError("name", "max 200 characters")
		}
	}
	return nil
}

// Color is a filament color with a display name and a hex code.
type Color struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"-"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NormalizeColorCode prefixes a bare hex code with '#'. Applied before
// validation and dedup so "000000" and "#000000" collide.
func NormalizeColorCode(code string) string {
	code = strings.TrimSpace(code)
	if code == "" || strings.HasPrefix(code, "#") {
		return code
	}
	return "#" + code
}

// Validate checks a color draft. The code must already carry its '#' prefix.
func (c Color) Validate() error {
	var errs []FieldError

	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	}

	code := strings.TrimSpace(c.Code)
	switch {
	case code == "":
		errs = append(errs, FieldError{Field: "code", Message: "required"})
	case !isHexColor(code):
		errs = append(errs, FieldError{Field: "code", Message: "must be a hex color like #1A2B3C"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func isHexColor(code string) bool {
	if !strings.HasPrefix(code, "#") {
		return false
	}
	digits := code[1:]
	if len(digits) != 3 && len(digits) != 6 {
		return false
	}
	for _, r := range digits {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// Key returns the color's composite dedup key (name + code).
func (c Color) Key() string {
	return Normalize(c.Name) + "|" + strings.ToLower(strings.TrimSpace(c.Code))
}

// ColorPatch updates a color.
type ColorPatch struct {
	Name *string `json:"name"`
	Code *string `json:"code"`
}

// IsEmpty reports whether the patch changes nothing.
func (p ColorPatch) IsEmpty() bool { return p.Name == nil && p.Code == nil }

// Validate checks the fields the patch sets. The code is judged after
// '#' prefixing.
func (p ColorPatch) Validate() error {
	var errs []FieldError

	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "must not be blank"})
	}
	if p.Code != nil && !isHexColor(NormalizeColorCode(*p.Code)) {
		errs = append(errs, FieldError{Field: "code", Message: "must be a hex color like #1A2B3C"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// Diameter is a filament diameter in millimeters (1.75, 2.85, ...).
type Diameter struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"-"`
	Value     float64   `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate checks a diameter draft.
func (d Diameter) Validate() error {
	if d.Value <= 0 {
		return NewValidationError("value", "must be > 0")
	}
	if d.Value > 10 {
		return NewValidationError("value", "must be <= 10 mm")
	}
	return nil
}

// Key returns the diameter's dedup key: the shortest exact decimal
// rendering of the value, so "1.75", "1.750" and 1.75 collide.
func (d Diameter) Key() string {
	return strconv.FormatFloat(d.Value, 'f', -1, 64)
}

// DiameterPatch updates a diameter.
type DiameterPatch struct {
	Value *float64 `json:"value"`
}

// IsEmpty reports whether the patch changes nothing.
func (p DiameterPatch) IsEmpty() bool { return p.Value == nil }

// Validate checks the fields the patch sets.
func (p DiameterPatch) Validate() error {
	if p.Value != nil {
		if *p.Value <= 0 {
			return NewValidationError("value", "must be > 0")
		}
		if *p.Value > 10 {
			return NewValidationError("value", "must be <= 10 mm")
		}
	}
	return nil
}
