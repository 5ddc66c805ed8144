package catalog

import (
	"github.com/spoolkeep/spoolkeep-backend/internal/domain"
)

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

// BatchDeleteInput is the batch-delete request schema.
type BatchDeleteInput struct {
	IDs []any `json:"ids"`
}

// Validate rejects malformed bodies before any id is touched.
func (i BatchDeleteInput) Validate(maxIDs int) error {
	return validateIDList(i.IDs, maxIDs)
}

func validateIDList(ids []any, maxIDs int) error {
	if len(ids) == 0 {
		return domain.NewValidationError("ids", "required")
	}
	if maxIDs > 0 && len(ids) > maxIDs {
		return domain.NewValidationError("ids", "too many ids")
	}
	return nil
}
