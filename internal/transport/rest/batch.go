package rest

import (
	"fmt"

	"github.com/spoolkeep/spoolkeep-backend/internal/bulk"
)

// importResponse reports one bulk import. The three counts sum to the
// number of data rows processed.
type importResponse struct {
	Message    string `json:"message"`
	Created    int    `json:"created"`
	Duplicates int    `json:"duplicates"`
	Errors     int    `json:"errors"`
}

func toImportResponse(res bulk.Result) importResponse {
	return importResponse{
		Message:    fmt.Sprintf("import finished: %d created, %d duplicates, %d errors", res.Created, res.Duplicates, res.Errors),
		Created:    res.Created,
		Duplicates: res.Duplicates,
		Errors:     res.Errors,
	}
}

// batchUpdateResponse reports one batch update. UpdatedCount is kept
// alongside the per-id detail for clients that only read the aggregate.
type batchUpdateResponse[T any] struct {
	Message      string           `json:"message"`
	UpdatedCount int              `json:"updatedCount"`
	Updated      []T              `json:"updated"`
	SkippedIDs   []int64          `json:"skippedIds"`
	Failed       []bulk.ItemError `json:"failed"`
	Total        int              `json:"total"`
}

func toBatchUpdateResponse[T any](res bulk.BatchResult[T]) batchUpdateResponse[T] {
	return batchUpdateResponse[T]{
		Message:      fmt.Sprintf("%d of %d updated", len(res.Success), res.Total),
		UpdatedCount: len(res.Success),
		Updated:      res.Success,
		SkippedIDs:   res.Skipped,
		Failed:       res.Failed,
		Total:        res.Total,
	}
}

// batchDeleteResponse reports one batch delete.
type batchDeleteResponse struct {
	Message      string           `json:"message"`
	DeletedCount int              `json:"deletedCount"`
	DeletedIDs   []int64          `json:"deletedIds"`
	SkippedIDs   []int64          `json:"skippedIds"`
	Failed       []bulk.ItemError `json:"failed"`
	Total        int              `json:"total"`
}

func toBatchDeleteResponse(res bulk.BatchResult[int64]) batchDeleteResponse {
	return batchDeleteResponse{
		Message:      fmt.Sprintf("%d of %d deleted", len(res.Success), res.Total),
		DeletedCount: len(res.Success),
		DeletedIDs:   res.Success,
		SkippedIDs:   res.Skipped,
		Failed:       res.Failed,
		Total:        res.Total,
	}
}
