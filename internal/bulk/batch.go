package bulk

import (
	"context"
	"strconv"
	"strings"
)

// ParseIDs validates a heterogeneous id list decoded from JSON. One
// coercion rule applies to every shape: numbers and numeric strings both
// truncate toward zero ("3.5" and 3.5 each become 3). Anything else —
// non-numeric strings, booleans, objects, nulls — is dropped silently and
// never appears in subsequent results.
func ParseIDs(raw []any) []int64 {
	ids := make([]int64, 0, len(raw))
	for _, v := range raw {
		switch t := v.(type) {
		case float64:
			ids = append(ids, int64(t))
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
			if err != nil {
				continue
			}
			ids = append(ids, int64(f))
		case int:
			ids = append(ids, int64(t))
		case int64:
			ids = append(ids, t)
		}
	}
	return ids
}

// ItemError records one failed id with its error message.
type ItemError struct {
	ID      int64  `json:"id"`
	Message string `json:"error"`
}

// BatchResult collects per-id outcomes of one batch call. Every validated
// id lands in exactly one of Success, Skipped, or Failed; Total is the
// count of ids that survived ParseIDs, so
// len(Success) + len(Skipped) + len(Failed) == Total.
type BatchResult[T any] struct {
	Success []T
	Skipped []int64
	Failed  []ItemError
	Total   int
}

// Op applies the batch operation to one id. Returning applied=false with
// a nil error means the underlying record did not exist; the id is tagged
// Skipped rather than counted as a success or failure.
type Op[T any] func(ctx context.Context, id int64) (result T, applied bool, err error)

// Run iterates the validated id list strictly sequentially, applying op
// to each id independently. A failed operation is recorded and processing
// continues through the full list: there is no all-or-nothing guarantee
// and no rollback of earlier successes.
func Run[T any](ctx context.Context, ids []int64, op Op[T]) BatchResult[T] {
	res := BatchResult[T]{
		Success: []T{},
		Skipped: []int64{},
		Failed:  []ItemError{},
		Total:   len(ids),
	}

	for _, id := range ids {
		out, applied, err := op(ctx, id)
		switch {
		case err != nil:
			res.Failed = append(res.Failed, ItemError{ID: id, Message: err.Error()})
		case !applied:
			res.Skipped = append(res.Skipped, id)
		default:
			res.Success = append(res.Success, out)
		}
	}
	return res
}
