package bulk

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Result aggregates one import call. Invariant: Created + Duplicates +
// Errors equals the number of non-blank data rows processed (the header
// row excluded when one is detected). No per-row detail is retained.
type Result struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
	Errors     int `json:"errors"`
}

// Pipeline is the generic per-entity import algorithm. Instantiations
// supply the expected column set (which doubles as the positional default
// order), the required fields, the dedup key, the draft builder
// (validation included), the existing-record index loader, and the create
// operation. Rows are processed strictly in input order, never in
// parallel, so the index built at the start stays valid for the whole
// call.
type Pipeline[T any] struct {
	// Columns lists the expected column names (lower-case). Their order
	// is the positional default layout used when no header is detected.
	Columns []string

	// Required lists columns that must be non-empty for a row to proceed.
	Required []string

	// Extract, when set, replaces the default CSV field extraction.
	// Used by entities with irregular positional forms.
	Extract func(fields []string, layout Layout) map[string]string

	// Key computes the row's dedup key from extracted values.
	Key func(vals map[string]string) string

	// Build validates extracted values into a draft entity.
	Build func(vals map[string]string) (T, error)

	// Index loads the existing-record index once per run, keyed by the
	// same normalized dedup key Key produces.
	Index func(ctx context.Context) (map[string]struct{}, error)

	// Create persists one draft.
	Create func(ctx context.Context, draft T) error

	// MaxRows rejects oversized inputs before any row is touched.
	// Zero means unlimited.
	MaxRows int
}

// RunCSV imports raw CSV text.
func (p Pipeline[T]) RunCSV(ctx context.Context, data string) (Result, error) {
	lines := ParseLines(data)
	layout := DetectLayout(lines, p.Columns)
	rows := lines[layout.Start:]

	if p.MaxRows > 0 && len(rows) > p.MaxRows {
		return Result{}, fmt.Errorf("import exceeds %d rows", p.MaxRows)
	}

	index, err := p.Index(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load existing records: %w", err)
	}

	var res Result
	for _, line := range rows {
		vals := p.extractCSV(ParseLine(line), layout)
		p.processRow(ctx, vals, index, &res)
	}
	return res, nil
}

// RunJSON imports a JSON array of objects. It mirrors the CSV variant
// field-for-field, skipping the parser/detector stage: values are looked
// up by object key (case-insensitive) instead of column index.
func (p Pipeline[T]) RunJSON(ctx context.Context, data string) (Result, error) {
	var objects []map[string]any
	if err := json.Unmarshal([]byte(data), &objects); err != nil {
		return Result{}, fmt.Errorf("parse JSON array: %w", err)
	}

	if p.MaxRows > 0 && len(objects) > p.MaxRows {
		return Result{}, fmt.Errorf("import exceeds %d rows", p.MaxRows)
	}

	index, err := p.Index(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load existing records: %w", err)
	}

	var res Result
	for _, obj := range objects {
		if obj == nil {
			continue // null element, the JSON analogue of a blank row
		}
		p.processRow(ctx, p.extractJSON(obj), index, &res)
	}
	return res, nil
}

// processRow runs steps 3-6 of the pipeline for one extracted row:
// required-field check, dedup check, draft validation, create. Every
// failure is absorbed into the aggregate; nothing aborts the run.
func (p Pipeline[T]) processRow(ctx context.Context, vals map[string]string, index map[string]struct{}, res *Result) {
	for _, req := range p.Required {
		if strings.TrimSpace(vals[req]) == "" {
			res.Errors++
			return
		}
	}

	key := p.Key(vals)
	if _, dup := index[key]; dup {
		res.Duplicates++
		return
	}

	draft, err := p.Build(vals)
	if err != nil {
		res.Errors++
		return
	}

	if err := p.Create(ctx, draft); err != nil {
		res.Errors++
		return
	}

	res.Created++
	// Catch later duplicate rows within this same import.
	index[key] = struct{}{}
}

// extractCSV maps parsed fields to column values: by header index when a
// column map exists, otherwise by positional default.
func (p Pipeline[T]) extractCSV(fields []string, layout Layout) map[string]string {
	if p.Extract != nil {
		return p.Extract(fields, layout)
	}

	vals := make(map[string]string, len(p.Columns))
	for i, col := range p.Columns {
		idx, mapped := layout.Columns[col]
		if !mapped {
			if layout.Headered() {
				continue // headered input without this column
			}
			idx = i
		}
		if idx < len(fields) {
			vals[col] = fields[idx]
		}
	}
	return vals
}

// extractJSON maps an object's values to column names, matching keys
// case-insensitively ("colorName" satisfies column "colorname").
func (p Pipeline[T]) extractJSON(obj map[string]any) map[string]string {
	lowered := make(map[string]any, len(obj))
	for k, v := range obj {
		lowered[strings.ToLower(k)] = v
	}

	vals := make(map[string]string, len(p.Columns))
	for _, col := range p.Columns {
		if v, ok := lowered[col]; ok {
			vals[col] = Stringify(v)
		}
	}
	return vals
}

// Stringify renders a decoded JSON value the way it would appear in a CSV
// cell. Numbers use the shortest exact decimal form; nil becomes "".
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
