package bulk

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// namedDraft is the minimal draft used by pipeline tests.
type namedDraft struct {
	Name string
}

// newNamedPipeline builds a single-column pipeline writing into created,
// with the given pre-existing keys.
func newNamedPipeline(created *[]namedDraft, existing ...string) Pipeline[namedDraft] {
	return Pipeline[namedDraft]{
		Columns:  []string{"name"},
		Required: []string{"name"},
		Key: func(vals map[string]string) string {
			return strings.ToLower(strings.TrimSpace(vals["name"]))
		},
		Build: func(vals map[string]string) (namedDraft, error) {
			return namedDraft{Name: strings.TrimSpace(vals["name"])}, nil
		},
		Index: func(ctx context.Context) (map[string]struct{}, error) {
			idx := make(map[string]struct{}, len(existing))
			for _, k := range existing {
				idx[k] = struct{}{}
			}
			return idx, nil
		},
		Create: func(ctx context.Context, d namedDraft) error {
			*created = append(*created, d)
			return nil
		},
	}
}

func TestRunCSV_Headerless(t *testing.T) {
	t.Parallel()

	var created []namedDraft
	p := newNamedPipeline(&created)

	res, err := p.RunCSV(context.Background(), "Prusament\nBambu Lab\n\nPolymaker\n")
	require.NoError(t, err)

	assert.Equal(t, Result{Created: 3}, res)
	require.Len(t, created, 3)
	assert.Equal(t, "Prusament", created[0].Name)
}

func TestRunCSV_HeaderDetected(t *testing.T) {
	t.Parallel()

	var created []namedDraft
	p := newNamedPipeline(&created)

	res, err := p.RunCSV(context.Background(), "Name\nPrusament\nBambu Lab\n")
	require.NoError(t, err)

	// Header row excluded from the aggregate.
	assert.Equal(t, Result{Created: 2}, res)
}

func TestRunCSV_CountInvariant(t *testing.T) {
	t.Parallel()

	var created []namedDraft
	p := newNamedPipeline(&created, "prusament")

	// 5 data rows: 1 duplicate of existing, 1 repeated in-file, 1 blank
	// name (required missing), 2 created.
	data := "name\nPrusament\nBambu Lab\nBambu Lab\n\"\"\nPolymaker\n"
	res, err := p.RunCSV(context.Background(), data)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Created)
	assert.Equal(t, 2, res.Duplicates)
	assert.Equal(t, 1, res.Errors)
	assert.Equal(t, 5, res.Created+res.Duplicates+res.Errors)
}

func TestRunCSV_Idempotence(t *testing.T) {
	t.Parallel()

	data := "Prusament\nBambu Lab\nPolymaker\n"

	var created []namedDraft
	first := newNamedPipeline(&created)
	res1, err := first.RunCSV(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, Result{Created: 3}, res1)

	// Second run sees the first run's records in its index.
	keys := make([]string, len(created))
	for i, d := range created {
		keys[i] = strings.ToLower(d.Name)
	}
	second := newNamedPipeline(&created, keys...)
	res2, err := second.RunCSV(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, Result{Duplicates: 3}, res2)
}

func TestRunCSV_CreateFailureIsolated(t *testing.T) {
	t.Parallel()

	var created []namedDraft
	p := newNamedPipeline(&created)
	fail := true
	p.Create = func(ctx context.Context, d namedDraft) error {
		if fail {
			fail = false
			return errors.New("connection reset")
		}
		created = append(created, d)
		return nil
	}

	res, err := p.RunCSV(context.Background(), "One\nTwo\n")
	require.NoError(t, err)

	assert.Equal(t, Result{Created: 1, Errors: 1}, res)
	require.Len(t, created, 1)
	assert.Equal(t, "Two", created[0].Name)
}

func TestRunCSV_BuildFailureCountsError(t *testing.T) {
	t.Parallel()

	var created []namedDraft
	p := newNamedPipeline(&created)
	p.Build = func(vals map[string]string) (namedDraft, error) {
		return namedDraft{}, errors.New("schema rejected")
	}

	res, err := p.RunCSV(context.Background(), "One\nTwo\n")
	require.NoError(t, err)
	assert.Equal(t, Result{Errors: 2}, res)
}

func TestRunCSV_MaxRows(t *testing.T) {
	t.Parallel()

	var created []namedDraft
	p := newNamedPipeline(&created)
	p.MaxRows = 2

	_, err := p.RunCSV(context.Background(), "a\nb\nc\n")
	require.Error(t, err)
	assert.Empty(t, created, "no row may be touched on a rejected request")
}

func TestRunJSON_MirrorsCSV(t *testing.T) {
	t.Parallel()

	var created []namedDraft
	p := newNamedPipeline(&created, "prusament")

	data := `[{"name":"Prusament"},{"Name":"Bambu Lab"},null,{"other":"x"}]`
	res, err := p.RunJSON(context.Background(), data)
	require.NoError(t, err)

	// null skipped entirely; key-matching is case-insensitive; the
	// object without a name fails the required check.
	assert.Equal(t, Result{Created: 1, Duplicates: 1, Errors: 1}, res)
}

func TestRunJSON_MalformedTopLevel(t *testing.T) {
	t.Parallel()

	var created []namedDraft
	p := newNamedPipeline(&created)

	_, err := p.RunJSON(context.Background(), `{"not":"an array"}`)
	require.Error(t, err)
	assert.Empty(t, created)
}

func TestStringify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Stringify(nil))
	assert.Equal(t, "abc", Stringify(" abc "))
	assert.Equal(t, "1.75", Stringify(1.75))
	assert.Equal(t, "100", Stringify(100.0))
	assert.Equal(t, "true", Stringify(true))
}
