package rest

import (
	"context"

	"github.com/spoolkeep/spoolkeep-backend/internal/bulk"
	"github.com/spoolkeep/spoolkeep-backend/internal/domain"
	"github.com/spoolkeep/spoolkeep-backend/internal/service/catalog"
	"github.com/spoolkeep/spoolkeep-backend/internal/service/filament"
)

// filamentServiceMock is a hand-rolled mock of filamentService.
// Unconfigured methods panic so a test never silently exercises a
// path it did not mean to.
type filamentServiceMock struct {
	CreateFunc      func(ctx context.Context, input filament.CreateInput) (domain.Filament, error)
	GetFunc         func(ctx context.Context, id int64) (domain.Filament, error)
	ListFunc        func(ctx context.Context) ([]domain.Filament, error)
	UpdateFunc      func(ctx context.Context, id int64, patch domain.FilamentPatch) (domain.Filament, error)
	DeleteFunc      func(ctx context.Context, id int64) error
	ImportFunc      func(ctx context.Context, input filament.ImportInput) (bulk.Result, error)
	ExportCSVFunc   func(ctx context.Context) (string, error)
	ExportJSONFunc  func(ctx context.Context) ([]byte, error)
	BatchUpdateFunc func(ctx context.Context, input filament.BatchUpdateInput) (bulk.BatchResult[domain.Filament], error)
	BatchDeleteFunc func(ctx context.Context, input filament.BatchDeleteInput) (bulk.BatchResult[int64], error)
}

func (m *filamentServiceMock) Create(ctx context.Context, input filament.CreateInput) (domain.Filament, error) {
	if m.CreateFunc == nil {
		panic("filamentServiceMock.CreateFunc not set")
	}
	return m.CreateFunc(ctx, input)
}

func (m *filamentServiceMock) Get(ctx context.Context, id int64) (domain.Filament, error) {
	if m.GetFunc == nil {
		panic("filamentServiceMock.GetFunc not set")
	}
	return m.GetFunc(ctx, id)
}

func (m *filamentServiceMock) List(ctx context.Context) ([]domain.Filament, error) {
	if m.ListFunc == nil {
		panic("filamentServiceMock.ListFunc not set")
	}
	return m.ListFunc(ctx)
}

func (m *filamentServiceMock) Update(ctx context.Context, id int64, patch domain.FilamentPatch) (domain.Filament, error) {
	if m.UpdateFunc == nil {
		panic("filamentServiceMock.UpdateFunc not set")
	}
	return m.UpdateFunc(ctx, id, patch)
}

func (m *filamentServiceMock) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc == nil {
		panic("filamentServiceMock.DeleteFunc not set")
	}
	return m.DeleteFunc(ctx, id)
}

func (m *filamentServiceMock) Import(ctx context.Context, input filament.ImportInput) (bulk.Result, error) {
	if m.ImportFunc == nil {
		panic("filamentServiceMock.ImportFunc not set")
	}
	return m.ImportFunc(ctx, input)
}

func (m *filamentServiceMock) ExportCSV(ctx context.Context) (string, error) {
	if m.ExportCSVFunc == nil {
		panic("filamentServiceMock.ExportCSVFunc not set")
	}
	return m.ExportCSVFunc(ctx)
}

func (m *filamentServiceMock) ExportJSON(ctx context.Context) ([]byte, error) {
	if m.ExportJSONFunc == nil {
		panic("filamentServiceMock.ExportJSONFunc not set")
	}
	return m.ExportJSONFunc(ctx)
}

func (m *filamentServiceMock) BatchUpdate(ctx context.Context, input filament.BatchUpdateInput) (bulk.BatchResult[domain.Filament], error) {
	if m.BatchUpdateFunc == nil {
		panic("filamentServiceMock.BatchUpdateFunc not set")
	}
	return m.BatchUpdateFunc(ctx, input)
}

func (m *filamentServiceMock) BatchDelete(ctx context.Context, input filament.BatchDeleteInput) (bulk.BatchResult[int64], error) {
	if m.BatchDeleteFunc == nil {
		panic("filamentServiceMock.BatchDeleteFunc not set")
	}
	return m.BatchDeleteFunc(ctx, input)
}

// namedServiceMock is a hand-rolled mock of namedService.
type namedServiceMock struct {
	CreateFunc      func(ctx context.Context, input catalog.CreateNamedInput) (domain.NamedItem, error)
	GetFunc         func(ctx context.Context, id int64) (domain.NamedItem, error)
	ListFunc        func(ctx context.Context) ([]domain.NamedItem, error)
	UpdateFunc      func(ctx context.Context, id int64, patch domain.NamedItemPatch) (domain.NamedItem, error)
	DeleteFunc      func(ctx context.Context, id int64) error
	ImportFunc      func(ctx context.Context, input catalog.ImportInput) (bulk.Result, error)
	ExportCSVFunc   func(ctx context.Context) (string, error)
	ExportJSONFunc  func(ctx context.Context) ([]byte, error)
	BatchUpdateFunc func(ctx context.Context, input catalog.BatchUpdateNamedInput) (bulk.BatchResult[domain.NamedItem], error)
	BatchDeleteFunc func(ctx context.Context, input catalog.BatchDeleteInput) (bulk.BatchResult[int64], error)
}

func (m *namedServiceMock) Create(ctx context.Context, input catalog.CreateNamedInput) (domain.NamedItem, error) {
	if m.CreateFunc == nil {
		panic("namedServiceMock.CreateFunc not set")
	}
	return m.CreateFunc(ctx, input)
}

func (m *namedServiceMock) Get(ctx context.Context, id int64) (domain.NamedItem, error) {
	if m.GetFunc == nil {
		panic("namedServiceMock.GetFunc not set")
	}
	return m.GetFunc(ctx, id)
}

func (m *namedServiceMock) List(ctx context.Context) ([]domain.NamedItem, error) {
	if m.ListFunc == nil {
		panic("namedServiceMock.ListFunc not set")
	}
	return m.ListFunc(ctx)
}

func (m *namedServiceMock) Update(ctx context.Context, id int64, patch domain.NamedItemPatch) (domain.NamedItem, error) {
	if m.UpdateFunc == nil {
		panic("namedServiceMock.UpdateFunc not set")
	}
	return m.UpdateFunc(ctx, id, patch)
}

func (m *namedServiceMock) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc == nil {
		panic("namedServiceMock.DeleteFunc not set")
	}
	return m.DeleteFunc(ctx, id)
}

func (m *namedServiceMock) Import(ctx context.Context, input catalog.ImportInput) (bulk.Result, error) {
	if m.ImportFunc == nil {
		panic("namedServiceMock.ImportFunc not set")
	}
	return m.ImportFunc(ctx, input)
}

func (m *namedServiceMock) ExportCSV(ctx context.Context) (string, error) {
	if m.ExportCSVFunc == nil {
		panic("namedServiceMock.ExportCSVFunc not set")
	}
	return m.ExportCSVFunc(ctx)
}

func (m *namedServiceMock) ExportJSON(ctx context.Context) ([]byte, error) {
	if m.ExportJSONFunc == nil {
		panic("namedServiceMock.ExportJSONFunc not set")
	}
	return m.ExportJSONFunc(ctx)
}

func (m *namedServiceMock) BatchUpdate(ctx context.Context, input catalog.BatchUpdateNamedInput) (bulk.BatchResult[domain.NamedItem], error) {
	if m.BatchUpdateFunc == nil {
		panic("namedServiceMock.BatchUpdateFunc not set")
	}
	return m.BatchUpdateFunc(ctx, input)
}

func (m *namedServiceMock) BatchDelete(ctx context.Context, input catalog.BatchDeleteInput) (bulk.BatchResult[int64], error) {
	if m.BatchDeleteFunc == nil {
		panic("namedServiceMock.BatchDeleteFunc not set")
	}
	return m.BatchDeleteFunc(ctx, input)
}
