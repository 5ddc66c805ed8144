package filament

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/spoolkeep/spoolkeep-backend/internal/domain"
)

var _ filamentRepo = &filamentRepoMock{}

type filamentRepoMock struct {
	CreateFunc  func(ctx context.Context, f domain.Filament) (domain.Filament, error)
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, id int64) (domain.Filament, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID) ([]domain.Filament, error)
	UpdateFunc  func(ctx context.Context, userID uuid.UUID, id int64, patch domain.FilamentPatch) (domain.Filament, error)
	DeleteFunc  func(ctx context.Context, userID uuid.UUID, id int64) (bool, error)

	calls struct {
		Create []domain.Filament
		List   []uuid.UUID
		Update []int64
		Delete []int64
	}
	mu sync.Mutex
}

func (m *filamentRepoMock) Create(ctx context.Context, f domain.Filament) (domain.Filament, error) {
	if m.CreateFunc == nil {
		panic("filamentRepoMock.CreateFunc: method is nil but Create was just called")
	}
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, f)
	m.mu.Unlock()
	return m.CreateFunc(ctx, f)
}

func (m *filamentRepoMock) CreateCalls() []domain.Filament {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *filamentRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id int64) (domain.Filament, error) {
	if m.GetByIDFunc == nil {
		panic("filamentRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, userID, id)
}

func (m *filamentRepoMock) List(ctx context.Context, userID uuid.UUID) ([]domain.Filament, error) {
	if m.ListFunc == nil {
		panic("filamentRepoMock.ListFunc: method is nil but List was just called")
	}
	m.mu.Lock()
	m.calls.List = append(m.calls.List, userID)
	m.mu.Unlock()
	return m.ListFunc(ctx, userID)
}

func (m *filamentRepoMock) ListCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.List
}

func (m *filamentRepoMock) Update(ctx context.Context, userID uuid.UUID, id int64, patch domain.FilamentPatch) (domain.Filament, error) {
	if m.UpdateFunc == nil {
		panic("filamentRepoMock.UpdateFunc: method is nil but Update was just called")
	}
	m.mu.Lock()
	m.calls.Update = append(m.calls.Update, id)
	m.mu.Unlock()
	return m.UpdateFunc(ctx, userID, id, patch)
}

func (m *filamentRepoMock) UpdateCalls() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Update
}

func (m *filamentRepoMock) Delete(ctx context.Context, userID uuid.UUID, id int64) (bool, error) {
	if m.DeleteFunc == nil {
		panic("filamentRepoMock.DeleteFunc: method is nil but Delete was just called")
	}
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, id)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, userID, id)
}

func (m *filamentRepoMock) DeleteCalls() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Delete
}
