package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/spoolkeep/spoolkeep-backend/internal/domain"
)

var (
	_ namedRepo    = &namedRepoMock{}
	_ colorRepo    = &colorRepoMock{}
	_ diameterRepo = &diameterRepoMock{}
)

type namedRepoMock struct {
	CreateFunc  func(ctx context.Context, item domain.NamedItem) (domain.NamedItem, error)
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, id int64) (domain.NamedItem, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID) ([]domain.NamedItem, error)
	UpdateFunc  func(ctx context.Context, userID uuid.UUID, id int64, patch domain.NamedItemPatch) (domain.NamedItem, error)
	DeleteFunc  func(ctx context.Context, userID uuid.UUID, id int64) (bool, error)

	mu          sync.Mutex
	createCalls []domain.NamedItem
}

func (m *namedRepoMock) Create(ctx context.Context, item domain.NamedItem) (domain.NamedItem, error) {
	if m.CreateFunc == nil {
		panic("namedRepoMock.CreateFunc: method is nil but Create was just called")
	}
	m.mu.Lock()
	m.createCalls = append(m.createCalls, item)
	m.mu.Unlock()
	return m.CreateFunc(ctx, item)
}

func (m *namedRepoMock) CreateCalls() []domain.NamedItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}

func (m *namedRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id int64) (domain.NamedItem, error) {
	if m.GetByIDFunc == nil {
		panic("namedRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, userID, id)
}

func (m *namedRepoMock) List(ctx context.Context, userID uuid.UUID) ([]domain.NamedItem, error) {
	if m.ListFunc == nil {
		panic("namedRepoMock.ListFunc: method is nil but List was just called")
	}
	return m.ListFunc(ctx, userID)
}

func (m *namedRepoMock) Update(ctx context.Context, userID uuid.UUID, id int64, patch domain.NamedItemPatch) (domain.NamedItem, error) {
	if m.UpdateFunc == nil {
		panic("namedRepoMock.UpdateFunc: method is nil but Update was just called")
	}
	return m.UpdateFunc(ctx, userID, id, patch)
}

func (m *namedRepoMock) Delete(ctx context.Context, userID uuid.UUID, id int64) (bool, error) {
	if m.DeleteFunc == nil {
		panic("namedRepoMock.DeleteFunc: method is nil but Delete was just called")
	}
	return m.DeleteFunc(ctx, userID, id)
}

type colorRepoMock struct {
	CreateFunc  func(ctx context.Context, c domain.Color) (domain.Color, error)
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, id int64) (domain.Color, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID) ([]domain.Color, error)
	UpdateFunc  func(ctx context.Context, userID uuid.UUID, id int64, patch domain.ColorPatch) (domain.Color, error)
	DeleteFunc  func(ctx context.Context, userID uuid.UUID, id int64) (bool, error)

	mu          sync.Mutex
	createCalls []domain.Color
}

func (m *colorRepoMock) Create(ctx context.Context, c domain.Color) (domain.Color, error) {
	if m.CreateFunc == nil {
		panic("colorRepoMock.CreateFunc: method is nil but Create was just called")
	}
	m.mu.Lock()
	m.createCalls = append(m.createCalls, c)
	m.mu.Unlock()
	return m.CreateFunc(ctx, c)
}

func (m *colorRepoMock) CreateCalls() []domain.Color {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}

func (m *colorRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id int64) (domain.Color, error) {
	if m.GetByIDFunc == nil {
		panic("colorRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, userID, id)
}

func (m *colorRepoMock) List(ctx context.Context, userID uuid.UUID) ([]domain.Color, error) {
	if m.ListFunc == nil {
		panic("colorRepoMock.ListFunc: method is nil but List was just called")
	}
	return m.ListFunc(ctx, userID)
}

func (m *colorRepoMock) Update(ctx context.Context, userID uuid.UUID, id int64, patch domain.ColorPatch) (domain.Color, error) {
	if m.UpdateFunc == nil {
		panic("colorRepoMock.UpdateFunc: method is nil but Update was just called")
	}
	return m.UpdateFunc(ctx, userID, id, patch)
}

func (m *colorRepoMock) Delete(ctx context.Context, userID uuid.UUID, id int64) (bool, error) {
	if m.DeleteFunc == nil {
		panic("colorRepoMock.DeleteFunc: method is nil but Delete was just called")
	}
	return m.DeleteFunc(ctx, userID, id)
}

type diameterRepoMock struct {
	CreateFunc  func(ctx context.Context, d domain.Diameter) (domain.Diameter, error)
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, id int64) (domain.Diameter, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID) ([]domain.Diameter, error)
	UpdateFunc  func(ctx context.Context, userID uuid.UUID, id int64, patch domain.DiameterPatch) (domain.Diameter, error)
	DeleteFunc  func(ctx context.Context, userID uuid.UUID, id int64) (bool, error)

	mu          sync.Mutex
	createCalls []domain.Diameter
}

func (m *diameterRepoMock) Create(ctx context.Context, d domain.Diameter) (domain.Diameter, error) {
	if m.CreateFunc == nil {
		panic("diameterRepoMock.CreateFunc: method is nil but Create was just called")
	}
	m.mu.Lock()
	m.createCalls = append(m.createCalls, d)
	m.mu.Unlock()
	return m.CreateFunc(ctx, d)
}

func (m *diameterRepoMock) CreateCalls() []domain.Diameter {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}

func (m *diameterRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id int64) (domain.Diameter, error) {
	if m.GetByIDFunc == nil {
		panic("diameterRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, userID, id)
}

func (m *diameterRepoMock) List(ctx context.Context, userID uuid.UUID) ([]domain.Diameter, error) {
	if m.ListFunc == nil {
		panic("diameterRepoMock.ListFunc: method is nil but List was just called")
	}
	return m.ListFunc(ctx, userID)
}

func (m *diameterRepoMock) Update(ctx context.Context, userID uuid.UUID, id int64, patch domain.DiameterPatch) (domain.Diameter, error) {
	if m.UpdateFunc == nil {
		panic("diameterRepoMock.UpdateFunc: method is nil but Update was just called")
	}
	return m.UpdateFunc(ctx, userID, id, patch)
}

func (m *diameterRepoMock) Delete(ctx context.Context, userID uuid.UUID, id int64) (bool, error) {
	if m.DeleteFunc == nil {
		panic("diameterRepoMock.DeleteFunc: method is nil but Delete was just called")
	}
	return m.DeleteFunc(ctx, userID, id)
}
