package web

import (
	"context"
	"sort"
	"sync"

	"github.com/vietanh2810/icecream-api/internal/domain"
	"github.com/vietanh2810/icecream-api/internal/service"
)

// memoryFlavours is an in-memory service.FlavourRepository.
type memoryFlavours struct {
	mu     sync.Mutex
	nextID uint
	rows   map[uint]domain.Flavour
	inUse  map[uint]bool
}

var _ service.FlavourRepository = (*memoryFlavours)(nil)

func newMemoryFlavours() *memoryFlavours {
	return &memoryFlavours{
		nextID: 1,
		rows:   map[uint]domain.Flavour{},
		inUse:  map[uint]bool{},
	}
}

func (m *memoryFlavours) Create(_ context.Context, flavour domain.Flavour) (domain.Flavour, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	flavour.ID = m.nextID
	m.nextID++
	m.rows[flavour.ID] = flavour

	return flavour, nil
}

func (m *memoryFlavours) FindByID(_ context.Context, id uint) (domain.Flavour, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	flavour, ok := m.rows[id]
	if !ok {
		return domain.Flavour{}, service.ErrFlavourNotFound
	}

	return flavour, nil
}

func (m *memoryFlavours) FindAll(_ context.Context) ([]domain.Flavour, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	flavours := make([]domain.Flavour, 0, len(m.rows))
	for _, f := range m.rows {
		flavours = append(flavours, f)
	}
	sort.Slice(flavours, func(i, j int) bool { return flavours[i].ID < flavours[j].ID })

	return flavours, nil
}

func (m *memoryFlavours) Update(_ context.Context, flavour domain.Flavour) (domain.Flavour, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[flavour.ID]; !ok {
		return domain.Flavour{}, service.ErrFlavourNotFound
	}
	m.rows[flavour.ID] = flavour

	return flavour, nil
}

func (m *memoryFlavours) Delete(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[id]; !ok {
		return service.ErrFlavourNotFound
	}
	if m.inUse[id] {
		return service.ErrFlavourInUse
	}
	delete(m.rows, id)

	return nil
}
