package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vietanh2810/icecream-api/internal/domain"
)

type mockFlavourRepository struct {
	mock.Mock
}

func (m *mockFlavourRepository) Create(ctx context.Context, flavour domain.Flavour) (domain.Flavour, error) {
	args := m.Called(ctx, flavour)
	return args.Get(0).(domain.Flavour), args.Error(1)
}

func (m *mockFlavourRepository) FindByID(ctx context.Context, id uint) (domain.Flavour, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Flavour), args.Error(1)
}

func (m *mockFlavourRepository) FindAll(ctx context.Context) ([]domain.Flavour, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flavour), args.Error(1)
}

func (m *mockFlavourRepository) Update(ctx context.Context, flavour domain.Flavour) (domain.Flavour, error) {
	args := m.Called(ctx, flavour)
	return args.Get(0).(domain.Flavour), args.Error(1)
}

func (m *mockFlavourRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockPersonRepository struct {
	mock.Mock
}

func (m *mockPersonRepository) Create(ctx context.Context, person domain.Person) (domain.Person, error) {
	args := m.Called(ctx, person)
	return args.Get(0).(domain.Person), args.Error(1)
}

func (m *mockPersonRepository) FindByID(ctx context.Context, id uint) (domain.Person, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Person), args.Error(1)
}

func (m *mockPersonRepository) FindAll(ctx context.Context) ([]domain.Person, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Person), args.Error(1)
}

func (m *mockPersonRepository) Update(ctx context.Context, person domain.Person) (domain.Person, error) {
	args := m.Called(ctx, person)
	return args.Get(0).(domain.Person), args.Error(1)
}

func (m *mockPersonRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type countingRecorder struct {
	changed  map[string]int
	rejected map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{changed: map[string]int{}, rejected: map[string]int{}}
}

func (r *countingRecorder) FlavourChanged(op string) { r.changed[op]++ }

func (r *countingRecorder) FormRejected(op string) { r.rejected[op]++ }
