package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vietanh2810/icecream-api/internal/domain"
	"github.com/vietanh2810/icecream-api/internal/form"
)

type mockFlavourService struct {
	mock.Mock
}

func (m *mockFlavourService) List(ctx context.Context) ([]domain.Flavour, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flavour), args.Error(1)
}

func (m *mockFlavourService) Get(ctx context.Context, id uint) (domain.Flavour, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Flavour), args.Error(1)
}

func (m *mockFlavourService) Submit(ctx context.Context, raw form.Flavour, existing *domain.Flavour) (domain.Flavour, error) {
	args := m.Called(ctx, raw, existing)
	return args.Get(0).(domain.Flavour), args.Error(1)
}

func (m *mockFlavourService) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockPersonService struct {
	mock.Mock
}

func (m *mockPersonService) List(ctx context.Context) ([]domain.Person, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Person), args.Error(1)
}

func (m *mockPersonService) Get(ctx context.Context, id uint) (domain.Person, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Person), args.Error(1)
}

func (m *mockPersonService) Create(ctx context.Context, person domain.Person) (domain.Person, error) {
	args := m.Called(ctx, person)
	return args.Get(0).(domain.Person), args.Error(1)
}

func (m *mockPersonService) Update(ctx context.Context, person domain.Person) (domain.Person, error) {
	args := m.Called(ctx, person)
	return args.Get(0).(domain.Person), args.Error(1)
}

func (m *mockPersonService) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}
