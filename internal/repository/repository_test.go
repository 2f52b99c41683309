package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/icecream-api/internal/domain"
	"github.com/vietanh2810/icecream-api/internal/repository/dao"
)

type mockFlavourDAO struct {
	mock.Mock
}

func (m *mockFlavourDAO) Insert(ctx context.Context, flavour dao.Flavour) (dao.Flavour, error) {
	args := m.Called(ctx, flavour)
	return args.Get(0).(dao.Flavour), args.Error(1)
}

func (m *mockFlavourDAO) FindByID(ctx context.Context, id uint) (dao.Flavour, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dao.Flavour), args.Error(1)
}

func (m *mockFlavourDAO) FindAll(ctx context.Context) ([]dao.Flavour, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dao.Flavour), args.Error(1)
}

func (m *mockFlavourDAO) Update(ctx context.Context, flavour dao.Flavour) (dao.Flavour, error) {
	args := m.Called(ctx, flavour)
	return args.Get(0).(dao.Flavour), args.Error(1)
}

func (m *mockFlavourDAO) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockPersonDAO struct {
	mock.Mock
}

func (m *mockPersonDAO) Insert(ctx context.Context, person dao.Person) (dao.Person, error) {
	args := m.Called(ctx, person)
	return args.Get(0).(dao.Person), args.Error(1)
}

func (m *mockPersonDAO) FindByID(ctx context.Context, id uint) (dao.Person, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dao.Person), args.Error(1)
}

func (m *mockPersonDAO) FindAll(ctx context.Context) ([]dao.Person, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dao.Person), args.Error(1)
}

func (m *mockPersonDAO) Update(ctx context.Context, person dao.Person) (dao.Person, error) {
	args := m.Called(ctx, person)
	return args.Get(0).(dao.Person), args.Error(1)
}

func (m *mockPersonDAO) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func TestFlavourRepository_Create(t *testing.T) {
	ctx := context.Background()
	price := decimal.RequireFromString("3.50")
	d := &mockFlavourDAO{}
	d.On("Insert", ctx, dao.Flavour{Name: "Vanilla", Litres: 10.5, Sellprice: price}).
		Return(dao.Flavour{ID: 7, Name: "Vanilla", Litres: 10.5, Sellprice: price}, nil)

	created, err := NewFlavourRepository(d).Create(ctx, domain.Flavour{Name: "Vanilla", Litres: 10.5, Sellprice: price})
	require.NoError(t, err)
	assert.Equal(t, uint(7), created.ID)
	assert.Equal(t, "Vanilla", created.Name)
	d.AssertExpectations(t)
}

func TestFlavourRepository_WrapsSentinels(t *testing.T) {
	ctx := context.Background()
	d := &mockFlavourDAO{}
	d.On("FindByID", ctx, uint(3)).Return(dao.Flavour{}, dao.ErrFlavourNotFound)
	d.On("Delete", ctx, uint(4)).Return(dao.ErrFlavourInUse)
	repo := NewFlavourRepository(d)

	_, err := repo.FindByID(ctx, 3)
	assert.ErrorIs(t, err, ErrFlavourNotFound)
	assert.Contains(t, err.Error(), "r.dao.FindByID")

	assert.ErrorIs(t, repo.Delete(ctx, 4), ErrFlavourInUse)
}

func TestFlavourRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	d := &mockFlavourDAO{}
	d.On("FindAll", ctx).Return([]dao.Flavour{{ID: 1, Name: "Vanilla"}, {ID: 2, Name: "Mint"}}, nil)

	flavours, err := NewFlavourRepository(d).FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, flavours, 2)
	assert.Equal(t, "Mint", flavours[1].Name)
}

func TestPersonRepository_MapsFavourite(t *testing.T) {
	ctx := context.Background()
	d := &mockPersonDAO{}
	d.On("FindByID", ctx, uint(1)).Return(dao.Person{
		ID:                 1,
		Name:               "Ada",
		FavouriteFlavourID: 2,
		FavouriteFlavour:   dao.Flavour{ID: 2, Name: "Mint"},
	}, nil)
	d.On("FindByID", ctx, uint(9)).Return(dao.Person{}, errors.New("connection reset"))
	repo := NewPersonRepository(d, NewFlavourRepository(&mockFlavourDAO{}))

	person, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, person.FavouriteFlavour)
	assert.Equal(t, "Mint", person.FavouriteFlavour.Name)

	_, err = repo.FindByID(ctx, 9)
	assert.EqualError(t, err, "r.dao.FindByID -> connection reset")
}

func TestPersonRepository_CreateUnknownFavourite(t *testing.T) {
	ctx := context.Background()
	d := &mockPersonDAO{}
	d.On("Insert", ctx, dao.Person{Name: "Ada", FavouriteFlavourID: 5}).Return(dao.Person{}, dao.ErrFavouriteFlavourMissing)

	_, err := NewPersonRepository(d, nil).Create(ctx, domain.Person{Name: "Ada", FavouriteFlavourID: 5})
	assert.ErrorIs(t, err, ErrFavouriteFlavourMissing)
}
