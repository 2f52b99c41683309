package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/icecream-api/internal/domain"
	"github.com/vietanh2810/icecream-api/internal/form"
)

func TestFlavourService_SubmitCreates(t *testing.T) {
	ctx := context.Background()
	repo := &mockFlavourRepository{}
	rec := newCountingRecorder()
	want := domain.Flavour{Name: "Vanilla", Litres: 10.5, Sellprice: decimal.RequireFromString("3.50")}
	repo.On("Create", ctx, mock.MatchedBy(func(f domain.Flavour) bool {
		return f.ID == 0 && f.Name == want.Name && f.Litres == want.Litres && f.Sellprice.Equal(want.Sellprice)
	})).Return(domain.Flavour{ID: 1, Name: "Vanilla", Litres: 10.5, Sellprice: want.Sellprice}, nil)

	svc := NewFlavourService(repo, nil, rec)
	saved, err := svc.Submit(ctx, form.Flavour{Name: "Vanilla", Litres: "10.5", Sellprice: "3.50"}, nil)
	require.NoError(t, err)

	assert.Equal(t, uint(1), saved.ID)
	assert.Equal(t, 1, rec.changed[OpAdd])
	repo.AssertExpectations(t)
}

func TestFlavourService_SubmitInvalidWritesNothing(t *testing.T) {
	ctx := context.Background()
	repo := &mockFlavourRepository{}
	rec := newCountingRecorder()

	svc := NewFlavourService(repo, nil, rec)
	_, err := svc.Submit(ctx, form.Flavour{Name: "Vanilla", Litres: "1", Sellprice: "1234.56"}, nil)

	var verr *form.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"sellprice"}, verr.FieldNames())
	assert.Equal(t, 1, rec.rejected[OpAdd])
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFlavourService_SubmitUpdatesInPlace(t *testing.T) {
	ctx := context.Background()
	repo := &mockFlavourRepository{}
	rec := newCountingRecorder()
	existing := domain.Flavour{ID: 4, Name: "Mint", Litres: 1, Sellprice: decimal.NewFromInt(1)}
	repo.On("Update", ctx, mock.MatchedBy(func(f domain.Flavour) bool {
		return f.ID == 4 && f.Name == "Mint Chip" && f.Litres == 2
	})).Return(domain.Flavour{ID: 4, Name: "Mint Chip", Litres: 2, Sellprice: decimal.RequireFromString("2.00")}, nil)

	svc := NewFlavourService(repo, nil, rec)
	saved, err := svc.Submit(ctx, form.Flavour{Name: "Mint Chip", Litres: "2", Sellprice: "2"}, &existing)
	require.NoError(t, err)

	assert.Equal(t, uint(4), saved.ID)
	assert.Equal(t, "Mint", existing.Name, "caller's copy is not mutated")
	assert.Equal(t, 1, rec.changed[OpEdit])
	repo.AssertExpectations(t)
}

func TestFlavourService_SubmitUsesCurrentRules(t *testing.T) {
	ctx := context.Background()
	repo := &mockFlavourRepository{}
	rules := form.Rules{AllowNegativeLitres: false}

	svc := NewFlavourService(repo, func() form.Rules { return rules }, nil)
	_, err := svc.Submit(ctx, form.Flavour{Name: "Mint", Litres: "-1", Sellprice: "1"}, nil)
	var verr *form.ValidationError
	require.ErrorAs(t, err, &verr)

	rules.AllowNegativeLitres = true
	repo.On("Create", ctx, mock.Anything).Return(domain.Flavour{ID: 2, Litres: -1}, nil)
	_, err = svc.Submit(ctx, form.Flavour{Name: "Mint", Litres: "-1", Sellprice: "1"}, nil)
	assert.NoError(t, err)
}

func TestFlavourService_GetNotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mockFlavourRepository{}
	repo.On("FindByID", ctx, uint(99)).Return(domain.Flavour{}, ErrFlavourNotFound)

	_, err := NewFlavourService(repo, nil, nil).Get(ctx, 99)
	assert.ErrorIs(t, err, ErrFlavourNotFound)
}

func TestFlavourService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := &mockFlavourRepository{}
	rec := newCountingRecorder()
	repo.On("Delete", ctx, uint(1)).Return(nil)
	repo.On("Delete", ctx, uint(2)).Return(ErrFlavourInUse)
	repo.On("Delete", ctx, uint(3)).Return(errors.New("connection refused"))

	svc := NewFlavourService(repo, nil, rec)
	assert.NoError(t, svc.Delete(ctx, 1))
	assert.ErrorIs(t, svc.Delete(ctx, 2), ErrFlavourInUse)
	assert.EqualError(t, svc.Delete(ctx, 3), "s.repo.Delete -> connection refused")
	assert.Equal(t, 1, rec.changed[OpDelete])
}

func TestFlavourService_List(t *testing.T) {
	ctx := context.Background()
	repo := &mockFlavourRepository{}
	repo.On("FindAll", ctx).Return([]domain.Flavour{{ID: 1}, {ID: 2}}, nil)

	flavours, err := NewFlavourService(repo, nil, nil).List(ctx)
	require.NoError(t, err)
	assert.Len(t, flavours, 2)
}
