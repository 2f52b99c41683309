package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/icecream-api/internal/domain"
	"github.com/vietanh2810/icecream-api/internal/repository/dao"
)

var (
	ErrFlavourNotFound = dao.ErrFlavourNotFound
	ErrFlavourInUse    = dao.ErrFlavourInUse
)

type FlavourDAO interface {
	Insert(ctx context.Context, flavour dao.Flavour) (dao.Flavour, error)
	FindByID(ctx context.Context, id uint) (dao.Flavour, error)
	FindAll(ctx context.Context) ([]dao.Flavour, error)
	Update(ctx context.Context, flavour dao.Flavour) (dao.Flavour, error)
	Delete(ctx context.Context, id uint) error
}

type FlavourRepository struct {
	dao FlavourDAO
}

func NewFlavourRepository(dao FlavourDAO) *FlavourRepository {
	return &FlavourRepository{
		dao: dao,
	}
}

func (r *FlavourRepository) Create(ctx context.Context, flavour domain.Flavour) (domain.Flavour, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(flavour))
	if err != nil {
		return domain.Flavour{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *FlavourRepository) FindByID(ctx context.Context, id uint) (domain.Flavour, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Flavour{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *FlavourRepository) FindAll(ctx context.Context) ([]domain.Flavour, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	flavours := make([]domain.Flavour, 0, len(found))
	for _, f := range found {
		flavours = append(flavours, r.daoToDomain(f))
	}

	return flavours, nil
}

func (r *FlavourRepository) Update(ctx context.Context, flavour domain.Flavour) (domain.Flavour, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(flavour))
	if err != nil {
		return domain.Flavour{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *FlavourRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *FlavourRepository) domainToDao(f domain.Flavour) dao.Flavour {
	return dao.Flavour{
		ID:        f.ID,
		Name:      f.Name,
		Litres:    f.Litres,
		Sellprice: f.Sellprice,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func (r *FlavourRepository) daoToDomain(f dao.Flavour) domain.Flavour {
	return domain.Flavour{
		ID:        f.ID,
		Name:      f.Name,
		Litres:    f.Litres,
		Sellprice: f.Sellprice,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
