package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/icecream-api/internal/domain"
	"github.com/vietanh2810/icecream-api/internal/repository/dao"
)

var (
	ErrPersonNotFound          = dao.ErrPersonNotFound
	ErrFavouriteFlavourMissing = dao.ErrFavouriteFlavourMissing
)

type PersonDAO interface {
	Insert(ctx context.Context, person dao.Person) (dao.Person, error)
	FindByID(ctx context.Context, id uint) (dao.Person, error)
	FindAll(ctx context.Context) ([]dao.Person, error)
	Update(ctx context.Context, person dao.Person) (dao.Person, error)
	Delete(ctx context.Context, id uint) error
}

type PersonRepository struct {
	dao     PersonDAO
	flavour *FlavourRepository
}

func NewPersonRepository(dao PersonDAO, flavour *FlavourRepository) *PersonRepository {
	return &PersonRepository{
		dao:     dao,
		flavour: flavour,
	}
}

func (r *PersonRepository) Create(ctx context.Context, person domain.Person) (domain.Person, error) {
	created, err := r.dao.Insert(ctx, dao.Person{
		Name:               person.Name,
		FavouriteFlavourID: person.FavouriteFlavourID,
	})
	if err != nil {
		return domain.Person{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *PersonRepository) FindByID(ctx context.Context, id uint) (domain.Person, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Person{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *PersonRepository) FindAll(ctx context.Context) ([]domain.Person, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	persons := make([]domain.Person, 0, len(found))
	for _, p := range found {
		persons = append(persons, r.daoToDomain(p))
	}

	return persons, nil
}

func (r *PersonRepository) Update(ctx context.Context, person domain.Person) (domain.Person, error) {
	updated, err := r.dao.Update(ctx, dao.Person{
		ID:                 person.ID,
		Name:               person.Name,
		FavouriteFlavourID: person.FavouriteFlavourID,
	})
	if err != nil {
		return domain.Person{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *PersonRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *PersonRepository) daoToDomain(p dao.Person) domain.Person {
	person := domain.Person{
		ID:                 p.ID,
		Name:               p.Name,
		FavouriteFlavourID: p.FavouriteFlavourID,
	}
	if p.FavouriteFlavour.ID != 0 {
		favourite := r.flavour.daoToDomain(p.FavouriteFlavour)
		person.FavouriteFlavour = &favourite
	}

	return person
}
