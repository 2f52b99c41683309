package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/icecream-api/internal/domain"
	"github.com/vietanh2810/icecream-api/internal/repository"
)

var (
	ErrPersonNotFound          = repository.ErrPersonNotFound
	ErrFavouriteFlavourMissing = repository.ErrFavouriteFlavourMissing
)

type PersonRepository interface {
	Create(ctx context.Context, person domain.Person) (domain.Person, error)
	FindByID(ctx context.Context, id uint) (domain.Person, error)
	FindAll(ctx context.Context) ([]domain.Person, error)
	Update(ctx context.Context, person domain.Person) (domain.Person, error)
	Delete(ctx context.Context, id uint) error
}

type PersonService struct {
	repo        PersonRepository
	flavourRepo FlavourRepository
}

func NewPersonService(repo PersonRepository, flavourRepo FlavourRepository) *PersonService {
	return &PersonService{
		repo:        repo,
		flavourRepo: flavourRepo,
	}
}

func (s *PersonService) List(ctx context.Context) ([]domain.Person, error) {
	persons, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return persons, nil
}

func (s *PersonService) Get(ctx context.Context, id uint) (domain.Person, error) {
	person, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Person{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return person, nil
}

func (s *PersonService) Create(ctx context.Context, person domain.Person) (domain.Person, error) {
	if err := s.checkFavourite(ctx, person.FavouriteFlavourID); err != nil {
		return domain.Person{}, err
	}

	created, err := s.repo.Create(ctx, person)
	if err != nil {
		return domain.Person{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *PersonService) Update(ctx context.Context, person domain.Person) (domain.Person, error) {
	if _, err := s.repo.FindByID(ctx, person.ID); err != nil {
		return domain.Person{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if err := s.checkFavourite(ctx, person.FavouriteFlavourID); err != nil {
		return domain.Person{}, err
	}

	updated, err := s.repo.Update(ctx, person)
	if err != nil {
		return domain.Person{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *PersonService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// checkFavourite makes sure the referenced flavour exists at write time. The
// foreign key still guards against a concurrent delete.
func (s *PersonService) checkFavourite(ctx context.Context, flavourID uint) error {
	_, err := s.flavourRepo.FindByID(ctx, flavourID)
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrFlavourNotFound) {
		return fmt.Errorf("s.flavourRepo.FindByID -> %w", ErrFavouriteFlavourMissing)
	}

	return fmt.Errorf("s.flavourRepo.FindByID -> %w", err)
}
