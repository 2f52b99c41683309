package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/icecream-api/internal/domain"
	"github.com/vietanh2810/icecream-api/internal/form"
	"github.com/vietanh2810/icecream-api/internal/repository"
)

var (
	ErrFlavourNotFound = repository.ErrFlavourNotFound
	ErrFlavourInUse    = repository.ErrFlavourInUse
)

const (
	OpAdd    = "add"
	OpEdit   = "edit"
	OpDelete = "delete"
)

type FlavourRepository interface {
	Create(ctx context.Context, flavour domain.Flavour) (domain.Flavour, error)
	FindByID(ctx context.Context, id uint) (domain.Flavour, error)
	FindAll(ctx context.Context) ([]domain.Flavour, error)
	Update(ctx context.Context, flavour domain.Flavour) (domain.Flavour, error)
	Delete(ctx context.Context, id uint) error
}

// Recorder is notified about successful changes and rejected forms.
type Recorder interface {
	FlavourChanged(op string)
	FormRejected(op string)
}

// RulesFunc returns the form rules in force for the current request.
type RulesFunc func() form.Rules

type FlavourService struct {
	repo     FlavourRepository
	rules    RulesFunc
	recorder Recorder
}

func NewFlavourService(repo FlavourRepository, rules RulesFunc, recorder Recorder) *FlavourService {
	if rules == nil {
		rules = form.DefaultRules
	}

	return &FlavourService{
		repo:     repo,
		rules:    rules,
		recorder: recorder,
	}
}

func (s *FlavourService) List(ctx context.Context) ([]domain.Flavour, error) {
	flavours, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return flavours, nil
}

func (s *FlavourService) Get(ctx context.Context, id uint) (domain.Flavour, error) {
	flavour, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Flavour{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return flavour, nil
}

// Submit validates raw and saves it: a new flavour when existing is nil,
// otherwise existing is updated in place. Nothing is written when raw is
// invalid; the error is then a *form.ValidationError.
func (s *FlavourService) Submit(ctx context.Context, raw form.Flavour, existing *domain.Flavour) (domain.Flavour, error) {
	op := OpAdd
	if existing != nil {
		op = OpEdit
	}

	data, err := raw.Clean(s.rules())
	if err != nil {
		s.recordRejected(op)
		return domain.Flavour{}, err
	}

	var saved domain.Flavour
	if existing == nil {
		var flavour domain.Flavour
		data.Apply(&flavour)
		saved, err = s.repo.Create(ctx, flavour)
		if err != nil {
			return domain.Flavour{}, fmt.Errorf("s.repo.Create -> %w", err)
		}
	} else {
		flavour := *existing
		data.Apply(&flavour)
		saved, err = s.repo.Update(ctx, flavour)
		if err != nil {
			return domain.Flavour{}, fmt.Errorf("s.repo.Update -> %w", err)
		}
	}

	s.recordChanged(op)

	return saved, nil
}

func (s *FlavourService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	s.recordChanged(OpDelete)

	return nil
}

func (s *FlavourService) recordChanged(op string) {
	if s.recorder != nil {
		s.recorder.FlavourChanged(op)
	}
}

func (s *FlavourService) recordRejected(op string) {
	if s.recorder != nil {
		s.recorder.FormRejected(op)
	}
}
