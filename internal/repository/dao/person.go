package dao

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrPersonNotFound          = errors.New("person not found")
	ErrFavouriteFlavourMissing = errors.New("favourite flavour does not exist")
)

type Person struct {
	ID uint `gorm:"primaryKey"`

	Name string `gorm:"size:60;not null"`

	FavouriteFlavourID uint    `gorm:"not null;index"`
	FavouriteFlavour   Flavour `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

type PersonDAO struct {
	db *gorm.DB
}

func NewPersonDAO(db *gorm.DB) *PersonDAO {
	return &PersonDAO{
		db: db,
	}
}

func (d *PersonDAO) Insert(ctx context.Context, person Person) (Person, error) {
	result := d.db.WithContext(ctx).Omit(clause.Associations).Create(&person)
	if result.Error != nil {
		if isPgError(result.Error, pgerrcode.ForeignKeyViolation) {
			return Person{}, ErrFavouriteFlavourMissing
		}

		return Person{}, result.Error
	}

	return d.FindByID(ctx, person.ID)
}

func (d *PersonDAO) FindByID(ctx context.Context, id uint) (Person, error) {
	var person Person

	result := d.db.WithContext(ctx).Preload("FavouriteFlavour").First(&person, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Person{}, ErrPersonNotFound
		}

		return Person{}, result.Error
	}

	return person, nil
}

func (d *PersonDAO) FindAll(ctx context.Context) ([]Person, error) {
	var persons []Person

	result := d.db.WithContext(ctx).Preload("FavouriteFlavour").Order("id").Find(&persons)
	if result.Error != nil {
		return nil, result.Error
	}

	return persons, nil
}

func (d *PersonDAO) Update(ctx context.Context, person Person) (Person, error) {
	result := d.db.WithContext(ctx).
		Model(&Person{ID: person.ID}).
		Select("Name", "FavouriteFlavourID").
		Omit(clause.Associations).
		Updates(&person)
	if result.Error != nil {
		if isPgError(result.Error, pgerrcode.ForeignKeyViolation) {
			return Person{}, ErrFavouriteFlavourMissing
		}

		return Person{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Person{}, ErrPersonNotFound
	}

	return d.FindByID(ctx, person.ID)
}

func (d *PersonDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Person{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPersonNotFound
	}

	return nil
}
