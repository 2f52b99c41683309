package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrFlavourNotFound = errors.New("flavour not found")
	ErrFlavourInUse    = errors.New("flavour is still referenced by a person")
)

type Flavour struct {
	ID uint `gorm:"primaryKey"`

	Name      string          `gorm:"size:40;not null"`
	Litres    float64         `gorm:"not null"`
	Sellprice decimal.Decimal `gorm:"type:numeric(5,2);not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type FlavourDAO struct {
	db *gorm.DB
}

func NewFlavourDAO(db *gorm.DB) *FlavourDAO {
	return &FlavourDAO{
		db: db,
	}
}

func (d *FlavourDAO) Insert(ctx context.Context, flavour Flavour) (Flavour, error) {
	result := d.db.WithContext(ctx).Create(&flavour)
	if result.Error != nil {
		return Flavour{}, result.Error
	}

	return flavour, nil
}

func (d *FlavourDAO) FindByID(ctx context.Context, id uint) (Flavour, error) {
	var flavour Flavour

	result := d.db.WithContext(ctx).First(&flavour, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Flavour{}, ErrFlavourNotFound
		}

		return Flavour{}, result.Error
	}

	return flavour, nil
}

func (d *FlavourDAO) FindAll(ctx context.Context) ([]Flavour, error) {
	var flavours []Flavour

	result := d.db.WithContext(ctx).Order("id").Find(&flavours)
	if result.Error != nil {
		return nil, result.Error
	}

	return flavours, nil
}

// Update overwrites name, litres and sellprice of the row with flavour.ID.
// There is no version check, the last writer wins.
func (d *FlavourDAO) Update(ctx context.Context, flavour Flavour) (Flavour, error) {
	result := d.db.WithContext(ctx).
		Model(&Flavour{ID: flavour.ID}).
		Select("Name", "Litres", "Sellprice").
		Updates(&flavour)
	if result.Error != nil {
		return Flavour{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Flavour{}, ErrFlavourNotFound
	}

	return d.FindByID(ctx, flavour.ID)
}

func (d *FlavourDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Flavour{}, id)
	if result.Error != nil {
		if isPgError(result.Error, pgerrcode.ForeignKeyViolation) {
			return ErrFlavourInUse
		}

		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFlavourNotFound
	}

	return nil
}
