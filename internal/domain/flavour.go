package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Flavour struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Litres    float64         `json:"litres"` // stock currently in the store
	Sellprice decimal.Decimal `json:"sellprice"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (f Flavour) String() string {
	return f.Name
}
