package response

import (
	"time"

	"github.com/vietanh2810/icecream-api/internal/domain"
	"github.com/vietanh2810/icecream-api/internal/form"
)

type Flavour struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Litres    float64   `json:"litres"`
	Sellprice string    `json:"sellprice" example:"3.50"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewFlavour(f domain.Flavour) Flavour {
	return Flavour{
		ID:        f.ID,
		Name:      f.Name,
		Litres:    f.Litres,
		Sellprice: f.Sellprice.StringFixed(form.SellpriceDecimalPlaces),
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func NewFlavours(flavours []domain.Flavour) []Flavour {
	out := make([]Flavour, 0, len(flavours))
	for _, f := range flavours {
		out = append(out, NewFlavour(f))
	}

	return out
}

type Person struct {
	ID                 uint     `json:"id"`
	Name               string   `json:"name"`
	FavouriteFlavourID uint     `json:"favourite_flavour_id"`
	FavouriteFlavour   *Flavour `json:"favourite_flavour,omitempty"`
}

func NewPerson(p domain.Person) Person {
	out := Person{
		ID:                 p.ID,
		Name:               p.Name,
		FavouriteFlavourID: p.FavouriteFlavourID,
	}
	if p.FavouriteFlavour != nil {
		f := NewFlavour(*p.FavouriteFlavour)
		out.FavouriteFlavour = &f
	}

	return out
}

func NewPersons(persons []domain.Person) []Person {
	out := make([]Person, 0, len(persons))
	for _, p := range persons {
		out = append(out, NewPerson(p))
	}

	return out
}
