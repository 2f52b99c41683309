package request

import (
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/icecream-api/internal/form"
)

// FlavourRequest accepts litres and sellprice as JSON numbers or strings, so
// the digits of the price arrive exactly as the client wrote them.
type FlavourRequest struct {
	Name      string      `json:"name" example:"Vanilla"`
	Litres    json.Number `json:"litres" swaggertype:"string" example:"10.5"`
	Sellprice json.Number `json:"sellprice" swaggertype:"string" example:"3.50"`
}

// Form hands the request to the same validation as the web form.
func (req *FlavourRequest) Form() form.Flavour {
	return form.Flavour{
		Name:      req.Name,
		Litres:    req.Litres.String(),
		Sellprice: req.Sellprice.String(),
	}
}

type PersonRequest struct {
	Name               string `json:"name" example:"Alice"`
	FavouriteFlavourID uint   `json:"favourite_flavour_id" example:"1"`
}

func (req *PersonRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.RuneLength(1, 60)),
		validation.Field(&req.FavouriteFlavourID, validation.Required, validation.Min(uint(1))),
	)
}
