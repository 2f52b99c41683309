package domain

type Person struct {
	ID                 uint     `json:"id"`
	Name               string   `json:"name"`
	FavouriteFlavourID uint     `json:"favourite_flavour_id"`
	FavouriteFlavour   *Flavour `json:"favourite_flavour,omitempty"`
}

func (p Person) String() string {
	return p.Name
}
