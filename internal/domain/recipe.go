package domain

// Recipe is one catalog entry: a menu item with the unit price it was
// stored with and the number of servings ordered.
type Recipe struct {
	ID uint `json:"id"`

	Name string `json:"name"`

	// Price is the unit price recorded at write time. The store never
	// recomputes it from Name, so a record keeps the price it was
	// created with even if the menu table changes later.
	Price int `json:"price"`

	Servings int `json:"servings"`
}

// TotalPrice is always derived, never stored.
func (r Recipe) TotalPrice() int {
	return r.Price * r.Servings
}
