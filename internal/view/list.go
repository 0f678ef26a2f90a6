// Package view renders the fetched collection as a read-only view model.
package view

import (
	"github.com/gik339/recipe-catalog/internal/domain"
	"github.com/gik339/recipe-catalog/internal/pricing"
)

// EmptyMessage is shown when the collection has no records yet.
const EmptyMessage = "No recipes yet."

// Action identifies the two affordances each item offers. Dispatching
// them is the caller's job; the renderer never mutates anything.
type Action string

const (
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Item is one rendered record with its derived fields.
type Item struct {
	ID        uint
	Name      string
	UnitPrice int
	Servings  int
	Total     int
	Tier      pricing.Tier
	Actions   []Action
}

// List is the rendered collection.
type List struct {
	Items []Item

	// Empty carries the explicit empty-state message when there are no
	// items, and is blank otherwise.
	Empty string
}

// RenderList is a pure function of the given snapshot.
func RenderList(records []domain.Recipe) List {
	if len(records) == 0 {
		return List{Empty: EmptyMessage}
	}

	items := make([]Item, 0, len(records))
	for _, r := range records {
		total := r.TotalPrice()
		items = append(items, Item{
			ID:        r.ID,
			Name:      r.Name,
			UnitPrice: r.Price,
			Servings:  r.Servings,
			Total:     total,
			Tier:      pricing.TierOf(total),
			Actions:   []Action{ActionEdit, ActionDelete},
		})
	}

	return List{Items: items}
}
