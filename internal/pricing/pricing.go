// Package pricing is the menu price model. It is the single source of
// truth for both the server and the client; the two sides must agree on
// this table or stored records and live lookups drift apart.
package pricing

import "sort"

// Tier is a coarse classification of a total price.
type Tier string

const (
	TierUnknown   Tier = "unknown"
	TierOK        Tier = "ok"
	TierCheap     Tier = "cheap"
	TierExpensive Tier = "expensive"
)

// menuPrices maps every orderable dish to its unit price.
// The names must match the client's selection input exactly.
var menuPrices = map[string]int{
	"Spaghetti bolognese":    125,
	"Pasta carbonara":        129,
	"Kycklinggryta":          119,
	"Köttbullar med potatis": 115,
	"Lasagne":                125,
	"Hamburgare":             135,
	"Kebabtallrik":           129,
	"Pizza Margherita":       115,
	"Sushi":                  149,
	"Tacos":                  119,
	"Pad thai":               139,
	"Ramen":                  145,
	"Fried rice":             119,
	"Fish & chips":           139,
	"Caesarsallad":           115,
	"Grillad lax":            159,
	"Tomatsoppa":             89,
	"Falafel":                109,
	"Vegetarisk chili":       109,
	"Pannkakor":              95,
}

// PriceOf returns the unit price for a menu item name.
// Unknown names return 0, which signals an invalid selection.
func PriceOf(name string) int {
	return menuPrices[name]
}

// TierOf classifies a total price. The bands are inclusive on the lower
// side: a total of exactly 500 is ok, exactly 1500 is cheap.
func TierOf(total int) Tier {
	switch {
	case total <= 0:
		return TierUnknown
	case total > 1500:
		return TierExpensive
	case total <= 500:
		return TierOK
	default:
		return TierCheap
	}
}

// Names returns every menu item name in alphabetical order,
// for selection inputs.
func Names() []string {
	names := make([]string, 0, len(menuPrices))
	for name := range menuPrices {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
