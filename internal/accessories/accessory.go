package accessories

import (
	"slices"
	"strings"
)

// Category groups accessories for display. Equipping is not per category:
// a profile has a single equip slot.
type Category string

const (
	CategoryHat     Category = "hat"
	CategoryGlasses Category = "glasses"
	CategoryBadge   Category = "badge"
	CategoryFrame   Category = "frame"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{CategoryHat, CategoryGlasses, CategoryBadge, CategoryFrame}
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryHat:
		return "Hats"
	case CategoryGlasses:
		return "Glasses"
	case CategoryBadge:
		return "Badges"
	case CategoryFrame:
		return "Frames"
	default:
		return string(c)
	}
}

// Accessory is a cosmetic item bought with stars. Name is the ownership key.
type Accessory struct {
	ID          string
	Name        string
	Price       int
	Category    Category
	Description string
}

// Catalog is the set of purchasable accessories, keyed by name.
type Catalog struct {
	items  []Accessory
	byName map[string]int
}

// NewCatalog indexes items by name. Later duplicates of a name are ignored.
func NewCatalog(items []Accessory) *Catalog {
	c := &Catalog{byName: make(map[string]int, len(items))}
	for _, a := range items {
		key := strings.ToLower(a.Name)
		if _, dup := c.byName[key]; dup {
			continue
		}
		c.byName[key] = len(c.items)
		c.items = append(c.items, a)
	}
	return c
}

// DefaultCatalog returns the built-in accessory shop.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Accessory{
		{ID: "acc-cap", Name: "Cap", Price: 30, Category: CategoryHat, Description: "A sporty cap"},
		{ID: "acc-crown", Name: "Crown", Price: 250, Category: CategoryHat, Description: "For the top of the leaderboard"},
		{ID: "acc-shades", Name: "Sunglasses", Price: 50, Category: CategoryGlasses, Description: "Too cool for grammar"},
		{ID: "acc-monocle", Name: "Monocle", Price: 120, Category: CategoryGlasses, Description: "Distinguished learner"},
		{ID: "acc-star", Name: "Star Badge", Price: 80, Category: CategoryBadge, Description: "Shows off your stars"},
		{ID: "acc-gold", Name: "Golden Frame", Price: 200, Category: CategoryFrame, Description: "A golden avatar frame"},
	})
}

// Lookup finds an accessory by name, case-insensitively.
func (c *Catalog) Lookup(name string) (Accessory, bool) {
	i, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Accessory{}, false
	}
	return c.items[i], true
}

// All returns every accessory in catalog order.
func (c *Catalog) All() []Accessory {
	return slices.Clone(c.items)
}

// ByCategory returns the accessories of one category in catalog order.
func (c *Catalog) ByCategory(cat Category) []Accessory {
	var out []Accessory
	for _, a := range c.items {
		if a.Category == cat {
			out = append(out, a)
		}
	}
	return out
}
