// Package catalog holds the static reference data of craftable items.
// A Catalog is built once and never mutated; every listing it returns
// follows definition order.
package catalog

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// UnknownCategory is the bucket for item names not present in any category.
const UnknownCategory = "Unknown"

// Item is a craftable item and the materials one craft consumes.
type Item struct {
	Name      string
	Materials []string
}

// Category groups items under a display name.
type Category struct {
	Name  string
	Items []Item
}

// Catalog is an immutable, ordered category → item → materials table.
type Catalog struct {
	categories []Category
	owner      map[string]string
	items      map[string]Item
}

// New builds a Catalog from the given categories.
// Item names must be unique across the whole catalog.
func New(categories []Category) (*Catalog, error) {
	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		owner:      make(map[string]string),
		items:      make(map[string]Item),
	}

	for _, cat := range categories {
		if cat.Name == "" || cat.Name == UnknownCategory {
			return nil, fmt.Errorf("invalid category name %q", cat.Name)
		}
		copied := Category{Name: cat.Name, Items: make([]Item, 0, len(cat.Items))}
		for _, item := range cat.Items {
			if strings.ContainsAny(item.Name, "|") {
				return nil, fmt.Errorf("item name %q must not contain '|'", item.Name)
			}
			if prev, ok := c.owner[item.Name]; ok {
				return nil, fmt.Errorf("item %q defined in both %s and %s", item.Name, prev, cat.Name)
			}
			it := Item{Name: item.Name, Materials: append([]string(nil), item.Materials...)}
			c.owner[item.Name] = cat.Name
			c.items[item.Name] = it
			copied.Items = append(copied.Items, it)
		}
		c.categories = append(c.categories, copied)
	}

	return c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New([]Category{
		{Name: "Craft", Items: []Item{
			{Name: "Umbra Crystal", Materials: []string{"Fish Remains", "Shell Elixir", "Black Ink"}},
			{Name: "Fire Seed", Materials: []string{"Poison", "Iron Ore", "Hidden Honey"}},
		}},
		{Name: "Cooking", Items: []Item{
			{Name: "Field Brew", Materials: []string{"Herbs", "Water", "Spices"}},
		}},
		{Name: "Manufacturing", Items: []Item{
			{Name: "Flash Bomb", Materials: []string{"Lightning Heart", "Enchanted Wood Strip", "Mystic Leaf"}},
		}},
	})
	if err != nil {
		panic(err)
	}
	return c
}

// Categories returns category names in definition order.
func (c *Catalog) Categories() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

// Items returns the item names of a category in definition order.
// An unknown category yields nil.
func (c *Catalog) Items(category string) []string {
	for _, cat := range c.categories {
		if cat.Name != category {
			continue
		}
		names := make([]string, len(cat.Items))
		for i, item := range cat.Items {
			names[i] = item.Name
		}
		return names
	}
	return nil
}

// Materials returns the required materials of an item in definition order.
func (c *Catalog) Materials(item string) ([]string, bool) {
	it, ok := c.items[item]
	if !ok {
		return nil, false
	}
	return append([]string(nil), it.Materials...), true
}

// CategoryOf returns the category owning item, or UnknownCategory.
func (c *Catalog) CategoryOf(item string) string {
	if cat, ok := c.owner[item]; ok {
		return cat
	}
	return UnknownCategory
}

// Suggest returns the closest catalog item to name when it is within a
// small edit distance, or "" if nothing is close enough.
func (c *Catalog) Suggest(name string) string {
	name = strings.TrimSpace(name)
	if len(name) < 3 {
		return ""
	}
	if _, ok := c.items[name]; ok {
		return ""
	}

	best := ""
	bestDist := -1
	for _, cat := range c.categories {
		for _, item := range cat.Items {
			dist := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(item.Name))
			if dist > suggestLimit(len(item.Name)) {
				continue
			}
			if bestDist < 0 || dist < bestDist {
				best, bestDist = item.Name, dist
			}
		}
	}
	return best
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
