// Package catalog loads power and trait catalogs and answers the read-only
// queries the builder needs: lookups, power set filters, name searches and
// suggestions. A Catalog is built once and never mutated afterwards.
package catalog

import (
	"slices"
	"sort"

	"github.com/smkun/MarvelPowers/internal/entities"
)

// Catalog maps entry names to entries for a single category, remembering the
// order entries appeared in the source.
type Catalog struct {
	category entities.Category
	order    []string
	entries  map[string]entities.Entry
}

// New builds a catalog from entries. Later entries replace earlier ones with
// the same name but keep the earlier position.
func New(category entities.Category, entries ...entities.Entry) *Catalog {
	c := &Catalog{
		category: category,
		entries:  make(map[string]entities.Entry, len(entries)),
	}
	for _, e := range entries {
		c.add(e)
	}
	return c
}

func (c *Catalog) add(e entities.Entry) {
	e.Category = c.category
	if _, exists := c.entries[e.Name]; !exists {
		c.order = append(c.order, e.Name)
	}
	c.entries[e.Name] = e
}

// Category returns the category of every entry in the catalog
func (c *Catalog) Category() entities.Category {
	return c.category
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.order)
}

// Names returns every entry name in source order
func (c *Catalog) Names() []string {
	return slices.Clone(c.order)
}

// SortedNames returns every entry name sorted alphabetically
func (c *Catalog) SortedNames() []string {
	names := c.Names()
	sort.Strings(names)
	return names
}

// Get returns a copy of the named entry
func (c *Catalog) Get(name string) (entities.Entry, bool) {
	e, ok := c.entries[name]
	if !ok {
		return entities.Entry{}, false
	}
	e.Fields = slices.Clone(e.Fields)
	return e, true
}

// Has reports whether the catalog contains name
func (c *Catalog) Has(name string) bool {
	_, ok := c.entries[name]
	return ok
}

// Groups returns the sorted, deduplicated power set tags of every entry
func (c *Catalog) Groups() []string {
	seen := make(map[string]struct{})
	groups := []string{}
	for _, name := range c.order {
		e := c.entries[name]
		for _, g := range e.Groups() {
			if _, ok := seen[g]; ok {
				continue
			}
			seen[g] = struct{}{}
			groups = append(groups, g)
		}
	}
	sort.Strings(groups)
	return groups
}

func ordered(names []string, order entities.Order) []string {
	if order == entities.OrderAlphabetical {
		sort.Strings(names)
	}
	return names
}
