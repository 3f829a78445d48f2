package catalog

import (
	"strings"

	"github.com/smkun/MarvelPowers/internal/entities"
)

// ByGroup returns the names of entries whose power set contains tag exactly.
// Every call scans the catalog.
func (c *Catalog) ByGroup(tag string, order entities.Order) []string {
	names := []string{}
	for _, name := range c.order {
		e := c.entries[name]
		if e.InGroup(tag) {
			names = append(names, name)
		}
	}
	return ordered(names, order)
}

// BySubstring returns the names containing term, case-insensitive. An empty
// term matches every name.
func (c *Catalog) BySubstring(term string, order entities.Order) []string {
	term = strings.ToLower(term)
	names := []string{}
	for _, name := range c.order {
		if strings.Contains(strings.ToLower(name), term) {
			names = append(names, name)
		}
	}
	return ordered(names, order)
}
