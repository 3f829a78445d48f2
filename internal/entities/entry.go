package entities

import "strings"

// Category identifies which catalog an entry belongs to
type Category string

// Catalog categories
const (
	CategoryPower Category = "power"
	CategoryTrait Category = "trait"
)

// String returns the string representation of the category
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether c is a known category
func (c Category) IsValid() bool {
	return c == CategoryPower || c == CategoryTrait
}

// ParseCategory accepts the singular or plural form, case-insensitive
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "power", "powers":
		return CategoryPower, true
	case "trait", "traits":
		return CategoryTrait, true
	}
	return "", false
}

// Power field names as they appear in the catalog source
const (
	PowerFieldName          = "Name"
	PowerFieldDescription   = "Description"
	PowerFieldPowerSet      = "PowerSet"
	PowerFieldPrerequisites = "Prerequisites"
	PowerFieldAction        = "Action"
	PowerFieldTrigger       = "Trigger"
	PowerFieldDuration      = "Duration"
	PowerFieldRange         = "Range"
	PowerFieldCost          = "Cost"
	PowerFieldEffect        = "Effect"
)

// Trait field names as they appear in the catalog source
const (
	TraitFieldName        = "name"
	TraitFieldDescription = "description"
)

// PowerSetSeparator separates the group tags of a power
const PowerSetSeparator = ","

// Field is one attribute of a catalog entry. Value is the element text
// verbatim.
type Field struct {
	Name  string
	Value string
}

// Entry is a single power or trait. Fields keep source document order.
type Entry struct {
	Name     string
	Category Category
	Fields   []Field
}

// Get returns the value of the named field and whether it was present
func (e *Entry) Get(name string) (string, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Value returns the named field, or fallback when the field is absent or empty
func (e *Entry) Value(name, fallback string) string {
	if v, ok := e.Get(name); ok && v != "" {
		return v
	}
	return fallback
}

// Groups returns the power set tags of the entry, trimmed, empty tags dropped
func (e *Entry) Groups() []string {
	raw, ok := e.Get(PowerFieldPowerSet)
	if !ok {
		return nil
	}
	return SplitGroups(raw)
}

// InGroup reports whether tag is exactly one of the entry's power sets
func (e *Entry) InGroup(tag string) bool {
	for _, g := range e.Groups() {
		if g == tag {
			return true
		}
	}
	return false
}

// SplitGroups splits a PowerSet value into tags
func SplitGroups(raw string) []string {
	parts := strings.Split(raw, PowerSetSeparator)
	groups := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			groups = append(groups, p)
		}
	}
	return groups
}

// Ref identifies an entry by category and name. It satisfies the rpg-toolkit
// core.Entity interface so selections can travel on an event bus.
type Ref struct {
	Name     string
	Category Category
}

// GetID returns the entry name
func (r Ref) GetID() string {
	return r.Name
}

// GetType returns the category
func (r Ref) GetType() string {
	return string(r.Category)
}
