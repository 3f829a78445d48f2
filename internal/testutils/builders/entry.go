// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/smkun/MarvelPowers/internal/entities"
)

// EntryBuilder provides a fluent interface for building test catalog entries
type EntryBuilder struct {
	entry entities.Entry
}

// NewPowerBuilder starts a power entry with its Name field set
func NewPowerBuilder(name string) *EntryBuilder {
	return &EntryBuilder{
		entry: entities.Entry{
			Name:     name,
			Category: entities.CategoryPower,
			Fields:   []entities.Field{{Name: entities.PowerFieldName, Value: name}},
		},
	}
}

// NewTraitBuilder starts a trait entry with its name field set
func NewTraitBuilder(name string) *EntryBuilder {
	return &EntryBuilder{
		entry: entities.Entry{
			Name:     name,
			Category: entities.CategoryTrait,
			Fields:   []entities.Field{{Name: entities.TraitFieldName, Value: name}},
		},
	}
}

// With appends a field
func (b *EntryBuilder) With(field, value string) *EntryBuilder {
	b.entry.Fields = append(b.entry.Fields, entities.Field{Name: field, Value: value})
	return b
}

// WithDescription sets the description field for either category
func (b *EntryBuilder) WithDescription(text string) *EntryBuilder {
	if b.entry.Category == entities.CategoryTrait {
		return b.With(entities.TraitFieldDescription, text)
	}
	return b.With(entities.PowerFieldDescription, text)
}

// WithPowerSet sets the comma separated power set tags
func (b *EntryBuilder) WithPowerSet(sets string) *EntryBuilder {
	return b.With(entities.PowerFieldPowerSet, sets)
}

// WithCost sets the cost field
func (b *EntryBuilder) WithCost(cost string) *EntryBuilder {
	return b.With(entities.PowerFieldCost, cost)
}

// WithEffect sets the effect field
func (b *EntryBuilder) WithEffect(effect string) *EntryBuilder {
	return b.With(entities.PowerFieldEffect, effect)
}

// Build returns the entry
func (b *EntryBuilder) Build() entities.Entry {
	return b.entry
}
