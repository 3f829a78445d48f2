// Package selection holds the user's chosen powers and traits for one
// session. The Model is the single source of truth for the selection and
// announces every change on an rpg-toolkit event bus so views can refresh
// without owning state.
package selection

import (
	"context"
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/smkun/MarvelPowers/internal/entities"
	"github.com/smkun/MarvelPowers/internal/errors"
)

// Config holds the dependencies for a Model
type Config struct {
	Preset entities.Preset

	// EventBus receives change notifications. Optional.
	EventBus events.EventBus
}

// Validate ensures the config is usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Preset.Name == "" {
		vb.RequiredField("Preset")
	}

	return vb.Build()
}

// Model is an ordered, duplicate-free list of names per category plus the
// hero name. It is not safe for concurrent use.
type Model struct {
	preset   entities.Preset
	bus      events.EventBus
	heroName string
	powers   []string
	traits   []string
}

// New creates an empty Model
func New(cfg *Config) (*Model, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Model{
		preset: cfg.Preset,
		bus:    cfg.EventBus,
	}, nil
}

// Preset returns the preset the model was created with
func (m *Model) Preset() entities.Preset {
	return m.preset
}

// HeroName returns the free-text owner name
func (m *Model) HeroName() string {
	return m.heroName
}

// SetHeroName changes the owner name
func (m *Model) SetHeroName(ctx context.Context, name string) {
	if name == m.heroName {
		return
	}
	m.heroName = name
	m.publish(ctx, EventHeroRenamed, Hero{Name: name})
}

// Add appends name to the category's list. Adding a name that is already
// selected is a no-op reported as a notice.
func (m *Model) Add(ctx context.Context, category entities.Category, name string) error {
	list, err := m.list(category)
	if err != nil {
		return err
	}
	if name == "" {
		return errors.InvalidArgument("name is required")
	}
	if slices.Contains(*list, name) {
		return errors.Noticef(errors.CodeAlreadyExists, "'%s' is already in your list.", name).
			WithMeta("name", name).
			WithMeta("category", category.String())
	}

	*list = append(*list, name)
	m.publish(ctx, EventAdded, entities.Ref{Name: name, Category: category})
	return nil
}

// Remove deletes name from the category's list and reports whether it was
// present
func (m *Model) Remove(ctx context.Context, category entities.Category, name string) bool {
	list, err := m.list(category)
	if err != nil {
		return false
	}
	i := slices.Index(*list, name)
	if i < 0 {
		return false
	}

	*list = slices.Delete(*list, i, i+1)
	m.publish(ctx, EventRemoved, entities.Ref{Name: name, Category: category})
	return true
}

// Reset clears both lists and the hero name
func (m *Model) Reset(ctx context.Context) {
	m.heroName = ""
	m.powers = nil
	m.traits = nil
	m.publish(ctx, EventReset, Hero{})
}

// Contains reports whether name is selected in category
func (m *Model) Contains(category entities.Category, name string) bool {
	switch category {
	case entities.CategoryPower:
		return slices.Contains(m.powers, name)
	case entities.CategoryTrait:
		return slices.Contains(m.traits, name)
	}
	return false
}

// Powers returns a copy of the selected power names in selection order
func (m *Model) Powers() []string {
	return cloneList(m.powers)
}

// Traits returns a copy of the selected trait names in selection order
func (m *Model) Traits() []string {
	return cloneList(m.traits)
}

// Selected returns a copy of the named category's list
func (m *Model) Selected(category entities.Category) []string {
	if category == entities.CategoryTrait {
		return m.Traits()
	}
	return m.Powers()
}

// IsEmpty reports whether nothing is selected. The hero name is ignored.
func (m *Model) IsEmpty() bool {
	return len(m.powers) == 0 && len(m.traits) == 0
}

// ToRecord returns the persisted shape of the selection. Presets without
// traits produce a record without a traits list.
func (m *Model) ToRecord() entities.Record {
	rec := entities.Record{
		HeroName:       m.heroName,
		SelectedPowers: cloneList(m.powers),
	}
	if m.preset.IncludeTraits {
		rec.SelectedTraits = cloneList(m.traits)
	}
	return rec
}

// FromRecord replaces the whole selection with rec. Repeated names keep their
// first occurrence; traits are dropped when the preset excludes them.
func (m *Model) FromRecord(ctx context.Context, rec entities.Record) {
	m.heroName = rec.HeroName
	m.powers = dedupe(rec.SelectedPowers)
	m.traits = nil
	if m.preset.IncludeTraits {
		m.traits = dedupe(rec.SelectedTraits)
	}
	m.publish(ctx, EventLoaded, Hero{Name: rec.HeroName})
}

func (m *Model) list(category entities.Category) (*[]string, error) {
	switch category {
	case entities.CategoryPower:
		return &m.powers, nil
	case entities.CategoryTrait:
		if !m.preset.IncludeTraits {
			return nil, errors.InvalidArgumentf("the %s preset has no traits", m.preset.Name)
		}
		return &m.traits, nil
	}
	return nil, errors.InvalidArgumentf("unknown category %q", category)
}

func cloneList(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

func dedupe(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
