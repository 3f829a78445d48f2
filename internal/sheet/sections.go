package sheet

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/smkun/MarvelPowers/internal/catalog"
	"github.com/smkun/MarvelPowers/internal/entities"
)

// Section titles of the combined sheet
const (
	PowersTitle = "Selected Powers:"
	TraitsTitle = "Selected Traits:"
)

// Source looks up catalog entries by name. *catalog.Catalog satisfies it.
type Source interface {
	Get(name string) (entities.Entry, bool)
}

// sheetPowerFields are printed under a power name, labelled with the field name
var sheetPowerFields = []string{
	entities.PowerFieldDescription,
	entities.PowerFieldPowerSet,
	entities.PowerFieldPrerequisites,
	entities.PowerFieldAction,
	entities.PowerFieldTrigger,
	entities.PowerFieldDuration,
	entities.PowerFieldRange,
	entities.PowerFieldCost,
	entities.PowerFieldEffect,
}

// placeholders are catalog values that mean "nothing to say" and are left off
// sheets that skip defaults
var placeholders = map[string]struct{}{
	catalog.NotAvailable:       {},
	"None":                     {},
	"No description provided.": {},
}

// BuildInput is everything needed to turn a record into sheet sections
type BuildInput struct {
	Record   entities.Record
	Powers   Source
	Traits   Source
	Preset   entities.Preset
	Layout   Layout
	Measurer Measurer
}

// BuildSections returns the header, powers and traits sections for a record.
// Empty parts are left out. Names missing from the catalog are printed
// with their name only.
func BuildSections(in *BuildInput) []Section {
	b := &builder{in: in, width: in.Layout.ColumnWidth()}

	var sections []Section
	if hero := strings.TrimSpace(in.Record.HeroName); hero != "" {
		header := b.wrap(fmt.Sprintf(in.Preset.HeaderFormat, hero), StyleHeader)
		sections = append(sections, Section{Blocks: []Block{{Lines: append(header, BlankLine)}}})
	}

	if len(in.Record.SelectedPowers) > 0 {
		sections = append(sections, b.section(PowersTitle, in.Record.SelectedPowers, b.powerBlock))
	}

	if in.Preset.IncludeTraits && len(in.Record.SelectedTraits) > 0 {
		sections = append(sections, b.section(TraitsTitle, in.Record.SelectedTraits, b.traitBlock))
	}

	return sections
}

type builder struct {
	in    *BuildInput
	width float64
}

func (b *builder) section(title string, names []string, block func(string) Block) Section {
	var s Section
	if b.in.Preset.SectionTitles {
		lines := append(b.wrap(title, StyleTitle), BlankLine)
		s.Blocks = append(s.Blocks, Block{Lines: lines})
	}
	for _, name := range names {
		s.Blocks = append(s.Blocks, block(name))
	}
	return s
}

func (b *builder) powerBlock(name string) Block {
	entry := b.lookup(b.in.Powers, entities.CategoryPower, name)

	var lines []Line
	if b.in.Preset.ShowDefaults {
		details := catalog.Details(entry, b.in.Preset)
		lines = append(lines, b.wrap(details[0], StyleEntryPower)...)
		for _, d := range details[1:] {
			lines = append(lines, b.wrap(d, StyleField)...)
		}
	} else {
		lines = append(lines, b.wrap(entry.Value(entities.PowerFieldName, name), StyleEntryPower)...)
		for _, field := range sheetPowerFields {
			if v := entry.Value(field, ""); !isPlaceholder(v) {
				lines = append(lines, b.wrap(field+": "+v, StyleField)...)
			}
		}
	}

	return b.finish(lines)
}

func (b *builder) traitBlock(name string) Block {
	entry := b.lookup(b.in.Traits, entities.CategoryTrait, name)

	lines := b.wrap(entry.Value(entities.TraitFieldName, name), StyleEntryTrait)
	if v := entry.Value(entities.TraitFieldDescription, ""); !isPlaceholder(v) {
		lines = append(lines, b.wrap("Description: "+v, StyleField)...)
	}

	return b.finish(lines)
}

func (b *builder) finish(lines []Line) Block {
	if b.in.Preset.EntryRule != "" {
		lines = append(lines, b.wrap(b.in.Preset.EntryRule, StyleField)...)
	}
	return Block{Lines: append(lines, BlankLine)}
}

func (b *builder) lookup(src Source, category entities.Category, name string) entities.Entry {
	if src != nil {
		if e, ok := src.Get(name); ok {
			return e
		}
	}
	slog.Warn("Selected entry not in catalog",
		"category", category,
		"name", name,
	)
	nameField := entities.PowerFieldName
	if category == entities.CategoryTrait {
		nameField = entities.TraitFieldName
	}
	return entities.Entry{
		Name:     name,
		Category: category,
		Fields:   []entities.Field{{Name: nameField, Value: name}},
	}
}

func (b *builder) wrap(text string, style Style) []Line {
	font := b.in.Layout.Font(style)
	var lines []Line
	for _, t := range Wrap(text, font, b.width, b.in.Measurer) {
		lines = append(lines, Line{Text: t, Style: style})
	}
	return lines
}

func isPlaceholder(v string) bool {
	if v == "" {
		return true
	}
	_, ok := placeholders[v]
	return ok
}
