package entities

import "strings"

// Order controls how filtered name lists are returned
type Order int

const (
	// OrderCatalog keeps the order entries appear in the catalog source
	OrderCatalog Order = iota
	// OrderAlphabetical sorts names
	OrderAlphabetical
)

// Preset captures the differences between the two builder applications.
// Both share one core; a preset only switches behaviour.
type Preset struct {
	Name string

	// IncludeTraits enables the trait catalog and trait selections
	IncludeTraits bool

	// Columns is the number of text columns on an exported page (1 or 2)
	Columns int

	// GroupOrder orders the result of a power set filter
	GroupOrder Order

	// SearchOrder orders the result of a name search
	SearchOrder Order

	// ShowDefaults prints absent power fields as "N/A" instead of skipping them
	ShowDefaults bool

	// HeaderFormat formats the sheet header from the hero name
	HeaderFormat string

	// SectionTitles prints "Selected Powers:" style titles on the sheet
	SectionTitles bool

	// EntryRule is printed under every entry on the sheet when set
	EntryRule string

	// EmptyNotice is shown when exporting an empty selection
	EmptyNotice string

	// FileStem and FallbackStem build default file names
	FileStem     string
	FallbackStem string
}

// Preset names
const (
	PresetNameCombined   = "combined"
	PresetNamePowersOnly = "powers"
)

// Combined is the powers and traits builder: two columns, catalog order
var Combined = Preset{
	Name:          PresetNameCombined,
	IncludeTraits: true,
	Columns:       2,
	GroupOrder:    OrderCatalog,
	SearchOrder:   OrderCatalog,
	ShowDefaults:  false,
	HeaderFormat:  "%s's Powers and Traits",
	SectionTitles: true,
	EmptyNotice:   "Your selected powers and traits list is empty.",
	FileStem:      "powers_and_traits",
	FallbackStem:  "selected_powers_and_traits",
}

// PowersOnly is the powers builder: one column, sorted lists, N/A defaults
var PowersOnly = Preset{
	Name:          PresetNamePowersOnly,
	IncludeTraits: false,
	Columns:       1,
	GroupOrder:    OrderAlphabetical,
	SearchOrder:   OrderAlphabetical,
	ShowDefaults:  true,
	HeaderFormat:  "Powers Selected by %s",
	EntryRule:     strings.Repeat("-", 80),
	EmptyNotice:   "Your selected powers list is empty.",
	FileStem:      "powers",
	FallbackStem:  "selected_powers",
}

// PresetByName returns the preset with the given name
func PresetByName(name string) (Preset, bool) {
	switch name {
	case PresetNameCombined:
		return Combined, true
	case PresetNamePowersOnly:
		return PowersOnly, true
	}
	return Preset{}, false
}

// PresetNames lists the known preset names
func PresetNames() []string {
	return []string{PresetNameCombined, PresetNamePowersOnly}
}
