package catalog

import (
	"fmt"

	"github.com/smkun/MarvelPowers/internal/entities"
)

// NotAvailable is shown for absent power fields when a preset shows defaults
const NotAvailable = "N/A"

type detailField struct {
	label string
	field string
}

// powerDetailFields is the fixed layout of the powers-only details view
var powerDetailFields = []detailField{
	{"Name", entities.PowerFieldName},
	{"Description", entities.PowerFieldDescription},
	{"Power Set", entities.PowerFieldPowerSet},
	{"Prerequisites", entities.PowerFieldPrerequisites},
	{"Action", entities.PowerFieldAction},
	{"Duration", entities.PowerFieldDuration},
	{"Cost", entities.PowerFieldCost},
	{"Effect", entities.PowerFieldEffect},
}

// Details formats an entry for the details pane, one "Label: value" line per
// field. Presets that show defaults print the fixed power layout with N/A for
// absent fields; otherwise every field is printed in source order.
func Details(entry entities.Entry, preset entities.Preset) []string {
	if preset.ShowDefaults && entry.Category == entities.CategoryPower {
		lines := make([]string, 0, len(powerDetailFields))
		for _, f := range powerDetailFields {
			lines = append(lines, fmt.Sprintf("%s: %s", f.label, entry.Value(f.field, NotAvailable)))
		}
		return lines
	}

	lines := make([]string, 0, len(entry.Fields))
	for _, f := range entry.Fields {
		lines = append(lines, fmt.Sprintf("%s: %s", f.Name, f.Value))
	}
	return lines
}
