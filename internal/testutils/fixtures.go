package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smkun/MarvelPowers/internal/catalog"
	"github.com/smkun/MarvelPowers/internal/entities"
	"github.com/smkun/MarvelPowers/internal/testutils/builders"
)

// Hero names used across tests
const (
	TestHeroName      = "Thor"
	TestOtherHeroName = "Storm"
)

// PowersXML is a small power catalog document in the source format
const PowersXML = `<?xml version="1.0" encoding="UTF-8"?>
<Powers>
  <Power>
    <Name>Fireball</Name>
    <Description>Hurl a ball of flame.</Description>
    <PowerSet>Fire, Arcane</PowerSet>
    <Action>Standard</Action>
    <Duration>Instant</Duration>
    <Range>Distance</Range>
    <Cost>2</Cost>
    <Effect>Deal fire damage.</Effect>
  </Power>
  <Power>
    <Name>Flight</Name>
    <Description>Soar through the sky.</Description>
    <PowerSet>Movement</PowerSet>
    <Prerequisites>None</Prerequisites>
    <Action>Free</Action>
  </Power>
  <Power>
    <Name>Blizzard</Name>
    <Description>Call down a storm of ice.</Description>
    <PowerSet>Ice, Weather</PowerSet>
  </Power>
  <Power>
    <Name>Arcane Shield</Name>
    <PowerSet>Arcane</PowerSet>
    <Cost></Cost>
  </Power>
</Powers>
`

// TraitsXML is a small trait catalog document in the source format
const TraitsXML = `<?xml version="1.0" encoding="UTF-8"?>
<traits>
  <trait>
    <name>Asgardian</name>
    <description>Born in the realm eternal.</description>
  </trait>
  <trait>
    <name>Brave</name>
  </trait>
</traits>
`

// TestPowers returns the catalog PowersXML describes
func TestPowers() *catalog.Catalog {
	return catalog.New(entities.CategoryPower,
		builders.NewPowerBuilder("Fireball").
			WithDescription("Hurl a ball of flame.").
			WithPowerSet("Fire, Arcane").
			With(entities.PowerFieldAction, "Standard").
			With(entities.PowerFieldDuration, "Instant").
			With(entities.PowerFieldRange, "Distance").
			WithCost("2").
			WithEffect("Deal fire damage.").
			Build(),
		builders.NewPowerBuilder("Flight").
			WithDescription("Soar through the sky.").
			WithPowerSet("Movement").
			With(entities.PowerFieldPrerequisites, "None").
			With(entities.PowerFieldAction, "Free").
			Build(),
		builders.NewPowerBuilder("Blizzard").
			WithDescription("Call down a storm of ice.").
			WithPowerSet("Ice, Weather").
			Build(),
		builders.NewPowerBuilder("Arcane Shield").
			WithPowerSet("Arcane").
			WithCost("").
			Build(),
	)
}

// TestTraits returns the catalog TraitsXML describes
func TestTraits() *catalog.Catalog {
	return catalog.New(entities.CategoryTrait,
		builders.NewTraitBuilder("Asgardian").WithDescription("Born in the realm eternal.").Build(),
		builders.NewTraitBuilder("Brave").Build(),
	)
}

// WriteFile writes content to name inside a fresh temp dir and returns the path
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
