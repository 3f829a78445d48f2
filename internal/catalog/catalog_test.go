package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/smkun/MarvelPowers/internal/catalog"
	"github.com/smkun/MarvelPowers/internal/entities"
	"github.com/smkun/MarvelPowers/internal/testutils"
	"github.com/smkun/MarvelPowers/internal/testutils/builders"
)

type CatalogTestSuite struct {
	suite.Suite
	powers *catalog.Catalog
	traits *catalog.Catalog
}

func (s *CatalogTestSuite) SetupTest() {
	s.powers = testutils.TestPowers()
	s.traits = testutils.TestTraits()
}

func (s *CatalogTestSuite) TestGet() {
	s.Run("returns a copy", func() {
		e, ok := s.powers.Get("Fireball")
		s.Require().True(ok)
		e.Fields[0].Value = "changed"

		again, _ := s.powers.Get("Fireball")
		s.Equal("Fireball", again.Fields[0].Value)
	})

	s.Run("missing entry", func() {
		_, ok := s.powers.Get("Nope")
		s.False(ok)
		s.False(s.powers.Has("Nope"))
	})
}

func (s *CatalogTestSuite) TestNames() {
	s.Equal([]string{"Fireball", "Flight", "Blizzard", "Arcane Shield"}, s.powers.Names())
	s.Equal([]string{"Arcane Shield", "Blizzard", "Fireball", "Flight"}, s.powers.SortedNames())

	names := s.powers.Names()
	names[0] = "mutated"
	s.Equal("Fireball", s.powers.Names()[0])
}

func (s *CatalogTestSuite) TestGroups() {
	s.Equal([]string{"Arcane", "Fire", "Ice", "Movement", "Weather"}, s.powers.Groups())
	s.Empty(s.traits.Groups())
}

func (s *CatalogTestSuite) TestByGroup() {
	testCases := []struct {
		name     string
		tag      string
		order    entities.Order
		expected []string
	}{
		{name: "catalog order", tag: "Arcane", order: entities.OrderCatalog, expected: []string{"Fireball", "Arcane Shield"}},
		{name: "alphabetical", tag: "Arcane", order: entities.OrderAlphabetical, expected: []string{"Arcane Shield", "Fireball"}},
		{name: "second tag", tag: "Weather", order: entities.OrderCatalog, expected: []string{"Blizzard"}},
		{name: "tag prefix does not match", tag: "Arc", order: entities.OrderCatalog, expected: []string{}},
		{name: "case sensitive", tag: "fire", order: entities.OrderCatalog, expected: []string{}},
		{name: "unknown tag", tag: "Water", order: entities.OrderCatalog, expected: []string{}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, s.powers.ByGroup(tc.tag, tc.order))
		})
	}
}

func (s *CatalogTestSuite) TestByGroupEveryResultIsMember() {
	for _, g := range s.powers.Groups() {
		for _, name := range s.powers.ByGroup(g, entities.OrderCatalog) {
			e, _ := s.powers.Get(name)
			s.Contains(e.Groups(), g)
		}
	}
}

func (s *CatalogTestSuite) TestBySubstring() {
	s.Run("case insensitive", func() {
		s.Equal([]string{"Blizzard", "Arcane Shield"}, s.powers.BySubstring("AR", entities.OrderCatalog))
		s.Equal([]string{"Arcane Shield", "Blizzard"}, s.powers.BySubstring("ar", entities.OrderAlphabetical))
	})

	s.Run("empty term matches all", func() {
		s.Equal(s.powers.Names(), s.powers.BySubstring("", entities.OrderCatalog))
	})

	s.Run("no match", func() {
		s.Equal([]string{}, s.powers.BySubstring("zzz", entities.OrderCatalog))
	})
}

func (s *CatalogTestSuite) TestNewLastValueWins() {
	c := catalog.New(entities.CategoryPower,
		builders.NewPowerBuilder("A").WithCost("1").Build(),
		builders.NewPowerBuilder("B").Build(),
		builders.NewPowerBuilder("A").WithCost("2").Build(),
	)
	s.Equal([]string{"A", "B"}, c.Names())
	a, _ := c.Get("A")
	s.Equal("2", a.Value(entities.PowerFieldCost, ""))
}

func (s *CatalogTestSuite) TestDetails() {
	s.Run("powers only preset shows fixed layout with defaults", func() {
		flight, _ := s.powers.Get("Flight")
		s.Equal([]string{
			"Name: Flight",
			"Description: Soar through the sky.",
			"Power Set: Movement",
			"Prerequisites: None",
			"Action: Free",
			"Duration: N/A",
			"Cost: N/A",
			"Effect: N/A",
		}, catalog.Details(flight, entities.PowersOnly))
	})

	s.Run("combined preset shows every field in source order", func() {
		flight, _ := s.powers.Get("Flight")
		s.Equal([]string{
			"Name: Flight",
			"Description: Soar through the sky.",
			"PowerSet: Movement",
			"Prerequisites: None",
			"Action: Free",
		}, catalog.Details(flight, entities.Combined))
	})

	s.Run("traits always show their own fields", func() {
		brave, _ := s.traits.Get("Brave")
		s.Equal([]string{"name: Brave"}, catalog.Details(brave, entities.PowersOnly))
	})
}

func (s *CatalogTestSuite) TestSuggest() {
	s.Run("close misspelling", func() {
		got := s.powers.Suggest("Firebal", 3)
		s.Require().NotEmpty(got)
		s.Equal("Fireball", got[0])
		s.LessOrEqual(len(got), 3)
	})

	s.Run("case insensitive exact", func() {
		got := s.powers.Suggest("fireball", 1)
		s.Equal([]string{"Fireball"}, got)
	})

	s.Run("nothing similar", func() {
		s.Empty(s.powers.Suggest("qqqqqqqq", 3))
	})

	s.Run("empty input or limit", func() {
		s.Nil(s.powers.Suggest("", 3))
		s.Nil(s.powers.Suggest("Fireball", 0))
	})
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}
