package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/smkun/MarvelPowers/internal/entities"
	"github.com/smkun/MarvelPowers/internal/orchestrators/builder"
	"github.com/smkun/MarvelPowers/internal/repositories/session"
	"github.com/smkun/MarvelPowers/internal/selection"
	"github.com/smkun/MarvelPowers/internal/sheet"
	"github.com/smkun/MarvelPowers/internal/testutils"
)

type UITestSuite struct {
	suite.Suite
	ctx     context.Context
	dir     string
	bus     events.EventBus
	service builder.Service
	ui      *UI
}

func (s *UITestSuite) SetupTest() {
	s.ctx = context.Background()
	s.dir = s.T().TempDir()
	s.bus = events.NewBus()
	s.ui = s.newUI(entities.Combined)
}

func (s *UITestSuite) TearDownTest() {
	s.ui.Close()
}

func (s *UITestSuite) newUI(preset entities.Preset) *UI {
	powers := testutils.TestPowers()
	traits := testutils.TestTraits()

	model, err := selection.New(&selection.Config{Preset: preset, EventBus: s.bus})
	s.Require().NoError(err)

	repo, err := session.NewFile(&session.FileConfig{Dir: s.dir})
	s.Require().NoError(err)

	exporter, err := sheet.NewExporter(&sheet.Config{
		Powers: powers,
		Traits: traits,
		Preset: preset,
	})
	s.Require().NoError(err)

	service, err := builder.NewOrchestrator(&builder.Config{
		Preset:      preset,
		Powers:      powers,
		Traits:      traits,
		Selection:   model,
		SessionRepo: repo,
		Exporter:    exporter,
		ExportDir:   s.dir,
	})
	s.Require().NoError(err)
	s.service = service

	ui, err := New(s.ctx, &Config{
		Service:  service,
		Preset:   preset,
		EventBus: s.bus,
	})
	s.Require().NoError(err)
	return ui
}

func (s *UITestSuite) TestNewRequiresDependencies() {
	ui, err := New(s.ctx, &Config{})
	s.Require().Error(err)
	s.Nil(ui)
	s.Contains(err.Error(), "Service")
}

func (s *UITestSuite) TestInitialState() {
	s.Equal([]string{"Fireball", "Flight", "Blizzard", "Arcane Shield"}, items(s.ui.powerList))
	s.Equal([]string{"Asgardian", "Brave"}, items(s.ui.traitList))
	s.Equal(6, s.ui.groupDrop.GetOptionCount())
	s.Empty(items(s.ui.selectedPowers))
}

func (s *UITestSuite) TestPowersOnlyHasNoTraits() {
	s.ui.Close()
	s.ui = s.newUI(entities.PowersOnly)

	s.Equal([]string{"Arcane Shield", "Blizzard", "Fireball", "Flight"}, items(s.ui.powerList))
	s.Empty(items(s.ui.traitList))
	s.NotContains(s.ui.focusOrder, s.ui.selectedTraits)
}

func (s *UITestSuite) TestFilters() {
	s.Run("search", func() {
		s.ui.search("AR")
		s.Equal([]string{"Blizzard", "Arcane Shield"}, items(s.ui.powerList))
	})

	s.Run("group clears the search", func() {
		s.ui.searchInput.SetText("fire")
		s.ui.selectGroup("Ice")
		s.Equal([]string{"Blizzard"}, items(s.ui.powerList))
		s.Empty(s.ui.searchInput.GetText())
	})

	s.Run("all groups", func() {
		s.ui.selectGroup(allGroups)
		s.Len(items(s.ui.powerList), 4)
	})
}

func (s *UITestSuite) TestShowDetails() {
	s.ui.showDetails(categoryPower, "Flight")
	s.Contains(s.ui.details.GetText(true), "Description: Soar through the sky.")

	s.ui.showDetails(categoryPower, "")
	s.Empty(s.ui.details.GetText(true))
}

func (s *UITestSuite) TestAddAndRemove() {
	s.ui.add(categoryPower, "Flight")
	s.ui.add(categoryTrait, "Brave")
	s.Equal([]string{"Flight"}, items(s.ui.selectedPowers))
	s.Equal([]string{"Brave"}, items(s.ui.selectedTraits))
	s.False(s.ui.modalOpen)

	s.ui.add(categoryPower, "Flight")
	s.True(s.ui.modalOpen)
	s.True(s.ui.pages.HasPage(pageMessage))
	s.ui.closePage(pageMessage)
	s.False(s.ui.modalOpen)

	s.ui.remove(categoryPower, "Flight")
	s.Empty(items(s.ui.selectedPowers))
}

func (s *UITestSuite) TestHeroNameFollowsModel() {
	_, err := s.service.SetHeroName(s.ctx, &builder.SetHeroNameInput{HeroName: testutils.TestHeroName})
	s.Require().NoError(err)
	s.Equal(testutils.TestHeroName, s.ui.heroInput.GetText())
}

func (s *UITestSuite) TestSaveResetLoad() {
	s.ui.setHeroName(testutils.TestHeroName)
	s.ui.add(categoryPower, "Blizzard")
	s.ui.add(categoryTrait, "Asgardian")

	s.ui.save("thor.json")
	s.FileExists(filepath.Join(s.dir, "thor.json"))
	s.True(s.ui.pages.HasPage(pageMessage))
	s.ui.closePage(pageMessage)

	s.ui.search("fire")
	s.ui.reset()
	s.Empty(s.ui.heroInput.GetText())
	s.Empty(items(s.ui.selectedPowers))
	s.Empty(items(s.ui.selectedTraits))
	s.Empty(s.ui.searchInput.GetText())
	s.Len(items(s.ui.powerList), 4)

	s.ui.load("thor.json")
	s.False(s.ui.modalOpen)
	s.Equal(testutils.TestHeroName, s.ui.heroInput.GetText())
	s.Equal([]string{"Blizzard"}, items(s.ui.selectedPowers))
	s.Equal([]string{"Asgardian"}, items(s.ui.selectedTraits))
}

func (s *UITestSuite) TestSaveWithoutHeroName() {
	s.ui.promptSave()
	s.True(s.ui.pages.HasPage(pageMessage))
	s.False(s.ui.pages.HasPage(pagePrompt))
}

func (s *UITestSuite) TestPromptsPrefillDefaults() {
	s.ui.setHeroName(testutils.TestHeroName)

	s.ui.promptExport()
	s.True(s.ui.pages.HasPage(pagePrompt))
	s.True(s.ui.modalOpen)
	s.ui.closePage(pagePrompt)
	s.False(s.ui.modalOpen)
}

func (s *UITestSuite) TestExport() {
	s.ui.setHeroName(testutils.TestHeroName)
	s.ui.add(categoryPower, "Fireball")

	path := filepath.Join(s.dir, "thor.pdf")
	s.ui.export(path)

	info, err := os.Stat(path)
	s.Require().NoError(err)
	s.Positive(info.Size())
	s.True(s.ui.pages.HasPage(pageMessage))
}

func (s *UITestSuite) TestCloseStopsRefreshing() {
	s.ui.Close()

	_, err := s.service.AddSelection(s.ctx, &builder.AddSelectionInput{
		Category: entities.CategoryPower,
		Name:     "Flight",
	})
	s.Require().NoError(err)
	s.Empty(items(s.ui.selectedPowers))
}

func TestUITestSuite(t *testing.T) {
	suite.Run(t, new(UITestSuite))
}
