package tui

import (
	"strings"

	"github.com/rivo/tview"

	"github.com/smkun/MarvelPowers/internal/entities"
	"github.com/smkun/MarvelPowers/internal/orchestrators/builder"
)

const (
	categoryPower = entities.CategoryPower
	categoryTrait = entities.CategoryTrait
)

func (ui *UI) loadGroups() error {
	out, err := ui.service.ListGroups(ui.ctx, &builder.ListGroupsInput{})
	if err != nil {
		return err
	}

	options := append([]string{allGroups}, out.Groups...)
	ui.groupDrop.SetOptions(options, func(text string, _ int) {
		ui.selectGroup(text)
	})
	return nil
}

func (ui *UI) loadTraits() {
	out, err := ui.service.ListTraits(ui.ctx, &builder.ListTraitsInput{})
	if err != nil {
		ui.showError(err)
		return
	}
	setItems(ui.traitList, out.Names)
}

func (ui *UI) selectGroup(group string) {
	if ui.filtering {
		return
	}
	if group == allGroups {
		group = ""
	}

	ui.filtering = true
	ui.searchInput.SetText("")
	ui.filtering = false

	ui.applyFilter(builder.FilterPowersInput{Group: group})
}

func (ui *UI) search(term string) {
	if ui.filtering {
		return
	}

	ui.filtering = true
	ui.groupDrop.SetCurrentOption(0)
	ui.filtering = false

	ui.applyFilter(builder.FilterPowersInput{Search: strings.TrimSpace(term)})
}

func (ui *UI) applyFilter(input builder.FilterPowersInput) {
	out, err := ui.service.FilterPowers(ui.ctx, &input)
	if err != nil {
		ui.showError(err)
		return
	}
	setItems(ui.powerList, out.Names)
}

func (ui *UI) showDetails(category entities.Category, name string) {
	if name == "" {
		ui.details.Clear()
		return
	}

	out, err := ui.service.GetDetails(ui.ctx, &builder.GetDetailsInput{
		Category: category,
		Name:     name,
	})
	if err != nil {
		ui.showError(err)
		return
	}

	var b strings.Builder
	for _, line := range out.Lines {
		label, value, ok := strings.Cut(line, ": ")
		if !ok {
			b.WriteString(tview.Escape(line))
		} else {
			b.WriteString("[gold]" + tview.Escape(label) + ":[-] " + tview.Escape(value))
		}
		b.WriteString("\n")
	}
	ui.details.SetText(b.String())
	ui.details.ScrollToBeginning()
}

func (ui *UI) setHeroName(name string) {
	if _, err := ui.service.SetHeroName(ui.ctx, &builder.SetHeroNameInput{HeroName: name}); err != nil {
		ui.showError(err)
	}
}

func (ui *UI) add(category entities.Category, name string) {
	if name == "" {
		return
	}

	if _, err := ui.service.AddSelection(ui.ctx, &builder.AddSelectionInput{
		Category: category,
		Name:     name,
	}); err != nil {
		ui.showError(err)
		return
	}
	ui.setStatus("Added [gold]" + tview.Escape(name) + "[-]")
}

func (ui *UI) remove(category entities.Category, name string) {
	if name == "" {
		return
	}

	if _, err := ui.service.RemoveSelection(ui.ctx, &builder.RemoveSelectionInput{
		Category: category,
		Name:     name,
	}); err != nil {
		ui.showError(err)
		return
	}
	ui.setStatus("Removed [gold]" + tview.Escape(name) + "[-]")
}

func (ui *UI) reset() {
	if _, err := ui.service.Reset(ui.ctx, &builder.ResetInput{}); err != nil {
		ui.showError(err)
		return
	}
	ui.setStatus("New hero")
}

func (ui *UI) save(name string) {
	out, err := ui.service.SaveSession(ui.ctx, &builder.SaveSessionInput{Name: name})
	if err != nil {
		ui.showError(err)
		return
	}
	ui.showMessage("Success", out.Message)
}

func (ui *UI) load(name string) {
	out, err := ui.service.LoadSession(ui.ctx, &builder.LoadSessionInput{Name: name})
	if err != nil {
		ui.showError(err)
		return
	}
	ui.setStatus("Loaded [gold]" + tview.Escape(out.Location) + "[-]")
}

func (ui *UI) export(path string) {
	out, err := ui.service.ExportSheet(ui.ctx, &builder.ExportSheetInput{Path: path})
	if err != nil {
		ui.showError(err)
		return
	}
	ui.showMessage("Success", out.Message)
}

// refreshSelection redraws every widget that mirrors the selection
func (ui *UI) refreshSelection() {
	out, err := ui.service.GetSelection(ui.ctx, &builder.GetSelectionInput{})
	if err != nil {
		ui.showError(err)
		return
	}

	if ui.heroInput.GetText() != out.HeroName {
		ui.heroInput.SetText(out.HeroName)
	}
	setItems(ui.selectedPowers, out.Powers)
	if ui.preset.IncludeTraits {
		setItems(ui.selectedTraits, out.Traits)
	}
}

// clearBrowse drops the search, the power set choice and the details
func (ui *UI) clearBrowse() {
	ui.filtering = true
	ui.searchInput.SetText("")
	ui.groupDrop.SetCurrentOption(0)
	ui.filtering = false

	ui.applyFilter(builder.FilterPowersInput{})
	ui.details.Clear()
}
