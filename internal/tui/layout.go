package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func (ui *UI) build() {
	ui.heroInput = tview.NewInputField().
		SetLabel("Hero Name: ").
		SetFieldWidth(0)
	styleInput(ui.heroInput)
	ui.heroInput.SetChangedFunc(ui.setHeroName)

	ui.groupDrop = tview.NewDropDown().
		SetLabel("Power Set: ")
	ui.groupDrop.SetLabelColor(tcell.ColorGold)
	ui.groupDrop.SetFieldBackgroundColor(tcell.ColorDarkSlateGray)
	ui.groupDrop.SetFieldTextColor(tcell.ColorWhite)
	ui.groupDrop.SetListStyles(
		tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhite),
		tcell.StyleDefault.Background(tcell.ColorGold).Foreground(tcell.ColorBlack),
	)

	ui.searchInput = tview.NewInputField().
		SetLabel("Search: ").
		SetFieldWidth(0)
	styleInput(ui.searchInput)
	ui.searchInput.SetChangedFunc(ui.search)

	ui.powerList = newList(" Powers ")
	ui.powerList.SetChangedFunc(func(_ int, name, _ string, _ rune) {
		ui.showDetails(categoryPower, name)
	})
	ui.powerList.SetSelectedFunc(func(_ int, name, _ string, _ rune) {
		ui.add(categoryPower, name)
	})

	ui.traitList = newList(" Traits ")
	ui.traitList.SetChangedFunc(func(_ int, name, _ string, _ rune) {
		ui.showDetails(categoryTrait, name)
	})
	ui.traitList.SetSelectedFunc(func(_ int, name, _ string, _ rune) {
		ui.add(categoryTrait, name)
	})

	ui.details = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)
	ui.details.SetBorder(true)
	ui.details.SetTitle(" Details ")
	ui.details.SetTitleColor(tcell.ColorGold)
	ui.details.SetBorderColor(tcell.ColorGold)

	ui.selectedPowers = newList(" Selected Powers ")
	ui.selectedPowers.SetSelectedFunc(func(_ int, name, _ string, _ rune) {
		ui.remove(categoryPower, name)
	})

	ui.selectedTraits = newList(" Selected Traits ")
	ui.selectedTraits.SetSelectedFunc(func(_ int, name, _ string, _ rune) {
		ui.remove(categoryTrait, name)
	})

	ui.status = tview.NewTextView().
		SetDynamicColors(true)
	ui.status.SetBackgroundColor(tcell.ColorBlack)
	ui.setStatus("")

	filters := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(ui.heroInput, 1, 0, true).
		AddItem(ui.groupDrop, 1, 0, false).
		AddItem(ui.searchInput, 1, 0, false)

	browse := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(filters, 3, 0, true).
		AddItem(ui.powerList, 0, 2, false)

	selected := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(ui.selectedPowers, 0, 1, false)

	ui.focusOrder = []tview.Primitive{ui.heroInput, ui.groupDrop, ui.searchInput, ui.powerList}
	if ui.preset.IncludeTraits {
		browse.AddItem(ui.traitList, 0, 1, false)
		selected.AddItem(ui.selectedTraits, 0, 1, false)
		ui.focusOrder = append(ui.focusOrder, ui.traitList)
	}
	ui.focusOrder = append(ui.focusOrder, ui.details, ui.selectedPowers)
	if ui.preset.IncludeTraits {
		ui.focusOrder = append(ui.focusOrder, ui.selectedTraits)
	}

	main := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(browse, 0, 1, true).
		AddItem(ui.details, 0, 1, false).
		AddItem(selected, 0, 1, false)

	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(main, 0, 1, true).
		AddItem(ui.status, 1, 0, false)

	ui.pages = tview.NewPages().AddPage("main", root, true, true)
	ui.app.SetRoot(ui.pages, true)
	ui.app.SetFocus(ui.heroInput)
	ui.app.SetInputCapture(ui.handleKey)
}

func newList(title string) *tview.List {
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetBorder(true)
	list.SetTitle(title)
	list.SetTitleColor(tcell.ColorGold)
	list.SetBorderColor(tcell.ColorGold)
	list.SetMainTextColor(tcell.ColorWhite)
	list.SetSelectedTextColor(tcell.ColorBlack)
	list.SetSelectedBackgroundColor(tcell.ColorGold)
	return list
}

func styleInput(input *tview.InputField) {
	input.SetLabelColor(tcell.ColorGold)
	input.SetFieldBackgroundColor(tcell.ColorDarkSlateGray)
	input.SetFieldTextColor(tcell.ColorWhite)
}

// setItems replaces the list content, keeping the cursor in range
func setItems(list *tview.List, names []string) {
	current := list.GetCurrentItem()
	list.Clear()
	for _, name := range names {
		list.AddItem(name, "", 0, nil)
	}
	if current >= len(names) {
		current = len(names) - 1
	}
	if current >= 0 {
		list.SetCurrentItem(current)
	}
}

// items returns the main texts of a list
func items(list *tview.List) []string {
	names := make([]string, list.GetItemCount())
	for i := range names {
		names[i], _ = list.GetItemText(i)
	}
	return names
}

// centered wraps p in a fixed size box in the middle of the screen
func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 0, true).
			AddItem(nil, 0, 1, false), width, 0, true).
		AddItem(nil, 0, 1, false)
}
