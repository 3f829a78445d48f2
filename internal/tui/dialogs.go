package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/smkun/MarvelPowers/internal/errors"
	"github.com/smkun/MarvelPowers/internal/orchestrators/builder"
)

const (
	pageMessage = "message"
	pagePrompt  = "prompt"
)

// showError reports err in a dialog titled after its kind
func (ui *UI) showError(err error) {
	ui.showMessage(errors.GetTitle(err), errors.GetMessage(err))
}

func (ui *UI) showMessage(title, message string) {
	modal := tview.NewModal().
		SetText(title + "\n\n" + message).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(_ int, _ string) {
			ui.closePage(pageMessage)
		})

	ui.pages.RemovePage(pageMessage)
	ui.pages.AddPage(pageMessage, modal, true, true)
	ui.modalOpen = true
	ui.app.SetFocus(modal)
}

func (ui *UI) closePage(name string) {
	ui.pages.RemovePage(name)
	ui.modalOpen = ui.pages.HasPage(pageMessage) || ui.pages.HasPage(pagePrompt)
	if !ui.modalOpen {
		ui.app.SetFocus(ui.heroInput)
	}
}

// prompt asks for a file name prefilled with value
func (ui *UI) prompt(title, value string, done func(string)) {
	input := tview.NewInputField().
		SetLabel("File: ").
		SetFieldWidth(60).
		SetText(value)
	input.SetLabelColor(tcell.ColorGold)
	input.SetFieldBackgroundColor(tcell.ColorWhite)
	input.SetFieldTextColor(tcell.ColorBlack)
	input.SetBorder(true)
	input.SetBorderColor(tcell.ColorGold)
	input.SetTitleColor(tcell.ColorGold)
	input.SetTitle(" " + title + " ")

	input.SetDoneFunc(func(key tcell.Key) {
		name := strings.TrimSpace(input.GetText())
		ui.closePage(pagePrompt)
		if key != tcell.KeyEnter || name == "" {
			return
		}
		done(name)
	})

	ui.pages.AddPage(pagePrompt, centered(input, 76, 3), true, true)
	ui.modalOpen = true
	ui.app.SetFocus(input)
}

func (ui *UI) defaultNames() (*builder.DefaultNamesOutput, bool) {
	out, err := ui.service.DefaultNames(ui.ctx, &builder.DefaultNamesInput{})
	if err != nil {
		ui.showError(err)
		return nil, false
	}
	return out, true
}

func (ui *UI) promptSave() {
	if strings.TrimSpace(ui.heroInput.GetText()) == "" {
		// the orchestrator answers with the hero name notice
		ui.save("")
		return
	}
	names, ok := ui.defaultNames()
	if !ok {
		return
	}
	ui.prompt("Save Hero", names.Session, ui.save)
}

func (ui *UI) promptLoad() {
	names, ok := ui.defaultNames()
	if !ok {
		return
	}
	ui.prompt("Load Hero", names.Session, ui.load)
}

func (ui *UI) promptExport() {
	names, ok := ui.defaultNames()
	if !ok {
		return
	}
	ui.prompt("Export to PDF", names.Sheet, ui.export)
}
