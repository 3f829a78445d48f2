// Package tui is the interactive shell of the builder. Widgets only deliver
// user intents to the builder orchestrator and redraw from selection events;
// the selection itself lives in the orchestrator's model.
package tui

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/smkun/MarvelPowers/internal/entities"
	"github.com/smkun/MarvelPowers/internal/errors"
	"github.com/smkun/MarvelPowers/internal/orchestrators/builder"
	"github.com/smkun/MarvelPowers/internal/selection"
)

const helpText = "[gold]Tab[-] focus  [gold]Enter[-] add/remove  [gold]^N[-] new  [gold]^O[-] open  [gold]^S[-] save  [gold]^E[-] export  [gold]^C[-] quit"

const allGroups = "(all)"

// Config holds the dependencies for the shell
type Config struct {
	Service builder.Service
	Preset  entities.Preset

	// EventBus is the bus the selection model publishes on
	EventBus events.EventBus

	// Application defaults to a new tview application
	Application *tview.Application
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Service == nil {
		vb.RequiredField("Service")
	}
	if c.Preset.Name == "" {
		vb.RequiredField("Preset")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

// UI is the tview shell
type UI struct {
	ctx     context.Context
	service builder.Service
	preset  entities.Preset
	bus     events.EventBus
	subs    []string

	app   *tview.Application
	pages *tview.Pages

	heroInput      *tview.InputField
	groupDrop      *tview.DropDown
	searchInput    *tview.InputField
	powerList      *tview.List
	traitList      *tview.List
	details        *tview.TextView
	selectedPowers *tview.List
	selectedTraits *tview.List
	status         *tview.TextView

	focusOrder []tview.Primitive

	// filtering is set while widgets are reset programmatically so their
	// change callbacks do not issue new filters
	filtering bool
	modalOpen bool
}

// New builds the shell and subscribes it to selection changes
func New(ctx context.Context, cfg *Config) (*UI, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	app := cfg.Application
	if app == nil {
		app = tview.NewApplication()
	}

	ui := &UI{
		ctx:     ctx,
		service: cfg.Service,
		preset:  cfg.Preset,
		bus:     cfg.EventBus,
		app:     app,
	}
	ui.build()

	if err := ui.loadGroups(); err != nil {
		return nil, err
	}
	ui.applyFilter(builder.FilterPowersInput{})
	if ui.preset.IncludeTraits {
		ui.loadTraits()
	}
	ui.refreshSelection()

	ui.subs = selection.Subscribe(ui.bus, ui.onSelectionEvent)
	return ui, nil
}

// Run blocks until the user quits
func (ui *UI) Run() error {
	defer ui.Close()
	if err := ui.app.Run(); err != nil {
		return errors.Wrap(err, "terminal session failed")
	}
	return nil
}

// Close detaches the shell from the event bus
func (ui *UI) Close() {
	selection.Unsubscribe(ui.bus, ui.subs)
	ui.subs = nil
}

// Stop ends Run
func (ui *UI) Stop() {
	ui.app.Stop()
}

func (ui *UI) onSelectionEvent(_ context.Context, e events.Event) error {
	switch e.Type() {
	case selection.EventReset:
		ui.clearBrowse()
	case selection.EventLoaded:
		ui.clearBrowse()
	}
	ui.refreshSelection()
	return nil
}

func (ui *UI) setStatus(text string) {
	ui.status.SetText(" " + text + "  " + helpText)
}

func (ui *UI) setStatusError(text string) {
	ui.status.SetText(" [white:red]" + tview.Escape(text) + "[-:-]  " + helpText)
}

func (ui *UI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if ui.modalOpen {
		return event
	}

	switch event.Key() {
	case tcell.KeyTab:
		ui.cycleFocus(1)
		return nil
	case tcell.KeyBacktab:
		ui.cycleFocus(-1)
		return nil
	case tcell.KeyCtrlN:
		ui.reset()
		return nil
	case tcell.KeyCtrlO:
		ui.promptLoad()
		return nil
	case tcell.KeyCtrlS:
		ui.promptSave()
		return nil
	case tcell.KeyCtrlE:
		ui.promptExport()
		return nil
	}
	return event
}

func (ui *UI) cycleFocus(step int) {
	focus := ui.app.GetFocus()
	current := 0
	for i, p := range ui.focusOrder {
		if p == focus {
			current = i
			break
		}
	}
	next := (current + step + len(ui.focusOrder)) % len(ui.focusOrder)
	ui.app.SetFocus(ui.focusOrder[next])
}
