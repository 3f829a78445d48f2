package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/smkun/MarvelPowers/internal/entities"
)

// defaultWidth is the wrap width of terminal output
const defaultWidth = 80

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	nameStyle   = lipgloss.NewStyle().Bold(true)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	// power labels are red and trait labels blue, as on the sheet
	labelStyles = map[entities.Category]lipgloss.Style{
		entities.CategoryPower: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		entities.CategoryTrait: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	}
)

// renderDetails prints "Label: value" lines with coloured labels, wrapped
// to width
func renderDetails(w io.Writer, category entities.Category, lines []string, width int) {
	if width <= 0 {
		width = defaultWidth
	}
	label := labelStyles[category]

	for _, line := range lines {
		name, value, ok := strings.Cut(line, ": ")
		if !ok {
			fmt.Fprintln(w, wordwrap.String(line, width))
			continue
		}
		fmt.Fprintln(w, wordwrap.String(label.Render(name+":")+" "+value, width))
	}
}

// renderList prints a titled list of names, one per line
func renderList(w io.Writer, title string, names []string) {
	fmt.Fprintln(w, headerStyle.Render(title))
	if len(names) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, n := range names {
		fmt.Fprintln(w, "  "+n)
	}
}

// renderSelection prints a hero's selection
func renderSelection(w io.Writer, heroName string, powers, traits []string, includeTraits bool) {
	if heroName != "" {
		fmt.Fprintln(w, nameStyle.Render(heroName))
		fmt.Fprintln(w)
	}
	renderList(w, "Selected Powers:", powers)
	if includeTraits {
		fmt.Fprintln(w)
		renderList(w, "Selected Traits:", traits)
	}
}

// renderNotice prints an informational message that did not stop the command
func renderNotice(w io.Writer, title, message string) {
	fmt.Fprintln(w, noticeStyle.Render(title+":")+" "+message)
}
