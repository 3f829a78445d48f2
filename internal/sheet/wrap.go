package sheet

import "strings"

// Measurer reports the rendered width of text in points
type Measurer interface {
	Width(text string, font Font) float64
}

// MonospaceMeasurer gives every rune the same advance, scaled by font size.
// Layout tests use it so results do not depend on font metrics.
type MonospaceMeasurer struct {
	// Advance is the width of one rune at 1pt
	Advance float64
}

// Width implements Measurer
func (m MonospaceMeasurer) Width(text string, font Font) float64 {
	return float64(len([]rune(text))) * m.Advance * font.Size
}

// Wrap greedily fills lines with whitespace separated words while they fit in
// maxWidth. A word wider than maxWidth gets a line of its own. Empty text
// yields no lines.
func Wrap(text string, font Font, maxWidth float64, m Measurer) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if m.Width(candidate, font) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}
