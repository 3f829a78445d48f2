// Package sheet lays out a hero's selected powers and traits as a paged,
// styled document and writes it as a PDF.
//
// Building a sheet runs in three steps: BuildSections turns a record into
// blocks of wrapped, styled lines; a Paginator places whole blocks into
// columns and pages; Render draws the placed lines on a Canvas.
package sheet

import (
	"github.com/smkun/MarvelPowers/internal/entities"
	"github.com/smkun/MarvelPowers/internal/errors"
)

// US Letter in points
const (
	LetterWidth  = 612.0
	LetterHeight = 792.0
)

// Layout is the page geometry and type sizes of a sheet. Coordinates are in
// points from the top-left corner; Y values are text baselines.
type Layout struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
	ColumnGap  float64
	Columns    int

	FontFamily string
	FontSize   float64
	HeaderSize float64
	TitleSize  float64
	Leading    float64
}

// LetterTwoColumn is the combined sheet: two 9pt columns
var LetterTwoColumn = Layout{
	PageWidth:  LetterWidth,
	PageHeight: LetterHeight,
	Margin:     50,
	ColumnGap:  20,
	Columns:    2,
	FontFamily: "Helvetica",
	FontSize:   9,
	HeaderSize: 11,
	TitleSize:  10,
	Leading:    9 * 1.2,
}

// LetterOneColumn is the powers-only sheet: one 12pt column
var LetterOneColumn = Layout{
	PageWidth:  LetterWidth,
	PageHeight: LetterHeight,
	Margin:     50,
	Columns:    1,
	FontFamily: "Helvetica",
	FontSize:   12,
	HeaderSize: 12,
	TitleSize:  12,
	Leading:    12,
}

// LayoutFor returns the layout matching the preset's column count
func LayoutFor(preset entities.Preset) Layout {
	if preset.Columns >= 2 {
		return LetterTwoColumn
	}
	return LetterOneColumn
}

// Validate ensures the geometry leaves room for text
func (l Layout) Validate() error {
	vb := errors.NewValidationBuilder()

	if l.Columns < 1 {
		vb.Field("Columns", "must be at least 1")
	}
	if l.FontFamily == "" {
		vb.RequiredField("FontFamily")
	}
	if l.FontSize <= 0 {
		vb.Field("FontSize", "must be positive")
	}
	if l.Leading <= 0 {
		vb.Field("Leading", "must be positive")
	}
	if l.Columns >= 1 && l.ColumnWidth() <= 0 {
		vb.Field("ColumnWidth", "margins and gaps leave no room for text")
	}
	if l.Bottom() <= l.Top() {
		vb.Field("PageHeight", "margins leave no room for text")
	}

	return vb.Build()
}

// ColumnWidth is the width available to a line of text
func (l Layout) ColumnWidth() float64 {
	gaps := float64(l.Columns-1) * l.ColumnGap
	return (l.PageWidth - 2*l.Margin - gaps) / float64(l.Columns)
}

// ColumnX is the left edge of column col
func (l Layout) ColumnX(col int) float64 {
	return l.Margin + float64(col)*(l.ColumnWidth()+l.ColumnGap)
}

// Top is the baseline of the first line in a column
func (l Layout) Top() float64 {
	return l.Margin
}

// Bottom is the lowest baseline a block may end on
func (l Layout) Bottom() float64 {
	return l.PageHeight - l.Margin
}

// Font returns the font a line style is drawn in
func (l Layout) Font(style Style) Font {
	switch style {
	case StyleHeader:
		return Font{Family: l.FontFamily, Style: FontBold, Size: l.HeaderSize}
	case StyleTitle:
		return Font{Family: l.FontFamily, Style: FontBold, Size: l.TitleSize}
	case StyleEntryPower, StyleEntryTrait:
		return Font{Family: l.FontFamily, Style: FontBold, Size: l.FontSize}
	default:
		return Font{Family: l.FontFamily, Style: FontRegular, Size: l.FontSize}
	}
}
