package sheet

import (
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/smkun/MarvelPowers/internal/errors"
)

// Canvas receives drawing calls for placed lines
type Canvas interface {
	AddPage()
	SetFont(font Font)
	SetColor(c Color)
	Text(x, y float64, text string)
	Error() error
}

// Document is a canvas that can measure text and write itself out
type Document interface {
	Canvas
	Measurer
	SetTitle(title string)
	SetCreationDate(t time.Time)
	Output(w io.Writer) error
}

// PDFDocument draws with fpdf using its core fonts. Text is translated from
// UTF-8 to the core font encoding before it is measured or drawn.
type PDFDocument struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
}

// NewPDFDocument creates an empty document sized to the layout
func NewPDFDocument(layout Layout) *PDFDocument {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: layout.PageWidth, Ht: layout.PageHeight},
	})
	pdf.SetMargins(layout.Margin, layout.Margin, layout.Margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("MarvelPowers", true)

	return &PDFDocument{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// AddPage starts a new page
func (d *PDFDocument) AddPage() {
	d.pdf.AddPage()
}

// SetFont selects a core font
func (d *PDFDocument) SetFont(font Font) {
	d.pdf.SetFont(font.Family, font.Style, font.Size)
}

// SetColor sets the text colour
func (d *PDFDocument) SetColor(c Color) {
	d.pdf.SetTextColor(c.R, c.G, c.B)
}

// Text draws text with its baseline at y
func (d *PDFDocument) Text(x, y float64, text string) {
	d.pdf.Text(x, y, d.translate(text))
}

// Width implements Measurer with the core font metrics
func (d *PDFDocument) Width(text string, font Font) float64 {
	d.SetFont(font)
	return d.pdf.GetStringWidth(d.translate(text))
}

// SetCreationDate stamps the creation and modification dates
func (d *PDFDocument) SetCreationDate(t time.Time) {
	d.pdf.SetCreationDate(t)
	d.pdf.SetModificationDate(t)
}

// SetTitle sets the document title metadata
func (d *PDFDocument) SetTitle(title string) {
	d.pdf.SetTitle(title, true)
}

// Error returns the first drawing error, if any
func (d *PDFDocument) Error() error {
	return d.pdf.Error()
}

// Output writes the finished document to w
func (d *PDFDocument) Output(w io.Writer) error {
	return d.pdf.Output(w)
}

// Render draws every page on c. Blank lines only advance the cursor.
func Render(pages []Page, layout Layout, c Canvas) error {
	for _, page := range pages {
		c.AddPage()
		for _, pl := range page.Lines {
			if pl.Style == StyleBlank || pl.Text == "" {
				continue
			}
			c.SetFont(layout.Font(pl.Style))
			c.SetColor(ColorFor(pl.Style))
			c.Text(pl.X, pl.Y, pl.Text)
		}
	}

	if err := c.Error(); err != nil {
		return errors.WrapWithCode(err, errors.CodeRender, "failed to draw sheet")
	}
	return nil
}
