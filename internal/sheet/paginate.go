package sheet

// PlacedLine is a line positioned on a page
type PlacedLine struct {
	Line
	X      float64
	Y      float64
	Column int
}

// Page holds the lines placed on one page, in placement order
type Page struct {
	Lines []PlacedLine
}

// Paginator places blocks column by column and page by page. A block that
// does not fit in the rest of the current column moves to the next column,
// or to a new page after the last column. A block taller than an empty
// column is placed at the top of one anyway and runs past the bottom margin.
type Paginator struct {
	layout  Layout
	pages   []Page
	current Page
	column  int
	cursor  float64
}

// NewPaginator starts at the top of the first column of the first page
func NewPaginator(layout Layout) *Paginator {
	return &Paginator{
		layout: layout,
		cursor: layout.Top(),
	}
}

// Place positions every line of b
func (p *Paginator) Place(b Block) {
	if len(b.Lines) == 0 {
		return
	}

	if !p.fits(b) && !p.atColumnTop() {
		p.nextColumn()
	}

	x := p.layout.ColumnX(p.column)
	for _, line := range b.Lines {
		p.current.Lines = append(p.current.Lines, PlacedLine{
			Line:   line,
			X:      x,
			Y:      p.cursor,
			Column: p.column,
		})
		p.cursor += p.layout.Leading
	}
}

// PlaceSections places every block of every section in order
func (p *Paginator) PlaceSections(sections []Section) {
	for _, s := range sections {
		for _, b := range s.Blocks {
			p.Place(b)
		}
	}
}

// Flush closes the current page if anything was placed on it. Calling it
// again without placing more lines does nothing.
func (p *Paginator) Flush() {
	if len(p.current.Lines) == 0 {
		return
	}
	p.pages = append(p.pages, p.current)
	p.current = Page{}
	p.column = 0
	p.cursor = p.layout.Top()
}

// Pages returns the closed pages. Call Flush first to include the last one.
func (p *Paginator) Pages() []Page {
	out := make([]Page, len(p.pages))
	copy(out, p.pages)
	return out
}

func (p *Paginator) fits(b Block) bool {
	return p.cursor+b.Height(p.layout.Leading) <= p.layout.Bottom()
}

func (p *Paginator) atColumnTop() bool {
	return p.cursor == p.layout.Top()
}

func (p *Paginator) nextColumn() {
	if p.column+1 < p.layout.Columns {
		p.column++
		p.cursor = p.layout.Top()
		return
	}
	p.Flush()
}

// Paginate places sections with a fresh Paginator and returns every page
func Paginate(sections []Section, layout Layout) []Page {
	p := NewPaginator(layout)
	p.PlaceSections(sections)
	p.Flush()
	return p.Pages()
}
