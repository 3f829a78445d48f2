package sheet

// Style classifies a line for font and colour
type Style int

// Line styles
const (
	StyleBlank Style = iota
	StyleHeader
	StyleTitle
	StyleEntryPower
	StyleEntryTrait
	StyleField
)

// String returns the style name
func (s Style) String() string {
	switch s {
	case StyleBlank:
		return "blank"
	case StyleHeader:
		return "header"
	case StyleTitle:
		return "title"
	case StyleEntryPower:
		return "entry_power"
	case StyleEntryTrait:
		return "entry_trait"
	case StyleField:
		return "field"
	}
	return "unknown"
}

// Font style strings understood by fpdf
const (
	FontRegular = ""
	FontBold    = "B"
)

// Font is a family, style and size in points
type Font struct {
	Family string
	Style  string
	Size   float64
}

// Color is an RGB text colour
type Color struct {
	R, G, B int
}

// Text colours
var (
	Black = Color{0, 0, 0}
	Red   = Color{255, 0, 0}
	Blue  = Color{0, 0, 255}
)

// ColorFor returns the text colour of a line style
func ColorFor(style Style) Color {
	switch style {
	case StyleEntryPower:
		return Red
	case StyleEntryTrait:
		return Blue
	}
	return Black
}

// Line is one pre-wrapped line of text
type Line struct {
	Text  string
	Style Style
}

// BlankLine separates blocks
var BlankLine = Line{Style: StyleBlank}

// Block is a run of lines that is never split across a column or page break
type Block struct {
	Lines []Line
}

// Height is the vertical space the block needs at the given leading
func (b Block) Height(leading float64) float64 {
	return float64(len(b.Lines)) * leading
}

// Section is an ordered group of blocks (the header, the powers, the traits)
type Section struct {
	Blocks []Block
}
