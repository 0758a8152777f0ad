package constants

// Terminal layout
const (
	// CellWidth is the number of terminal columns drawn per grid cell
	CellWidth = 2

	// StatusBarHeight is the rows reserved above the grid
	StatusBarHeight = 1
)

// Glyphs
const (
	GlyphWall  = '█'
	GlyphHead  = '█'
	GlyphBody  = '▓'
	GlyphFood  = '●'
	GlyphEmpty = ' '
)
