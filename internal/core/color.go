package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the breach screen.
const (
	ColorDefault     Color = iota
	ColorGreen             // Matrix cells
	ColorBrightGreen       // Matched codes, success banner
	ColorYellow            // Titles, next expected code
	ColorRed               // Failure banner, last seconds
	ColorOrange            // Timer warning
	ColorCyan              // Cursor
	ColorWhite             // Highlighted candidates
	ColorGray              // Unmatched codes
	ColorDarkGray          // Consumed cells, spent buffer
)
