package graph

// ANSI color tags cells carry on the canvas. The table is fixed at
// compile time and never mutated.
const (
	ColorReset = "\033[0m"

	// Candle colors
	ColorBullish = "\033[92m" // bright green, close above open
	ColorBearish = "\033[91m" // bright red
	ColorWick    = "\033[90m" // bright black

	// Dot colors
	ColorHigh  = "\033[96m" // bright cyan
	ColorLow   = "\033[93m" // bright yellow
	ColorClose = "\033[97m" // bright white
)

// colorTag returns the code when color is enabled, else the empty tag.
func colorTag(enabled bool, code string) string {
	if enabled {
		return code
	}
	return ""
}
