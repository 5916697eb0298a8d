// Package graph renders an OHLC candle series onto a character canvas
// and composes the final text block: legend, price axis, time axis and
// footer. One Render call is fully synchronous and owns all of its
// state, so independent renders may run concurrently.
package graph

// Style selects the drawing algorithm.
type Style string

const (
	StyleCandle Style = "candle"
	StyleDot    Style = "dot"
)

// IsValid reports whether the style is a known drawing algorithm.
func (s Style) IsValid() bool { return s == StyleCandle || s == StyleDot }

// DotValues gates which markers the dot style draws.
type DotValues string

const (
	DotAll   DotValues = "all"
	DotHigh  DotValues = "high"
	DotLow   DotValues = "low"
	DotClose DotValues = "close"
)

// IsValid reports whether the dot sub-mode is known.
func (d DotValues) IsValid() bool {
	return d == DotAll || d == DotHigh || d == DotLow || d == DotClose
}
