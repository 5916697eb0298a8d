package graph

import "github.com/raykavin/candleterm/pkg/core"

// Render runs the full pipeline for one already-fetched series: price
// bounds, a fresh canvas, the style's drawing pass, then composition
// into the final text block. The same series and settings always yield
// byte-identical output.
func Render(series core.Series, s Settings, graphWidth, graphHeight int) string {
	bounds := ComputeBounds(series)
	glyphs := GlyphsFor(s.Unicode)
	canvas := NewCanvas(graphWidth, graphHeight)

	switch s.Style {
	case StyleDot:
		RenderDots(canvas, series, bounds, glyphs, s.DotValues, s.Color)
	default:
		RenderCandles(canvas, series, bounds, glyphs, s.Color)
	}

	return compose(series, s, bounds, canvas, glyphs)
}
