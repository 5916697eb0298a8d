package graph

import "github.com/raykavin/candleterm/pkg/core"

// RenderDots plots independent high, low and close markers per point,
// gated by the configured sub-mode. The draw order high, low, close is
// fixed: when markers land on the same cell, the later one overwrites.
func RenderDots(canvas *Canvas, series core.Series, bounds Bounds, glyphs Glyphs, values DotValues, color bool) {
	n := series.Len()
	if n == 0 {
		return
	}

	height := canvas.Height()

	for i, c := range series {
		col := ColFor(i, n, canvas.Width())

		if values == DotAll || values == DotHigh {
			row := bounds.RowFor(c.High, height)
			canvas.Set(row, col, Cell{Glyph: glyphs.High, Color: colorTag(color, ColorHigh)})
		}
		if values == DotAll || values == DotLow {
			row := bounds.RowFor(c.Low, height)
			canvas.Set(row, col, Cell{Glyph: glyphs.Low, Color: colorTag(color, ColorLow)})
		}
		if values == DotAll || values == DotClose {
			row := bounds.RowFor(c.Close, height)
			canvas.Set(row, col, Cell{Glyph: glyphs.Close, Color: colorTag(color, ColorClose)})
		}
	}
}
