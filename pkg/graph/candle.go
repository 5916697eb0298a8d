package graph

import "github.com/raykavin/candleterm/pkg/core"

// RenderCandles paints one candle per point: first the wick across the
// full high-low span, then the open-close body over it. The body draws
// strictly after the wick, so where they overlap the body always wins;
// that ordering is the overlap contract, not an accident.
func RenderCandles(canvas *Canvas, series core.Series, bounds Bounds, glyphs Glyphs, color bool) {
	n := series.Len()
	if n == 0 {
		return
	}

	height := canvas.Height()

	for i, c := range series {
		highRow := bounds.RowFor(c.High, height)
		lowRow := bounds.RowFor(c.Low, height)
		openRow := bounds.RowFor(c.Open, height)
		closeRow := bounds.RowFor(c.Close, height)

		// The wick span must run top-down. Upstream data guarantees
		// high >= low, but malformed candles must not invert the span.
		if highRow > lowRow {
			highRow, lowRow = lowRow, highRow
		}

		bodyTop := min(openRow, closeRow)
		bodyBottom := max(openRow, closeRow)

		col := ColFor(i, n, canvas.Width())

		bodyColor := colorTag(color, ColorBearish)
		if c.Close > c.Open {
			bodyColor = colorTag(color, ColorBullish)
		}
		wickColor := colorTag(color, ColorWick)

		for row := highRow; row <= lowRow; row++ {
			canvas.Set(row, col, Cell{Glyph: glyphs.Wick, Color: wickColor})
		}

		// A single-row body (open == close) still draws one body glyph.
		for row := bodyTop; row <= bodyBottom; row++ {
			canvas.Set(row, col, Cell{Glyph: glyphs.Body, Color: bodyColor})
		}
	}
}
