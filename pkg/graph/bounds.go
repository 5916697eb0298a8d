package graph

import (
	"github.com/raykavin/candleterm/pkg/core"
	"gonum.org/v1/gonum/floats"
)

// rangePadding widens the raw price range by 5% on each side so the
// extremes never sit on the canvas edge.
const rangePadding = 0.05

// Bounds is the padded price range a canvas maps onto.
type Bounds struct {
	Min float64
	Max float64
}

// ComputeBounds pools every high, low and close in the series and pads
// the extremes. A flat series pads a zero range by zero, collapsing the
// bounds to a single price; RowFor handles that case explicitly instead
// of dividing by zero.
func ComputeBounds(series core.Series) Bounds {
	if series.IsEmpty() {
		return Bounds{}
	}

	pool := make([]float64, 0, len(series)*3)
	for _, c := range series {
		pool = append(pool, c.High, c.Low, c.Close)
	}

	lowest := floats.Min(pool)
	highest := floats.Max(pool)
	padding := (highest - lowest) * rangePadding

	return Bounds{Min: lowest - padding, Max: highest + padding}
}
