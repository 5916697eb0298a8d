package graph

// RowFor maps a price onto a canvas row. Row 0 is the top of the
// canvas, so higher prices map to smaller rows. Degenerate bounds put
// every price on the vertical midpoint. The result is always inside
// [0, height-1].
func (b Bounds) RowFor(price float64, height int) int {
	if b.Max == b.Min {
		return height / 2
	}

	ratio := (price - b.Min) / (b.Max - b.Min)
	row := int(float64(height-1) - ratio*float64(height-1))

	if row < 0 {
		row = 0
	}
	if row > height-1 {
		row = height - 1
	}
	return row
}

// ColFor maps point i of n onto a canvas column, centered within the
// character span each point is allotted.
func ColFor(i, n, width int) int {
	perPoint := width / n
	if perPoint < 1 {
		perPoint = 1
	}

	col := i*width/n + perPoint/2
	if col > width-1 {
		col = width - 1
	}
	return col
}
