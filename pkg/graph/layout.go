package graph

const (
	// axisWidth is the budget for the price axis: a 10-character
	// right-justified label plus the separator column.
	axisWidth = 11

	// labelMargin keeps room for the time-axis labels at both edges
	// when the graph width is auto-sized.
	labelMargin = 10

	// reservedRows covers legend, underline, axis and footer lines.
	reservedRows = 4

	minGraphWidth  = 20
	minGraphHeight = 5

	minPeriods = 10
	maxPeriods = 1000
)

// PlanDimensions computes the canvas size in character cells. Explicit
// width/height of zero mean auto-size from the terminal. The result is
// floored at 20x5 and capped to the space the terminal leaves after the
// axis and reserved rows.
func PlanDimensions(explicitWidth, explicitHeight, termWidth, termHeight int) (int, int) {
	var availableWidth int
	if explicitWidth > 0 {
		availableWidth = explicitWidth - axisWidth
	} else {
		availableWidth = termWidth - axisWidth - labelMargin
	}

	availableHeight := termHeight - reservedRows
	if explicitHeight > 0 {
		availableHeight = explicitHeight - reservedRows
	}

	width := availableWidth
	if limit := termWidth - axisWidth; width > limit {
		width = limit
	}
	if width < minGraphWidth {
		width = minGraphWidth
	}

	height := availableHeight
	if limit := termHeight - reservedRows; height > limit {
		height = limit
	}
	if height < minGraphHeight {
		height = minGraphHeight
	}

	return width, height
}

// OptimalPeriods returns how many data points fit a canvas of the given
// width. Candles take two character columns each (body plus spacing);
// dots pack tighter at one and a half. The result is clamped to
// [10, 1000].
func OptimalPeriods(graphWidth int, style Style) int {
	perPoint := 2.0
	if style == StyleDot {
		perPoint = 1.5
	}

	periods := int(float64(graphWidth) / perPoint)
	if periods < minPeriods {
		periods = minPeriods
	}
	if periods > maxPeriods {
		periods = maxPeriods
	}

	return periods
}
