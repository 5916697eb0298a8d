package graph

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/raykavin/candleterm/pkg/core"
)

const legendTimeLayout = "2006-01-02 15:04"

// Settings carries everything the composer needs beyond the canvas:
// pair labels, the active style, capabilities and the terminal width
// every emitted line must fit.
type Settings struct {
	Base      string
	Quote     string
	Interval  core.Interval
	Periods   int
	Style     Style
	DotValues DotValues
	Unicode   bool
	Color     bool
	TermWidth int
}

// compose assembles the final text block: legend, one line per canvas
// row with its price label, the time axis, up to three time labels and
// the footer. Every line is truncated to the terminal width.
func compose(series core.Series, s Settings, bounds Bounds, canvas *Canvas, glyphs Glyphs) string {
	lines := make([]string, 0, canvas.Height()+7)

	lines = append(lines, legendLines(series, s)...)
	lines = append(lines, graphLines(s, bounds, canvas, glyphs)...)
	lines = append(lines, axisLine(canvas.Width(), s.TermWidth, glyphs))

	if canvas.Width() > minGraphWidth {
		lines = append(lines, timeLabelLine(series, s, canvas.Width()))
	}

	lines = append(lines, "", footerLine(s))

	return strings.Join(lines, "\n")
}

func legendLines(series core.Series, s Settings) []string {
	var start, end string
	if !series.IsEmpty() {
		start = series.First().Time.Format(legendTimeLayout)
		end = series.Last().Time.Format(legendTimeLayout)
	}

	legend := fmt.Sprintf("%s/%s - %s - %d periods (%s to %s)",
		s.Base, s.Quote, s.Interval, s.Periods, start, end)
	legend = truncateEllipsis(legend, s.TermWidth)

	underline := runewidth.StringWidth(legend)
	if underline > s.TermWidth {
		underline = s.TermWidth
	}

	return []string{legend, strings.Repeat("=", underline), ""}
}

func graphLines(s Settings, bounds Bounds, canvas *Canvas, glyphs Glyphs) []string {
	lines := make([]string, 0, canvas.Height())

	priceStep := 0.0
	if canvas.Height() > 1 {
		priceStep = (bounds.Max - bounds.Min) / float64(canvas.Height()-1)
	}

	// Cells beyond this count would push the line past the terminal.
	maxCells := s.TermWidth - axisWidth
	if maxCells < 0 {
		maxCells = 0
	}

	for row := 0; row < canvas.Height(); row++ {
		price := bounds.Max - priceStep*float64(row)

		var b strings.Builder
		b.WriteString(fmt.Sprintf("%10s", formatPrice(price)))
		b.WriteRune(glyphs.Separator)

		cells := canvas.Row(row)
		if len(cells) > maxCells {
			cells = cells[:maxCells]
		}

		for _, cell := range cells {
			if s.Color && cell.Color != "" {
				b.WriteString(cell.Color)
				b.WriteRune(cell.Glyph)
				b.WriteString(ColorReset)
			} else {
				b.WriteRune(cell.Glyph)
			}
		}

		lines = append(lines, b.String())
	}

	return lines
}

func axisLine(graphWidth, termWidth int, glyphs Glyphs) string {
	span := graphWidth
	if limit := termWidth - axisWidth; span > limit {
		span = limit
	}
	if span < 0 {
		span = 0
	}

	return strings.Repeat(" ", axisWidth-1) +
		string(glyphs.Corner) +
		strings.Repeat(string(glyphs.Horizontal), span)
}

// timeLabelLine places up to three time labels (first, middle, last
// point) under their canvas columns. A label that would spill past the
// graph area or the terminal edge is skipped rather than clipped.
func timeLabelLine(series core.Series, s Settings, graphWidth int) string {
	n := series.Len()

	line := []rune(strings.Repeat(" ", axisWidth))
	maxLabelPos := axisWidth + graphWidth

	indices := []int{0, n / 2, n - 1}
	if n <= 2 {
		indices = []int{0, n - 1}
	}

	for _, idx := range indices {
		if idx < 0 || idx >= n {
			continue
		}

		label := []rune(timeLabel(series[idx].Time, s.Interval))

		xPos := axisWidth + idx*graphWidth/n
		start := xPos - len(label)/2
		if start < axisWidth {
			start = axisWidth
		}
		end := start + len(label)

		limit := maxLabelPos
		if s.TermWidth < limit {
			limit = s.TermWidth
		}
		if end > limit {
			continue
		}

		for len(line) < end {
			line = append(line, ' ')
		}
		copy(line[start:end], label)
	}

	if len(line) > s.TermWidth {
		line = line[:s.TermWidth]
	}
	return string(line)
}

// timeLabel formats a point's timestamp by interval granularity: dates
// for daily and coarser, date plus time for hourly, time alone below
// the hour.
func timeLabel(t time.Time, interval core.Interval) string {
	switch interval.Granularity() {
	case core.GranularityDay:
		return t.Format("01/02")
	case core.GranularityHour:
		return t.Format("01/02 15:04")
	default:
		return t.Format("15:04")
	}
}

func footerLine(s Settings) string {
	info := fmt.Sprintf("Format: %s", s.Style)
	if s.Style == StyleDot {
		info += fmt.Sprintf(" (showing: %s)", s.DotValues)
	}
	info += fmt.Sprintf(" | Unicode: %t | Color: %t", s.Unicode, s.Color)

	return truncateEllipsis(info, s.TermWidth)
}

// formatPrice renders a price axis label: thousands get separators and
// no decimals, unit prices two decimals, sub-unit prices up to six
// significant decimals with trailing zeros trimmed.
func formatPrice(price float64) string {
	switch {
	case price >= 1000:
		return humanize.Comma(int64(math.Round(price)))
	case price >= 1:
		return fmt.Sprintf("%.2f", price)
	default:
		trimmed := strings.TrimRight(fmt.Sprintf("%.6f", price), "0")
		return strings.TrimRight(trimmed, ".")
	}
}

// truncateEllipsis shortens s to at most width display columns, marking
// the cut with an ellipsis.
func truncateEllipsis(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}
