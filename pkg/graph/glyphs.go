package graph

// Glyphs is the character set a render uses, selected once per call by
// unicode capability.
type Glyphs struct {
	Wick  rune // candle high-low span
	Body  rune // candle open-close span
	High  rune // dot style high marker
	Low   rune // dot style low marker
	Close rune // dot style close marker

	Separator  rune // price axis separator
	Corner     rune // time axis corner
	Horizontal rune // time axis line
}

var unicodeGlyphs = Glyphs{
	Wick:       '│',
	Body:       '█',
	High:       '▲',
	Low:        '▼',
	Close:      '●',
	Separator:  '│',
	Corner:     '└',
	Horizontal: '─',
}

var asciiGlyphs = Glyphs{
	Wick:       '|',
	Body:       '#',
	High:       '^',
	Low:        'v',
	Close:      'o',
	Separator:  '|',
	Corner:     '+',
	Horizontal: '-',
}

// GlyphsFor returns the unicode set when the terminal can decode it,
// otherwise the plain ASCII fallback.
func GlyphsFor(unicode bool) Glyphs {
	if unicode {
		return unicodeGlyphs
	}
	return asciiGlyphs
}
