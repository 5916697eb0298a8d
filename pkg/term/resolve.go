package term

import "strings"

// Mode is a three-state capability switch.
type Mode string

const (
	ModeAuto Mode = "auto"
	ModeOn   Mode = "true"
	ModeOff  Mode = "false"
)

// IsValid reports whether the mode is one of auto, true, false.
func (m Mode) IsValid() bool {
	return m == ModeAuto || m == ModeOn || m == ModeOff
}

// Fallback geometry when the terminal cannot be queried.
const (
	DefaultColumns = 80
	DefaultRows    = 20
)

// Environment is the resolved rendering environment.
type Environment struct {
	Width   int
	Height  int
	Unicode bool
	Color   bool
}

// Resolve turns probed facts plus explicit overrides into the effective
// environment. Overrides of zero mean "not set". Every branch degrades
// to a safe default; there is no failure path.
func Resolve(facts Facts, widthOverride, heightOverride int, unicodeMode, colorMode Mode) Environment {
	env := Environment{Width: DefaultColumns, Height: DefaultRows}

	if facts.Columns > 0 {
		env.Width = facts.Columns
	}
	if facts.Rows > 0 {
		env.Height = facts.Rows
	}
	if widthOverride > 0 {
		env.Width = widthOverride
	}
	if heightOverride > 0 {
		env.Height = heightOverride
	}

	env.Unicode = resolveUnicode(facts, unicodeMode)
	env.Color = resolveColor(facts, colorMode)

	return env
}

// resolveUnicode decides whether box-drawing glyphs are safe to emit.
// Go sources are UTF-8 throughout, so the question is whether the
// terminal's locale decodes them; a UTF-8 locale is the signal.
func resolveUnicode(facts Facts, mode Mode) bool {
	switch mode {
	case ModeOn:
		return true
	case ModeOff:
		return false
	}

	locale := strings.ToLower(facts.Locale)
	return strings.Contains(locale, "utf-8") || strings.Contains(locale, "utf8")
}

func resolveColor(facts Facts, mode Mode) bool {
	switch mode {
	case ModeOn:
		return true
	case ModeOff:
		return false
	}

	if !facts.IsTTY {
		return false
	}
	if facts.NoColor || facts.TermType == "dumb" {
		return false
	}

	// Interactive and not opted out: modern Windows consoles and Unix
	// terminals alike accept ANSI sequences without negotiation.
	return true
}
