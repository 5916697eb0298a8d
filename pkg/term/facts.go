// Package term resolves the terminal environment a chart renders into:
// geometry, unicode capability and color capability. Gathering the raw
// facts is separated from interpreting them so the policy stays testable
// without a real terminal.
package term

import (
	"os"

	"github.com/mattn/go-isatty"
	xterm "golang.org/x/term"
)

// Facts are the observable stream and environment properties the
// resolution policy runs on.
type Facts struct {
	IsTTY    bool
	NoColor  bool   // NO_COLOR was set, regardless of value
	TermType string // $TERM
	Locale   string // first non-empty of LC_ALL, LC_CTYPE, LANG
	Columns  int    // 0 when the geometry query failed
	Rows     int
}

// CollectFacts probes the given output stream and the process
// environment. All probes are read-only; failures leave zero values.
func CollectFacts(f *os.File) Facts {
	facts := Facts{
		IsTTY:    isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()),
		NoColor:  os.Getenv("NO_COLOR") != "",
		TermType: os.Getenv("TERM"),
		Locale:   locale(),
	}

	if w, h, err := xterm.GetSize(int(f.Fd())); err == nil {
		facts.Columns, facts.Rows = w, h
	}

	return facts
}

func locale() string {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}
