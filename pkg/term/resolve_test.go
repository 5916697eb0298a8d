package term

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve_GeometryFallback(t *testing.T) {
	env := Resolve(Facts{}, 0, 0, ModeAuto, ModeAuto)

	require.Equal(t, DefaultColumns, env.Width)
	require.Equal(t, DefaultRows, env.Height)
}

func TestResolve_GeometryFromProbe(t *testing.T) {
	env := Resolve(Facts{Columns: 120, Rows: 40}, 0, 0, ModeAuto, ModeAuto)

	require.Equal(t, 120, env.Width)
	require.Equal(t, 40, env.Height)
}

func TestResolve_OverridesWin(t *testing.T) {
	env := Resolve(Facts{Columns: 120, Rows: 40}, 100, 30, ModeAuto, ModeAuto)

	require.Equal(t, 100, env.Width)
	require.Equal(t, 30, env.Height)
}

func TestResolve_UnicodePolicy(t *testing.T) {
	tests := []struct {
		name   string
		facts  Facts
		mode   Mode
		expect bool
	}{
		{"forced on without utf locale", Facts{Locale: "C"}, ModeOn, true},
		{"forced off with utf locale", Facts{Locale: "en_US.UTF-8"}, ModeOff, false},
		{"auto utf-8 locale", Facts{Locale: "en_US.UTF-8"}, ModeAuto, true},
		{"auto utf8 spelling", Facts{Locale: "pt_BR.utf8"}, ModeAuto, true},
		{"auto C locale", Facts{Locale: "C"}, ModeAuto, false},
		{"auto empty locale", Facts{}, ModeAuto, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := Resolve(tc.facts, 0, 0, tc.mode, ModeAuto)
			require.Equal(t, tc.expect, env.Unicode)
		})
	}
}

func TestResolve_ColorPolicy(t *testing.T) {
	tests := []struct {
		name   string
		facts  Facts
		mode   Mode
		expect bool
	}{
		{"forced on when redirected", Facts{IsTTY: false}, ModeOn, true},
		{"forced off on a clean tty", Facts{IsTTY: true}, ModeOff, false},
		{"auto requires a tty", Facts{IsTTY: false}, ModeAuto, false},
		{"auto honors NO_COLOR", Facts{IsTTY: true, NoColor: true}, ModeAuto, false},
		{"auto honors dumb terminal", Facts{IsTTY: true, TermType: "dumb"}, ModeAuto, false},
		{"auto clean tty", Facts{IsTTY: true, TermType: "xterm-256color"}, ModeAuto, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := Resolve(tc.facts, 0, 0, ModeAuto, tc.mode)
			require.Equal(t, tc.expect, env.Color)
		})
	}
}

func TestMode_IsValid(t *testing.T) {
	require.True(t, ModeAuto.IsValid())
	require.True(t, ModeOn.IsValid())
	require.True(t, ModeOff.IsValid())
	require.False(t, Mode("yes").IsValid())
}
