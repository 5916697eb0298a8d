package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/raykavin/candleterm/pkg/graph"
	"github.com/raykavin/candleterm/pkg/term"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "candleterm.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("base-currency", "", "")
	flags.String("quote-currency", "", "")
	flags.String("time-interval", "", "")
	flags.Int("periods", 0, "")
	flags.String("graph-format", "", "")
	flags.String("dot-values", "", "")
	flags.Int("width", 0, "")
	flags.Int("height", 0, "")
	flags.String("use-unicode", "", "")
	flags.String("use-color", "", "")
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	require.Equal(t, "BTC", cfg.BaseCurrency)
	require.Equal(t, "USDT", cfg.QuoteCurrency)
	require.Equal(t, "BTCUSDT", cfg.Pair())
	require.Equal(t, "1d", cfg.TimeInterval.String())
	require.Equal(t, graph.StyleCandle, cfg.GraphFormat)
	require.Equal(t, graph.DotAll, cfg.DotValues)
	require.Zero(t, cfg.Periods)
	require.Equal(t, term.ModeAuto, cfg.UseUnicode)
	require.Equal(t, term.ModeAuto, cfg.UseColor)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.NoError(t, err)
	require.Equal(t, "BTC", cfg.BaseCurrency)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
base_currency: ETH
quote_currency: BRL
time_interval: 4h
graph_format: dot
dot_values: close
periods: 50
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	require.Equal(t, "ETH", cfg.BaseCurrency)
	require.Equal(t, "ETHBRL", cfg.Pair())
	require.Equal(t, "4h", cfg.TimeInterval.String())
	require.Equal(t, graph.StyleDot, cfg.GraphFormat)
	require.Equal(t, graph.DotClose, cfg.DotValues)
	require.Equal(t, 50, cfg.Periods)
}

func TestLoad_FlagsBeatFile(t *testing.T) {
	path := writeConfig(t, "base_currency: ETH\nperiods: 50\n")

	flags := testFlags()
	require.NoError(t, flags.Set("base-currency", "SOL"))
	require.NoError(t, flags.Set("periods", "25"))

	cfg, err := Load(path, flags)
	require.NoError(t, err)

	require.Equal(t, "SOL", cfg.BaseCurrency)
	require.Equal(t, 25, cfg.Periods)
	// untouched flags fall through to the file and defaults
	require.Equal(t, "USDT", cfg.QuoteCurrency)
}

func TestLoad_RejectsUnknownStyle(t *testing.T) {
	path := writeConfig(t, "graph_format: wave\n")

	_, err := Load(path, nil)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_RejectsUnknownDotValues(t *testing.T) {
	path := writeConfig(t, "dot_values: open\n")

	_, err := Load(path, nil)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_RejectsBadModes(t *testing.T) {
	path := writeConfig(t, "use_color: maybe\n")

	_, err := Load(path, nil)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_RejectsNegativePeriods(t *testing.T) {
	path := writeConfig(t, "periods: -5\n")

	_, err := Load(path, nil)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "base_currency: [unclosed\n")

	_, err := Load(path, nil)
	require.ErrorIs(t, err, ErrInvalid)
}
