// Package config resolves the render configuration from defaults, an
// optional settings file, environment variables and command line flags,
// in ascending order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/raykavin/candleterm/pkg/core"
	"github.com/raykavin/candleterm/pkg/graph"
	"github.com/raykavin/candleterm/pkg/term"
)

// DefaultConfigPath is where the settings file is looked up unless
// overridden by the --config flag.
const DefaultConfigPath = "./candleterm.yaml"

// ErrInvalid marks configuration the user must fix; callers treat it
// as a validation failure, not a crash.
var ErrInvalid = errors.New("invalid configuration")

// Render is the immutable configuration one render call consumes.
type Render struct {
	BaseCurrency  string
	QuoteCurrency string
	TimeInterval  core.Interval
	Periods       int // 0 = derive from canvas width
	GraphFormat   graph.Style
	DotValues     graph.DotValues
	Width         int // 0 = auto-detect
	Height        int // 0 = auto-detect
	UseUnicode    term.Mode
	UseColor      term.Mode
}

// Pair returns the exchange ticker, e.g. BTCUSDT.
func (r Render) Pair() string { return r.BaseCurrency + r.QuoteCurrency }

// flag name per viper key, for precedence binding
var flagBindings = map[string]string{
	"base_currency":  "base-currency",
	"quote_currency": "quote-currency",
	"time_interval":  "time-interval",
	"periods":        "periods",
	"graph_format":   "graph-format",
	"dot_values":     "dot-values",
	"width":          "width",
	"height":         "height",
	"use_unicode":    "use-unicode",
	"use_color":      "use-color",
}

// Load resolves the render configuration. A missing settings file is
// not an error; a malformed one is.
func Load(path string, flags *pflag.FlagSet) (*Render, error) {
	v := viper.New()

	v.SetDefault("base_currency", "BTC")
	v.SetDefault("quote_currency", "USDT")
	v.SetDefault("time_interval", "1d")
	v.SetDefault("periods", 0)
	v.SetDefault("graph_format", string(graph.StyleCandle))
	v.SetDefault("dot_values", string(graph.DotAll))
	v.SetDefault("width", 0)
	v.SetDefault("height", 0)
	v.SetDefault("use_unicode", string(term.ModeAuto))
	v.SetDefault("use_color", string(term.ModeAuto))

	v.SetEnvPrefix("CANDLETERM")
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("%w: could not read %s: %v", ErrInvalid, path, err)
			}
		}
	}

	if flags != nil {
		for key, name := range flagBindings {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	cfg := &Render{
		BaseCurrency:  v.GetString("base_currency"),
		QuoteCurrency: v.GetString("quote_currency"),
		TimeInterval:  core.Interval(v.GetString("time_interval")),
		Periods:       v.GetInt("periods"),
		GraphFormat:   graph.Style(v.GetString("graph_format")),
		DotValues:     graph.DotValues(v.GetString("dot_values")),
		Width:         v.GetInt("width"),
		Height:        v.GetInt("height"),
		UseUnicode:    term.Mode(v.GetString("use_unicode")),
		UseColor:      term.Mode(v.GetString("use_color")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (r *Render) validate() error {
	if r.BaseCurrency == "" || r.QuoteCurrency == "" {
		return fmt.Errorf("%w: base and quote currencies must be set", ErrInvalid)
	}
	if !r.GraphFormat.IsValid() {
		return fmt.Errorf("%w: unknown graph format %q (candle or dot)", ErrInvalid, r.GraphFormat)
	}
	if !r.DotValues.IsValid() {
		return fmt.Errorf("%w: unknown dot values %q (all, high, low or close)", ErrInvalid, r.DotValues)
	}
	if !r.UseUnicode.IsValid() {
		return fmt.Errorf("%w: use_unicode must be auto, true or false", ErrInvalid)
	}
	if !r.UseColor.IsValid() {
		return fmt.Errorf("%w: use_color must be auto, true or false", ErrInvalid)
	}
	if r.Periods < 0 {
		return fmt.Errorf("%w: periods must not be negative", ErrInvalid)
	}
	if r.Width < 0 || r.Height < 0 {
		return fmt.Errorf("%w: width and height must not be negative", ErrInvalid)
	}
	return nil
}
