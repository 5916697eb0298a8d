package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raykavin/candleterm"
	"github.com/raykavin/candleterm/internal/config"
	"github.com/raykavin/candleterm/pkg/core"
	"github.com/raykavin/candleterm/pkg/exchange/binance"
	"github.com/raykavin/candleterm/pkg/graph"
	"github.com/raykavin/candleterm/pkg/term"
)

// Exit statuses: validation problems the user can fix versus everything
// unexpected.
const (
	exitValidation = 1
	exitUnexpected = 2
)

var configPath string

func main() {
	rootCmd := buildRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		if isValidationError(err) {
			os.Exit(exitValidation)
		}

		candleterm.DefaultLog.WithError(err).Error("unexpected failure")
		os.Exit(exitUnexpected)
	}
}

func buildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "candleterm",
		Short:         "Render cryptocurrency price charts in the terminal",
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	flags := rootCmd.Flags()
	flags.String("base-currency", "", "Base currency symbol (e.g. BTC, ETH)")
	flags.String("quote-currency", "", "Quote currency symbol (e.g. USDT, BRL)")
	flags.String("time-interval", "", "Kline interval (1m, 3m, 5m, 15m, 30m, 1h, 2h, 4h, 6h, 8h, 12h, 1d, 3d, 1w, 1M)")
	flags.Int("periods", 0, "Number of periods to fetch (default: derived from screen width)")
	flags.String("graph-format", "", "Graph format: candle or dot")
	flags.String("dot-values", "", "For dot format: all, high, low or close")
	flags.Int("width", 0, "Graph width in characters (default: auto-detect)")
	flags.Int("height", 0, "Graph height in lines (default: auto-detect)")
	flags.String("use-unicode", "", "Use unicode glyphs: auto, true or false")
	flags.String("use-color", "", "Use colors: auto, true or false")
	flags.StringVarP(&configPath, "config", "f", config.DefaultConfigPath, "Path to config file")

	return rootCmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	facts := term.CollectFacts(os.Stdout)
	env := term.Resolve(facts, cfg.Width, cfg.Height, cfg.UseUnicode, cfg.UseColor)

	graphWidth, graphHeight := graph.PlanDimensions(cfg.Width, cfg.Height, env.Width, env.Height)

	periods := cfg.Periods
	if periods == 0 {
		periods = graph.OptimalPeriods(graphWidth, cfg.GraphFormat)
	}

	candleterm.DefaultLog.Infof("fetching %d periods of %s/%s data (%s)",
		periods, cfg.BaseCurrency, cfg.QuoteCurrency, cfg.TimeInterval)

	exchange := binance.NewExchange()
	series, err := exchange.CandlesByLimit(cmd.Context(), cfg.Pair(), cfg.TimeInterval, periods)
	if err != nil {
		return err
	}

	output := graph.Render(series, graph.Settings{
		Base:      cfg.BaseCurrency,
		Quote:     cfg.QuoteCurrency,
		Interval:  cfg.TimeInterval,
		Periods:   periods,
		Style:     cfg.GraphFormat,
		DotValues: cfg.DotValues,
		Unicode:   env.Unicode,
		Color:     env.Color,
		TermWidth: env.Width,
	}, graphWidth, graphHeight)

	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}

func isValidationError(err error) bool {
	return errors.Is(err, config.ErrInvalid) ||
		errors.Is(err, core.ErrInvalidInterval) ||
		errors.Is(err, core.ErrEmptySeries)
}
