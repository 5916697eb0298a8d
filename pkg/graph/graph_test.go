package graph

import (
	"time"

	"github.com/raykavin/candleterm/pkg/core"
)

// testSeries builds a daily series starting 2024-05-01 from parallel
// OHLC columns.
func testSeries(opens, closes, highs, lows []float64) core.Series {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	series := make(core.Series, len(opens))
	for i := range opens {
		series[i] = core.Candle{
			Pair:     "BTCUSDT",
			Time:     base.AddDate(0, 0, i),
			Open:     opens[i],
			Close:    closes[i],
			High:     highs[i],
			Low:      lows[i],
			Complete: true,
		}
	}

	return series
}

func flatSeries(n int, price float64) core.Series {
	opens := make([]float64, n)
	for i := range opens {
		opens[i] = price
	}
	return testSeries(opens, opens, opens, opens)
}
