package binance

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/stretchr/testify/require"

	"github.com/raykavin/candleterm/pkg/core"
)

func TestCandlesByLimit_InvalidInterval(t *testing.T) {
	exchange := NewExchange()

	_, err := exchange.CandlesByLimit(context.Background(), "BTCUSDT", "2d", 10)
	require.ErrorIs(t, err, core.ErrInvalidInterval)
}

func TestCandlesByLimit_EmptySeries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, "[]")
	}))
	defer server.Close()

	exchange := NewExchange(WithBaseURL(server.URL))

	_, err := exchange.CandlesByLimit(context.Background(), "BTCUSDT", "1d", 10)
	require.ErrorIs(t, err, core.ErrEmptySeries)
}

func TestCandlesByLimit_ParsesKlines(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			[1714521600000,"60000.10","61000.00","59500.00","60500.50","1000.5",1714607999999,"60500000.00",5000,"500.25","30250000.00","0"],
			[1714608000000,"60500.50","62000.00","60000.00","61500.00","900.0",1714694399999,"55350000.00",4500,"450.00","27675000.00","0"]
		]`)
	}))
	defer server.Close()

	exchange := NewExchange(WithBaseURL(server.URL))

	series, err := exchange.CandlesByLimit(context.Background(), "BTCUSDT", "1d", 2)
	require.NoError(t, err)
	require.Len(t, series, 2)

	first := series.First()
	require.Equal(t, "BTCUSDT", first.Pair)
	require.Equal(t, int64(1714521600), first.Time.Unix())
	require.Equal(t, 60000.10, first.Open)
	require.Equal(t, 61000.00, first.High)
	require.Equal(t, 59500.00, first.Low)
	require.Equal(t, 60500.50, first.Close)
	require.Equal(t, 1000.5, first.Volume)
	require.True(t, first.Complete)

	require.True(t, series.Last().Time.After(first.Time))
}

func TestConvertKlineToCandle_Completeness(t *testing.T) {
	now := time.Now()

	closed := binance.Kline{
		OpenTime:  now.Add(-2 * time.Hour).UnixMilli(),
		CloseTime: now.Add(-time.Hour).UnixMilli(),
		Open:      "1", High: "2", Low: "0.5", Close: "1.5", Volume: "10",
	}
	forming := binance.Kline{
		OpenTime:  now.Add(-time.Hour).UnixMilli(),
		CloseTime: now.Add(time.Hour).UnixMilli(),
		Open:      "1", High: "2", Low: "0.5", Close: "1.5", Volume: "10",
	}

	require.True(t, convertKlineToCandle("BTCUSDT", closed, now).Complete)
	require.False(t, convertKlineToCandle("BTCUSDT", forming, now).Complete)
}
