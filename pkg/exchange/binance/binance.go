// Package binance fetches OHLC kline series from the Binance spot API.
// Public market data needs no credentials.
package binance

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/adshao/go-binance/v2/common"
	"github.com/jpillora/backoff"
	"github.com/samber/lo"

	"github.com/raykavin/candleterm/pkg/core"
)

const fetchAttempts = 3

// Exchange is the Binance spot market data client.
type Exchange struct {
	client *binance.Client
}

// Option configures an Exchange.
type Option func(*Exchange)

// WithCredentials sets API credentials. Kline data is public, so this
// only matters when the account's weight limits are needed.
func WithCredentials(key, secret string) Option {
	return func(e *Exchange) {
		e.client = binance.NewClient(key, secret)
	}
}

// WithTestNet routes requests to the Binance testnet.
func WithTestNet() Option {
	return func(_ *Exchange) {
		binance.UseTestnet = true
	}
}

// WithBaseURL points the client at a custom REST endpoint.
func WithBaseURL(url string) Option {
	return func(e *Exchange) {
		e.client.BaseURL = url
	}
}

// NewExchange creates a Binance spot client.
func NewExchange(options ...Option) *Exchange {
	exchange := &Exchange{client: binance.NewClient("", "")}

	for _, option := range options {
		option(exchange)
	}

	return exchange
}

// CandlesByLimit fetches the most recent candles for a pair. The
// interval token is validated before any network traffic; transient
// transport errors are retried with backoff, while API rejections are
// returned as-is.
func (e *Exchange) CandlesByLimit(ctx context.Context, pair string, interval core.Interval, limit int) (core.Series, error) {
	if !interval.IsValid() {
		return nil, fmt.Errorf("%w: %s (valid intervals: %s)",
			core.ErrInvalidInterval, interval, intervalList())
	}

	klines, err := e.fetchKlines(ctx, pair, interval, limit)
	if err != nil {
		return nil, err
	}

	if len(klines) == 0 {
		return nil, fmt.Errorf("%w: no data returned for %s with interval %s",
			core.ErrEmptySeries, pair, interval)
	}

	now := time.Now()
	candles := lo.Map(klines, func(k *binance.Kline, _ int) core.Candle {
		return convertKlineToCandle(pair, *k, now)
	})

	return candles, nil
}

func (e *Exchange) fetchKlines(ctx context.Context, pair string, interval core.Interval, limit int) ([]*binance.Kline, error) {
	retry := &backoff.Backoff{
		Min: 100 * time.Millisecond,
		Max: 1 * time.Second,
	}

	var klines []*binance.Kline
	var err error

	for attempt := 0; attempt < fetchAttempts; attempt++ {
		klines, err = e.client.NewKlinesService().
			Symbol(pair).
			Interval(string(interval)).
			Limit(limit).
			Do(ctx)
		if err == nil {
			return klines, nil
		}

		// The exchange answered and said no; retrying won't change that.
		var apiErr *common.APIError
		if errors.As(err, &apiErr) {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retry.Duration()):
		}
	}

	return nil, err
}

// convertKlineToCandle converts a Binance kline to a core.Candle.
func convertKlineToCandle(pair string, k binance.Kline, now time.Time) core.Candle {
	candle := core.Candle{
		Pair:     pair,
		Time:     time.Unix(0, k.OpenTime*int64(time.Millisecond)),
		Complete: k.CloseTime < now.UnixMilli(),
	}

	candle.Open, _ = strconv.ParseFloat(k.Open, 64)
	candle.Close, _ = strconv.ParseFloat(k.Close, 64)
	candle.High, _ = strconv.ParseFloat(k.High, 64)
	candle.Low, _ = strconv.ParseFloat(k.Low, 64)
	candle.Volume, _ = strconv.ParseFloat(k.Volume, 64)

	return candle
}

func intervalList() string {
	tokens := lo.Map(core.Intervals(), func(i core.Interval, _ int) string {
		return string(i)
	})
	return strings.Join(tokens, ", ")
}
