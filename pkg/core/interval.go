package core

import (
	"strings"
	"time"

	"github.com/xhit/go-str2duration/v2"
)

// Interval is a Binance kline interval token (e.g. "15m", "4h", "1d").
type Interval string

// Granularity classifies an interval for time-axis label formatting.
type Granularity int

const (
	GranularityMinute Granularity = iota
	GranularityHour
	GranularityDay
)

// Supported interval tokens. One-second klines are not available for
// historical data, so "1s" is deliberately absent.
var validIntervals = map[Interval]bool{
	"1m": true, "3m": true, "5m": true, "15m": true, "30m": true,
	"1h": true, "2h": true, "4h": true, "6h": true, "8h": true, "12h": true,
	"1d": true, "3d": true,
	"1w": true,
	"1M": true,
}

// Intervals returns every supported token, shortest first.
func Intervals() []Interval {
	return []Interval{
		"1m", "3m", "5m", "15m", "30m",
		"1h", "2h", "4h", "6h", "8h", "12h",
		"1d", "3d", "1w", "1M",
	}
}

// IsValid reports whether the token is one the exchange accepts.
func (i Interval) IsValid() bool { return validIntervals[i] }

// Granularity returns the label class for the interval: day-or-coarser
// intervals label with dates, hour intervals with date and time, and
// sub-hour intervals with time only.
func (i Interval) Granularity() Granularity {
	switch {
	case strings.HasSuffix(string(i), "d"),
		strings.HasSuffix(string(i), "w"),
		strings.HasSuffix(string(i), "M"):
		return GranularityDay
	case strings.HasSuffix(string(i), "h"):
		return GranularityHour
	default:
		return GranularityMinute
	}
}

// Duration returns the time span of one period. The month token is
// approximated as 30 days since str2duration has no month unit.
func (i Interval) Duration() (time.Duration, error) {
	if !i.IsValid() {
		return 0, ErrInvalidInterval
	}
	if i == "1M" {
		return 30 * 24 * time.Hour, nil
	}
	return str2duration.ParseDuration(string(i))
}

func (i Interval) String() string { return string(i) }
