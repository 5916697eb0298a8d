package core

import "time"

// Candle represents one OHLC period for a trading pair
type Candle struct {
	Pair     string
	Time     time.Time
	Open     float64
	Close    float64
	Low      float64
	High     float64
	Volume   float64
	Complete bool
}

// GetPair returns the trading pair identifier for the candle
func (c Candle) GetPair() string { return c.Pair }

// GetTime returns the timestamp of the candle
func (c Candle) GetTime() time.Time { return c.Time }

// GetOpen returns the opening price of the candle
func (c Candle) GetOpen() float64 { return c.Open }

// GetClose returns the closing price of the candle
func (c Candle) GetClose() float64 { return c.Close }

// GetLow returns the lowest price during the candle period
func (c Candle) GetLow() float64 { return c.Low }

// GetHigh returns the highest price during the candle period
func (c Candle) GetHigh() float64 { return c.High }

// GetVolume returns the trading volume during the candle period
func (c Candle) GetVolume() float64 { return c.Volume }

// IsComplete returns whether the candle period is closed
func (c Candle) IsComplete() bool { return c.Complete }

// IsEmpty checks if the candle contains no significant data
func (c Candle) IsEmpty() bool { return c.Pair == "" && c.Close == 0 && c.Open == 0 && c.Volume == 0 }

// Series is a chronologically ordered run of candles for a single pair.
// The provider guarantees strictly increasing timestamps; the renderer
// tolerates everything else.
type Series []Candle

// Len returns the number of candles in the series
func (s Series) Len() int { return len(s) }

// IsEmpty reports whether the series holds no candles
func (s Series) IsEmpty() bool { return len(s) == 0 }

// First returns the oldest candle in the series
func (s Series) First() Candle {
	if len(s) == 0 {
		return Candle{}
	}
	return s[0]
}

// Last returns the newest candle in the series
func (s Series) Last() Candle {
	if len(s) == 0 {
		return Candle{}
	}
	return s[len(s)-1]
}
