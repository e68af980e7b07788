// Package market holds the bar and series types every other package
// consumes. A Series is immutable once built; indicator enrichment and the
// replay loop always work on derived copies.
package market

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format used by bar uploads (day resolution).
const DateLayout = "02/01/2006"

// Date is a day-resolution timestamp that marshals as dd/MM/yyyy.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return fmt.Errorf("market: bar date is required")
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("market: bad bar date %q (want %s): %w", s, DateLayout, err)
	}
	d.Time = t
	return nil
}

// Bar is one OHLCV sample. RSI and EMA are zero until an enrichment pass
// fills them in; strategies treat 0 as "no reading yet".
type Bar struct {
	Date   Date    `json:"date"`
	Open   float64 `json:"open"`
	Close  float64 `json:"close"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Volume float64 `json:"volume"`

	RSI float64 `json:"rsi,omitempty"`
	EMA float64 `json:"ema,omitempty"`
}
