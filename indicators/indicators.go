// Package indicators computes technical signals over a bar series.
//
// Every indicator is a pure window function: Calculate(series, index) reads
// only bars at or before index and returns 0 while the warm-up window is
// still filling. Callers must treat 0 as "no reading", not a real value.
package indicators

import (
	"errors"
	"fmt"

	"github.com/damienborowski/AlphaFinity-v2/market"
)

// ErrUnknown reports an indicator name the enrichment pass cannot place.
var ErrUnknown = errors.New("unknown indicator")

const (
	NameEMA = "EMA"
	NameRSI = "RSI"
)

// Indicator computes a single scalar for a bar index.
type Indicator interface {
	// Name returns a stable identifier like "EMA" or "RSI".
	Name() string

	// Calculate returns the indicator value at index, or 0 during warm-up.
	Calculate(s *market.Series, index int) float64
}

// Enrich returns a new series where every bar carries the value of each
// requested indicator. The input series is not modified.
//
// An indicator with an unrecognized name is a configuration defect and
// aborts the run.
func Enrich(s *market.Series, inds ...Indicator) (*market.Series, error) {
	bars := make([]market.Bar, s.Len())
	copy(bars, s.Bars)

	for i := range bars {
		for _, ind := range inds {
			switch ind.Name() {
			case NameEMA:
				bars[i].EMA = ind.Calculate(s, i)
			case NameRSI:
				bars[i].RSI = ind.Calculate(s, i)
			default:
				return nil, fmt.Errorf("indicators: %q: %w", ind.Name(), ErrUnknown)
			}
		}
	}
	return &market.Series{Bars: bars}, nil
}
