package indicators

import "github.com/damienborowski/AlphaFinity-v2/market"

// EMA is the exponential moving average over closes with the standard
// smoothing factor k = 2/(period+1).
type EMA struct {
	Period int
}

func NewEMA(period int) *EMA {
	return &EMA{Period: period}
}

func (e *EMA) Name() string { return NameEMA }

// Calculate seeds with the close at index-period+1 and folds the recurrence
// ema = (close-ema)*k + ema forward through index. Returns 0 while
// index < period, and for non-positive periods.
func (e *EMA) Calculate(s *market.Series, index int) float64 {
	if e.Period <= 0 || index < e.Period || index >= s.Len() {
		return 0
	}

	k := 2.0 / float64(e.Period+1)
	ema := s.Bars[index-e.Period+1].Close

	for i := index - e.Period + 2; i <= index; i++ {
		ema = (s.Bars[i].Close-ema)*k + ema
	}
	return ema
}
