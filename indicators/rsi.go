package indicators

import "github.com/damienborowski/AlphaFinity-v2/market"

// RSI is Wilder's relative strength index over closes.
type RSI struct {
	Period int
}

func NewRSI(period int) *RSI {
	return &RSI{Period: period}
}

func (r *RSI) Name() string { return NameRSI }

// Calculate splits the per-step close deltas of the trailing window into
// gains and losses, seeds simple averages over the first period deltas, then
// applies Wilder smoothing (avg = (avg*(p-1) + new) / p) through index.
// RS degenerates to 0 when the average loss is 0, which keeps RSI total.
// Returns 0 while index < period, and for non-positive periods.
func (r *RSI) Calculate(s *market.Series, index int) float64 {
	if r.Period <= 0 || index < r.Period || index >= s.Len() {
		return 0
	}

	gains := make([]float64, 0, r.Period)
	losses := make([]float64, 0, r.Period)
	for i := index - r.Period + 1; i <= index; i++ {
		delta := s.Bars[i].Close - s.Bars[i-1].Close
		if delta > 0 {
			gains = append(gains, delta)
			losses = append(losses, 0)
		} else {
			gains = append(gains, 0)
			losses = append(losses, -delta)
		}
	}

	avgGain := mean(gains[:r.Period])
	avgLoss := mean(losses[:r.Period])

	// Wilder smoothing over any deltas past the seed window.
	for i := r.Period; i < len(gains); i++ {
		avgGain = (avgGain*float64(r.Period-1) + gains[i]) / float64(r.Period)
		avgLoss = (avgLoss*float64(r.Period-1) + losses[i]) / float64(r.Period)
	}

	if avgLoss == 0 {
		return 0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
