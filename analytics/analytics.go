// Package analytics reduces a completed run's transaction log into summary
// statistics. Every reduction is total: zero-length inputs and zero
// denominators degrade to 0 instead of faulting, so a report can always be
// built.
package analytics

import (
	"math"
	"time"

	"github.com/damienborowski/AlphaFinity-v2/ledger"
	"github.com/damienborowski/AlphaFinity-v2/market"
)

const (
	// RiskFreeRate feeds the Sharpe computation (1% annual).
	RiskFreeRate = 0.01

	daysPerYear = 365.25
)

// Report is the end-of-run summary. Built exactly once, after the replay
// driver has force-closed every open position.
type Report struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`

	StartingCapital float64 `json:"startingCapital"`
	EndingCapital   float64 `json:"endingCapital"`

	TotalReturn           float64 `json:"totalReturn"`
	TotalReturnMultiplier float64 `json:"totalReturnMultiplier"`
	TotalReturnPct        float64 `json:"totalReturnPct"`

	MaxDrawdown       float64 `json:"maxDrawdown"`
	WinRate           float64 `json:"winRate"`
	AverageProfit     float64 `json:"averageProfit"`
	AverageLoss       float64 `json:"averageLoss"`
	AverageReturn     float64 `json:"averageReturn"`
	SharpeRatio       float64 `json:"sharpeRatio"`
	StandardDeviation float64 `json:"standardDeviation"`
	Alpha             float64 `json:"alpha"`

	TotalTrades        int `json:"totalTrades"`
	TotalOpeningTrades int `json:"totalOpeningTrades"`
	TotalClosingTrades int `json:"totalClosingTrades"`

	Transactions []ledger.Transaction `json:"transactions"`
}

// Build reduces the terminal ledger into a report. benchmark may be nil, in
// which case alpha is the strategy CAGR alone.
func Build(l ledger.Ledger, start, end time.Time, benchmark *market.Series) Report {
	closed := l.Closed()
	curve := EquityCurve(closed)
	returns := curveReturns(curve)

	return Report{
		StartDate:       start,
		EndDate:         end,
		StartingCapital: l.Account.StartingCapital,
		EndingCapital:   l.Account.CurrentCapital,

		TotalReturn:           TotalReturn(l.Account),
		TotalReturnMultiplier: TotalReturnMultiplier(l.Account),
		TotalReturnPct:        TotalReturnMultiplier(l.Account) * 100,

		MaxDrawdown:       MaxDrawdown(curve),
		WinRate:           WinRate(closed),
		AverageProfit:     AverageProfit(closed),
		AverageLoss:       AverageLoss(closed),
		AverageReturn:     AverageReturn(closed),
		SharpeRatio:       SharpeRatio(returns),
		StandardDeviation: StandardDeviation(returns),
		Alpha:             Alpha(l.Account, start, end, benchmark),

		TotalTrades:        len(l.Log),
		TotalOpeningTrades: countSide(l.Log, ledger.SideOpen),
		TotalClosingTrades: len(closed),

		Transactions: l.Log,
	}
}

func TotalReturn(a ledger.Account) float64 {
	return a.CurrentCapital - a.StartingCapital
}

func TotalReturnMultiplier(a ledger.Account) float64 {
	if a.StartingCapital == 0 {
		return 0
	}
	return (a.CurrentCapital - a.StartingCapital) / a.StartingCapital
}

// EquityCurve is the cumulative realized profit after each closing trade,
// in close order.
func EquityCurve(closed []ledger.Transaction) []float64 {
	curve := make([]float64, 0, len(closed))
	sum := 0.0
	for _, tx := range closed {
		sum += tx.Profit
		curve = append(curve, sum)
	}
	return curve
}

// MaxDrawdown is the largest peak-to-trough decline of the equity curve,
// as a fraction of the running peak.
func MaxDrawdown(curve []float64) float64 {
	maxDD := 0.0
	peak := math.Inf(-1)
	for _, v := range curve {
		if v > peak {
			peak = v
		}
		if peak == 0 {
			continue
		}
		if dd := (peak - v) / peak; dd > maxDD {
			maxDD = dd
		}
	}
	return maxDD
}

// WinRate is the percentage of closing trades with positive profit.
func WinRate(closed []ledger.Transaction) float64 {
	if len(closed) == 0 {
		return 0
	}
	wins := 0
	for _, tx := range closed {
		if tx.Profit > 0 {
			wins++
		}
	}
	return float64(wins) / float64(len(closed)) * 100
}

// AverageProfit is the mean profit over winning trades (0 if none).
func AverageProfit(closed []ledger.Transaction) float64 {
	sum, n := 0.0, 0
	for _, tx := range closed {
		if tx.Profit > 0 {
			sum += tx.Profit
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// AverageLoss is the mean profit over losing trades (0 if none). The result
// is negative when losses exist.
func AverageLoss(closed []ledger.Transaction) float64 {
	sum, n := 0.0, 0
	for _, tx := range closed {
		if tx.Profit < 0 {
			sum += tx.Profit
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// AverageReturn is the mean profit over all closed trades.
func AverageReturn(closed []ledger.Transaction) float64 {
	if len(closed) == 0 {
		return 0
	}
	sum := 0.0
	for _, tx := range closed {
		sum += tx.Profit
	}
	return sum / float64(len(closed))
}

// CAGR is the compounded annual growth rate between two values over a year
// count. Degenerate inputs (non-positive years or begin value) yield 0.
func CAGR(beginValue, endValue, years float64) float64 {
	if years <= 0 || beginValue <= 0 {
		return 0
	}
	return math.Pow(endValue/beginValue, 1.0/years) - 1
}

// Alpha is the strategy's CAGR minus the benchmark's close-to-close CAGR
// over its own date span.
func Alpha(a ledger.Account, start, end time.Time, benchmark *market.Series) float64 {
	years := end.Sub(start).Hours() / 24 / daysPerYear
	strategyCAGR := CAGR(a.StartingCapital, a.CurrentCapital, years)
	return strategyCAGR - benchmarkCAGR(benchmark)
}

func benchmarkCAGR(benchmark *market.Series) float64 {
	if benchmark.Len() == 0 {
		return 0
	}
	first := benchmark.Bars[0]
	last := benchmark.Bars[benchmark.Len()-1]
	years := last.Date.Sub(first.Date.Time).Hours() / 24 / daysPerYear
	return CAGR(first.Close, last.Close, years)
}

// SharpeRatio is the mean equity-curve step return in excess of the
// risk-free rate, over the standard deviation of those returns.
//
// The step-return definition is shaky when the curve starts negative; see
// DESIGN.md before leaning on this number.
func SharpeRatio(returns []float64) float64 {
	sd := StandardDeviation(returns)
	if sd == 0 {
		return 0
	}
	return (meanOf(returns) - RiskFreeRate) / sd
}

// StandardDeviation is the population standard deviation.
func StandardDeviation(returns []float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	m := meanOf(returns)
	variance := 0.0
	for _, r := range returns {
		variance += (r - m) * (r - m)
	}
	return math.Sqrt(variance / float64(len(returns)))
}

// curveReturns converts the equity curve into per-step relative returns.
func curveReturns(curve []float64) []float64 {
	var returns []float64
	for i := 1; i < len(curve); i++ {
		if curve[i-1] == 0 {
			returns = append(returns, 0)
			continue
		}
		returns = append(returns, curve[i]/curve[i-1]-1)
	}
	return returns
}

func meanOf(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func countSide(log []ledger.Transaction, side ledger.Side) int {
	n := 0
	for _, tx := range log {
		if tx.Side == side {
			n++
		}
	}
	return n
}
