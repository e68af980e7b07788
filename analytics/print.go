package analytics

import (
	"fmt"
	"io"
	"time"
)

// WriteReport renders a run summary for terminal consumption.
func WriteReport(w io.Writer, strategy string, r Report) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Backtest Result")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Strategy:      %s\n", strategy)
	fmt.Fprintf(w, "Start:         %s\n", r.StartDate.Format(time.DateOnly))
	fmt.Fprintf(w, "End:           %s\n", r.EndDate.Format(time.DateOnly))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Trade Statistics")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Trades:        %d (%d opens, %d closes)\n", r.TotalTrades, r.TotalOpeningTrades, r.TotalClosingTrades)
	fmt.Fprintf(w, "Win Rate:      %.2f%%\n", r.WinRate)
	fmt.Fprintf(w, "Avg Win:       %.2f\n", r.AverageProfit)
	fmt.Fprintf(w, "Avg Loss:      %.2f\n", r.AverageLoss)
	fmt.Fprintf(w, "Avg Return:    %.2f\n", r.AverageReturn)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Account Performance")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Start Capital: %.2f\n", r.StartingCapital)
	fmt.Fprintf(w, "End Capital:   %.2f\n", r.EndingCapital)
	fmt.Fprintf(w, "Net Return:    %.2f (%.2f%%)\n", r.TotalReturn, r.TotalReturnPct)
	fmt.Fprintf(w, "Max Drawdown:  %.2f%%\n", r.MaxDrawdown*100)
	fmt.Fprintf(w, "Sharpe:        %.4f\n", r.SharpeRatio)
	fmt.Fprintf(w, "Alpha:         %.4f\n", r.Alpha)

	fmt.Fprintln(w)
}
