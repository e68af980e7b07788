package ledger

import (
	"errors"
	"fmt"

	"github.com/damienborowski/AlphaFinity-v2/internal/id"
	"github.com/damienborowski/AlphaFinity-v2/market"
)

// ErrAlreadyClosed reports a close against a transaction that is not in the
// open set. That can only happen through a caller defect, so runs abort on
// it instead of recovering.
var ErrAlreadyClosed = errors.New("transaction is already closed")

// Executor validates and applies orders against a ledger. It holds no state
// of its own; every method takes a ledger value and returns the next one.
type Executor struct{}

func NewExecutor() *Executor {
	return &Executor{}
}

// Buy resolves the order quantity, validates affordability and, on success,
// debits the account and records an open transaction.
//
// Rejection is not an error: a zero-cost order or one that exceeds current
// capital returns the ledger unchanged. The strategy simply moves on to the
// next bar.
func (e *Executor) Buy(l Ledger, o Order) Ledger {
	qty := resolveOpenQuantity(l.Account, o)
	totalCost := o.Price * float64(qty)

	if totalCost <= 0 || totalCost > l.Account.CurrentCapital {
		return l
	}

	tx := Transaction{
		ID:        id.New(),
		Time:      o.Time,
		Price:     o.Price,
		Quantity:  qty,
		Side:      SideOpen,
		Direction: DirectionLong,
		TotalCost: totalCost,
		Profit:    0,
	}

	acct := l.Account.withOpen(tx)
	acct.CurrentCapital -= totalCost

	next := l.withLog(tx)
	next.Account = acct
	return next
}

// Close realizes an open transaction at the order's price: credits the
// proceeds, removes the position from the open set, and records a closing
// transaction carrying the realized profit.
//
// Closing a transaction that is not open is a ledger-consistency defect and
// returns ErrAlreadyClosed; callers must abort the run.
func (e *Executor) Close(l Ledger, open Transaction, o Order) (Ledger, error) {
	if open.Side != SideOpen || !l.Account.holdsOpen(open.ID) {
		return Ledger{}, fmt.Errorf("ledger: close %s: %w", open.ID, ErrAlreadyClosed)
	}

	qty := resolveCloseQuantity(open, o)
	proceeds := o.Price * float64(qty)

	tx := Transaction{
		ID:        id.New(),
		Time:      o.Time,
		Price:     o.Price,
		Quantity:  qty,
		Side:      SideClose,
		Direction: DirectionLong,
		TotalCost: proceeds,
		Profit:    proceeds - open.TotalCost,
	}

	acct := l.Account.withoutOpen(open.ID)
	acct.CurrentCapital += proceeds

	next := l.withLog(tx)
	next.Account = acct
	return next, nil
}

// CloseAll closes the given open transactions left to right, threading the
// ledger through each close. Input order is preserved: later closes see the
// capital left by earlier ones.
func (e *Executor) CloseAll(l Ledger, opens []Transaction, o Order) (Ledger, error) {
	var err error
	for _, open := range opens {
		l, err = e.Close(l, open, o)
		if err != nil {
			return Ledger{}, err
		}
	}
	return l, nil
}

// TakeProfit force-closes any open position whose unrealized profit
// percentage at the bar's close exceeds thresholdPct.
func (e *Executor) TakeProfit(l Ledger, bar market.Bar, thresholdPct float64) (Ledger, error) {
	var err error
	for _, open := range l.Open() {
		if open.TotalCost == 0 {
			continue
		}
		pct := (bar.Close*float64(open.Quantity) - open.TotalCost) / open.TotalCost * 100
		if pct <= thresholdPct {
			continue
		}

		l, err = e.Close(l, open, Order{Time: bar.Date.Time, Price: bar.Close, Size: Max})
		if err != nil {
			return Ledger{}, err
		}
	}
	return l, nil
}
