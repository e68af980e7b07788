// Package ledger holds the simulated account state and the trade executor
// that mutates it. All mutation is by replacement: operations take a Ledger
// value and return a new one, so no step of a run can alias another's state.
package ledger

import "time"

// Side distinguishes the two halves of a position's lifecycle. A position
// goes none -> open -> closed; closed is terminal.
type Side string

const (
	SideOpen  Side = "OPEN"
	SideClose Side = "CLOSE"
)

// Direction of the position. Short selling is not supported.
type Direction string

const DirectionLong Direction = "LONG"

// Transaction is one executed order. Immutable once recorded: closing a
// position appends a new closing transaction rather than touching the
// original.
type Transaction struct {
	ID        string    `json:"id"`
	Time      time.Time `json:"time"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	Side      Side      `json:"side"`
	Direction Direction `json:"direction"`

	// TotalCost is price*quantity: the debit for an open, the proceeds for
	// a close.
	TotalCost float64 `json:"totalCost"`

	// Profit is 0 for opens; for closes it is proceeds minus the matched
	// open's cost basis.
	Profit float64 `json:"profit"`
}
