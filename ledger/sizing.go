package ledger

import (
	"math"
	"time"
)

// SizingMode selects how an order's quantity is resolved.
type SizingMode int

const (
	// SizeExplicit uses the quantity given on the order.
	SizeExplicit SizingMode = iota
	// SizeMax buys as many units as current capital allows, or closes the
	// matched open position in full.
	SizeMax
	// SizeMin opens a single unit when affordable, closes a single unit.
	SizeMin
)

// Sizing is the tagged quantity variant carried by an order.
type Sizing struct {
	Mode     SizingMode
	Quantity int
}

func Explicit(quantity int) Sizing {
	return Sizing{Mode: SizeExplicit, Quantity: quantity}
}

var (
	Max = Sizing{Mode: SizeMax}
	Min = Sizing{Mode: SizeMin}
)

// Order is a raw trade request before quantity resolution.
type Order struct {
	Time  time.Time
	Price float64
	Size  Sizing
}

// resolveOpenQuantity turns an order's sizing into a concrete unit count
// for an open, relative to available capital.
func resolveOpenQuantity(a Account, o Order) int {
	switch o.Size.Mode {
	case SizeMax:
		if o.Price <= 0 {
			return 0
		}
		return int(math.Floor(a.CurrentCapital / o.Price))
	case SizeMin:
		if a.CurrentCapital > o.Price {
			return 1
		}
		return 0
	default:
		return o.Size.Quantity
	}
}

// resolveCloseQuantity sizes a close against the matched open transaction.
// Max is capped at the open's quantity; anything larger would over-close
// the position.
func resolveCloseQuantity(open Transaction, o Order) int {
	switch o.Size.Mode {
	case SizeMax:
		return open.Quantity
	case SizeMin:
		return 1
	default:
		return o.Size.Quantity
	}
}
