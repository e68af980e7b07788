package ledger

// Account is the simulated brokerage state: cash plus open positions.
//
// Invariant: after any successful operation,
//
//	CurrentCapital + sum(open cost basis) ==
//	StartingCapital + sum(realized profit of closed trades)
type Account struct {
	StartingCapital float64       `json:"startingCapital"`
	CurrentCapital  float64       `json:"currentCapital"`
	OpenPositions   []Transaction `json:"openPositions"`
}

// NewAccount returns an account with no open positions and the full
// starting capital available.
func NewAccount(startingCapital float64) Account {
	return Account{
		StartingCapital: startingCapital,
		CurrentCapital:  startingCapital,
	}
}

func (a Account) withOpen(tx Transaction) Account {
	open := make([]Transaction, len(a.OpenPositions), len(a.OpenPositions)+1)
	copy(open, a.OpenPositions)
	a.OpenPositions = append(open, tx)
	return a
}

func (a Account) withoutOpen(id string) Account {
	open := make([]Transaction, 0, len(a.OpenPositions))
	for _, tx := range a.OpenPositions {
		if tx.ID != id {
			open = append(open, tx)
		}
	}
	a.OpenPositions = open
	return a
}

func (a Account) holdsOpen(id string) bool {
	for _, tx := range a.OpenPositions {
		if tx.ID == id {
			return true
		}
	}
	return false
}
