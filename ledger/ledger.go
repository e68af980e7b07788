package ledger

// Ledger is the financial state threaded through a run: the account plus
// the append-only transaction log (opens and closes, in execution order).
type Ledger struct {
	Account Account       `json:"account"`
	Log     []Transaction `json:"log"`
}

// New returns a ledger for a fresh run.
func New(startingCapital float64) Ledger {
	return Ledger{Account: NewAccount(startingCapital)}
}

// Open returns the still-open transactions, in open order.
func (l Ledger) Open() []Transaction {
	out := make([]Transaction, len(l.Account.OpenPositions))
	copy(out, l.Account.OpenPositions)
	return out
}

// Closed returns every closing transaction recorded so far, in close order.
func (l Ledger) Closed() []Transaction {
	var out []Transaction
	for _, tx := range l.Log {
		if tx.Side == SideClose {
			out = append(out, tx)
		}
	}
	return out
}

func (l Ledger) withLog(tx Transaction) Ledger {
	log := make([]Transaction, len(l.Log), len(l.Log)+1)
	copy(log, l.Log)
	l.Log = append(log, tx)
	return l
}
