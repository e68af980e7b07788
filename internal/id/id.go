// Package id mints the identifiers that key ledger transactions and journal
// run records. ULIDs are time-sortable, so the SQLite indexes and the
// transaction log read in creation order without a separate sequence column.
package id

import "github.com/oklog/ulid/v2"

// New returns a fresh ULID string. The shared entropy source is monotonic
// within a millisecond and safe for concurrent use.
func New() string {
	return ulid.Make().String()
}
