// Package catalog implements the in-memory, concurrency-safe book catalog:
// the ISBN-keyed record store, its validation rules, and the transactional
// operations (buy, rate, restock, curate) that both concurrency disciplines
// in package variants are built from.
package catalog

import "github.com/shopspring/decimal"

// UnratedAverage is the sentinel averageRating reported for a record that
// has never been rated.
const UnratedAverage = -1.0

// Book is the immutable identity snapshot of a title: ISBN, title, author
// and price never change once a record is installed in the catalog.
type Book struct {
	ISBN   int32
	Title  string
	Author string
	Price  decimal.Decimal
}

// StockRecord is the catalog entry for one ISBN: an immutable Book plus the
// mutable fields tracked while the book is in stock. All mutating methods
// below assume the caller already holds whatever write discipline the
// active Controller variant requires for this record — StockRecord itself
// performs no locking.
type StockRecord struct {
	Book
	NumCopies     int
	NumSaleMisses int
	NumTimesRated int
	TotalRating   int
	EditorPick    bool
}

// AverageRating returns the derived average rating, or UnratedAverage when
// the record has never been rated. It is never stored; always computed.
func (r *StockRecord) AverageRating() float64 {
	if r.NumTimesRated == 0 {
		return UnratedAverage
	}
	return float64(r.TotalRating) / float64(r.NumTimesRated)
}

// shortfall reports how many copies would be missing if n were reserved
// right now, without mutating the record.
func (r *StockRecord) shortfall(n int) int {
	if r.NumCopies >= n {
		return 0
	}
	return n - r.NumCopies
}

// decrement applies a committed purchase of n copies. Callers must only
// call this after confirming shortfall(n) == 0 for every record in the
// same transaction.
func (r *StockRecord) decrement(n int) {
	r.NumCopies -= n
}

// addSaleMiss records sale-miss telemetry for a shortfall of n copies.
func (r *StockRecord) addSaleMiss(n int) {
	r.NumSaleMisses += n
}

// addCopies increases on-hand stock by n (n >= 0, validated upstream).
func (r *StockRecord) addCopies(n int) {
	r.NumCopies += n
}

// rate folds a single 0-5 rating into the running total.
func (r *StockRecord) rate(rating int) {
	r.NumTimesRated++
	r.TotalRating += rating
}

// Snapshot returns a value copy of the record, safe to hand to a caller
// outside the controller's envelope.
func (r *StockRecord) Snapshot() StockRecord {
	return *r
}
