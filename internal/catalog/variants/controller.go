// Package variants provides the two interchangeable concurrency
// disciplines of spec §4.4 — a single global RW-lock (ControllerS) and an
// intention lock plus sorted per-record RW-locks (ControllerT) — behind one
// Controller interface. Choosing between them is a configuration-time
// decision; BookStore and StockManager never know which backs them (spec
// §9: "no runtime polymorphism on the hot path is required").
package variants

import "bookcatalog/internal/catalog"

// Controller is the full operation set both disciplines implement.
type Controller interface {
	AddBooks(books []catalog.NewBook) error
	AddCopies(deltas map[int32]int) error
	SetEditorPicks(picks map[int32]bool) error
	RemoveBooks(isbns []int32) error
	RemoveAll()
	Buy(lines map[int32]int) error
	Rate(ratings map[int32]int) error

	ListAll() []catalog.StockRecord
	ListByISBN(isbns []int32) ([]catalog.StockRecord, error)
	GetBooksProjection(isbns []int32) ([]catalog.StockRecord, error)
	EditorPicks(k int) ([]catalog.StockRecord, error)
	TopRated(k int) ([]catalog.StockRecord, error)
	BooksInDemand() []catalog.StockRecord
}
