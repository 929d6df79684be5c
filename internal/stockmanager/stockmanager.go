// Package stockmanager implements the operator-facing contract of spec
// §4.5: adding titles, adding copies, curation, removal, and inventory
// inspection. Like BookStore, StockManager is a stateless wrapper over a
// Controller.
package stockmanager

import (
	"bookcatalog/internal/catalog"
	"bookcatalog/internal/catalog/variants"
)

// StockManager is the operator-facing façade.
type StockManager struct {
	controller variants.Controller
}

// New wraps controller in a StockManager façade.
func New(controller variants.Controller) *StockManager {
	return &StockManager{controller: controller}
}

// AddBooks installs new titles with their initial stock. All-or-nothing.
func (m *StockManager) AddBooks(books []catalog.NewBook) error {
	return m.controller.AddBooks(books)
}

// AddCopies increments on-hand stock for each ISBN in deltas.
func (m *StockManager) AddCopies(deltas map[int32]int) error {
	return m.controller.AddCopies(deltas)
}

// GetBooks returns a full snapshot of the catalog.
func (m *StockManager) GetBooks() []catalog.StockRecord {
	return m.controller.ListAll()
}

// GetBooksByISBN returns the records for the requested ISBNs.
func (m *StockManager) GetBooksByISBN(isbns []int32) ([]catalog.StockRecord, error) {
	return m.controller.ListByISBN(isbns)
}

// UpdateEditorPicks sets the editor-pick flag for each ISBN in picks.
func (m *StockManager) UpdateEditorPicks(picks map[int32]bool) error {
	return m.controller.SetEditorPicks(picks)
}

// RemoveBooks drops the given ISBNs from the catalog. All-or-nothing.
func (m *StockManager) RemoveBooks(isbns []int32) error {
	return m.controller.RemoveBooks(isbns)
}

// RemoveAllBooks empties the catalog.
func (m *StockManager) RemoveAllBooks() {
	m.controller.RemoveAll()
}

// GetBooksInDemand returns every record with at least one sale miss.
func (m *StockManager) GetBooksInDemand() []catalog.StockRecord {
	return m.controller.BooksInDemand()
}
