// Package bookstore implements the customer-facing contract of spec §4.5:
// browsing, purchasing, and rating. BookStore is a stateless wrapper over a
// Controller — it owns no state of its own and every method is a thin
// validate-and-delegate call into the controller's envelope.
package bookstore

import (
	"bookcatalog/internal/catalog"
	"bookcatalog/internal/catalog/variants"
)

// BookStore is the customer-facing façade.
type BookStore struct {
	controller variants.Controller
}

// New wraps controller in a BookStore façade.
func New(controller variants.Controller) *BookStore {
	return &BookStore{controller: controller}
}

// BuyBooks purchases the requested copy count for every ISBN in order.
// Either every line is fulfilled, or none are and the shortfall is
// recorded as sale-miss telemetry (spec §4.3).
func (s *BookStore) BuyBooks(order map[int32]int) error {
	return s.controller.Buy(order)
}

// GetBooks returns a projection of the requested ISBNs.
func (s *BookStore) GetBooks(isbns []int32) ([]catalog.StockRecord, error) {
	return s.controller.GetBooksProjection(isbns)
}

// GetEditorPicks samples up to k editor-picked titles.
func (s *BookStore) GetEditorPicks(k int) ([]catalog.StockRecord, error) {
	return s.controller.EditorPicks(k)
}

// GetTopRatedBooks returns the top k rated titles, ordered by descending
// average rating, then descending rating count, then ascending ISBN.
func (s *BookStore) GetTopRatedBooks(k int) ([]catalog.StockRecord, error) {
	return s.controller.TopRated(k)
}

// RateBooks folds one rating per ISBN into the running totals.
func (s *BookStore) RateBooks(ratings map[int32]int) error {
	return s.controller.Rate(ratings)
}
