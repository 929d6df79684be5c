package variants

import (
	"sync"

	"bookcatalog/internal/catalog"
)

// ControllerS is the single global RW-lock discipline: every read takes
// the lock shared, every mutation takes it exclusive. It is the simpler
// of the two variants and the baseline against which ControllerT's
// visible behavior is checked.
type ControllerS struct {
	mu  sync.RWMutex
	cat *catalog.Catalog
}

// NewControllerS returns a ControllerS backed by a fresh, empty catalog.
func NewControllerS() *ControllerS {
	return &ControllerS{cat: catalog.NewCatalog()}
}

var _ Controller = (*ControllerS)(nil)

func (c *ControllerS) AddBooks(books []catalog.NewBook) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cat.Insert(books)
}

func (c *ControllerS) AddCopies(deltas map[int32]int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cat.AddCopies(deltas)
}

func (c *ControllerS) SetEditorPicks(picks map[int32]bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cat.SetEditorPicks(picks)
}

func (c *ControllerS) RemoveBooks(isbns []int32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cat.Remove(isbns)
}

func (c *ControllerS) RemoveAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cat.RemoveAll()
}

func (c *ControllerS) Buy(lines map[int32]int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cat.Buy(lines)
}

func (c *ControllerS) Rate(ratings map[int32]int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cat.Rate(ratings)
}

func (c *ControllerS) ListAll() []catalog.StockRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cat.ListAll()
}

func (c *ControllerS) ListByISBN(isbns []int32) ([]catalog.StockRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cat.ListByISBN(isbns)
}

func (c *ControllerS) GetBooksProjection(isbns []int32) ([]catalog.StockRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cat.ListByISBN(isbns)
}

func (c *ControllerS) EditorPicks(k int) ([]catalog.StockRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cat.EditorPicks(k)
}

func (c *ControllerS) TopRated(k int) ([]catalog.StockRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cat.TopRated(k)
}

func (c *ControllerS) BooksInDemand() []catalog.StockRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cat.BooksInDemand()
}
