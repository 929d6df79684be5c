package variants

import (
	"sync"

	"bookcatalog/internal/catalog"
	"bookcatalog/internal/catalog/lockset"
)

// ControllerT is the intention + per-record RW-lock discipline of spec
// §4.4: structural changes hold the global lock exclusive; everything else
// holds it shared and additionally acquires per-record locks in
// ascending-ISBN order (deadlock-free per §4.3). Whole-catalog reads never
// hold more than one per-record lock at a time — they rely on the
// global-shared lock excluding structural changes and take each record's
// snapshot under a momentary shared lock on that record alone, satisfying
// invariant 4 without full point-in-time consistency.
type ControllerT struct {
	mu    sync.RWMutex // the intention lock
	locks *lockset.Table
	cat   *catalog.Catalog
}

// NewControllerT returns a ControllerT backed by a fresh, empty catalog.
func NewControllerT() *ControllerT {
	return &ControllerT{
		locks: lockset.NewTable(),
		cat:   catalog.NewCatalog(),
	}
}

var _ Controller = (*ControllerT)(nil)

func keysInt(m map[int32]int) []int32 {
	out := make([]int32, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func keysBool(m map[int32]bool) []int32 {
	out := make([]int32, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// --- Structural changes: global exclusive, no per-record locks ---

func (c *ControllerT) AddBooks(books []catalog.NewBook) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.cat.Insert(books); err != nil {
		return err
	}
	for _, b := range books {
		c.locks.Ensure(b.ISBN)
	}
	return nil
}

func (c *ControllerT) RemoveBooks(isbns []int32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.cat.Remove(isbns); err != nil {
		return err
	}
	for _, isbn := range isbns {
		c.locks.Drop(isbn)
	}
	return nil
}

func (c *ControllerT) RemoveAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cat.RemoveAll()
	c.locks.DropAll()
}

// --- Mutations of existing ISBNs: global shared, per-record exclusive sorted ---

func (c *ControllerT) AddCopies(deltas map[int32]int) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	release := c.locks.AcquireExclusive(keysInt(deltas))
	defer release()
	return c.cat.AddCopies(deltas)
}

func (c *ControllerT) SetEditorPicks(picks map[int32]bool) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	release := c.locks.AcquireExclusive(keysBool(picks))
	defer release()
	return c.cat.SetEditorPicks(picks)
}

func (c *ControllerT) Buy(lines map[int32]int) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	release := c.locks.AcquireExclusive(keysInt(lines))
	defer release()
	return c.cat.Buy(lines)
}

func (c *ControllerT) Rate(ratings map[int32]int) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	release := c.locks.AcquireExclusive(keysInt(ratings))
	defer release()
	return c.cat.Rate(ratings)
}

// --- Reads of specific ISBNs: global shared, per-record shared sorted ---

func (c *ControllerT) ListByISBN(isbns []int32) ([]catalog.StockRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	release := c.locks.AcquireShared(isbns)
	defer release()
	return c.cat.ListByISBN(isbns)
}

func (c *ControllerT) GetBooksProjection(isbns []int32) ([]catalog.StockRecord, error) {
	return c.ListByISBN(isbns)
}

// --- Whole-catalog reads: global shared, per-record shared taken one record at a time ---

func (c *ControllerT) snapshotAll() []catalog.StockRecord {
	isbns := c.cat.ISBNs()
	out := make([]catalog.StockRecord, 0, len(isbns))
	for _, isbn := range isbns {
		release := c.locks.AcquireShared([]int32{isbn})
		if snap, ok := c.cat.SnapshotOne(isbn); ok {
			out = append(out, snap)
		}
		release()
	}
	return out
}

func (c *ControllerT) ListAll() []catalog.StockRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotAll()
}

func (c *ControllerT) EditorPicks(k int) ([]catalog.StockRecord, error) {
	if err := catalog.ValidateCount(k); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	picks := catalog.FilterEditorPicks(c.snapshotAll())
	return catalog.SampleEditorPicks(picks, k), nil
}

func (c *ControllerT) TopRated(k int) ([]catalog.StockRecord, error) {
	if err := catalog.ValidateCount(k); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	rated := catalog.SortTopRated(catalog.FilterRated(c.snapshotAll()))
	return catalog.TruncateTopRated(rated, k), nil
}

func (c *ControllerT) BooksInDemand() []catalog.StockRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return catalog.FilterInDemand(c.snapshotAll())
}
