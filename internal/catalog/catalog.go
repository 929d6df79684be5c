package catalog

import (
	"math/rand"
	"sort"
)

// Catalog is the ISBN -> StockRecord map plus the structural and
// algorithmic operations of spec §4.2/§4.3. It performs no locking of its
// own: every method here assumes the caller already holds whatever read or
// write discipline the active Controller variant requires for the ISBNs
// touched by the call. This mirrors the spec's separation between the
// Catalog (structural changes, §4.2) and the Concurrency Controller
// (locking envelope, §4.4) — Catalog is the part both variants share.
type Catalog struct {
	books map[int32]*StockRecord
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{books: make(map[int32]*StockRecord)}
}

// Exists reports whether isbn currently has a record. Caller must hold at
// least a read discipline covering isbn.
func (c *Catalog) Exists(isbn int32) bool {
	_, ok := c.books[isbn]
	return ok
}

// ISBNs returns every ISBN currently in the catalog, in no particular
// order. Caller must hold at least a whole-catalog read discipline.
func (c *Catalog) ISBNs() []int32 {
	out := make([]int32, 0, len(c.books))
	for isbn := range c.books {
		out = append(out, isbn)
	}
	return out
}

// Insert validates every candidate (well-formed, non-duplicate) and only
// then installs all of them. Either every book is installed or none are.
func (c *Catalog) Insert(books []NewBook) error {
	if books == nil {
		return nullInput("books")
	}
	for _, b := range books {
		if err := validateNewBook(b); err != nil {
			return err
		}
		if c.Exists(b.ISBN) {
			return duplicate(b.ISBN)
		}
	}
	// Guard against duplicate ISBNs within the same request (not permitted
	// per spec §4.3 — the input is effectively a set keyed by ISBN).
	seen := make(map[int32]struct{}, len(books))
	for _, b := range books {
		if _, dup := seen[b.ISBN]; dup {
			return duplicate(b.ISBN)
		}
		seen[b.ISBN] = struct{}{}
	}
	for _, b := range books {
		c.books[b.ISBN] = &StockRecord{
			Book: Book{
				ISBN:   b.ISBN,
				Title:  b.Title,
				Author: b.Author,
				Price:  b.Price,
			},
			NumCopies: b.Copies,
		}
	}
	return nil
}

// Remove validates every ISBN is present, then drops all of them.
// All-or-nothing.
func (c *Catalog) Remove(isbns []int32) error {
	if isbns == nil {
		return nullInput("isbns")
	}
	for _, isbn := range isbns {
		if err := validateISBN(isbn); err != nil {
			return err
		}
		if !c.Exists(isbn) {
			return notInStock(isbn)
		}
	}
	for _, isbn := range isbns {
		delete(c.books, isbn)
	}
	return nil
}

// RemoveAll drops every record in the catalog.
func (c *Catalog) RemoveAll() {
	c.books = make(map[int32]*StockRecord)
}

// AddCopies validates every ISBN is in stock and every delta is
// non-negative, then increments NumCopies for each.
func (c *Catalog) AddCopies(deltas map[int32]int) error {
	if deltas == nil {
		return nullInput("deltas")
	}
	for isbn, n := range deltas {
		if err := validateISBN(isbn); err != nil {
			return err
		}
		if err := validateCopyCount(n); err != nil {
			return invalidArgumentf("copies", "isbn %d: %v", isbn, err)
		}
		if !c.Exists(isbn) {
			return notInStock(isbn)
		}
	}
	for isbn, n := range deltas {
		c.books[isbn].addCopies(n)
	}
	return nil
}

// SetEditorPicks validates every ISBN is in stock, then sets the flag.
func (c *Catalog) SetEditorPicks(picks map[int32]bool) error {
	if picks == nil {
		return nullInput("picks")
	}
	for isbn := range picks {
		if err := validateISBN(isbn); err != nil {
			return err
		}
		if !c.Exists(isbn) {
			return notInStock(isbn)
		}
	}
	for isbn, pick := range picks {
		c.books[isbn].EditorPick = pick
	}
	return nil
}

// Buy implements the transactional purchase of spec §4.3. lines maps ISBN
// to the requested copy count. Either every record's NumCopies is
// decremented by the requested amount, or none are — and any shortfall is
// recorded as sale-miss telemetry even though the purchase aborts.
func (c *Catalog) Buy(lines map[int32]int) error {
	if lines == nil {
		return nullInput("lines")
	}
	for isbn, n := range lines {
		if err := validateISBN(isbn); err != nil {
			return err
		}
		if err := validateCopyCount(n); err != nil {
			return invalidArgumentf("copies", "isbn %d: %v", isbn, err)
		}
		if !c.Exists(isbn) {
			return notInStock(isbn)
		}
	}

	shortfalls := make(map[int32]int, len(lines))
	for isbn, n := range lines {
		if s := c.books[isbn].shortfall(n); s > 0 {
			shortfalls[isbn] = s
		}
	}

	if len(shortfalls) > 0 {
		for isbn, s := range shortfalls {
			c.books[isbn].addSaleMiss(s)
		}
		return outOfStock(shortfalls)
	}

	for isbn, n := range lines {
		c.books[isbn].decrement(n)
	}
	return nil
}

// Rate validates the ISBN is in stock and the rating is in [0,5], then
// folds it into the record's running total.
func (c *Catalog) Rate(ratings map[int32]int) error {
	if ratings == nil {
		return nullInput("ratings")
	}
	for isbn, r := range ratings {
		if err := validateISBN(isbn); err != nil {
			return err
		}
		if err := validateRating(r); err != nil {
			return invalidArgumentf("rating", "isbn %d: %v", isbn, err)
		}
		if !c.Exists(isbn) {
			return notInStock(isbn)
		}
	}
	for isbn, r := range ratings {
		c.books[isbn].rate(r)
	}
	return nil
}

// ListAll returns a snapshot of every record.
func (c *Catalog) ListAll() []StockRecord {
	out := make([]StockRecord, 0, len(c.books))
	for _, r := range c.books {
		out = append(out, r.Snapshot())
	}
	return out
}

// ListByISBN validates every ISBN is in stock, then returns their
// snapshots.
func (c *Catalog) ListByISBN(isbns []int32) ([]StockRecord, error) {
	if isbns == nil {
		return nil, nullInput("isbns")
	}
	for _, isbn := range isbns {
		if err := validateISBN(isbn); err != nil {
			return nil, err
		}
		if !c.Exists(isbn) {
			return nil, notInStock(isbn)
		}
	}
	out := make([]StockRecord, 0, len(isbns))
	for _, isbn := range isbns {
		out = append(out, c.books[isbn].Snapshot())
	}
	return out, nil
}

// SnapshotOne returns a value copy of the single record for isbn, if any.
// Used by variant T's whole-catalog reads to take per-record snapshots one
// at a time under a momentary per-record lock, rather than relying on the
// caller's coarser envelope for field-level consistency.
func (c *Catalog) SnapshotOne(isbn int32) (StockRecord, bool) {
	r, ok := c.books[isbn]
	if !ok {
		return StockRecord{}, false
	}
	return r.Snapshot(), true
}

// EditorPicks collects the set of editor-picked records and, if it is
// larger than k, draws k distinct entries uniformly at random. The result
// is a sample, not an ordering. rand's top-level functions are backed by a
// lock-guarded global source, so this is safe to call from many concurrent
// readers.
func (c *Catalog) EditorPicks(k int) ([]StockRecord, error) {
	if err := validateCount(k); err != nil {
		return nil, invalidArgumentf("k", "%v", err)
	}
	all := make([]StockRecord, 0, len(c.books))
	for _, r := range c.books {
		all = append(all, r.Snapshot())
	}
	return SampleEditorPicks(FilterEditorPicks(all), k), nil
}

// TopRated filters to rated records, sorts by (-averageRating,
// -numTimesRated, +ISBN) and returns the first min(k, count).
func (c *Catalog) TopRated(k int) ([]StockRecord, error) {
	if err := validateCount(k); err != nil {
		return nil, invalidArgumentf("k", "%v", err)
	}
	all := make([]StockRecord, 0, len(c.books))
	for _, r := range c.books {
		all = append(all, r.Snapshot())
	}
	return TruncateTopRated(SortTopRated(FilterRated(all)), k), nil
}

// BooksInDemand returns every record with at least one recorded sale miss.
func (c *Catalog) BooksInDemand() []StockRecord {
	all := make([]StockRecord, 0, len(c.books))
	for _, r := range c.books {
		all = append(all, r.Snapshot())
	}
	return FilterInDemand(all)
}

// ValidateCount exposes the k>=0 check of EditorPicks/TopRated for callers
// (variant T) that assemble their own snapshot slice instead of delegating
// the whole operation to Catalog.
func ValidateCount(k int) error {
	if err := validateCount(k); err != nil {
		return invalidArgumentf("k", "%v", err)
	}
	return nil
}

// FilterEditorPicks returns the subset of records with EditorPick set.
func FilterEditorPicks(records []StockRecord) []StockRecord {
	out := make([]StockRecord, 0, len(records))
	for _, r := range records {
		if r.EditorPick {
			out = append(out, r)
		}
	}
	return out
}

// SampleEditorPicks returns all of picks if len(picks) <= k, otherwise k
// distinct entries drawn uniformly at random.
func SampleEditorPicks(picks []StockRecord, k int) []StockRecord {
	if len(picks) <= k {
		return picks
	}
	idx := rand.Perm(len(picks))[:k]
	out := make([]StockRecord, 0, k)
	for _, i := range idx {
		out = append(out, picks[i])
	}
	return out
}

// FilterRated returns the subset of records that have been rated at least
// once.
func FilterRated(records []StockRecord) []StockRecord {
	out := make([]StockRecord, 0, len(records))
	for _, r := range records {
		if r.NumTimesRated > 0 {
			out = append(out, r)
		}
	}
	return out
}

// SortTopRated sorts rated records by (-averageRating, -numTimesRated,
// +ISBN) in place and returns the slice.
func SortTopRated(rated []StockRecord) []StockRecord {
	sort.Slice(rated, func(i, j int) bool {
		ai, aj := rated[i].AverageRating(), rated[j].AverageRating()
		if ai != aj {
			return ai > aj
		}
		if rated[i].NumTimesRated != rated[j].NumTimesRated {
			return rated[i].NumTimesRated > rated[j].NumTimesRated
		}
		return rated[i].ISBN < rated[j].ISBN
	})
	return rated
}

// TruncateTopRated returns the first min(k, len(rated)) records.
func TruncateTopRated(rated []StockRecord, k int) []StockRecord {
	if k > len(rated) {
		k = len(rated)
	}
	return rated[:k]
}

// FilterInDemand returns the subset of records with at least one recorded
// sale miss.
func FilterInDemand(records []StockRecord) []StockRecord {
	out := make([]StockRecord, 0, len(records))
	for _, r := range records {
		if r.NumSaleMisses > 0 {
			out = append(out, r)
		}
	}
	return out
}
