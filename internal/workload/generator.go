package workload

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"bookcatalog/internal/catalog"
)

// candidateBooks is the sample generator collaborator of spec §4.6's "rare
// stock interaction": it manufactures n syntactically valid StockRecord
// candidates. ISBN uniqueness across calls is best-effort only (spec §9
// Open Question (a)); the caller is responsible for filtering collisions
// against the live catalog before inserting.
func candidateBooks(n int) []catalog.NewBook {
	out := make([]catalog.NewBook, 0, n)
	for i := 0; i < n; i++ {
		isbn := rand.Int31n(1_000_000_000) + 1
		out = append(out, catalog.NewBook{
			ISBN:   isbn,
			Title:  fmt.Sprintf("Workload Title %d", isbn),
			Author: fmt.Sprintf("Workload Author %d", isbn%97),
			Price:  decimal.NewFromFloat(float64(5+isbn%40) + 0.99),
			Copies: 1 + int(isbn%20),
		})
	}
	return out
}

// filterExisting drops any candidate whose ISBN already appears in
// existing.
func filterExisting(candidates []catalog.NewBook, existing []catalog.StockRecord) []catalog.NewBook {
	seen := make(map[int32]struct{}, len(existing))
	for _, r := range existing {
		seen[r.ISBN] = struct{}{}
	}
	out := make([]catalog.NewBook, 0, len(candidates))
	for _, c := range candidates {
		if _, dup := seen[c.ISBN]; dup {
			continue
		}
		out = append(out, c)
	}
	return out
}

// sampleISBNs draws up to n distinct ISBNs from records uniformly at
// random, without replacement.
func sampleISBNs(records []catalog.StockRecord, n int) []int32 {
	if n > len(records) {
		n = len(records)
	}
	idx := rand.Perm(len(records))[:n]
	out := make([]int32, 0, n)
	for _, i := range idx {
		out = append(out, records[i].ISBN)
	}
	return out
}
