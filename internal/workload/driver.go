// Package workload implements the benchmark of spec §4.6: N parallel
// worker tasks, each issuing a randomized mix of three interaction
// classes against the BookStore/StockManager façades, aggregated into a
// throughput/latency report.
package workload

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"bookcatalog/internal/bookstore"
	"bookcatalog/internal/config"
	"bookcatalog/internal/stockmanager"
	"bookcatalog/pkg/logger"
)

// Driver runs the workload against a BookStore/StockManager pair backed
// by the same underlying controller.
type Driver struct {
	cfg     config.WorkloadConfig
	store   *bookstore.BookStore
	manager *stockmanager.StockManager
	limiter *rate.Limiter
}

// New returns a Driver configured from cfg. When cfg.TargetRatePerSecond
// is 0, worker interactions are unthrottled.
func New(cfg config.WorkloadConfig, store *bookstore.BookStore, manager *stockmanager.StockManager) *Driver {
	d := &Driver{cfg: cfg, store: store, manager: manager}
	if cfg.TargetRatePerSecond > 0 {
		d.limiter = rate.NewLimiter(rate.Limit(cfg.TargetRatePerSecond), 1)
	}
	return d
}

// Run executes cfg.Workers worker tasks concurrently, each performing
// WarmupRuns (unmeasured) followed by MeasuredRuns (measured)
// interactions, and returns the aggregated Report.
func (d *Driver) Run(ctx context.Context) (Report, error) {
	runID := uuid.NewString()
	logger.Info("workload run starting", map[string]interface{}{
		"run_id":  runID,
		"workers": d.cfg.Workers,
	})

	results := make([]WorkerResult, d.cfg.Workers)
	g, gctx := errgroup.WithContext(ctx)

	for i := 0; i < d.cfg.Workers; i++ {
		i := i
		g.Go(func() error {
			res, err := d.runWorker(gctx)
			results[i] = res
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report := Aggregate(results)
	logger.Info("workload run finished", map[string]interface{}{
		"run_id":             runID,
		"success_rate":       report.SuccessRate,
		"customer_fraction":  report.CustomerFraction,
		"throughput_per_sec": report.ThroughputPerSec,
	})
	return report, nil
}

func (d *Driver) runWorker(ctx context.Context) (WorkerResult, error) {
	var res WorkerResult

	for i := 0; i < d.cfg.WarmupRuns; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if d.limiter != nil {
			if err := d.limiter.Wait(ctx); err != nil {
				return res, err
			}
		}
		d.interactOnce()
	}

	measuredStart := time.Now()
	for i := 0; i < d.cfg.MeasuredRuns; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if d.limiter != nil {
			if err := d.limiter.Wait(ctx); err != nil {
				return res, err
			}
		}

		isCustomer, err := d.interactOnce()

		res.TotalRuns++
		if err == nil {
			res.SuccessfulRuns++
		}
		if isCustomer {
			res.TotalCustomerRuns++
			if err == nil {
				res.SuccessfulCustomerRuns++
			}
		}
	}
	res.Elapsed = time.Since(measuredStart)

	return res, nil
}

// interactOnce selects one interaction class by the configured
// percentages and executes it, returning whether it was the measured
// customer class and any error.
func (d *Driver) interactOnce() (isCustomer bool, err error) {
	roll := rand.Intn(100)

	switch {
	case roll < d.cfg.RareStockPct:
		return false, d.rareStockInteraction()
	case roll < d.cfg.RareStockPct+d.cfg.FrequentStockPct:
		return false, d.frequentStockInteraction()
	default:
		return true, d.frequentBookstoreInteraction()
	}
}

// rareStockInteraction fetches the full stock snapshot, generates a
// candidate set of new stock books, filters out ISBNs already present,
// and inserts the remainder.
func (d *Driver) rareStockInteraction() error {
	existing := d.manager.GetBooks()
	candidates := candidateBooks(d.cfg.BooksPerRareInteraction)
	fresh := filterExisting(candidates, existing)
	if len(fresh) == 0 {
		return nil
	}
	return d.manager.AddBooks(fresh)
}

// frequentStockInteraction fetches the full stock snapshot, sorts
// ascending by numCopies, takes the first k, and replenishes them by a
// fixed quantity.
func (d *Driver) frequentStockInteraction() error {
	records := d.manager.GetBooks()
	if len(records) == 0 {
		return nil
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].NumCopies < records[j].NumCopies
	})

	k := d.cfg.RestockBatchSize
	if k > len(records) {
		k = len(records)
	}
	deltas := make(map[int32]int, k)
	for _, r := range records[:k] {
		deltas[r.ISBN] = d.cfg.CopiesPerRestock
	}
	return d.manager.AddCopies(deltas)
}

// frequentBookstoreInteraction fetches up to m editor picks, samples up
// to n of their ISBNs uniformly at random without replacement, and
// purchases q copies each. This is the measured customer workload.
func (d *Driver) frequentBookstoreInteraction() error {
	picks, err := d.store.GetEditorPicks(d.cfg.EditorPicksSampleSize)
	if err != nil {
		return err
	}
	if len(picks) == 0 {
		return nil
	}

	isbns := sampleISBNs(picks, d.cfg.ISBNsPerPurchase)
	if len(isbns) == 0 {
		return nil
	}
	lines := make(map[int32]int, len(isbns))
	for _, isbn := range isbns {
		lines[isbn] = d.cfg.CopiesPerPurchasedISBN
	}
	return d.store.BuyBooks(lines)
}
