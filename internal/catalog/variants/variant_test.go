package variants

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog/internal/catalog"
)

func newControllers() map[string]Controller {
	return map[string]Controller{
		"variantS": NewControllerS(),
		"variantT": NewControllerT(),
	}
}

func seedOne(t *testing.T, c Controller, isbn int32, copies int) {
	t.Helper()
	err := c.AddBooks([]catalog.NewBook{{
		ISBN:   isbn,
		Title:  "Harry Potter and JUnit",
		Author: "JK Unit",
		Price:  decimal.NewFromFloat(10.0),
		Copies: copies,
	}})
	require.NoError(t, err)
}

// Scenario 4: Concurrent buyer+adder balance.
func TestController_ConcurrentBuyerAndAdderBalance(t *testing.T) {
	for name, c := range newControllers() {
		c := c
		t.Run(name, func(t *testing.T) {
			seedOne(t, c, 1, 100)

			var wg sync.WaitGroup
			wg.Add(2)
			go func() {
				defer wg.Done()
				for i := 0; i < 50; i++ {
					require.NoError(t, c.Buy(map[int32]int{1: 1}))
				}
			}()
			go func() {
				defer wg.Done()
				for i := 0; i < 50; i++ {
					require.NoError(t, c.AddCopies(map[int32]int{1: 1}))
				}
			}()
			wg.Wait()

			records, err := c.ListByISBN([]int32{1})
			require.NoError(t, err)
			assert.Equal(t, 100, records[0].NumCopies)
		})
	}
}

// Scenario 5: Snapshot consistency under cycler.
func TestController_SnapshotConsistencyUnderCycler(t *testing.T) {
	for name, c := range newControllers() {
		c := c
		t.Run(name, func(t *testing.T) {
			seedOne(t, c, 1, 100)

			done := make(chan struct{})
			go func() {
				defer close(done)
				for i := 0; i < 50; i++ {
					require.NoError(t, c.Buy(map[int32]int{1: 1}))
					require.NoError(t, c.AddCopies(map[int32]int{1: 1}))
				}
			}()

			for {
				select {
				case <-done:
					return
				default:
				}
				records, err := c.ListByISBN([]int32{1})
				require.NoError(t, err)
				assert.Contains(t, []int{99, 100}, records[0].NumCopies)
			}
		})
	}
}

func TestController_AddBooks_RejectsDuplicate(t *testing.T) {
	for name, c := range newControllers() {
		c := c
		t.Run(name, func(t *testing.T) {
			seedOne(t, c, 1, 5)

			err := c.AddBooks([]catalog.NewBook{{
				ISBN: 1, Title: "x", Author: "y", Price: decimal.Zero, Copies: 1,
			}})
			assert.ErrorIs(t, err, catalog.ErrDuplicate)
		})
	}
}

func TestController_RemoveBooks(t *testing.T) {
	for name, c := range newControllers() {
		c := c
		t.Run(name, func(t *testing.T) {
			seedOne(t, c, 1, 5)
			seedOne(t, c, 2, 5)

			require.NoError(t, c.RemoveBooks([]int32{1, 2}))
			_, err := c.ListByISBN([]int32{1})
			assert.ErrorIs(t, err, catalog.ErrNotInStock)
		})
	}
}

func TestController_RemoveAll(t *testing.T) {
	for name, c := range newControllers() {
		c := c
		t.Run(name, func(t *testing.T) {
			seedOne(t, c, 1, 5)
			c.RemoveAll()
			assert.Empty(t, c.ListAll())
		})
	}
}

func TestController_Rate_TopRated_BooksInDemand_UniformAcrossVariants(t *testing.T) {
	for name, c := range newControllers() {
		c := c
		t.Run(name, func(t *testing.T) {
			seedOne(t, c, 1, 1)
			seedOne(t, c, 2, 1)

			require.NoError(t, c.Rate(map[int32]int{1: 5, 2: 3}))
			top, err := c.TopRated(1)
			require.NoError(t, err)
			require.Len(t, top, 1)
			assert.Equal(t, int32(1), top[0].ISBN)

			require.ErrorIs(t, c.Buy(map[int32]int{2: 2}), catalog.ErrOutOfStock)
			inDemand := c.BooksInDemand()
			require.Len(t, inDemand, 1)
			assert.Equal(t, int32(2), inDemand[0].ISBN)
		})
	}
}

func TestControllerT_StructuralChangeExcludesMutation(t *testing.T) {
	c := NewControllerT()
	seedOne(t, c, 1, 5)

	// A structural removal and a mutation of an unrelated ISBN must both
	// complete without deadlocking or interfering with each other.
	seedOne(t, c, 2, 5)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = c.RemoveBooks([]int32{1})
	}()
	go func() {
		defer wg.Done()
		_ = c.AddCopies(map[int32]int{2: 1})
	}()
	wg.Wait()

	records, err := c.ListByISBN([]int32{2})
	require.NoError(t, err)
	assert.Equal(t, 6, records[0].NumCopies)
}
