package bookstore

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog/internal/catalog"
	"bookcatalog/internal/catalog/variants"
)

func newSeededStore(t *testing.T) *BookStore {
	t.Helper()
	controller := variants.NewControllerT()
	require.NoError(t, controller.AddBooks([]catalog.NewBook{
		{ISBN: 1, Title: "A", Author: "A", Price: decimal.NewFromFloat(9.99), Copies: 10},
		{ISBN: 2, Title: "B", Author: "B", Price: decimal.NewFromFloat(19.99), Copies: 0},
	}))
	require.NoError(t, controller.SetEditorPicks(map[int32]bool{1: true}))
	return New(controller)
}

func TestBookStore_BuyBooks(t *testing.T) {
	t.Run("succeeds within stock", func(t *testing.T) {
		store := newSeededStore(t)
		err := store.BuyBooks(map[int32]int{1: 3})
		require.NoError(t, err)

		books, err := store.GetBooks([]int32{1})
		require.NoError(t, err)
		assert.Equal(t, 7, books[0].NumCopies)
	})

	t.Run("records sale miss and leaves stock unchanged on shortfall", func(t *testing.T) {
		store := newSeededStore(t)
		err := store.BuyBooks(map[int32]int{2: 1})
		assert.ErrorIs(t, err, catalog.ErrOutOfStock)

		books, err := store.GetBooks([]int32{2})
		require.NoError(t, err)
		assert.Equal(t, 0, books[0].NumCopies)
		assert.Equal(t, 1, books[0].NumSaleMisses)
	})
}

func TestBookStore_GetEditorPicks(t *testing.T) {
	store := newSeededStore(t)
	picks, err := store.GetEditorPicks(10)
	require.NoError(t, err)
	require.Len(t, picks, 1)
	assert.Equal(t, int32(1), picks[0].ISBN)
}

func TestBookStore_RateBooks(t *testing.T) {
	store := newSeededStore(t)
	require.NoError(t, store.RateBooks(map[int32]int{1: 5}))

	books, err := store.GetBooks([]int32{1})
	require.NoError(t, err)
	assert.Equal(t, 1, books[0].NumTimesRated)
}

func TestBookStore_GetTopRatedBooks(t *testing.T) {
	store := newSeededStore(t)
	require.NoError(t, store.RateBooks(map[int32]int{1: 5}))
	require.NoError(t, store.RateBooks(map[int32]int{2: 2}))

	top, err := store.GetTopRatedBooks(2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, int32(1), top[0].ISBN)
}

func TestBookStore_GetBooks_UnknownISBN(t *testing.T) {
	store := newSeededStore(t)
	_, err := store.GetBooks([]int32{999})
	assert.ErrorIs(t, err, catalog.ErrNotInStock)
}
