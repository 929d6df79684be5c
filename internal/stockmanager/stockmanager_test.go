package stockmanager

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog/internal/catalog"
	"bookcatalog/internal/catalog/variants"
)

func newSeededManager(t *testing.T) *StockManager {
	t.Helper()
	controller := variants.NewControllerS()
	return New(controller)
}

func TestStockManager_AddBooks(t *testing.T) {
	manager := newSeededManager(t)
	err := manager.AddBooks([]catalog.NewBook{
		{ISBN: 1, Title: "A", Author: "A", Price: decimal.NewFromFloat(9.99), Copies: 5},
	})
	require.NoError(t, err)
	assert.Len(t, manager.GetBooks(), 1)
}

func TestStockManager_AddCopies(t *testing.T) {
	manager := newSeededManager(t)
	require.NoError(t, manager.AddBooks([]catalog.NewBook{
		{ISBN: 1, Title: "A", Author: "A", Price: decimal.NewFromFloat(9.99), Copies: 5},
	}))

	require.NoError(t, manager.AddCopies(map[int32]int{1: 10}))
	books, err := manager.GetBooksByISBN([]int32{1})
	require.NoError(t, err)
	assert.Equal(t, 15, books[0].NumCopies)
}

func TestStockManager_UpdateEditorPicks(t *testing.T) {
	manager := newSeededManager(t)
	require.NoError(t, manager.AddBooks([]catalog.NewBook{
		{ISBN: 1, Title: "A", Author: "A", Price: decimal.NewFromFloat(9.99), Copies: 5},
	}))

	require.NoError(t, manager.UpdateEditorPicks(map[int32]bool{1: true}))
	books, err := manager.GetBooksByISBN([]int32{1})
	require.NoError(t, err)
	assert.True(t, books[0].EditorPick)
}

func TestStockManager_RemoveBooks(t *testing.T) {
	manager := newSeededManager(t)
	require.NoError(t, manager.AddBooks([]catalog.NewBook{
		{ISBN: 1, Title: "A", Author: "A", Price: decimal.NewFromFloat(9.99), Copies: 5},
	}))

	require.NoError(t, manager.RemoveBooks([]int32{1}))
	assert.Empty(t, manager.GetBooks())
}

func TestStockManager_RemoveAllBooks(t *testing.T) {
	manager := newSeededManager(t)
	require.NoError(t, manager.AddBooks([]catalog.NewBook{
		{ISBN: 1, Title: "A", Author: "A", Price: decimal.NewFromFloat(9.99), Copies: 5},
		{ISBN: 2, Title: "B", Author: "B", Price: decimal.NewFromFloat(9.99), Copies: 5},
	}))

	manager.RemoveAllBooks()
	assert.Empty(t, manager.GetBooks())
}

func TestStockManager_GetBooksInDemand(t *testing.T) {
	controller := variants.NewControllerS()
	manager := New(controller)
	require.NoError(t, manager.AddBooks([]catalog.NewBook{
		{ISBN: 1, Title: "A", Author: "A", Price: decimal.NewFromFloat(9.99), Copies: 1},
	}))
	assert.Empty(t, manager.GetBooksInDemand())

	require.ErrorIs(t, controller.Buy(map[int32]int{1: 2}), catalog.ErrOutOfStock)

	inDemand := manager.GetBooksInDemand()
	require.Len(t, inDemand, 1)
	assert.Equal(t, int32(1), inDemand[0].ISBN)
}
