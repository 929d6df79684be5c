package main

import (
	"github.com/shopspring/decimal"

	"bookcatalog/internal/catalog"
	"bookcatalog/internal/stockmanager"
)

// seed installs a small starting catalog with a few editor picks so the
// Workload Driver's frequent bookstore interaction has something to
// sample from immediately.
func seed(manager *stockmanager.StockManager) error {
	books := []catalog.NewBook{
		{ISBN: 3044560, Title: "Harry Potter and JUnit", Author: "JK Unit", Price: decimal.NewFromFloat(10.0), Copies: 50},
		{ISBN: 3044561, Title: "The Go Programming Language", Author: "Donovan & Kernighan", Price: decimal.NewFromFloat(39.99), Copies: 40},
		{ISBN: 3044562, Title: "Concurrency in Practice", Author: "Goetz", Price: decimal.NewFromFloat(44.99), Copies: 30},
		{ISBN: 3044563, Title: "Designing Data-Intensive Applications", Author: "Kleppmann", Price: decimal.NewFromFloat(49.99), Copies: 25},
		{ISBN: 3044564, Title: "The Pragmatic Programmer", Author: "Hunt & Thomas", Price: decimal.NewFromFloat(34.99), Copies: 35},
	}
	if err := manager.AddBooks(books); err != nil {
		return err
	}
	picks := make(map[int32]bool, len(books))
	for _, b := range books {
		picks[b.ISBN] = true
	}
	return manager.UpdateEditorPicks(picks)
}
