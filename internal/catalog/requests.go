package catalog

import "github.com/shopspring/decimal"

// NewBook is the input shape for StockManager.AddBooks: a candidate title
// plus its initial stock. It is validated before any record is installed.
type NewBook struct {
	ISBN   int32
	Title  string
	Author string
	Price  decimal.Decimal
	Copies int
}
