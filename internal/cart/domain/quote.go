package domain

import "github.com/shopspring/decimal"

type QuoteLine struct {
	ProductID int64
	Title     string
	Amount    int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
	Available int
	InStock   bool
}

type Quote struct {
	CartID     string
	Lines      []QuoteLine
	Total      decimal.Decimal
	Shortfalls int
}
