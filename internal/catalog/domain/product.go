package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID    int64           `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

// Stock is the available quantity for the product with the same ID.
type Stock struct {
	ID     int64 `json:"id"`
	Amount int   `json:"amount"`
}
