package domain

import "time"

const (
	EventItemAdded   = "cart.item.added"
	EventItemRemoved = "cart.item.removed"
	EventItemUpdated = "cart.item.updated"
)

type Event struct {
	Type      string    `json:"-"`
	CartID    string    `json:"cart_id"`
	ProductID int64     `json:"product_id"`
	Amount    int       `json:"amount"`
	At        time.Time `json:"at"`
}
