package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID    int64           `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

type Stock struct {
	ID     int64 `json:"id"`
	Amount int   `json:"amount"`
}

// Item is a cart line. Amount is always >= 1.
type Item struct {
	Product
	Amount int `json:"amount"`
}

// Cart is an ordered list of items with unique product IDs.
// Mutating helpers return a new Cart and leave the receiver untouched.
type Cart struct {
	ID    string
	Items []Item
}

func (c Cart) Find(productID int64) (Item, int, bool) {
	for i, it := range c.Items {
		if it.ID == productID {
			return it, i, true
		}
	}
	return Item{}, -1, false
}

// AmountOf returns 0 when the product is not in the cart.
func (c Cart) AmountOf(productID int64) int {
	it, _, ok := c.Find(productID)
	if !ok {
		return 0
	}
	return it.Amount
}

func (c Cart) Clone() Cart {
	items := make([]Item, len(c.Items))
	copy(items, c.Items)
	return Cart{ID: c.ID, Items: items}
}

// WithAdded appends p with amount 1, or increments the existing line.
func (c Cart) WithAdded(p Product) Cart {
	out := c.Clone()
	if _, idx, ok := out.Find(p.ID); ok {
		out.Items[idx].Amount++
		return out
	}
	out.Items = append(out.Items, Item{Product: p, Amount: 1})
	return out
}

func (c Cart) Without(productID int64) Cart {
	out := Cart{ID: c.ID, Items: make([]Item, 0, len(c.Items))}
	for _, it := range c.Items {
		if it.ID != productID {
			out.Items = append(out.Items, it)
		}
	}
	return out
}

// WithAmount sets the amount of an existing line. Lines for other products are kept as is.
func (c Cart) WithAmount(productID int64, amount int) Cart {
	out := c.Clone()
	if _, idx, ok := out.Find(productID); ok {
		out.Items[idx].Amount = amount
	}
	return out
}

func (c Cart) ItemCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Amount
	}
	return n
}

func (c Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.LineTotal())
	}
	return total
}

func (it Item) LineTotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Amount)))
}
