// Package tui is the terminal storefront: a product list next to the cart,
// with failures shown as a one-line toast.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dwikikusuma/rocketshoes/internal/cart/app"
	"github.com/dwikikusuma/rocketshoes/internal/cart/domain"
)

type Catalog interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

type CartService interface {
	Cart(ctx context.Context, cartID string) (domain.Cart, error)
	AddProduct(ctx context.Context, cartID string, productID int64) (domain.Cart, error)
	RemoveProduct(ctx context.Context, cartID string, productID int64) (domain.Cart, error)
	UpdateProductAmount(ctx context.Context, cartID string, productID int64, amount int) (domain.Cart, error)
}

type pane int

const (
	paneProducts pane = iota
	paneCart
)

const msgProductsFailed = "Error loading products"

type productsLoadedMsg struct {
	products []domain.Product
	err      error
}

// cartMsg carries the result of a cart call. Only mutations clear the toast,
// so a reload never hides an earlier failure.
type cartMsg struct {
	op   domain.Op
	cart domain.Cart
	err  error
}

type Model struct {
	ctx      context.Context
	catalog  Catalog
	cart     CartService
	cartID   string
	currency string

	products []domain.Product
	snapshot domain.Cart

	pane          pane
	productCursor int
	cartCursor    int

	toast string
}

func New(ctx context.Context, catalog Catalog, cart CartService, cartID, currency string) Model {
	return Model{
		ctx:      ctx,
		catalog:  catalog,
		cart:     cart,
		cartID:   cartID,
		currency: currency,
		snapshot: domain.Cart{ID: cartID},
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadProducts(), m.loadCart())
}

func (m Model) loadProducts() tea.Cmd {
	return func() tea.Msg {
		ps, err := m.catalog.ListProducts(m.ctx)
		return productsLoadedMsg{products: ps, err: err}
	}
}

func (m Model) loadCart() tea.Cmd {
	return func() tea.Msg {
		c, err := m.cart.Cart(m.ctx, m.cartID)
		return cartMsg{op: domain.OpLoad, cart: c, err: err}
	}
}

func (m Model) addProduct(productID int64) tea.Cmd {
	return func() tea.Msg {
		c, err := m.cart.AddProduct(m.ctx, m.cartID, productID)
		return cartMsg{op: domain.OpAdd, cart: c, err: err}
	}
}

func (m Model) removeProduct(productID int64) tea.Cmd {
	return func() tea.Msg {
		c, err := m.cart.RemoveProduct(m.ctx, m.cartID, productID)
		return cartMsg{op: domain.OpRemove, cart: c, err: err}
	}
}

func (m Model) setAmount(productID int64, amount int) tea.Cmd {
	return func() tea.Msg {
		c, err := m.cart.UpdateProductAmount(m.ctx, m.cartID, productID, amount)
		return cartMsg{op: domain.OpUpdateAmount, cart: c, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case productsLoadedMsg:
		if msg.err != nil {
			m.toast = msgProductsFailed
			return m, nil
		}
		m.products = msg.products
		m.productCursor = clamp(m.productCursor, len(m.products))
		return m, nil

	case cartMsg:
		if msg.err != nil {
			// the snapshot stays as it was; only the toast changes
			m.toast = app.Message(msg.err, app.MsgLoadFailed)
			return m, nil
		}
		m.snapshot = msg.cart
		m.cartCursor = clamp(m.cartCursor, len(m.snapshot.Items))
		if msg.op != domain.OpLoad {
			m.toast = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		if m.pane == paneProducts {
			m.pane = paneCart
		} else {
			m.pane = paneProducts
		}
		return m, nil
	case "up", "k":
		m.moveCursor(-1)
		return m, nil
	case "down", "j":
		m.moveCursor(1)
		return m, nil
	case "r":
		return m, tea.Batch(m.loadProducts(), m.loadCart())
	}

	if m.pane == paneProducts {
		switch msg.String() {
		case "enter", "a":
			if p, ok := m.selectedProduct(); ok {
				return m, m.addProduct(p.ID)
			}
		}
		return m, nil
	}

	it, ok := m.selectedItem()
	if !ok {
		return m, nil
	}
	switch msg.String() {
	case "+", "=":
		return m, m.setAmount(it.ID, it.Amount+1)
	case "-":
		return m, m.setAmount(it.ID, it.Amount-1)
	case "d", "x", "delete":
		return m, m.removeProduct(it.ID)
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if m.pane == paneProducts {
		m.productCursor = clamp(m.productCursor+delta, len(m.products))
		return
	}
	m.cartCursor = clamp(m.cartCursor+delta, len(m.snapshot.Items))
}

func (m Model) selectedProduct() (domain.Product, bool) {
	if m.productCursor < 0 || m.productCursor >= len(m.products) {
		return domain.Product{}, false
	}
	return m.products[m.productCursor], true
}

func (m Model) selectedItem() (domain.Item, bool) {
	if m.cartCursor < 0 || m.cartCursor >= len(m.snapshot.Items) {
		return domain.Item{}, false
	}
	return m.snapshot.Items[m.cartCursor], true
}

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
