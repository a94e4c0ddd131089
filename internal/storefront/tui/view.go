package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7159c1"))
	paneStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	activeStyle = paneStyle.BorderForeground(lipgloss.Color("#7159c1"))
	cursorStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	toastStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#e74c3c")).Padding(0, 1)
)

func (m Model) View() string {
	header := titleStyle.Render("RocketShoes") + mutedStyle.Render(fmt.Sprintf("  %d item(s) in cart", m.snapshot.ItemCount()))

	products := m.renderProducts()
	cart := m.renderCart()
	if m.pane == paneProducts {
		products = activeStyle.Render(products)
		cart = paneStyle.Render(cart)
	} else {
		products = paneStyle.Render(products)
		cart = activeStyle.Render(cart)
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, products, cart))
	b.WriteString("\n")
	if m.toast != "" {
		b.WriteString(toastStyle.Render(m.toast))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render("tab switch • ↑/↓ move • a add • +/- amount • d remove • r reload • q quit"))
	return b.String()
}

func (m Model) renderProducts() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Products"))
	b.WriteString("\n")
	if len(m.products) == 0 {
		b.WriteString(mutedStyle.Render("no products"))
		return b.String()
	}
	for i, p := range m.products {
		line := fmt.Sprintf("%s  %s  [%d]", p.Title, m.money(p.Price), m.snapshot.AmountOf(p.ID))
		b.WriteString(m.cursorLine(line, m.pane == paneProducts && i == m.productCursor))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderCart() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Cart"))
	b.WriteString("\n")
	if len(m.snapshot.Items) == 0 {
		b.WriteString(mutedStyle.Render("your cart is empty"))
		return b.String()
	}
	for i, it := range m.snapshot.Items {
		line := fmt.Sprintf("%s  %s x%d = %s", it.Title, m.money(it.Price), it.Amount, m.money(it.LineTotal()))
		b.WriteString(m.cursorLine(line, m.pane == paneCart && i == m.cartCursor))
		b.WriteString("\n")
	}
	b.WriteString(cursorStyle.Render("Total: " + m.money(m.snapshot.Subtotal())))
	return b.String()
}

func (m Model) cursorLine(line string, selected bool) string {
	if selected {
		return cursorStyle.Render("> " + line)
	}
	return "  " + line
}

func (m Model) money(d decimal.Decimal) string {
	return m.currency + " " + d.StringFixed(2)
}
