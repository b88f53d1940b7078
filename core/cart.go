package core

import (
	"github.com/genemuffin/genemuffind/models"
)

// AddToCart adds the item to the cart, merging quantities if an item
// with the same ID already exists.
func (n *GeneMuffinNode) AddToCart(item models.CartItem) {
	n.cartStore.AddItem(item)
}

// UpdateCartQuantity sets the quantity of the cart item with the given
// ID. A quantity of zero or less removes the item.
func (n *GeneMuffinNode) UpdateCartQuantity(itemID string, quantity int) {
	n.cartStore.UpdateQuantity(itemID, quantity)
}

// RemoveFromCart removes the item with the given ID from the cart.
func (n *GeneMuffinNode) RemoveFromCart(itemID string) {
	n.cartStore.RemoveItem(itemID)
}

// ClearCart removes all items from the cart.
func (n *GeneMuffinNode) ClearCart() {
	n.cartStore.Clear()
}

// CartItems returns the cart line items in insertion order.
func (n *GeneMuffinNode) CartItems() []models.CartItem {
	return n.cartStore.Items()
}

// CartTotals returns the total quantity and total price of the cart.
func (n *GeneMuffinNode) CartTotals() (int, float64) {
	return n.cartStore.TotalItems(), n.cartStore.TotalPrice()
}
