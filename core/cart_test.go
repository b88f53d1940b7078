package core

import (
	"testing"

	"github.com/genemuffin/genemuffind/models"
)

func TestCart(t *testing.T) {
	node, err := MockNode()
	if err != nil {
		t.Fatal(err)
	}
	defer node.DestroyNode()

	node.AddToCart(models.CartItem{
		ID:       "dna-compatibility-report",
		Name:     "DNA Compatibility Report",
		Price:    0.05,
		Quantity: 1,
		Currency: "ETH",
	})
	node.AddToCart(models.CartItem{
		ID:       "dna-compatibility-report",
		Name:     "DNA Compatibility Report",
		Price:    0.05,
		Quantity: 2,
		Currency: "ETH",
	})
	node.AddToCart(models.CartItem{
		ID:       "premium-membership",
		Name:     "Premium Membership",
		Price:    0.1,
		Quantity: 1,
		Currency: "ETH",
	})

	items := node.CartItems()
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Errorf("Expected merged quantity 3, got %d", items[0].Quantity)
	}

	totalItems, totalPrice := node.CartTotals()
	if totalItems != 4 {
		t.Errorf("Expected 4 total items, got %d", totalItems)
	}
	if totalPrice != 0.25 {
		t.Errorf("Expected total price 0.25, got %f", totalPrice)
	}

	node.UpdateCartQuantity("premium-membership", 2)
	totalItems, _ = node.CartTotals()
	if totalItems != 5 {
		t.Errorf("Expected 5 total items, got %d", totalItems)
	}

	node.RemoveFromCart("dna-compatibility-report")
	if len(node.CartItems()) != 1 {
		t.Errorf("Expected 1 item, got %d", len(node.CartItems()))
	}

	node.ClearCart()
	if len(node.CartItems()) != 0 {
		t.Errorf("Expected empty cart, got %d items", len(node.CartItems()))
	}
}
