package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/genemuffin/genemuffind/models"
)

func TestCartHandlers(t *testing.T) {
	items := []models.CartItem{
		{
			ID:       "dna-compatibility-report",
			Name:     "DNA Compatibility Report",
			Price:    0.05,
			Quantity: 2,
			Currency: "ETH",
		},
	}

	runAPITests(t, apiTests{
		{
			name:   "Get empty cart",
			path:   "/v1/gm/cart",
			method: http.MethodGet,
			setNodeMethods: func(n *mockNode) {
				n.cartItemsFunc = func() []models.CartItem {
					return nil
				}
				n.cartTotalsFunc = func() (int, float64) {
					return 0, 0
				}
			},
			statusCode: http.StatusOK,
			expectedResponse: func() ([]byte, error) {
				return marshalAndSanitizeJSON(cartResponse{
					Items: []models.CartItem{},
				})
			},
		},
		{
			name:   "Get cart",
			path:   "/v1/gm/cart",
			method: http.MethodGet,
			setNodeMethods: func(n *mockNode) {
				n.cartItemsFunc = func() []models.CartItem {
					return items
				}
				n.cartTotalsFunc = func() (int, float64) {
					return 2, 0.1
				}
			},
			statusCode: http.StatusOK,
			expectedResponse: func() ([]byte, error) {
				return marshalAndSanitizeJSON(cartResponse{
					Items:      items,
					TotalItems: 2,
					TotalPrice: 0.1,
				})
			},
		},
		{
			name:   "Post cart item",
			path:   "/v1/gm/cart",
			method: http.MethodPost,
			body:   []byte(`{"name": "DNA Compatibility Report", "price": 0.05, "quantity": 2, "currency": "ETH"}`),
			setNodeMethods: func(n *mockNode) {
				n.addToCartFunc = func(item models.CartItem) {
					if item.ID != "dna-compatibility-report" {
						t.Errorf("Expected slugged item ID, got %s", item.ID)
					}
				}
				n.cartItemsFunc = func() []models.CartItem {
					return items
				}
				n.cartTotalsFunc = func() (int, float64) {
					return 2, 0.1
				}
			},
			statusCode: http.StatusOK,
			expectedResponse: func() ([]byte, error) {
				return marshalAndSanitizeJSON(cartResponse{
					Items:      items,
					TotalItems: 2,
					TotalPrice: 0.1,
				})
			},
		},
		{
			name:   "Post cart item without name",
			path:   "/v1/gm/cart",
			method: http.MethodPost,
			body:   []byte(`{"price": 0.05}`),
			setNodeMethods: func(n *mockNode) {
				n.addToCartFunc = func(item models.CartItem) {
					t.Error("AddToCart should not be called")
				}
			},
			statusCode: http.StatusBadRequest,
			expectedResponse: func() ([]byte, error) {
				return []byte(fmt.Sprintf("%s\n", `{"error": "cart item name is required"}`)), nil
			},
		},
		{
			name:   "Post cart invalid JSON",
			path:   "/v1/gm/cart",
			method: http.MethodPost,
			body:   []byte(`{`),
			setNodeMethods: func(n *mockNode) {
				n.addToCartFunc = func(item models.CartItem) {
					t.Error("AddToCart should not be called")
				}
			},
			statusCode: http.StatusBadRequest,
			expectedResponse: func() ([]byte, error) {
				return []byte(fmt.Sprintf("%s\n", `{"error": "unexpected EOF"}`)), nil
			},
		},
		{
			name:   "Put cart item quantity",
			path:   "/v1/gm/cart/dna-compatibility-report",
			method: http.MethodPut,
			body:   []byte(`{"quantity": 3}`),
			setNodeMethods: func(n *mockNode) {
				n.updateCartQuantityFunc = func(itemID string, quantity int) {
					if itemID != "dna-compatibility-report" {
						t.Errorf("Expected itemID dna-compatibility-report, got %s", itemID)
					}
					if quantity != 3 {
						t.Errorf("Expected quantity 3, got %d", quantity)
					}
				}
				n.cartItemsFunc = func() []models.CartItem {
					return items
				}
				n.cartTotalsFunc = func() (int, float64) {
					return 3, 0.15
				}
			},
			statusCode: http.StatusOK,
			expectedResponse: func() ([]byte, error) {
				return marshalAndSanitizeJSON(cartResponse{
					Items:      items,
					TotalItems: 3,
					TotalPrice: 0.15,
				})
			},
		},
		{
			name:   "Delete cart item",
			path:   "/v1/gm/cart/dna-compatibility-report",
			method: http.MethodDelete,
			setNodeMethods: func(n *mockNode) {
				n.removeFromCartFunc = func(itemID string) {
					if itemID != "dna-compatibility-report" {
						t.Errorf("Expected itemID dna-compatibility-report, got %s", itemID)
					}
				}
				n.cartItemsFunc = func() []models.CartItem {
					return nil
				}
				n.cartTotalsFunc = func() (int, float64) {
					return 0, 0
				}
			},
			statusCode: http.StatusOK,
			expectedResponse: func() ([]byte, error) {
				return marshalAndSanitizeJSON(cartResponse{
					Items: []models.CartItem{},
				})
			},
		},
		{
			name:   "Delete cart",
			path:   "/v1/gm/cart",
			method: http.MethodDelete,
			setNodeMethods: func(n *mockNode) {
				n.clearCartFunc = func() {}
				n.cartItemsFunc = func() []models.CartItem {
					return nil
				}
				n.cartTotalsFunc = func() (int, float64) {
					return 0, 0
				}
			},
			statusCode: http.StatusOK,
			expectedResponse: func() ([]byte, error) {
				return marshalAndSanitizeJSON(cartResponse{
					Items: []models.CartItem{},
				})
			},
		},
	})
}
