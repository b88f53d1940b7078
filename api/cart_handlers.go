package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/genemuffin/genemuffind/models"
	"github.com/gorilla/mux"
	"github.com/gosimple/slug"
)

// cartResponse is the envelope returned by every cart endpoint so the
// clients always see the items and derived totals together.
type cartResponse struct {
	Items      []models.CartItem `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPrice float64           `json:"totalPrice"`
}

func (g *Gateway) cartResponse() cartResponse {
	items := g.node.CartItems()
	if items == nil {
		items = []models.CartItem{}
	}
	totalItems, totalPrice := g.node.CartTotals()
	return cartResponse{
		Items:      items,
		TotalItems: totalItems,
		TotalPrice: totalPrice,
	}
}

func (g *Gateway) handleGETCart(w http.ResponseWriter, r *http.Request) {
	sanitizedJSONResponse(w, g.cartResponse())
}

func (g *Gateway) handlePOSTCart(w http.ResponseWriter, r *http.Request) {
	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, wrapError(err), http.StatusBadRequest)
		return
	}
	if item.Name == "" {
		http.Error(w, wrapError(errors.New("cart item name is required")), http.StatusBadRequest)
		return
	}
	if item.ID == "" {
		item.ID = slug.Make(item.Name)
	}
	g.node.AddToCart(item)
	sanitizedJSONResponse(w, g.cartResponse())
}

func (g *Gateway) handlePUTCartItem(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemID"]

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, wrapError(err), http.StatusBadRequest)
		return
	}
	g.node.UpdateCartQuantity(itemID, body.Quantity)
	sanitizedJSONResponse(w, g.cartResponse())
}

func (g *Gateway) handleDELETECartItem(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemID"]
	g.node.RemoveFromCart(itemID)
	sanitizedJSONResponse(w, g.cartResponse())
}

func (g *Gateway) handleDELETECart(w http.ResponseWriter, r *http.Request) {
	g.node.ClearCart()
	sanitizedJSONResponse(w, g.cartResponse())
}
