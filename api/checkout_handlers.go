package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/genemuffin/genemuffind/core/coreiface"
	"github.com/genemuffin/genemuffind/models"
)

func (g *Gateway) handleGETCheckout(w http.ResponseWriter, r *http.Request) {
	sanitizedJSONResponse(w, g.node.CheckoutState())
}

func (g *Gateway) handlePOSTCheckoutStage(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Stage string `json:"stage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, wrapError(err), http.StatusBadRequest)
		return
	}
	err := g.node.SetCheckoutStage(models.CheckoutStage(body.Stage))
	if errors.Is(err, coreiface.ErrBadRequest) {
		http.Error(w, wrapError(err), http.StatusBadRequest)
		return
	} else if err != nil {
		http.Error(w, wrapError(err), http.StatusInternalServerError)
		return
	}
	sanitizedJSONResponse(w, g.node.CheckoutState())
}

func (g *Gateway) handlePOSTProceedToCheckout(w http.ResponseWriter, r *http.Request) {
	_, err := g.node.ProceedToCheckout()
	if errors.Is(err, coreiface.ErrBadRequest) {
		http.Error(w, wrapError(err), http.StatusBadRequest)
		return
	} else if err != nil {
		http.Error(w, wrapError(err), http.StatusInternalServerError)
		return
	}
	sanitizedJSONResponse(w, g.node.CheckoutState())
}

func (g *Gateway) handlePOSTResetCheckout(w http.ResponseWriter, r *http.Request) {
	g.node.ResetCheckout()
	sanitizedJSONResponse(w, g.node.CheckoutState())
}

func (g *Gateway) handleGETOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := g.node.GetOrders()
	if err != nil {
		http.Error(w, wrapError(err), http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []models.OrderRecord{}
	}
	sanitizedJSONResponse(w, orders)
}
