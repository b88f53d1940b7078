package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/genemuffin/genemuffind/core/coreiface"
	"github.com/gorilla/mux"
)

func (g *Gateway) handleGETWalletProviders(w http.ResponseWriter, r *http.Request) {
	sanitizedJSONResponse(w, g.node.WalletProviders())
}

func (g *Gateway) handleGETWalletInfo(w http.ResponseWriter, r *http.Request) {
	sanitizedJSONResponse(w, g.node.WalletInfo())
}

func (g *Gateway) handlePOSTConnectWallet(w http.ResponseWriter, r *http.Request) {
	providerID := mux.Vars(r)["providerID"]
	err := g.node.ConnectWallet(providerID)
	if errors.Is(err, coreiface.ErrNotFound) {
		http.Error(w, wrapError(err), http.StatusNotFound)
		return
	} else if errors.Is(err, coreiface.ErrBadRequest) {
		http.Error(w, wrapError(err), http.StatusBadRequest)
		return
	} else if err != nil {
		http.Error(w, wrapError(err), http.StatusInternalServerError)
		return
	}
	sanitizedJSONResponse(w, g.node.WalletInfo())
}

func (g *Gateway) handlePOSTDisconnectWallet(w http.ResponseWriter, r *http.Request) {
	g.node.DisconnectWallet()
	sanitizedJSONResponse(w, g.node.WalletInfo())
}

func (g *Gateway) handlePOSTRejectWalletConnection(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, wrapError(err), http.StatusBadRequest)
		return
	}
	err := g.node.RejectWalletConnection(body.Reason)
	if errors.Is(err, coreiface.ErrBadRequest) {
		http.Error(w, wrapError(err), http.StatusBadRequest)
		return
	} else if err != nil {
		http.Error(w, wrapError(err), http.StatusInternalServerError)
		return
	}
	sanitizedJSONResponse(w, g.node.WalletInfo())
}

func (g *Gateway) handleGETWalletBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := g.node.WalletBalances()
	if errors.Is(err, coreiface.ErrBadRequest) {
		http.Error(w, wrapError(err), http.StatusBadRequest)
		return
	} else if err != nil {
		http.Error(w, wrapError(err), http.StatusInternalServerError)
		return
	}
	sanitizedJSONResponse(w, balances)
}

func (g *Gateway) handleGETWalletActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := g.node.WalletActivity()
	if errors.Is(err, coreiface.ErrBadRequest) {
		http.Error(w, wrapError(err), http.StatusBadRequest)
		return
	} else if err != nil {
		http.Error(w, wrapError(err), http.StatusInternalServerError)
		return
	}
	sanitizedJSONResponse(w, activity)
}

func (g *Gateway) handleGETWalletMnemonic(w http.ResponseWriter, r *http.Request) {
	mnemonic := g.node.WalletMnemonic()
	if mnemonic == "" {
		http.Error(w, wrapError(errors.New("wallet not connected")), http.StatusBadRequest)
		return
	}
	sanitizedJSONResponse(w, struct {
		Mnemonic string `json:"mnemonic"`
	}{mnemonic})
}
