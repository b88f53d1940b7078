package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/genemuffin/genemuffind/core/coreiface"
	"github.com/gorilla/mux"
)

func (g *Gateway) handleGETMatches(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	sanitizedJSONResponse(w, g.node.GetMatches(page, limit))
}

func (g *Gateway) handleGETMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchID"]

	match, err := g.node.GetMatchByID(matchID)
	if errors.Is(err, coreiface.ErrNotFound) {
		http.Error(w, wrapError(err), http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, wrapError(err), http.StatusInternalServerError)
		return
	}
	sanitizedJSONResponse(w, match)
}

func (g *Gateway) handleGETProfile(w http.ResponseWriter, r *http.Request) {
	sanitizedJSONResponse(w, g.node.GetMyProfile())
}
