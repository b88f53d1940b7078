package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/genemuffin/genemuffind/core/coreiface"
	"github.com/genemuffin/genemuffind/models"
	"github.com/gorilla/mux"
)

func (g *Gateway) handleGETNotifications(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offsetID := r.URL.Query().Get("offsetID")

	notifications, err := g.node.GetNotifications(limit, offsetID)
	if err != nil {
		http.Error(w, wrapError(err), http.StatusInternalServerError)
		return
	}
	if notifications == nil {
		notifications = []models.NotificationRecord{}
	}
	sanitizedJSONResponse(w, notifications)
}

func (g *Gateway) handlePOSTMarkNotificationAsRead(w http.ResponseWriter, r *http.Request) {
	notificationID := mux.Vars(r)["notificationID"]

	err := g.node.MarkNotificationAsRead(notificationID)
	if errors.Is(err, coreiface.ErrNotFound) {
		http.Error(w, wrapError(err), http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, wrapError(err), http.StatusInternalServerError)
		return
	}
}

func (g *Gateway) handlePOSTMarkNotificationsAsRead(w http.ResponseWriter, r *http.Request) {
	if err := g.node.MarkAllNotificationsAsRead(); err != nil {
		http.Error(w, wrapError(err), http.StatusInternalServerError)
		return
	}
}

func (g *Gateway) handleDELETENotification(w http.ResponseWriter, r *http.Request) {
	notificationID := mux.Vars(r)["notificationID"]

	err := g.node.DeleteNotification(notificationID)
	if errors.Is(err, coreiface.ErrNotFound) {
		http.Error(w, wrapError(err), http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, wrapError(err), http.StatusInternalServerError)
		return
	}
}
