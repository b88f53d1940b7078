package api

import (
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("api")

type GatewayConfig struct {
	Listener   net.Listener
	NoCors     bool
	AllowedIPs map[string]bool
	Cookie     string
	Username   string
	Password   string
	UseSSL     bool
	SSLCert    string
	SSLKey     string
	PublicOnly bool
}

// Gateway represents the HTTP API gateway. It serves the JSON API used
// by the client applications along with the websocket push channel.
type Gateway struct {
	listener net.Listener
	node     CoreIface
	handler  http.Handler
	config   *GatewayConfig
	hub      *hub
}

// NewGateway instantiates a new gateway.
func NewGateway(node CoreIface, config *GatewayConfig) (*Gateway, error) {
	var (
		g = &Gateway{
			node:     node,
			config:   config,
			listener: config.Listener,
			hub:      newHub(),
		}
		topMux = http.NewServeMux()
	)

	r := g.newV1Router()

	if !config.NoCors {
		r.Use(mux.CORSMethodMiddleware(r))
		r.Use(g.CORSAllowAllOriginsMiddleware)
	}
	r.Use(g.AuthenticationMiddleware)

	topMux.Handle("/v1/gm/", r)
	topMux.Handle("/v1/wallet/", r)
	topMux.Handle("/ws", newWebsocketHandler(g.hub))

	go g.hub.run()

	g.handler = topMux
	return g, nil
}

// Close shutsdown the Gateway listener.
func (g *Gateway) Close() error {
	return g.listener.Close()
}

// Serve begins listening on the configured address.
func (g *Gateway) Serve() error {
	log.Infof("Gateway/API server listening on %s\n", g.listener.Addr())
	var err error
	if g.config.UseSSL {
		err = http.ListenAndServeTLS(g.listener.Addr().String(), g.config.SSLCert, g.config.SSLKey, g.handler)
	} else {
		err = http.Serve(g.listener, g.handler)
	}
	return err
}

// NotifyWebsockets pushes the object, serialized and sanitized, to all
// connected websocket clients.
func (g *Gateway) NotifyWebsockets(i interface{}) error {
	out, err := marshalAndSanitizeJSON(i)
	if err != nil {
		return err
	}
	g.hub.Broadcast <- out
	return nil
}

func (g *Gateway) newV1Router() *mux.Router {
	r := mux.NewRouter()

	if !g.config.PublicOnly {
		r.HandleFunc("/v1/gm/cart", g.handleGETCart).Methods("GET")
		r.HandleFunc("/v1/gm/cart", g.handlePOSTCart).Methods("POST")
		r.HandleFunc("/v1/gm/cart", g.handleDELETECart).Methods("DELETE")
		r.HandleFunc("/v1/gm/cart/{itemID}", g.handlePUTCartItem).Methods("PUT")
		r.HandleFunc("/v1/gm/cart/{itemID}", g.handleDELETECartItem).Methods("DELETE")
		r.HandleFunc("/v1/gm/checkout", g.handleGETCheckout).Methods("GET")
		r.HandleFunc("/v1/gm/checkout/stage", g.handlePOSTCheckoutStage).Methods("POST")
		r.HandleFunc("/v1/gm/checkout/proceed", g.handlePOSTProceedToCheckout).Methods("POST")
		r.HandleFunc("/v1/gm/checkout/reset", g.handlePOSTResetCheckout).Methods("POST")
		r.HandleFunc("/v1/gm/orders", g.handleGETOrders).Methods("GET")
		r.HandleFunc("/v1/gm/notifications", g.handleGETNotifications).Methods("GET")
		r.HandleFunc("/v1/gm/marknotificationasread/{notificationID}", g.handlePOSTMarkNotificationAsRead).Methods("POST")
		r.HandleFunc("/v1/gm/marknotificationsasread", g.handlePOSTMarkNotificationsAsRead).Methods("POST")
		r.HandleFunc("/v1/gm/notification/{notificationID}", g.handleDELETENotification).Methods("DELETE")
		r.HandleFunc("/v1/wallet/info", g.handleGETWalletInfo).Methods("GET")
		r.HandleFunc("/v1/wallet/connect/{providerID}", g.handlePOSTConnectWallet).Methods("POST")
		r.HandleFunc("/v1/wallet/disconnect", g.handlePOSTDisconnectWallet).Methods("POST")
		r.HandleFunc("/v1/wallet/reject", g.handlePOSTRejectWalletConnection).Methods("POST")
		r.HandleFunc("/v1/wallet/balances", g.handleGETWalletBalances).Methods("GET")
		r.HandleFunc("/v1/wallet/activity", g.handleGETWalletActivity).Methods("GET")
		r.HandleFunc("/v1/wallet/mnemonic", g.handleGETWalletMnemonic).Methods("GET")
	}
	r.HandleFunc("/v1/gm/matches", g.handleGETMatches).Methods("GET")
	r.HandleFunc("/v1/gm/match/{matchID}", g.handleGETMatch).Methods("GET")
	r.HandleFunc("/v1/gm/profile", g.handleGETProfile).Methods("GET")
	r.HandleFunc("/v1/wallet/providers", g.handleGETWalletProviders).Methods("GET")
	return r
}
