package core

import (
	"github.com/genemuffin/genemuffind/api"
	"github.com/genemuffin/genemuffind/cart"
	"github.com/genemuffin/genemuffind/checkout"
	"github.com/genemuffin/genemuffind/core/coreiface"
	"github.com/genemuffin/genemuffind/events"
	"github.com/genemuffin/genemuffind/notifications"
	"github.com/genemuffin/genemuffind/profiles"
	"github.com/genemuffin/genemuffind/repo"
	"github.com/genemuffin/genemuffind/wallet"
)

// GeneMuffinNode holds all the components that make up a running
// GeneMuffin backend. It also exposes an exported API which can be
// used to control the node.
type GeneMuffinNode struct {

	// repo holds the database and data directory.
	repo *repo.Repo

	// eventBus carries events between the components and out
	// to the websocket clients.
	eventBus events.Bus

	// cartStore holds the shopping cart line items.
	cartStore *cart.Store

	// checkout drives the staged checkout sequence.
	checkout *checkout.Machine

	// wallet simulates the wallet connection lifecycle.
	wallet *wallet.Simulator

	// profiles serves match and profile data, remote or cached.
	profiles *profiles.Service

	// notifier persists notifications and pushes them to the
	// websocket clients.
	notifier *notifications.Notifier

	// gateway is the JSON API server.
	gateway *api.Gateway

	// testData is set when the node serves canned profile data
	// instead of hitting the remote API.
	testData bool

	// shutdown is closed when the node is stopped. Any listening
	// goroutines can use this to terminate.
	shutdown chan struct{}
}

// Start gets the node up and running. The notifier begins relaying
// events and the gateway begins serving the JSON API.
func (n *GeneMuffinNode) Start() {
	go n.notifier.Start()
	go func() {
		if err := n.gateway.Serve(); err != nil {
			log.Errorf("Gateway error: %s", err)
		}
	}()
}

// Stop cleanly shutsdown the GeneMuffinNode and signals to any
// listening goroutines that it's time to stop.
func (n *GeneMuffinNode) Stop() {
	close(n.shutdown)
	n.notifier.Stop()
	n.wallet.Close()
	n.checkout.Close()
	if n.gateway != nil {
		if err := n.gateway.Close(); err != nil {
			log.Errorf("Error shutting down gateway: %s", err)
		}
	}
	n.repo.Close()
}

// DestroyNode shutsdown the node and deletes the entire data directory.
// This should only be used during testing as destroying a live node will
// result in data loss.
func (n *GeneMuffinNode) DestroyNode() {
	n.Stop()
	n.repo.DestroyRepo()
}

// EventBus returns the node's event bus.
func (n *GeneMuffinNode) EventBus() events.Bus {
	return n.eventBus
}

// Repo returns the node's repo.
func (n *GeneMuffinNode) Repo() *repo.Repo {
	return n.repo
}

// Gateway returns the node's API gateway.
func (n *GeneMuffinNode) Gateway() *api.Gateway {
	return n.gateway
}

// UsingTestData returns whether the node serves canned profile data.
func (n *GeneMuffinNode) UsingTestData() bool {
	return n.testData
}

// SubscribeEvent returns a subscription to the given event.
func (n *GeneMuffinNode) SubscribeEvent(event interface{}) (events.Subscription, error) {
	return n.eventBus.Subscribe(event)
}

var _ coreiface.CoreIface = (*GeneMuffinNode)(nil)
