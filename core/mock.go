package core

import (
	"time"

	"github.com/genemuffin/genemuffind/cart"
	"github.com/genemuffin/genemuffind/checkout"
	"github.com/genemuffin/genemuffind/events"
	"github.com/genemuffin/genemuffind/notifications"
	"github.com/genemuffin/genemuffind/profiles"
	"github.com/genemuffin/genemuffind/repo"
	"github.com/genemuffin/genemuffind/wallet"
)

// MockNode builds a mock node with a temp data directory, in-memory
// database, shortened simulation timers, and canned profile data. No
// gateway is started.
func MockNode() (*GeneMuffinNode, error) {
	r, err := repo.MockRepo()
	if err != nil {
		return nil, err
	}

	bus := events.NewBus()

	cartStore, err := cart.NewStore(bus, r.DB())
	if err != nil {
		return nil, err
	}

	machine, err := checkout.NewMachine(cartStore, bus, r.DB(),
		checkout.TickInterval(time.Millisecond))
	if err != nil {
		return nil, err
	}

	sim := wallet.NewSimulator(bus,
		wallet.ConnectDelay(time.Millisecond*10),
		wallet.FlashDelay(time.Millisecond*10))
	sim.OnConnectionChanged(machine.SetWalletConnected)

	node := &GeneMuffinNode{
		repo:      r,
		eventBus:  bus,
		cartStore: cartStore,
		checkout:  machine,
		wallet:    sim,
		profiles:  profiles.NewService(r.DB(), profiles.RequestBudget(0)),
		testData:  true,
		shutdown:  make(chan struct{}),
	}

	node.notifier = notifications.NewNotifier(bus, r.DB(), func(interface{}) error { return nil })

	return node, nil
}
