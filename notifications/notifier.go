package notifications

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/genemuffin/genemuffind/database"
	"github.com/genemuffin/genemuffind/events"
	"github.com/genemuffin/genemuffind/models"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("notif")

// notifierStarted is emitted on the bus once the subscriptions are in
// place. Tests sync on it before emitting.
type notifierStarted struct{}

type notificationWrapper struct {
	Notification interface{} `json:"notification"`
}

type cartWrapper struct {
	Cart interface{} `json:"cart"`
}

type checkoutWrapper struct {
	Checkout interface{} `json:"checkout"`
}

type walletWrapper struct {
	Wallet interface{} `json:"wallet"`
}

// Notifier manages translating events into notifications and
// sending them to websockets.
type Notifier struct {
	notifyFunc func(interface{}) error
	bus        events.Bus
	db         database.Database
	shutdown   chan struct{}
}

// NewNotifier returns a new notifer.
func NewNotifier(bus events.Bus, db database.Database, notifyFunc func(interface{}) error) *Notifier {
	return &Notifier{
		bus:        bus,
		db:         db,
		notifyFunc: notifyFunc,
		shutdown:   make(chan struct{}),
	}
}

// Start will start up the notifier. This should use it's own goroutine.
//
// Lifecycle milestones (completed transactions, wallet connections and
// disconnections, rejected handshakes, checkout resets) are persisted
// as notifications and pushed. Progress ticks, cart totals, and stage
// changes are pushed only; they are too chatty to keep.
func (n *Notifier) Start() {
	notifications := []interface{}{
		&events.TransactionCompleted{},
		&events.CheckoutReset{},
		&events.WalletConnected{},
		&events.WalletDisconnected{},
		&events.WalletConnectionRejected{},
	}

	notificationSub, err := n.bus.Subscribe(notifications)
	if err != nil {
		log.Errorf("Error subscribing to events: %s", err)
	}

	ephemeral := []interface{}{
		&events.CartUpdated{},
		&events.CheckoutStageChanged{},
		&events.TransactionProgress{},
		&events.WalletConnecting{},
	}

	ephemeralSub, err := n.bus.Subscribe(ephemeral)
	if err != nil {
		log.Errorf("Error subscribing to events: %s", err)
	}

	n.bus.Emit(&notifierStarted{})

	for {
		select {
		case event := <-notificationSub.Out():
			id := convertToNotification(event)

			out, err := json.MarshalIndent(event, "", "    ")
			if err != nil {
				log.Errorf("Error saving notification to the database: %s", err)
				continue
			}

			err = n.db.Update(func(tx database.Tx) error {
				return tx.Save(&models.NotificationRecord{
					ID:           id,
					Timestamp:    time.Now(),
					Read:         false,
					Notification: out,
				})
			})
			if err != nil {
				log.Errorf("Error saving notification to the database: %s", err)
				continue
			}

			if err := n.notifyFunc(notificationWrapper{event}); err != nil {
				log.Errorf("Error sending notification: %s", err)
			}
		case event := <-ephemeralSub.Out():
			var i interface{}
			switch event.(type) {
			case *events.CartUpdated:
				i = cartWrapper{event}
			case *events.CheckoutStageChanged, *events.TransactionProgress:
				i = checkoutWrapper{event}
			case *events.WalletConnecting:
				i = walletWrapper{event}
			}

			if err := n.notifyFunc(i); err != nil {
				log.Errorf("Error sending notification: %s", err)
			}
		case <-n.shutdown:
			return
		}
	}
}

// Stop shuts down the notifier.
func (n *Notifier) Stop() {
	close(n.shutdown)
}

func convertToNotification(event interface{}) string {
	r := make([]byte, 20)
	rand.Read(r)
	id := hex.EncodeToString(r)

	switch e := event.(type) {
	case *events.TransactionCompleted:
		e.Typ = "TransactionCompleted"
		e.ID = id
	case *events.CheckoutReset:
		e.Typ = "CheckoutReset"
		e.ID = id
	case *events.WalletConnected:
		e.Typ = "WalletConnected"
		e.ID = id
	case *events.WalletDisconnected:
		e.Typ = "WalletDisconnected"
		e.ID = id
	case *events.WalletConnectionRejected:
		e.Typ = "WalletConnectionRejected"
		e.ID = id
	}

	return id
}
