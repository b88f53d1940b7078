package checkout

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/genemuffin/genemuffind/cart"
	"github.com/genemuffin/genemuffind/database"
	"github.com/genemuffin/genemuffind/events"
	"github.com/genemuffin/genemuffind/models"
	"github.com/jinzhu/gorm"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("CKOT")

const (
	// defaultTickInterval is the wall-clock interval between simulated
	// settlement progress ticks.
	defaultTickInterval = time.Millisecond * 100

	// progressIncrement is the progress added per tick. Eight ticks
	// carry the settlement from zero to one hundred.
	progressIncrement = 12.5
)

// ErrIllegalTransition is returned when a stage change is requested
// that is not in the transition table.
type ErrIllegalTransition struct {
	From models.CheckoutStage
	To   models.CheckoutStage
}

func (e ErrIllegalTransition) Error() string {
	return fmt.Sprintf("illegal checkout transition: %s to %s", e.From, e.To)
}

// ErrUnknownStage is returned when a stage change is requested to a
// stage that does not exist.
type ErrUnknownStage string

func (e ErrUnknownStage) Error() string {
	return fmt.Sprintf("unknown checkout stage: %s", string(e))
}

// transitions is the set of legal forward and backward stage changes.
// The confirmation stage is terminal; only ResetCheckout leaves it.
var transitions = map[models.CheckoutStage][]models.CheckoutStage{
	models.StageCart:             {models.StageWalletConnection, models.StageShipping},
	models.StageWalletConnection: {models.StageShipping, models.StageCart},
	models.StageShipping:         {models.StagePayment, models.StageCart},
	models.StagePayment:          {models.StageTransaction, models.StageShipping},
	models.StageTransaction:      {models.StageConfirmation},
	models.StageConfirmation:     {},
}

// Machine is the checkout state machine. It advances through the linear
// stage sequence gated on wallet connectivity, runs the simulated
// settlement during the transaction stage, and clears the cart on reset.
//
// Unlike a permissive UI store, SetStage validates every requested
// change against the transition table and rejects out-of-table jumps.
type Machine struct {
	mtx             sync.Mutex
	stage           models.CheckoutStage
	walletConnected bool
	txHash          string
	progress        float64

	cart *cart.Store
	bus  events.Bus
	db   database.Database

	tickInterval time.Duration
	settleCancel chan struct{}
	shutdown     chan struct{}
	closeOnce    sync.Once
}

// Option customizes the machine construction.
type Option func(*Machine)

// TickInterval overrides the settlement tick interval. Useful in tests.
func TickInterval(d time.Duration) Option {
	return func(m *Machine) {
		m.tickInterval = d
	}
}

// NewMachine returns a new checkout machine at the cart stage. The bus
// and cart store may not be nil. The db may be nil, in which case the
// checkout state lives only in memory. If a persisted stage exists it
// is restored; a persisted transaction stage restarts its settlement
// from zero progress.
func NewMachine(cartStore *cart.Store, bus events.Bus, db database.Database, opts ...Option) (*Machine, error) {
	m := &Machine{
		stage:        models.StageCart,
		cart:         cartStore,
		bus:          bus,
		db:           db,
		tickInterval: defaultTickInterval,
		shutdown:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}

	if db != nil {
		var record models.CheckoutStateRecord
		err := db.View(func(tx database.Tx) error {
			return tx.Read().Where("id = ?", 1).First(&record).Error
		})
		if err != nil && !gorm.IsRecordNotFoundError(err) {
			return nil, err
		}
		if stage := models.CheckoutStage(record.Stage); stage.Valid() {
			m.stage = stage
			m.txHash = record.TransactionHash
		}
		if m.stage == models.StageTransaction {
			m.startSettlement()
		}
	}
	return m, nil
}

// Stage returns the current checkout stage.
func (m *Machine) Stage() models.CheckoutStage {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	return m.stage
}

// TransactionHash returns the synthesized transaction hash. It is empty
// until the transaction stage completes.
func (m *Machine) TransactionHash() string {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	return m.txHash
}

// Progress returns the simulated settlement progress in percent.
func (m *Machine) Progress() float64 {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	return m.progress
}

// IsWalletConnected returns the mirrored wallet connection signal.
func (m *Machine) IsWalletConnected() bool {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	return m.walletConnected
}

// State returns a snapshot of the machine.
func (m *Machine) State() models.CheckoutState {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	return models.CheckoutState{
		Stage:             m.stage,
		IsWalletConnected: m.walletConnected,
		TransactionHash:   m.txHash,
		Progress:          m.progress,
	}
}

// SetStage requests a transition to the target stage. Out-of-table
// requests return ErrIllegalTransition. Entering the transaction stage
// starts the simulated settlement; re-entering it resets progress to
// zero with no partial state carried over between runs.
func (m *Machine) SetStage(target models.CheckoutStage) error {
	m.mtx.Lock()
	if !target.Valid() {
		m.mtx.Unlock()
		return ErrUnknownStage(target)
	}
	if err := m.checkTransition(target); err != nil {
		m.mtx.Unlock()
		return err
	}
	previous := m.applyStage(target)
	m.mtx.Unlock()

	m.bus.Emit(&events.CheckoutStageChanged{Previous: previous.String(), Current: target.String()})
	return nil
}

// ProceedToCheckout begins the checkout from the cart stage, branching
// on wallet connectivity: straight to shipping when a wallet is already
// connected, otherwise to the wallet-connection stage.
func (m *Machine) ProceedToCheckout() (models.CheckoutStage, error) {
	m.mtx.Lock()
	if m.stage != models.StageCart {
		from := m.stage
		m.mtx.Unlock()
		return from, ErrIllegalTransition{From: from, To: models.StageShipping}
	}
	target := models.StageWalletConnection
	if m.walletConnected {
		target = models.StageShipping
	}
	previous := m.applyStage(target)
	m.mtx.Unlock()

	m.bus.Emit(&events.CheckoutStageChanged{Previous: previous.String(), Current: target.String()})
	return target, nil
}

// SetWalletConnected mirrors the wallet simulator's connection signal.
// A rising signal while the machine sits at the wallet-connection stage
// advances it to shipping synchronously.
func (m *Machine) SetWalletConnected(connected bool) {
	m.mtx.Lock()
	m.walletConnected = connected
	advanced := false
	var previous models.CheckoutStage
	if connected && m.stage == models.StageWalletConnection {
		previous = m.applyStage(models.StageShipping)
		advanced = true
	}
	m.mtx.Unlock()

	if advanced {
		m.bus.Emit(&events.CheckoutStageChanged{
			Previous: previous.String(),
			Current:  models.StageShipping.String(),
		})
	}
}

// ResetCheckout unconditionally returns the machine to the cart stage
// and clears the cart store. Any running settlement is cancelled.
func (m *Machine) ResetCheckout() {
	m.mtx.Lock()
	m.cancelSettlement()
	previous := m.stage
	m.stage = models.StageCart
	m.txHash = ""
	m.progress = 0
	m.persistState()
	m.mtx.Unlock()

	m.cart.Clear()

	m.bus.Emit(&events.CheckoutStageChanged{
		Previous: previous.String(),
		Current:  models.StageCart.String(),
	})
	m.bus.Emit(&events.CheckoutReset{})
}

// Close shuts down the machine and cancels any pending settlement timer.
func (m *Machine) Close() {
	m.closeOnce.Do(func() {
		close(m.shutdown)
	})
}

// checkTransition validates target against the transition table and the
// wallet guard on the two cart exits. Must be called with the lock held.
func (m *Machine) checkTransition(target models.CheckoutStage) error {
	legal := false
	for _, to := range transitions[m.stage] {
		if to == target {
			legal = true
			break
		}
	}
	if legal && m.stage == models.StageCart {
		// The cart exit is gated on wallet connectivity.
		if target == models.StageShipping && !m.walletConnected {
			legal = false
		}
		if target == models.StageWalletConnection && m.walletConnected {
			legal = false
		}
	}
	if !legal {
		return ErrIllegalTransition{From: m.stage, To: target}
	}
	return nil
}

// applyStage performs the stage change and its entry actions, returning
// the previous stage. Must be called with the lock held.
func (m *Machine) applyStage(target models.CheckoutStage) models.CheckoutStage {
	previous := m.stage
	m.stage = target
	if target == models.StageTransaction {
		m.startSettlement()
	}
	m.persistState()
	return previous
}

// startSettlement kicks off the simulated settlement ticker. Any prior
// run is cancelled first so progress always restarts from zero. Must be
// called with the lock held.
func (m *Machine) startSettlement() {
	m.cancelSettlement()
	m.progress = 0
	cancel := make(chan struct{})
	m.settleCancel = cancel
	go m.runSettlement(cancel)
}

// cancelSettlement stops a running settlement ticker, if any. Must be
// called with the lock held.
func (m *Machine) cancelSettlement() {
	if m.settleCancel != nil {
		close(m.settleCancel)
		m.settleCancel = nil
	}
}

// runSettlement advances the simulated progress until it reaches one
// hundred, then synthesizes the transaction hash and performs the
// transaction to confirmation transition exactly once.
func (m *Machine) runSettlement(cancel chan struct{}) {
	ticker := time.NewTicker(m.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.mtx.Lock()
			if m.stage != models.StageTransaction {
				m.mtx.Unlock()
				return
			}
			m.progress += progressIncrement
			if m.progress < 100 {
				progress := m.progress
				m.mtx.Unlock()
				m.bus.Emit(&events.TransactionProgress{Progress: progress})
				continue
			}

			m.progress = 100
			m.txHash = newTransactionHash()
			m.stage = models.StageConfirmation
			m.settleCancel = nil

			completed := &events.TransactionCompleted{
				OrderID:         newOrderID(),
				TransactionHash: m.txHash,
				Total:           m.cart.TotalPrice(),
			}
			m.persistState()
			m.persistOrder(completed.OrderID, completed.TransactionHash, completed.Total)
			m.mtx.Unlock()

			m.cart.Clear()

			m.bus.Emit(&events.CheckoutStageChanged{
				Previous: models.StageTransaction.String(),
				Current:  models.StageConfirmation.String(),
			})
			m.bus.Emit(completed)
			return
		case <-cancel:
			return
		case <-m.shutdown:
			return
		}
	}
}

// persistState snapshots the stage and transaction hash. Must be called
// with the lock held.
func (m *Machine) persistState() {
	if m.db == nil {
		return
	}
	err := m.db.Update(func(tx database.Tx) error {
		return tx.Save(&models.CheckoutStateRecord{
			ID:              1,
			Stage:           m.stage.String(),
			TransactionHash: m.txHash,
		})
	})
	if err != nil {
		log.Errorf("Error saving checkout snapshot: %s", err)
	}
}

// persistOrder records a completed checkout. Must be called with the
// lock held.
func (m *Machine) persistOrder(orderID, txHash string, total float64) {
	if m.db == nil {
		return
	}
	err := m.db.Update(func(tx database.Tx) error {
		return tx.Save(&models.OrderRecord{
			OrderID:         orderID,
			TransactionHash: txHash,
			Total:           total,
			TotalItems:      m.cart.TotalItems(),
			Timestamp:       time.Now(),
		})
	})
	if err != nil {
		log.Errorf("Error saving order record: %s", err)
	}
}

// newTransactionHash synthesizes a hash formatted like an Ethereum
// transaction id. The value carries no cryptographic meaning.
func newTransactionHash() string {
	r := make([]byte, 32)
	rand.Read(r)
	return "0x" + hex.EncodeToString(r)
}

func newOrderID() string {
	r := make([]byte, 10)
	rand.Read(r)
	return hex.EncodeToString(r)
}
