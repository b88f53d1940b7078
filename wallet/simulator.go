package wallet

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/genemuffin/genemuffind/events"
	"github.com/genemuffin/genemuffind/models"
	"github.com/op/go-logging"
	"github.com/tyler-smith/go-bip39"
)

var log = logging.MustGetLogger("WALT")

const (
	// defaultConnectDelay is how long the simulated handshake takes.
	defaultConnectDelay = time.Millisecond * 1500

	// defaultFlashDelay is how long the success flash is displayed
	// before the connection settles.
	defaultFlashDelay = time.Millisecond * 2000

	// networkName is the nominal network label. No real network exists.
	networkName = "Ethereum"
)

var (
	// ErrUnknownProvider is returned when connecting with a provider id
	// that is not in the registry.
	ErrUnknownProvider = errors.New("unknown wallet provider")

	// ErrHandshakePending is returned when Connect is called while a
	// simulated handshake is already in flight. A second handshake is
	// never started.
	ErrHandshakePending = errors.New("wallet handshake pending")

	// ErrAlreadyConnected is returned when Connect is called on a
	// connected wallet.
	ErrAlreadyConnected = errors.New("wallet already connected")

	// ErrNotConnected is returned when wallet data is requested while
	// disconnected.
	ErrNotConnected = errors.New("wallet not connected")
)

// Simulator fakes an external wallet handshake. No SDK, key material,
// or network is involved; the lifecycle is driven entirely by timers
// and the address is random hex.
//
// Both client apps historically carried their own copy of this flow.
// This is the single shared implementation.
type Simulator struct {
	mtx      sync.Mutex
	status   models.WalletStatus
	provider string
	address  string
	mnemonic string

	bus events.Bus

	connectDelay time.Duration
	flashDelay   time.Duration

	onConnectionChanged func(bool)

	handshakeCancel chan struct{}
	shutdown        chan struct{}
	closeOnce       sync.Once
}

// Option customizes the simulator construction.
type Option func(*Simulator)

// ConnectDelay overrides the simulated handshake duration. Useful in tests.
func ConnectDelay(d time.Duration) Option {
	return func(s *Simulator) {
		s.connectDelay = d
	}
}

// FlashDelay overrides the success flash duration. Useful in tests.
func FlashDelay(d time.Duration) Option {
	return func(s *Simulator) {
		s.flashDelay = d
	}
}

// NewSimulator returns a new wallet simulator in the disconnected state.
func NewSimulator(bus events.Bus, opts ...Option) *Simulator {
	s := &Simulator{
		status:       models.WalletDisconnected,
		bus:          bus,
		connectDelay: defaultConnectDelay,
		flashDelay:   defaultFlashDelay,
		shutdown:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnConnectionChanged registers the hook that mirrors the connected
// signal into the checkout machine. The hook is invoked synchronously
// after the address has been assigned, so a subscriber reading the
// checkout's wallet flag never observes a connected wallet without an
// address.
func (s *Simulator) OnConnectionChanged(fn func(connected bool)) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.onConnectionChanged = fn
}

// Connect begins a simulated handshake with the given provider. The
// wallet moves to connecting immediately, to the success flash after
// the handshake delay, and settles at connected after the flash delay.
func (s *Simulator) Connect(providerID string) error {
	if _, ok := providerByID(providerID); !ok {
		return ErrUnknownProvider
	}

	s.mtx.Lock()
	switch s.status {
	case models.WalletConnecting, models.WalletSuccessFlash:
		s.mtx.Unlock()
		return ErrHandshakePending
	case models.WalletConnected:
		s.mtx.Unlock()
		return ErrAlreadyConnected
	}

	s.status = models.WalletConnecting
	s.provider = providerID
	cancel := make(chan struct{})
	s.handshakeCancel = cancel
	s.mtx.Unlock()

	s.bus.Emit(&events.WalletConnecting{Provider: providerID})

	go s.runHandshake(providerID, cancel)
	return nil
}

// runHandshake drives the timed portion of the connect flow. A cancel
// or shutdown at any point abandons the handshake without touching
// state; Disconnect and Reject perform their own cleanup.
func (s *Simulator) runHandshake(providerID string, cancel chan struct{}) {
	select {
	case <-time.After(s.connectDelay):
	case <-cancel:
		return
	case <-s.shutdown:
		return
	}

	s.mtx.Lock()
	if s.status != models.WalletConnecting {
		s.mtx.Unlock()
		return
	}
	s.status = models.WalletSuccessFlash
	s.address = newWalletAddress()
	s.mnemonic = newSessionMnemonic()
	s.mtx.Unlock()

	select {
	case <-time.After(s.flashDelay):
	case <-cancel:
		return
	case <-s.shutdown:
		return
	}

	s.mtx.Lock()
	if s.status != models.WalletSuccessFlash {
		s.mtx.Unlock()
		return
	}
	s.status = models.WalletConnected
	s.handshakeCancel = nil
	address := s.address
	hook := s.onConnectionChanged
	s.mtx.Unlock()

	if hook != nil {
		hook(true)
	}
	s.bus.Emit(&events.WalletConnected{Provider: providerID, Address: address})
}

// Reject declines a pending handshake, returning the wallet to the
// disconnected state. No retry is attempted.
func (s *Simulator) Reject(reason string) error {
	s.mtx.Lock()
	if s.status != models.WalletConnecting && s.status != models.WalletSuccessFlash {
		s.mtx.Unlock()
		return ErrNotConnected
	}
	provider := s.provider
	s.reset()
	s.mtx.Unlock()

	log.Warningf("Wallet connection to %s rejected: %s", provider, reason)
	s.bus.Emit(&events.WalletConnectionRejected{Provider: provider, Reason: reason})
	return nil
}

// Disconnect resets all wallet fields immediately, cancels any pending
// handshake timers, and propagates the lowered connection signal.
func (s *Simulator) Disconnect() {
	s.mtx.Lock()
	wasConnected := s.status == models.WalletConnected
	s.reset()
	hook := s.onConnectionChanged
	s.mtx.Unlock()

	if hook != nil {
		hook(false)
	}
	if wasConnected {
		s.bus.Emit(&events.WalletDisconnected{})
	}
}

// reset clears all fields and cancels a pending handshake. Must be
// called with the lock held.
func (s *Simulator) reset() {
	if s.handshakeCancel != nil {
		close(s.handshakeCancel)
		s.handshakeCancel = nil
	}
	s.status = models.WalletDisconnected
	s.provider = ""
	s.address = ""
	s.mnemonic = ""
}

// Close shuts down the simulator and cancels any pending timers.
func (s *Simulator) Close() {
	s.closeOnce.Do(func() {
		close(s.shutdown)
	})
}

// IsConnected returns whether the wallet has fully settled at
// connected. It is never true mid-handshake.
func (s *Simulator) IsConnected() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.status == models.WalletConnected
}

// Status returns the current lifecycle state.
func (s *Simulator) Status() models.WalletStatus {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.status
}

// Address returns the synthetic wallet address, or empty when not
// connected.
func (s *Simulator) Address() string {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.status != models.WalletConnected {
		return ""
	}
	return s.address
}

// Provider returns the selected provider id, or empty when none is
// selected.
func (s *Simulator) Provider() string {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.provider
}

// Mnemonic returns the display-only session mnemonic, or empty when
// not connected.
func (s *Simulator) Mnemonic() string {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.status != models.WalletConnected {
		return ""
	}
	return s.mnemonic
}

// Info returns a snapshot of the simulator.
func (s *Simulator) Info() models.WalletInfo {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	info := models.WalletInfo{
		Status:      s.status,
		IsConnected: s.status == models.WalletConnected,
		Provider:    s.provider,
		Network:     networkName,
	}
	if s.status == models.WalletConnected {
		info.Address = s.address
	}
	return info
}

// Balances returns the mock token holdings.
func (s *Simulator) Balances() ([]models.TokenBalance, error) {
	if !s.IsConnected() {
		return nil, ErrNotConnected
	}
	balances := make([]models.TokenBalance, len(mockBalances))
	copy(balances, mockBalances)
	return balances, nil
}

// Activity returns the mock transaction history.
func (s *Simulator) Activity() ([]models.WalletActivity, error) {
	if !s.IsConnected() {
		return nil, ErrNotConnected
	}
	activity := make([]models.WalletActivity, len(mockActivity))
	copy(activity, mockActivity)
	return activity, nil
}

// newWalletAddress synthesizes an address formatted like an Ethereum
// account. The value carries no cryptographic meaning.
func newWalletAddress() string {
	r := make([]byte, 20)
	rand.Read(r)
	return "0x" + hex.EncodeToString(r)
}

// newSessionMnemonic generates a display-only mnemonic for the wallet
// view. It is regenerated per session and never derives keys.
func newSessionMnemonic() string {
	entropy, err := bip39.NewEntropy(128)
	if err != nil {
		return ""
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return ""
	}
	return mnemonic
}
