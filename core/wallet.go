package core

import (
	"errors"
	"fmt"

	"github.com/genemuffin/genemuffind/core/coreiface"
	"github.com/genemuffin/genemuffind/models"
	"github.com/genemuffin/genemuffind/wallet"
)

// ConnectWallet begins a simulated wallet handshake with the given
// provider.
func (n *GeneMuffinNode) ConnectWallet(providerID string) error {
	err := n.wallet.Connect(providerID)
	if errors.Is(err, wallet.ErrUnknownProvider) {
		return fmt.Errorf("%w: %s", coreiface.ErrNotFound, err)
	} else if err != nil {
		return fmt.Errorf("%w: %s", coreiface.ErrBadRequest, err)
	}
	return nil
}

// DisconnectWallet disconnects the wallet. Disconnecting mid-handshake
// cancels the handshake.
func (n *GeneMuffinNode) DisconnectWallet() {
	n.wallet.Disconnect()
}

// RejectWalletConnection simulates the user rejecting an in-flight
// wallet handshake.
func (n *GeneMuffinNode) RejectWalletConnection(reason string) error {
	if err := n.wallet.Reject(reason); err != nil {
		return fmt.Errorf("%w: %s", coreiface.ErrBadRequest, err)
	}
	return nil
}

// WalletInfo returns a snapshot of the wallet connection state.
func (n *GeneMuffinNode) WalletInfo() models.WalletInfo {
	return n.wallet.Info()
}

// WalletProviders returns the fixed set of simulated wallet providers.
func (n *GeneMuffinNode) WalletProviders() []models.WalletProvider {
	return wallet.Providers
}

// WalletBalances returns the mock token balances of the connected wallet.
func (n *GeneMuffinNode) WalletBalances() ([]models.TokenBalance, error) {
	balances, err := n.wallet.Balances()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", coreiface.ErrBadRequest, err)
	}
	return balances, nil
}

// WalletActivity returns the mock transaction history of the connected
// wallet.
func (n *GeneMuffinNode) WalletActivity() ([]models.WalletActivity, error) {
	activity, err := n.wallet.Activity()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", coreiface.ErrBadRequest, err)
	}
	return activity, nil
}

// WalletMnemonic returns the session mnemonic of the connected wallet
// or the empty string when disconnected.
func (n *GeneMuffinNode) WalletMnemonic() string {
	return n.wallet.Mnemonic()
}
