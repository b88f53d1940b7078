package models

import "time"

// WalletStatus is the simulated wallet connection lifecycle state.
type WalletStatus string

const (
	// WalletDisconnected is the initial state.
	WalletDisconnected WalletStatus = "disconnected"

	// WalletConnecting means a simulated handshake is in flight.
	WalletConnecting WalletStatus = "connecting"

	// WalletSuccessFlash is the brief success display between the
	// handshake completing and the connection settling.
	WalletSuccessFlash WalletStatus = "success-flash"

	// WalletConnected means the wallet is connected and has an address.
	WalletConnected WalletStatus = "connected"
)

// WalletProvider is one of the fixed set of simulated wallet providers.
type WalletProvider struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// WalletInfo is a snapshot of the wallet simulator as served over the API.
type WalletInfo struct {
	Status      WalletStatus `json:"status"`
	IsConnected bool         `json:"isConnected"`
	Address     string       `json:"walletAddress"`
	Provider    string       `json:"selectedWallet"`
	Network     string       `json:"networkName"`
}

// TokenBalance is a mock token holding shown in the wallet view.
type TokenBalance struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Balance  string `json:"balance"`
	USDValue string `json:"usdValue"`
}

// WalletActivity is a mock historical wallet transaction.
type WalletActivity struct {
	Hash      string    `json:"hash"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	Amount    string    `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}
