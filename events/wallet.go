package events

// WalletConnecting fires when a simulated wallet handshake begins.
type WalletConnecting struct {
	Provider string `json:"provider"`
}

// WalletConnected fires once the simulated handshake has fully
// settled. The address is assigned before this event is emitted.
type WalletConnected struct {
	Notification
	Provider string `json:"provider"`
	Address  string `json:"address"`
}

// WalletDisconnected fires when the wallet is disconnected.
type WalletDisconnected struct {
	Notification
}

// WalletConnectionRejected fires when a pending handshake is declined
// by the user. No retry is attempted.
type WalletConnectionRejected struct {
	Notification
	Provider string `json:"provider"`
	Reason   string `json:"reason"`
}
