package wallet

import (
	"time"

	"github.com/genemuffin/genemuffind/models"
)

// Providers is the fixed set of simulated wallet providers offered in
// the connection dialog.
var Providers = []models.WalletProvider{
	{
		ID:   "metamask",
		Name: "MetaMask",
		Logo: "https://upload.wikimedia.org/wikipedia/commons/3/36/MetaMask_Fox.svg",
	},
	{
		ID:   "wallet-connect",
		Name: "WalletConnect",
		Logo: "https://avatars.githubusercontent.com/u/37784886",
	},
	{
		ID:   "coinbase",
		Name: "Coinbase Wallet",
		Logo: "https://seeklogo.com/images/C/coinbase-coin-logo-C86F46D7B8-seeklogo.com.png",
	},
}

// mockBalances are the token holdings shown once a wallet is connected.
// The values are fixed demo content.
var mockBalances = []models.TokenBalance{
	{Symbol: "ETH", Name: "Ethereum", Balance: "1.234", USDValue: "$2,345.67"},
	{Symbol: "GENE", Name: "GeneMuffin", Balance: "420.69", USDValue: "$126.21"},
	{Symbol: "USDC", Name: "USD Coin", Balance: "250.00", USDValue: "$250.00"},
}

// mockActivity is the fixed demo transaction history.
var mockActivity = []models.WalletActivity{
	{
		Hash:      "0x3f8e7a9b5c6d4e2f1a0b9c8d7e6f5a4b3c2d1e0f9a8b7c6d5e4f3a2b1c0d9e8f",
		Type:      "Transfer",
		Status:    "Confirmed",
		Amount:    "0.25 ETH",
		Timestamp: time.Now().Add(-time.Hour * 2),
	},
	{
		Hash:      "0x2a1b3c4d5e6f7a8b9c0d1e2f3a4b5c6d7e8f9a0b1c2d3e4f5a6b7c8d9e0f1a2b",
		Type:      "Swap",
		Status:    "Confirmed",
		Amount:    "100 GENE → 0.05 ETH",
		Timestamp: time.Now().Add(-time.Hour * 24),
	},
}

func providerByID(id string) (models.WalletProvider, bool) {
	for _, p := range Providers {
		if p.ID == id {
			return p, true
		}
	}
	return models.WalletProvider{}, false
}
