package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/genemuffin/genemuffind/core/coreiface"
	"github.com/genemuffin/genemuffind/models"
)

func TestWalletHandlers(t *testing.T) {
	providers := []models.WalletProvider{
		{ID: "metamask", Name: "MetaMask", Logo: "🦊"},
		{ID: "wallet-connect", Name: "WalletConnect", Logo: "🔗"},
		{ID: "coinbase", Name: "Coinbase Wallet", Logo: "🔵"},
	}
	connected := models.WalletInfo{
		Status:      models.WalletConnected,
		IsConnected: true,
		Address:     "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
		Provider:    "metamask",
		Network:     "Ethereum Mainnet",
	}

	runAPITests(t, apiTests{
		{
			name:   "Get wallet providers",
			path:   "/v1/wallet/providers",
			method: http.MethodGet,
			setNodeMethods: func(n *mockNode) {
				n.walletProvidersFunc = func() []models.WalletProvider {
					return providers
				}
			},
			statusCode: http.StatusOK,
			expectedResponse: func() ([]byte, error) {
				return marshalAndSanitizeJSON(providers)
			},
		},
		{
			name:   "Get wallet info",
			path:   "/v1/wallet/info",
			method: http.MethodGet,
			setNodeMethods: func(n *mockNode) {
				n.walletInfoFunc = func() models.WalletInfo {
					return connected
				}
			},
			statusCode: http.StatusOK,
			expectedResponse: func() ([]byte, error) {
				return marshalAndSanitizeJSON(&connected)
			},
		},
		{
			name:   "Post connect wallet",
			path:   "/v1/wallet/connect/metamask",
			method: http.MethodPost,
			setNodeMethods: func(n *mockNode) {
				n.connectWalletFunc = func(providerID string) error {
					if providerID != "metamask" {
						t.Errorf("Expected providerID metamask, got %s", providerID)
					}
					return nil
				}
				n.walletInfoFunc = func() models.WalletInfo {
					return connected
				}
			},
			statusCode: http.StatusOK,
			expectedResponse: func() ([]byte, error) {
				return marshalAndSanitizeJSON(&connected)
			},
		},
		{
			name:   "Post connect wallet unknown provider",
			path:   "/v1/wallet/connect/ledger",
			method: http.MethodPost,
			setNodeMethods: func(n *mockNode) {
				n.connectWalletFunc = func(providerID string) error {
					return fmt.Errorf("%w: error", coreiface.ErrNotFound)
				}
			},
			statusCode: http.StatusNotFound,
			expectedResponse: func() ([]byte, error) {
				return []byte(fmt.Sprintf("%s\n", `{"error": "not found: error"}`)), nil
			},
		},
		{
			name:   "Post connect wallet while connecting",
			path:   "/v1/wallet/connect/metamask",
			method: http.MethodPost,
			setNodeMethods: func(n *mockNode) {
				n.connectWalletFunc = func(providerID string) error {
					return fmt.Errorf("%w: error", coreiface.ErrBadRequest)
				}
			},
			statusCode: http.StatusBadRequest,
			expectedResponse: func() ([]byte, error) {
				return []byte(fmt.Sprintf("%s\n", `{"error": "bad request: error"}`)), nil
			},
		},
		{
			name:   "Post disconnect wallet",
			path:   "/v1/wallet/disconnect",
			method: http.MethodPost,
			setNodeMethods: func(n *mockNode) {
				n.disconnectWalletFunc = func() {}
				n.walletInfoFunc = func() models.WalletInfo {
					return models.WalletInfo{Status: models.WalletDisconnected}
				}
			},
			statusCode: http.StatusOK,
			expectedResponse: func() ([]byte, error) {
				return marshalAndSanitizeJSON(&models.WalletInfo{Status: models.WalletDisconnected})
			},
		},
		{
			name:   "Post reject wallet connection",
			path:   "/v1/wallet/reject",
			method: http.MethodPost,
			body:   []byte(`{"reason": "user closed the modal"}`),
			setNodeMethods: func(n *mockNode) {
				n.rejectWalletConnectionFunc = func(reason string) error {
					if reason != "user closed the modal" {
						t.Errorf("Expected rejection reason, got %s", reason)
					}
					return nil
				}
				n.walletInfoFunc = func() models.WalletInfo {
					return models.WalletInfo{Status: models.WalletDisconnected}
				}
			},
			statusCode: http.StatusOK,
			expectedResponse: func() ([]byte, error) {
				return marshalAndSanitizeJSON(&models.WalletInfo{Status: models.WalletDisconnected})
			},
		},
		{
			name:   "Post reject wallet connection while idle",
			path:   "/v1/wallet/reject",
			method: http.MethodPost,
			body:   []byte(`{"reason": "user closed the modal"}`),
			setNodeMethods: func(n *mockNode) {
				n.rejectWalletConnectionFunc = func(reason string) error {
					return fmt.Errorf("%w: error", coreiface.ErrBadRequest)
				}
			},
			statusCode: http.StatusBadRequest,
			expectedResponse: func() ([]byte, error) {
				return []byte(fmt.Sprintf("%s\n", `{"error": "bad request: error"}`)), nil
			},
		},
		{
			name:   "Get wallet balances",
			path:   "/v1/wallet/balances",
			method: http.MethodGet,
			setNodeMethods: func(n *mockNode) {
				n.walletBalancesFunc = func() ([]models.TokenBalance, error) {
					return []models.TokenBalance{
						{Symbol: "ETH", Name: "Ethereum", Balance: "2.4581", USDValue: "8,126.43"},
					}, nil
				}
			},
			statusCode: http.StatusOK,
			expectedResponse: func() ([]byte, error) {
				return marshalAndSanitizeJSON([]models.TokenBalance{
					{Symbol: "ETH", Name: "Ethereum", Balance: "2.4581", USDValue: "8,126.43"},
				})
			},
		},
		{
			name:   "Get wallet balances while disconnected",
			path:   "/v1/wallet/balances",
			method: http.MethodGet,
			setNodeMethods: func(n *mockNode) {
				n.walletBalancesFunc = func() ([]models.TokenBalance, error) {
					return nil, fmt.Errorf("%w: error", coreiface.ErrBadRequest)
				}
			},
			statusCode: http.StatusBadRequest,
			expectedResponse: func() ([]byte, error) {
				return []byte(fmt.Sprintf("%s\n", `{"error": "bad request: error"}`)), nil
			},
		},
		{
			name:   "Get wallet activity",
			path:   "/v1/wallet/activity",
			method: http.MethodGet,
			setNodeMethods: func(n *mockNode) {
				n.walletActivityFunc = func() ([]models.WalletActivity, error) {
					return []models.WalletActivity{
						{
							Hash:      "0xabc",
							Type:      "purchase",
							Status:    "confirmed",
							Amount:    "0.05 ETH",
							Timestamp: time.Unix(100000, 0).UTC(),
						},
					}, nil
				}
			},
			statusCode: http.StatusOK,
			expectedResponse: func() ([]byte, error) {
				return marshalAndSanitizeJSON([]models.WalletActivity{
					{
						Hash:      "0xabc",
						Type:      "purchase",
						Status:    "confirmed",
						Amount:    "0.05 ETH",
						Timestamp: time.Unix(100000, 0).UTC(),
					},
				})
			},
		},
		{
			name:   "Get wallet mnemonic",
			path:   "/v1/wallet/mnemonic",
			method: http.MethodGet,
			setNodeMethods: func(n *mockNode) {
				n.walletMnemonicFunc = func() string {
					return "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
				}
			},
			statusCode: http.StatusOK,
			expectedResponse: func() ([]byte, error) {
				return marshalAndSanitizeJSON(struct {
					Mnemonic string `json:"mnemonic"`
				}{"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"})
			},
		},
		{
			name:   "Get wallet mnemonic while disconnected",
			path:   "/v1/wallet/mnemonic",
			method: http.MethodGet,
			setNodeMethods: func(n *mockNode) {
				n.walletMnemonicFunc = func() string {
					return ""
				}
			},
			statusCode: http.StatusBadRequest,
			expectedResponse: func() ([]byte, error) {
				return []byte(fmt.Sprintf("%s\n", `{"error": "wallet not connected"}`)), nil
			},
		},
	})
}
