package coreiface

import (
	"github.com/genemuffin/genemuffind/events"
	"github.com/genemuffin/genemuffind/models"
)

// CoreIface enumerates the interface of the GeneMuffinNode object in the Core
// package. We primarily use this to get around circular imports though it
// should serve as the API contract for the Core package.
type CoreIface interface {
	// Cart
	AddToCart(item models.CartItem)
	UpdateCartQuantity(itemID string, quantity int)
	RemoveFromCart(itemID string)
	ClearCart()
	CartItems() []models.CartItem
	CartTotals() (totalItems int, totalPrice float64)

	// Checkout
	CheckoutState() models.CheckoutState
	SetCheckoutStage(stage models.CheckoutStage) error
	ProceedToCheckout() (models.CheckoutStage, error)
	ResetCheckout()
	GetOrders() ([]models.OrderRecord, error)

	// Wallet
	ConnectWallet(providerID string) error
	DisconnectWallet()
	RejectWalletConnection(reason string) error
	WalletInfo() models.WalletInfo
	WalletProviders() []models.WalletProvider
	WalletBalances() ([]models.TokenBalance, error)
	WalletActivity() ([]models.WalletActivity, error)
	WalletMnemonic() string

	// Profiles
	GetMatches(page, limit int) []models.Profile
	GetMatchByID(id string) (*models.Profile, error)
	GetMyProfile() *models.Profile

	// Notifications
	GetNotifications(limit int, offsetID string) ([]models.NotificationRecord, error)
	MarkNotificationAsRead(id string) error
	MarkAllNotificationsAsRead() error
	DeleteNotification(id string) error

	// Misc
	UsingTestData() bool
	SubscribeEvent(event interface{}) (events.Subscription, error)
}
