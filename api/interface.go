package api

import (
	"github.com/genemuffin/genemuffind/events"
	"github.com/genemuffin/genemuffind/models"
)

// CoreIface is used to get around a circular import of the Core package.
type CoreIface interface {
	AddToCart(item models.CartItem)
	UpdateCartQuantity(itemID string, quantity int)
	RemoveFromCart(itemID string)
	ClearCart()
	CartItems() []models.CartItem
	CartTotals() (totalItems int, totalPrice float64)
	CheckoutState() models.CheckoutState
	SetCheckoutStage(stage models.CheckoutStage) error
	ProceedToCheckout() (models.CheckoutStage, error)
	ResetCheckout()
	GetOrders() ([]models.OrderRecord, error)
	ConnectWallet(providerID string) error
	DisconnectWallet()
	RejectWalletConnection(reason string) error
	WalletInfo() models.WalletInfo
	WalletProviders() []models.WalletProvider
	WalletBalances() ([]models.TokenBalance, error)
	WalletActivity() ([]models.WalletActivity, error)
	WalletMnemonic() string
	GetMatches(page, limit int) []models.Profile
	GetMatchByID(id string) (*models.Profile, error)
	GetMyProfile() *models.Profile
	GetNotifications(limit int, offsetID string) ([]models.NotificationRecord, error)
	MarkNotificationAsRead(id string) error
	MarkAllNotificationsAsRead() error
	DeleteNotification(id string) error
	UsingTestData() bool
	SubscribeEvent(event interface{}) (events.Subscription, error)
}
