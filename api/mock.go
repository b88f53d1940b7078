package api

import (
	"github.com/genemuffin/genemuffind/events"
	"github.com/genemuffin/genemuffind/models"
)

type mockNode struct {
	addToCartFunc                  func(item models.CartItem)
	updateCartQuantityFunc         func(itemID string, quantity int)
	removeFromCartFunc             func(itemID string)
	clearCartFunc                  func()
	cartItemsFunc                  func() []models.CartItem
	cartTotalsFunc                 func() (int, float64)
	checkoutStateFunc              func() models.CheckoutState
	setCheckoutStageFunc           func(stage models.CheckoutStage) error
	proceedToCheckoutFunc          func() (models.CheckoutStage, error)
	resetCheckoutFunc              func()
	getOrdersFunc                  func() ([]models.OrderRecord, error)
	connectWalletFunc              func(providerID string) error
	disconnectWalletFunc           func()
	rejectWalletConnectionFunc     func(reason string) error
	walletInfoFunc                 func() models.WalletInfo
	walletProvidersFunc            func() []models.WalletProvider
	walletBalancesFunc             func() ([]models.TokenBalance, error)
	walletActivityFunc             func() ([]models.WalletActivity, error)
	walletMnemonicFunc             func() string
	getMatchesFunc                 func(page, limit int) []models.Profile
	getMatchByIDFunc               func(id string) (*models.Profile, error)
	getMyProfileFunc               func() *models.Profile
	getNotificationsFunc           func(limit int, offsetID string) ([]models.NotificationRecord, error)
	markNotificationAsReadFunc     func(id string) error
	markAllNotificationsAsReadFunc func() error
	deleteNotificationFunc         func(id string) error
	usingTestDataFunc              func() bool
	subscribeEventFunc             func(event interface{}) (events.Subscription, error)
}

func (m *mockNode) AddToCart(item models.CartItem) {
	m.addToCartFunc(item)
}
func (m *mockNode) UpdateCartQuantity(itemID string, quantity int) {
	m.updateCartQuantityFunc(itemID, quantity)
}
func (m *mockNode) RemoveFromCart(itemID string) {
	m.removeFromCartFunc(itemID)
}
func (m *mockNode) ClearCart() {
	m.clearCartFunc()
}
func (m *mockNode) CartItems() []models.CartItem {
	return m.cartItemsFunc()
}
func (m *mockNode) CartTotals() (int, float64) {
	return m.cartTotalsFunc()
}
func (m *mockNode) CheckoutState() models.CheckoutState {
	return m.checkoutStateFunc()
}
func (m *mockNode) SetCheckoutStage(stage models.CheckoutStage) error {
	return m.setCheckoutStageFunc(stage)
}
func (m *mockNode) ProceedToCheckout() (models.CheckoutStage, error) {
	return m.proceedToCheckoutFunc()
}
func (m *mockNode) ResetCheckout() {
	m.resetCheckoutFunc()
}
func (m *mockNode) GetOrders() ([]models.OrderRecord, error) {
	return m.getOrdersFunc()
}
func (m *mockNode) ConnectWallet(providerID string) error {
	return m.connectWalletFunc(providerID)
}
func (m *mockNode) DisconnectWallet() {
	m.disconnectWalletFunc()
}
func (m *mockNode) RejectWalletConnection(reason string) error {
	return m.rejectWalletConnectionFunc(reason)
}
func (m *mockNode) WalletInfo() models.WalletInfo {
	return m.walletInfoFunc()
}
func (m *mockNode) WalletProviders() []models.WalletProvider {
	return m.walletProvidersFunc()
}
func (m *mockNode) WalletBalances() ([]models.TokenBalance, error) {
	return m.walletBalancesFunc()
}
func (m *mockNode) WalletActivity() ([]models.WalletActivity, error) {
	return m.walletActivityFunc()
}
func (m *mockNode) WalletMnemonic() string {
	return m.walletMnemonicFunc()
}
func (m *mockNode) GetMatches(page, limit int) []models.Profile {
	return m.getMatchesFunc(page, limit)
}
func (m *mockNode) GetMatchByID(id string) (*models.Profile, error) {
	return m.getMatchByIDFunc(id)
}
func (m *mockNode) GetMyProfile() *models.Profile {
	return m.getMyProfileFunc()
}
func (m *mockNode) GetNotifications(limit int, offsetID string) ([]models.NotificationRecord, error) {
	return m.getNotificationsFunc(limit, offsetID)
}
func (m *mockNode) MarkNotificationAsRead(id string) error {
	return m.markNotificationAsReadFunc(id)
}
func (m *mockNode) MarkAllNotificationsAsRead() error {
	return m.markAllNotificationsAsReadFunc()
}
func (m *mockNode) DeleteNotification(id string) error {
	return m.deleteNotificationFunc(id)
}
func (m *mockNode) UsingTestData() bool {
	return m.usingTestDataFunc()
}
func (m *mockNode) SubscribeEvent(event interface{}) (events.Subscription, error) {
	return m.subscribeEventFunc(event)
}
