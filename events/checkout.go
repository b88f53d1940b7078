package events

// Notification is embedded in events that are persisted and surfaced
// to the user as notifications. The ID and Typ fields are filled in
// by the notifier before the event is saved and pushed.
type Notification struct {
	ID  string `json:"notificationID"`
	Typ string `json:"type"`
}

// CartUpdated fires after every cart mutation with the new derived totals.
type CartUpdated struct {
	TotalItems int     `json:"totalItems"`
	TotalPrice float64 `json:"totalPrice"`
}

// CheckoutStageChanged fires on every checkout stage transition.
type CheckoutStageChanged struct {
	Previous string `json:"previous"`
	Current  string `json:"current"`
}

// TransactionProgress fires on each tick of the simulated settlement.
// It is streamed to websockets but not persisted.
type TransactionProgress struct {
	Progress float64 `json:"progress"`
}

// TransactionCompleted fires once when the simulated settlement
// reaches 100% and the checkout enters the confirmation stage.
type TransactionCompleted struct {
	Notification
	OrderID         string  `json:"orderID"`
	TransactionHash string  `json:"transactionHash"`
	Total           float64 `json:"total"`
}

// CheckoutReset fires when the checkout is returned to the cart
// stage and the cart is cleared.
type CheckoutReset struct {
	Notification
}
