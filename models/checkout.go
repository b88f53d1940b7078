package models

import "time"

// CheckoutStage is one discrete step in the linear checkout sequence.
type CheckoutStage string

const (
	// StageCart is the initial stage where the user reviews line items.
	StageCart CheckoutStage = "cart"

	// StageWalletConnection gates checkout on a connected wallet.
	StageWalletConnection CheckoutStage = "wallet-connection"

	// StageShipping collects the shipping form.
	StageShipping CheckoutStage = "shipping"

	// StagePayment shows the order summary and awaits purchase confirmation.
	StagePayment CheckoutStage = "payment"

	// StageTransaction runs the simulated settlement.
	StageTransaction CheckoutStage = "transaction"

	// StageConfirmation is the terminal stage. Only a reset leaves it.
	StageConfirmation CheckoutStage = "confirmation"
)

// String returns the string representation of the stage.
func (s CheckoutStage) String() string {
	return string(s)
}

// Valid returns whether s is a known checkout stage.
func (s CheckoutStage) Valid() bool {
	switch s {
	case StageCart, StageWalletConnection, StageShipping,
		StagePayment, StageTransaction, StageConfirmation:
		return true
	}
	return false
}

// CheckoutState is a snapshot of the checkout state machine as it
// is served over the API.
type CheckoutState struct {
	Stage             CheckoutStage `json:"stage"`
	IsWalletConnected bool          `json:"isWalletConnected"`
	TransactionHash   string        `json:"transactionHash"`
	Progress          float64       `json:"progress"`
}

// CheckoutStateRecord persists the current stage and transaction hash
// so a restart resumes where the user left off. A single row with ID 1
// is maintained.
type CheckoutStateRecord struct {
	ID              uint   `gorm:"primary_key"`
	Stage           string
	TransactionHash string
}

// OrderRecord is a completed checkout stored in the database.
type OrderRecord struct {
	OrderID         string    `gorm:"primary_key" json:"orderID"`
	TransactionHash string    `json:"transactionHash"`
	Total           float64   `json:"total"`
	TotalItems      int       `json:"totalItems"`
	Timestamp       time.Time `json:"timestamp"`
}
