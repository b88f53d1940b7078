package core

import (
	"fmt"

	"github.com/genemuffin/genemuffind/core/coreiface"
	"github.com/genemuffin/genemuffind/database"
	"github.com/genemuffin/genemuffind/models"
)

// CheckoutState returns a snapshot of the checkout state machine.
func (n *GeneMuffinNode) CheckoutState() models.CheckoutState {
	return n.checkout.State()
}

// SetCheckoutStage moves the checkout to the given stage if the
// transition is legal.
func (n *GeneMuffinNode) SetCheckoutStage(stage models.CheckoutStage) error {
	if err := n.checkout.SetStage(stage); err != nil {
		return fmt.Errorf("%w: %s", coreiface.ErrBadRequest, err)
	}
	return nil
}

// ProceedToCheckout begins the checkout from the cart stage and returns
// the stage the machine landed on.
func (n *GeneMuffinNode) ProceedToCheckout() (models.CheckoutStage, error) {
	stage, err := n.checkout.ProceedToCheckout()
	if err != nil {
		return stage, fmt.Errorf("%w: %s", coreiface.ErrBadRequest, err)
	}
	return stage, nil
}

// ResetCheckout returns the checkout to the cart stage and clears
// the cart.
func (n *GeneMuffinNode) ResetCheckout() {
	n.checkout.ResetCheckout()
}

// GetOrders returns the completed orders, newest first.
func (n *GeneMuffinNode) GetOrders() ([]models.OrderRecord, error) {
	var orders []models.OrderRecord
	err := n.repo.DB().View(func(tx database.Tx) error {
		return tx.Read().Order("timestamp desc").Find(&orders).Error
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", coreiface.ErrInternalServer, err)
	}
	return orders, nil
}
