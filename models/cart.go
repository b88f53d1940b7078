package models

// CartItem is a single line item in the cart. The ID identifies the
// purchasable (product or data listing) and is unique within the cart.
// The image is an opaque reference used only for display purposes.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
	Currency string  `json:"currency"`
}

// CartItemRecord is the database representation of a cart line item.
// The position field preserves insertion order across restarts.
type CartItemRecord struct {
	ItemID   string  `gorm:"primary_key" json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
	Currency string  `json:"currency"`
	Position int     `json:"position"`
}

// CartItem converts the record back into a CartItem.
func (r *CartItemRecord) CartItem() CartItem {
	return CartItem{
		ID:       r.ItemID,
		Name:     r.Name,
		Price:    r.Price,
		Quantity: r.Quantity,
		Image:    r.Image,
		Currency: r.Currency,
	}
}

// NewCartItemRecord builds a record for the given item at the given position.
func NewCartItemRecord(item CartItem, position int) *CartItemRecord {
	return &CartItemRecord{
		ItemID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: item.Quantity,
		Image:    item.Image,
		Currency: item.Currency,
		Position: position,
	}
}
