package cart

import (
	"sync"

	"github.com/genemuffin/genemuffind/database"
	"github.com/genemuffin/genemuffind/events"
	"github.com/genemuffin/genemuffind/models"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("CART")

// Store holds the cart line items for the running application. There is
// one store per process. All mutation is synchronous; derived totals are
// computed under the same lock as the mutation so they can never be
// observed stale after a mutation returns.
//
// If a database is provided the line items are snapshotted on every
// mutation and reloaded on construction.
type Store struct {
	mtx   sync.RWMutex
	items []models.CartItem
	bus   events.Bus
	db    database.Database
}

// NewStore returns a new cart store. The bus may not be nil. The db may
// be nil, in which case the cart lives only in memory.
func NewStore(bus events.Bus, db database.Database) (*Store, error) {
	s := &Store{bus: bus, db: db}
	if db != nil {
		var records []models.CartItemRecord
		err := db.View(func(tx database.Tx) error {
			return tx.Read().Order("position asc").Find(&records).Error
		})
		if err != nil {
			return nil, err
		}
		for _, rec := range records {
			s.items = append(s.items, rec.CartItem())
		}
	}
	return s, nil
}

// AddItem adds the item to the cart. If an item with the same ID already
// exists its quantity is incremented by the added quantity (default 1)
// rather than a duplicate row being appended. AddItem always succeeds.
func (s *Store) AddItem(item models.CartItem) {
	s.mtx.Lock()
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	merged := false
	for i, existing := range s.items {
		if existing.ID == item.ID {
			s.items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, item)
	}
	s.persist()
	totalItems, totalPrice := s.totals()
	s.mtx.Unlock()

	s.bus.Emit(&events.CartUpdated{TotalItems: totalItems, TotalPrice: totalPrice})
}

// UpdateQuantity sets the quantity for the item with the given ID. A
// quantity of zero or below removes the item entirely. Updating an
// absent ID is a silent no-op.
func (s *Store) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(id)
		return
	}

	s.mtx.Lock()
	found := false
	for i, existing := range s.items {
		if existing.ID == id {
			s.items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		s.mtx.Unlock()
		return
	}
	s.persist()
	totalItems, totalPrice := s.totals()
	s.mtx.Unlock()

	s.bus.Emit(&events.CartUpdated{TotalItems: totalItems, TotalPrice: totalPrice})
}

// RemoveItem deletes the row with the given ID if present; no-op otherwise.
func (s *Store) RemoveItem(id string) {
	s.mtx.Lock()
	found := false
	for i, existing := range s.items {
		if existing.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		s.mtx.Unlock()
		return
	}
	s.persist()
	totalItems, totalPrice := s.totals()
	s.mtx.Unlock()

	s.bus.Emit(&events.CartUpdated{TotalItems: totalItems, TotalPrice: totalPrice})
}

// Clear empties the item list.
func (s *Store) Clear() {
	s.mtx.Lock()
	s.items = nil
	s.persist()
	s.mtx.Unlock()

	s.bus.Emit(&events.CartUpdated{})
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []models.CartItem {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// TotalItems returns the sum of the quantities of all line items.
func (s *Store) TotalItems() int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	totalItems, _ := s.totals()
	return totalItems
}

// TotalPrice returns the sum of price times quantity over all line items.
func (s *Store) TotalPrice() float64 {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	_, totalPrice := s.totals()
	return totalPrice
}

func (s *Store) totals() (int, float64) {
	var (
		totalItems int
		totalPrice float64
	)
	for _, item := range s.items {
		totalItems += item.Quantity
		totalPrice += item.Price * float64(item.Quantity)
	}
	return totalItems, totalPrice
}

// persist snapshots the line items to the database. Must be called with
// the lock held.
func (s *Store) persist() {
	if s.db == nil {
		return
	}
	err := s.db.Update(func(tx database.Tx) error {
		if err := tx.Read().Delete(&models.CartItemRecord{}).Error; err != nil {
			return err
		}
		for i, item := range s.items {
			if err := tx.Save(models.NewCartItemRecord(item, i)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Errorf("Error saving cart snapshot: %s", err)
	}
}
