package cart

import (
	"testing"

	"github.com/genemuffin/genemuffind/events"
	"github.com/genemuffin/genemuffind/models/factory"
	"github.com/genemuffin/genemuffind/repo"
)

func newTestStore(t *testing.T) *Store {
	store, err := NewStore(events.NewBus(), nil)
	if err != nil {
		t.Fatal(err)
	}
	return store
}

func checkTotals(t *testing.T, store *Store) {
	var (
		expectedItems int
		expectedPrice float64
	)
	for _, item := range store.Items() {
		expectedItems += item.Quantity
		expectedPrice += item.Price * float64(item.Quantity)
	}
	if store.TotalItems() != expectedItems {
		t.Errorf("Incorrect total items. Expected %d, got %d", expectedItems, store.TotalItems())
	}
	if store.TotalPrice() != expectedPrice {
		t.Errorf("Incorrect total price. Expected %f, got %f", expectedPrice, store.TotalPrice())
	}
}

func TestStore_AddItemMerges(t *testing.T) {
	store := newTestStore(t)

	store.AddItem(factory.NewCartItem("dna-test-kit"))
	store.AddItem(factory.NewCartItem("dna-test-kit"))

	items := store.Items()
	if len(items) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Errorf("Expected quantity 2, got %d", items[0].Quantity)
	}
	checkTotals(t, store)
}

func TestStore_AddItemDefaultsQuantity(t *testing.T) {
	store := newTestStore(t)

	item := factory.NewCartItem("dna-test-kit")
	item.Quantity = 0
	store.AddItem(item)

	items := store.Items()
	if len(items) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(items))
	}
	if items[0].Quantity != 1 {
		t.Errorf("Expected quantity 1, got %d", items[0].Quantity)
	}
}

func TestStore_InsertionOrderPreserved(t *testing.T) {
	store := newTestStore(t)

	store.AddItem(factory.NewCartItem("dna-test-kit"))
	store.AddItem(factory.NewDataListingItem("gene-data-1"))
	store.AddItem(factory.NewCartItem("dna-test-kit"))

	items := store.Items()
	if len(items) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(items))
	}
	if items[0].ID != "dna-test-kit" || items[1].ID != "gene-data-1" {
		t.Errorf("Rows out of order: %s, %s", items[0].ID, items[1].ID)
	}
}

func TestStore_UpdateQuantity(t *testing.T) {
	store := newTestStore(t)

	store.AddItem(factory.NewCartItem("dna-test-kit"))
	store.UpdateQuantity("dna-test-kit", 5)

	items := store.Items()
	if items[0].Quantity != 5 {
		t.Errorf("Expected quantity 5, got %d", items[0].Quantity)
	}
	checkTotals(t, store)

	// Zero quantity removes the row.
	store.UpdateQuantity("dna-test-kit", 0)
	if len(store.Items()) != 0 {
		t.Errorf("Expected 0 rows, got %d", len(store.Items()))
	}

	// Absent ID is a silent no-op.
	store.UpdateQuantity("does-not-exist", 3)
	if len(store.Items()) != 0 {
		t.Errorf("Expected 0 rows, got %d", len(store.Items()))
	}
}

func TestStore_RemoveItem(t *testing.T) {
	store := newTestStore(t)

	store.AddItem(factory.NewCartItem("dna-test-kit"))
	store.AddItem(factory.NewDataListingItem("gene-data-1"))

	store.RemoveItem("dna-test-kit")
	items := store.Items()
	if len(items) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(items))
	}
	if items[0].ID != "gene-data-1" {
		t.Errorf("Wrong row removed. Got %s", items[0].ID)
	}

	// Removing an absent ID is a no-op.
	store.RemoveItem("dna-test-kit")
	if len(store.Items()) != 1 {
		t.Errorf("Expected 1 row, got %d", len(store.Items()))
	}
	checkTotals(t, store)
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)

	store.AddItem(factory.NewCartItem("dna-test-kit"))
	store.AddItem(factory.NewDataListingItem("gene-data-1"))
	store.Clear()

	if len(store.Items()) != 0 {
		t.Errorf("Expected 0 rows, got %d", len(store.Items()))
	}
	if store.TotalItems() != 0 {
		t.Errorf("Expected 0 total items, got %d", store.TotalItems())
	}
	if store.TotalPrice() != 0 {
		t.Errorf("Expected 0 total price, got %f", store.TotalPrice())
	}
}

func TestStore_TotalsAfterEveryMutation(t *testing.T) {
	store := newTestStore(t)

	mutations := []func(){
		func() { store.AddItem(factory.NewCartItem("dna-test-kit")) },
		func() { store.AddItem(factory.NewDataListingItem("gene-data-1")) },
		func() { store.UpdateQuantity("dna-test-kit", 3) },
		func() { store.AddItem(factory.NewCartItem("dna-test-kit")) },
		func() { store.RemoveItem("gene-data-1") },
		func() { store.UpdateQuantity("dna-test-kit", 0) },
	}
	for i, mutate := range mutations {
		mutate()
		var (
			expectedItems int
			expectedPrice float64
		)
		for _, item := range store.Items() {
			expectedItems += item.Quantity
			expectedPrice += item.Price * float64(item.Quantity)
		}
		if store.TotalItems() != expectedItems || store.TotalPrice() != expectedPrice {
			t.Errorf("Totals out of sync after mutation %d", i)
		}
	}
}

func TestStore_ReloadFromDatabase(t *testing.T) {
	db, err := repo.MockDB()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	store, err := NewStore(events.NewBus(), db)
	if err != nil {
		t.Fatal(err)
	}
	store.AddItem(factory.NewCartItem("dna-test-kit"))
	store.AddItem(factory.NewDataListingItem("gene-data-1"))
	store.UpdateQuantity("dna-test-kit", 3)

	// A store built over the same database starts with the persisted rows.
	reloaded, err := NewStore(events.NewBus(), db)
	if err != nil {
		t.Fatal(err)
	}
	items := reloaded.Items()
	if len(items) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(items))
	}
	if items[0].ID != "dna-test-kit" || items[1].ID != "gene-data-1" {
		t.Errorf("Rows out of order: %s, %s", items[0].ID, items[1].ID)
	}
	if items[0].Quantity != 3 {
		t.Errorf("Expected quantity 3, got %d", items[0].Quantity)
	}
	if reloaded.TotalItems() != 4 {
		t.Errorf("Expected 4 total items, got %d", reloaded.TotalItems())
	}
	checkTotals(t, reloaded)

	store.Clear()
	reloaded2, err := NewStore(events.NewBus(), db)
	if err != nil {
		t.Fatal(err)
	}
	if len(reloaded2.Items()) != 0 {
		t.Errorf("Expected 0 rows, got %d", len(reloaded2.Items()))
	}
}

func TestStore_EmitsCartUpdated(t *testing.T) {
	bus := events.NewBus()
	store, err := NewStore(bus, nil)
	if err != nil {
		t.Fatal(err)
	}

	sub, err := bus.Subscribe(&events.CartUpdated{})
	if err != nil {
		t.Fatal(err)
	}
	defer sub.Close()

	store.AddItem(factory.NewCartItem("dna-test-kit"))

	event := <-sub.Out()
	update, ok := event.(*events.CartUpdated)
	if !ok {
		t.Fatal("Event is wrong type")
	}
	if update.TotalItems != 1 {
		t.Errorf("Expected 1 total item, got %d", update.TotalItems)
	}
	if update.TotalPrice != 0.05 {
		t.Errorf("Expected total price 0.05, got %f", update.TotalPrice)
	}
}
