package cart

import (
	"errors"
	"testing"

	"github.com/qin-coder/ecommerce-multivendor/models"
	"golang.org/x/sync/errgroup"
)

func newTestEngine() (*Engine, *memStore) {
	store := newMemStore()
	store.addProduct(models.Product{ID: 1, Title: "Denim Jacket", MrpPrice: 100, SellingPrice: 80, Sizes: "S,M,L"})
	store.addProduct(models.Product{ID: 2, Title: "Canvas Tote", MrpPrice: 50, SellingPrice: 50})
	return NewEngine(store), store
}

// checkTotals recomputes the aggregates from the stored items and compares
// them against the cart row, so every test doubles as a drift check.
func checkTotals(t *testing.T, store *memStore, userID uint) {
	t.Helper()

	cart, err := store.CartByUser(userID)
	if err != nil {
		t.Fatalf("CartByUser failed: %v", err)
	}
	items, err := store.ItemsByCart(cart.ID)
	if err != nil {
		t.Fatalf("ItemsByCart failed: %v", err)
	}

	mrp, selling, count := 0, 0, 0
	for _, item := range items {
		mrp += item.MrpPrice
		selling += item.SellingPrice
		count += item.Quantity
	}
	if cart.TotalMrpPrice != mrp || cart.TotalSellingPrice != selling || cart.TotalItems != count {
		t.Fatalf("stored aggregates drifted: cart=(%d,%d,%d) recomputed=(%d,%d,%d)",
			cart.TotalMrpPrice, cart.TotalSellingPrice, cart.TotalItems, mrp, selling, count)
	}
	if want := DiscountPercentage(mrp, selling); cart.DiscountedPrice != want {
		t.Fatalf("discountedPrice=%d, want %d", cart.DiscountedPrice, want)
	}
}

func TestAddItemCreatesCartAndItem(t *testing.T) {
	engine, store := newTestEngine()

	item, err := engine.AddItem(7, 1, "M", 2)
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if item.Quantity != 2 || item.MrpPrice != 200 || item.SellingPrice != 160 {
		t.Fatalf("unexpected item: qty=%d mrp=%d selling=%d", item.Quantity, item.MrpPrice, item.SellingPrice)
	}
	if item.UserID != 7 {
		t.Fatalf("item owner=%d, want 7", item.UserID)
	}

	cart, err := store.CartByUser(7)
	if err != nil {
		t.Fatalf("cart was not created: %v", err)
	}
	if cart.TotalItems != 2 || cart.TotalMrpPrice != 200 || cart.TotalSellingPrice != 160 || cart.DiscountedPrice != 20 {
		t.Fatalf("unexpected totals: %+v", cart)
	}
	checkTotals(t, store, 7)
}

func TestAddItemMergesSameProductAndSize(t *testing.T) {
	engine, store := newTestEngine()

	if _, err := engine.AddItem(7, 1, "M", 2); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	item, err := engine.AddItem(7, 1, "M", 3)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	if item.Quantity != 5 || item.MrpPrice != 500 || item.SellingPrice != 400 {
		t.Fatalf("merge produced qty=%d mrp=%d selling=%d, want 5/500/400", item.Quantity, item.MrpPrice, item.SellingPrice)
	}

	cart, _ := store.CartByUser(7)
	items, _ := store.ItemsByCart(cart.ID)
	if len(items) != 1 {
		t.Fatalf("expected exactly 1 line item, got %d", len(items))
	}
	if cart.TotalItems != 5 || cart.TotalMrpPrice != 500 || cart.TotalSellingPrice != 400 || cart.DiscountedPrice != 20 {
		t.Fatalf("unexpected totals after merge: %+v", cart)
	}
}

func TestAddItemDifferentSizeCreatesSeparateItem(t *testing.T) {
	engine, store := newTestEngine()

	if _, err := engine.AddItem(7, 1, "M", 1); err != nil {
		t.Fatalf("add M failed: %v", err)
	}
	// case-sensitive match: "m" is not "M"
	if _, err := engine.AddItem(7, 1, "m", 1); err != nil {
		t.Fatalf("add m failed: %v", err)
	}

	cart, _ := store.CartByUser(7)
	items, _ := store.ItemsByCart(cart.ID)
	if len(items) != 2 {
		t.Fatalf("expected 2 line items for distinct sizes, got %d", len(items))
	}
	checkTotals(t, store, 7)
}

func TestAddItemRejectsBadInput(t *testing.T) {
	engine, _ := newTestEngine()

	if _, err := engine.AddItem(7, 1, "M", 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("qty=0: got %v, want ErrInvalidQuantity", err)
	}
	if _, err := engine.AddItem(7, 1, "M", -3); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("qty=-3: got %v, want ErrInvalidQuantity", err)
	}
	if _, err := engine.AddItem(7, 999, "M", 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("unknown product: got %v, want ErrProductNotFound", err)
	}
}

func TestUpdateItemRepricesFromCurrentCatalog(t *testing.T) {
	engine, store := newTestEngine()

	item, err := engine.AddItem(7, 1, "M", 2)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// catalog price changes between add and update
	store.addProduct(models.Product{ID: 1, Title: "Denim Jacket", MrpPrice: 120, SellingPrice: 90})

	updated, err := engine.UpdateItem(7, item.ID, 3)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Quantity != 3 || updated.MrpPrice != 360 || updated.SellingPrice != 270 {
		t.Fatalf("update did not reprice: qty=%d mrp=%d selling=%d", updated.Quantity, updated.MrpPrice, updated.SellingPrice)
	}
	checkTotals(t, store, 7)
}

func TestUpdateItemZeroQuantityIsNoOp(t *testing.T) {
	engine, store := newTestEngine()

	item, err := engine.AddItem(7, 1, "M", 2)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if _, err := engine.UpdateItem(7, item.ID, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("got %v, want ErrInvalidQuantity", err)
	}

	// the item must still exist, untouched
	got, err := store.ItemByID(item.ID)
	if err != nil {
		t.Fatalf("item was deleted by a zero-quantity update")
	}
	if got.Quantity != 2 || got.MrpPrice != 200 || got.SellingPrice != 160 {
		t.Fatalf("item mutated by a zero-quantity update: %+v", got)
	}
	checkTotals(t, store, 7)
}

func TestUpdateAndDeleteRequireOwnership(t *testing.T) {
	engine, store := newTestEngine()

	item, err := engine.AddItem(7, 1, "M", 2)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if _, err := engine.UpdateItem(8, item.ID, 5); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("update by stranger: got %v, want ErrNotAuthorized", err)
	}
	if err := engine.DeleteItem(8, item.ID); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("delete by stranger: got %v, want ErrNotAuthorized", err)
	}

	got, err := store.ItemByID(item.ID)
	if err != nil || got.Quantity != 2 {
		t.Fatalf("item changed by unauthorized request: %+v err=%v", got, err)
	}
}

func TestDeleteItemRecalculatesTotals(t *testing.T) {
	engine, store := newTestEngine()

	first, err := engine.AddItem(7, 1, "M", 2)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := engine.AddItem(7, 2, "", 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := engine.DeleteItem(7, first.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	cart, _ := store.CartByUser(7)
	if cart.TotalItems != 1 || cart.TotalMrpPrice != 50 || cart.TotalSellingPrice != 50 || cart.DiscountedPrice != 0 {
		t.Fatalf("totals not refreshed after delete: %+v", cart)
	}

	if err := engine.DeleteItem(7, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete of missing item: got %v, want ErrNotFound", err)
	}
}

func TestDeleteLastItemEmptiesCartButKeepsRow(t *testing.T) {
	engine, store := newTestEngine()

	item, err := engine.AddItem(7, 1, "M", 2)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := engine.DeleteItem(7, item.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	cart, err := store.CartByUser(7)
	if err != nil {
		t.Fatalf("cart row disappeared after last delete: %v", err)
	}
	if cart.TotalItems != 0 || cart.TotalMrpPrice != 0 || cart.TotalSellingPrice != 0 || cart.DiscountedPrice != 0 {
		t.Fatalf("empty cart carries non-zero aggregates: %+v", cart)
	}
}

func TestCartSnapshotAbsentCart(t *testing.T) {
	engine, store := newTestEngine()

	view, err := engine.CartSnapshot(42)
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if view.TotalItems != 0 || view.TotalMrpPrice != 0 || view.TotalSellingPrice != 0 || view.DiscountedPrice != 0 {
		t.Fatalf("absent cart view has non-zero aggregates: %+v", view)
	}
	if len(view.CartItems) != 0 {
		t.Fatalf("absent cart view has items: %+v", view.CartItems)
	}

	// reading must not create a cart row
	if _, err := store.CartByUser(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("snapshot persisted a cart as a side effect")
	}
}

func TestCartSnapshotPopulated(t *testing.T) {
	engine, _ := newTestEngine()

	if _, err := engine.AddItem(7, 1, "M", 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	view, err := engine.CartSnapshot(7)
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if len(view.CartItems) != 1 {
		t.Fatalf("expected 1 item in view, got %d", len(view.CartItems))
	}
	item := view.CartItems[0]
	if item.MrpPrice != 200 || item.SellingPrice != 160 {
		t.Fatalf("view item carries wrong extended prices: %+v", item)
	}
	if item.Product == nil || item.Product.Title != "Denim Jacket" || item.Product.MrpPrice != 100 {
		t.Fatalf("view item missing product details: %+v", item.Product)
	}
	if view.DiscountedPrice != 20 {
		t.Fatalf("discountedPrice=%d, want 20", view.DiscountedPrice)
	}
}

func TestConcurrentAddsKeepInvariants(t *testing.T) {
	engine, store := newTestEngine()

	const n = 50
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			_, err := engine.AddItem(7, 1, "M", 1)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent adds failed: %v", err)
	}

	cart, err := store.CartByUser(7)
	if err != nil {
		t.Fatalf("cart missing after concurrent adds: %v", err)
	}
	items, _ := store.ItemsByCart(cart.ID)
	if len(items) != 1 {
		t.Fatalf("concurrent adds duplicated the line item: %d items", len(items))
	}
	if items[0].Quantity != n {
		t.Fatalf("lost update: quantity=%d, want %d", items[0].Quantity, n)
	}
	checkTotals(t, store, 7)
}

// Snapshots taken while mutations are committing must still be internally
// consistent: the aggregates a view reports have to match the item list it
// carries, whatever intermediate state the reads raced against.
func TestSnapshotNeverTornUnderConcurrentAdds(t *testing.T) {
	engine, _ := newTestEngine()

	if _, err := engine.AddItem(7, 1, "M", 1); err != nil {
		t.Fatalf("seed add failed: %v", err)
	}

	const writes = 200
	var g errgroup.Group
	g.Go(func() error {
		for i := 0; i < writes; i++ {
			if _, err := engine.AddItem(7, 1, "M", 1); err != nil {
				return err
			}
			if _, err := engine.AddItem(7, 2, "", 1); err != nil {
				return err
			}
		}
		return nil
	})
	for r := 0; r < 4; r++ {
		g.Go(func() error {
			for i := 0; i < writes; i++ {
				view, err := engine.CartSnapshot(7)
				if err != nil {
					return err
				}
				mrp, selling, count := 0, 0, 0
				for _, item := range view.CartItems {
					mrp += item.MrpPrice
					selling += item.SellingPrice
					count += item.Quantity
				}
				if view.TotalMrpPrice != mrp || view.TotalSellingPrice != selling || view.TotalItems != count {
					t.Errorf("torn snapshot: view=(%d,%d,%d) items sum to (%d,%d,%d)",
						view.TotalMrpPrice, view.TotalSellingPrice, view.TotalItems, mrp, selling, count)
				}
				if want := DiscountPercentage(mrp, selling); view.DiscountedPrice != want {
					t.Errorf("torn snapshot: discountedPrice=%d, items imply %d", view.DiscountedPrice, want)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent snapshot run failed: %v", err)
	}
}
