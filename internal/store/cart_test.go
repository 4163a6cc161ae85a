// internal/store/cart_test.go
package store

import (
	"testing"
	"time"

	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/catalog"
)

func testItem(productID, size, colorName string, qty int) CartItem {
	return CartItem{
		Product:  catalog.Product{ID: productID, Name: "Item " + productID, Price: 1999},
		Quantity: qty,
		Size:     size,
		Color:    catalog.Color{Name: colorName, Hex: "#112233"},
		AddedAt:  time.Now().UTC(),
	}
}

func TestCompositeKeyLowercasesSize(t *testing.T) {
	key := CompositeKey("p1", "M", "Black")
	if key != "p1|m|Black" {
		t.Fatalf("unexpected composite key: %s", key)
	}
}

func TestUpsertNeverDuplicatesKeys(t *testing.T) {
	c := NewCart()

	c.Upsert(testItem("p1", "m", "Black", 2))
	c.Upsert(testItem("p1", "m", "Black", 5))
	c.Upsert(testItem("p1", "l", "Black", 1))
	c.Upsert(testItem("p2", "m", "Black", 1))

	if c.Len() != 3 {
		t.Fatalf("expected 3 distinct keys, got %d", c.Len())
	}

	item, ok := c.Get(CompositeKey("p1", "m", "Black"))
	if !ok {
		t.Fatal("expected item present")
	}
	if item.Quantity != 5 {
		t.Fatalf("expected quantity overwritten to 5, got %d", item.Quantity)
	}
}

func TestUpsertPreservesIdentityFields(t *testing.T) {
	c := NewCart()

	first := testItem("p1", "m", "Black", 1)
	first.ID = "srv-1"
	addedAt := first.AddedAt
	c.Upsert(first)

	update := testItem("p1", "m", "Black", 3)
	update.ID = ""
	update.AddedAt = time.Time{}
	c.Upsert(update)

	item, _ := c.Get(CompositeKey("p1", "m", "Black"))
	if item.ID != "srv-1" {
		t.Fatalf("expected server id preserved, got %q", item.ID)
	}
	if !item.AddedAt.Equal(addedAt) {
		t.Fatal("expected addedAt preserved")
	}
}

func TestPatchQuantity(t *testing.T) {
	c := NewCart()
	item := testItem("p1", "m", "Black", 2)
	item.ID = "srv-1"
	c.Upsert(item)

	if ok := c.PatchQuantity("missing", 4); ok {
		t.Fatal("expected no-op for unknown item id")
	}
	got, _ := c.Get(CompositeKey("p1", "m", "Black"))
	if got.Quantity != 2 {
		t.Fatalf("store mutated by failed patch: quantity %d", got.Quantity)
	}

	if ok := c.PatchQuantity("srv-1", 7); !ok {
		t.Fatal("expected patch to succeed")
	}
	got, _ = c.Get(CompositeKey("p1", "m", "Black"))
	if got.Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", got.Quantity)
	}

	// Clamped to a minimum of 1
	c.PatchQuantity("srv-1", 0)
	got, _ = c.Get(CompositeKey("p1", "m", "Black"))
	if got.Quantity != 1 {
		t.Fatalf("expected quantity clamped to 1, got %d", got.Quantity)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	c := NewCart()
	item := testItem("p1", "m", "Black", 2)
	item.ID = "srv-1"
	c.Upsert(item)

	if _, removed := c.RemoveByKey("p1", "M", "Black"); !removed {
		t.Fatal("expected removal")
	}
	if _, removed := c.RemoveByKey("p1", "M", "Black"); removed {
		t.Fatal("expected second removal to be a no-op")
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty cart, got %d items", c.Len())
	}

	if _, removed := c.RemoveByID("srv-1"); removed {
		t.Fatal("expected removal by id of absent item to be a no-op")
	}
}

func TestReplaceTotalsIsWholesale(t *testing.T) {
	c := NewCart()
	c.ReplaceTotals(Totals{Subtotal: 5000, DiscountAmount: 500, Total: 4500, ItemCount: 2})
	c.ReplaceTotals(Totals{Subtotal: 1000, Total: 1000, ItemCount: 1})

	got := c.Totals()
	if got.DiscountAmount != 0 {
		t.Fatalf("expected discount amount wiped by wholesale replace, got %d", got.DiscountAmount)
	}
	if got.Subtotal != 1000 || got.Total != 1000 || got.ItemCount != 1 {
		t.Fatalf("unexpected totals: %+v", got)
	}
}

func TestConfirmDiscardsStaleResponses(t *testing.T) {
	c := NewCart()
	key := CompositeKey("p1", "m", "Black")

	seq1 := c.Upsert(testItem("p1", "m", "Black", 1))
	seq2 := c.Upsert(testItem("p1", "m", "Black", 2))
	if seq2 <= seq1 {
		t.Fatalf("expected sequence to advance: %d then %d", seq1, seq2)
	}

	if c.Confirm(key, seq1, "stale-id", 111) {
		t.Fatal("expected stale confirmation to be discarded")
	}
	item, _ := c.Get(key)
	if item.ID != "" || item.ItemTotal != 0 {
		t.Fatalf("stale confirmation mutated the item: %+v", item)
	}

	if !c.Confirm(key, seq2, "srv-1", 3998) {
		t.Fatal("expected current confirmation to apply")
	}
	item, _ = c.Get(key)
	if item.ID != "srv-1" || item.ItemTotal != 3998 {
		t.Fatalf("confirmation not applied: %+v", item)
	}
}

func TestConfirmAfterRemovalIsDiscarded(t *testing.T) {
	c := NewCart()
	key := CompositeKey("p1", "m", "Black")

	seq := c.Upsert(testItem("p1", "m", "Black", 1))
	c.RemoveByKey("p1", "m", "Black")

	if c.Confirm(key, seq, "srv-1", 1999) {
		t.Fatal("expected confirmation for removed key to be discarded")
	}
	if c.Len() != 0 {
		t.Fatal("confirmation resurrected a removed item")
	}
}

func TestReplaceAllBumpsSequences(t *testing.T) {
	c := NewCart()
	key := CompositeKey("p1", "m", "Black")
	seq := c.Upsert(testItem("p1", "m", "Black", 1))

	c.ReplaceAll([]CartItem{testItem("p1", "m", "Black", 4)}, Totals{ItemCount: 1})

	if c.Confirm(key, seq, "srv-late", 999) {
		t.Fatal("expected pre-replace confirmation to be stale")
	}
}

func TestItemsOrderedByAddedAt(t *testing.T) {
	c := NewCart()

	older := testItem("p2", "m", "Black", 1)
	older.AddedAt = time.Now().UTC().Add(-time.Hour)
	newer := testItem("p1", "m", "Black", 1)

	c.Upsert(newer)
	c.Upsert(older)

	items := c.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Product.ID != "p2" {
		t.Fatalf("expected oldest item first, got %s", items[0].Product.ID)
	}
}

func TestDiscountSlot(t *testing.T) {
	c := NewCart()
	if c.Discount() != nil {
		t.Fatal("expected no discount initially")
	}

	c.SetDiscount(Discount{Code: "WELCOME10", Type: "coupon", DiscountAmount: 500})
	c.SetDiscount(Discount{Code: "VIP20", Type: "voucher", DiscountAmount: 1000})

	d := c.Discount()
	if d == nil || d.Code != "VIP20" {
		t.Fatalf("expected newest discount to replace prior, got %+v", d)
	}

	c.ClearDiscount()
	c.ClearDiscount()
	if c.Discount() != nil {
		t.Fatal("expected discount cleared")
	}
}
