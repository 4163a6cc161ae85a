// internal/store/wishlist_test.go
package store

import (
	"testing"
	"time"

	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/catalog"
)

func testEntry(productID string) WishlistEntry {
	return WishlistEntry{
		ProductID:      productID,
		Product:        catalog.Product{ID: productID, Name: "Item " + productID, Price: 2499},
		PriceWhenAdded: 2499,
		AddedAt:        time.Now().UTC(),
	}
}

func TestWishlistUpsertKeyedByProduct(t *testing.T) {
	w := NewWishlist()

	w.Upsert(testEntry("p1"))
	w.Upsert(testEntry("p1"))
	w.Upsert(testEntry("p2"))

	if w.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", w.Len())
	}
	if !w.Contains("p1") || !w.Contains("p2") {
		t.Fatal("expected both products present")
	}
}

func TestWishlistUpsertPreservesAddedAt(t *testing.T) {
	w := NewWishlist()

	first := testEntry("p1")
	addedAt := first.AddedAt
	w.Upsert(first)

	update := testEntry("p1")
	update.AddedAt = time.Time{}
	update.PriceWhenAdded = 1999
	w.Upsert(update)

	entry, ok := w.Get("p1")
	if !ok {
		t.Fatal("expected entry present")
	}
	if !entry.AddedAt.Equal(addedAt) {
		t.Fatal("expected original addedAt preserved")
	}
	if entry.PriceWhenAdded != 1999 {
		t.Fatalf("expected snapshot price replaced, got %d", entry.PriceWhenAdded)
	}
}

func TestWishlistRemoveIdempotent(t *testing.T) {
	w := NewWishlist()
	w.Upsert(testEntry("p1"))

	removed, ok := w.Remove("p1")
	if !ok || removed.ProductID != "p1" {
		t.Fatalf("expected removal to return the entry, got %+v ok=%v", removed, ok)
	}
	if _, ok := w.Remove("p1"); ok {
		t.Fatal("expected second removal to be a no-op")
	}
	if w.Contains("p1") {
		t.Fatal("expected entry gone")
	}
}

func TestWishlistReplaceAll(t *testing.T) {
	w := NewWishlist()
	w.Upsert(testEntry("p1"))
	w.Upsert(testEntry("p2"))

	w.ReplaceAll([]WishlistEntry{testEntry("p3")})

	if w.Len() != 1 || !w.Contains("p3") {
		t.Fatalf("expected snapshot to replace the collection, got %d entries", w.Len())
	}
}

func TestWishlistEntriesOrdered(t *testing.T) {
	w := NewWishlist()

	older := testEntry("p2")
	older.AddedAt = time.Now().UTC().Add(-time.Hour)
	w.Upsert(testEntry("p1"))
	w.Upsert(older)

	entries := w.Entries()
	if len(entries) != 2 || entries[0].ProductID != "p2" {
		t.Fatalf("expected oldest entry first, got %+v", entries)
	}
}
