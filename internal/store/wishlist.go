// internal/store/wishlist.go
package store

import (
	"sort"
	"sync"
	"time"

	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/catalog"
)

// WishlistEntry represents one saved product. The product snapshot and
// priceWhenAdded are captured at add time and not live-updated.
type WishlistEntry struct {
	ProductID      string          `json:"product_id"`
	Product        catalog.Product `json:"product"`
	PriceWhenAdded int64           `json:"price_when_added"`
	AddedAt        time.Time       `json:"added_at"`
}

// Wishlist is the normalized in-memory wishlist collection, keyed by
// product id. At most one entry per product.
type Wishlist struct {
	mu      sync.RWMutex
	entries map[string]WishlistEntry
}

// NewWishlist creates an empty wishlist store
func NewWishlist() *Wishlist {
	return &Wishlist{
		entries: make(map[string]WishlistEntry),
	}
}

// Upsert inserts or replaces the entry for its product id
func (w *Wishlist) Upsert(entry WishlistEntry) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if existing, ok := w.entries[entry.ProductID]; ok && entry.AddedAt.IsZero() {
		entry.AddedAt = existing.AddedAt
	}
	if entry.AddedAt.IsZero() {
		entry.AddedAt = time.Now().UTC()
	}
	w.entries[entry.ProductID] = entry
}

// Remove deletes the entry for the product id. Removing an absent entry is
// not an error; the removed entry is returned for rollback use.
func (w *Wishlist) Remove(productID string) (WishlistEntry, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	entry, ok := w.entries[productID]
	if !ok {
		return WishlistEntry{}, false
	}
	delete(w.entries, productID)
	return entry, true
}

// Contains reports whether the product is in the wishlist
func (w *Wishlist) Contains(productID string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.entries[productID]
	return ok
}

// Get returns the entry for the product id
func (w *Wishlist) Get(productID string) (WishlistEntry, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	entry, ok := w.entries[productID]
	return entry, ok
}

// ReplaceAll replaces the whole collection with a server snapshot
func (w *Wishlist) ReplaceAll(entries []WishlistEntry) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.entries = make(map[string]WishlistEntry, len(entries))
	for _, entry := range entries {
		w.entries[entry.ProductID] = entry
	}
}

// Entries returns all entries ordered by the time they were added
func (w *Wishlist) Entries() []WishlistEntry {
	w.mu.RLock()
	defer w.mu.RUnlock()

	entries := make([]WishlistEntry, 0, len(w.entries))
	for _, entry := range w.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].AddedAt.Equal(entries[j].AddedAt) {
			return entries[i].ProductID < entries[j].ProductID
		}
		return entries[i].AddedAt.Before(entries[j].AddedAt)
	})
	return entries
}

// Len returns the number of saved products
func (w *Wishlist) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.entries)
}
