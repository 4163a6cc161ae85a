// internal/store/cart.go
package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/catalog"
)

// CartItem represents one purchasable configuration of a product in the
// cart. The server-assigned ID is empty until the first successful
// persistence; before that the item is matched by its composite key.
type CartItem struct {
	ID            string          `json:"id,omitempty"`
	Product       catalog.Product `json:"product"`
	Quantity      int             `json:"quantity"`
	Size          string          `json:"size"` // lowercased
	Color         catalog.Color   `json:"color"`
	SelectedImage string          `json:"selected_image"`
	AddedAt       time.Time       `json:"added_at"`
	ItemTotal     int64           `json:"item_total"` // server-authoritative once confirmed
}

// Key returns the item's canonical composite key
func (i CartItem) Key() string {
	return CompositeKey(i.Product.ID, i.Size, i.Color.Name)
}

// CompositeKey builds the canonical composite key for a cart line:
// productID|size|colorName, with the size lowercased. At most one item
// exists per key; the map encoding makes the uniqueness invariant
// structural rather than conventional.
func CompositeKey(productID, size, colorName string) string {
	return productID + "|" + strings.ToLower(size) + "|" + colorName
}

// Totals is the server-computed cart aggregate. Replaced wholesale on every
// successful response so client arithmetic can never drift from the server.
type Totals struct {
	Subtotal       int64 `json:"subtotal"`
	DiscountAmount int64 `json:"discount_amount"`
	Total          int64 `json:"total"`
	ItemCount      int   `json:"item_count"`
}

// Discount is the at-most-one active discount on a cart
type Discount struct {
	Code           string `json:"code"`
	Type           string `json:"type"` // coupon or voucher
	DiscountAmount int64  `json:"discount_amount"`
}

// Cart is the normalized in-memory cart collection. It holds the
// authoritative client-side copy of line items and derived totals; the only
// writer is the owning synchronization controller, readers are unrestricted.
//
// Every optimistic mutation bumps a per-key sequence number. Server
// confirmations captured before the bump are stale and get discarded, which
// is the chosen policy for out-of-order responses on the same key.
type Cart struct {
	mu       sync.RWMutex
	items    map[string]CartItem
	seq      map[string]uint64
	totals   Totals
	discount *Discount
}

// NewCart creates an empty cart store
func NewCart() *Cart {
	return &Cart{
		items: make(map[string]CartItem),
		seq:   make(map[string]uint64),
	}
}

// Upsert inserts the item if its composite key is absent, otherwise merges
// on top of the existing entry: identity fields established earlier (server
// id, added-at) are preserved unless the incoming item carries its own.
// Returns the key's new sequence number. Never creates duplicate keys.
func (c *Cart) Upsert(item CartItem) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := item.Key()
	if existing, ok := c.items[key]; ok {
		if item.ID == "" {
			item.ID = existing.ID
		}
		if item.AddedAt.IsZero() {
			item.AddedAt = existing.AddedAt
		}
		if item.ItemTotal == 0 {
			item.ItemTotal = existing.ItemTotal
		}
	}
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now().UTC()
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	c.items[key] = item
	c.seq[key]++
	return c.seq[key]
}

// Seq returns the current sequence number for a composite key
func (c *Cart) Seq(key string) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.seq[key]
}

// Confirm applies a server confirmation (persisted id, authoritative line
// total) to the item at key, provided the key's sequence number still
// matches the one captured when the mutation was applied. Stale
// confirmations are discarded and Confirm returns false.
func (c *Cart) Confirm(key string, seq uint64, id string, itemTotal int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.seq[key] != seq {
		return false
	}
	item, ok := c.items[key]
	if !ok {
		return false
	}

	if id != "" {
		item.ID = id
	}
	if itemTotal != 0 {
		item.ItemTotal = itemTotal
	}
	c.items[key] = item
	return true
}

// PatchQuantity sets the quantity of the item with the given server id,
// clamped to a minimum of 1. Returns false (and leaves the store unchanged)
// if no item carries that id.
func (c *Cart) PatchQuantity(itemID string, quantity int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, item := range c.items {
		if item.ID == itemID && itemID != "" {
			if quantity < 1 {
				quantity = 1
			}
			item.Quantity = quantity
			c.items[key] = item
			c.seq[key]++
			return true
		}
	}
	return false
}

// Get returns the item at the composite key
func (c *Cart) Get(key string) (CartItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[key]
	return item, ok
}

// FindByID returns the item with the given server id
func (c *Cart) FindByID(itemID string) (CartItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if itemID == "" {
		return CartItem{}, false
	}
	for _, item := range c.items {
		if item.ID == itemID {
			return item, true
		}
	}
	return CartItem{}, false
}

// RemoveByKey removes the item at (productID, size, colorName). Removing an
// absent entry is not an error; the returned bool reports whether anything
// was removed, and the removed item is returned for rollback use.
func (c *Cart) RemoveByKey(productID, size, colorName string) (CartItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := CompositeKey(productID, size, colorName)
	item, ok := c.items[key]
	if !ok {
		return CartItem{}, false
	}
	delete(c.items, key)
	c.seq[key]++
	return item, true
}

// RemoveByID removes the item with the given server id. Idempotent.
func (c *Cart) RemoveByID(itemID string) (CartItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if itemID == "" {
		return CartItem{}, false
	}
	for key, item := range c.items {
		if item.ID == itemID {
			delete(c.items, key)
			c.seq[key]++
			return item, true
		}
	}
	return CartItem{}, false
}

// ReplaceAll replaces the whole collection and totals with a server
// snapshot. Used by full refetch reconciliation; sequence numbers are
// bumped for every touched key so in-flight confirmations go stale.
func (c *Cart) ReplaceAll(items []CartItem, totals Totals) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.items {
		c.seq[key]++
	}
	c.items = make(map[string]CartItem, len(items))
	for _, item := range items {
		if item.Size != strings.ToLower(item.Size) {
			item.Size = strings.ToLower(item.Size)
		}
		key := item.Key()
		c.items[key] = item
		c.seq[key]++
	}
	c.totals = totals
}

// ReplaceTotals replaces the totals wholesale. No partial merge.
func (c *Cart) ReplaceTotals(totals Totals) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.totals = totals
}

// Totals returns the current server-derived totals
func (c *Cart) Totals() Totals {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.totals
}

// SetDiscount records the single active discount
func (c *Cart) SetDiscount(d Discount) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.discount = &d
}

// ClearDiscount drops the active discount. Idempotent.
func (c *Cart) ClearDiscount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.discount = nil
}

// Discount returns the active discount, or nil
func (c *Cart) Discount() *Discount {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.discount == nil {
		return nil
	}
	d := *c.discount
	return &d
}

// Items returns all line items ordered by the time they were added
func (c *Cart) Items() []CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]CartItem, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].AddedAt.Equal(items[j].AddedAt) {
			return items[i].Key() < items[j].Key()
		}
		return items[i].AddedAt.Before(items[j].AddedAt)
	})
	return items
}

// Len returns the number of distinct line items
func (c *Cart) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
