// internal/backend/types.go
package backend

import (
	"time"

	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/catalog"
	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/store"
)

// AddItemRequest is the payload for adding a cart line
type AddItemRequest struct {
	ProductID     string        `json:"product_id"`
	Quantity      int           `json:"quantity"`
	Size          string        `json:"size"`
	Color         catalog.Color `json:"color"`
	SelectedImage string        `json:"selected_image,omitempty"`
}

// UpdateItemRequest is the payload for updating a cart line
type UpdateItemRequest struct {
	Quantity      int           `json:"quantity"`
	Size          string        `json:"size,omitempty"`
	Color         catalog.Color `json:"color,omitempty"`
	SelectedImage string        `json:"selected_image,omitempty"`
}

// ItemPayload is a persisted cart line as the backend returns it. The
// product arrives duck-typed and is normalized by the caller.
type ItemPayload struct {
	ID            string                 `json:"id"`
	Product       map[string]interface{} `json:"product"`
	Quantity      int                    `json:"quantity"`
	Size          string                 `json:"size"`
	Color         catalog.Color          `json:"color"`
	SelectedImage string                 `json:"selected_image"`
	ItemTotal     int64                  `json:"item_total"`
	AddedAt       time.Time              `json:"added_at"`
}

// DiscountPayload is the active discount as the backend returns it
type DiscountPayload struct {
	Code           string `json:"code"`
	Type           string `json:"type"`
	DiscountAmount int64  `json:"discount_amount"`
}

// CartPayload is the full cart as the backend returns it
type CartPayload struct {
	Items    []ItemPayload    `json:"items"`
	Totals   store.Totals     `json:"totals"`
	Discount *DiscountPayload `json:"discount,omitempty"`
}

// ValidationResult is the outcome of a read-only cart validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}

// ToggleResult reports which way a wishlist toggle resolved server-side
type ToggleResult struct {
	Action string `json:"action"` // "added" or "removed"
}

// WishlistEntryPayload is a persisted wishlist entry
type WishlistEntryPayload struct {
	ProductID      string                 `json:"product_id"`
	Product        map[string]interface{} `json:"product"`
	PriceWhenAdded int64                  `json:"price_when_added"`
	AddedAt        time.Time              `json:"added_at"`
}

// WishlistPayload is the full wishlist as the backend returns it
type WishlistPayload struct {
	Items []WishlistEntryPayload `json:"items"`
	Count int                    `json:"count"`
}
