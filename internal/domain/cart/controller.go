// internal/domain/cart/controller.go
package cart

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/backend"
	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/catalog"
	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/notify"
	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/pkg/faults"
	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/pkg/opstate"
	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/pkg/optimistic"
	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/session"
	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/store"
)

// API is the slice of the backend contract the cart controller depends on
type API interface {
	AddCartItem(ctx context.Context, creds session.Credentials, req backend.AddItemRequest) (*backend.ItemPayload, error)
	UpdateCartItem(ctx context.Context, creds session.Credentials, itemID string, req backend.UpdateItemRequest) (*backend.ItemPayload, error)
	RemoveCartItem(ctx context.Context, creds session.Credentials, productID, size, colorName string) error
	GetCart(ctx context.Context, creds session.Credentials) (*backend.CartPayload, error)
	ClearCart(ctx context.Context, creds session.Credentials) error
	ValidateCart(ctx context.Context, creds session.Credentials) (*backend.ValidationResult, error)
	MergeCart(ctx context.Context, creds session.Credentials, guestSessionID string) error
	ApplyDiscount(ctx context.Context, creds session.Credentials, code, discountType string) (*backend.CartPayload, error)
	RemoveDiscount(ctx context.Context, creds session.Credentials, discountType string) (*backend.CartPayload, error)
}

// Result reports how a mutating operation resolved. Local rejections
// (validation, not-found) and remote failures are both returned here, never
// panicked or thrown past the caller.
type Result struct {
	OK  bool
	Err error
}

// MergeResult reports the outcome of a guest-cart merge
type MergeResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Controller orchestrates the optimistic-apply / remote-call /
// reconcile-or-rollback sequence for every cart mutation. It exclusively
// owns its store; views read through it but never write.
type Controller struct {
	api       API
	store     *store.Cart
	sessions  session.Store
	clientKey string
	notifier  *notify.Emitter
	ops       *opstate.Tracker
	log       *logrus.Entry
}

// NewController creates a cart controller bound to one browser session
func NewController(api API, cartStore *store.Cart, sessions session.Store, clientKey string, notifier *notify.Emitter, log *logrus.Logger) *Controller {
	return &Controller{
		api:       api,
		store:     cartStore,
		sessions:  sessions,
		clientKey: clientKey,
		notifier:  notifier,
		ops:       opstate.NewTracker(),
		log:       log.WithField("component", "cart").WithField("session", clientKey),
	}
}

// AddItem optimistically inserts a line item, then persists it. A second
// add with an identical composite key sums quantities and coalesces into
// one upsert plus one backend call. On remote failure the optimistic
// mutation is rolled back exactly.
func (c *Controller) AddItem(ctx context.Context, creds session.Credentials, product catalog.Product, quantity int, colorName, size, image string) Result {
	if product.ID == "" {
		err := faults.Validationf("product id is required")
		return Result{Err: err}
	}

	if quantity < 1 {
		quantity = 1
	}
	size = strings.ToLower(size)
	color := catalog.ResolveColor(product, colorName)
	if image == "" {
		image = product.PrimaryImage()
	}

	done := c.ops.Begin(opstate.OpAdd)

	prev, existed := c.store.Get(store.CompositeKey(product.ID, size, color.Name))
	target := quantity
	if existed {
		target = prev.Quantity + quantity
	}

	item := store.CartItem{
		Product:       product,
		Quantity:      target,
		Size:          size,
		Color:         color,
		SelectedImage: image,
		AddedAt:       time.Now().UTC(),
	}
	if existed {
		item.ID = prev.ID
		item.AddedAt = prev.AddedAt
	}
	key := item.Key()

	var seq uint64
	err := optimistic.Run(ctx, optimistic.Txn{
		Apply: func() {
			seq = c.store.Upsert(item)
		},
		Remote: func(ctx context.Context) error {
			payload, err := c.api.AddCartItem(ctx, creds, backend.AddItemRequest{
				ProductID:     product.ID,
				Quantity:      target,
				Size:          size,
				Color:         color,
				SelectedImage: image,
			})
			if err != nil {
				return faults.Remotef(err, "failed to add %s to cart", product.Name)
			}
			// Accept the server id and line total unless a later mutation
			// on this key already superseded the optimistic apply.
			c.store.Confirm(key, seq, payload.ID, payload.ItemTotal)
			return nil
		},
		OnSuccess: func() {
			c.notifier.Emit(fmt.Sprintf("%s added to cart", product.Name), notify.Success)
		},
		Rollback: func() {
			if existed {
				c.store.Upsert(prev)
			} else {
				c.store.RemoveByKey(product.ID, size, color.Name)
			}
			c.notifier.Emit(fmt.Sprintf("Failed to add %s to cart", product.Name), notify.Error)
		},
	})

	done(err)
	if err != nil {
		c.log.WithError(err).Warn("add item failed, rolled back")
		return Result{Err: err}
	}
	return Result{OK: true}
}

// UpdateQuantity optimistically patches a line's quantity, then persists
// it. Fails fast without touching the store when the item id is unknown.
// On remote failure the controller refetches instead of reverting, because
// partial rollback of quantity deltas is unsafe under rapid changes.
func (c *Controller) UpdateQuantity(ctx context.Context, creds session.Credentials, itemID string, quantity int) Result {
	item, ok := c.store.FindByID(itemID)
	if !ok {
		return Result{Err: faults.NotFoundf("cart item %s not found", itemID)}
	}

	if quantity < 1 {
		quantity = 1
	}

	done := c.ops.Begin(opstate.OpUpdate)
	err := optimistic.Run(ctx, optimistic.Txn{
		Apply: func() {
			c.store.PatchQuantity(itemID, quantity)
		},
		Remote: func(ctx context.Context) error {
			_, err := c.api.UpdateCartItem(ctx, creds, itemID, backend.UpdateItemRequest{
				Quantity:      quantity,
				Size:          item.Size,
				Color:         item.Color,
				SelectedImage: item.SelectedImage,
			})
			if err != nil {
				return faults.Remotef(err, "failed to update cart item")
			}
			return nil
		},
		OnSuccess: func() {
			c.notifier.Emit("Cart updated", notify.Success)
		},
		Rollback: func() {
			c.resync(ctx, creds)
			c.notifier.Emit("Failed to update cart item", notify.Error)
		},
	})

	done(err)
	return Result{OK: err == nil, Err: err}
}

// DeleteItem optimistically removes a line, then persists the removal. A
// repeat delete of the same id is a no-op on the store and never reaches
// the network. On remote failure the controller refetches.
func (c *Controller) DeleteItem(ctx context.Context, creds session.Credentials, itemID string) Result {
	item, ok := c.store.FindByID(itemID)
	if !ok {
		return Result{Err: faults.NotFoundf("cart item %s not found", itemID)}
	}

	done := c.ops.Begin(opstate.OpRemove)
	err := optimistic.Run(ctx, optimistic.Txn{
		Apply: func() {
			c.store.RemoveByID(itemID)
		},
		Remote: func(ctx context.Context) error {
			if err := c.api.RemoveCartItem(ctx, creds, item.Product.ID, item.Size, item.Color.Name); err != nil {
				return faults.Remotef(err, "failed to remove %s from cart", item.Product.Name)
			}
			return nil
		},
		OnSuccess: func() {
			c.notifier.Emit(fmt.Sprintf("%s removed from cart", item.Product.Name), notify.Success)
		},
		Rollback: func() {
			c.resync(ctx, creds)
			c.notifier.Emit(fmt.Sprintf("Failed to remove %s from cart", item.Product.Name), notify.Error)
		},
	})

	done(err)
	return Result{OK: err == nil, Err: err}
}

// ClearCart clears the cart remotely first and only then locally. A failed
// clear with a premature local clear would silently lose items with no
// rollback path, so there is no optimistic half here.
func (c *Controller) ClearCart(ctx context.Context, creds session.Credentials) Result {
	done := c.ops.Begin(opstate.OpClear)

	if err := c.api.ClearCart(ctx, creds); err != nil {
		wrapped := faults.Remotef(err, "failed to clear cart")
		done(wrapped)
		c.notifier.Emit("Failed to clear cart", notify.Error)
		return Result{Err: wrapped}
	}

	c.store.ReplaceAll(nil, store.Totals{})
	c.store.ClearDiscount()
	done(nil)
	c.notifier.Emit("Cart cleared", notify.Success)
	return Result{OK: true}
}

// ApplyDiscount applies a discount code. Discount math is server-owned, so
// there is no optimistic totals mutation; blank codes are rejected locally
// without a network call.
func (c *Controller) ApplyDiscount(ctx context.Context, creds session.Credentials, code, discountType string) Result {
	code = strings.TrimSpace(code)
	if code == "" {
		return Result{Err: faults.Validationf("discount code is required")}
	}

	done := c.ops.Begin(opstate.OpDiscount)

	payload, err := c.api.ApplyDiscount(ctx, creds, code, discountType)
	if err != nil {
		wrapped := faults.Remotef(err, "failed to apply discount %s", code)
		done(wrapped)
		c.notifier.Emit(fmt.Sprintf("Failed to apply discount %s", code), notify.Error)
		return Result{Err: wrapped}
	}

	c.store.ReplaceTotals(payload.Totals)
	c.store.SetDiscount(store.Discount{
		Code:           code,
		Type:           discountType,
		DiscountAmount: payload.Totals.DiscountAmount,
	})
	done(nil)
	c.notifier.Emit(fmt.Sprintf("Discount %s applied", code), notify.Success)
	return Result{OK: true}
}

// RemoveDiscount removes the active discount and accepts the server's
// recomputed totals
func (c *Controller) RemoveDiscount(ctx context.Context, creds session.Credentials, discountType string) Result {
	done := c.ops.Begin(opstate.OpDiscount)

	payload, err := c.api.RemoveDiscount(ctx, creds, discountType)
	if err != nil {
		wrapped := faults.Remotef(err, "failed to remove discount")
		done(wrapped)
		c.notifier.Emit("Failed to remove discount", notify.Error)
		return Result{Err: wrapped}
	}

	c.store.ReplaceTotals(payload.Totals)
	c.store.ClearDiscount()
	done(nil)
	c.notifier.Emit("Discount removed", notify.Success)
	return Result{OK: true}
}

// ValidateCart asks the backend whether the cart is purchasable. Read-only:
// it never mutates the store, and a network failure maps to an invalid
// verdict instead of an error.
func (c *Controller) ValidateCart(ctx context.Context, creds session.Credentials) backend.ValidationResult {
	done := c.ops.Begin(opstate.OpValidate)

	result, err := c.api.ValidateCart(ctx, creds)
	if err != nil {
		done(faults.Remotef(err, "cart validation failed"))
		return backend.ValidationResult{Valid: false, Issues: []string{"Validation failed"}}
	}

	done(nil)
	return *result
}

// MergeCart performs the one-shot migration of a guest cart into a newly
// authenticated user's cart. Preconditions: a guest tag exists AND the
// session is authenticated; otherwise no network call happens. Success
// deletes the tag, so a second call is a guaranteed no-op; failure keeps
// the tag so the merge can be retried.
func (c *Controller) MergeCart(ctx context.Context, creds session.Credentials) MergeResult {
	guestID, err := c.sessions.GuestID(ctx, c.clientKey)
	if err != nil {
		c.log.WithError(err).Error("failed to look up guest session")
		return MergeResult{Success: false, Message: "No guest cart to merge"}
	}
	if guestID == "" || !creds.Authenticated() {
		return MergeResult{Success: false, Message: "No guest cart to merge"}
	}

	done := c.ops.Begin(opstate.OpMerge)

	if err := c.api.MergeCart(ctx, creds, guestID); err != nil {
		wrapped := faults.Remotef(err, "failed to merge guest cart")
		done(wrapped)
		c.notifier.Emit("Failed to merge your cart", notify.Error)
		return MergeResult{Success: false, Message: "Failed to merge guest cart"}
	}

	if err := c.sessions.ClearGuestID(ctx, c.clientKey); err != nil {
		// The merge itself succeeded; a stale tag only risks a redundant
		// retry that the backend treats as empty.
		c.log.WithError(err).Warn("merged cart but failed to clear guest tag")
	}

	c.resync(ctx, creds)
	done(nil)
	c.notifier.Emit("Your cart has been merged", notify.Success)
	return MergeResult{Success: true, Message: "Guest cart merged"}
}

// Refresh replaces the local collection with the server's cart
func (c *Controller) Refresh(ctx context.Context, creds session.Credentials) error {
	done := c.ops.Begin(opstate.OpRefresh)

	payload, err := c.api.GetCart(ctx, creds)
	if err != nil {
		wrapped := faults.Remotef(err, "failed to refresh cart")
		done(wrapped)
		return wrapped
	}

	c.applyServerCart(payload)
	done(nil)
	return nil
}

// resync is the failure-recovery refetch: best effort, errors are logged
// because the triggering operation already reported its own failure.
func (c *Controller) resync(ctx context.Context, creds session.Credentials) {
	payload, err := c.api.GetCart(ctx, creds)
	if err != nil {
		c.log.WithError(err).Warn("resync after failed mutation did not complete")
		return
	}
	c.applyServerCart(payload)
}

// applyServerCart normalizes a backend cart payload and replaces the store
// contents wholesale
func (c *Controller) applyServerCart(payload *backend.CartPayload) {
	items := make([]store.CartItem, 0, len(payload.Items))
	for _, raw := range payload.Items {
		product, err := catalog.Normalize(raw.Product)
		if err != nil {
			c.log.WithError(err).Warn("skipping cart line with malformed product")
			continue
		}
		items = append(items, store.CartItem{
			ID:            raw.ID,
			Product:       product,
			Quantity:      raw.Quantity,
			Size:          strings.ToLower(raw.Size),
			Color:         raw.Color,
			SelectedImage: raw.SelectedImage,
			AddedAt:       raw.AddedAt,
			ItemTotal:     raw.ItemTotal,
		})
	}

	c.store.ReplaceAll(items, payload.Totals)
	if payload.Discount != nil {
		c.store.SetDiscount(store.Discount{
			Code:           payload.Discount.Code,
			Type:           payload.Discount.Type,
			DiscountAmount: payload.Discount.DiscountAmount,
		})
	} else {
		c.store.ClearDiscount()
	}
}

// Items returns the display projection of the cart lines
func (c *Controller) Items() []store.CartItem {
	return c.store.Items()
}

// Totals returns the server-derived totals
func (c *Controller) Totals() store.Totals {
	return c.store.Totals()
}

// ActiveDiscount returns the applied discount, or nil
func (c *Controller) ActiveDiscount() *store.Discount {
	return c.store.Discount()
}

// Pending reports whether an operation of the given kind is in flight
func (c *Controller) Pending(kind opstate.Kind) bool {
	return c.ops.Pending(kind)
}

// LastError returns the last recorded outcome for an operation kind
func (c *Controller) LastError(kind opstate.Kind) error {
	return c.ops.LastError(kind)
}

// Operations returns the per-operation state snapshot for the UI
func (c *Controller) Operations() map[opstate.Kind]opstate.Status {
	return c.ops.Snapshot()
}
