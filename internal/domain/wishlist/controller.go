// internal/domain/wishlist/controller.go
package wishlist

import (
	"context"
	"fmt"

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

// API is the slice of the backend contract the wishlist controller
// depends on
type API interface {
	AddWishlistItem(ctx context.Context, creds session.Credentials, productID string, priceWhenAdded int64) (*backend.WishlistEntryPayload, error)
	RemoveWishlistItem(ctx context.Context, creds session.Credentials, productID string) error
	ToggleWishlistItem(ctx context.Context, creds session.Credentials, productID string, priceWhenAdded int64) (*backend.ToggleResult, error)
	GetWishlist(ctx context.Context, creds session.Credentials) (*backend.WishlistPayload, error)
}

// Result reports how a mutating wishlist operation resolved
type Result struct {
	OK  bool
	Err error
}

// Controller mirrors the cart controller for saved products: keyed by
// product id only, and every mutation requires an authenticated session.
type Controller struct {
	api      API
	store    *store.Wishlist
	notifier *notify.Emitter
	ops      *opstate.Tracker
	log      *logrus.Entry
}

// NewController creates a wishlist controller
func NewController(api API, wishlistStore *store.Wishlist, notifier *notify.Emitter, log *logrus.Logger) *Controller {
	return &Controller{
		api:      api,
		store:    wishlistStore,
		notifier: notifier,
		ops:      opstate.NewTracker(),
		log:      log.WithField("component", "wishlist"),
	}
}

// requireAuth short-circuits unauthenticated mutations before any store
// change or network call
func (c *Controller) requireAuth(creds session.Credentials) error {
	if creds.Authenticated() {
		return nil
	}
	c.notifier.Emit("Please login to manage your wishlist", notify.Warning)
	return faults.AuthRequiredf("wishlist requires an authenticated session")
}

// Add optimistically saves a product, then persists it. The price at add
// time is captured and not live-updated.
func (c *Controller) Add(ctx context.Context, creds session.Credentials, product catalog.Product) Result {
	if err := c.requireAuth(creds); err != nil {
		return Result{Err: err}
	}
	if product.ID == "" {
		return Result{Err: faults.Validationf("product id is required")}
	}

	done := c.ops.Begin(opstate.OpAdd)

	entry := store.WishlistEntry{
		ProductID:      product.ID,
		Product:        product,
		PriceWhenAdded: product.Price,
	}

	err := optimistic.Run(ctx, optimistic.Txn{
		Apply: func() {
			c.store.Upsert(entry)
		},
		Remote: func(ctx context.Context) error {
			if _, err := c.api.AddWishlistItem(ctx, creds, product.ID, product.Price); err != nil {
				return faults.Remotef(err, "failed to add %s to wishlist", product.Name)
			}
			return nil
		},
		OnSuccess: func() {
			c.notifier.Emit(fmt.Sprintf("%s added to wishlist", product.Name), notify.Success)
		},
		Rollback: func() {
			c.store.Remove(product.ID)
			c.notifier.Emit(fmt.Sprintf("Failed to add %s to wishlist", product.Name), notify.Error)
		},
	})

	done(err)
	return Result{OK: err == nil, Err: err}
}

// Remove optimistically drops a saved product, then persists the removal
func (c *Controller) Remove(ctx context.Context, creds session.Credentials, productID string) Result {
	if err := c.requireAuth(creds); err != nil {
		return Result{Err: err}
	}

	entry, ok := c.store.Get(productID)
	if !ok {
		return Result{Err: faults.NotFoundf("product %s is not in the wishlist", productID)}
	}

	done := c.ops.Begin(opstate.OpRemove)
	err := optimistic.Run(ctx, optimistic.Txn{
		Apply: func() {
			c.store.Remove(productID)
		},
		Remote: func(ctx context.Context) error {
			if err := c.api.RemoveWishlistItem(ctx, creds, productID); err != nil {
				return faults.Remotef(err, "failed to remove %s from wishlist", entry.Product.Name)
			}
			return nil
		},
		OnSuccess: func() {
			c.notifier.Emit(fmt.Sprintf("%s removed from wishlist", entry.Product.Name), notify.Success)
		},
		Rollback: func() {
			c.store.Upsert(entry)
			c.notifier.Emit(fmt.Sprintf("Failed to remove %s from wishlist", entry.Product.Name), notify.Error)
		},
	})

	done(err)
	return Result{OK: err == nil, Err: err}
}

// Toggle optimistically flips the product's presence, calls the remote
// toggle endpoint, then unconditionally refetches to reconcile the local
// map with server truth. The optimistic flip is a latency hide, not a
// trusted value; with two rapid toggles resolving out of order the refetch
// is what settles the final state.
func (c *Controller) Toggle(ctx context.Context, creds session.Credentials, product catalog.Product) Result {
	if err := c.requireAuth(creds); err != nil {
		return Result{Err: err}
	}
	if product.ID == "" {
		return Result{Err: faults.Validationf("product id is required")}
	}

	done := c.ops.Begin(opstate.OpToggle)

	prev, present := c.store.Get(product.ID)
	entry := store.WishlistEntry{
		ProductID:      product.ID,
		Product:        product,
		PriceWhenAdded: product.Price,
	}

	err := optimistic.Run(ctx, optimistic.Txn{
		Apply: func() {
			if present {
				c.store.Remove(product.ID)
			} else {
				c.store.Upsert(entry)
			}
		},
		Remote: func(ctx context.Context) error {
			result, err := c.api.ToggleWishlistItem(ctx, creds, product.ID, product.Price)
			if err != nil {
				return faults.Remotef(err, "failed to update wishlist")
			}
			if result.Action == "added" {
				c.notifier.Emit(fmt.Sprintf("%s added to wishlist", product.Name), notify.Success)
			} else {
				c.notifier.Emit(fmt.Sprintf("%s removed from wishlist", product.Name), notify.Success)
			}
			return nil
		},
		OnSuccess: func() {
			// Reconcile the cached membership with server truth
			if err := c.refetch(ctx, creds); err != nil {
				c.log.WithError(err).Warn("wishlist reconcile after toggle did not complete")
			}
		},
		Rollback: func() {
			if present {
				c.store.Upsert(prev)
			} else {
				c.store.Remove(product.ID)
			}
			c.notifier.Emit("Failed to update wishlist", notify.Error)
		},
	})

	done(err)
	return Result{OK: err == nil, Err: err}
}

// Refresh replaces the local collection with the server's wishlist
func (c *Controller) Refresh(ctx context.Context, creds session.Credentials) error {
	if err := c.requireAuth(creds); err != nil {
		return err
	}

	done := c.ops.Begin(opstate.OpRefresh)
	err := c.refetch(ctx, creds)
	done(err)
	return err
}

func (c *Controller) refetch(ctx context.Context, creds session.Credentials) error {
	payload, err := c.api.GetWishlist(ctx, creds)
	if err != nil {
		return faults.Remotef(err, "failed to refresh wishlist")
	}

	entries := make([]store.WishlistEntry, 0, len(payload.Items))
	for _, raw := range payload.Items {
		product, err := catalog.Normalize(raw.Product)
		if err != nil {
			c.log.WithError(err).Warn("skipping wishlist entry with malformed product")
			continue
		}
		productID := raw.ProductID
		if productID == "" {
			productID = product.ID
		}
		entries = append(entries, store.WishlistEntry{
			ProductID:      productID,
			Product:        product,
			PriceWhenAdded: raw.PriceWhenAdded,
			AddedAt:        raw.AddedAt,
		})
	}

	c.store.ReplaceAll(entries)
	return nil
}

// Contains reports whether the product is currently saved
func (c *Controller) Contains(productID string) bool {
	return c.store.Contains(productID)
}

// Entries returns the display projection of saved products
func (c *Controller) Entries() []store.WishlistEntry {
	return c.store.Entries()
}

// Count returns the number of saved products
func (c *Controller) Count() int {
	return c.store.Len()
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
