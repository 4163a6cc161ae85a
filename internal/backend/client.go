// internal/backend/client.go
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/config"
	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/session"
)

// Client is the thin request wrapper over the remote commerce API. It
// carries no state beyond configuration; cart and wishlist state live in
// the stores owned by the synchronization controllers.
type Client struct {
	baseURL     string
	guestHeader string
	httpClient  *http.Client
	log         *logrus.Logger
}

// NewClient creates a backend API client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		baseURL:     strings.TrimRight(cfg.Backend.BaseURL, "/"),
		guestHeader: cfg.Backend.GuestHeader,
		httpClient:  &http.Client{Timeout: cfg.Backend.Timeout},
		log:         log,
	}
}

// envelope is the backend's standard response wrapper
type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// do issues one backend request. The session credentials select cart
// ownership: the bearer token for authenticated users, the guest session
// header otherwise. A non-2xx status is an error.
func (c *Client) do(ctx context.Context, creds session.Credentials, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if creds.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+creds.Token)
	} else if creds.GuestID != "" {
		req.Header.Set(c.guestHeader, creds.GuestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read backend response: %w", err)
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return fmt.Errorf("failed to decode backend response: %w", err)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
			"error":  env.Error,
		}).Warn("backend request rejected")
		if env.Error != "" {
			return fmt.Errorf("backend returned status %d: %s", resp.StatusCode, env.Error)
		}
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode backend payload: %w", err)
		}
	}

	return nil
}

// AddCartItem persists a new cart line (or bumps an existing one server-side)
func (c *Client) AddCartItem(ctx context.Context, creds session.Credentials, req AddItemRequest) (*ItemPayload, error) {
	var item ItemPayload
	if err := c.do(ctx, creds, http.MethodPost, "/cart/items", nil, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateCartItem updates an existing cart line by its server id
func (c *Client) UpdateCartItem(ctx context.Context, creds session.Credentials, itemID string, req UpdateItemRequest) (*ItemPayload, error) {
	var item ItemPayload
	path := "/cart/items/" + url.PathEscape(itemID)
	if err := c.do(ctx, creds, http.MethodPut, path, nil, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveCartItem deletes a cart line, addressed query-style by its
// composite key
func (c *Client) RemoveCartItem(ctx context.Context, creds session.Credentials, productID, size, colorName string) error {
	query := url.Values{}
	query.Set("product_id", productID)
	query.Set("size", size)
	query.Set("color_name", colorName)
	return c.do(ctx, creds, http.MethodDelete, "/cart/items", query, nil, nil)
}

// GetCart fetches the full cart with server-computed totals
func (c *Client) GetCart(ctx context.Context, creds session.Credentials) (*CartPayload, error) {
	var cart CartPayload
	if err := c.do(ctx, creds, http.MethodGet, "/cart", nil, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// ClearCart removes every line from the cart
func (c *Client) ClearCart(ctx context.Context, creds session.Credentials) error {
	return c.do(ctx, creds, http.MethodDelete, "/cart", nil, nil, nil)
}

// ValidateCart asks the backend whether the cart is purchasable as-is
func (c *Client) ValidateCart(ctx context.Context, creds session.Credentials) (*ValidationResult, error) {
	var result ValidationResult
	if err := c.do(ctx, creds, http.MethodPost, "/cart/validate", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// MergeCart folds the guest cart identified by guestSessionID into the
// authenticated user's cart
func (c *Client) MergeCart(ctx context.Context, creds session.Credentials, guestSessionID string) error {
	body := map[string]string{"guest_session_id": guestSessionID}
	return c.do(ctx, creds, http.MethodPost, "/cart/merge", nil, body, nil)
}

// ApplyDiscount applies a discount code and returns the updated totals
func (c *Client) ApplyDiscount(ctx context.Context, creds session.Credentials, code, discountType string) (*CartPayload, error) {
	body := map[string]string{"code": code, "type": discountType}
	var cart CartPayload
	if err := c.do(ctx, creds, http.MethodPost, "/cart/discount", nil, body, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// RemoveDiscount removes the active discount and returns the updated totals
func (c *Client) RemoveDiscount(ctx context.Context, creds session.Credentials, discountType string) (*CartPayload, error) {
	query := url.Values{}
	query.Set("type", discountType)
	var cart CartPayload
	if err := c.do(ctx, creds, http.MethodDelete, "/cart/discount", query, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddWishlistItem persists a wishlist entry
func (c *Client) AddWishlistItem(ctx context.Context, creds session.Credentials, productID string, priceWhenAdded int64) (*WishlistEntryPayload, error) {
	body := map[string]interface{}{
		"product_id":       productID,
		"price_when_added": priceWhenAdded,
	}
	var entry WishlistEntryPayload
	if err := c.do(ctx, creds, http.MethodPost, "/wishlist/items", nil, body, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// RemoveWishlistItem deletes a wishlist entry by product id
func (c *Client) RemoveWishlistItem(ctx context.Context, creds session.Credentials, productID string) error {
	path := "/wishlist/items/" + url.PathEscape(productID)
	return c.do(ctx, creds, http.MethodDelete, path, nil, nil, nil)
}

// ToggleWishlistItem flips a product's wishlist membership server-side and
// reports which way it resolved
func (c *Client) ToggleWishlistItem(ctx context.Context, creds session.Credentials, productID string, priceWhenAdded int64) (*ToggleResult, error) {
	body := map[string]interface{}{
		"product_id":       productID,
		"price_when_added": priceWhenAdded,
	}
	var result ToggleResult
	if err := c.do(ctx, creds, http.MethodPost, "/wishlist/toggle", nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetWishlist fetches the full wishlist
func (c *Client) GetWishlist(ctx context.Context, creds session.Credentials) (*WishlistPayload, error) {
	var wishlist WishlistPayload
	if err := c.do(ctx, creds, http.MethodGet, "/wishlist", nil, nil, &wishlist); err != nil {
		return nil, err
	}
	return &wishlist, nil
}
