// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/catalog"
	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/config"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	registry *Registry
	config   *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(registry *Registry, cfg *config.Config) *CartHandler {
	return &CartHandler{
		registry: registry,
		config:   cfg,
	}
}

// cartView is the display-shaped projection the UI renders from
func cartView(sc *SessionContext) gin.H {
	return gin.H{
		"items":      sc.Cart.Items(),
		"totals":     sc.Cart.Totals(),
		"discount":   sc.Cart.ActiveDiscount(),
		"operations": sc.Cart.Operations(),
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sc, _ := h.registry.Resolve(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    cartView(sc),
	})
}

// RefreshCart handles POST /cart/refresh
func (h *CartHandler) RefreshCart(c *gin.Context) {
	sc, creds := h.registry.Resolve(c)

	if err := sc.Cart.Refresh(c.Request.Context(), creds); err != nil {
		c.JSON(statusFor(err), gin.H{
			"error": "Failed to refresh cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart refreshed successfully",
		"data":    cartView(sc),
	})
}

// AddItemRequest is the inbound add-to-cart payload. The product arrives
// duck-typed and is normalized at this boundary.
type AddItemRequest struct {
	Product   map[string]interface{} `json:"product" binding:"required"`
	Quantity  int                    `json:"quantity"`
	ColorName string                 `json:"color_name"`
	Size      string                 `json:"size"`
	Image     string                 `json:"selected_image"`
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	sc, creds := h.registry.Resolve(c)

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := catalog.Normalize(req.Product)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	result := sc.Cart.AddItem(c.Request.Context(), creds, product, req.Quantity, req.ColorName, req.Size, req.Image)
	if !result.OK {
		c.JSON(statusFor(result.Err), gin.H{
			"error": result.Err.Error(),
			"data":  cartView(sc),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    cartView(sc),
	})
}

// UpdateCartItemRequest is the inbound quantity-update payload
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	sc, creds := h.registry.Resolve(c)
	itemID := c.Param("id")

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	result := sc.Cart.UpdateQuantity(c.Request.Context(), creds, itemID, req.Quantity)
	if !result.OK {
		c.JSON(statusFor(result.Err), gin.H{
			"error": result.Err.Error(),
			"data":  cartView(sc),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    cartView(sc),
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	sc, creds := h.registry.Resolve(c)
	itemID := c.Param("id")

	result := sc.Cart.DeleteItem(c.Request.Context(), creds, itemID)
	if !result.OK {
		c.JSON(statusFor(result.Err), gin.H{
			"error": result.Err.Error(),
			"data":  cartView(sc),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    cartView(sc),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sc, creds := h.registry.Resolve(c)

	result := sc.Cart.ClearCart(c.Request.Context(), creds)
	if !result.OK {
		c.JSON(statusFor(result.Err), gin.H{
			"error": result.Err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    cartView(sc),
	})
}

// ValidateCart handles POST /cart/validate
func (h *CartHandler) ValidateCart(c *gin.Context) {
	sc, creds := h.registry.Resolve(c)

	result := sc.Cart.ValidateCart(c.Request.Context(), creds)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart validated",
		"data":    result,
	})
}

// MergeCart handles POST /cart/merge. Requires authentication; called by
// the UI right after login succeeds.
func (h *CartHandler) MergeCart(c *gin.Context) {
	sc, creds := h.registry.Resolve(c)

	result := sc.Cart.MergeCart(c.Request.Context(), creds)
	if !result.Success {
		c.JSON(http.StatusOK, gin.H{
			"message": result.Message,
			"data":    result,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": result.Message,
		"data": gin.H{
			"merge": result,
			"cart":  cartView(sc),
		},
	})
}

// DiscountRequest is the inbound discount payload
type DiscountRequest struct {
	Code string `json:"code"`
	Type string `json:"type"`
}

// ApplyDiscount handles POST /cart/discount
func (h *CartHandler) ApplyDiscount(c *gin.Context) {
	sc, creds := h.registry.Resolve(c)

	var req DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if req.Type == "" {
		req.Type = "coupon"
	}

	result := sc.Cart.ApplyDiscount(c.Request.Context(), creds, req.Code, req.Type)
	if !result.OK {
		c.JSON(statusFor(result.Err), gin.H{
			"error": result.Err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Discount applied successfully",
		"data":    cartView(sc),
	})
}

// RemoveDiscount handles DELETE /cart/discount
func (h *CartHandler) RemoveDiscount(c *gin.Context) {
	sc, creds := h.registry.Resolve(c)

	discountType := c.Query("type")
	if discountType == "" {
		discountType = "coupon"
	}

	result := sc.Cart.RemoveDiscount(c.Request.Context(), creds, discountType)
	if !result.OK {
		c.JSON(statusFor(result.Err), gin.H{
			"error": result.Err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Discount removed successfully",
		"data":    cartView(sc),
	})
}
