// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/catalog"
	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/config"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	registry *Registry
	config   *config.Config
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(registry *Registry, cfg *config.Config) *WishlistHandler {
	return &WishlistHandler{
		registry: registry,
		config:   cfg,
	}
}

// wishlistView is the display-shaped projection the UI renders from
func wishlistView(sc *SessionContext) gin.H {
	return gin.H{
		"items":      sc.Wishlist.Entries(),
		"count":      sc.Wishlist.Count(),
		"operations": sc.Wishlist.Operations(),
	}
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	sc, _ := h.registry.Resolve(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist retrieved successfully",
		"data":    wishlistView(sc),
	})
}

// RefreshWishlist handles POST /wishlist/refresh
func (h *WishlistHandler) RefreshWishlist(c *gin.Context) {
	sc, creds := h.registry.Resolve(c)

	if err := sc.Wishlist.Refresh(c.Request.Context(), creds); err != nil {
		c.JSON(statusFor(err), gin.H{
			"error": "Failed to refresh wishlist",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist refreshed successfully",
		"data":    wishlistView(sc),
	})
}

// WishlistItemRequest is the inbound add/toggle payload
type WishlistItemRequest struct {
	Product map[string]interface{} `json:"product" binding:"required"`
}

// AddToWishlist handles POST /wishlist/items
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	sc, creds := h.registry.Resolve(c)

	var req WishlistItemRequest
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

	result := sc.Wishlist.Add(c.Request.Context(), creds, product)
	if !result.OK {
		c.JSON(statusFor(result.Err), gin.H{
			"error": result.Err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to wishlist successfully",
		"data":    wishlistView(sc),
	})
}

// RemoveFromWishlist handles DELETE /wishlist/items/:productId
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	sc, creds := h.registry.Resolve(c)
	productID := c.Param("productId")

	result := sc.Wishlist.Remove(c.Request.Context(), creds, productID)
	if !result.OK {
		c.JSON(statusFor(result.Err), gin.H{
			"error": result.Err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from wishlist successfully",
		"data":    wishlistView(sc),
	})
}

// ToggleWishlist handles POST /wishlist/toggle
func (h *WishlistHandler) ToggleWishlist(c *gin.Context) {
	sc, creds := h.registry.Resolve(c)

	var req WishlistItemRequest
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

	result := sc.Wishlist.Toggle(c.Request.Context(), creds, product)
	if !result.OK {
		c.JSON(statusFor(result.Err), gin.H{
			"error": result.Err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist updated successfully",
		"data": gin.H{
			"in_wishlist": sc.Wishlist.Contains(product.ID),
			"wishlist":    wishlistView(sc),
		},
	})
}
