// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/interfaces/http/handlers"
	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/interfaces/http/middleware"
)

// SetupRoutes wires every route group onto the API router
func SetupRoutes(rg *gin.RouterGroup, registry *handlers.Registry, deps handlers.Deps) {
	cfg := deps.Config

	cartHandler := handlers.NewCartHandler(registry, cfg)
	wishlistHandler := handlers.NewWishlistHandler(registry, cfg)
	notificationHandler := handlers.NewNotificationHandler(registry, cfg)

	// Cart works for guests and authenticated users alike
	cart := rg.Group("/cart")
	cart.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/refresh", cartHandler.RefreshCart)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items/:id", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cart.DELETE("", cartHandler.ClearCart)
		cart.POST("/validate", cartHandler.ValidateCart)
		cart.POST("/discount", cartHandler.ApplyDiscount)
		cart.DELETE("/discount", cartHandler.RemoveDiscount)

		// Merge only makes sense right after login
		cart.POST("/merge", middleware.AuthMiddleware(cfg), cartHandler.MergeCart)
	}

	// Wishlist mutations require an authenticated session; reads are
	// optional-auth so a guest sees an empty wishlist instead of an error
	wishlist := rg.Group("/wishlist")
	{
		wishlist.GET("", middleware.OptionalAuthMiddleware(cfg), wishlistHandler.GetWishlist)

		protected := wishlist.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.POST("/refresh", wishlistHandler.RefreshWishlist)
			protected.POST("/items", wishlistHandler.AddToWishlist)
			protected.DELETE("/items/:productId", wishlistHandler.RemoveFromWishlist)
			protected.POST("/toggle", wishlistHandler.ToggleWishlist)
		}
	}

	notifications := rg.Group("/notifications")
	notifications.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		notifications.GET("/current", notificationHandler.GetCurrent)
		notifications.DELETE("/current", notificationHandler.Dismiss)
	}
}
