package handler

import "github.com/labstack/echo/v4"

// Register mounts every storefront command on the echo instance. Session
// endpoints live under /api behind the session middleware; starting a
// session is the only public command.
func (h *Handler) Register(e *echo.Echo, sessionMW echo.MiddlewareFunc) {
	e.GET("/health", HealthCheck)
	e.POST("/session", h.StartSession)

	api := e.Group("/api", sessionMW)

	api.GET("/session", h.Snapshot)
	api.POST("/session/navigate", h.Navigate)
	api.POST("/session/sign-in", h.SignIn)
	api.POST("/session/sign-up", h.SignUp)
	api.POST("/session/logout", h.Logout)
	api.POST("/session/view", h.SetView)
	api.POST("/session/search", h.SetSearch)

	api.GET("/products", h.ListProducts)
	api.POST("/products", h.CreateProduct)
	api.PUT("/products/:id", h.UpdateProduct)
	api.DELETE("/products/:id", h.DeleteProduct)
	api.POST("/products/editor", h.BeginEdit)
	api.DELETE("/products/editor", h.CancelEdit)

	api.GET("/cart", h.GetCart)
	api.POST("/cart/items", h.AddToCart)
	api.PATCH("/cart/items/:id", h.ChangeQuantity)
	api.DELETE("/cart/items/:id", h.RemoveFromCart)
	api.POST("/checkout", h.Checkout)

	api.GET("/orders", h.ListOrders)
	api.GET("/orders/all", h.ListAllOrders)
}
