package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rasheduzzaman2024/polashtoli/internal/store"
	"github.com/rasheduzzaman2024/polashtoli/pkg/logger"
	"github.com/rasheduzzaman2024/polashtoli/prometheus"
)

// GetCart returns the session's cart lines, total and unit count.
func (h *Handler) GetCart(c echo.Context) error {
	sess, err := sessionOr401(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cartState(sess))
}

// AddToCart puts one unit of a product into the cart. Missing products and
// out-of-stock products are silent no-ops.
func (h *Handler) AddToCart(c echo.Context) error {
	log := logger.FromContext(c)

	sess, err := sessionOr401(c)
	if err != nil {
		return err
	}

	var req struct {
		ProductID int64 `json:"product_id"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	product, found := h.catalog.FindByID(req.ProductID)
	if !found {
		log.Warn("Product not found", zap.Int64("product_id", req.ProductID))
		return c.JSON(http.StatusOK, cartState(sess))
	}

	sess.AddToCart(product)

	prometheus.RecordCartOperation("add")
	log.Info("Added to cart",
		zap.Int64("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Int("cart_count", sess.CartCount()))

	return c.JSON(http.StatusOK, cartState(sess))
}

// ChangeQuantity adjusts a cart line by delta; a resulting quantity of zero
// or below removes the line.
func (h *Handler) ChangeQuantity(c echo.Context) error {
	log := logger.FromContext(c)

	sess, err := sessionOr401(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	var req struct {
		Delta int `json:"delta"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	sess.ChangeQuantity(id, req.Delta)

	prometheus.RecordCartOperation("change_quantity")
	log.Info("Cart quantity changed",
		zap.Int64("product_id", id),
		zap.Int("delta", req.Delta),
		zap.Int("cart_count", sess.CartCount()))

	return c.JSON(http.StatusOK, cartState(sess))
}

// RemoveFromCart deletes a cart line unconditionally. The confirmation step
// lives at the interaction boundary, not here.
func (h *Handler) RemoveFromCart(c echo.Context) error {
	log := logger.FromContext(c)

	sess, err := sessionOr401(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	sess.RemoveFromCart(id)

	prometheus.RecordCartOperation("remove")
	log.Info("Removed from cart", zap.Int64("product_id", id))

	return c.JSON(http.StatusOK, cartState(sess))
}

// Checkout places the cart as an order, clears the cart and moves the
// session to the orders view.
func (h *Handler) Checkout(c echo.Context) error {
	log := logger.FromContext(c)

	sess, err := sessionOr401(c)
	if err != nil {
		return err
	}

	order, err := sess.Checkout(h.ledger)
	if err == store.ErrEmptyCart {
		log.Warn("Checkout on empty cart")
		return c.JSON(http.StatusConflict, echo.Map{"error": "cart is empty"})
	}
	if err != nil {
		log.Error("Checkout failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "checkout failed"})
	}

	if prometheus.OrdersPlacedCounter != nil {
		prometheus.OrdersPlacedCounter.Inc()
		prometheus.OrderValueHistogram.Observe(order.Total)
	}
	log.Info("Order placed",
		zap.Int64("order_id", order.ID),
		zap.String("email", order.CustomerEmail),
		zap.Float64("total", order.Total),
		zap.Int("lines", len(order.Items)))

	return c.JSON(http.StatusCreated, echo.Map{
		"order": order,
		"view":  sess.View(),
		"cart":  cartState(sess),
	})
}
