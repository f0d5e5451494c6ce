package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rasheduzzaman2024/polashtoli/pkg/logger"

	"go.uber.org/zap"
)

// ListOrders returns the signed-in account's orders, oldest first.
func (h *Handler) ListOrders(c echo.Context) error {
	sess, err := sessionOr401(c)
	if err != nil {
		return err
	}

	acct, ok := sess.Account()
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not signed in"})
	}

	return c.JSON(http.StatusOK, h.ledger.OrdersFor(acct.Email))
}

// ListAllOrders returns the full ledger. Admin only.
func (h *Handler) ListAllOrders(c echo.Context) error {
	log := logger.FromContext(c)

	if _, err := adminOr403(c); err != nil {
		return err
	}

	orders := h.ledger.AllOrders()
	log.Info("Ledger listed", zap.Int("count", len(orders)))
	return c.JSON(http.StatusOK, orders)
}
