// Package handler exposes the storefront commands over HTTP. Handlers own no
// state of their own; every command mutates one of the stores or the calling
// session and returns the slice of state the caller needs to redraw.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rasheduzzaman2024/polashtoli/internal/middleware"
	"github.com/rasheduzzaman2024/polashtoli/internal/model"
	"github.com/rasheduzzaman2024/polashtoli/internal/session"
	"github.com/rasheduzzaman2024/polashtoli/internal/store"
	"github.com/rasheduzzaman2024/polashtoli/pkg/jwtutil"
)

// Handler carries the owned state objects every command operates on.
type Handler struct {
	catalog  *store.Catalog
	accounts *store.Accounts
	ledger   *store.Ledger
	sessions *session.Manager
	jwt      *jwtutil.JWTUtil
}

// New wires a handler to the stores, the session registry and the token util.
func New(catalog *store.Catalog, accounts *store.Accounts, ledger *store.Ledger, sessions *session.Manager, jwt *jwtutil.JWTUtil) *Handler {
	return &Handler{
		catalog:  catalog,
		accounts: accounts,
		ledger:   ledger,
		sessions: sessions,
		jwt:      jwt,
	}
}

// sessionOr401 fetches the session attached by the middleware.
func sessionOr401(c echo.Context) (*session.Session, error) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, echo.Map{"error": "no session"})
	}
	return sess, nil
}

// adminOr403 additionally requires a signed-in admin account.
func adminOr403(c echo.Context) (*session.Session, error) {
	sess, err := sessionOr401(c)
	if err != nil {
		return nil, err
	}
	acct, ok := sess.Account()
	if !ok || acct.Role != model.RoleAdmin {
		return nil, echo.NewHTTPError(http.StatusForbidden, echo.Map{"error": "admin role required"})
	}
	return sess, nil
}

// cartResponse is the cart slice of the render state.
type cartResponse struct {
	Items []model.CartLine `json:"items"`
	Total float64          `json:"total"`
	Count int              `json:"count"`
}

func cartState(sess *session.Session) cartResponse {
	return cartResponse{
		Items: sess.CartLines(),
		Total: sess.CartTotal(),
		Count: sess.CartCount(),
	}
}
