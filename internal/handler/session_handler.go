package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rasheduzzaman2024/polashtoli/internal/model"
	"github.com/rasheduzzaman2024/polashtoli/internal/session"
	"github.com/rasheduzzaman2024/polashtoli/internal/store"
	"github.com/rasheduzzaman2024/polashtoli/pkg/logger"
	"github.com/rasheduzzaman2024/polashtoli/prometheus"
)

// StartSession opens a fresh anonymous session on the landing page and
// returns its bearer token.
func (h *Handler) StartSession(c echo.Context) error {
	log := logger.FromContext(c)

	sess := h.sessions.Create()
	token, err := h.jwt.GenerateToken(sess.ID(), "", "")
	if err != nil {
		log.Error("Failed to generate session token", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	if prometheus.ActiveSessionsGauge != nil {
		prometheus.ActiveSessionsGauge.Inc()
	}
	log.Info("Session started", zap.String("session_id", sess.ID()))

	return c.JSON(http.StatusCreated, echo.Map{
		"token": token,
		"page":  sess.Page(),
	})
}

// Snapshot returns the read-only render state for the session: page, view,
// account, filtered products, cart, role-dependent orders and the product
// form state.
func (h *Handler) Snapshot(c echo.Context) error {
	sess, err := sessionOr401(c)
	if err != nil {
		return err
	}

	resp := echo.Map{
		"page":         sess.Page(),
		"view":         sess.View(),
		"search_query": sess.SearchQuery(),
		"products":     h.catalog.Search(sess.SearchQuery()),
		"cart":         cartState(sess),
		"editing":      sess.Editing(),
	}

	if acct, ok := sess.Account(); ok {
		resp["account"] = acct
		if acct.Role == model.RoleAdmin {
			resp["orders"] = h.ledger.AllOrders()
		} else {
			resp["orders"] = h.ledger.OrdersFor(acct.Email)
		}
	}

	return c.JSON(http.StatusOK, resp)
}

// Navigate moves the session between the landing, sign-up and sign-in pages.
func (h *Handler) Navigate(c echo.Context) error {
	sess, err := sessionOr401(c)
	if err != nil {
		return err
	}

	var req struct {
		Page string `json:"page"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	sess.Navigate(session.Page(req.Page))
	return c.JSON(http.StatusOK, echo.Map{"page": sess.Page()})
}

// SignIn authenticates the session against the account store. On success the
// session enters the app on the home view and a token carrying the identity
// is issued.
func (h *Handler) SignIn(c echo.Context) error {
	log := logger.FromContext(c)
	if prometheus.SignInAttemptsCounter != nil {
		prometheus.SignInAttemptsCounter.Inc()
	}

	sess, err := sessionOr401(c)
	if err != nil {
		return err
	}

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse sign-in request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	acct, ok := h.accounts.Authenticate(req.Email, req.Password)
	if !ok {
		log.Warn("Invalid credentials", zap.String("email", req.Email))
		prometheus.RecordAuthError("invalid_credentials")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	sess.SignIn(acct)

	token, err := h.jwt.GenerateToken(sess.ID(), acct.Email, string(acct.Role))
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	if prometheus.SignInSuccessCounter != nil {
		prometheus.SignInSuccessCounter.Inc()
	}
	log.Info("User signed in",
		zap.String("email", acct.Email),
		zap.String("role", string(acct.Role)))

	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"page":  sess.Page(),
		"view":  sess.View(),
		"user":  acct,
	})
}

// SignUp registers a new customer account and moves the session to the
// sign-in page. The session state is unchanged on failure.
func (h *Handler) SignUp(c echo.Context) error {
	log := logger.FromContext(c)

	sess, err := sessionOr401(c)
	if err != nil {
		return err
	}

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse sign-up request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		log.Warn("Incomplete sign-up request", zap.String("email", req.Email))
		prometheus.RecordAuthError("incomplete_registration")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, email and password are required"})
	}

	acct, err := h.accounts.Register(req.Name, req.Email, req.Password)
	if err == store.ErrAlreadyRegistered {
		log.Warn("Email already registered", zap.String("email", req.Email))
		prometheus.RecordAuthError("email_already_exists")
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
	}
	if err != nil {
		log.Error("Failed to register account", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	sess.Navigate(session.PageSignin)

	if prometheus.RegistrationsCounter != nil {
		prometheus.RegistrationsCounter.Inc()
	}
	log.Info("Account registered", zap.String("email", acct.Email))

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Account created successfully",
		"page":    sess.Page(),
		"user":    acct,
	})
}

// Logout clears the account and the cart and returns to the landing page.
func (h *Handler) Logout(c echo.Context) error {
	log := logger.FromContext(c)

	sess, err := sessionOr401(c)
	if err != nil {
		return err
	}

	if acct, ok := sess.Account(); ok {
		log.Info("User logged out", zap.String("email", acct.Email))
	}
	sess.Logout()

	return c.JSON(http.StatusOK, echo.Map{
		"page": sess.Page(),
		"view": sess.View(),
	})
}

// SetView switches the active view. Selections outside the account's role
// fall back to home.
func (h *Handler) SetView(c echo.Context) error {
	sess, err := sessionOr401(c)
	if err != nil {
		return err
	}

	var req struct {
		View string `json:"view"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	view := sess.SetView(session.View(req.View))
	return c.JSON(http.StatusOK, echo.Map{"view": view})
}

// SetSearch stores the session's catalog filter and returns the filtered
// product list.
func (h *Handler) SetSearch(c echo.Context) error {
	sess, err := sessionOr401(c)
	if err != nil {
		return err
	}

	var req struct {
		Query string `json:"query"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	sess.SetSearchQuery(req.Query)
	return c.JSON(http.StatusOK, echo.Map{
		"search_query": req.Query,
		"products":     h.catalog.Search(req.Query),
	})
}
