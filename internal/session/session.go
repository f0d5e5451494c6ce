// Package session models one shopper's interaction state: which page and
// view they are on, who they are signed in as, their cart and, for admins,
// the product form state.
package session

import (
	"sync"

	"github.com/rasheduzzaman2024/polashtoli/internal/model"
	"github.com/rasheduzzaman2024/polashtoli/internal/store"
)

// Page is a top-level screen of the storefront.
type Page string

const (
	PageLanding Page = "landing"
	PageSignup  Page = "signup"
	PageSignin  Page = "signin"
	PageApp     Page = "app"
)

// View is a screen inside the app page.
type View string

const (
	ViewHome      View = "home"
	ViewCart      View = "cart"
	ViewOrders    View = "orders"
	ViewAdmin     View = "admin"
	ViewAllOrders View = "all-orders"
)

// Session is the per-shopper state machine. All methods are safe for
// concurrent use; each command runs to completion under the session lock.
type Session struct {
	mu          sync.Mutex
	id          string
	page        Page
	view        View
	account     *model.Account
	cart        model.Cart
	editing     model.Editing
	searchQuery string
}

func newSession(id string) *Session {
	return &Session{
		id:      id,
		page:    PageLanding,
		view:    ViewHome,
		editing: model.EditingClosedState(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Navigate moves between the unauthenticated pages. The app page is only
// reachable through SignIn, so navigating there is a silent no-op.
func (s *Session) Navigate(page Page) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch page {
	case PageLanding, PageSignup, PageSignin:
		s.page = page
	}
}

// SignIn attaches the account and enters the app on the home view.
func (s *Session) SignIn(acct model.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = &acct
	s.page = PageApp
	s.view = ViewHome
}

// Logout clears the account and the cart and returns to the landing page.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = nil
	s.cart.Clear()
	s.page = PageLanding
	s.view = ViewHome
	s.editing = model.EditingClosedState()
}

// SetView switches the active view, gated by role: customers may use home,
// cart and orders, admins home, admin and all-orders. A disallowed selection
// falls back to home rather than failing. The resulting view is returned.
func (s *Session) SetView(view View) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.account == nil || s.page != PageApp {
		return s.view
	}
	if viewAllowed(view, s.account.Role) {
		s.view = view
	} else {
		s.view = ViewHome
	}
	return s.view
}

func viewAllowed(view View, role model.Role) bool {
	switch view {
	case ViewHome:
		return true
	case ViewCart, ViewOrders:
		return role == model.RoleCustomer
	case ViewAdmin, ViewAllOrders:
		return role == model.RoleAdmin
	}
	return false
}

// Page returns the current page.
func (s *Session) Page() Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// View returns the active view.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Account returns a copy of the signed-in account, if any.
func (s *Session) Account() (model.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.account == nil {
		return model.Account{}, false
	}
	return *s.account, true
}

// SetSearchQuery stores the catalog filter for this session.
func (s *Session) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
}

// SearchQuery returns the stored catalog filter.
func (s *Session) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchQuery
}

// AddToCart puts one unit of the product into the cart. Out-of-stock
// products are rejected silently; stock itself is display-only and is not
// decremented here.
func (s *Session) AddToCart(p model.Product) {
	if p.Stock == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(p)
}

// ChangeQuantity adjusts a cart line by delta, removing it at zero or below.
func (s *Session) ChangeQuantity(productID int64, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.ChangeQuantity(productID, delta)
}

// RemoveFromCart deletes the line for the product.
func (s *Session) RemoveFromCart(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(productID)
}

// CartLines returns a copy of the cart lines.
func (s *Session) CartLines() []model.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// CartTotal returns the cart total.
func (s *Session) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

// CartCount returns the number of units in the cart.
func (s *Session) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Count()
}

// Checkout places the cart as an order on the ledger. On success the cart is
// cleared and the session moves to the orders view. Requires a signed-in
// account and a non-empty cart.
func (s *Session) Checkout(ledger *store.Ledger) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.account == nil {
		return model.Order{}, store.ErrEmptyCart
	}
	order, err := ledger.Checkout(&s.cart, s.account.Email)
	if err != nil {
		return model.Order{}, err
	}
	s.cart.Clear()
	s.view = ViewOrders
	return order, nil
}

// BeginEdit opens the product form: with a product for editing, without one
// for creating.
func (s *Session) BeginEdit(p *model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p == nil {
		s.editing = model.Editing{Mode: model.EditingCreating}
		return
	}
	product := *p
	s.editing = model.Editing{Mode: model.EditingExisting, Product: &product}
}

// EndEdit closes the product form. Called on save and on cancel.
func (s *Session) EndEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = model.EditingClosedState()
}

// Editing returns the current product form state.
func (s *Session) Editing() model.Editing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editing
}
