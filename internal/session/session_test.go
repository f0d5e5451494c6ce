package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasheduzzaman2024/polashtoli/internal/model"
	"github.com/rasheduzzaman2024/polashtoli/internal/store"
)

var (
	customer = model.Account{Email: "riya@example.com", Password: "secret", Role: model.RoleCustomer, Name: "Riya"}
	admin    = model.Account{Email: "admin@polashtoli.com", Password: "admin123", Role: model.RoleAdmin, Name: "Admin"}
	saree    = model.Product{ID: 1, Name: "Traditional Saree", Price: 2500, Category: "Clothing", Stock: 15}
	soldOut  = model.Product{ID: 7, Name: "Silk Scarf", Price: 600, Category: "Clothing", Stock: 0}
)

func TestSessionStartsOnLanding(t *testing.T) {
	s := NewManager().Create()
	assert.Equal(t, PageLanding, s.Page())
	assert.Equal(t, ViewHome, s.View())
	_, signedIn := s.Account()
	assert.False(t, signedIn)
	assert.Equal(t, model.EditingClosed, s.Editing().Mode)
}

func TestNavigateBetweenAuthPages(t *testing.T) {
	s := NewManager().Create()

	s.Navigate(PageSignup)
	assert.Equal(t, PageSignup, s.Page())

	s.Navigate(PageSignin)
	assert.Equal(t, PageSignin, s.Page())

	s.Navigate(PageLanding)
	assert.Equal(t, PageLanding, s.Page())
}

func TestNavigateCannotEnterApp(t *testing.T) {
	s := NewManager().Create()
	s.Navigate(PageApp)
	assert.Equal(t, PageLanding, s.Page())
}

func TestSignInEntersAppOnHome(t *testing.T) {
	s := NewManager().Create()
	s.Navigate(PageSignin)

	s.SignIn(customer)

	assert.Equal(t, PageApp, s.Page())
	assert.Equal(t, ViewHome, s.View())
	acct, ok := s.Account()
	require.True(t, ok)
	assert.Equal(t, customer.Email, acct.Email)
}

func TestSetViewRoleGating(t *testing.T) {
	s := NewManager().Create()
	s.SignIn(customer)

	assert.Equal(t, ViewCart, s.SetView(ViewCart))
	assert.Equal(t, ViewOrders, s.SetView(ViewOrders))
	// customer selecting an admin view falls back to home
	assert.Equal(t, ViewHome, s.SetView(ViewAdmin))
	assert.Equal(t, ViewHome, s.SetView(ViewAllOrders))

	a := NewManager().Create()
	a.SignIn(admin)

	assert.Equal(t, ViewAdmin, a.SetView(ViewAdmin))
	assert.Equal(t, ViewAllOrders, a.SetView(ViewAllOrders))
	// admin selecting a customer view falls back to home
	assert.Equal(t, ViewHome, a.SetView(ViewCart))
	assert.Equal(t, ViewHome, a.SetView(ViewOrders))
}

func TestSetViewRequiresSignIn(t *testing.T) {
	s := NewManager().Create()
	assert.Equal(t, ViewHome, s.SetView(ViewCart))
	assert.Equal(t, PageLanding, s.Page())
}

func TestLogoutResetsSession(t *testing.T) {
	s := NewManager().Create()
	s.SignIn(customer)
	s.AddToCart(saree)
	s.SetView(ViewCart)

	s.Logout()

	assert.Equal(t, PageLanding, s.Page())
	assert.Equal(t, ViewHome, s.View())
	_, signedIn := s.Account()
	assert.False(t, signedIn)
	assert.Equal(t, 0, s.CartCount())
}

func TestAddToCartIgnoresOutOfStock(t *testing.T) {
	s := NewManager().Create()
	s.SignIn(customer)

	s.AddToCart(soldOut)
	assert.Equal(t, 0, s.CartCount())

	s.AddToCart(saree)
	assert.Equal(t, 1, s.CartCount())
	assert.Equal(t, 2500.0, s.CartTotal())
}

func TestCheckoutMovesToOrdersViewAndClearsCart(t *testing.T) {
	ledger := store.NewLedger()
	s := NewManager().Create()
	s.SignIn(customer)
	s.AddToCart(saree)
	s.AddToCart(saree)

	order, err := s.Checkout(ledger)
	require.NoError(t, err)

	assert.Equal(t, 5000.0, order.Total)
	assert.Equal(t, customer.Email, order.CustomerEmail)
	assert.Equal(t, ViewOrders, s.View())
	assert.Equal(t, 0, s.CartCount())
	assert.Len(t, ledger.AllOrders(), 1)
}

func TestCheckoutEmptyCart(t *testing.T) {
	ledger := store.NewLedger()
	s := NewManager().Create()
	s.SignIn(customer)

	_, err := s.Checkout(ledger)
	assert.ErrorIs(t, err, store.ErrEmptyCart)
	assert.Equal(t, ViewHome, s.View())
	assert.Empty(t, ledger.AllOrders())
}

func TestEditingVariants(t *testing.T) {
	s := NewManager().Create()
	s.SignIn(admin)

	s.BeginEdit(nil)
	assert.Equal(t, model.EditingCreating, s.Editing().Mode)
	assert.Nil(t, s.Editing().Product)

	product := saree
	s.BeginEdit(&product)
	e := s.Editing()
	assert.Equal(t, model.EditingExisting, e.Mode)
	require.NotNil(t, e.Product)
	assert.Equal(t, saree.ID, e.Product.ID)

	// the editing state holds its own copy
	product.Name = "changed"
	assert.Equal(t, "Traditional Saree", s.Editing().Product.Name)

	s.EndEdit()
	assert.Equal(t, model.EditingClosed, s.Editing().Mode)
}

func TestManagerTracksSessions(t *testing.T) {
	m := NewManager()

	s1 := m.Create()
	s2 := m.Create()
	assert.NotEqual(t, s1.ID(), s2.ID())
	assert.Equal(t, 2, m.Count())

	got, ok := m.Get(s1.ID())
	require.True(t, ok)
	assert.Same(t, s1, got)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}
