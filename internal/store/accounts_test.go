package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasheduzzaman2024/polashtoli/internal/model"
)

func TestAccountsRegisterAndAuthenticate(t *testing.T) {
	accounts := NewAccounts()

	acct, err := accounts.Register("Riya", "riya@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, model.RoleCustomer, acct.Role)
	assert.Equal(t, "Riya", acct.Name)

	got, ok := accounts.Authenticate("riya@example.com", "secret")
	require.True(t, ok)
	assert.Equal(t, acct, got)
}

func TestAccountsAuthenticateRequiresExactMatch(t *testing.T) {
	accounts := NewAccounts()
	_, err := accounts.Register("Riya", "riya@example.com", "secret")
	require.NoError(t, err)

	_, ok := accounts.Authenticate("riya@example.com", "wrong")
	assert.False(t, ok)

	_, ok = accounts.Authenticate("nobody@example.com", "secret")
	assert.False(t, ok)
}

func TestAccountsRegisterDuplicateEmail(t *testing.T) {
	accounts := NewAccounts()
	_, err := accounts.Register("Riya", "riya@example.com", "secret")
	require.NoError(t, err)

	_, err = accounts.Register("Other", "riya@example.com", "different")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	// the original credentials still win
	got, ok := accounts.Authenticate("riya@example.com", "secret")
	require.True(t, ok)
	assert.Equal(t, "Riya", got.Name)
}

func TestSeededAdmin(t *testing.T) {
	catalog := NewCatalog()
	accounts := NewAccounts()
	SeedDemo(catalog, accounts)

	admin, ok := accounts.Authenticate("admin@polashtoli.com", "admin123")
	require.True(t, ok)
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.Equal(t, "Admin", admin.Name)
}
