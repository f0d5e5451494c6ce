package store

import (
	"errors"
	"sync"

	"github.com/rasheduzzaman2024/polashtoli/internal/model"
)

// ErrAlreadyRegistered is returned by Register when the email is taken.
var ErrAlreadyRegistered = errors.New("email already registered")

// Accounts is the in-memory account registry, keyed by email.
type Accounts struct {
	mu       sync.Mutex
	accounts []model.Account
}

// NewAccounts returns an empty account registry.
func NewAccounts() *Accounts {
	return &Accounts{}
}

// Authenticate returns the account matching both email and password exactly.
func (a *Accounts) Authenticate(email, password string) (model.Account, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, acct := range a.accounts {
		if acct.Email == email && acct.Password == password {
			return acct, true
		}
	}
	return model.Account{}, false
}

// Register appends a new customer account. It fails with ErrAlreadyRegistered
// if the email is already present.
func (a *Accounts) Register(name, email, password string) (model.Account, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, acct := range a.accounts {
		if acct.Email == email {
			return model.Account{}, ErrAlreadyRegistered
		}
	}
	acct := model.Account{
		Email:    email,
		Password: password,
		Role:     model.RoleCustomer,
		Name:     name,
	}
	a.accounts = append(a.accounts, acct)
	return acct, nil
}

// seed inserts an account as-is. Used only by demo seeding.
func (a *Accounts) seed(acct model.Account) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.accounts = append(a.accounts, acct)
}
