package model

// Role distinguishes the two account kinds the store knows about.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// Account represents a registered user. The password is an opaque credential
// compared by equality; the demo store keeps no secrets worth hashing.
type Account struct {
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
}
