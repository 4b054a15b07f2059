package models

// Account is the identity of an account. Accounts have no row of their own:
// an account exists in storage only through the characters it owns.
type Account struct {
	Username string `json:"username"`
}
