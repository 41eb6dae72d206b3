// Package models defines the records the console receives from the
// credential store.
package models

// Role is the account's role as reported by the store.
type Role struct {
	ID   string
	Name string
}

// Account is an authenticated-or-candidate account. The console never sees
// a password hash.
type Account struct {
	ID       string
	Username string
	Role     Role
	IsActive bool
}

// BiometricCredential binds a credential id, encoded as unpadded base64url,
// to exactly one account.
type BiometricCredential struct {
	CredentialID string
	AccountID    string
}
