// Package models holds the records persisted by the credential store.
package models

import "time"

// Role is joined onto an account at read time.
type Role struct {
	ID   string
	Name string
}

type Account struct {
	ID           string
	Username     string
	PasswordHash []byte
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
}

// BiometricCredential binds a platform credential id, stored as unpadded
// base64url, to exactly one account.
type BiometricCredential struct {
	CredentialID string
	AccountID    string
	CreatedAt    time.Time
}
