package login

import (
	"errors"
	"fmt"
)

var (
	// ErrCredentialMismatch covers an unknown username and a wrong password alike.
	ErrCredentialMismatch = errors.New("invalid username or password")
	// ErrAccountInactive means the credentials are valid but the account is disabled.
	ErrAccountInactive = errors.New("account inactive")
	// ErrStoreUnavailable wraps any failure talking to the credential store.
	ErrStoreUnavailable = errors.New("credential store unavailable")

	ErrPlatformUnsupported    = errors.New("biometric sign-in unsupported on this device")
	ErrCredentialUnregistered = errors.New("no biometric credentials registered")
	ErrCeremonyCancelled      = errors.New("biometric ceremony cancelled")
	ErrCeremonyFailed         = errors.New("biometric ceremony failed")
	ErrCredentialUnmatched    = errors.New("asserted credential is not registered")
	ErrLinkedAccountMissing   = errors.New("credential is bound to a missing account")
	ErrLinkedAccountInactive  = fmt.Errorf("credential is bound to an %w", ErrAccountInactive)

	// ErrBusy rejects a submit while another attempt is in flight.
	ErrBusy = errors.New("login attempt in progress")
	// ErrSignedIn rejects a submit while a session is established.
	ErrSignedIn = errors.New("already signed in")
	// ErrStaleEvent marks an event addressed to an attempt that no longer exists.
	ErrStaleEvent = errors.New("stale login event")
	// ErrUnexpectedEvent marks an event the current stage cannot accept.
	ErrUnexpectedEvent = errors.New("unexpected login event")
)

// ErrorKind is the terminal error classification handed to the presentation layer.
type ErrorKind string

const (
	KindNone                ErrorKind = ""
	KindInvalidCredentials  ErrorKind = "INVALID_CREDENTIALS"
	KindInactiveAccount     ErrorKind = "INACTIVE_ACCOUNT"
	KindStoreError          ErrorKind = "STORE_ERROR"
	KindPlatformUnsupported ErrorKind = "PLATFORM_UNSUPPORTED"
	KindNoCredentials       ErrorKind = "NO_CREDENTIALS"
	KindCancelled           ErrorKind = "CANCELLED"
	KindNoMatch             ErrorKind = "NO_MATCH"
	KindLinkMissing         ErrorKind = "LINK_MISSING"
	KindAssertionError      ErrorKind = "ASSERTION_ERROR"
)

// Kinds lists every non-empty ErrorKind.
var Kinds = []ErrorKind{
	KindInvalidCredentials,
	KindInactiveAccount,
	KindStoreError,
	KindPlatformUnsupported,
	KindNoCredentials,
	KindCancelled,
	KindNoMatch,
	KindLinkMissing,
	KindAssertionError,
}

// classification is checked in order; store failures come first because
// they may wrap a lower-level cause.
var classification = []struct {
	err  error
	kind ErrorKind
}{
	{ErrStoreUnavailable, KindStoreError},
	{ErrCredentialMismatch, KindInvalidCredentials},
	{ErrAccountInactive, KindInactiveAccount},
	{ErrPlatformUnsupported, KindPlatformUnsupported},
	{ErrCredentialUnregistered, KindNoCredentials},
	{ErrCeremonyCancelled, KindCancelled},
	{ErrCredentialUnmatched, KindNoMatch},
	{ErrLinkedAccountMissing, KindLinkMissing},
	{ErrCeremonyFailed, KindAssertionError},
}

// Classify maps an outcome error to its ErrorKind. Errors outside the login
// taxonomy are reported as store errors.
func Classify(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	for _, c := range classification {
		if errors.Is(err, c.err) {
			return c.kind
		}
	}
	return KindStoreError
}
