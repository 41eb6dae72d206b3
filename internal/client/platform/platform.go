// Package platform abstracts the device's public-key assertion ceremony.
//
// An Authenticator receives the request options built by the assertion
// engine and returns the raw id of the credential the user proved possession
// of. Implementations report a user cancellation or dismissal as
// ErrNotAllowed, mirroring the platform's NotAllowedError.
package platform

import (
	"context"
	"errors"

	"github.com/go-webauthn/webauthn/protocol"
)

var (
	// ErrNotAllowed means the user cancelled, dismissed or timed out the
	// ceremony, or no allowed credential exists on this device.
	ErrNotAllowed = errors.New("ceremony not allowed")
	// ErrUnsupported is returned by authenticators that cannot run a ceremony.
	ErrUnsupported = errors.New("platform authenticator unsupported")
)

type Authenticator interface {
	// Available reports whether the device exposes an assertion ceremony.
	Available() bool
	// GetAssertion runs one ceremony and returns the asserted credential id.
	GetAssertion(ctx context.Context, opts protocol.PublicKeyCredentialRequestOptions) ([]byte, error)
}

// Unsupported is the authenticator of a device without biometric hardware.
type Unsupported struct{}

func (Unsupported) Available() bool { return false }

func (Unsupported) GetAssertion(context.Context, protocol.PublicKeyCredentialRequestOptions) ([]byte, error) {
	return nil, ErrUnsupported
}
