package platform

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-webauthn/webauthn/protocol"
)

// Prompt simulates a platform authenticator holding a single credential on
// a terminal: the operator confirms presence by answering the prompt.
// Declining, or a device credential missing from the allow-list, is
// reported as ErrNotAllowed.
type Prompt struct {
	credentialID []byte
	lines        *Lines
	out          io.Writer
}

// NewPrompt returns an authenticator for the device credential credentialID.
// An empty id makes the authenticator unavailable.
func NewPrompt(credentialID []byte, lines *Lines, out io.Writer) *Prompt {
	return &Prompt{credentialID: credentialID, lines: lines, out: out}
}

func (p *Prompt) Available() bool {
	return len(p.credentialID) > 0
}

func (p *Prompt) GetAssertion(ctx context.Context, opts protocol.PublicKeyCredentialRequestOptions) ([]byte, error) {
	if !p.Available() {
		return nil, ErrUnsupported
	}

	sum := sha256.Sum256(opts.Challenge)
	fmt.Fprintf(p.out, "Sign in to %s (challenge %s)\n", opts.RelyingPartyID, hex.EncodeToString(sum[:4]))
	if opts.UserVerification == protocol.VerificationRequired {
		fmt.Fprintln(p.out, "User verification is required.")
	}
	fmt.Fprint(p.out, "Confirm with your fingerprint? [y/N] ")

	answer, err := p.readLine(ctx)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
	default:
		return nil, ErrNotAllowed
	}

	if !p.allowed(opts.AllowedCredentials) {
		return nil, ErrNotAllowed
	}

	return bytes.Clone(p.credentialID), nil
}

// allowed reports whether the device credential is in list. An empty list
// allows any discoverable credential.
func (p *Prompt) allowed(list []protocol.CredentialDescriptor) bool {
	if len(list) == 0 {
		return true
	}
	for _, d := range list {
		if bytes.Equal(d.CredentialID, p.credentialID) {
			return true
		}
	}
	return false
}

func (p *Prompt) readLine(ctx context.Context) (string, error) {
	line, err := p.lines.ReadLine(ctx)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "", ErrNotAllowed
	case err != nil:
		return "", fmt.Errorf("read confirmation: %w", err)
	}
	return line, nil
}
