// Package cli provides the interactive staffdesk console.
//
// It wires configuration, the local preferences database, the credential
// store client, the login sequencer and an interactive REPL. Typical flow:
// start a background connectivity watcher, sign in with a password or the
// device's biometric authenticator, and inspect the session.
//
// Key features:
//   - Password sign-in with staged progress
//   - Biometric sign-in through the device authenticator
//   - Logout, whoami and theme selection
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher and runREPL for details.
package cli
