// Package notice maps login outcomes to the messages the console shows.
// Kind is a closed set; every login.ErrorKind and every visible stage has
// exactly one entry.
package notice

import (
	"fmt"

	"github.com/dmitrijs2005/staffdesk/internal/client/login"
	"github.com/dmitrijs2005/staffdesk/internal/client/session"
)

type Kind int

const (
	KindProgress Kind = iota
	KindSuccess
	KindWarning
	KindError
	// KindModal requires acknowledgement before the console continues.
	KindModal
)

var kindNames = [...]string{"progress", "success", "warning", "error", "modal"}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Color returns the hex color k is rendered in under theme.
func (k Kind) Color(theme session.Theme) string {
	palette := lightPalette
	if theme == session.ThemeDark {
		palette = darkPalette
	}
	return palette[k]
}

var (
	lightPalette = map[Kind]string{
		KindProgress: "#005f87",
		KindSuccess:  "#00875f",
		KindWarning:  "#af5f00",
		KindError:    "#af0000",
		KindModal:    "#870087",
	}
	darkPalette = map[Kind]string{
		KindProgress: "#5fafff",
		KindSuccess:  "#5fd787",
		KindWarning:  "#ffaf5f",
		KindError:    "#ff5f5f",
		KindModal:    "#d787ff",
	}
)

type Notice struct {
	Kind Kind
	Text string
}

var errorNotices = map[login.ErrorKind]Notice{
	login.KindInvalidCredentials:  {KindError, "Invalid username or password."},
	login.KindInactiveAccount:     {KindModal, "This account is inactive. Contact your administrator to restore access."},
	login.KindStoreError:          {KindError, "The account service is unreachable. Try again shortly."},
	login.KindPlatformUnsupported: {KindWarning, "Biometric sign-in is not available on this device."},
	login.KindNoCredentials:       {KindWarning, "No biometric credentials are registered."},
	login.KindCancelled:           {KindWarning, "Biometric sign-in was cancelled."},
	login.KindNoMatch:             {KindError, "This credential is not registered for any account."},
	login.KindLinkMissing:         {KindError, "This credential belongs to an account that no longer exists."},
	login.KindAssertionError:      {KindError, "Biometric sign-in failed."},
}

var stageNotices = map[login.Stage]Notice{
	login.StageConnecting:    {KindProgress, "Connecting..."},
	login.StageConnected:     {KindProgress, "Connected"},
	login.StageLinking:       {KindProgress, "Linking account..."},
	login.StageLinked:        {KindProgress, "Account linked"},
	login.StageAuthenticated: {KindSuccess, "Signed in"},
	login.StageScanning:      {KindProgress, "Waiting for biometric confirmation..."},
	login.StageSuccess:       {KindSuccess, "Biometric confirmed"},
}

// ForError returns the notice for k. KindNone has none.
func ForError(k login.ErrorKind) (Notice, bool) {
	n, ok := errorNotices[k]
	return n, ok
}

// ForState returns what the console shows for s: the error notice when the
// state carries one, otherwise the stage's progress notice.
func ForState(s login.State) (Notice, bool) {
	if s.Err != login.KindNone {
		return ForError(s.Err)
	}
	n, ok := stageNotices[s.Stage]
	return n, ok
}
