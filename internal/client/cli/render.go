package cli

import (
	"fmt"

	"github.com/dmitrijs2005/staffdesk/internal/client/login"
	"github.com/dmitrijs2005/staffdesk/internal/client/notice"
)

// Render prints the notice for each state the sequencer enters.
func (a *App) Render(s login.State) {
	n, ok := notice.ForState(s)
	if !ok {
		return
	}
	a.printNotice(n)
}

func (a *App) printNotice(n notice.Notice) {
	style := a.term.String(n.Text).Foreground(a.term.Color(n.Kind.Color(a.session.Theme())))
	if n.Kind == notice.KindModal {
		style = style.Bold()
	}
	fmt.Fprintln(a.out, style.String())
}
