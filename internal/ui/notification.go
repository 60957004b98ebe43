package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"podly/internal/notify"
)

// NotificationMsg tells a running model that the notification channel
// changed (a new message appeared or the current one expired).
type NotificationMsg struct{}

// BridgeNotifications forwards channel changes into a running program so the
// visible bar updates without polling.
func BridgeNotifications(ch *notify.Channel, p *tea.Program) {
	ch.Subscribe(func(*notify.Notification) {
		p.Send(NotificationMsg{})
	})
}

// renderNotification renders the channel's current notification as a one
// line bar, or "" when nothing is showing.
func renderNotification(ch *notify.Channel) string {
	n := ch.Current()
	if n == nil {
		return ""
	}
	switch n.Severity {
	case notify.SeveritySuccess:
		return noticeSuccessStyle.Render("✓ " + n.Text)
	case notify.SeverityError:
		return noticeErrorStyle.Render("✗ " + n.Text)
	case notify.SeverityWarning:
		return noticeWarningStyle.Render("! " + n.Text)
	default:
		return noticeInfoStyle.Render(n.Text)
	}
}
