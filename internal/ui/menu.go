package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"podly/internal/notify"
	"podly/internal/session"
)

var (
	menuTitleStyle      = lipgloss.NewStyle().MarginLeft(2)
	menuPaginationStyle = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	menuHelpStyle       = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
)

type MenuItem struct {
	Name, Desc string
}

func (i MenuItem) Title() string       { return i.Name }
func (i MenuItem) Description() string { return i.Desc }
func (i MenuItem) FilterValue() string { return i.Name }

// Menu actions understood by the command layer.
const (
	MenuBrowse   = "Browse stores"
	MenuBookings = "My bookings"
	MenuSignIn   = "Sign in"
	MenuSignOut  = "Sign out"
	MenuQuit     = "Quit"
)

// MenuModel is the landing screen shown on a bare `podly`.
type MenuModel struct {
	list     list.Model
	session  *session.Store
	notify   *notify.Channel
	Selected string
	Quitting bool
}

// NewMenuModel builds the landing menu; the sign in/out entry follows the
// current session state.
func NewMenuModel(sess *session.Store, ch *notify.Channel) MenuModel {
	items := []MenuItem{
		{Name: MenuBrowse, Desc: "Stores, pods and open slots"},
		{Name: MenuBookings, Desc: "Your booking and payment history"},
	}
	if sess.CurrentIdentity() != nil {
		items = append(items, MenuItem{Name: MenuSignOut, Desc: "Clear the local session"})
	} else {
		items = append(items, MenuItem{Name: MenuSignIn, Desc: "Log in or create an account"})
	}
	items = append(items, MenuItem{Name: MenuQuit, Desc: "Leave podly"})

	lItems := make([]list.Item, len(items))
	for i, item := range items {
		lItems[i] = item
	}

	const defaultWidth = 36
	const listHeight = 14

	l := list.New(lItems, list.NewDefaultDelegate(), defaultWidth, listHeight)
	l.Title = "podly"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = menuTitleStyle
	l.Styles.PaginationStyle = menuPaginationStyle
	l.Styles.HelpStyle = menuHelpStyle

	return MenuModel{list: l, session: sess, notify: ch}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case NotificationMsg:
		return m, nil

	case tea.KeyMsg:
		switch keypress := msg.String(); keypress {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit

		case "enter":
			if i, ok := m.list.SelectedItem().(MenuItem); ok {
				m.Selected = i.Name
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m MenuModel) View() string {
	if m.Quitting || m.Selected != "" {
		return ""
	}
	header := ""
	if identity := m.session.CurrentIdentity(); identity != nil {
		header = subtleStyle.Render("signed in as "+identity.DisplayName) + "\n"
	} else if m.session.Pending() {
		header = subtleStyle.Render("checking session...") + "\n"
	}
	view := header + m.list.View()
	if bar := renderNotification(m.notify); bar != "" {
		view += "\n" + bar
	}
	return view
}
