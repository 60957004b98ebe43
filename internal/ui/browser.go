package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"podly/internal/api"
	"podly/internal/notify"
)

type browserPage int

const (
	pageStores browserPage = iota
	pagePods
)

type storesLoadedMsg struct {
	stores []api.Store
	err    error
}

type podsLoadedMsg struct {
	storeID string
	pods    []api.Pod
	err     error
}

type storeItem struct {
	store api.Store
}

func (i storeItem) Title() string       { return i.store.Name }
func (i storeItem) Description() string { return i.store.Address + " • " + i.store.OpenHours }
func (i storeItem) FilterValue() string { return i.store.Name }

type podItem struct {
	pod api.Pod
}

func (i podItem) Title() string { return i.pod.Name }
func (i podItem) Description() string {
	return fmt.Sprintf("%s pod • up to %d people", i.pod.PodType, i.pod.Capacity)
}
func (i podItem) FilterValue() string { return i.pod.Name }

// browserClient is the slice of the API client the browser needs.
type browserClient interface {
	Stores(ctx context.Context) ([]api.Store, error)
	Pods(ctx context.Context, storeID string) ([]api.Pod, error)
}

// BrowserModel walks stores → pods. Selecting a pod closes the screen and
// exposes the choice through SelectedPod.
type BrowserModel struct {
	client browserClient
	notify *notify.Channel

	page    browserPage
	list    list.Model
	spin    spinner.Model
	loading bool
	failed  bool

	store       *api.Store
	SelectedPod *api.Pod
	Quitting    bool
}

// NewBrowserModel builds the store browser.
func NewBrowserModel(client browserClient, ch *notify.Channel) BrowserModel {
	l := list.New(nil, list.NewDefaultDelegate(), 48, 18)
	l.Title = "Stores"
	l.SetShowStatusBar(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return BrowserModel{
		client:  client,
		notify:  ch,
		list:    l,
		spin:    sp,
		loading: true,
	}
}

func (m BrowserModel) Init() tea.Cmd {
	client := m.client
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		stores, err := client.Stores(context.Background())
		return storesLoadedMsg{stores: stores, err: err}
	})
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-4)
		return m, nil

	case storesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.failed = true
			m.notify.Show(api.UserMessage(msg.err), notify.SeverityError)
			return m, nil
		}
		items := make([]list.Item, len(msg.stores))
		for i, store := range msg.stores {
			items[i] = storeItem{store: store}
		}
		m.list.SetItems(items)
		return m, nil

	case podsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.failed = true
			m.notify.Show(api.UserMessage(msg.err), notify.SeverityError)
			return m, nil
		}
		items := make([]list.Item, len(msg.pods))
		for i, pod := range msg.pods {
			items[i] = podItem{pod: pod}
		}
		m.page = pagePods
		m.list.SetItems(items)
		m.list.ResetSelected()
		return m, nil

	case NotificationMsg:
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit
		case "esc":
			if m.page == pagePods {
				// Back to the store list.
				m.page = pageStores
				m.store = nil
				m.failed = false
				m.loading = true
				client := m.client
				m.list.Title = "Stores"
				return m, tea.Batch(m.spin.Tick, func() tea.Msg {
					stores, err := client.Stores(context.Background())
					return storesLoadedMsg{stores: stores, err: err}
				})
			}
			m.Quitting = true
			return m, tea.Quit
		case "enter":
			return m.selectItem()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m BrowserModel) selectItem() (tea.Model, tea.Cmd) {
	switch m.page {
	case pageStores:
		item, ok := m.list.SelectedItem().(storeItem)
		if !ok {
			return m, nil
		}
		store := item.store
		m.store = &store
		m.loading = true
		m.failed = false
		m.list.Title = store.Name
		client := m.client
		return m, tea.Batch(m.spin.Tick, func() tea.Msg {
			pods, err := client.Pods(context.Background(), store.ID)
			return podsLoadedMsg{storeID: store.ID, pods: pods, err: err}
		})
	case pagePods:
		item, ok := m.list.SelectedItem().(podItem)
		if !ok {
			return m, nil
		}
		pod := item.pod
		m.SelectedPod = &pod
		return m, tea.Quit
	}
	return m, nil
}

func (m BrowserModel) View() string {
	if m.Quitting || m.SelectedPod != nil {
		return ""
	}
	var body string
	switch {
	case m.loading:
		body = m.spin.View() + " loading..."
	case m.failed:
		body = subtleStyle.Render("the service could not be reached")
	case len(m.list.Items()) == 0:
		body = subtleStyle.Render("not found")
	default:
		body = m.list.View()
	}
	if bar := renderNotification(m.notify); bar != "" {
		body += "\n" + bar
	}
	return appStyle.Render(body)
}
