package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"podly/internal/api"
	"podly/internal/booking"
	"podly/internal/notify"
	"podly/internal/session"
)

type bookingMode int

const (
	modeRows bookingMode = iota
	modeDate
	modeSlots
)

// SlotsUpdatedMsg tells the booking screen that a slot fetch finished.
type SlotsUpdatedMsg struct{}

type bookingSubmittedMsg struct {
	booking *api.Booking
	err     error
}

// bookingClient is the slice of the API client the booking screen needs.
type bookingClient interface {
	CreateBooking(ctx context.Context, token string, req api.BookingRequest) (*api.Booking, error)
}

// BookingModel is the booking screen: one bordered box per date row, slot
// options per row, and a running total across all rows.
type BookingModel struct {
	draft   *booking.Draft
	client  bookingClient
	session *session.Store
	notify  *notify.Channel
	pod     api.Pod

	mode       bookingMode
	activeRow  int
	slotIndex  int
	dateInput  textinput.Model
	submitting bool
	submitted  bool
}

// NewBookingModel builds the booking screen for a pod.
func NewBookingModel(pod api.Pod, draft *booking.Draft, client bookingClient, sess *session.Store, ch *notify.Channel) BookingModel {
	ti := textinput.New()
	ti.Placeholder = "2026-09-01"
	ti.CharLimit = 10
	ti.Width = 12
	return BookingModel{
		draft:     draft,
		client:    client,
		session:   sess,
		notify:    ch,
		pod:       pod,
		dateInput: ti,
	}
}

// BridgeDraft forwards slot-fetch completions into a running program.
func BridgeDraft(d *booking.Draft, p *tea.Program) {
	d.OnChange(func() {
		p.Send(SlotsUpdatedMsg{})
	})
}

// Submitted reports whether a booking was created before the screen closed.
func (m BookingModel) Submitted() bool {
	return m.submitted
}

func (m BookingModel) Init() tea.Cmd {
	return nil
}

func (m BookingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SlotsUpdatedMsg, NotificationMsg:
		return m, nil
	case bookingSubmittedMsg:
		m.submitting = false
		if msg.err != nil {
			m.notify.Show(api.UserMessage(msg.err), notify.SeverityError)
			return m, nil
		}
		m.submitted = true
		m.draft.Reset()
		m.notify.Show("booking created: "+msg.booking.ID, notify.SeveritySuccess)
		return m, tea.Quit
	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch m.mode {
		case modeDate:
			return m.updateDate(msg)
		case modeSlots:
			return m.updateSlots(msg)
		default:
			return m.updateRows(msg)
		}
	}
	return m, nil
}

func (m BookingModel) updateRows(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, bookingKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, bookingKeys.Up):
		if m.activeRow > 0 {
			m.activeRow--
		}
	case key.Matches(msg, bookingKeys.Down):
		if m.activeRow < m.draft.Rows()-1 {
			m.activeRow++
		}
	case key.Matches(msg, bookingKeys.AddRow):
		m.draft.AddRow()
		m.activeRow = m.draft.Rows() - 1
	case key.Matches(msg, bookingKeys.DropRow):
		m.draft.RemoveRow(m.activeRow)
		if m.activeRow >= m.draft.Rows() {
			m.activeRow = m.draft.Rows() - 1
		}
	case key.Matches(msg, bookingKeys.Remove):
		chosen := m.draft.Chosen(m.activeRow)
		if len(chosen) > 0 {
			m.draft.Unchoose(m.activeRow, chosen[len(chosen)-1].SlotID)
		}
	case key.Matches(msg, bookingKeys.Submit):
		return m.submit()
	case key.Matches(msg, bookingKeys.Enter):
		if m.draft.Date(m.activeRow) == "" {
			m.mode = modeDate
			m.dateInput.SetValue("")
			return m, m.dateInput.Focus()
		}
		if len(m.draft.Options(m.activeRow)) > 0 {
			m.mode = modeSlots
			m.slotIndex = 0
		}
	}
	return m, nil
}

func (m BookingModel) updateDate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeRows
		m.dateInput.Blur()
		return m, nil
	case tea.KeyEnter:
		date := strings.TrimSpace(m.dateInput.Value())
		m.mode = modeRows
		m.dateInput.Blur()
		if date != "" {
			m.draft.SetDate(context.Background(), m.activeRow, date)
		}
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.dateInput, cmd = m.dateInput.Update(msg)
	return m, cmd
}

func (m BookingModel) updateSlots(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := m.draft.Options(m.activeRow)
	switch {
	case key.Matches(msg, bookingKeys.Back):
		m.mode = modeRows
	case key.Matches(msg, bookingKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, bookingKeys.Up):
		if m.slotIndex > 0 {
			m.slotIndex--
		}
	case key.Matches(msg, bookingKeys.Down):
		if m.slotIndex < len(options)-1 {
			m.slotIndex++
		}
	case key.Matches(msg, bookingKeys.Enter):
		if m.slotIndex < len(options) {
			slot := options[m.slotIndex]
			if !slot.IsAvailable {
				m.notify.Show("that slot is already taken", notify.SeverityWarning)
				return m, nil
			}
			m.draft.Choose(m.activeRow, slot.SlotID)
			// The chosen slot left the option list; keep the cursor in range.
			if m.slotIndex >= len(options)-1 && m.slotIndex > 0 {
				m.slotIndex--
			}
		}
	}
	return m, nil
}

func (m BookingModel) submit() (tea.Model, tea.Cmd) {
	if m.draft.ChosenCount() == 0 {
		// Client-side rejection, no network call.
		m.notify.Show("choose at least one slot before submitting", notify.SeverityInfo)
		return m, nil
	}
	if m.session.CurrentIdentity() == nil {
		m.notify.Show("log in to submit a booking", notify.SeverityWarning)
		return m, nil
	}
	m.submitting = true

	client := m.client
	token := m.session.Token()
	req := api.BookingRequest{PodID: m.draft.PodID(), Selections: m.draft.Selections()}
	return m, func() tea.Msg {
		b, err := client.CreateBooking(context.Background(), token, req)
		return bookingSubmittedMsg{booking: b, err: err}
	}
}

func (m BookingModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Book " + m.pod.Name))
	b.WriteString("\n\n")

	for i := 0; i < m.draft.Rows(); i++ {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}

	b.WriteString(totalStyle.Render(fmt.Sprintf("Total: %d", m.draft.TotalCost())))
	b.WriteString("\n")

	if bar := renderNotification(m.notify); bar != "" {
		b.WriteString("\n" + bar + "\n")
	}

	switch m.mode {
	case modeDate:
		b.WriteString(helpStyle.Render("enter: set date • esc: cancel"))
	case modeSlots:
		b.WriteString(helpStyle.Render("↑/↓: move • enter: choose slot • esc: back"))
	default:
		b.WriteString(helpStyle.Render("enter: edit row • a: add date • d: drop date • x: remove slot • s: submit • q: quit"))
	}
	return appStyle.Render(b.String())
}

func (m BookingModel) renderRow(i int) string {
	var b strings.Builder
	date := m.draft.Date(i)
	if date == "" {
		date = "(no date)"
	}
	b.WriteString("Date: " + date)
	if m.mode == modeDate && i == m.activeRow {
		b.WriteString("  " + m.dateInput.View())
	}
	if m.draft.Loading(i) {
		b.WriteString(subtleStyle.Render("  loading slots..."))
	}
	b.WriteString("\n")

	if chosen := m.draft.Chosen(i); len(chosen) > 0 {
		b.WriteString("Chosen: ")
		parts := make([]string, len(chosen))
		for j, slot := range chosen {
			parts[j] = slotChosenStyle.Render(fmt.Sprintf("%s–%s (%d)", slot.StartTime, slot.EndTime, slot.UnitPrice))
		}
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString("\n")
	}

	if m.mode == modeSlots && i == m.activeRow {
		for j, slot := range m.draft.Options(i) {
			cursor := "  "
			if j == m.slotIndex {
				cursor = "> "
			}
			line := fmt.Sprintf("%s%s–%s  %d", cursor, slot.StartTime, slot.EndTime, slot.UnitPrice)
			if !slot.IsAvailable {
				line = slotDisabledStyle.Render(line + "  (taken)")
			}
			b.WriteString(line + "\n")
		}
	}

	if i == m.activeRow {
		return rowActiveStyle.Render(strings.TrimRight(b.String(), "\n"))
	}
	return rowStyle.Render(strings.TrimRight(b.String(), "\n"))
}
