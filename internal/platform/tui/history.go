package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-layers/internal/storage"
)

// HistoryKeyMap defines the key bindings for the history browser.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing past sessions.
type HistoryModel struct {
	entries  []storage.SessionEntry
	totals   *storage.Totals
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history browser over already loaded entries.
func NewHistoryModel(entries []storage.SessionEntry, totals *storage.Totals, width, height int) HistoryModel {
	m := HistoryModel{
		entries: entries,
		totals:  totals,
		help:    help.New(),
		keys:    DefaultHistoryKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.table.SetRows(HistoryRows(entries))
	return m
}

// createTable creates a new table sized to the window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Started", Width: 16},
		{Title: "Mode", Width: 7},
		{Title: "Ticks", Width: 7},
		{Title: "Resets", Width: 7},
		{Title: "Live", Width: 6},
		{Title: "Duration", Width: 10},
	}

	height := m.height - 8 // Leave room for header, totals, help
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// HistoryRows formats session entries as table rows.
func HistoryRows(entries []storage.SessionEntry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", e.ID),
			e.StartedAt.Local().Format("Jan 02 15:04"),
			e.Mode,
			fmt.Sprintf("%d", e.Ticks),
			fmt.Sprintf("%d", e.Resets),
			fmt.Sprintf("%d", e.LiveCells()),
			e.Duration.Round(100 * time.Millisecond).String(),
		}
	}
	return rows
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(HistoryRows(m.entries))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.MarginBottom(1).Render("SESSION HISTORY"))
	b.WriteString("\n")

	if len(m.entries) == 0 {
		b.WriteString("No sessions recorded yet.\n")
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(tableStyle.Render(m.table.View()))
		b.WriteString("\n")
	}

	if m.totals != nil && m.totals.Sessions > 0 {
		b.WriteString(statusStyle.Render(fmt.Sprintf(
			"%d sessions  %d ticks  %d resets  longest run %d ticks",
			m.totals.Sessions, m.totals.Ticks, m.totals.Resets, m.totals.LongestRun,
		)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// RunHistory loads up to limit sessions from store and browses them.
func RunHistory(store *storage.Store, limit, width, height int) error {
	entries, err := store.RecentSessions(limit)
	if err != nil {
		return err
	}
	totals, err := store.GetTotals()
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewHistoryModel(entries, totals, width, height),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}
