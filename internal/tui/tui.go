// Package tui provides a Bubble Tea browser over persisted session
// logs.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/writecontrol/writecontrol/internal/analyze"
	"github.com/writecontrol/writecontrol/internal/event"
)

// ── Styles ────────────

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Background(lipgloss.Color("235")).
				Padding(0, 1)

	tabSepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")).
			Background(lipgloss.Color("235"))

	sectionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("178"))

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("237"))

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)

	addStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	deleteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	modeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
)

// ── Tab definitions ─────────────────

type tabID int

const (
	tabSessions tabID = iota
	tabReport
	tabEvents
	tabCount
)

var tabNames = [tabCount]string{"Sessions", "Report", "Events"}

// ── Model ────────────────────

// Model is the root Bubble Tea model for the session-log browser.
type Model struct {
	reports   []*analyze.Report
	cursor    int
	activeTab tabID
	viewports [tabCount]viewport.Model
	width     int
	height    int
	ready     bool
}

// New creates a browser over the given analyzed session reports,
// newest last (the cursor starts on the most recent).
func New(reports []*analyze.Report) Model {
	cursor := 0
	if len(reports) > 0 {
		cursor = len(reports) - 1
	}
	return Model{reports: reports, cursor: cursor}
}

// ── Bubble Tea interface ───────────────

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab", "l", "right":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab", "h", "left":
			m.activeTab = (m.activeTab - 1 + tabCount) % tabCount
		case "1", "2", "3":
			m.activeTab = tabID(msg.String()[0] - '1')
		case "up", "k":
			if m.activeTab == tabSessions && m.cursor > 0 {
				m.cursor--
				m.rebuildViewports()
				return m, nil
			}
		case "down", "j":
			if m.activeTab == tabSessions && m.cursor < len(m.reports)-1 {
				m.cursor++
				m.rebuildViewports()
				return m, nil
			}
		case "enter":
			if m.activeTab == tabSessions {
				m.activeTab = tabReport
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.viewports[m.activeTab], cmd = m.viewports[m.activeTab].Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.initViewports()
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if !m.ready {
		return "Loading…"
	}

	title := titleStyle.Width(m.width).Render("  writecontrol  session logs")

	var tabParts []string
	for i := tabID(0); i < tabCount; i++ {
		label := fmt.Sprintf(" %d %s ", i+1, tabNames[i])
		if i == m.activeTab {
			tabParts = append(tabParts, activeTabStyle.Render(label))
		} else {
			tabParts = append(tabParts, inactiveTabStyle.Render(label))
		}
		if i < tabCount-1 {
			tabParts = append(tabParts, tabSepStyle.Render("│"))
		}
	}
	tabRow := lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Width(m.width).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, tabParts...))

	content := m.viewports[m.activeTab].View()

	hint := "  ←/→ tab  ↑/↓ scroll  q quit"
	if m.activeTab == tabSessions {
		hint = "  ↑/↓ select  enter report  ←/→ tab  q quit"
	}
	pct := fmt.Sprintf("%3.0f%%", m.viewports[m.activeTab].ScrollPercent()*100)
	pad := m.width - lipgloss.Width(hint) - len(pct) - 2
	if pad < 1 {
		pad = 1
	}
	statusBar := statusBarStyle.Width(m.width).Render(
		hint + strings.Repeat(" ", pad) + pct,
	)

	return lipgloss.JoinVertical(lipgloss.Left, title, tabRow, content, statusBar)
}

// ── Viewport management ───────────────────────────────────────────────────────

func (m *Model) initViewports() {
	vpHeight := m.height - 3
	if vpHeight < 1 {
		vpHeight = 1
	}
	for i := tabID(0); i < tabCount; i++ {
		vp := viewport.New(m.width, vpHeight)
		vp.SetContent(m.renderTab(i))
		m.viewports[i] = vp
	}
}

func (m *Model) rebuildViewports() {
	for i := tabID(0); i < tabCount; i++ {
		m.viewports[i].SetContent(m.renderTab(i))
	}
	m.viewports[tabReport].GotoTop()
	m.viewports[tabEvents].GotoTop()
}

// ── Tab renderers ─────────────────────────────────────────────────────────────

func (m *Model) renderTab(t tabID) string {
	switch t {
	case tabSessions:
		return m.renderSessions()
	case tabReport:
		return m.renderReport()
	case tabEvents:
		return m.renderEvents()
	}
	return ""
}

func (m *Model) renderSessions() string {
	if len(m.reports) == 0 {
		return dimStyle.Render("\n  No session logs found.")
	}
	var sb strings.Builder
	sb.WriteString("\n")
	for i, r := range m.reports {
		row := fmt.Sprintf("  %-30s %s  %s  %+d words",
			r.Filename,
			r.Start.Format("2006-01-02 15:04"),
			analyze.FormatDuration(r.DurationMs),
			r.WordsDelta,
		)
		if i == m.cursor {
			sb.WriteString(selectedRowStyle.Width(m.width).Render(row))
		} else {
			sb.WriteString(row)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m *Model) renderReport() string {
	r := m.selected()
	if r == nil {
		return dimStyle.Render("\n  No session selected.")
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(sectionHeader.Render("  "+r.Filename) + "\n")
	sb.WriteString(dimStyle.Render("  "+r.LogPath) + "\n\n")

	line := func(label, value string) {
		sb.WriteString("  " + labelStyle.Render(fmt.Sprintf("%-14s", label)) + value + "\n")
	}
	line("Date", r.Start.Format("2006-01-02 15:04"))
	line("Duration", analyze.FormatDuration(r.DurationMs))
	line("Insert mode", analyze.FormatDuration(r.ModeDurations[event.ModeInsert]))
	line("Normal mode", analyze.FormatDuration(r.ModeDurations[event.ModeNormal]))
	line("Typing speed", fmt.Sprintf("%.1f keystrokes/min", r.TypingSpeed))
	sb.WriteString("\n")

	line("Words", fmt.Sprintf("%d -> %d (%+d)", r.Initial.Words, r.Final.Words, r.WordsDelta))
	line("Sentences", fmt.Sprintf("%d -> %d (%+d)", r.Initial.Sentences, r.Final.Sentences, r.SentencesDelta))
	line("Paragraphs", fmt.Sprintf("%d -> %d (%+d)", r.Initial.Paragraphs, r.Final.Paragraphs, r.ParagraphsDelta))
	line("Changed", fmt.Sprintf("%.1f%%", r.ChangePercent))

	return sb.String()
}

func (m *Model) renderEvents() string {
	r := m.selected()
	if r == nil {
		return dimStyle.Render("\n  No session selected.")
	}
	log, err := analyze.LoadEvents(r.LogPath)
	if err != nil {
		return dimStyle.Render("\n  " + err.Error())
	}

	var sb strings.Builder
	sb.WriteString("\n")
	for _, ev := range log {
		ts := timeStyle.Render(fmt.Sprintf("%8s", analyze.FormatDuration(ev.OffsetMs)))
		label := string(ev.Kind)
		switch ev.Kind {
		case event.KindKeystroke:
			label = addStyle.Render("add ")
		case event.KindDelete:
			label = deleteStyle.Render("del ")
		case event.KindReplace:
			label = modeStyle.Render("repl")
		case event.KindModeChange:
			label = modeStyle.Render("mode")
		case event.KindCursorMove:
			label = dimStyle.Render("move")
		case event.KindSave:
			label = sectionHeader.Render("save")
		default:
			label = dimStyle.Render(fmt.Sprintf("%-4s", label))
		}
		line, col := event.DecodePos(ev.Pos)
		sb.WriteString(fmt.Sprintf("  %s  %s  %d:%d  %q", ts, label, line, col, ev.Content))
		if ev.Word != "" {
			sb.WriteString(dimStyle.Render("  [" + ev.Word + "]"))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m *Model) selected() *analyze.Report {
	if m.cursor < 0 || m.cursor >= len(m.reports) {
		return nil
	}
	return m.reports[m.cursor]
}

// Run starts the browser over the given reports.
func Run(reports []*analyze.Report) error {
	p := tea.NewProgram(New(reports), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
