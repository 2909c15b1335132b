// Package tui implements the interactive finding browser shown by the
// browse command.
package tui

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sapops/dailyaudit/internal/models"
)

// mode represents the current UI interaction mode.
type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeFilterSystem
)

const defaultTableHeight = 15

// Model is the top-level Bubble Tea model for the browse TUI.
type Model struct {
	// Data (immutable after init)
	result      *models.AuditResult
	sparkline   []int
	allFindings []models.Finding

	// UI state
	table            table.Model
	searchInput      textinput.Model
	filteredFindings []models.Finding
	filters          filterState
	sortBy           sortField
	mode             mode
	systemChoices    []string
	systemCursor     int
	width            int
	height           int
	statusMsg        string
	// clipboard is captured here for testing instead of writing to stdout
	clipboard string
}

// New creates a new TUI model from an audit result. sparkline carries
// the issue counts of recent runs, oldest first; it may be nil.
func New(result *models.AuditResult, sparkline []int) Model {
	findings := make([]models.Finding, len(result.Findings))
	copy(findings, result.Findings)

	sortFindings(findings, sortBySeverity)
	rows := buildRows(findings)
	t := newTable(rows, defaultTableHeight)

	ti := textinput.New()
	ti.Placeholder = "search..."
	ti.CharLimit = 64

	return Model{
		result:           result,
		sparkline:        sparkline,
		allFindings:      findings,
		filteredFindings: findings,
		table:            t,
		searchInput:      ti,
		sortBy:           sortBySeverity,
		mode:             modeNormal,
		systemChoices:    uniqueSystems(findings),
		width:            80,
		height:           24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width)
		tableH := msg.Height - headerHeight - detailHeight - 3
		if tableH < 3 {
			tableH = 3
		}
		m.table.SetHeight(tableH)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	switch m.mode {
	case modeSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	default:
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeSearch:
		return m.handleSearchKey(msg)
	case modeFilterSystem:
		return m.handleFilterSystemKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Search):
		m.mode = modeSearch
		m.searchInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.FilterSystem):
		m.mode = modeFilterSystem
		m.systemCursor = 0
		return m, nil
	case key.Matches(msg, keys.FilterSeverity):
		m.filters.Severity = nextSeverityFilter(m.filters.Severity)
		m.rebuildTable()
		if m.filters.Severity != "" {
			m.statusMsg = fmt.Sprintf("Severity: %s", m.filters.Severity)
		} else {
			m.statusMsg = ""
		}
		return m, nil
	case key.Matches(msg, keys.Sort):
		m.sortBy = (m.sortBy + 1) % sortField(sortFieldCount)
		m.rebuildTable()
		m.statusMsg = fmt.Sprintf("Sort: %s", sortFieldName(m.sortBy))
		return m, nil
	case key.Matches(msg, keys.Copy):
		m.copySelectedFinding()
		return m, nil
	case key.Matches(msg, keys.ClearFilter):
		m.filters = filterState{}
		m.statusMsg = ""
		m.rebuildTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filters.SearchText = m.searchInput.Value()
		m.mode = modeNormal
		m.searchInput.Blur()
		m.rebuildTable()
		return m, nil
	case "esc":
		m.mode = modeNormal
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) handleFilterSystemKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.systemCursor > 0 {
			m.systemCursor--
		}
	case "down", "j":
		if m.systemCursor < len(m.systemChoices) {
			m.systemCursor++
		}
	case "enter":
		if m.systemCursor == 0 {
			m.filters.System = ""
		} else if m.systemCursor <= len(m.systemChoices) {
			m.filters.System = m.systemChoices[m.systemCursor-1]
		}
		m.mode = modeNormal
		m.rebuildTable()
		if m.filters.System != "" {
			m.statusMsg = fmt.Sprintf("Filter: %s", m.filters.System)
		} else {
			m.statusMsg = ""
		}
	case "esc":
		m.mode = modeNormal
	}
	return m, nil
}

func (m *Model) rebuildTable() {
	filtered := applyFilters(m.allFindings, m.filters)
	sortFindings(filtered, m.sortBy)
	m.filteredFindings = filtered
	m.table.SetRows(buildRows(filtered))
}

func (m *Model) selectedFinding() *models.Finding {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.filteredFindings) {
		return nil
	}
	return &m.filteredFindings[cursor]
}

// copySelectedFinding writes the selected finding to clipboard via OSC 52.
func (m *Model) copySelectedFinding() {
	f := m.selectedFinding()
	if f == nil {
		m.statusMsg = "Nothing to copy"
		return
	}
	text := fmt.Sprintf("[%s] %s row %d (%s): %s", f.Severity, f.System, f.Row, f.RuleID, f.Message)
	m.clipboard = text
	m.statusMsg = "Copied!"
	// OSC 52 clipboard escape: works in most modern terminals
	fmt.Printf("\033]52;c;%s\a", base64.StdEncoding.EncodeToString([]byte(text)))
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(renderHeader(m.result, m.sparkline, m.width))
	b.WriteString("\n")

	// Search bar overlay
	if m.mode == modeSearch {
		b.WriteString(styleSearchPrompt.Render("/ "))
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	}

	// System filter overlay
	if m.mode == modeFilterSystem {
		b.WriteString(m.renderSystemFilter())
		b.WriteString("\n")
	}

	// Table
	b.WriteString(m.table.View())
	b.WriteString("\n")

	// Detail panel
	b.WriteString(renderDetail(m.selectedFinding(), m.width))
	b.WriteString("\n")

	// Footer
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m *Model) renderSystemFilter() string {
	var b strings.Builder
	b.WriteString("Filter by system:\n")

	options := append([]string{"All"}, m.systemChoices...)
	for i, opt := range options {
		cursor := "  "
		if i == m.systemCursor {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s\n", cursor, opt))
	}
	return b.String()
}

func (m *Model) renderFooter() string {
	left := "q:quit  /:search  t:system  v:severity  s:sort  c:copy  esc:clear"
	right := fmt.Sprintf("%d/%d findings", len(m.filteredFindings), len(m.allFindings))

	if m.statusMsg != "" {
		right = m.statusMsg + "  " + right
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return styleFooter.Render(left + strings.Repeat(" ", gap) + right)
}

// Run starts the Bubble Tea program. Called from the browse command.
func Run(result *models.AuditResult, sparkline []int) error {
	m := New(result, sparkline)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
