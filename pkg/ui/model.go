package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"minisql/pkg/engine"
	"minisql/pkg/shell"
	"minisql/pkg/ui/base"
)

// Model represents the application state
type Model struct {
	shell       *shell.Shell
	highlighter *SQLHighlighter
	queryEditor textarea.Model
	messageView viewport.Model
	resultTable table.Model
	spinner     spinner.Model
	help        help.Model

	width     int
	height    int
	executing bool
	showHelp  bool

	lastQuery     string
	lastOutput    shell.Output
	lastGrid      *engine.QueryResult
	lastQueryTime time.Duration

	queryHistory []string
	historyIndex int

	keys keyMap
}

func NewModel(sh *shell.Shell) Model {
	ta := textarea.New()
	ta.Placeholder = "Enter SQL ending with ';' or a \\command (\\? for help)..."
	ta.CharLimit = 5000
	ta.ShowLineNumbers = true
	ta.SetHeight(6)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(palette.Border)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(palette.Muted)
	ta.FocusedStyle.Text = lipgloss.NewStyle().Foreground(palette.Text)
	ta.FocusedStyle.LineNumber = lipgloss.NewStyle().Foreground(palette.Muted)

	vp := viewport.New(80, 4)
	vp.Style = messagesStyle

	t := table.New(
		table.WithColumns([]table.Column{{Title: "Results", Width: 80}}),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(palette.Primary).
		BorderBottom(true).
		Bold(true).
		Foreground(palette.Primary)
	s.Selected = s.Selected.
		Foreground(palette.Background).
		Background(palette.Secondary).
		Bold(false)
	t.SetStyles(s)

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(palette.Primary)

	return Model{
		shell:        sh,
		highlighter:  NewSQLHighlighter(),
		queryEditor:  ta,
		messageView:  vp,
		resultTable:  t,
		spinner:      sp,
		help:         help.New(),
		keys:         keys,
		queryHistory: make([]string, 0),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		textarea.Blink,
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()

	case tea.KeyMsg:
		if m.executing {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Execute):
			query := m.queryEditor.Value()
			if strings.TrimSpace(query) != "" {
				m.executing = true
				return m, m.executeQuery(query)
			}
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			m.queryEditor.SetValue("")
			m.lastOutput = shell.Output{}
			m.lastGrid = nil
			return m, nil

		case key.Matches(msg, m.keys.ShowTables):
			m.executing = true
			return m, m.executeQuery(`\dt`)

		case key.Matches(msg, m.keys.ShowDatabases):
			m.executing = true
			return m, m.executeQuery(`\l`)

		case key.Matches(msg, m.keys.ShowStats):
			m.executing = true
			return m, m.executeQuery(`\s`)

		case key.Matches(msg, m.keys.HistoryPrev):
			m.recallHistory(-1)
			return m, nil

		case key.Matches(msg, m.keys.HistoryNext):
			m.recallHistory(1)
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		}

	case queryResultMsg:
		m.executing = false
		m.lastQuery = msg.query
		m.lastOutput = msg.output
		m.lastQueryTime = msg.duration
		m.queryHistory = append(m.queryHistory, msg.query)
		m.historyIndex = len(m.queryHistory)
		m.updateResultDisplay()

		if msg.output.Quit {
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		if m.executing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	if !m.executing {
		var cmd tea.Cmd
		m.queryEditor, cmd = m.queryEditor.Update(msg)
		cmds = append(cmds, cmd)

		m.messageView, cmd = m.messageView.Update(msg)
		cmds = append(cmds, cmd)

		m.resultTable, cmd = m.resultTable.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	sections := []string{m.renderHeader(), m.renderQueryEditor()}

	switch {
	case m.executing:
		sections = append(sections, m.renderExecuting())
	case len(m.lastOutput.Results) > 0:
		sections = append(sections, m.renderLastQuery(), m.messageView.View())
		if m.lastGrid != nil {
			sections = append(sections, m.renderResultTable())
		}
	}

	sections = append(sections, m.renderStatusBar())

	if m.showHelp {
		sections = append(sections, m.renderHelp())
	}

	return appStyle.Render(strings.Join(sections, "\n"))
}

func (m Model) renderHelp() string {
	return helpStyle.Render(m.help.FullHelpView(m.keys.FullHelp()))
}

func (m Model) renderHeader() string {
	info := m.shell.Engine().Statistics()

	current := m.shell.Session().Current()
	if current == "" {
		current = "no database"
	}

	title := titleStyle.Render("minisql")
	badge := databaseBadgeStyle.Render(current)
	counters := countersStyle.Render(fmt.Sprintf("Databases: %d | Queries: %d | Errors: %d",
		info.DatabaseCount, info.QueriesExecuted, info.ErrorCount))

	header := lipgloss.JoinHorizontal(lipgloss.Left, title, "  ", badge, "  ", counters)

	separator := separatorStyle.Render(strings.Repeat("─", max(m.width-4, 0)))

	return header + "\n" + separator
}

func (m Model) renderQueryEditor() string {
	label := editorLabelStyle.Render("SQL Query Editor")

	return fmt.Sprintf("%s\n%s", label, editorStyle.Render(m.queryEditor.View()))
}

func (m Model) renderExecuting() string {
	content := lipgloss.JoinHorizontal(lipgloss.Left, m.spinner.View(), " Executing query...")

	return executingStyle.Render(content)
}

func (m Model) renderLastQuery() string {
	if strings.HasPrefix(m.lastQuery, `\`) {
		return metaEchoStyle.Render(m.lastQuery)
	}
	return m.highlighter.Highlight(strings.TrimSpace(m.lastQuery))
}

// renderMessages renders one status line per result.
func (m Model) renderMessages() string {
	lines := make([]string, 0, len(m.lastOutput.Results))
	for _, res := range m.lastOutput.Results {
		if !res.Success {
			lines = append(lines, errorBadgeStyle.Render(" ERROR ")+" "+errorTextStyle.Render(res.Message))
			continue
		}
		msg := res.Message
		if res.RowsAffected > 0 && res.Columns == nil {
			msg = fmt.Sprintf("%s (Rows affected: %d)", msg, res.RowsAffected)
		}
		lines = append(lines, okBadgeStyle.Render(" ✓ ")+" "+okTextStyle.Render(msg))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderResultTable() string {
	header := gridTitleStyle.Render(fmt.Sprintf("✓ Results (%d rows in %v)", len(m.lastGrid.Rows), m.lastQueryTime))

	return fmt.Sprintf("%s\n%s", header, m.resultTable.View())
}

func (m Model) renderStatusBar() string {
	status := statusReadyStyle.Render("● Ready")

	timer := ""
	if m.lastQueryTime > 0 {
		timer = fmt.Sprintf(" | Last query: %v", m.lastQueryTime)
	}

	hint := statusHintStyle.Render(timer + " | " + m.help.ShortHelpView(m.keys.ShortHelp()))

	return statusBarStyle.
		Width(max(m.width-4, 0)).
		Render(status + hint)
}

func (m Model) calculateColumnWidth(grid *engine.QueryResult, index int) int {
	width := len(grid.Columns[index]) + 2
	for _, row := range grid.Rows {
		if index < len(row) {
			width = max(width, len(row[index])+2)
		}
	}
	return base.Clamp(width, 10, 30)
}

// updateLayout adjusts component sizes based on window size
func (m *Model) updateLayout() {
	editorHeight := 6
	messageHeight := 4
	resultHeight := max(m.height-editorHeight-messageHeight-12, 3)

	m.queryEditor.SetWidth(max(m.width-6, 10))
	m.messageView.Width = max(m.width-6, 10)
	m.messageView.Height = messageHeight
	m.resultTable.SetHeight(resultHeight)
}

// updateResultDisplay loads the last output into the message view and the
// last grid result into the table.
func (m *Model) updateResultDisplay() {
	m.messageView.SetContent(m.renderMessages())
	m.messageView.GotoBottom()

	m.lastGrid = nil
	for i := len(m.lastOutput.Results) - 1; i >= 0; i-- {
		if res := m.lastOutput.Results[i]; res.Success && res.Columns != nil {
			m.lastGrid = &res
			break
		}
	}
	if m.lastGrid == nil {
		m.resultTable.Blur()
		return
	}

	columns := make([]table.Column, len(m.lastGrid.Columns))
	for i, col := range m.lastGrid.Columns {
		columns[i] = table.Column{Title: col, Width: m.calculateColumnWidth(m.lastGrid, i)}
	}
	rows := make([]table.Row, len(m.lastGrid.Rows))
	for i, row := range m.lastGrid.Rows {
		rows[i] = table.Row(row)
	}

	// Rows must be cleared before the columns shrink.
	m.resultTable.SetRows(nil)
	m.resultTable.SetColumns(columns)
	m.resultTable.SetRows(rows)
	m.resultTable.Focus()
}

// recallHistory moves through executed queries and loads one into the
// editor. Moving past the newest entry clears the editor.
func (m *Model) recallHistory(step int) {
	if len(m.queryHistory) == 0 {
		return
	}
	m.historyIndex = base.Clamp(m.historyIndex+step, 0, len(m.queryHistory))
	if m.historyIndex == len(m.queryHistory) {
		m.queryEditor.SetValue("")
		return
	}
	m.queryEditor.SetValue(m.queryHistory[m.historyIndex])
}

type queryResultMsg struct {
	query    string
	output   shell.Output
	duration time.Duration
}

func (m Model) executeQuery(query string) tea.Cmd {
	sh := m.shell
	return func() tea.Msg {
		start := time.Now()
		out := sh.Run(query)
		return queryResultMsg{
			query:    query,
			output:   out,
			duration: time.Since(start),
		}
	}
}
