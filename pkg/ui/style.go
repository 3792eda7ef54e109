package ui

import (
	"github.com/charmbracelet/lipgloss"

	"minisql/pkg/ui/base"
)

var palette = base.DarkPalette

// Screen regions, top to bottom: header, editor, last statement, messages,
// result grid, status bar.
var (
	appStyle = lipgloss.NewStyle().
			Background(palette.Background).
			Foreground(palette.Text).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Background(palette.Primary).
			Foreground(palette.Text).
			Bold(true).
			Padding(0, 2).
			MarginBottom(1)

	// databaseBadgeStyle shows the session's current database.
	databaseBadgeStyle = lipgloss.NewStyle().
				Background(palette.Secondary).
				Foreground(palette.Background).
				Bold(true).
				Padding(0, 1).
				MarginRight(2)

	countersStyle  = lipgloss.NewStyle().Foreground(palette.TextDim)
	separatorStyle = lipgloss.NewStyle().Foreground(palette.Border)

	editorLabelStyle = lipgloss.NewStyle().Foreground(palette.Primary).Bold(true)
	editorStyle      = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(palette.Primary).
				Padding(0, 1)

	executingStyle = lipgloss.NewStyle().Foreground(palette.Primary).Padding(1, 0)
	metaEchoStyle  = lipgloss.NewStyle().Foreground(palette.Muted)

	messagesStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(palette.Border).
			Padding(0, 1)

	okBadgeStyle = lipgloss.NewStyle().
			Background(palette.Accent).
			Foreground(palette.Background).
			Bold(true).
			Padding(0, 1)
	okTextStyle = lipgloss.NewStyle().Foreground(palette.Accent)

	errorBadgeStyle = lipgloss.NewStyle().
			Background(palette.Error).
			Foreground(palette.Text).
			Bold(true).
			Padding(0, 1)
	errorTextStyle = lipgloss.NewStyle().Foreground(palette.Error)

	gridTitleStyle = lipgloss.NewStyle().Foreground(palette.Accent).Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Background(palette.Surface).
			Foreground(palette.TextDim).
			Padding(0, 1)
	statusReadyStyle = lipgloss.NewStyle().Foreground(palette.Accent)
	statusHintStyle  = lipgloss.NewStyle().Foreground(palette.Muted)

	helpStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(palette.Primary).
			Padding(1, 2).
			Background(palette.Surface)
)

// SQL token styles used by SQLHighlighter. Reserved words lex but never
// parse, so they are underlined as a warning.
var (
	keywordStyle  = lipgloss.NewStyle().Foreground(palette.Keyword).Bold(true)
	reservedStyle = lipgloss.NewStyle().Foreground(palette.Warning).Underline(true)
	stringStyle   = lipgloss.NewStyle().Foreground(palette.String)
	numberStyle   = lipgloss.NewStyle().Foreground(palette.Number)
	operatorStyle = lipgloss.NewStyle().Foreground(palette.Operator)
	commentStyle  = lipgloss.NewStyle().Foreground(palette.Comment).Italic(true)
)
