package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"minisql/pkg/parser/lexer"
)

// SQLHighlighter provides syntax highlighting for SQL queries. It runs the
// statement lexer, so highlighting agrees with what the parser will see:
// words the engine rejects are marked as reserved.
type SQLHighlighter struct {
	keywordStyle  lipgloss.Style
	reservedStyle lipgloss.Style
	stringStyle   lipgloss.Style
	numberStyle   lipgloss.Style
	operatorStyle lipgloss.Style
	commentStyle  lipgloss.Style
}

func NewSQLHighlighter() *SQLHighlighter {
	return &SQLHighlighter{
		keywordStyle:  keywordStyle,
		reservedStyle: reservedStyle,
		stringStyle:   stringStyle,
		numberStyle:   numberStyle,
		operatorStyle: operatorStyle,
		commentStyle:  commentStyle,
	}
}

// Highlight renders sql with every token styled by its type. Whitespace and
// comments between tokens are kept as written. Text after a lexical error is
// left unstyled.
func (h *SQLHighlighter) Highlight(sql string) string {
	runes := []rune(sql)
	l := lexer.NewLexer(sql)

	var b strings.Builder
	last := 0
	for {
		tok, err := l.NextToken()
		if err != nil || tok.Type == lexer.EOF {
			break
		}
		end := l.Position()
		b.WriteString(h.renderGap(string(runes[last:tok.Position])))
		b.WriteString(h.styleFor(tok).Render(string(runes[tok.Position:end])))
		last = end
	}
	b.WriteString(h.renderGap(string(runes[last:])))
	return b.String()
}

func (h *SQLHighlighter) styleFor(tok lexer.Token) lipgloss.Style {
	switch {
	case tok.Type.IsKeyword():
		return h.keywordStyle
	case tok.Type == lexer.RESERVED:
		return h.reservedStyle
	case tok.Type == lexer.STRING:
		return h.stringStyle
	case tok.Type == lexer.NUMBER:
		return h.numberStyle
	case tok.Type == lexer.EQUALS, tok.Type == lexer.OPERATOR, tok.Type == lexer.STAR:
		return h.operatorStyle
	default:
		return lipgloss.NewStyle()
	}
}

// renderGap styles the "--" comments inside the text between two tokens.
func (h *SQLHighlighter) renderGap(gap string) string {
	if !strings.Contains(gap, "--") {
		return gap
	}
	lines := strings.SplitAfter(gap, "\n")
	for i, line := range lines {
		idx := strings.Index(line, "--")
		if idx < 0 {
			continue
		}
		comment := strings.TrimSuffix(line[idx:], "\n")
		rest := line[idx+len(comment):]
		lines[i] = line[:idx] + h.commentStyle.Render(comment) + rest
	}
	return strings.Join(lines, "")
}
