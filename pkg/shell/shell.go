package shell

import (
	"strings"

	"minisql/pkg/engine"
	"minisql/pkg/parser/lexer"
)

// Output is what one line of input produced.
type Output struct {
	Results []engine.QueryResult
	Quit    bool
}

// Failed reports whether any result is an error.
func (o Output) Failed() bool {
	for _, r := range o.Results {
		if !r.Success {
			return true
		}
	}
	return false
}

// Shell interprets user input for the interactive front ends: SQL text goes
// to the engine, lines starting with '\' are meta commands.
type Shell struct {
	engine    *engine.Engine
	session   *engine.Session
	formatter *engine.ResultFormatter
}

func New(e *engine.Engine) *Shell {
	return &Shell{
		engine:    e,
		session:   e.NewSession(),
		formatter: engine.NewResultFormatter(),
	}
}

// Session is the session all input runs in.
func (s *Shell) Session() *engine.Session {
	return s.session
}

// Engine returns the engine behind the shell.
func (s *Shell) Engine() *engine.Engine {
	return s.engine
}

// Run executes input: one meta command, or one or more SQL statements.
// Statements run in order until the first failure.
func (s *Shell) Run(input string) Output {
	input = strings.TrimSpace(input)
	if input == "" {
		return Output{}
	}
	if strings.HasPrefix(input, `\`) {
		return s.runMeta(input)
	}

	results, err := s.session.ExecuteScript(input)
	out := Output{Results: make([]engine.QueryResult, 0, len(results)+1)}
	for _, res := range results {
		out.Results = append(out.Results, s.formatter.Format(res, nil))
	}
	if err != nil {
		out.Results = append(out.Results, s.formatter.FormatError(err))
	}
	return out
}

// Complete reports whether buffer is ready to run: a meta command, or SQL
// whose last token is ';'. Text that does not lex is ready once it ends in
// ';', so the lexical error gets reported.
func Complete(buffer string) bool {
	trimmed := strings.TrimSpace(buffer)
	if strings.HasPrefix(trimmed, `\`) {
		return true
	}
	tokens, err := lexer.NewLexer(buffer).Tokenize()
	if err != nil {
		return strings.HasSuffix(trimmed, ";")
	}
	return len(tokens) >= 2 && tokens[len(tokens)-2].Type == lexer.SEMICOLON
}

// Prompt is the line prompt for the current database.
func (s *Shell) Prompt(continuation bool) string {
	name := s.session.Current()
	if name == "" {
		name = "minisql"
	}
	if continuation {
		return strings.Repeat(" ", len(name)) + "-> "
	}
	return name + "=> "
}
