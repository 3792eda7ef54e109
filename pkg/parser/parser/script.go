package parser

import (
	"minisql/pkg/parser/lexer"
	"minisql/pkg/parser/statements"
)

// Script parses a sequence of ';'-terminated statements one at a time, so a
// caller can execute each statement before the next one is parsed. Empty
// statements (stray ';') are skipped. Error positions are offsets into the
// whole script.
type Script struct {
	l    *lexer.Lexer
	done bool
}

func NewScript(sql string) *Script {
	return &Script{l: lexer.NewLexer(sql)}
}

// Next returns the next statement, or nil, nil once the script is exhausted.
// After an error Next keeps returning nil, nil.
func (s *Script) Next() (statements.Statement, error) {
	if s.done {
		return nil, nil
	}

	for {
		_, empty, err := peekIs(s.l, lexer.SEMICOLON)
		if err != nil {
			s.done = true
			return nil, err
		}
		if !empty {
			break
		}
		_, _ = s.l.NextToken()
	}

	stmt, err := parseNext(s.l)
	if err != nil || stmt == nil {
		s.done = true
	}
	return stmt, err
}

// ParseScript parses every statement of sql. It fails on the first
// statement that does not parse.
func ParseScript(sql string) ([]statements.Statement, error) {
	s := NewScript(sql)
	var out []statements.Statement
	for {
		stmt, err := s.Next()
		if err != nil {
			return nil, err
		}
		if stmt == nil {
			return out, nil
		}
		out = append(out, stmt)
	}
}
