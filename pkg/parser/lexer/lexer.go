package lexer

import (
	"fmt"
	"iter"
	"strings"
	"unicode"

	"minisql/pkg/dberror"
)

// keywords maps uppercase SQL keyword strings to their token types.
var keywords = map[string]TokenType{
	"CREATE":   CREATE,
	"DATABASE": DATABASE,
	"TABLE":    TABLE,
	"DROP":     DROP,
	"INSERT":   INSERT,
	"INTO":     INTO,
	"VALUES":   VALUES,
	"UPDATE":   UPDATE,
	"SET":      SET,
	"WHERE":    WHERE,
	"SELECT":   SELECT,
	"FROM":     FROM,
	"INT":      INT,
	"CHAR":     CHAR,
}

// reserved words lex as RESERVED so the parser can reject them as
// unsupported instead of treating them as identifiers.
var reserved = map[string]struct{}{
	"AND": {}, "OR": {}, "NOT": {}, "JOIN": {}, "ON": {}, "ORDER": {}, "GROUP": {},
	"BY": {}, "LIMIT": {}, "OFFSET": {}, "HAVING": {}, "DISTINCT": {}, "UNION": {},
	"DELETE": {}, "ALTER": {}, "INDEX": {}, "PRIMARY": {}, "KEY": {}, "BEGIN": {},
	"COMMIT": {}, "ROLLBACK": {}, "TRANSACTION": {}, "EXPLAIN": {}, "SHOW": {}, "USE": {},
}

// singleCharTokens maps single-character punctuation to their token types.
var singleCharTokens = map[rune]TokenType{
	',': COMMA,
	';': SEMICOLON,
	'(': LPAREN,
	')': RPAREN,
	'*': STAR,
}

// Lexer performs lexical analysis on SQL input, breaking it into a sequence
// of tokens. Positions are character offsets from the start of the input.
type Lexer struct {
	input []rune
	pos   int
}

// NewLexer creates a new Lexer for the given SQL input string.
func NewLexer(input string) *Lexer {
	return &Lexer{input: []rune(input)}
}

// SetPos moves the lexer to pos, which must be the Position of a token it
// returned earlier. The parser uses it to put back a token it peeked at.
// Out-of-range positions are ignored.
func (l *Lexer) SetPos(pos int) {
	if pos >= 0 && pos <= len(l.input) {
		l.pos = pos
	}
}

// Position is the offset of the next unread character.
func (l *Lexer) Position() int {
	return l.pos
}

// NextToken scans and returns the next token from the input. Once the input
// is exhausted it keeps returning EOF.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespaceAndComments()

	if l.pos >= len(l.input) {
		return Token{Type: EOF, Position: l.pos}, nil
	}

	start := l.pos
	ch := l.input[l.pos]

	if tt, ok := singleCharTokens[ch]; ok {
		l.pos++
		return l.createToken(tt, string(ch), start), nil
	}

	switch {
	case ch == '=':
		l.pos++
		return l.createToken(EQUALS, "=", start), nil
	case ch == '<' || ch == '>' || ch == '!':
		return l.readOperator(start)
	case ch == '\'' || ch == '"':
		return l.readString(start)
	case isDigit(ch), ch == '-' && isDigit(l.peek(1)):
		return l.readNumber(start), nil
	case isIdentStart(ch):
		return l.readIdentifier(start), nil
	default:
		return Token{}, dberror.LexError(start, fmt.Sprintf("illegal character %q", ch))
	}
}

// Tokenize lexes the whole input, including the trailing EOF token.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}

// All returns a lazy sequence of the tokens of input, ending with EOF or
// with the first lexical error. Every iteration starts from the beginning.
func All(input string) iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		l := NewLexer(input)
		for {
			tok, err := l.NextToken()
			if !yield(tok, err) || err != nil || tok.Type == EOF {
				return
			}
		}
	}
}

// IsIdentifier reports whether s is exactly one identifier token: no
// keyword, no surrounding blanks and nothing else.
func IsIdentifier(s string) bool {
	n := 0
	for tok, err := range All(s) {
		if err != nil {
			return false
		}
		if tok.Type == EOF {
			return n == 1
		}
		if n > 0 || tok.Type != IDENTIFIER || tok.Value != s {
			return false
		}
		n++
	}
	return false
}

func (l *Lexer) peek(offset int) rune {
	if l.pos+offset >= len(l.input) {
		return 0
	}
	return l.input[l.pos+offset]
}

// skipWhitespaceAndComments advances past whitespace and "--" line comments.
func (l *Lexer) skipWhitespaceAndComments() {
	for l.pos < len(l.input) {
		switch {
		case unicode.IsSpace(l.input[l.pos]):
			l.pos++
		case l.input[l.pos] == '-' && l.peek(1) == '-':
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.pos++
			}
		default:
			return
		}
	}
}

// readOperator reads a comparison operator (<, >, <=, >=, <>, !=). None of
// them are part of the grammar; they are tokenized so the parser can name them.
func (l *Lexer) readOperator(start int) (Token, error) {
	var op strings.Builder
	for l.pos < len(l.input) && strings.ContainsRune("=<>!", l.input[l.pos]) && op.Len() < 2 {
		op.WriteRune(l.input[l.pos])
		l.pos++
	}
	if op.String() == "!" {
		return Token{}, dberror.LexError(start, "illegal character '!'")
	}
	return l.createToken(OPERATOR, op.String(), start), nil
}

// readString reads a quoted string literal delimited by single or double
// quotes. The returned value excludes the quotes.
func (l *Lexer) readString(start int) (Token, error) {
	quote := l.input[l.pos]
	l.pos++ // Skip opening quote

	begin := l.pos
	for l.pos < len(l.input) && l.input[l.pos] != quote {
		l.pos++
	}

	if l.pos >= len(l.input) {
		return Token{}, dberror.LexError(start, "unterminated string literal")
	}

	value := string(l.input[begin:l.pos])
	l.pos++ // Skip closing quote
	return l.createToken(STRING, value, start), nil
}

// readNumber reads an integer literal with an optional leading minus sign.
func (l *Lexer) readNumber(start int) Token {
	if l.input[l.pos] == '-' {
		l.pos++
	}
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	return l.createToken(NUMBER, string(l.input[start:l.pos]), start)
}

// readIdentifier reads an identifier or keyword token. Keywords match
// case-insensitively; identifiers keep their case.
func (l *Lexer) readIdentifier(start int) Token {
	for l.pos < len(l.input) && isIdentChar(l.input[l.pos]) {
		l.pos++
	}
	value := string(l.input[start:l.pos])
	upper := strings.ToUpper(value)

	if tt, ok := keywords[upper]; ok {
		return l.createToken(tt, upper, start)
	}
	if _, ok := reserved[upper]; ok {
		return l.createToken(RESERVED, upper, start)
	}
	return l.createToken(IDENTIFIER, value, start)
}

// createToken constructs a Token with the given type, value, and starting position.
func (l *Lexer) createToken(t TokenType, value string, start int) Token {
	return Token{
		Type:     t,
		Value:    value,
		Position: start,
	}
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentChar(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}
