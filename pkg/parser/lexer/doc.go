// Package lexer implements the tokenizer for minisql's SQL dialect.
//
// The lexer converts a raw SQL string into a stream of typed tokens that the
// parser consumes. Keywords are matched case-insensitively and reported with
// their upper-cased spelling; identifiers keep the case they were written in.
//
// # Usage
//
//	l := lexer.NewLexer("SELECT name FROM users WHERE id = 1;")
//	for {
//	    tok, err := l.NextToken()
//	    if err != nil {
//	        return err
//	    }
//	    if tok.Type == lexer.EOF {
//	        break
//	    }
//	    fmt.Printf("%s %q\n", tok.Type, tok.Value)
//	}
//
// All(input) offers the same stream as an iter.Seq2 that restarts from the
// first token on every range loop.
//
// # Errors
//
// An unterminated string literal or a character outside the dialect yields a
// LEX_ERROR whose Position is the character offset of the offending token.
//
// # Tokens outside the grammar
//
// Comparison operators other than '=', the '*' wildcard and keywords such as
// AND, JOIN or ORDER are tokenized (as OPERATOR, STAR and RESERVED) rather
// than rejected, so the parser can report them as unsupported constructs.
// Line comments starting with "--" are skipped.
package lexer
