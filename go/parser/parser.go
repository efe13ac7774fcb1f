/*
 * minisql Parser - Token Stream and Dispatch
 */

package parser

import (
	"github.com/multigres/minisql/go/parser/ast"
	"github.com/multigres/minisql/go/parser/lexer"
)

// tokenStream is a forward-only cursor over a token slice.
type tokenStream struct {
	tokens []lexer.Token
	pos    int
}

func newTokenStream(tokens []lexer.Token) *tokenStream {
	return &tokenStream{tokens: tokens}
}

// next returns the next token, or ok=false when the stream is exhausted.
func (s *tokenStream) next() (lexer.Token, bool) {
	if s.pos >= len(s.tokens) {
		return lexer.Token{}, false
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, true
}

// expect consumes the next token and checks its kind.
func (s *tokenStream) expect(kind lexer.TokenKind, errKind ParseErrorKind) (lexer.Token, error) {
	tok, ok := s.next()
	return expectToken(tok, ok, kind, errKind)
}

// expectToken checks that a token exists and has the expected kind. A missing
// token is reported with the end-of-input sentinel.
func expectToken(tok lexer.Token, ok bool, kind lexer.TokenKind, errKind ParseErrorKind) (lexer.Token, error) {
	if !ok || tok.Kind != kind {
		return lexer.Token{}, newParseError(tok, ok, errKind)
	}
	return tok, nil
}

// leading reports whether tokens start with keyword k.
func leading(tokens []lexer.Token, k lexer.KeywordType) bool {
	return len(tokens) > 0 && tokens[0].IsKeyword(k)
}

// Parse parses a single statement. Statement parsers are tried in the order
// INSERT, SELECT, CREATE; the first one that recognizes its leading keyword
// decides the result. One trailing semicolon is ignored. When no parser
// recognizes the tokens Parse returns ErrUnrecognizedStatement.
func Parse(tokens []lexer.Token) (ast.Statement, error) {
	if n := len(tokens); n > 0 && tokens[n-1].IsSymbol(lexer.SymbolSemicolon) {
		tokens = tokens[:n-1]
	}

	insert, err := ParseInsert(tokens)
	if err != nil {
		return nil, err
	}
	if insert != nil {
		return insert, nil
	}

	sel, err := ParseSelect(tokens)
	if err != nil {
		return nil, err
	}
	if sel != nil {
		return sel, nil
	}

	create, err := ParseCreate(tokens)
	if err != nil {
		return nil, err
	}
	if create != nil {
		return create, nil
	}

	return nil, ErrUnrecognizedStatement
}

// ParseString lexes and parses source. Lexing errors are returned as
// *lexer.LexError, parse errors as *ParseError.
func ParseString(source string) (ast.Statement, error) {
	tokens, err := lexer.Lex(source)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}
