// Package lexer implements the tokenizer for the minisql dialect.
//
// Lex converts a statement into a slice of located tokens, or fails with a
// *LexError pointing at the first position no rule accepts.
//
// # Usage
//
//	tokens, err := lexer.Lex("select id as key from users")
//	if err != nil {
//	    return err
//	}
//	for _, tok := range tokens {
//	    fmt.Println(tok) // e.g. Keyword(select)("select")@0:0
//	}
//
// # Rules
//
// At every position the rules are tried in a fixed order and the first match
// wins: numeric literals, keywords, single-quoted strings, symbols and
// identifiers. Keywords are matched as case-insensitive prefixes of the
// remaining input, which means a word that begins with a keyword spelling is
// split: "selectable" is the keyword select followed by the identifier
// "able". Identifiers are folded to lowercase. String tokens keep their outer
// quotes, and a doubled quote inside a string is an escaped quote.
//
// # Locations
//
// Locations are zero-based. A newline starts a new line at column zero.
// Spaces, tabs and newlines separate tokens and are never emitted.
package lexer
