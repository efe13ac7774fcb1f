// Package parser turns minisql token streams into statement ASTs.
//
// Each statement kind has its own recursive-descent function: ParseCreate,
// ParseInsert and ParseSelect. All three share one result contract:
//
//   - (nil, nil) when the tokens do not start with the statement's keyword,
//     so the caller may try another kind;
//   - (nil, *ParseError) when they do but violate the grammar;
//   - (stmt, nil) on success.
//
// Parse tries the three in turn and ParseString adds lexing in front:
//
//	stmt, err := parser.ParseString("select id as key from users")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(stmt.SqlString())
//
// Statement parsers stop at the token that completes the statement; tokens
// after it are not examined.
package parser
