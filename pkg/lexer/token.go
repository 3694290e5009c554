package lexer

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	KEYWORD    TokenType = iota // reserved word: if, else, while, for, true, false
	IDENTIFIER                  // letter-led run of letters and digits
	NUMBER                      // integer literal
	FLOAT                       // numeric literal containing at least one '.'
	OPERATOR                    // single- or two-character operator
	WHITESPACE                  // reserved: whitespace is skipped, never emitted
	SEPARATOR                   // ; , ( ) { } [ ]
	STRING                      // double-quoted literal, quotes stripped
	CHARACTER                   // single-quoted literal, quotes stripped
	COMMENT                     // reserved: plain comments are skipped, never emitted
	BOOLEAN                     // reserved for future use
	NEWLINE                     // one per '\n', lexeme is the escape form `\n`
	SPECIAL                     // @ # $
	JAVADOC                     // doc comment /** ... */, delimiters retained
	TEMPLATE                    // reserved for future use (backtick literals)

	// MULTILINE_STRING is a triple-double-quote literal with the outer
	// delimiters stripped.
	MULTILINE_STRING

	EOF     // sentinel: end of input, always the final token
	UNKNOWN // a single character no other rule claims
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	KEYWORD:          "KEYWORD",
	IDENTIFIER:       "IDENTIFIER",
	NUMBER:           "NUMBER",
	FLOAT:            "FLOAT",
	OPERATOR:         "OPERATOR",
	WHITESPACE:       "WHITESPACE",
	SEPARATOR:        "SEPARATOR",
	STRING:           "STRING",
	CHARACTER:        "CHARACTER",
	COMMENT:          "COMMENT",
	BOOLEAN:          "BOOLEAN",
	NEWLINE:          "NEWLINE",
	SPECIAL:          "SPECIAL",
	JAVADOC:          "JAVADOC",
	TEMPLATE:         "TEMPLATE",
	MULTILINE_STRING: "MULTILINE_STRING",
	EOF:              "EOF",
	UNKNOWN:          "UNKNOWN",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by the Lexer. Tokens are
// plain values and are never mutated after creation.
type Token struct {
	Type   TokenType
	Lexeme string // the matched source text (literals: without delimiting quotes)
}

func (t Token) String() string {
	return fmt.Sprintf("%-16s %q", t.Type, t.Lexeme)
}
