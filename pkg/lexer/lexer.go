package lexer

import (
	"strings"
	"unicode"
)

// keywords is the fixed reserved-word set.
var keywords = map[string]bool{
	"if":    true,
	"else":  true,
	"while": true,
	"for":   true,
	"true":  true,
	"false": true,
}

// operators holds every recognised operator lexeme, one and two
// characters alike. Lookup order in scanSymbol makes the two-character
// match greedy.
var operators = map[string]bool{
	"+": true, "-": true, "*": true, "/": true,
	"=": true, "<": true, ">": true,
	"++": true, "--": true, "==": true,
	"<=": true, ">=": true, "!=": true,
}

var separators = map[rune]bool{
	';': true, ',': true,
	'(': true, ')': true,
	'{': true, '}': true,
	'[': true, ']': true,
}

var specials = map[rune]bool{
	'@': true, '#': true, '$': true,
}

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src []rune
	pos int // index of the next rune to consume
}

func newLexer(src string) *Lexer {
	return &Lexer{src: []rune(src), pos: 0}
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// peek2 returns the rune one position ahead of the current position.
func (l *Lexer) peek2() rune {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

// peek3 returns the rune two positions ahead of the current position.
func (l *Lexer) peek3() rune {
	if l.pos+2 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+2]
}

// advance consumes one rune and returns it. Past end-of-input it is a
// no-op returning 0, so over-consuming a truncated literal is safe.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	return r
}

// skipWhitespace discards consecutive whitespace, stopping at '\n'
// which is tokenised separately.
func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) {
		r := l.peek()
		if r == '\n' || !unicode.IsSpace(r) {
			break
		}
		l.advance()
	}
}

// scanIdent collects a full identifier or keyword token.
// The leading letter must still be at l.peek().
func (l *Lexer) scanIdent() Token {
	start := l.pos
	for l.pos < len(l.src) {
		r := l.peek()
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	if keywords[lexeme] {
		return Token{KEYWORD, lexeme}
	}
	return Token{IDENTIFIER, lexeme}
}

// scanNumber collects the maximal run of digits and dots. Anything with
// a dot is FLOAT; there is deliberately no validation, so "1.2.3" and
// "1." pass through as single FLOAT tokens for downstream code to
// reject.
func (l *Lexer) scanNumber() Token {
	start := l.pos
	for l.pos < len(l.src) {
		r := l.peek()
		if !unicode.IsDigit(r) && r != '.' {
			break
		}
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	if strings.ContainsRune(lexeme, '.') {
		return Token{FLOAT, lexeme}
	}
	return Token{NUMBER, lexeme}
}

// scanString collects a string literal "...". No escape processing: the
// literal runs to the next '"'. An unterminated literal consumes the
// rest of the input.
func (l *Lexer) scanString() Token {
	l.advance() // opening "
	start := l.pos
	for l.pos < len(l.src) && l.peek() != '"' {
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	l.advance() // closing "
	return Token{STRING, lexeme}
}

// scanChar collects a character literal 'c'. At most one rune is taken;
// the closing quote is skipped unconditionally, so '' yields an empty
// CHARACTER token rather than an error.
func (l *Lexer) scanChar() Token {
	l.advance() // opening '
	start := l.pos
	if l.pos < len(l.src) && l.peek() != '\'' {
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	l.advance() // closing '
	return Token{CHARACTER, lexeme}
}

// scanMultilineString collects a triple-quoted literal """...""",
// stripping the outer delimiters. Unterminated literals consume to
// end-of-input.
func (l *Lexer) scanMultilineString() Token {
	l.advance() // "
	l.advance() // "
	l.advance() // "
	start := l.pos
	end := -1
	for l.pos < len(l.src) {
		if l.peek() == '"' && l.peek2() == '"' && l.peek3() == '"' {
			end = l.pos
			l.advance()
			l.advance()
			l.advance()
			break
		}
		l.advance()
	}
	if end < 0 {
		end = l.pos
	}
	return Token{MULTILINE_STRING, string(l.src[start:end])}
}

// scanComment handles all three comment forms. Line and block comments
// are skipped and produce no token; a doc comment (/** ... */) is
// returned as a JAVADOC token with ok true.
func (l *Lexer) scanComment() (Token, bool) {
	if l.peek2() == '/' {
		for l.pos < len(l.src) && l.peek() != '\n' {
			l.advance()
		}
		return Token{}, false
	}

	l.advance() // /
	l.advance() // *
	if l.peek() == '*' {
		return l.scanDocComment(), true
	}

	for l.pos < len(l.src) {
		if l.peek() == '*' && l.peek2() == '/' {
			l.advance()
			l.advance()
			break
		}
		l.advance()
	}
	return Token{}, false
}

// scanDocComment accumulates a doc comment including its delimiters.
// The opening "/*" has been consumed and the second '*' is at l.peek().
func (l *Lexer) scanDocComment() Token {
	var sb strings.Builder
	sb.WriteString("/**")
	l.advance() // second *
	for l.pos < len(l.src) {
		r := l.peek()
		sb.WriteRune(r)
		if r == '*' && l.peek2() == '/' {
			l.advance()
			sb.WriteRune('/')
			break
		}
		l.advance()
	}
	l.advance() // trailing /
	return Token{JAVADOC, sb.String()}
}

// scanSymbol classifies a single punctuation rune: separator, special
// symbol, operator (two-character match first), or UNKNOWN fallback.
func (l *Lexer) scanSymbol() Token {
	ch := l.peek()

	if separators[ch] {
		l.advance()
		return Token{SEPARATOR, string(ch)}
	}
	if specials[ch] {
		l.advance()
		return Token{SPECIAL, string(ch)}
	}

	lexeme := string(ch)
	if next := l.peek2(); next != 0 && operators[lexeme+string(next)] {
		lexeme += string(next)
		l.advance()
	}
	l.advance()
	if operators[lexeme] {
		return Token{OPERATOR, lexeme}
	}
	return Token{UNKNOWN, string(ch)}
}

// Lex tokenises src in a single pass and returns all tokens including
// the final EOF token. It never fails: malformed literals degrade to
// best-effort tokens and unclassifiable runes become UNKNOWN tokens,
// so the result always ends with exactly one EOF.
func Lex(src string) []Token {
	l := newLexer(src)
	var tokens []Token

	for l.pos < len(l.src) {
		ch := l.peek()
		switch {
		case ch != '\n' && unicode.IsSpace(ch):
			l.skipWhitespace()
		case ch == '\n':
			tokens = append(tokens, Token{NEWLINE, `\n`})
			l.advance()
		case unicode.IsLetter(ch):
			tokens = append(tokens, l.scanIdent())
		case unicode.IsDigit(ch) || (ch == '.' && unicode.IsDigit(l.peek2())):
			tokens = append(tokens, l.scanNumber())
		// Triple-quote detection must run before the plain string rule,
		// otherwise """ lexes as an empty STRING plus a stray quote.
		case ch == '"' && l.peek2() == '"' && l.peek3() == '"':
			tokens = append(tokens, l.scanMultilineString())
		case ch == '"':
			tokens = append(tokens, l.scanString())
		case ch == '\'':
			tokens = append(tokens, l.scanChar())
		case ch == '/' && (l.peek2() == '/' || l.peek2() == '*'):
			if tok, ok := l.scanComment(); ok {
				tokens = append(tokens, tok)
			}
		default:
			tokens = append(tokens, l.scanSymbol())
		}
	}

	tokens = append(tokens, Token{EOF, "EOF"})
	return tokens
}
