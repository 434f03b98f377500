// Package lexer provides a lexical SQL scanner. It classifies just enough
// structure to tell keywords apart from identifiers, quoted identifiers,
// string literals, and comments; it does not parse or validate SQL.
package lexer

import (
	"fmt"
	"strings"
)

// TokenType classifies a scanned token.
type TokenType int

const (
	EOF TokenType = iota
	COMMENT
	IDENTIFIER   // table_name, column_name
	QUOTED_IDENT // `name`, "name", [name]
	STRING       // 'value'
	NUMBER       // 123, 1.23
	KEYWORD      // SELECT, FROM, LIMIT, ...
	PUNCT        // any other single character
)

// keywords is the grammar table consulted when classifying identifiers.
// Initialized once at process start and read-only thereafter.
var keywords = map[string]bool{
	"ALL": true, "AND": true, "AS": true, "ASC": true, "BETWEEN": true,
	"BY": true, "CASE": true, "CROSS": true, "DELETE": true, "DESC": true,
	"DISTINCT": true, "ELSE": true, "END": true, "EXCEPT": true,
	"EXISTS": true, "FROM": true, "FULL": true, "GROUP": true,
	"HAVING": true, "IN": true, "INNER": true, "INSERT": true,
	"INTERSECT": true, "INTO": true, "IS": true, "JOIN": true,
	"LEFT": true, "LIKE": true, "LIMIT": true, "NOT": true, "NULL": true,
	"OFFSET": true, "ON": true, "OR": true, "ORDER": true, "OUTER": true,
	"RIGHT": true, "SELECT": true, "SET": true, "THEN": true,
	"UNION": true, "UPDATE": true, "USING": true, "VALUES": true,
	"WHEN": true, "WHERE": true, "WITH": true,
}

// Token is one lexical unit of the input.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%d, %q)", t.Type, t.Literal)
}

// IsKeyword reports whether the token is the given keyword, compared
// case-insensitively.
func (t Token) IsKeyword(name string) bool {
	return t.Type == KEYWORD && strings.EqualFold(t.Literal, name)
}

// Lexer scans an input string one token at a time.
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int
	column       int
}

// New returns a Lexer positioned at the start of input.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// NextToken scans and returns the next token. It returns an error for
// unterminated string literals, quoted identifiers, and block comments.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()

	tok := Token{Line: l.line, Column: l.column}

	switch l.ch {
	case 0:
		tok.Type = EOF
		return tok, nil
	case '\'':
		lit, err := l.readString()
		if err != nil {
			return Token{}, err
		}
		tok.Type = STRING
		tok.Literal = lit
		return tok, nil
	case '`':
		lit, err := l.readQuoted('`')
		if err != nil {
			return Token{}, err
		}
		tok.Type = QUOTED_IDENT
		tok.Literal = lit
		return tok, nil
	case '"':
		lit, err := l.readQuoted('"')
		if err != nil {
			return Token{}, err
		}
		tok.Type = QUOTED_IDENT
		tok.Literal = lit
		return tok, nil
	case '[':
		lit, err := l.readBracketed()
		if err != nil {
			return Token{}, err
		}
		tok.Type = QUOTED_IDENT
		tok.Literal = lit
		return tok, nil
	case '-':
		if l.peekChar() == '-' {
			tok.Type = COMMENT
			tok.Literal = l.readLineComment()
			return tok, nil
		}
	case '/':
		if l.peekChar() == '*' {
			lit, err := l.readBlockComment()
			if err != nil {
				return Token{}, err
			}
			tok.Type = COMMENT
			tok.Literal = lit
			return tok, nil
		}
	}

	if isLetter(l.ch) {
		tok.Literal = l.readIdentifier()
		if keywords[strings.ToUpper(tok.Literal)] {
			tok.Type = KEYWORD
		} else {
			tok.Type = IDENTIFIER
		}
		return tok, nil
	}
	if isDigit(l.ch) {
		tok.Type = NUMBER
		tok.Literal = l.readNumber()
		return tok, nil
	}

	// Operators and any remaining punctuation are passed through one
	// character at a time; their structure is irrelevant here.
	tok.Type = PUNCT
	tok.Literal = string(l.ch)
	l.readChar()
	return tok, nil
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		if l.ch == '\n' {
			l.line++
			l.column = 0
		}
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) readNumber() string {
	position := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	// Support simple floats
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[position:l.position]
}

// readString scans a single-quoted literal. A doubled quote ('') and a
// backslash both escape the character that follows.
func (l *Lexer) readString() (string, error) {
	line, col := l.line, l.column
	position := l.position + 1
	for {
		l.readChar()
		switch l.ch {
		case 0:
			return "", fmt.Errorf("unterminated string literal at line %d, col %d", line, col)
		case '\\':
			l.readChar()
			if l.ch == 0 {
				return "", fmt.Errorf("unterminated string literal at line %d, col %d", line, col)
			}
		case '\'':
			if l.peekChar() == '\'' {
				l.readChar()
				continue
			}
			lit := l.input[position:l.position]
			l.readChar() // consume the closing quote
			return lit, nil
		}
	}
}

// readQuoted scans a quote-delimited identifier. The content is opaque and
// never scanned for keywords.
func (l *Lexer) readQuoted(delim byte) (string, error) {
	line, col := l.line, l.column
	position := l.position + 1
	for {
		l.readChar()
		if l.ch == 0 {
			return "", fmt.Errorf("unterminated quoted identifier at line %d, col %d", line, col)
		}
		if l.ch == delim {
			if l.peekChar() == delim {
				l.readChar()
				continue
			}
			lit := l.input[position:l.position]
			l.readChar()
			return lit, nil
		}
	}
}

// readBracketed scans a [bracket]-delimited identifier.
func (l *Lexer) readBracketed() (string, error) {
	line, col := l.line, l.column
	position := l.position + 1
	for {
		l.readChar()
		if l.ch == 0 {
			return "", fmt.Errorf("unterminated quoted identifier at line %d, col %d", line, col)
		}
		if l.ch == ']' {
			lit := l.input[position:l.position]
			l.readChar()
			return lit, nil
		}
	}
}

// readLineComment scans from "--" to end of line or input.
func (l *Lexer) readLineComment() string {
	position := l.position
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readBlockComment scans from "/*" to the matching "*/".
func (l *Lexer) readBlockComment() (string, error) {
	line, col := l.line, l.column
	position := l.position
	l.readChar() // consume '/'
	l.readChar() // consume '*'
	for {
		if l.ch == 0 {
			return "", fmt.Errorf("unterminated block comment at line %d, col %d", line, col)
		}
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			return l.input[position:l.position], nil
		}
		if l.ch == '\n' {
			l.line++
			l.column = 0
		}
		l.readChar()
	}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// Tokenize scans the entire input at once, excluding the terminating EOF
// token.
func Tokenize(input string) ([]Token, error) {
	l := New(input)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
