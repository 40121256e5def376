// Package lex splits math markup into lexemes on demand.
//
// The scanner never materializes a token list: Next returns one token and
// the position after it. The set of reserved characters depends on the
// context the parser is in, selected with a Set.
package lex

import (
	"strings"
	"unicode/utf8"
)

// Set selects the context-specific token rules.
type Set uint8

const (
	// Brace is the default set used inside {...} groups. Scanning stops at '}'.
	Brace Set = iota
	// Bracket is used inside an optional [...] argument. Scanning stops at
	// ']' as well as '}'.
	Bracket
	// Array is used inside an array body. It adds the '&' cell separator
	// and the `\\` row separator.
	Array
)

// Kind classifies a token.
type Kind uint8

const (
	EOF         Kind = iota
	Subscript        // _
	Superscript      // ^
	Escape           // \ (command follows)
	Open             // {
	Close            // } or ]
	CellSep          // &
	RowSep           // \\
	Operator         // + - *
	Comparator       // < <= = >= >
	Text             // run of letters and spaces, or of other ordinary characters
)

var kindNames = [...]string{
	EOF:         "EOF",
	Subscript:   "Subscript",
	Superscript: "Superscript",
	Escape:      "Escape",
	Open:        "Open",
	Close:       "Close",
	CellSep:     "CellSep",
	RowSep:      "RowSep",
	Operator:    "Operator",
	Comparator:  "Comparator",
	Text:        "Text",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Token is a classified lexeme.
type Token struct {
	Kind Kind
	Text string
}

// Next scans the token starting at pos and returns it together with the
// position just after it. At or past the end of src it returns an EOF token
// and pos unchanged.
//
// Precedence follows longest-specific-first: the `\\` row separator (Array
// set only), then relations (<=, >=, =), then single reserved characters,
// then a run of ASCII letters and whitespace, then a run of any other
// non-reserved characters.
func Next(src string, pos int, set Set) (Token, int) {
	if pos >= len(src) {
		return Token{Kind: EOF}, pos
	}
	c := src[pos]

	if set == Array && c == '\\' && pos+1 < len(src) && src[pos+1] == '\\' {
		return Token{Kind: RowSep, Text: src[pos : pos+2]}, pos + 2
	}

	switch {
	case (c == '<' || c == '>') && pos+1 < len(src) && src[pos+1] == '=':
		return Token{Kind: Comparator, Text: src[pos : pos+2]}, pos + 2
	case c == '=' || c == '<' || c == '>':
		return Token{Kind: Comparator, Text: src[pos : pos+1]}, pos + 1
	}

	if k, ok := single(c, set); ok {
		return Token{Kind: k, Text: src[pos : pos+1]}, pos + 1
	}

	end := pos
	if isLetterOrSpace(c) {
		for end < len(src) && isLetterOrSpace(src[end]) {
			end++
		}
		return Token{Kind: Text, Text: src[pos:end]}, end
	}
	for end < len(src) {
		if src[end] < utf8.RuneSelf {
			b := src[end]
			if isLetter(b) || b == '=' {
				break
			}
			if _, reserved := single(b, set); reserved {
				break
			}
			end++
			continue
		}
		_, w := utf8.DecodeRuneInString(src[end:])
		end += w
	}
	return Token{Kind: Text, Text: src[pos:end]}, end
}

// single classifies the single-character reserved tokens of a set.
func single(c byte, set Set) (Kind, bool) {
	switch c {
	case '_':
		return Subscript, true
	case '^':
		return Superscript, true
	case '\\':
		return Escape, true
	case '{':
		return Open, true
	case '}':
		return Close, true
	case '+', '-', '*':
		return Operator, true
	case '<', '>':
		return Comparator, true
	case ']':
		if set == Bracket {
			return Close, true
		}
	case '&':
		if set == Array {
			return CellSep, true
		}
	}
	return EOF, false
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isLetterOrSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return isLetter(c)
}

// delimiters lists the characters accepted after \left and \right.
const delimiters = "()[]{}<>|"

// Command returns the command name starting at pos, just after a backslash.
// The name is either "left" or "right" followed by one delimiter character,
// a letter followed by lower-case letters, or a single other character.
// It is empty at the end of src or before a line break.
func Command(src string, pos int) string {
	if pos >= len(src) {
		return ""
	}
	rest := src[pos:]
	for _, prefix := range [...]string{"left", "right"} {
		if len(rest) > len(prefix) && strings.HasPrefix(rest, prefix) &&
			strings.IndexByte(delimiters, rest[len(prefix)]) >= 0 {
			return rest[:len(prefix)+1]
		}
	}
	if isLetter(rest[0]) {
		end := 1
		for end < len(rest) && rest[end] >= 'a' && rest[end] <= 'z' {
			end++
		}
		return rest[:end]
	}
	if rest[0] == '\n' || rest[0] == '\r' {
		return ""
	}
	_, w := utf8.DecodeRuneInString(rest)
	return rest[:w]
}
