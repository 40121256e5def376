// Package parse interprets math markup into a tree of layout nodes.
//
// The parser is a recursive descent over the source string driven by a
// small status machine (see Status). It never fails: malformed input
// leaves Error as the final status and yields whatever was built so far.
// Every call to Parse uses its own Parser, so concurrent parses are safe.
package parse

import (
	"image/color"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gogpu/mathtex/glyph"
	"github.com/gogpu/mathtex/internal/lex"
	"github.com/gogpu/mathtex/layout"
)

// reduceFactor scales scripts, inline fraction terms and radical indices.
const reduceFactor = 0.75

// DefaultErrorColor paints unknown commands.
var DefaultErrorColor color.Color = color.RGBA{R: 0xff, A: 0xff}

// Result is the outcome of a parse.
type Result struct {
	// Root is the top-level group. It is never nil.
	Root *layout.List
	// Status is the residual status; Exit for well-formed input.
	Status Status
	// Pos is the byte offset where parsing stopped.
	Pos int
}

// Option configures a Parser.
type Option func(*Parser)

// WithErrorColor sets the colour of unknown command text.
func WithErrorColor(c color.Color) Option {
	return func(p *Parser) {
		p.errColor = c
	}
}

// Parser holds the cursor state of one parse. It is not safe for
// concurrent use; create one per input.
type Parser struct {
	src      string
	pos      int
	status   Status
	upright  bool
	table    *glyph.Table
	errColor color.Color
}

// New returns a parser over src that resolves commands with table.
// A nil table means glyph.Default().
func New(src string, table *glyph.Table, opts ...Option) *Parser {
	if table == nil {
		table = glyph.Default()
	}
	p := &Parser{
		src:      src,
		table:    table,
		errColor: DefaultErrorColor,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse is shorthand for New(src, table, opts...).Parse(fontSize).
func Parse(src string, fontSize float64, table *glyph.Table, opts ...Option) Result {
	return New(src, table, opts...).Parse(fontSize)
}

// Parse interprets the whole source at the given font size. A closing
// brace without a matching opening one is reported as Error.
func (p *Parser) Parse(fontSize float64) Result {
	p.pos, p.status, p.upright = 0, NoError, false
	root := p.group(fontSize, lex.Brace)
	if p.status == Exit && p.pos < len(p.src) {
		p.status = Error
	}
	return Result{Root: root, Status: p.status, Pos: p.pos}
}

// group parses a group body until a closing token, an array separator,
// the end of input or an error.
func (p *Parser) group(size float64, set lex.Set) *layout.List {
	list := &layout.List{FontSize: size}
	p.status = NoError

	var last string
	for p.status == NoError && p.pos < len(p.src) {
		tok, next := lex.Next(p.src, p.pos, set)
		p.pos = next
		meta := tok.Text

		switch tok.Kind {
		case lex.Subscript, lex.Superscript:
			role, opposite := layout.RoleSubscript, "^"
			if tok.Kind == lex.Superscript {
				role, opposite = layout.RoleSuperscript, "_"
			}
			stacked := last == opposite
			if stacked {
				role = role.Stacked()
				stackPrevious(list)
			}
			if n := p.singleton(size * reduceFactor); n != nil {
				layout.HintOf(n).Role = role
				list.Children = append(list.Children, n)
			}
			p.absorbExit()

		case lex.Escape:
			if n := p.command(size); n != nil {
				list.Children = append(list.Children, n)
			}
			p.absorbExit()

		case lex.Open:
			list.Children = append(list.Children, p.group(size, lex.Brace))
			if !p.consume('}') {
				p.status = Error
			} else {
				p.absorbExit()
			}

		case lex.Close:
			p.pos -= len(tok.Text)
			p.status = Exit

		case lex.CellSep:
			p.status = EndOfCell

		case lex.RowSep:
			p.status = EndOfRow

		case lex.Operator:
			list.Children = append(list.Children, p.classed(meta, size, layout.ClassOperator))

		case lex.Comparator:
			list.Children = append(list.Children, p.classed(relation(meta), size, layout.ClassComparator))

		default:
			s := stripSpace(meta)
			if s != "" {
				list.Children = append(list.Children, &layout.Text{
					Text:     s,
					FontSize: size,
					Italic:   !p.upright && allLetters(s),
				})
			}
			meta = ""
		}

		switch {
		case last == "^" && meta == "_":
			last = "^_"
		case last == "_" && meta == "^":
			last = "_^"
		default:
			last = meta
		}
	}
	if p.status == NoError {
		p.status = Exit
	}
	return list
}

// stackPrevious turns the script that ends list into its stacked variant,
// so that both scripts of x_a^b share one column.
func stackPrevious(list *layout.List) {
	if len(list.Children) == 0 {
		return
	}
	h := layout.HintOf(list.Children[len(list.Children)-1])
	if h.Role.IsScript() {
		h.Role = h.Role.Stacked()
	}
}

// singleton parses exactly one unit: a character, a command or a braced
// group. Leading spaces are skipped.
func (p *Parser) singleton(size float64) layout.Node {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
	if p.pos >= len(p.src) {
		p.status = Error
		return nil
	}
	r, w := utf8.DecodeRuneInString(p.src[p.pos:])
	p.pos += w

	switch r {
	case '\\':
		return p.command(size)
	case '{':
		n := p.group(size, lex.Brace)
		if !p.consume('}') {
			p.status = Error
		}
		return n
	}
	p.status = Exit
	return &layout.Text{
		Text:     string(r),
		FontSize: size,
		Italic:   !p.upright && unicode.IsLetter(r),
	}
}

// absorbExit resets a cleanly finished construct so the enclosing group
// keeps scanning.
func (p *Parser) absorbExit() {
	if p.status == Exit {
		p.status = NoError
	}
}

// consume advances past c and reports whether it was there.
func (p *Parser) consume(c byte) bool {
	if p.pos >= len(p.src) {
		return false
	}
	ok := p.src[p.pos] == c
	p.pos++
	return ok
}

func (p *Parser) classed(s string, size float64, class layout.Class) *layout.Text {
	t := &layout.Text{Text: s, FontSize: size}
	t.Hint.Class = class
	return t
}

// relation substitutes the typographic glyphs for <= and >=.
func relation(s string) string {
	switch s {
	case "<=":
		return "≤"
	case ">=":
		return "≥"
	}
	return s
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func allLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}
